package grammar

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/nihei9/earley/grammar/symbol"
)

type ProductionID [32]byte

func (id ProductionID) String() string {
	return hex.EncodeToString(id[:])
}

func genProductionID(lhs symbol.Symbol, rhs []symbol.Symbol) ProductionID {
	seq := lhs.Byte()
	for _, sym := range rhs {
		seq = append(seq, sym.Byte()...)
	}
	return ProductionID(sha256.Sum256(seq))
}

type ProductionNum uint16

const (
	productionNumNil = ProductionNum(0)
	productionNumMin = ProductionNum(1)
)

func (n ProductionNum) Int() int {
	return int(n)
}

// Production is a rule `A → α`. A production never changes after it has been created, so it can be shared
// by any number of chart items.
type Production struct {
	id  ProductionID
	num ProductionNum
	lhs symbol.Symbol
	rhs []symbol.Symbol
}

func NewProduction(lhs symbol.Symbol, rhs ...symbol.Symbol) (*Production, error) {
	if lhs.IsNil() {
		return nil, fmt.Errorf("LHS must be a non-nil symbol; LHS: %v, RHS: %v", lhs, rhs)
	}
	if !lhs.IsNonTerminal() {
		return nil, fmt.Errorf("LHS must be a non-terminal symbol; LHS: %v, RHS: %v", lhs, rhs)
	}
	for _, sym := range rhs {
		if sym.IsNil() {
			return nil, fmt.Errorf("a symbol of RHS must be a non-nil symbol; LHS: %v, RHS: %v", lhs, rhs)
		}
	}

	r := make([]symbol.Symbol, len(rhs))
	copy(r, rhs)
	return &Production{
		id:  genProductionID(lhs, r),
		lhs: lhs,
		rhs: r,
	}, nil
}

func (p *Production) ID() ProductionID {
	return p.id
}

// Num returns the position of the production in a grammar. The first production is 1.
// A production not belonging to any grammar returns 0.
func (p *Production) Num() ProductionNum {
	return p.num
}

func (p *Production) LHS() symbol.Symbol {
	return p.lhs
}

func (p *Production) RHS() []symbol.Symbol {
	r := make([]symbol.Symbol, len(p.rhs))
	copy(r, p.rhs)
	return r
}

func (p *Production) Len() int {
	return len(p.rhs)
}

// At returns the i-th symbol of the RHS, or the nil symbol when i is out of range.
func (p *Production) At(i int) symbol.Symbol {
	if i < 0 || i >= len(p.rhs) {
		return symbol.SymbolNil
	}
	return p.rhs[i]
}

func (p *Production) IsEmpty() bool {
	return len(p.rhs) == 0
}

func (p *Production) Equals(q *Production) bool {
	if q == nil {
		return false
	}
	return q.id == p.id
}

type productionSet struct {
	lhs2Prods map[symbol.Symbol][]*Production
	id2Prod   map[ProductionID]*Production
	prods     []*Production
	num       ProductionNum
}

func newProductionSet() *productionSet {
	return &productionSet{
		lhs2Prods: map[symbol.Symbol][]*Production{},
		id2Prod:   map[ProductionID]*Production{},
		num:       productionNumMin,
	}
}

// append adds a production unless an equal one is already present. The production set takes over the
// production and numbers it.
func (ps *productionSet) append(prod *Production) bool {
	if _, ok := ps.id2Prod[prod.id]; ok {
		return false
	}

	prod.num = ps.num
	ps.num++

	ps.lhs2Prods[prod.lhs] = append(ps.lhs2Prods[prod.lhs], prod)
	ps.id2Prod[prod.id] = prod
	ps.prods = append(ps.prods, prod)

	return true
}

func (ps *productionSet) findByID(id ProductionID) (*Production, bool) {
	prod, ok := ps.id2Prod[id]
	return prod, ok
}

func (ps *productionSet) findByLHS(lhs symbol.Symbol) ([]*Production, bool) {
	if lhs.IsNil() {
		return nil, false
	}

	prods, ok := ps.lhs2Prods[lhs]
	return prods, ok
}

func (ps *productionSet) getAllProductions() []*Production {
	return ps.prods
}
