package grammar

import (
	"testing"

	"github.com/nihei9/earley/grammar/symbol"
)

func TestProduction(t *testing.T) {
	symTab := symbol.NewSymbolTable()
	w := symTab.Writer()
	s, _ := w.RegisterNonTerminalSymbol("S")
	a, _ := w.RegisterTerminalSymbol("a")
	b, _ := w.RegisterTerminalSymbol("b")
	genSym := newTestSymbolGenerator(t, symTab.Reader())
	genProd := newTestProductionGenerator(t, genSym)

	t.Run("equality is structural", func(t *testing.T) {
		p := genProd("S", "a", "S", "b")
		q := genProd("S", "a", "S", "b")
		if !p.Equals(q) || !q.Equals(p) {
			t.Fatalf("productions with the same sides must be equal")
		}
		if p.Equals(genProd("S", "a", "b")) {
			t.Fatalf("productions with different RHSs must not be equal")
		}
		if p.Equals(nil) {
			t.Fatalf("a production must not equal nil")
		}
	})

	t.Run("sides", func(t *testing.T) {
		p := genProd("S", "a", "S", "b")
		if p.LHS() != s {
			t.Fatalf("unexpected LHS; want: %v, got: %v", s, p.LHS())
		}
		rhs := p.RHS()
		want := []symbol.Symbol{a, s, b}
		if len(rhs) != len(want) || p.Len() != len(want) {
			t.Fatalf("unexpected RHS; want: %v, got: %v", want, rhs)
		}
		for i, sym := range want {
			if rhs[i] != sym || p.At(i) != sym {
				t.Fatalf("unexpected RHS; want: %v, got: %v", want, rhs)
			}
		}
		if !p.At(3).IsNil() || !p.At(-1).IsNil() {
			t.Fatalf("an out-of-range position must yield the nil symbol")
		}
	})

	t.Run("a production cannot be modified through its RHS", func(t *testing.T) {
		p := genProd("S", "a", "b")
		rhs := p.RHS()
		rhs[0] = b
		if p.At(0) != a {
			t.Fatalf("the production was modified")
		}
	})

	t.Run("ε-production", func(t *testing.T) {
		p := genProd("S")
		if !p.IsEmpty() || p.Len() != 0 {
			t.Fatalf("an ε-production must be empty")
		}
		if p.Equals(genProd("S", "a")) {
			t.Fatalf("an ε-production must not equal a non-empty production")
		}
	})

	t.Run("invalid sides", func(t *testing.T) {
		if _, err := NewProduction(symbol.SymbolNil, a); err == nil {
			t.Fatalf("a nil LHS must be rejected")
		}
		if _, err := NewProduction(a, b); err == nil {
			t.Fatalf("a terminal LHS must be rejected")
		}
		if _, err := NewProduction(s, a, symbol.SymbolNil); err == nil {
			t.Fatalf("a nil RHS symbol must be rejected")
		}
	})
}

func TestProductionSet(t *testing.T) {
	symTab := symbol.NewSymbolTable()
	w := symTab.Writer()
	_, _ = w.RegisterNonTerminalSymbol("S")
	_, _ = w.RegisterNonTerminalSymbol("A")
	_, _ = w.RegisterTerminalSymbol("a")
	genSym := newTestSymbolGenerator(t, symTab.Reader())
	genProd := newTestProductionGenerator(t, genSym)

	ps := newProductionSet()
	p1 := genProd("S", "A", "a")
	p2 := genProd("A", "a")
	p3 := genProd("S")
	for _, p := range []*Production{p1, p2, p3} {
		if !ps.append(p) {
			t.Fatalf("failed to append a production: %v", p)
		}
	}
	if ps.append(genProd("S", "A", "a")) {
		t.Fatalf("a duplicate production must not be appended")
	}

	for i, p := range []*Production{p1, p2, p3} {
		if p.Num() != ProductionNum(i+1) {
			t.Fatalf("unexpected production number; want: %v, got: %v", i+1, p.Num())
		}
	}

	prods, ok := ps.findByLHS(genSym("S"))
	if !ok || len(prods) != 2 || prods[0] != p1 || prods[1] != p3 {
		t.Fatalf("unexpected productions; want: [%v %v], got: %v", p1, p3, prods)
	}
	if _, ok := ps.findByLHS(symbol.SymbolNil); ok {
		t.Fatalf("the nil symbol must have no production")
	}
	if p, ok := ps.findByID(p2.ID()); !ok || p != p2 {
		t.Fatalf("a production was not found by its ID")
	}
	if len(ps.getAllProductions()) != 3 {
		t.Fatalf("unexpected production count; want: 3, got: %v", len(ps.getAllProductions()))
	}
}
