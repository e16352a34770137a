package grammar

import (
	"sort"

	"github.com/nihei9/earley/grammar/symbol"
)

type firstEntry struct {
	symbols map[symbol.Symbol]struct{}
	empty   bool
}

func newFirstEntry() *firstEntry {
	return &firstEntry{
		symbols: map[symbol.Symbol]struct{}{},
		empty:   false,
	}
}

func (e *firstEntry) add(sym symbol.Symbol) bool {
	if _, ok := e.symbols[sym]; ok {
		return false
	}
	e.symbols[sym] = struct{}{}
	return true
}

func (e *firstEntry) addEmpty() bool {
	if !e.empty {
		e.empty = true
		return true
	}
	return false
}

func (e *firstEntry) mergeExceptEmpty(target *firstEntry) bool {
	if target == nil {
		return false
	}
	changed := false
	for sym := range target.symbols {
		added := e.add(sym)
		if added {
			changed = true
		}
	}
	return changed
}

func (e *firstEntry) sortedSymbols() []symbol.Symbol {
	syms := make([]symbol.Symbol, 0, len(e.symbols))
	for sym := range e.symbols {
		syms = append(syms, sym)
	}
	sort.Slice(syms, func(i, j int) bool {
		return syms[i] < syms[j]
	})
	return syms
}

// firstSet holds FIRST of every non-terminal. The empty flag of an entry doubles as the nullable set:
// a non-terminal is nullable iff it derives ε.
type firstSet struct {
	set map[symbol.Symbol]*firstEntry
}

func newFirstSet(nonTerms []symbol.Symbol) *firstSet {
	fst := &firstSet{
		set: map[symbol.Symbol]*firstEntry{},
	}
	// Non-terminals without productions get an entry too. They stay empty forever.
	for _, sym := range nonTerms {
		fst.set[sym] = newFirstEntry()
	}

	return fst
}

func (fst *firstSet) findBySymbol(sym symbol.Symbol) *firstEntry {
	return fst.set[sym]
}

// genFirstSet computes FIRST by iterating until no entry changes. Every iteration only adds to the entries,
// and the entries are bounded by the number of terminals, so the loop terminates.
func genFirstSet(prods *productionSet, nonTerms []symbol.Symbol) *firstSet {
	fst := newFirstSet(nonTerms)
	for {
		more := false
		for _, prod := range prods.getAllProductions() {
			e := fst.findBySymbol(prod.lhs)
			if genProdFirstEntry(fst, e, prod) {
				more = true
			}
		}
		if !more {
			break
		}
	}
	return fst
}

func genProdFirstEntry(fst *firstSet, acc *firstEntry, prod *Production) bool {
	if prod.IsEmpty() {
		return acc.addEmpty()
	}

	changed := false
	for _, sym := range prod.rhs {
		if sym.IsTerminal() {
			if acc.add(sym) {
				changed = true
			}
			return changed
		}

		e := fst.findBySymbol(sym)
		if acc.mergeExceptEmpty(e) {
			changed = true
		}
		if e == nil || !e.empty {
			return changed
		}
	}
	if acc.addEmpty() {
		changed = true
	}
	return changed
}
