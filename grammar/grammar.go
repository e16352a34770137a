package grammar

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	verr "github.com/nihei9/earley/error"
	"github.com/nihei9/earley/grammar/symbol"
	"github.com/nihei9/earley/spec"
)

type tokenEntry struct {
	sym     symbol.Symbol
	name    string
	pattern string
	literal bool
	skip    bool
}

// Grammar is a context-free grammar with a designated start symbol. A grammar is never modified after it
// has been built, so recognizers running in different goroutines can share one.
type Grammar struct {
	mode          spec.Mode
	symbolTable   *symbol.SymbolTable
	productionSet *productionSet
	startSymbol   symbol.Symbol
	tokens        []*tokenEntry
	first         *firstSet
}

type GrammarBuilder struct {
	AST *spec.RootNode

	errs verr.SpecErrors
}

func (b *GrammarBuilder) Build() (*Grammar, error) {
	root := b.AST
	symTab := symbol.NewSymbolTable()
	w := symTab.Writer()

	var tokens []*tokenEntry
	{
		skipped := map[string]int{}
		for _, tok := range root.Tokens {
			if _, ok := symTab.Reader().ToSymbol(tok.Name); ok {
				b.errs = append(b.errs, &verr.SpecError{
					Cause:  semErrDuplicateTerminal,
					Detail: tok.Name,
					Row:    tok.Row,
				})
				continue
			}
			sym, err := w.RegisterTerminalSymbol(tok.Name)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, &tokenEntry{
				sym:     sym,
				name:    tok.Name,
				pattern: tok.Pattern,
				literal: tok.Literal,
				skip:    tok.Skip,
			})
			if tok.Skip {
				skipped[tok.Name] = tok.Row
			}
		}

		for _, rule := range root.Rules {
			for _, text := range rule.RHS {
				if _, ok := skipped[text]; !ok {
					continue
				}
				b.errs = append(b.errs, &verr.SpecError{
					Cause:  semErrSkippedTerminalInRule,
					Detail: text,
					Row:    rule.Row,
				})
			}
		}
	}

	// Left-hand sides are registered first so that a right-hand side refers to them as non-terminals
	// regardless of the order of rules.
	for _, rule := range root.Rules {
		if sym, ok := symTab.Reader().ToSymbol(rule.LHS); ok && sym.IsTerminal() {
			b.errs = append(b.errs, &verr.SpecError{
				Cause:  semErrTerminalAsLHS,
				Detail: rule.LHS,
				Row:    rule.Row,
			})
			continue
		}
		_, err := w.RegisterNonTerminalSymbol(rule.LHS)
		if err != nil {
			return nil, err
		}
	}

	var startSym symbol.Symbol
	{
		sym, ok := symTab.Reader().ToSymbol(root.Start)
		switch {
		case ok && sym.IsTerminal():
			b.errs = append(b.errs, &verr.SpecError{
				Cause:  semErrTerminalAsStart,
				Detail: root.Start,
				Row:    root.StartRow,
			})
		case ok:
			startSym = sym
		default:
			// A start symbol without productions is unproductive. The grammar is still valid, and it simply
			// generates no string.
			sym, err := w.RegisterNonTerminalSymbol(root.Start)
			if err != nil {
				return nil, err
			}
			startSym = sym
		}
	}

	if len(b.errs) > 0 {
		return nil, b.errs
	}

	prods := newProductionSet()
	for _, rule := range root.Rules {
		lhs, _ := symTab.Reader().ToSymbol(rule.LHS)
		rhs := make([]symbol.Symbol, 0, len(rule.RHS))
		for _, text := range rule.RHS {
			sym, err := registerRHSSymbol(symTab, root.Mode, text)
			if err != nil {
				return nil, err
			}
			rhs = append(rhs, sym)
		}
		prod, err := NewProduction(lhs, rhs...)
		if err != nil {
			return nil, err
		}
		prods.append(prod)
	}

	return &Grammar{
		mode:          root.Mode,
		symbolTable:   symTab,
		productionSet: prods,
		startSymbol:   startSym,
		tokens:        tokens,
		first:         genFirstSet(prods, symTab.Reader().NonTerminalSymbols()),
	}, nil
}

// registerRHSSymbol classifies a symbol that is not a left-hand side. In the character mode, an uppercase
// letter is a non-terminal even when it has no production. In the token mode, a name that is not a token
// is a non-terminal.
func registerRHSSymbol(symTab *symbol.SymbolTable, mode spec.Mode, text string) (symbol.Symbol, error) {
	if sym, ok := symTab.Reader().ToSymbol(text); ok {
		return sym, nil
	}
	w := symTab.Writer()
	if mode == spec.ModeToken {
		return w.RegisterNonTerminalSymbol(text)
	}
	r, _ := utf8.DecodeRuneInString(text)
	if unicode.IsUpper(r) {
		return w.RegisterNonTerminalSymbol(text)
	}
	return w.RegisterTerminalSymbol(text)
}

// NewCharGrammar builds a character grammar from `X>w` rules. The left-hand side of the first rule is the
// start symbol.
func NewCharGrammar(rules ...string) (*Grammar, error) {
	root := &spec.RootNode{
		Mode: spec.ModeCharacter,
	}
	for i, text := range rules {
		rule, err := spec.ParseRule(text)
		if err != nil {
			var fmtErr *spec.FormatError
			if errors.As(err, &fmtErr) {
				fmtErr.Row = i + 1
			}
			return nil, err
		}
		rule.Row = i + 1
		root.Rules = append(root.Rules, rule)
	}
	if len(root.Rules) == 0 {
		return nil, fmt.Errorf("a grammar must have at least one production")
	}
	root.Start = root.Rules[0].LHS
	root.StartRow = root.Rules[0].Row

	b := &GrammarBuilder{
		AST: root,
	}
	return b.Build()
}

// Read parses and builds a grammar source.
func Read(src io.Reader) (*Grammar, error) {
	root, err := spec.Parse(src)
	if err != nil {
		return nil, err
	}
	b := &GrammarBuilder{
		AST: root,
	}
	return b.Build()
}

// ReadFile reads a grammar file. Errors in the source are reported with the path and the offending line.
func ReadFile(path string) (*Grammar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := Read(f)
	if err != nil {
		if specErrs, ok := err.(verr.SpecErrors); ok {
			for _, e := range specErrs {
				e.FilePath = path
				e.SourceName = path
			}
			return nil, specErrs
		}
		return nil, verr.FromFormatError(err, path)
	}
	return g, nil
}

func (g *Grammar) Mode() spec.Mode {
	return g.mode
}

func (g *Grammar) StartSymbol() symbol.Symbol {
	return g.startSymbol
}

func (g *Grammar) SymbolTable() *symbol.SymbolTableReader {
	return g.symbolTable.Reader()
}

// ProductionsFor returns the productions of a non-terminal in declaration order. The result is empty when the
// symbol has no production. Callers must not modify the returned slice.
func (g *Grammar) ProductionsFor(sym symbol.Symbol) []*Production {
	prods, _ := g.productionSet.findByLHS(sym)
	return prods
}

func (g *Grammar) Productions() []*Production {
	return g.productionSet.getAllProductions()
}

func (g *Grammar) Production(id ProductionID) (*Production, bool) {
	return g.productionSet.findByID(id)
}

func (g *Grammar) IsNonTerminal(sym symbol.Symbol) bool {
	if _, ok := g.symbolTable.Reader().ToText(sym); !ok {
		return false
	}
	return sym.IsNonTerminal()
}

func (g *Grammar) IsTerminal(sym symbol.Symbol) bool {
	if _, ok := g.symbolTable.Reader().ToText(sym); !ok {
		return false
	}
	return sym.IsTerminal()
}

// Terminal returns the terminal symbol whose text is text.
func (g *Grammar) Terminal(text string) (symbol.Symbol, bool) {
	sym, ok := g.symbolTable.Reader().ToSymbol(text)
	if !ok || !sym.IsTerminal() {
		return symbol.SymbolNil, false
	}
	return sym, true
}

func (g *Grammar) Text(sym symbol.Symbol) string {
	text, ok := g.symbolTable.Reader().ToText(sym)
	if !ok {
		return sym.String()
	}
	return text
}

// Nullable reports whether a non-terminal derives the empty string.
func (g *Grammar) Nullable(sym symbol.Symbol) bool {
	e := g.first.findBySymbol(sym)
	return e != nil && e.empty
}

// First returns the terminals that can begin a string derived from a non-terminal.
func (g *Grammar) First(sym symbol.Symbol) []symbol.Symbol {
	e := g.first.findBySymbol(sym)
	if e == nil {
		return nil
	}
	return e.sortedSymbols()
}

// FormatProduction renders a production like `S → aSb`, or `expr → expr add term` in the token mode. When dot
// is within [0, len(RHS)], `・` marks the position; pass a negative dot to omit it.
func (g *Grammar) FormatProduction(prod *Production, dot int) string {
	sep := ""
	if g.mode == spec.ModeToken {
		sep = " "
	}

	var parts []string
	for i, sym := range prod.rhs {
		if i == dot {
			parts = append(parts, "・")
		}
		parts = append(parts, g.Text(sym))
	}
	switch {
	case dot == len(prod.rhs):
		parts = append(parts, "・")
	case prod.IsEmpty():
		parts = append(parts, "ε")
	}
	return fmt.Sprintf("%v → %v", g.Text(prod.lhs), strings.Join(parts, sep))
}
