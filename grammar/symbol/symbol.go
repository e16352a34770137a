package symbol

import (
	"fmt"
	"sort"
)

type symbolKind string

const (
	symbolKindNonTerminal = symbolKind("non-terminal")
	symbolKindTerminal    = symbolKind("terminal")
)

func (t symbolKind) String() string {
	return string(t)
}

type SymbolNum uint16

func (n SymbolNum) Int() int {
	return int(n)
}

// Symbol is a grammar symbol packed into 16 bits. The most significant bit holds the kind of the symbol,
// and the rest holds a number unique within the kind.
type Symbol uint16

func (s Symbol) String() string {
	kind, num := s.describe()
	var prefix string
	switch {
	case s.IsNil():
		prefix = "?"
	case kind == symbolKindNonTerminal:
		prefix = "n"
	default:
		prefix = "t"
	}
	return fmt.Sprintf("%v%v", prefix, num)
}

const (
	maskKindPart    = uint16(0x8000) // 1000 0000 0000 0000
	maskNonTerminal = uint16(0x0000) // 0000 0000 0000 0000
	maskTerminal    = uint16(0x8000) // 1000 0000 0000 0000

	maskNumberPart = uint16(0x7fff) // 0111 1111 1111 1111

	SymbolNil = Symbol(0) // 0000 0000 0000 0000

	symbolNumMin = SymbolNum(1)          // The number 0 is used by the nil symbol.
	symbolNumMax = SymbolNum(0xffff) >> 1 // 0111 1111 1111 1111
)

func newSymbol(kind symbolKind, num SymbolNum) (Symbol, error) {
	if num > symbolNumMax {
		return SymbolNil, fmt.Errorf("a symbol number exceeds the limit; limit: %v, passed: %v", symbolNumMax, num)
	}

	kindMask := maskNonTerminal
	if kind == symbolKindTerminal {
		kindMask = maskTerminal
	}
	return Symbol(kindMask | uint16(num)), nil
}

func (s Symbol) Num() SymbolNum {
	_, num := s.describe()
	return num
}

func (s Symbol) Byte() []byte {
	if s.IsNil() {
		return []byte{0, 0}
	}
	return []byte{byte(uint16(s) >> 8), byte(uint16(s) & 0x00ff)}
}

func (s Symbol) IsNil() bool {
	_, num := s.describe()
	return num == 0
}

func (s Symbol) IsNonTerminal() bool {
	if s.IsNil() {
		return false
	}
	kind, _ := s.describe()
	return kind == symbolKindNonTerminal
}

func (s Symbol) IsTerminal() bool {
	if s.IsNil() {
		return false
	}
	return !s.IsNonTerminal()
}

func (s Symbol) describe() (symbolKind, SymbolNum) {
	kind := symbolKindNonTerminal
	if uint16(s)&maskKindPart > 0 {
		kind = symbolKindTerminal
	}
	return kind, SymbolNum(uint16(s) & maskNumberPart)
}

// SymbolTable maps the text of a symbol to its packed representation and vice versa.
// Once a grammar has been built, only the reader is handed out, so the table is safe for concurrent reads.
type SymbolTable struct {
	text2Sym   map[string]Symbol
	sym2Text   map[Symbol]string
	nonTermNum SymbolNum
	termNum    SymbolNum
}

type SymbolTableWriter struct {
	*SymbolTable
}

type SymbolTableReader struct {
	*SymbolTable
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		text2Sym:   map[string]Symbol{},
		sym2Text:   map[Symbol]string{},
		nonTermNum: symbolNumMin,
		termNum:    symbolNumMin,
	}
}

func (t *SymbolTable) Writer() *SymbolTableWriter {
	return &SymbolTableWriter{
		SymbolTable: t,
	}
}

func (t *SymbolTable) Reader() *SymbolTableReader {
	return &SymbolTableReader{
		SymbolTable: t,
	}
}

func (w *SymbolTableWriter) RegisterNonTerminalSymbol(text string) (Symbol, error) {
	return w.register(symbolKindNonTerminal, text)
}

func (w *SymbolTableWriter) RegisterTerminalSymbol(text string) (Symbol, error) {
	return w.register(symbolKindTerminal, text)
}

func (w *SymbolTableWriter) register(kind symbolKind, text string) (Symbol, error) {
	if text == "" {
		return SymbolNil, fmt.Errorf("a symbol text must be non-empty")
	}
	if sym, ok := w.text2Sym[text]; ok {
		if k, _ := sym.describe(); k != kind {
			return SymbolNil, fmt.Errorf("'%v' is already registered as a %v symbol", text, k)
		}
		return sym, nil
	}

	num := &w.nonTermNum
	if kind == symbolKindTerminal {
		num = &w.termNum
	}
	sym, err := newSymbol(kind, *num)
	if err != nil {
		return SymbolNil, err
	}
	*num++
	w.text2Sym[text] = sym
	w.sym2Text[sym] = text
	return sym, nil
}

func (r *SymbolTableReader) ToSymbol(text string) (Symbol, bool) {
	if sym, ok := r.text2Sym[text]; ok {
		return sym, true
	}
	return SymbolNil, false
}

func (r *SymbolTableReader) ToText(sym Symbol) (string, bool) {
	text, ok := r.sym2Text[sym]
	return text, ok
}

func (r *SymbolTableReader) TerminalSymbols() []Symbol {
	return r.collect(Symbol.IsTerminal)
}

func (r *SymbolTableReader) NonTerminalSymbols() []Symbol {
	return r.collect(Symbol.IsNonTerminal)
}

func (r *SymbolTableReader) collect(pred func(Symbol) bool) []Symbol {
	syms := []Symbol{}
	for sym := range r.sym2Text {
		if !pred(sym) {
			continue
		}
		syms = append(syms, sym)
	}
	sort.Slice(syms, func(i, j int) bool {
		return syms[i] < syms[j]
	})
	return syms
}
