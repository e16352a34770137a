package driver

import (
	"io"

	"github.com/nihei9/earley/grammar"
	"github.com/nihei9/earley/grammar/symbol"
	mldriver "github.com/nihei9/maleeni/driver"
)

type tokenStream struct {
	lex            *mldriver.Lexer
	kindToTerminal []symbol.Symbol
	skip           []bool
}

func newTokenStream(ls *grammar.LexicalSpec, src io.Reader) (*tokenStream, error) {
	lex, err := mldriver.NewLexer(mldriver.NewLexSpec(ls.Spec), src)
	if err != nil {
		return nil, err
	}

	return &tokenStream{
		lex:            lex,
		kindToTerminal: ls.KindToTerminal,
		skip:           ls.Skip,
	}, nil
}

// next returns the terminal of the next significant token. An invalid token yields the nil symbol, which no
// item ever expects. The second result is false at EOF.
func (s *tokenStream) next() (symbol.Symbol, bool, error) {
	for {
		tok, err := s.lex.Next()
		if err != nil {
			return symbol.SymbolNil, false, err
		}
		if tok.EOF {
			return symbol.SymbolNil, false, nil
		}
		if tok.Invalid {
			return symbol.SymbolNil, true, nil
		}
		if s.skip[tok.KindID] {
			continue
		}
		return s.kindToTerminal[tok.KindID], true, nil
	}
}

func (s *tokenStream) terminals() ([]symbol.Symbol, error) {
	var syms []symbol.Symbol
	for {
		sym, ok, err := s.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return syms, nil
		}
		syms = append(syms, sym)
	}
}
