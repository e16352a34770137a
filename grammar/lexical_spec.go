package grammar

import (
	"fmt"
	"io"
	"strings"

	"github.com/nihei9/earley/grammar/symbol"
	"github.com/nihei9/earley/spec"
	mlcompiler "github.com/nihei9/maleeni/compiler"
	mlspec "github.com/nihei9/maleeni/spec"
)

const lexSpecName = "earley"

// LexicalSpec is a compiled lexer for a token grammar. KindToTerminal and Skip are indexed by lexical kind IDs
// of the compiled specification.
type LexicalSpec struct {
	Spec           *mlspec.CompiledLexSpec
	KindToTerminal []symbol.Symbol
	Skip           []bool
}

// CompileLexSpec compiles the tokens of a token grammar into a DFA lexer. Tokens declared earlier take
// precedence when several patterns match the same longest lexeme.
func CompileLexSpec(g *Grammar) (*LexicalSpec, error) {
	if g.mode != spec.ModeToken {
		return nil, semErrNotTokenGrammar
	}

	entries := make([]*mlspec.LexEntry, 0, len(g.tokens))
	for _, tok := range g.tokens {
		pattern := tok.pattern
		if tok.literal {
			pattern = mlspec.EscapePattern(pattern)
		}
		entries = append(entries, &mlspec.LexEntry{
			Kind:    mlspec.LexKindName(tok.name),
			Pattern: mlspec.LexPattern(pattern),
		})
	}

	lexSpec, err, cErrs := mlcompiler.Compile(&mlspec.LexSpec{
		Name:    lexSpecName,
		Entries: entries,
	}, mlcompiler.CompressionLevel(mlcompiler.CompressionLevelMax))
	if err != nil {
		if len(cErrs) > 0 {
			var b strings.Builder
			writeCompileError(&b, cErrs[0])
			for _, cerr := range cErrs[1:] {
				fmt.Fprintf(&b, "\n")
				writeCompileError(&b, cerr)
			}
			return nil, fmt.Errorf("%v", b.String())
		}
		return nil, err
	}

	skipKinds := map[string]struct{}{}
	for _, tok := range g.tokens {
		if tok.skip {
			skipKinds[tok.name] = struct{}{}
		}
	}

	kind2Term := make([]symbol.Symbol, len(lexSpec.KindNames))
	skip := make([]bool, len(lexSpec.KindNames))
	for i, k := range lexSpec.KindNames {
		if k == mlspec.LexKindNameNil {
			kind2Term[i] = symbol.SymbolNil
			continue
		}

		sym, ok := g.Terminal(k.String())
		if !ok {
			return nil, fmt.Errorf("terminal symbol '%v' was not found in a symbol table", k)
		}
		kind2Term[i] = sym
		if _, ok := skipKinds[k.String()]; ok {
			skip[i] = true
		}
	}

	return &LexicalSpec{
		Spec:           lexSpec,
		KindToTerminal: kind2Term,
		Skip:           skip,
	}, nil
}

func writeCompileError(w io.Writer, cErr *mlcompiler.CompileError) {
	if cErr.Fragment {
		fmt.Fprintf(w, "fragment ")
	}
	fmt.Fprintf(w, "%v: %v", cErr.Kind, cErr.Cause)
	if cErr.Detail != "" {
		fmt.Fprintf(w, ": %v", cErr.Detail)
	}
}
