package grammar

import (
	"testing"
)

type first struct {
	lhs      string
	symbols  []string
	nullable bool
}

func TestGenFirst(t *testing.T) {
	tests := []struct {
		caption string
		rules   []string
		first   []first
	}{
		{
			caption: "productions contain only non-empty productions",
			rules: []string{
				"E>E+T",
				"E>T",
				"T>T*F",
				"T>F",
				"F>(E)",
				"F>x",
			},
			first: []first{
				{lhs: "E", symbols: []string{"(", "x"}},
				{lhs: "T", symbols: []string{"(", "x"}},
				{lhs: "F", symbols: []string{"(", "x"}},
			},
		},
		{
			caption: "productions contain ε-productions",
			rules: []string{
				"S>AB",
				"A>a",
				"A>",
				"B>b",
			},
			first: []first{
				{lhs: "S", symbols: []string{"a", "b"}},
				{lhs: "A", symbols: []string{"a"}, nullable: true},
				{lhs: "B", symbols: []string{"b"}},
			},
		},
		{
			caption: "ε propagates through a chain of nullable non-terminals",
			rules: []string{
				"S>AAB",
				"A>",
				"B>C",
				"C>",
				"C>c",
			},
			first: []first{
				{lhs: "S", symbols: []string{"c"}, nullable: true},
				{lhs: "A", nullable: true},
				{lhs: "B", symbols: []string{"c"}, nullable: true},
				{lhs: "C", symbols: []string{"c"}, nullable: true},
			},
		},
		{
			caption: "an unproductive non-terminal contributes nothing",
			rules: []string{
				"S>Xa",
				"S>b",
			},
			first: []first{
				{lhs: "S", symbols: []string{"b"}},
				{lhs: "X"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			g := mustCharGrammar(t, tt.rules...)
			genSym := newTestSymbolGenerator(t, g.SymbolTable())

			for _, ttFirst := range tt.first {
				sym := genSym(ttFirst.lhs)
				if g.Nullable(sym) != ttFirst.nullable {
					t.Fatalf("unexpected nullable property of %v; want: %v", ttFirst.lhs, ttFirst.nullable)
				}

				actual := map[string]struct{}{}
				for _, s := range g.First(sym) {
					actual[g.Text(s)] = struct{}{}
				}
				if len(actual) != len(ttFirst.symbols) {
					t.Fatalf("unexpected FIRST of %v; want: %v, got: %v", ttFirst.lhs, ttFirst.symbols, actual)
				}
				for _, s := range ttFirst.symbols {
					if _, ok := actual[s]; !ok {
						t.Fatalf("unexpected FIRST of %v; want: %v, got: %v", ttFirst.lhs, ttFirst.symbols, actual)
					}
				}
			}
		})
	}
}
