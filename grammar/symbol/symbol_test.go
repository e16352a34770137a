package symbol

import "testing"

func TestSymbolTable(t *testing.T) {
	tab := NewSymbolTable()
	w := tab.Writer()
	for _, text := range []string{"S", "A", "B"} {
		if _, err := w.RegisterNonTerminalSymbol(text); err != nil {
			t.Fatal(err)
		}
	}
	for _, text := range []string{"a", "b", "+"} {
		if _, err := w.RegisterTerminalSymbol(text); err != nil {
			t.Fatal(err)
		}
	}

	tests := []struct {
		text          string
		isNonTerminal bool
		isTerminal    bool
	}{
		{
			text:          "S",
			isNonTerminal: true,
		},
		{
			text:          "A",
			isNonTerminal: true,
		},
		{
			text:          "B",
			isNonTerminal: true,
		},
		{
			text:       "a",
			isTerminal: true,
		},
		{
			text:       "b",
			isTerminal: true,
		},
		{
			text:       "+",
			isTerminal: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			r := tab.Reader()
			sym, ok := r.ToSymbol(tt.text)
			if !ok {
				t.Fatalf("symbol was not found")
			}
			testSymbolProperty(t, sym, false, tt.isNonTerminal, tt.isTerminal)
			text, ok := r.ToText(sym)
			if !ok {
				t.Fatalf("text was not found")
			}
			if text != tt.text {
				t.Fatalf("unexpected text representation; want: %v, got: %v", tt.text, text)
			}
		})
	}

	t.Run("Nil", func(t *testing.T) {
		testSymbolProperty(t, SymbolNil, true, false, false)
	})

	t.Run("registering the same text twice returns the same symbol", func(t *testing.T) {
		s1, err := w.RegisterNonTerminalSymbol("S")
		if err != nil {
			t.Fatal(err)
		}
		s2, _ := tab.Reader().ToSymbol("S")
		if s1 != s2 {
			t.Fatalf("unexpected symbol; want: %v, got: %v", s2, s1)
		}
	})

	t.Run("a text cannot change its kind", func(t *testing.T) {
		if _, err := w.RegisterTerminalSymbol("S"); err == nil {
			t.Fatalf("expected an error")
		}
		if _, err := w.RegisterNonTerminalSymbol("a"); err == nil {
			t.Fatalf("expected an error")
		}
	})

	t.Run("an empty text is rejected", func(t *testing.T) {
		if _, err := w.RegisterTerminalSymbol(""); err == nil {
			t.Fatalf("expected an error")
		}
	})

	t.Run("symbols are listed per kind in registration order", func(t *testing.T) {
		r := tab.Reader()
		nts := r.NonTerminalSymbols()
		if len(nts) != 3 {
			t.Fatalf("unexpected non-terminal count; want: 3, got: %v", len(nts))
		}
		for i, want := range []string{"S", "A", "B"} {
			if text, _ := r.ToText(nts[i]); text != want {
				t.Fatalf("unexpected non-terminal; want: %v, got: %v", want, text)
			}
		}
		ts := r.TerminalSymbols()
		if len(ts) != 3 {
			t.Fatalf("unexpected terminal count; want: 3, got: %v", len(ts))
		}
		for i, want := range []string{"a", "b", "+"} {
			if text, _ := r.ToText(ts[i]); text != want {
				t.Fatalf("unexpected terminal; want: %v, got: %v", want, text)
			}
		}
	})
}

func TestNewSymbol_Limit(t *testing.T) {
	if _, err := newSymbol(symbolKindTerminal, symbolNumMax); err != nil {
		t.Fatalf("the maximum number must be accepted: %v", err)
	}
	if _, err := newSymbol(symbolKindTerminal, symbolNumMax+1); err == nil {
		t.Fatalf("expected an error")
	}
}

func testSymbolProperty(t *testing.T, sym Symbol, isNil, isNonTerminal, isTerminal bool) {
	t.Helper()

	if v := sym.IsNil(); v != isNil {
		t.Fatalf("isNil property is mismatched; want: %v, got: %v", isNil, v)
	}
	if v := sym.IsNonTerminal(); v != isNonTerminal {
		t.Fatalf("isNonTerminal property is mismatched; want: %v, got: %v", isNonTerminal, v)
	}
	if v := sym.IsTerminal(); v != isTerminal {
		t.Fatalf("isTerminal property is mismatched; want: %v, got: %v", isTerminal, v)
	}
}
