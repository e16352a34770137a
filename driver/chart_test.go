package driver

import (
	"testing"
)

func TestColumn_Add(t *testing.T) {
	g := mustCharGrammar(t, "S>ab", "S>")
	prods := g.Productions()

	col := newColumn(0)
	items := []*Item{
		newItem(prods[0], 0, 0),
		newItem(prods[0], 1, 0),
		newItem(prods[0], 0, 1),
		newItem(prods[1], 0, 0),
	}
	for _, item := range items {
		if !col.add(item) {
			t.Fatalf("a new item must be added: %v", g.FormatProduction(item.Production(), item.Dot()))
		}
	}
	for _, item := range items {
		if col.add(newItem(item.Production(), item.Dot(), item.Origin())) {
			t.Fatalf("a duplicate item must not be added: %v", g.FormatProduction(item.Production(), item.Dot()))
		}
	}
	if col.Len() != len(items) {
		t.Fatalf("unexpected item count; want: %v, got: %v", len(items), col.Len())
	}
	for i, item := range col.Items() {
		if item != items[i] {
			t.Fatalf("items must keep the insertion order")
		}
	}
}

func TestItem(t *testing.T) {
	g := mustCharGrammar(t, "S>ab", "S>")
	prods := g.Productions()
	a, _ := g.Terminal("a")
	b, _ := g.Terminal("b")

	item := newItem(prods[0], 0, 0)
	if item.Completed() || item.Next() != a {
		t.Fatalf("unexpected item: %v", g.FormatProduction(item.Production(), item.Dot()))
	}
	item = item.advance()
	if item.Completed() || item.Next() != b || item.Dot() != 1 {
		t.Fatalf("unexpected item: %v", g.FormatProduction(item.Production(), item.Dot()))
	}
	item = item.advance()
	if !item.Completed() || !item.Next().IsNil() {
		t.Fatalf("unexpected item: %v", g.FormatProduction(item.Production(), item.Dot()))
	}

	empty := newItem(prods[1], 0, 0)
	if !empty.Completed() {
		t.Fatalf("an ε-item must be completed on creation")
	}
}
