package driver

import (
	"github.com/nihei9/earley/grammar"
	"github.com/nihei9/earley/grammar/symbol"
)

// Item is a dotted production recorded in the chart.
//
// S → a S b, origin 2, in column 5
//
// Dot | Item
// ----+----------------
// 0   | S → ・a S b
// 1   | S → a・S b
// 2   | S → a S・b
// 3   | S → a S b・
//
// The item at dot 2 asserts that `a S` derives input[2:5]. Items are never modified; advancing the dot
// yields a new item.
type Item struct {
	prod   *grammar.Production
	dot    int
	origin int
}

type itemKey struct {
	prod   *grammar.Production
	dot    int
	origin int
}

func newItem(prod *grammar.Production, dot, origin int) *Item {
	return &Item{
		prod:   prod,
		dot:    dot,
		origin: origin,
	}
}

func (i *Item) Production() *grammar.Production {
	return i.prod
}

func (i *Item) Dot() int {
	return i.dot
}

func (i *Item) Origin() int {
	return i.origin
}

// Completed reports whether the dot has reached the end of the RHS.
func (i *Item) Completed() bool {
	return i.dot >= i.prod.Len()
}

// Next returns the symbol following the dot, or the nil symbol when the item is completed.
func (i *Item) Next() symbol.Symbol {
	return i.prod.At(i.dot)
}

func (i *Item) advance() *Item {
	return newItem(i.prod, i.dot+1, i.origin)
}

func (i *Item) key() itemKey {
	return itemKey{
		prod:   i.prod,
		dot:    i.dot,
		origin: i.origin,
	}
}
