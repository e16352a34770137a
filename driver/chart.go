package driver

import (
	"github.com/nihei9/earley/grammar/symbol"
)

// Column is the set of items whose match has progressed to one input position. Items keep their insertion
// order, and a column only grows.
type Column struct {
	index int
	items []*Item
	set   map[itemKey]struct{}
}

func newColumn(index int) *Column {
	return &Column{
		index: index,
		set:   map[itemKey]struct{}{},
	}
}

func (c *Column) add(item *Item) bool {
	k := item.key()
	if _, ok := c.set[k]; ok {
		return false
	}
	c.set[k] = struct{}{}
	c.items = append(c.items, item)
	return true
}

func (c *Column) Index() int {
	return c.index
}

func (c *Column) Len() int {
	return len(c.items)
}

func (c *Column) Items() []*Item {
	items := make([]*Item, len(c.items))
	copy(items, c.items)
	return items
}

// Chart holds one column per input position, from 0 to the length of the input.
type Chart struct {
	columns []*Column
}

func newChart(inputLen int) *Chart {
	cols := make([]*Column, inputLen+1)
	for i := range cols {
		cols[i] = newColumn(i)
	}
	return &Chart{
		columns: cols,
	}
}

func (c *Chart) Len() int {
	return len(c.columns)
}

func (c *Chart) Column(j int) *Column {
	return c.columns[j]
}

// accepts reports whether column j contains a completed item of the start symbol beginning at position 0.
// Any such item suffices; which production completed is irrelevant to recognition.
func (c *Chart) accepts(start symbol.Symbol, j int) bool {
	for _, item := range c.columns[j].items {
		if item.origin == 0 && item.Completed() && item.prod.LHS() == start {
			return true
		}
	}
	return false
}
