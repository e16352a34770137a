package driver

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dekarrin/rosed"
	"github.com/nihei9/earley/grammar"
	"github.com/nihei9/earley/grammar/symbol"
	"github.com/nihei9/earley/spec"
)

const chartTableWidth = 80

// PrintChart writes every column of a recognition as a table. The heading of a column shows how far the input
// has been consumed and whether the prefix read so far is accepted.
func PrintChart(w io.Writer, g *grammar.Grammar, r *Result) {
	for j, col := range r.Chart.columns {
		marker := ""
		if r.Chart.accepts(r.start, j) {
			marker = " ACCEPTS"
		}
		fmt.Fprintf(w, "(%v) %q%v\n", j, formatInput(g, r.Input, j), marker)

		if col.Len() == 0 {
			fmt.Fprintf(w, "    (no items)\n")
			continue
		}
		data := [][]string{{"Origin", "Item"}}
		for _, item := range col.items {
			data = append(data, []string{
				strconv.Itoa(item.origin),
				g.FormatProduction(item.prod, item.dot),
			})
		}
		fmt.Fprintln(w, rosed.Edit("").
			InsertTableOpts(0, data, chartTableWidth, rosed.Options{
				TableHeaders:             true,
				NoTrailingLineSeparators: true,
			}).
			String())
	}
}

// formatInput renders input with `・` after the k-th symbol.
func formatInput(g *grammar.Grammar, input []symbol.Symbol, k int) string {
	sep := ""
	if g.Mode() == spec.ModeToken {
		sep = " "
	}
	texts := make([]string, 0, len(input)+1)
	for i, sym := range input {
		if i == k {
			texts = append(texts, "・")
		}
		if sym.IsNil() {
			texts = append(texts, "?")
			continue
		}
		texts = append(texts, g.Text(sym))
	}
	if k == len(input) {
		texts = append(texts, "・")
	}
	return strings.Join(texts, sep)
}
