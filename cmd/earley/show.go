package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dekarrin/rosed"
	"github.com/nihei9/earley/grammar"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "show <grammar file path>",
		Short:   "Print the productions, nullable non-terminals, and FIRST sets of a grammar",
		Example: `  earley show pairs.txt`,
		Args:    cobra.ExactArgs(1),
		RunE:    runShow,
	}
	rootCmd.AddCommand(cmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	g, err := readGrammar(args[0])
	if err != nil {
		return err
	}
	writeGrammarReport(os.Stdout, g)
	return nil
}

const reportTableWidth = 80

func writeGrammarReport(w io.Writer, g *grammar.Grammar) {
	fmt.Fprintf(w, "# Productions\n\n")
	prods := [][]string{{"No.", "Production"}}
	for _, prod := range g.Productions() {
		prods = append(prods, []string{
			strconv.Itoa(prod.Num().Int()),
			g.FormatProduction(prod, -1),
		})
	}
	fmt.Fprintln(w, formatTable(prods))

	fmt.Fprintf(w, "\n# Non-terminals\n\n")
	nonTerms := [][]string{{"Symbol", "Nullable", "FIRST"}}
	for _, sym := range g.SymbolTable().NonTerminalSymbols() {
		var first []string
		for _, t := range g.First(sym) {
			first = append(first, g.Text(t))
		}
		nonTerms = append(nonTerms, []string{
			g.Text(sym),
			strconv.FormatBool(g.Nullable(sym)),
			strings.Join(first, " "),
		})
	}
	fmt.Fprintln(w, formatTable(nonTerms))
}

func formatTable(data [][]string) string {
	return rosed.Edit("").
		InsertTableOpts(0, data, reportTableWidth, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()
}
