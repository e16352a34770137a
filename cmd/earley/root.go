package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

var rootFlags = struct {
	verbose *int
}{}

var rootCmd = &cobra.Command{
	Use:   "earley",
	Short: "Recognize strings with an arbitrary context-free grammar",
	Long: `earley decides whether strings belong to the language of a context-free grammar.
Any grammar is accepted, including left-recursive, ambiguous, and ε-producing ones.

A grammar file contains one production per line in the form X>w, where X is an
uppercase letter and w is a sequence of characters. Lines starting with %token,
%literal, or %skip switch the grammar to the token mode, where the right-hand side
is a whitespace-separated list of symbol names and the input is split into tokens.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		commonlog.Configure(*rootFlags.verbose, nil)
	},
}

func init() {
	rootFlags.verbose = rootCmd.PersistentFlags().CountP("verbose", "v", "add verbosity (can be repeated)")
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}
