package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/nihei9/earley/tester"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
)

func init() {
	cmd := &cobra.Command{
		Use:     "test <suite file path>|<suite directory path>...",
		Short:   "Test grammars against suites of inputs",
		Example: `  earley test testdata`,
		Args:    cobra.MinimumNArgs(1),
		RunE:    runTest,
	}
	rootCmd.AddCommand(cmd)
}

func runTest(cmd *cobra.Command, args []string) error {
	var suites []*tester.SuiteWithMetadata
	{
		for _, arg := range args {
			suites = append(suites, tester.ListSuites(arg)...)
		}
		errOccurred := false
		for _, s := range suites {
			if s.Error != nil {
				fmt.Fprintf(os.Stderr, "Failed to read a suite or a directory: %v\n%v\n", s.FilePath, s.Error)
				errOccurred = true
			}
		}
		if errOccurred {
			return errors.New("Cannot run test")
		}
	}

	testFailed := false
	for _, s := range suites {
		fmt.Fprintf(os.Stdout, "# %v\n", s.FilePath)
		g, err := s.Suite.LoadGrammar()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Cannot read a grammar: %v\n", err)
			testFailed = true
			continue
		}
		t := &tester.Tester{
			Grammar: g,
			Cases:   s.Suite.Cases,
			Logger:  commonlog.GetLogger("earley.tester"),
		}
		for _, r := range t.Run() {
			fmt.Fprintln(os.Stdout, r)
			if r.Error != nil {
				testFailed = true
			}
		}
	}
	if testFailed {
		return errors.New("Test failed")
	}
	return nil
}
