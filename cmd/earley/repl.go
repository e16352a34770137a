package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/nihei9/earley/driver"
	"github.com/spf13/cobra"
)

var replFlags = struct {
	chart *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "repl <grammar file path>",
		Short: "Recognize inputs typed at a prompt",
		Long: `repl reads one input per line and prints accept or reject.
Type :chart to toggle printing charts, and :quit or Ctrl-D to exit.`,
		Example: `  earley repl pairs.txt`,
		Args:    cobra.ExactArgs(1),
		RunE:    runREPL,
	}
	replFlags.chart = cmd.Flags().Bool("chart", false, "print the chart of each input")
	rootCmd.AddCommand(cmd)
}

func runREPL(cmd *cobra.Command, args []string) error {
	g, err := readGrammar(args[0])
	if err != nil {
		return err
	}
	e, err := newEngine(g)
	if err != nil {
		return err
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt: "> ",
	})
	if err != nil {
		return fmt.Errorf("create readline config: %w", err)
	}
	defer rl.Close()

	chart := *replFlags.chart
	for {
		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
				return nil
			}
			return err
		}

		switch strings.TrimSpace(line) {
		case ":quit":
			return nil
		case ":chart":
			chart = !chart
			fmt.Fprintf(os.Stdout, "chart: %v\n", chart)
			continue
		}

		r, err := e.RecognizeString(line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			continue
		}
		if r.Accepted {
			fmt.Fprintln(os.Stdout, "accept")
		} else {
			fmt.Fprintln(os.Stdout, "reject")
		}
		if chart {
			driver.PrintChart(os.Stdout, g, r)
		}
	}
}
