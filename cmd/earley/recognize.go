package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/nihei9/earley/driver"
	"github.com/spf13/cobra"
)

var recognizeFlags = struct {
	source                 *string
	chart                  *bool
	prefixes               *bool
	disablePredictionCache *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "recognize <grammar file path> [input...]",
		Short: "Decide whether inputs belong to the language of a grammar",
		Long: `recognize prints accept or reject for each input.
Inputs are taken from the arguments. Without arguments, each line of the source
file (default stdin) is one input.`,
		Example: `  earley recognize pairs.txt aabb aab
  cat inputs | earley recognize pairs.txt`,
		Args: cobra.MinimumNArgs(1),
		RunE: runRecognize,
	}
	recognizeFlags.source = cmd.Flags().StringP("source", "s", "", "source file path (default stdin)")
	recognizeFlags.chart = cmd.Flags().Bool("chart", false, "print the chart of each input")
	recognizeFlags.prefixes = cmd.Flags().Bool("prefixes", false, "print the lengths of the accepted prefixes of each input")
	recognizeFlags.disablePredictionCache = cmd.Flags().Bool("disable-prediction-cache", false, "predict a non-terminal every time it appears after a dot")
	rootCmd.AddCommand(cmd)
}

func runRecognize(cmd *cobra.Command, args []string) error {
	g, err := readGrammar(args[0])
	if err != nil {
		return err
	}
	var opts []driver.EngineOption
	if *recognizeFlags.disablePredictionCache {
		opts = append(opts, driver.DisablePredictionCache())
	}
	e, err := newEngine(g, opts...)
	if err != nil {
		return err
	}

	inputs := args[1:]
	if len(inputs) == 0 {
		var src io.Reader = os.Stdin
		if *recognizeFlags.source != "" {
			f, err := os.Open(*recognizeFlags.source)
			if err != nil {
				return fmt.Errorf("Cannot open the source file %s: %w", *recognizeFlags.source, err)
			}
			defer f.Close()
			src = f
		}
		inputs, err = readLines(src)
		if err != nil {
			return err
		}
	}

	rejected := false
	for _, input := range inputs {
		r, err := e.RecognizeString(input)
		if err != nil {
			return err
		}
		if r.Accepted {
			fmt.Fprintf(os.Stdout, "accept %q\n", input)
		} else {
			fmt.Fprintf(os.Stdout, "reject %q\n", input)
			rejected = true
		}
		if *recognizeFlags.prefixes {
			fmt.Fprintf(os.Stdout, "    accepted prefixes: %v\n", r.AcceptedPrefixes())
		}
		if *recognizeFlags.chart {
			driver.PrintChart(os.Stdout, g, r)
		}
	}
	if rejected {
		return errors.New("Some inputs were rejected")
	}
	return nil
}

func readLines(src io.Reader) ([]string, error) {
	var lines []string
	s := bufio.NewScanner(src)
	for s.Scan() {
		lines = append(lines, s.Text())
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
