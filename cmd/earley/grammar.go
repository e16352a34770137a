package main

import (
	"fmt"

	"github.com/nihei9/earley/driver"
	"github.com/nihei9/earley/grammar"
	"github.com/tliron/commonlog"
)

func readGrammar(path string) (*grammar.Grammar, error) {
	g, err := grammar.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Cannot read a grammar: %w", err)
	}
	return g, nil
}

func newEngine(g *grammar.Grammar, opts ...driver.EngineOption) (*driver.Engine, error) {
	opts = append(opts, driver.Logger(commonlog.GetLogger("earley.driver")), driver.NormalizeInput())
	e, err := driver.NewEngine(g, opts...)
	if err != nil {
		return nil, fmt.Errorf("Cannot create a recognizer: %w", err)
	}
	return e, nil
}
