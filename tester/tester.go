package tester

import (
	"fmt"
	"strings"
	"sync"

	"github.com/nihei9/earley/driver"
	"github.com/nihei9/earley/grammar"
	"github.com/tliron/commonlog"
)

type TestResult struct {
	Name  string
	Error error
}

func (r *TestResult) String() string {
	if r.Error != nil {
		const indent = "    "

		msgLines := strings.Split(r.Error.Error(), "\n")
		return fmt.Sprintf("Failed %v:\n%v%v", r.Name, indent, strings.Join(msgLines, "\n"+indent))
	}
	return fmt.Sprintf("Passed %v", r.Name)
}

type Tester struct {
	Grammar *grammar.Grammar
	Cases   []*Case
	Logger  commonlog.Logger
}

// Run recognizes every case concurrently. The results are in the same order as the cases.
func (t *Tester) Run() []*TestResult {
	rs := make([]*TestResult, len(t.Cases))
	var wg sync.WaitGroup
	for i, c := range t.Cases {
		wg.Add(1)
		go func(i int, c *Case) {
			defer wg.Done()
			rs[i] = t.runTest(c)
		}(i, c)
	}
	wg.Wait()
	return rs
}

func (t *Tester) runTest(c *Case) *TestResult {
	var opts []driver.EngineOption
	if t.Logger != nil {
		opts = append(opts, driver.Logger(t.Logger))
	}
	e, err := driver.NewEngine(t.Grammar, opts...)
	if err != nil {
		return &TestResult{
			Name:  c.Name,
			Error: err,
		}
	}

	r, err := e.RecognizeString(c.Input)
	if err != nil {
		return &TestResult{
			Name:  c.Name,
			Error: err,
		}
	}
	if r.Accepted != c.Accept {
		return &TestResult{
			Name:  c.Name,
			Error: fmt.Errorf("%q: want: %v, got: %v", c.Input, verdict(c.Accept), verdict(r.Accepted)),
		}
	}
	return &TestResult{
		Name: c.Name,
	}
}

func verdict(accepted bool) string {
	if accepted {
		return "accept"
	}
	return "reject"
}
