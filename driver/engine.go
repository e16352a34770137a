package driver

import (
	"io"
	"strings"

	"github.com/nihei9/earley/grammar"
	"github.com/nihei9/earley/grammar/symbol"
	"github.com/nihei9/earley/spec"
	"github.com/tliron/commonlog"
	"golang.org/x/text/unicode/norm"
)

type EngineOption func(e *Engine) error

// Logger makes the engine report the progress of each column at the debug level.
func Logger(logger commonlog.Logger) EngineOption {
	return func(e *Engine) error {
		e.logger = logger
		return nil
	}
}

// DisablePredictionCache makes the predictor expand a non-terminal every time it meets one, even when the
// non-terminal has already been expanded in the same column. The result doesn't change; only the number of
// insertion attempts does.
func DisablePredictionCache() EngineOption {
	return func(e *Engine) error {
		e.disablePredCache = true
		return nil
	}
}

// NormalizeInput converts string inputs to NFC before recognition. Grammar sources are always normalized, so
// this option makes decomposed inputs match composed terminals.
func NormalizeInput() EngineOption {
	return func(e *Engine) error {
		e.normalize = true
		return nil
	}
}

// Engine is an Earley recognizer. An engine holds no state of a recognition, so one engine can recognize any
// number of inputs, and engines sharing one grammar can run concurrently.
type Engine struct {
	gram             *grammar.Grammar
	lexSpec          *grammar.LexicalSpec
	logger           commonlog.Logger
	disablePredCache bool
	normalize        bool
}

func NewEngine(gram *grammar.Grammar, opts ...EngineOption) (*Engine, error) {
	e := &Engine{
		gram: gram,
	}

	for _, opt := range opts {
		err := opt(e)
		if err != nil {
			return nil, err
		}
	}

	if gram.Mode() == spec.ModeToken {
		ls, err := grammar.CompileLexSpec(gram)
		if err != nil {
			return nil, err
		}
		e.lexSpec = ls
	}

	return e, nil
}

func (e *Engine) Grammar() *grammar.Grammar {
	return e.gram
}

type Stats struct {
	// Items is the number of items in the chart.
	Items int
	// Attempts is the number of insertions tried, including duplicates.
	Attempts    int
	Predictions int
	Completions int
	Scans       int
}

type Result struct {
	Accepted bool
	Input    []symbol.Symbol
	Chart    *Chart
	Stats    Stats

	start symbol.Symbol
}

// AcceptedPrefixes returns every length k such that input[:k] is in the language, in ascending order.
func (r *Result) AcceptedPrefixes() []int {
	var ks []int
	for k := 0; k < r.Chart.Len(); k++ {
		if r.Chart.accepts(r.start, k) {
			ks = append(ks, k)
		}
	}
	return ks
}

// RecognizeString recognizes a string. In the character mode, each rune is one input symbol, and a rune that
// is not a terminal of the grammar matches nothing. In the token mode, the string is split into tokens by the
// lexer of the grammar.
func (e *Engine) RecognizeString(s string) (*Result, error) {
	if e.normalize {
		s = norm.NFC.String(s)
	}
	if e.lexSpec != nil {
		return e.RecognizeReader(strings.NewReader(s))
	}

	input := make([]symbol.Symbol, 0, len(s))
	for _, r := range s {
		sym, ok := e.gram.Terminal(string(r))
		if !ok {
			sym = symbol.SymbolNil
		}
		input = append(input, sym)
	}
	return e.Recognize(input), nil
}

// RecognizeReader recognizes the whole content of src. An invalid token leads to rejection rather than an
// error; only I/O errors are returned.
func (e *Engine) RecognizeReader(src io.Reader) (*Result, error) {
	if e.lexSpec == nil {
		b, err := io.ReadAll(src)
		if err != nil {
			return nil, err
		}
		return e.RecognizeString(string(b))
	}

	if e.normalize {
		src = norm.NFC.Reader(src)
	}
	toks, err := newTokenStream(e.lexSpec, src)
	if err != nil {
		return nil, err
	}
	input, err := toks.terminals()
	if err != nil {
		return nil, err
	}
	return e.Recognize(input), nil
}

// Recognize reports whether the grammar derives input. The grammar is never modified; each call builds its
// own chart.
func (e *Engine) Recognize(input []symbol.Symbol) *Result {
	r := &recognition{
		gram:             e.gram,
		input:            input,
		chart:            newChart(len(input)),
		disablePredCache: e.disablePredCache,
	}

	r.initialize()
	for j := 0; j <= len(input); j++ {
		r.closure(j)
		if j < len(input) {
			r.scan(j)
		}
		if e.logger != nil {
			e.logger.Debugf("column %v: %v items", j, r.chart.columns[j].Len())
		}
	}

	accepted := r.chart.accepts(e.gram.StartSymbol(), len(input))
	if e.logger != nil {
		e.logger.Debugf("input of %v symbols: accepted: %v, items: %v, attempts: %v", len(input), accepted, r.stats.Items, r.stats.Attempts)
	}

	return &Result{
		Accepted: accepted,
		Input:    input,
		Chart:    r.chart,
		Stats:    r.stats,
		start:    e.gram.StartSymbol(),
	}
}

type recognition struct {
	gram             *grammar.Grammar
	input            []symbol.Symbol
	chart            *Chart
	stats            Stats
	disablePredCache bool
}

func (r *recognition) add(j int, item *Item) bool {
	r.stats.Attempts++
	if !r.chart.columns[j].add(item) {
		return false
	}
	r.stats.Items++
	return true
}

func (r *recognition) initialize() {
	for _, prod := range r.gram.ProductionsFor(r.gram.StartSymbol()) {
		r.add(0, newItem(prod, 0, 0))
	}
}

// closure applies the predictor and the completer to column j until no item is added. Items appended while
// the loop runs are visited by the same loop, including ε-items that are completed on insertion.
func (r *recognition) closure(j int) {
	col := r.chart.columns[j]

	// predicted records non-terminals already expanded in this column.
	predicted := map[symbol.Symbol]struct{}{}

	for i := 0; i < len(col.items); i++ {
		item := col.items[i]
		if item.Completed() {
			r.complete(j, item)
			continue
		}
		next := item.Next()
		if r.gram.IsNonTerminal(next) {
			r.predict(j, item, next, predicted)
		}
	}
}

func (r *recognition) predict(j int, item *Item, next symbol.Symbol, predicted map[symbol.Symbol]struct{}) {
	_, done := predicted[next]
	if !done || r.disablePredCache {
		predicted[next] = struct{}{}
		for _, prod := range r.gram.ProductionsFor(next) {
			if r.add(j, newItem(prod, 0, j)) {
				r.stats.Predictions++
			}
		}
	}

	// When the non-terminal derives ε, its completed items may already have been visited before this item
	// arrived, so the completer would never advance this item. Advancing over a nullable non-terminal here
	// keeps such derivations.
	if r.gram.Nullable(next) {
		if r.add(j, item.advance()) {
			r.stats.Completions++
		}
	}
}

func (r *recognition) complete(j int, completed *Item) {
	lhs := completed.prod.LHS()
	// A range expression is evaluated once, so items appended to the origin column during this loop are not
	// visited here. When the origin is j itself, the predictor covers them through the nullable check.
	for _, item := range r.chart.columns[completed.origin].items {
		if item.Completed() || item.Next() != lhs {
			continue
		}
		if r.add(j, item.advance()) {
			r.stats.Completions++
		}
	}
}

func (r *recognition) scan(j int) {
	a := r.input[j]
	if !a.IsTerminal() {
		return
	}
	for _, item := range r.chart.columns[j].items {
		if item.Completed() || item.Next() != a {
			continue
		}
		if r.add(j+1, item.advance()) {
			r.stats.Scans++
		}
	}
}
