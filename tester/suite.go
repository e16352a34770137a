package tester

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/nihei9/earley/grammar"
)

// Suite is a grammar together with inputs and their expected verdicts.
//
//	grammar = """
//	S>aSb
//	S>ab
//	"""
//
//	[[case]]
//	name = "balanced"
//	input = "aabb"
//	accept = true
type Suite struct {
	Grammar     string  `toml:"grammar"`
	GrammarFile string  `toml:"grammar_file"`
	Cases       []*Case `toml:"case"`

	// dir is the directory grammar_file is resolved against.
	dir string
}

type Case struct {
	Name   string `toml:"name"`
	Input  string `toml:"input"`
	Accept bool   `toml:"accept"`
}

// ParseSuite parses a suite. A relative grammar_file is resolved against dir.
func ParseSuite(data []byte, dir string) (*Suite, error) {
	s := &Suite{}
	if err := toml.Unmarshal(data, s); err != nil {
		return nil, err
	}

	switch {
	case s.Grammar == "" && s.GrammarFile == "":
		return nil, fmt.Errorf("either 'grammar' or 'grammar_file' must be set")
	case s.Grammar != "" && s.GrammarFile != "":
		return nil, fmt.Errorf("'grammar' and 'grammar_file' cannot be set together")
	}
	for i, c := range s.Cases {
		if c.Name == "" {
			c.Name = fmt.Sprintf("#%v", i+1)
		}
	}
	s.dir = dir

	return s, nil
}

func LoadSuite(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := ParseSuite(data, filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("%v: %w", path, err)
	}
	return s, nil
}

// LoadGrammar builds the grammar the suite refers to.
func (s *Suite) LoadGrammar() (*grammar.Grammar, error) {
	if s.GrammarFile == "" {
		return grammar.Read(strings.NewReader(s.Grammar))
	}

	path := s.GrammarFile
	if !filepath.IsAbs(path) {
		path = filepath.Join(s.dir, path)
	}
	return grammar.ReadFile(path)
}

type SuiteWithMetadata struct {
	Suite    *Suite
	FilePath string
	Error    error
}

// ListSuites loads the suite at path. When path is a directory, every `.toml` file under it is loaded.
func ListSuites(path string) []*SuiteWithMetadata {
	fi, err := os.Stat(path)
	if err != nil {
		return []*SuiteWithMetadata{
			{
				FilePath: path,
				Error:    err,
			},
		}
	}
	if !fi.IsDir() {
		s, err := LoadSuite(path)
		return []*SuiteWithMetadata{
			{
				Suite:    s,
				FilePath: path,
				Error:    err,
			},
		}
	}

	es, err := os.ReadDir(path)
	if err != nil {
		return []*SuiteWithMetadata{
			{
				FilePath: path,
				Error:    err,
			},
		}
	}
	var suites []*SuiteWithMetadata
	for _, e := range es {
		if !e.IsDir() && filepath.Ext(e.Name()) != ".toml" {
			continue
		}
		ss := ListSuites(filepath.Join(path, e.Name()))
		suites = append(suites, ss...)
	}
	return suites
}
