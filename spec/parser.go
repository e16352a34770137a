package spec

import (
	"bufio"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

type Mode string

const (
	// ModeCharacter treats every rune of a right-hand side and of an input as one symbol.
	ModeCharacter = Mode("character")
	// ModeToken treats right-hand sides as whitespace-separated names and lexes inputs into tokens.
	ModeToken = Mode("token")
)

const (
	ruleSeparator   = ">"
	epsilonMarker   = "ε"
	commentMarker   = "#"
	directiveMarker = "%"
)

type RootNode struct {
	Mode     Mode
	Start    string
	StartRow int
	Rules    []*RuleNode
	Tokens   []*TokenNode
}

// RuleNode is a production as written. An empty RHS denotes an ε-production.
type RuleNode struct {
	LHS string
	RHS []string
	Row int
}

type TokenNode struct {
	Name    string
	Pattern string
	Literal bool
	Skip    bool
	Row     int
}

// ParseRule parses a character rule of the form `X>w`.
func ParseRule(text string) (*RuleNode, error) {
	return parseCharRule(norm.NFC.String(text), 0)
}

func parseCharRule(text string, row int) (*RuleNode, error) {
	text = strings.TrimSpace(text)
	lhs, rhs, ok := strings.Cut(text, ruleSeparator)
	if !ok {
		return nil, &FormatError{
			Cause:  synErrNoSeparator,
			Detail: text,
			Row:    row,
		}
	}
	lhs = strings.TrimSpace(lhs)
	switch utf8.RuneCountInString(lhs) {
	case 0:
		return nil, &FormatError{
			Cause:  synErrNoLHS,
			Detail: text,
			Row:    row,
		}
	case 1:
	default:
		return nil, &FormatError{
			Cause:  synErrMultiSymbolLHS,
			Detail: lhs,
			Row:    row,
		}
	}

	syms := []string{}
	if rhs != epsilonMarker {
		for _, r := range rhs {
			syms = append(syms, string(r))
		}
	}
	return &RuleNode{
		LHS: lhs,
		RHS: syms,
		Row: row,
	}, nil
}

func parseTokenRule(text string, row int) (*RuleNode, error) {
	lhs, rhs, ok := strings.Cut(text, ruleSeparator)
	if !ok {
		return nil, &FormatError{
			Cause:  synErrNoSeparator,
			Detail: text,
			Row:    row,
		}
	}
	lhsFields := strings.Fields(lhs)
	switch len(lhsFields) {
	case 0:
		return nil, &FormatError{
			Cause:  synErrNoLHS,
			Detail: text,
			Row:    row,
		}
	case 1:
	default:
		return nil, &FormatError{
			Cause:  synErrMultiSymbolLHS,
			Detail: strings.TrimSpace(lhs),
			Row:    row,
		}
	}

	syms := strings.Fields(rhs)
	if len(syms) == 1 && syms[0] == epsilonMarker {
		syms = []string{}
	}
	if syms == nil {
		syms = []string{}
	}
	return &RuleNode{
		LHS: lhsFields[0],
		RHS: syms,
		Row: row,
	}, nil
}

type sourceLine struct {
	text string
	row  int
}

// Parse reads a grammar source. Each line holds a rule, a directive, or a comment.
func Parse(src io.Reader) (*RootNode, error) {
	root := &RootNode{
		Mode: ModeCharacter,
	}

	var ruleLines []sourceLine
	s := bufio.NewScanner(src)
	row := 0
	for s.Scan() {
		row++
		line := norm.NFC.String(strings.TrimRightFunc(s.Text(), unicode.IsSpace))
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			continue
		case strings.HasPrefix(trimmed, commentMarker):
			continue
		case strings.HasPrefix(trimmed, directiveMarker):
			err := root.parseDirective(trimmed, row)
			if err != nil {
				return nil, err
			}
		default:
			ruleLines = append(ruleLines, sourceLine{
				text: line,
				row:  row,
			})
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}

	for _, l := range ruleLines {
		var rule *RuleNode
		var err error
		if root.Mode == ModeToken {
			rule, err = parseTokenRule(l.text, l.row)
		} else {
			rule, err = parseCharRule(l.text, l.row)
		}
		if err != nil {
			return nil, err
		}
		root.Rules = append(root.Rules, rule)
	}
	if len(root.Rules) == 0 {
		return nil, &FormatError{
			Cause: synErrNoProduction,
		}
	}
	if root.Start == "" {
		root.Start = root.Rules[0].LHS
		root.StartRow = root.Rules[0].Row
	}

	return root, nil
}

func (root *RootNode) parseDirective(line string, row int) error {
	fields := strings.Fields(strings.TrimPrefix(line, directiveMarker))
	if len(fields) == 0 {
		return &FormatError{
			Cause:  synErrUnknownDirective,
			Detail: line,
			Row:    row,
		}
	}

	name, params := fields[0], fields[1:]
	switch name {
	case "start":
		if len(params) != 1 {
			return &FormatError{
				Cause:  synErrDirInvalidParam,
				Detail: "'start' takes just one symbol",
				Row:    row,
			}
		}
		if root.Start != "" {
			return &FormatError{
				Cause:  synErrDuplicateStart,
				Detail: params[0],
				Row:    row,
			}
		}
		root.Start = params[0]
		root.StartRow = row
	case "token", "literal", "skip":
		if len(params) < 2 {
			return &FormatError{
				Cause:  synErrDirInvalidParam,
				Detail: "'" + name + "' takes a name and a pattern",
				Row:    row,
			}
		}
		// A pattern may contain spaces, so it is everything following the name.
		rest := strings.TrimSpace(strings.TrimPrefix(line, directiveMarker+name))
		pattern := strings.TrimSpace(strings.TrimPrefix(rest, params[0]))
		root.Mode = ModeToken
		root.Tokens = append(root.Tokens, &TokenNode{
			Name:    params[0],
			Pattern: pattern,
			Literal: name == "literal",
			Skip:    name == "skip",
			Row:     row,
		})
	default:
		return &FormatError{
			Cause:  synErrUnknownDirective,
			Detail: name,
			Row:    row,
		}
	}
	return nil
}
