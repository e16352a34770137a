package spec

import "fmt"

type SyntaxError struct {
	message string
}

func newSyntaxError(message string) *SyntaxError {
	return &SyntaxError{
		message: message,
	}
}

func (e *SyntaxError) Error() string {
	return e.message
}

var (
	synErrNoSeparator      = newSyntaxError("the separator '>' is missing")
	synErrNoLHS            = newSyntaxError("a left-hand side is missing")
	synErrMultiSymbolLHS   = newSyntaxError("the left-hand side must be exactly one symbol")
	synErrNoProduction     = newSyntaxError("a grammar must have at least one production")
	synErrUnknownDirective = newSyntaxError("unknown directive")
	synErrDirInvalidParam  = newSyntaxError("invalid directive parameter")
	synErrDuplicateStart   = newSyntaxError("the start symbol is declared more than once")
)

// FormatError reports malformed grammar text. Row is 1-based and zero when the text didn't come from a
// multi-line source.
type FormatError struct {
	Cause  *SyntaxError
	Detail string
	Row    int
}

func (e *FormatError) Error() string {
	msg := fmt.Sprintf("format error: %v", e.Cause)
	if e.Detail != "" {
		msg = fmt.Sprintf("%v: %v", msg, e.Detail)
	}
	if e.Row > 0 {
		return fmt.Sprintf("%v: %v", e.Row, msg)
	}
	return msg
}

func (e *FormatError) Unwrap() error {
	return e.Cause
}
