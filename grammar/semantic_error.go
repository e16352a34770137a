package grammar

type SemanticError struct {
	message string
}

func newSemanticError(message string) *SemanticError {
	return &SemanticError{
		message: message,
	}
}

func (e *SemanticError) Error() string {
	return e.message
}

var (
	semErrDuplicateTerminal     = newSemanticError("duplicate terminal")
	semErrSkippedTerminalInRule = newSemanticError("a terminal used in productions cannot be skipped")
	semErrTerminalAsLHS         = newSemanticError("a terminal cannot be the left-hand side of a production")
	semErrTerminalAsStart       = newSemanticError("the start symbol must be a non-terminal")
	semErrNotTokenGrammar       = newSemanticError("a lexical specification is available only for a token grammar")
)
