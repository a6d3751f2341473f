package parser

import (
	"fmt"

	"hornlog/internal/lexer"
)

// UnexpectedTokenError reports a position where the grammar required a
// construct and the observed token (nil for end of input) cannot begin it.
type UnexpectedTokenError struct {
	Expected string
	Found    *lexer.Token
}

func (e *UnexpectedTokenError) Error() string {
	if e.Found == nil {
		return fmt.Sprintf("expected %s, found end of input", e.Expected)
	}
	return fmt.Sprintf("expected %s, found %s", e.Expected, e.Found)
}

// MissingTerminatorError reports a clause that is not closed by '.'.
type MissingTerminatorError struct {
	Found *lexer.Token
}

func (e *MissingTerminatorError) Error() string {
	if e.Found == nil {
		return "expected '.' to end the clause, found end of input"
	}
	return fmt.Sprintf("expected '.' to end the clause, found %s", e.Found)
}
