package lexer

import (
	"errors"
	"fmt"
)

// ErrExpectedDash reports a ':' that is not immediately followed by '-'.
var ErrExpectedDash = errors.New("expected '-'")

// UnexpectedCharError reports a character that belongs to no token class.
type UnexpectedCharError struct {
	Char rune
}

func (e *UnexpectedCharError) Error() string {
	return fmt.Sprintf("unexpected character %q", e.Char)
}

// ExpectedTokenError reports an Expect call whose token was absent or did not
// match. Found is nil when the input was exhausted.
type ExpectedTokenError struct {
	Want  Token
	Found *Token
}

func (e *ExpectedTokenError) Error() string {
	if e.Found == nil {
		return fmt.Sprintf("expected %s, found end of input", e.Want)
	}
	return fmt.Sprintf("expected %s, found %s", e.Want, e.Found)
}
