// Package lexer tokenizes the hornlog notation: lowercase atoms, uppercase
// variables, the operators ( ) , . and :-, with %-to-end-of-line comments.
// The Lexer keeps a single-token lookahead buffer so the parser can peek at
// the next token before deciding which production applies.
package lexer

import "fmt"

// Lexer scans an input string left to right with one-token lookahead.
// The lookahead buffer is private, single-owner state; a Lexer must not be
// shared between goroutines.
type Lexer struct {
	input  []rune
	pos    int
	peeked *Token
}

// New returns a Lexer over input. The input is fully held in memory; callers
// feed one unit (a line or a program text) per Lexer.
func New(input string) *Lexer {
	return &Lexer{input: []rune(input)}
}

// Peek returns the next token without consuming it. Repeated calls return the
// same token until a Pop. A nil token with a nil error means end of input.
func (l *Lexer) Peek() (*Token, error) {
	if l.peeked != nil {
		return l.peeked, nil
	}
	tok, err := l.scan()
	if err != nil {
		return nil, err
	}
	l.peeked = tok
	return tok, nil
}

// Pop consumes and returns the next token. A nil token with a nil error means
// end of input.
func (l *Lexer) Pop() (*Token, error) {
	if l.peeked != nil {
		tok := l.peeked
		l.peeked = nil
		return tok, nil
	}
	return l.scan()
}

// Consume pops the next token only if it exactly matches want. On a mismatch
// the lookahead buffer is left untouched.
func (l *Lexer) Consume(want Token) (bool, error) {
	tok, err := l.Peek()
	if err != nil {
		return false, err
	}
	if tok == nil || *tok != want {
		return false, nil
	}
	l.peeked = nil
	return true, nil
}

// Expect consumes the next token, which must exactly match want; otherwise it
// returns an ExpectedTokenError and leaves the lookahead buffer untouched.
func (l *Lexer) Expect(want Token) error {
	ok, err := l.Consume(want)
	if err != nil {
		return err
	}
	if !ok {
		found, _ := l.Peek()
		return &ExpectedTokenError{Want: want, Found: found}
	}
	return nil
}

func (l *Lexer) peekChar() (rune, bool) {
	if l.pos >= len(l.input) {
		return 0, false
	}
	return l.input[l.pos], true
}

func (l *Lexer) popChar() (rune, bool) {
	c, ok := l.peekChar()
	if ok {
		l.pos++
	}
	return c, ok
}

// scan produces the next token from the character stream, or nil at end of
// input. Comments never produce tokens.
func (l *Lexer) scan() (*Token, error) {
	l.skipBlanksAndComments()

	c, ok := l.peekChar()
	if !ok {
		return nil, nil
	}
	switch {
	case isLower(c):
		return l.scanAtom(), nil
	case isUpper(c):
		return l.scanVariable(), nil
	case c == '(' || c == ')' || c == ',' || c == '.':
		l.popChar()
		tok := Op(string(c))
		return &tok, nil
	case c == ':':
		l.popChar()
		if d, ok := l.popChar(); !ok || d != '-' {
			return nil, fmt.Errorf("after ':': %w", ErrExpectedDash)
		}
		tok := Op(":-")
		return &tok, nil
	default:
		return nil, &UnexpectedCharError{Char: c}
	}
}

func (l *Lexer) skipBlanksAndComments() {
	for {
		c, ok := l.peekChar()
		if !ok {
			return
		}
		switch {
		case c == ' ' || c == '\n' || c == '\t' || c == '\r':
			l.popChar()
		case c == '%':
			// Comment runs to the end of the line (or of the input).
			for {
				c, ok := l.popChar()
				if !ok || c == '\n' {
					break
				}
			}
		default:
			return
		}
	}
}

// scanAtom accumulates the maximal run of lowercase letters and digits.
func (l *Lexer) scanAtom() *Token {
	start := l.pos
	for {
		c, ok := l.peekChar()
		if !ok || (!isLower(c) && !isDigit(c)) {
			break
		}
		l.popChar()
	}
	tok := Atom(string(l.input[start:l.pos]))
	return &tok
}

// scanVariable accumulates the leading uppercase letter plus the maximal run
// of lowercase letters. Digits are not permitted in variable names.
func (l *Lexer) scanVariable() *Token {
	start := l.pos
	l.popChar()
	for {
		c, ok := l.peekChar()
		if !ok || !isLower(c) {
			break
		}
		l.popChar()
	}
	tok := Variable(string(l.input[start:l.pos]))
	return &tok
}

func isLower(c rune) bool { return c >= 'a' && c <= 'z' }
func isUpper(c rune) bool { return c >= 'A' && c <= 'Z' }
func isDigit(c rune) bool { return c >= '0' && c <= '9' }
