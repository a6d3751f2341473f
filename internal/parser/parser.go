// Package parser implements the recursive-descent grammar of the hornlog
// notation over the lexer's one-token lookahead:
//
//	Program       := Clause*
//	Clause        := Predicate ( ":-" PredicateList )? "."
//	Predicate     := Atom ( "(" TermList ")" )?
//	PredicateList := Predicate ( "," Predicate )*
//	TermList      := Term ( "," Term )*
//	Term          := Atom | Variable
//
// Argument lists and rule bodies must be non-empty: "f()" and "h :- ." are
// both rejected. All errors are ordinary values scoped to the current input
// unit; the parser never panics on malformed input.
package parser

import (
	"hornlog/internal/lexer"
	"hornlog/internal/term"
)

// Parser consumes tokens from a single Lexer and produces terms. Like the
// Lexer it wraps, a Parser is single-owner state.
type Parser struct {
	lex *lexer.Lexer
}

// New returns a Parser reading from lex.
func New(lex *lexer.Lexer) *Parser {
	return &Parser{lex: lex}
}

// Parse reads a whole program: clauses collected in order until the first
// position where no clause head parses. It does not require the input to be
// exhausted; callers that need that check the lexer afterwards.
func (p *Parser) Parse() ([]term.Term, error) {
	var clauses []term.Term
	for {
		clause, err := p.ParseClause()
		if err != nil {
			return nil, err
		}
		if clause == nil {
			return clauses, nil
		}
		clauses = append(clauses, clause)
	}
}

// ParseClause parses one clause: a head predicate, an optional ":-" with a
// non-empty body, and the "." terminator. A fact is returned as a bare
// *term.Predicate, a rule as a *term.Clause. A nil term with a nil error
// means no clause head was present; this is how Parse detects end of input.
func (p *Parser) ParseClause() (term.Term, error) {
	head, err := p.parsePredicate()
	if err != nil || head == nil {
		return nil, err
	}

	hasBody, err := p.lex.Consume(lexer.Op(":-"))
	if err != nil {
		return nil, err
	}
	if hasBody {
		body, err := p.parsePredicateList()
		if err != nil {
			return nil, err
		}
		if err := p.expectTerminator(); err != nil {
			return nil, err
		}
		return &term.Clause{Head: head, Body: body}, nil
	}

	if err := p.expectTerminator(); err != nil {
		return nil, err
	}
	return head, nil
}

// parsePredicate parses an atom name with an optional parenthesized,
// non-empty argument list. A nil predicate with a nil error means the
// lookahead is not an atom; nothing is consumed in that case.
func (p *Parser) parsePredicate() (*term.Predicate, error) {
	name, err := p.parseAtom()
	if err != nil || name == nil {
		return nil, err
	}

	pred := &term.Predicate{Name: name.Text}
	open, err := p.lex.Consume(lexer.Op("("))
	if err != nil {
		return nil, err
	}
	if !open {
		return pred, nil
	}
	args, err := p.parseTermList()
	if err != nil {
		return nil, err
	}
	if err := p.lex.Expect(lexer.Op(")")); err != nil {
		return nil, err
	}
	pred.Args = args
	return pred, nil
}

// parsePredicateList parses one predicate, then greedily a "," followed by
// another. A "," with no predicate after it is an error, as is a missing
// first predicate (rule bodies must be non-empty).
func (p *Parser) parsePredicateList() ([]*term.Predicate, error) {
	first, err := p.parsePredicate()
	if err != nil {
		return nil, err
	}
	if first == nil {
		return nil, p.unexpected("predicate")
	}
	preds := []*term.Predicate{first}
	for {
		more, err := p.lex.Consume(lexer.Op(","))
		if err != nil {
			return nil, err
		}
		if !more {
			return preds, nil
		}
		next, err := p.parsePredicate()
		if err != nil {
			return nil, err
		}
		if next == nil {
			return nil, p.unexpected("predicate after ','")
		}
		preds = append(preds, next)
	}
}

// parseTermList parses one term, then greedily a "," followed by another.
func (p *Parser) parseTermList() ([]term.Term, error) {
	first, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	args := []term.Term{first}
	for {
		more, err := p.lex.Consume(lexer.Op(","))
		if err != nil {
			return nil, err
		}
		if !more {
			return args, nil
		}
		next, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		args = append(args, next)
	}
}

// parseAtom is a non-consuming probe: it pops the lookahead only when it is
// an atom token, and otherwise reports no match with the buffer untouched.
func (p *Parser) parseAtom() (*term.Atom, error) {
	tok, err := p.lex.Peek()
	if err != nil {
		return nil, err
	}
	if tok == nil || tok.Kind != lexer.KindAtom {
		return nil, nil
	}
	if _, err := p.lex.Pop(); err != nil {
		return nil, err
	}
	return &term.Atom{Text: tok.Text}, nil
}

// parseTerm consumes the next token unconditionally; it must be an atom or a
// variable.
func (p *Parser) parseTerm() (term.Term, error) {
	tok, err := p.lex.Pop()
	if err != nil {
		return nil, err
	}
	if tok == nil {
		return nil, &UnexpectedTokenError{Expected: "atom or variable"}
	}
	switch tok.Kind {
	case lexer.KindAtom:
		return &term.Atom{Text: tok.Text}, nil
	case lexer.KindVariable:
		return &term.Variable{Text: tok.Text}, nil
	default:
		return nil, &UnexpectedTokenError{Expected: "atom or variable", Found: tok}
	}
}

func (p *Parser) expectTerminator() error {
	ok, err := p.lex.Consume(lexer.Op("."))
	if err != nil {
		return err
	}
	if !ok {
		found, _ := p.lex.Peek()
		return &MissingTerminatorError{Found: found}
	}
	return nil
}

// unexpected builds an UnexpectedTokenError carrying the current lookahead.
func (p *Parser) unexpected(expected string) error {
	found, _ := p.lex.Peek()
	return &UnexpectedTokenError{Expected: expected, Found: found}
}
