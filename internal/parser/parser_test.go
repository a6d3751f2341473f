package parser

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"hornlog/internal/lexer"
	"hornlog/internal/term"
)

func parseOne(t *testing.T, input string) term.Term {
	t.Helper()
	clause, err := New(lexer.New(input)).ParseClause()
	if err != nil {
		t.Fatalf("ParseClause(%q) error = %v", input, err)
	}
	if clause == nil {
		t.Fatalf("ParseClause(%q) = no match", input)
	}
	return clause
}

func TestParseFacts(t *testing.T) {
	cases := []struct {
		input string
		want  term.Term
	}{
		{"cat.", &term.Predicate{Name: "cat"}},
		{"eq(a).", &term.Predicate{Name: "eq", Args: []term.Term{&term.Atom{Text: "a"}}}},
		{"eq(A).", &term.Predicate{Name: "eq", Args: []term.Term{&term.Variable{Text: "A"}}}},
		{
			// Argument order is preserved; identical variable names are not
			// merged or checked here. That is the engine's business.
			"add(X, e, X).",
			&term.Predicate{Name: "add", Args: []term.Term{
				&term.Variable{Text: "X"},
				&term.Atom{Text: "e"},
				&term.Variable{Text: "X"},
			}},
		},
	}
	for _, c := range cases {
		got := parseOne(t, c.input)
		if diff := cmp.Diff(c.want, got); diff != "" {
			t.Errorf("ParseClause(%q) mismatch (-want +got):\n%s", c.input, diff)
		}
	}
}

func TestParseRules(t *testing.T) {
	cases := []struct {
		input string
		want  term.Term
	}{
		{
			"a :- b(X).",
			&term.Clause{
				Head: &term.Predicate{Name: "a"},
				Body: []*term.Predicate{
					{Name: "b", Args: []term.Term{&term.Variable{Text: "X"}}},
				},
			},
		},
		{
			"daughter(X, Y) :- father(Y, X), female(X).",
			&term.Clause{
				Head: &term.Predicate{Name: "daughter", Args: []term.Term{
					&term.Variable{Text: "X"},
					&term.Variable{Text: "Y"},
				}},
				Body: []*term.Predicate{
					{Name: "father", Args: []term.Term{
						&term.Variable{Text: "Y"},
						&term.Variable{Text: "X"},
					}},
					{Name: "female", Args: []term.Term{&term.Variable{Text: "X"}}},
				},
			},
		},
	}
	for _, c := range cases {
		got := parseOne(t, c.input)
		if diff := cmp.Diff(c.want, got); diff != "" {
			t.Errorf("ParseClause(%q) mismatch (-want +got):\n%s", c.input, diff)
		}
	}
}

func TestParseProgram(t *testing.T) {
	input := `
% family facts
father(adam, cain).
female(eve).
daughter(X, Y) :- father(Y, X), female(X).
`
	clauses, err := New(lexer.New(input)).Parse()
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(clauses) != 3 {
		t.Fatalf("Parse() returned %d clauses, want 3", len(clauses))
	}
	// Order is preserved.
	wantStrings := []string{
		"father(adam, cain)",
		"female(eve)",
		"daughter(X, Y) :- father(Y, X), female(X)",
	}
	for i, want := range wantStrings {
		if got := clauses[i].String(); got != want {
			t.Errorf("clause %d = %q, want %q", i, got, want)
		}
	}
}

func TestNoMatchInputs(t *testing.T) {
	// A missing clause head is "no match", not an error: this is how a
	// program detects its end, and how comment-only lines parse to nothing.
	for _, input := range []string{"", "   ", "% comment only", "\n% a\n% b\n"} {
		clause, err := New(lexer.New(input)).ParseClause()
		if err != nil {
			t.Errorf("ParseClause(%q) error = %v, want none", input, err)
		}
		if clause != nil {
			t.Errorf("ParseClause(%q) = %v, want no match", input, clause)
		}
	}
}

func TestTrailingCommentIsIgnored(t *testing.T) {
	bare := parseOne(t, "daughter(X, Y) :- father(Y, X), female(X).")
	commented := parseOne(t, "daughter(X, Y) :- father(Y, X), female(X). % comment")
	if diff := cmp.Diff(bare, commented); diff != "" {
		t.Errorf("trailing comment changed the parse (-bare +commented):\n%s", diff)
	}
}

func TestEmptyBodyIsRejected(t *testing.T) {
	// The grammar requires a non-empty body after ":-".
	_, err := New(lexer.New("cat :- .")).ParseClause()
	var tokErr *UnexpectedTokenError
	if !errors.As(err, &tokErr) {
		t.Fatalf("ParseClause(\"cat :- .\") error = %v, want UnexpectedTokenError", err)
	}
}

func TestMalformedClauses(t *testing.T) {
	cases := []string{
		"f().",           // empty argument list
		"f(a,).",         // trailing comma in a term list
		"a :- b(X), .",   // trailing comma in a body
		"f(a.",           // unclosed argument list
		"f(a, b",         // exhausted inside an argument list
		"cat",            // missing terminator
		"cat :- dog",     // missing terminator after a body
		"f(g(a)).",       // nested compounds are not terms in this dialect
		"daughter(X, Y)", // missing terminator on a compound fact
	}
	for _, input := range cases {
		clause, err := New(lexer.New(input)).ParseClause()
		if err == nil {
			t.Errorf("ParseClause(%q) = %v, want error", input, clause)
		}
	}
}

func TestMissingTerminator(t *testing.T) {
	_, err := New(lexer.New("cat")).ParseClause()
	var termErr *MissingTerminatorError
	if !errors.As(err, &termErr) {
		t.Fatalf("ParseClause(\"cat\") error = %v, want MissingTerminatorError", err)
	}
	if termErr.Found != nil {
		t.Fatalf("MissingTerminatorError.Found = %v, want nil (end of input)", termErr.Found)
	}
}

func TestLexErrorsPropagate(t *testing.T) {
	_, err := New(lexer.New("cat :")).ParseClause()
	if !errors.Is(err, lexer.ErrExpectedDash) {
		t.Fatalf("ParseClause(\"cat :\") error = %v, want ErrExpectedDash", err)
	}

	_, err = New(lexer.New("f(?).")).ParseClause()
	var charErr *lexer.UnexpectedCharError
	if !errors.As(err, &charErr) {
		t.Fatalf("ParseClause(\"f(?).\") error = %v, want UnexpectedCharError", err)
	}
}
