// Package term defines the abstract-syntax terms produced by the parser:
// atoms, variables, predicates, and Horn clauses. Terms are immutable once
// constructed, so sub-terms are shared by pointer across predicates and
// clauses and may be read concurrently without locking.
package term

import (
	"fmt"
	"strings"
)

// Term is the interface satisfied by every node of the syntax tree.
type Term interface {
	fmt.Stringer

	// sealed keeps the set of term variants closed.
	sealed()
}

// Atom is a lowercase-initial constant naming a fact, predicate, or value.
// Text matches [a-z][a-z0-9]*.
type Atom struct {
	Text string
}

// Variable is an uppercase-initial identifier standing for an as-yet-unbound
// value, scoped to a single clause or query. Text matches [A-Z][a-z]*.
type Variable struct {
	Text string
}

// Predicate is a named relation over an ordered argument list. Args is nil
// for a zero-argument predicate and otherwise non-empty; each element is an
// *Atom or a *Variable.
type Predicate struct {
	Name string
	Args []Term
}

// Clause pairs a head predicate with a non-empty conjunctive body: the head
// holds if every body predicate holds. A fact (bodiless clause) is
// represented as a bare *Predicate, not as a Clause.
type Clause struct {
	Head *Predicate
	Body []*Predicate
}

// True is the sentinel for an unconditionally satisfied goal. The grammar
// never produces it; it is reserved for engine-side rewrites of bodiless
// rules.
var True Term = truth{}

type truth struct{}

func (*Atom) sealed()      {}
func (*Variable) sealed()  {}
func (*Predicate) sealed() {}
func (*Clause) sealed()    {}
func (truth) sealed()      {}

func (a *Atom) String() string { return a.Text }

func (v *Variable) String() string { return v.Text }

func (p *Predicate) String() string {
	if len(p.Args) == 0 {
		return p.Name
	}
	args := make([]string, len(p.Args))
	for i, arg := range p.Args {
		args[i] = arg.String()
	}
	return p.Name + "(" + strings.Join(args, ", ") + ")"
}

func (c *Clause) String() string {
	body := make([]string, len(c.Body))
	for i, p := range c.Body {
		body[i] = p.String()
	}
	return c.Head.String() + " :- " + strings.Join(body, ", ")
}

func (truth) String() string { return "true" }
