// Package database holds the ordered clause store a session queries against,
// including the built-in fact base baked into the binary.
package database

import (
	_ "embed"
	"fmt"
	"os"

	"hornlog/internal/lexer"
	"hornlog/internal/parser"
	"hornlog/internal/term"
)

//go:embed builtin.pl
var builtinFacts string

// Database is an ordered, append-only sequence of top-level clauses. It is
// populated before the first query and never mutated afterwards, so any
// number of evaluations may read it concurrently without locking.
type Database struct {
	clauses []term.Term
}

// Bootstrap parses the embedded built-in fact text into a fresh Database.
// This runs once per process, before any query is accepted.
func Bootstrap() (*Database, error) {
	db := &Database{}
	if err := db.appendSource(builtinFacts); err != nil {
		return nil, fmt.Errorf("builtin facts: %w", err)
	}
	return db, nil
}

// LoadFile appends the clauses of a facts file. It must be called during
// startup, before the database is handed to a session.
func (db *Database) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := db.appendSource(string(data)); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// appendSource parses src as a program and appends its clauses in order. The
// whole text must be consumed; leftover tokens mean a malformed clause.
func (db *Database) appendSource(src string) error {
	lex := lexer.New(src)
	clauses, err := parser.New(lex).Parse()
	if err != nil {
		return err
	}
	if tok, err := lex.Peek(); err != nil {
		return err
	} else if tok != nil {
		return &parser.UnexpectedTokenError{Expected: "clause", Found: tok}
	}
	db.clauses = append(db.clauses, clauses...)
	return nil
}

// Clauses returns the backing clause list in insertion order. Callers must
// treat it as read-only.
func (db *Database) Clauses() []term.Term {
	return db.clauses
}

// Len returns the number of top-level clauses.
func (db *Database) Len() int {
	return len(db.clauses)
}

// Stats summarizes the database for diagnostics.
type Stats struct {
	Total      int
	Predicates map[string]int
}

// Stats counts clauses per head predicate name.
func (db *Database) Stats() Stats {
	s := Stats{Total: len(db.clauses), Predicates: make(map[string]int)}
	for _, clause := range db.clauses {
		switch c := clause.(type) {
		case *term.Predicate:
			s.Predicates[c.Name]++
		case *term.Clause:
			s.Predicates[c.Head.Name]++
		}
	}
	return s
}
