// Package solve defines the boundary to the resolution engine: the component
// that decides whether a query is derivable from a clause database. The
// parser's obligation ends at delivering well-formed terms; unification,
// backtracking, and cut all live behind this interface.
package solve

import (
	"hornlog/internal/database"
	"hornlog/internal/term"
)

// Engine reports whether query is derivable from db under the language's
// inference rule. Implementations must treat both arguments as read-only.
type Engine interface {
	Evaluate(db *database.Database, query term.Term) bool
}

// Unproven is the shipped engine: it derives nothing, so every query answers
// false. It exists to keep the session loop honest about its collaborator
// contract until a real engine is plugged in.
type Unproven struct{}

// Evaluate always reports false.
func (Unproven) Evaluate(*database.Database, term.Term) bool {
	return false
}
