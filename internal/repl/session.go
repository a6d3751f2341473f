// Package repl implements the session loop: one line in, at most a few
// clauses parsed, each handed to the resolution engine against the bootstrap
// database, diagnostics out. Malformed lines are reported and skipped; only
// end of input ends a session.
package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"hornlog/internal/database"
	"hornlog/internal/lexer"
	"hornlog/internal/parser"
	"hornlog/internal/solve"
)

// Session owns one read loop over an input stream. The database it holds is
// immutable for the session's lifetime; every line is parsed independently
// and never merged into it.
type Session struct {
	ID     string
	db     *database.Database
	engine solve.Engine
	in     io.Reader
	out    io.Writer
	prompt string
	log    *zap.Logger
}

// New builds a session with a fresh correlation id.
func New(db *database.Database, engine solve.Engine, in io.Reader, out io.Writer, prompt string, log *zap.Logger) *Session {
	return &Session{
		ID:     uuid.NewString(),
		db:     db,
		engine: engine,
		in:     in,
		out:    out,
		prompt: prompt,
		log:    log,
	}
}

// Run blocks reading input units until the stream ends or ctx is cancelled.
// Exhausting the stream — including immediately, with no input at all — is a
// clean shutdown, not an error.
func (s *Session) Run(ctx context.Context) error {
	s.log.Info("session started",
		zap.String("session", s.ID),
		zap.Int("clauses", s.db.Len()))

	scanner := bufio.NewScanner(s.in)
	for {
		select {
		case <-ctx.Done():
			s.log.Info("session cancelled", zap.String("session", s.ID))
			return ctx.Err()
		default:
		}
		fmt.Fprint(s.out, s.prompt)
		if !scanner.Scan() {
			break
		}
		s.handleLine(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	fmt.Fprintln(s.out)
	s.log.Info("session ended", zap.String("session", s.ID))
	return nil
}

// handleLine parses and evaluates one input unit. Errors are scoped to the
// unit: they are reported and the loop carries on with the next line.
func (s *Session) handleLine(line string) {
	lex := lexer.New(line)
	p := parser.New(lex)
	for {
		clause, err := p.ParseClause()
		if err != nil {
			s.reject(line, err)
			return
		}
		if clause == nil {
			break
		}
		fmt.Fprintln(s.out, clause)
		if s.engine.Evaluate(s.db, clause) {
			fmt.Fprintln(s.out, "yes.")
		} else {
			fmt.Fprintln(s.out, "no.")
		}
		s.log.Debug("evaluated clause",
			zap.String("session", s.ID),
			zap.String("clause", clause.String()))
	}
	// A unit that parses to nothing must also lex to nothing; anything else
	// (say a bare variable) is malformed as a whole.
	if tok, err := lex.Peek(); err != nil {
		s.reject(line, err)
	} else if tok != nil {
		s.reject(line, &parser.UnexpectedTokenError{Expected: "clause", Found: tok})
	}
}

func (s *Session) reject(line string, err error) {
	fmt.Fprintf(s.out, "error: %v\n", err)
	s.log.Warn("rejected input",
		zap.String("session", s.ID),
		zap.String("line", line),
		zap.Error(err))
}
