package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"hornlog/internal/lexer"
	"hornlog/internal/parser"
	"hornlog/internal/solve"
)

// queryCmd evaluates a single clause against the database and prints the
// engine's verdict.
var queryCmd = &cobra.Command{
	Use:   "query [clause]",
	Short: "Evaluate one clause against the built-in database",
	Long: `Parses the argument as a single clause and asks the resolution
engine whether it is derivable from the database.

Example:
  hornlog query 'red(X).'`,
	Args: cobra.ExactArgs(1),
	RunE: runQuery,
}

func runQuery(cmd *cobra.Command, args []string) error {
	db, err := openDatabase()
	if err != nil {
		return err
	}

	lex := lexer.New(args[0])
	clause, err := parser.New(lex).ParseClause()
	if err != nil {
		return err
	}
	if clause == nil {
		return fmt.Errorf("no clause in input %q", args[0])
	}
	if tok, err := lex.Peek(); err != nil {
		return err
	} else if tok != nil {
		return &parser.UnexpectedTokenError{Expected: "end of input", Found: tok}
	}

	logger.Debug("evaluating query", zap.String("clause", clause.String()))
	engine := solve.Unproven{}
	if engine.Evaluate(db, clause) {
		fmt.Fprintln(cmd.OutOrStdout(), "yes.")
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), "no.")
	}
	return nil
}
