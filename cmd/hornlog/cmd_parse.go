package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"hornlog/internal/lexer"
	"hornlog/internal/parser"
)

// parseCmd parses a program file and prints its clauses.
var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a program file and print each clause",
	Long: `Parses a whole program file through the lexer and recursive-descent
parser, printing one clause per line in source-shaped form.

Example:
  hornlog parse family.pl`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	lex := lexer.New(string(data))
	clauses, err := parser.New(lex).Parse()
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	if tok, err := lex.Peek(); err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	} else if tok != nil {
		return fmt.Errorf("%s: %w", args[0], &parser.UnexpectedTokenError{Expected: "clause", Found: tok})
	}

	for _, clause := range clauses {
		fmt.Fprintf(cmd.OutOrStdout(), "%s.\n", clause)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%% %d clauses\n", len(clauses))
	return nil
}
