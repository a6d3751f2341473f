package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"hornlog/internal/lexer"
)

// tokensCmd dumps the raw token stream, one token per line. This mirrors the
// lexer's contract directly and is mainly a debugging aid.
var tokensCmd = &cobra.Command{
	Use:   "tokens [text]",
	Short: "Tokenize input and print the token stream",
	Long: `Tokenizes the given text, or each stdin line when no argument is
supplied, and prints every token. Comments produce no tokens.

Example:
  hornlog tokens 'daughter(X, Y) :- father(Y, X), female(X).'`,
	Args: cobra.ArbitraryArgs,
	RunE: runTokens,
}

func runTokens(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return dumpTokens(cmd.OutOrStdout(), strings.Join(args, " "))
	}
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		// A bad line is reported and the loop keeps reading.
		if err := dumpTokens(cmd.OutOrStdout(), scanner.Text()); err != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "error: %v\n", err)
		}
	}
	return scanner.Err()
}

func dumpTokens(out io.Writer, input string) error {
	lex := lexer.New(input)
	for {
		tok, err := lex.Pop()
		if err != nil {
			return err
		}
		if tok == nil {
			return nil
		}
		fmt.Fprintln(out, tok)
	}
}
