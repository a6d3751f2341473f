package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"hornlog/internal/repl"
	"hornlog/internal/solve"
)

// runSession starts the interactive loop on stdin. End of input ends the
// session cleanly; an interrupt cancels it.
func runSession(cmd *cobra.Command, args []string) error {
	db, err := openDatabase()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	session := repl.New(db, solve.Unproven{}, os.Stdin, os.Stdout, cfg.Prompt, logger)
	if err := session.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
