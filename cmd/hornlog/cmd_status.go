package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

// statusCmd summarizes the database a session would start with.
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the clause database a session starts with",
	RunE:  showStatus,
}

func showStatus(cmd *cobra.Command, args []string) error {
	db, err := openDatabase()
	if err != nil {
		return err
	}

	stats := db.Stats()
	fmt.Fprintf(cmd.OutOrStdout(), "clauses: %d\n", stats.Total)

	names := make([]string, 0, len(stats.Predicates))
	for name := range stats.Predicates {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s: %d\n", name, stats.Predicates[name])
	}
	return nil
}
