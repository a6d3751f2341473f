package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"hornlog/internal/config"
	"hornlog/internal/database"
	"hornlog/internal/logging"
)

var (
	// Global flags
	verbose    bool
	configPath string
	factsPath  string

	cfg    config.Config
	logger *zap.Logger
)

// rootCmd runs the interactive session when invoked without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "hornlog",
	Short: "hornlog - a minimal Horn-clause notation reader",
	Long: `hornlog reads a reduced Prolog/Datalog dialect: lowercase atoms,
uppercase variables, predicates with argument lists, and ":-" rules
terminated by ".". Each input line is parsed into an immutable term tree
and handed to the resolution engine against the built-in fact base.

Run without arguments to start the interactive session.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if factsPath != "" {
			cfg.Facts = factsPath
		}
		logger, err = logging.New(cfg.LogLevel, verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runSession,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (YAML)")
	rootCmd.PersistentFlags().StringVar(&factsPath, "facts", "", "Facts file appended to the built-in database at startup")

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(tokensCmd)
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(statusCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openDatabase bootstraps the built-in facts and appends the configured facts
// file, if any. Every command queries the same database shape.
func openDatabase() (*database.Database, error) {
	db, err := database.Bootstrap()
	if err != nil {
		return nil, err
	}
	if cfg.Facts != "" {
		if err := db.LoadFile(cfg.Facts); err != nil {
			return nil, fmt.Errorf("load facts: %w", err)
		}
		logger.Info("loaded facts file",
			zap.String("path", cfg.Facts),
			zap.Int("clauses", db.Len()))
	}
	return db, nil
}
