package main

import (
	"fmt"
	"os"

	"github.com/example/algotrack/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose       bool
	checklistPath string
	databasePath  string
	programPath   string

	// Logger
	logger *zap.Logger

	cfg *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "algotrack",
	Short: "algotrack - progress tracker for a 48-week algorithm study program",
	Long: `algotrack tracks progress through a fixed 7-phase, 48-week algorithm
self-study program.

The canonical state is a markdown checklist file (PROGRESS.md); a SQLite
working store keeps the same tree plus an append-only history of progress
snapshots. The bench subcommand bundles the week-1 analysis tools: timing
utilities, growth tables, and an empirical complexity estimator.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		cfg = config.Load()
		if checklistPath != "" {
			cfg.ChecklistPath = checklistPath
		}
		if databasePath != "" {
			cfg.DatabasePath = databasePath
		}
		if programPath != "" {
			cfg.ProgramPath = programPath
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&checklistPath, "file", "f", "", "checklist file (default PROGRESS.md)")
	rootCmd.PersistentFlags().StringVar(&databasePath, "db", "", "SQLite store (default data/algotrack.db)")
	rootCmd.PersistentFlags().StringVar(&programPath, "program", "", "YAML program definition (default: built-in)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
