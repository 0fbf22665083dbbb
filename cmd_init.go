package main

import (
	"fmt"
	"os"

	"github.com/example/algotrack/internal/checklist"
	"github.com/example/algotrack/internal/database"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the checklist file and seed the working store",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(cfg.ChecklistPath); err == nil && !initForce {
			return fmt.Errorf("%s already exists, use --force to overwrite", cfg.ChecklistPath)
		}

		program, err := loadProgram()
		if err != nil {
			return err
		}
		phases, weeks := program.Build()

		doc := checklist.Render(program.Name, phases, weeks)
		if err := doc.WriteFile(cfg.ChecklistPath); err != nil {
			return err
		}
		logger.Info("wrote checklist file",
			zap.String("path", cfg.ChecklistPath),
			zap.Int("phases", len(phases)),
			zap.Int("weeks", len(weeks)),
		)

		store, err := database.Connect(cfg.DatabasePath)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := database.NewPlanRepository(store).Seed(phases, weeks); err != nil {
			return err
		}
		logger.Info("seeded working store", zap.String("path", cfg.DatabasePath))

		fmt.Printf("Initialized %q: %d phases, %d weeks.\n", program.Name, len(phases), len(weeks))
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing checklist file")
	rootCmd.AddCommand(initCmd)
}
