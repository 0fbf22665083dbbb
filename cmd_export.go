package main

import (
	"fmt"

	"github.com/example/algotrack/internal/excel"
	"github.com/spf13/cobra"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a progress report (.xlsx workbook or .csv table)",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, t, err := loadTracker()
		if err != nil {
			return err
		}

		report := &excel.Report{
			Snapshot:      t.Snapshot(),
			Phases:        t.Phases(),
			Weeks:         t.Weeks(),
			PhaseProgress: make(map[int]float64, len(t.Phases())),
		}
		for _, phase := range t.Phases() {
			progress, err := t.PhaseProgress(phase.ID)
			if err != nil {
				return err
			}
			report.PhaseProgress[phase.ID] = progress
		}

		result, err := excel.Export(excel.DefaultExportConfig(exportOut), report)
		if err != nil {
			return err
		}
		fmt.Printf("Wrote %s: %d sheet(s), %d row(s).\n", exportOut, result.SheetsWritten, result.RowsWritten)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "report.xlsx", "output file (.xlsx or .csv)")
	rootCmd.AddCommand(exportCmd)
}
