package main

import (
	"errors"
	"fmt"

	"github.com/example/algotrack/internal/database"
	"github.com/example/algotrack/internal/tracker"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print the current progress rollup",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, t, err := loadTracker()
		if err != nil {
			return err
		}

		snap := t.Snapshot()
		fmt.Printf("Overall progress: %.1f%% (%d/%d weeks complete)\n",
			snap.Overall, snap.CompletedWeeks, snap.TotalWeeks)
		if snap.ProgramDone {
			fmt.Println("Program complete. Congratulations!")
		} else {
			focus, err := t.CurrentFocus()
			if err != nil {
				return err
			}
			fmt.Printf("Current focus: week %d, %q (phase %d)\n", focus.ID, focus.Title, focus.PhaseID)
		}

		fmt.Println()
		for _, phase := range t.Phases() {
			progress, err := t.PhaseProgress(phase.ID)
			if err != nil {
				return err
			}
			fmt.Printf("  Phase %d  %-48s weeks %2d-%2d  %5.1f%%\n",
				phase.ID, phase.Name, phase.FirstWeek, phase.LastWeek, progress)
		}
		return nil
	},
}

var focusCmd = &cobra.Command{
	Use:   "focus",
	Short: "Print the first week that is not complete",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, t, err := loadTracker()
		if err != nil {
			return err
		}

		focus, err := t.CurrentFocus()
		if errors.Is(err, tracker.ErrProgramComplete) {
			fmt.Println("Program complete. Congratulations!")
			return nil
		}
		if err != nil {
			return err
		}

		status, err := t.WeekStatus(focus.PhaseID, focus.ID)
		if err != nil {
			return err
		}
		fmt.Printf("Week %d: %s (phase %d, %s)\n", focus.ID, focus.Title, focus.PhaseID, status)
		for _, item := range focus.Items {
			mark := ' '
			if item.Done {
				mark = 'x'
			}
			fmt.Printf("  [%c] %s\n", mark, item.Label)
		}
		return nil
	},
}

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded progress snapshots, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, t, err := loadTracker()
		if err != nil {
			return err
		}
		store, err := openStore(t)
		if err != nil {
			return err
		}
		defer store.Close()

		snaps, err := database.NewSnapshotRepository(store).List(historyLimit)
		if err != nil {
			return err
		}
		if len(snaps) == 0 {
			fmt.Println("No snapshots recorded yet.")
			return nil
		}
		for _, snap := range snaps {
			marker := fmt.Sprintf("week %d", snap.CurrentWeek)
			if snap.ProgramDone {
				marker = "complete"
			}
			fmt.Printf("%s  %5.1f%%  %2d/%d weeks  %s\n",
				snap.CreatedAt.Format("2006-01-02 15:04"),
				snap.Overall, snap.CompletedWeeks, snap.TotalWeeks, marker)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum number of snapshots to list")
	rootCmd.AddCommand(statusCmd, focusCmd, historyCmd)
}
