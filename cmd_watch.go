package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/example/algotrack/internal/scheduler"
	"github.com/example/algotrack/internal/tracker"
	"github.com/example/algotrack/pkg/models"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run the reminder scheduler until interrupted",
	Long: `watch periodically re-reads the checklist file, recomputes the rollup,
and prints a reminder for the current focus week. Reminders respect the
REMINDER_START_HOUR / REMINDER_END_HOUR window.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Fail fast if the checklist file is unreadable before scheduling.
		if _, _, err := loadTracker(); err != nil {
			return err
		}

		snapshot := func() (models.ProgressSnapshot, *models.Week, error) {
			_, t, err := loadTracker()
			if err != nil {
				return models.ProgressSnapshot{}, nil, err
			}
			focus, err := t.CurrentFocus()
			if err == tracker.ErrProgramComplete {
				return t.Snapshot(), nil, nil
			}
			if err != nil {
				return models.ProgressSnapshot{}, nil, err
			}
			return t.Snapshot(), focus, nil
		}

		sched := scheduler.New(snapshot, scheduler.NewConsoleNotifier(os.Stdout), logger)

		// Push one reminder immediately, then hand off to the scheduler.
		if err := sched.RunManualCheck(); err != nil {
			return err
		}
		sched.Start()
		defer sched.Stop()

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		fmt.Println("Watching. Press Ctrl+C to stop.")
		sig := <-sigChan
		fmt.Printf("Received signal: %v, stopping.\n", sig)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
