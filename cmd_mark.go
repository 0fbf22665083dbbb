package main

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/spf13/cobra"
)

var markUndo bool

var markCmd = &cobra.Command{
	Use:   "mark <phase> <week> <item label>",
	Short: "Check (or with --undo, uncheck) a checklist item",
	Args:  cobra.MinimumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		phaseID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid phase number %q", args[0])
		}
		weekID, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid week number %q", args[1])
		}
		label := strings.Join(args[2:], " ")
		done := !markUndo

		doc, t, err := loadTracker()
		if err != nil {
			return err
		}

		// Validate against the taxonomy first; NotFoundError surfaces here.
		if err := t.MarkItem(phaseID, weekID, label, done); err != nil {
			return err
		}
		if !doc.SetItem(phaseID, weekID, label, done) {
			return fmt.Errorf("item %q not found in %s", label, cfg.ChecklistPath)
		}
		if err := doc.WriteFile(cfg.ChecklistPath); err != nil {
			return err
		}

		store, err := openStore(t)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := syncMark(store, weekID, label, done); err != nil {
			// The checklist file is already updated; the store catches up on
			// the next seed. Not fatal.
			logger.Warn("failed to update working store", zap.Error(err))
		}
		if err := recordSnapshot(store, t); err != nil {
			logger.Warn("failed to record snapshot", zap.Error(err))
		}

		snap := t.Snapshot()
		state := "done"
		if !done {
			state = "not done"
		}
		fmt.Printf("Marked %q (phase %d, week %d) as %s. Overall progress: %.1f%%\n",
			label, phaseID, weekID, state, snap.Overall)
		return nil
	},
}

func init() {
	markCmd.Flags().BoolVar(&markUndo, "undo", false, "uncheck the item instead of checking it")
	rootCmd.AddCommand(markCmd)
}
