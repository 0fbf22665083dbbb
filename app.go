package main

import (
	"fmt"
	"os"

	"github.com/example/algotrack/internal/checklist"
	"github.com/example/algotrack/internal/database"
	"github.com/example/algotrack/internal/plan"
	"github.com/example/algotrack/internal/tracker"
	"go.uber.org/zap"
)

// loadProgram returns the configured program definition: the YAML file when
// one is set, the built-in CLRS program otherwise
func loadProgram() (*plan.Program, error) {
	if cfg.ProgramPath != "" {
		return plan.Load(cfg.ProgramPath)
	}
	return plan.Default(), nil
}

// loadDocument parses the checklist file and logs any parse warnings
func loadDocument() (*checklist.Document, error) {
	if _, err := os.Stat(cfg.ChecklistPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("checklist file %s does not exist, run 'algotrack init' first", cfg.ChecklistPath)
	}
	doc, err := checklist.ParseFile(cfg.ChecklistPath)
	if err != nil {
		return nil, err
	}
	for _, warning := range doc.Warnings {
		logger.Warn("skipped checklist line",
			zap.Int("line", warning.Line),
			zap.String("reason", warning.Why),
		)
	}
	return doc, nil
}

// loadTracker parses the checklist file and builds the tracker over it
func loadTracker() (*checklist.Document, *tracker.Tracker, error) {
	doc, err := loadDocument()
	if err != nil {
		return nil, nil, err
	}
	t, err := tracker.New(doc.Phases(), doc.Weeks())
	if err != nil {
		return nil, nil, fmt.Errorf("checklist file %s is inconsistent: %v", cfg.ChecklistPath, err)
	}
	return doc, t, nil
}

// openStore connects to the SQLite working store, seeding it from the given
// tracker when it is empty
func openStore(t *tracker.Tracker) (*database.Store, error) {
	store, err := database.Connect(cfg.DatabasePath)
	if err != nil {
		return nil, err
	}
	planRepo := database.NewPlanRepository(store)
	seeded, err := planRepo.IsSeeded()
	if err != nil {
		store.Close()
		return nil, err
	}
	if !seeded {
		logger.Debug("seeding empty store from checklist file")
		if err := planRepo.Seed(t.Phases(), t.Weeks()); err != nil {
			store.Close()
			return nil, err
		}
	}
	return store, nil
}

// syncMark mirrors a mark change into the working store
func syncMark(store *database.Store, weekID int, label string, done bool) error {
	return database.NewPlanRepository(store).SetItemDone(weekID, label, done)
}

// recordSnapshot appends the tracker's current rollup to the history log
func recordSnapshot(store *database.Store, t *tracker.Tracker) error {
	snap := t.Snapshot()
	return database.NewSnapshotRepository(store).Create(&snap)
}
