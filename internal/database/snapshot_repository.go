package database

import (
	"database/sql"
	"fmt"

	"github.com/example/algotrack/pkg/models"
)

// SnapshotRepository handles the append-only progress history log
type SnapshotRepository struct {
	store *Store
}

// NewSnapshotRepository creates a new repository instance
func NewSnapshotRepository(store *Store) *SnapshotRepository {
	return &SnapshotRepository{store: store}
}

// Create appends a snapshot to the history log
func (r *SnapshotRepository) Create(snap *models.ProgressSnapshot) error {
	result, err := r.store.db.Exec(`
		INSERT INTO snapshots (
			overall, current_phase, current_week, completed_weeks, total_weeks, program_done
		) VALUES (?, ?, ?, ?, ?, ?)`,
		snap.Overall,
		snap.CurrentPhase,
		snap.CurrentWeek,
		snap.CompletedWeeks,
		snap.TotalWeeks,
		snap.ProgramDone,
	)
	if err != nil {
		return fmt.Errorf("failed to create snapshot: %v", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert ID: %v", err)
	}
	snap.ID = id
	return nil
}

// List returns the most recent snapshots, newest first
func (r *SnapshotRepository) List(limit int) ([]models.ProgressSnapshot, error) {
	var snaps []models.ProgressSnapshot
	err := r.store.db.Select(&snaps,
		"SELECT * FROM snapshots ORDER BY id DESC LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %v", err)
	}
	return snaps, nil
}

// Latest returns the most recent snapshot, or nil when none was recorded
func (r *SnapshotRepository) Latest() (*models.ProgressSnapshot, error) {
	var snap models.ProgressSnapshot
	err := r.store.db.Get(&snap, "SELECT * FROM snapshots ORDER BY id DESC LIMIT 1")
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest snapshot: %v", err)
	}
	return &snap, nil
}
