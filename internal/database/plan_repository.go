package database

import (
	"fmt"

	"github.com/example/algotrack/pkg/models"
)

// PlanRepository handles database operations for the phase/week/item tree
type PlanRepository struct {
	store *Store
}

// NewPlanRepository creates a new repository instance
func NewPlanRepository(store *Store) *PlanRepository {
	return &PlanRepository{store: store}
}

// Seed replaces the stored program with the given tree. Used by `init`:
// during normal operation entities are never deleted, only item flags change.
func (r *PlanRepository) Seed(phases []models.Phase, weeks []models.Week) error {
	tx, err := r.store.db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"items", "weeks", "phases"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("failed to clear %s: %v", table, err)
		}
	}

	for _, phase := range phases {
		_, err := tx.Exec(
			"INSERT INTO phases (id, name, first_week, last_week) VALUES (?, ?, ?, ?)",
			phase.ID, phase.Name, phase.FirstWeek, phase.LastWeek,
		)
		if err != nil {
			return fmt.Errorf("failed to insert phase %d: %v", phase.ID, err)
		}
	}

	for _, week := range weeks {
		_, err := tx.Exec(
			"INSERT INTO weeks (id, phase_id, title) VALUES (?, ?, ?)",
			week.ID, week.PhaseID, week.Title,
		)
		if err != nil {
			return fmt.Errorf("failed to insert week %d: %v", week.ID, err)
		}
		for _, item := range week.Items {
			_, err := tx.Exec(
				"INSERT INTO items (week_id, section, label, done, position) VALUES (?, ?, ?, ?, ?)",
				item.WeekID, item.Section, item.Label, item.Done, item.Position,
			)
			if err != nil {
				return fmt.Errorf("failed to insert item %q of week %d: %v", item.Label, week.ID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed: %v", err)
	}
	return nil
}

// LoadTree returns the stored program with items attached to their weeks
func (r *PlanRepository) LoadTree() ([]models.Phase, []models.Week, error) {
	var phases []models.Phase
	err := r.store.db.Select(&phases, "SELECT * FROM phases ORDER BY id")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load phases: %v", err)
	}

	var weeks []models.Week
	err = r.store.db.Select(&weeks, "SELECT * FROM weeks ORDER BY id")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load weeks: %v", err)
	}

	var items []models.ChecklistItem
	err = r.store.db.Select(&items, "SELECT * FROM items ORDER BY week_id, position")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load items: %v", err)
	}

	weekIndex := make(map[int]int, len(weeks))
	for i, week := range weeks {
		weekIndex[week.ID] = i
	}
	for _, item := range items {
		if i, ok := weekIndex[item.WeekID]; ok {
			weeks[i].Items = append(weeks[i].Items, item)
		}
	}

	return phases, weeks, nil
}

// IsSeeded reports whether a program has been stored
func (r *PlanRepository) IsSeeded() (bool, error) {
	var count int
	if err := r.store.db.Get(&count, "SELECT COUNT(*) FROM phases"); err != nil {
		return false, fmt.Errorf("failed to count phases: %v", err)
	}
	return count > 0, nil
}

// SetItemDone updates the done flag of a single item
func (r *PlanRepository) SetItemDone(weekID int, label string, done bool) error {
	result, err := r.store.db.Exec(
		"UPDATE items SET done = ?, updated_at = CURRENT_TIMESTAMP WHERE week_id = ? AND label = ?",
		done, weekID, label,
	)
	if err != nil {
		return fmt.Errorf("failed to update item: %v", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %v", err)
	}
	if rows == 0 {
		return fmt.Errorf("item %q of week %d not found in store", label, weekID)
	}
	return nil
}
