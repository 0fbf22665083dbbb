package models

import "time"

// WeekStatus represents the derived completion state of a week
type WeekStatus string

const (
	// WeekNotStarted means no checklist item of the week is done
	WeekNotStarted WeekStatus = "not_started"
	// WeekInProgress means some but not all checklist items are done
	WeekInProgress WeekStatus = "in_progress"
	// WeekComplete means every checklist item of the week is done
	WeekComplete WeekStatus = "complete"
)

// Week represents a single unit of study and implementation work within a phase
type Week struct {
	ID        int             `json:"id" db:"id"` // 1-48, global week number
	PhaseID   int             `json:"phase_id" db:"phase_id"`
	Title     string          `json:"title" db:"title"`
	Items     []ChecklistItem `json:"items" db:"-"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt time.Time       `json:"updated_at" db:"updated_at"`
}

// Status derives the week status from its checklist items.
// A week with no items counts as not started.
func (w *Week) Status() WeekStatus {
	if len(w.Items) == 0 {
		return WeekNotStarted
	}
	done := 0
	for _, item := range w.Items {
		if item.Done {
			done++
		}
	}
	switch done {
	case 0:
		return WeekNotStarted
	case len(w.Items):
		return WeekComplete
	default:
		return WeekInProgress
	}
}

// Goals returns the week's checklist items belonging to the given section
func (w *Week) Goals(section GoalSection) []ChecklistItem {
	var goals []ChecklistItem
	for _, item := range w.Items {
		if item.Section == section {
			goals = append(goals, item)
		}
	}
	return goals
}
