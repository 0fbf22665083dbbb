package models

import "time"

// ProgressSnapshot is a point-in-time rollup computed from the phase/week tree.
// It is derived state: recomputed on demand and never read back as a source
// of truth, though snapshots may be appended to a history log.
type ProgressSnapshot struct {
	ID             int64     `json:"id" db:"id"`
	Overall        float64   `json:"overall" db:"overall"` // percentage in [0,100]
	CurrentPhase   int       `json:"current_phase" db:"current_phase"`
	CurrentWeek    int       `json:"current_week" db:"current_week"`
	CompletedWeeks int       `json:"completed_weeks" db:"completed_weeks"`
	TotalWeeks     int       `json:"total_weeks" db:"total_weeks"`
	ProgramDone    bool      `json:"program_done" db:"program_done"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}
