package models

import "time"

// GoalSection identifies which part of a week's checklist an item belongs to
type GoalSection string

const (
	// SectionStudy marks reading and theory goals
	SectionStudy GoalSection = "study"
	// SectionImplementation marks coding and benchmarking goals
	SectionImplementation GoalSection = "implementation"
)

// ChecklistItem is an atomic boolean task within a week's goals
type ChecklistItem struct {
	ID        int64       `json:"id" db:"id"`
	WeekID    int         `json:"week_id" db:"week_id"`
	Section   GoalSection `json:"section" db:"section"`
	Label     string      `json:"label" db:"label"`
	Done      bool        `json:"done" db:"done"`
	Position  int         `json:"position" db:"position"` // order within the section
	CreatedAt time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt time.Time   `json:"updated_at" db:"updated_at"`
}
