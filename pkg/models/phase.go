package models

import "time"

// Phase represents a multi-week grouping of related study topics
type Phase struct {
	ID        int       `json:"id" db:"id"` // 1-7
	Name      string    `json:"name" db:"name"`
	FirstWeek int       `json:"first_week" db:"first_week"`
	LastWeek  int       `json:"last_week" db:"last_week"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// WeekCount returns the number of weeks covered by the phase
func (p *Phase) WeekCount() int {
	return p.LastWeek - p.FirstWeek + 1
}

// Contains reports whether the given week number falls inside the phase range
func (p *Phase) Contains(week int) bool {
	return week >= p.FirstWeek && week <= p.LastWeek
}
