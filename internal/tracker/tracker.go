// Package tracker maintains the phase/week/checklist tree of the study
// program and computes progress rollups over it. A Tracker is an explicit
// value owned by the caller: create it at startup, persist it at shutdown.
package tracker

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/example/algotrack/pkg/models"
)

// Tracker holds the in-memory phase/week/item tree. Structure is immutable
// after New; only item done-flags change. Rollups are cached and invalidated
// on every mutation.
type Tracker struct {
	phases []models.Phase
	weeks  []models.Week

	phaseByID map[int]int // phase id -> index into phases
	weekByID  map[int]int // week id -> index into weeks

	snapshot *models.ProgressSnapshot // cached rollup, nil when stale
}

// New builds a tracker from a materialized program. Weeks are ordered by
// week number regardless of input order.
func New(phases []models.Phase, weeks []models.Week) (*Tracker, error) {
	t := &Tracker{
		phases:    phases,
		weeks:     weeks,
		phaseByID: make(map[int]int, len(phases)),
		weekByID:  make(map[int]int, len(weeks)),
	}
	sort.Slice(t.phases, func(i, j int) bool { return t.phases[i].ID < t.phases[j].ID })
	sort.Slice(t.weeks, func(i, j int) bool { return t.weeks[i].ID < t.weeks[j].ID })

	for i, phase := range t.phases {
		if _, ok := t.phaseByID[phase.ID]; ok {
			return nil, fmt.Errorf("duplicate phase %d", phase.ID)
		}
		t.phaseByID[phase.ID] = i
	}
	for i, week := range t.weeks {
		if _, ok := t.weekByID[week.ID]; ok {
			return nil, fmt.Errorf("duplicate week %d", week.ID)
		}
		if _, ok := t.phaseByID[week.PhaseID]; !ok {
			return nil, fmt.Errorf("week %d references unknown phase %d", week.ID, week.PhaseID)
		}
		t.weekByID[week.ID] = i
	}
	return t, nil
}

// Phases returns the phases in program order
func (t *Tracker) Phases() []models.Phase {
	return t.phases
}

// Weeks returns the weeks in program order
func (t *Tracker) Weeks() []models.Week {
	return t.weeks
}

// week resolves a phase/week pair, verifying both exist and that the week
// belongs to the phase's range
func (t *Tracker) week(phaseID, weekID int) (*models.Week, error) {
	pi, ok := t.phaseByID[phaseID]
	if !ok {
		return nil, &NotFoundError{Kind: "phase", Phase: phaseID}
	}
	wi, ok := t.weekByID[weekID]
	if !ok || !t.phases[pi].Contains(weekID) {
		return nil, &NotFoundError{Kind: "week", Phase: phaseID, Week: weekID}
	}
	return &t.weeks[wi], nil
}

// MarkItem sets the done flag of a checklist item and invalidates cached
// rollups. The item is addressed by its label within the given phase/week.
func (t *Tracker) MarkItem(phaseID, weekID int, label string, done bool) error {
	week, err := t.week(phaseID, weekID)
	if err != nil {
		return err
	}
	label = strings.TrimSpace(label)
	for i := range week.Items {
		if week.Items[i].Label == label {
			week.Items[i].Done = done
			week.Items[i].UpdatedAt = time.Now()
			t.snapshot = nil
			return nil
		}
	}
	return &NotFoundError{Kind: "item", Phase: phaseID, Week: weekID, Label: label}
}

// WeekStatus returns the derived status of a week
func (t *Tracker) WeekStatus(phaseID, weekID int) (models.WeekStatus, error) {
	week, err := t.week(phaseID, weekID)
	if err != nil {
		return "", err
	}
	return week.Status(), nil
}

// OverallProgress returns the overall completion percentage in [0,100]:
// completed weeks over total weeks.
func (t *Tracker) OverallProgress() float64 {
	return t.Snapshot().Overall
}

// PhaseProgress returns the completion percentage of a single phase,
// derived from its child weeks.
func (t *Tracker) PhaseProgress(phaseID int) (float64, error) {
	pi, ok := t.phaseByID[phaseID]
	if !ok {
		return 0, &NotFoundError{Kind: "phase", Phase: phaseID}
	}
	phase := t.phases[pi]
	if phase.WeekCount() == 0 {
		return 0, nil
	}
	completed := 0
	for _, week := range t.weeks {
		if week.PhaseID == phase.ID && week.Status() == models.WeekComplete {
			completed++
		}
	}
	return float64(completed) / float64(phase.WeekCount()) * 100, nil
}

// CurrentFocus returns the first week, in phase/week order, that is not
// complete. Returns ErrProgramComplete when every week is complete.
func (t *Tracker) CurrentFocus() (*models.Week, error) {
	for i := range t.weeks {
		if t.weeks[i].Status() != models.WeekComplete {
			return &t.weeks[i], nil
		}
	}
	return nil, ErrProgramComplete
}

// Snapshot computes the current rollup, reusing the cached value when no
// mutation happened since the last call.
func (t *Tracker) Snapshot() models.ProgressSnapshot {
	if t.snapshot != nil {
		return *t.snapshot
	}
	snap := models.ProgressSnapshot{
		TotalWeeks: len(t.weeks),
		CreatedAt:  time.Now(),
	}
	for _, week := range t.weeks {
		if week.Status() == models.WeekComplete {
			snap.CompletedWeeks++
		}
	}
	if snap.TotalWeeks > 0 {
		snap.Overall = float64(snap.CompletedWeeks) / float64(snap.TotalWeeks) * 100
	}
	focus, err := t.CurrentFocus()
	if err != nil {
		snap.ProgramDone = true
	} else {
		snap.CurrentPhase = focus.PhaseID
		snap.CurrentWeek = focus.ID
	}
	t.snapshot = &snap
	return snap
}
