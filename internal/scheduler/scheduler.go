package scheduler

import (
	"os"
	"strconv"
	"time"

	"github.com/example/algotrack/pkg/models"
	"github.com/go-co-op/gocron"
	"go.uber.org/zap"
)

// Default quiet-hours window for reminders
const (
	DefaultReminderStartHour = 8  // no reminders before 8:00
	DefaultReminderEndHour   = 22 // no reminders after 22:00
)

// Notifier delivers a progress reminder to the user
type Notifier interface {
	SendReminder(snap models.ProgressSnapshot, focus *models.Week) error
}

// SnapshotFunc produces the current rollup and focus week. The focus week is
// nil when the program is complete. State is re-read on every tick so edits
// made to the checklist file while watching are picked up.
type SnapshotFunc func() (models.ProgressSnapshot, *models.Week, error)

// Scheduler periodically recomputes the progress rollup and pushes a
// reminder for the current focus week.
type Scheduler struct {
	scheduler *gocron.Scheduler
	snapshot  SnapshotFunc
	notifier  Notifier
	logger    *zap.Logger
}

// New creates a new scheduler instance
func New(snapshot SnapshotFunc, notifier Notifier, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.Local),
		snapshot:  snapshot,
		notifier:  notifier,
		logger:    logger,
	}
}

// Start begins running all scheduled tasks
func (s *Scheduler) Start() {
	s.scheduler.Every(1).Hour().Do(s.checkAndRemind)
	s.scheduler.StartAsync()
}

// Stop terminates all scheduled tasks
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

// checkAndRemind sends a reminder when inside the configured hours window
func (s *Scheduler) checkAndRemind() {
	currentHour := time.Now().Hour()
	startHour, endHour := reminderHours()

	if currentHour < startHour || currentHour > endHour {
		s.logger.Debug("outside reminder hours, skipping",
			zap.Int("hour", currentHour),
			zap.Int("start", startHour),
			zap.Int("end", endHour),
		)
		return
	}

	if err := s.RunManualCheck(); err != nil {
		s.logger.Error("failed to send reminder", zap.Error(err))
	}
}

// RunManualCheck recomputes the rollup and pushes one reminder immediately
func (s *Scheduler) RunManualCheck() error {
	snap, focus, err := s.snapshot()
	if err != nil {
		return err
	}
	return s.notifier.SendReminder(snap, focus)
}

// reminderHours reads the quiet-hours window from the environment, falling
// back to the defaults for unset or out-of-range values
func reminderHours() (int, int) {
	startHour := DefaultReminderStartHour
	endHour := DefaultReminderEndHour

	if v := os.Getenv("REMINDER_START_HOUR"); v != "" {
		if h, err := strconv.Atoi(v); err == nil && h >= 0 && h <= 23 {
			startHour = h
		}
	}
	if v := os.Getenv("REMINDER_END_HOUR"); v != "" {
		if h, err := strconv.Atoi(v); err == nil && h >= 0 && h <= 23 {
			endHour = h
		}
	}
	return startHour, endHour
}
