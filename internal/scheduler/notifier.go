package scheduler

import (
	"fmt"
	"io"

	"github.com/example/algotrack/pkg/models"
)

// ConsoleNotifier writes reminders to a terminal. It is the only delivery
// channel: the tracker is single-user and has no network interfaces.
type ConsoleNotifier struct {
	out io.Writer
}

// NewConsoleNotifier creates a notifier writing to out
func NewConsoleNotifier(out io.Writer) *ConsoleNotifier {
	return &ConsoleNotifier{out: out}
}

// SendReminder prints the current rollup and focus week
func (n *ConsoleNotifier) SendReminder(snap models.ProgressSnapshot, focus *models.Week) error {
	if snap.ProgramDone {
		_, err := fmt.Fprintf(n.out, "Program complete: %d/%d weeks done. Congratulations!\n",
			snap.CompletedWeeks, snap.TotalWeeks)
		return err
	}
	_, err := fmt.Fprintf(n.out, "Progress %.1f%% (%d/%d weeks). Current focus: week %d, %q (phase %d).\n",
		snap.Overall, snap.CompletedWeeks, snap.TotalWeeks,
		focus.ID, focus.Title, focus.PhaseID)
	return err
}
