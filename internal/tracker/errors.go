package tracker

import (
	"errors"
	"fmt"
)

// ErrProgramComplete signals that every week of the program is complete,
// so there is no current focus week.
var ErrProgramComplete = errors.New("study program is complete")

// NotFoundError reports a reference to a phase, week, or checklist item
// that does not exist in the fixed 7-phase/48-week taxonomy.
type NotFoundError struct {
	Kind  string // "phase", "week" or "item"
	Phase int
	Week  int
	Label string
}

func (e *NotFoundError) Error() string {
	switch e.Kind {
	case "phase":
		return fmt.Sprintf("phase %d not found", e.Phase)
	case "week":
		return fmt.Sprintf("week %d not found in phase %d", e.Week, e.Phase)
	default:
		return fmt.Sprintf("item %q not found in phase %d week %d", e.Label, e.Phase, e.Week)
	}
}

// IsNotFound reports whether err is a NotFoundError
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
