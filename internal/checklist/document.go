// Package checklist reads and writes the markdown checklist format that
// stores the study program's state on disk. Parsing is best-effort: checkbox
// lines feed the progress tree, every other line is carried through
// untouched so that free-form notes survive a parse/mutate/serialize cycle.
package checklist

import (
	"fmt"
	"strings"

	"github.com/example/algotrack/pkg/models"
)

// Warning reports a line that looked like a checklist entry but did not
// match the checkbox grammar. Such lines are preserved verbatim and skipped.
type Warning struct {
	Line int // 1-based line number
	Text string
	Why  string
}

func (w Warning) String() string {
	return fmt.Sprintf("line %d: %s (%q)", w.Line, w.Why, w.Text)
}

// itemLine is the decomposed form of a checkbox line. Serialization
// reassembles the exact original bytes unless the mark was mutated.
type itemLine struct {
	indent  string // leading spaces/tabs
	mark    byte   // ' ', 'x' or 'X'
	sep     string // separator between "]" and the label ("" or " ")
	label   string // raw text after the separator
	weekID  int
	phaseID int
	section models.GoalSection
}

// line is one physical line of the document: either a plain line kept as-is
// or a parsed checkbox item.
type line struct {
	raw  string
	item *itemLine
}

// Document is the parsed checklist file. It owns both the line-level
// representation (for lossless serialization) and the phase/week structure
// recovered from headings.
type Document struct {
	lines    []line
	phases   []models.Phase
	weeks    []models.Week
	Warnings []Warning
}

// Phases returns the phases found in the document, in order of appearance
func (d *Document) Phases() []models.Phase {
	return d.phases
}

// Weeks returns the weeks found in the document, items attached
func (d *Document) Weeks() []models.Week {
	return d.weeks
}

// SetItem flips the done flag of the checklist line addressed by phase,
// week, and label. Only the mark character of that line changes. Returns
// false when no such line exists.
func (d *Document) SetItem(phaseID, weekID int, label string, done bool) bool {
	label = strings.TrimSpace(label)
	for i := range d.lines {
		item := d.lines[i].item
		if item == nil || item.phaseID != phaseID || item.weekID != weekID {
			continue
		}
		if strings.TrimSpace(item.label) != label {
			continue
		}
		if done && item.mark == ' ' {
			item.mark = 'x'
		} else if !done && item.mark != ' ' {
			item.mark = ' '
		}
		d.syncTree(weekID, label, done)
		return true
	}
	return false
}

// syncTree mirrors a mark change into the materialized week tree
func (d *Document) syncTree(weekID int, label string, done bool) {
	for i := range d.weeks {
		if d.weeks[i].ID != weekID {
			continue
		}
		for j := range d.weeks[i].Items {
			if strings.TrimSpace(d.weeks[i].Items[j].Label) == label {
				d.weeks[i].Items[j].Done = done
				return
			}
		}
	}
}

// String serializes the document back to markdown. A document that was not
// mutated serializes to the exact bytes it was parsed from.
func (d *Document) String() string {
	var b strings.Builder
	for i, ln := range d.lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		if ln.item == nil {
			b.WriteString(ln.raw)
			continue
		}
		b.WriteString(ln.item.indent)
		b.WriteString("- [")
		b.WriteByte(ln.item.mark)
		b.WriteString("]")
		b.WriteString(ln.item.sep)
		b.WriteString(ln.item.label)
	}
	return b.String()
}
