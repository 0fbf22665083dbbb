package checklist

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/example/algotrack/pkg/models"
)

var (
	// checkboxRe matches the checklist grammar: optional whitespace, a dash,
	// a bracketed space-or-x, then free text.
	checkboxRe = regexp.MustCompile(`^([ \t]*)- \[([ xX])\]( ?)(.*)$`)

	phaseRe = regexp.MustCompile(`^##\s+Phase\s+(\d+):\s+(.+?)\s*$`)
	weekRe  = regexp.MustCompile(`^###\s+Week\s+(\d+):\s+(.+?)\s*$`)
)

// ParseFile parses a checklist file from disk
func ParseFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read checklist file: %v", err)
	}
	return Parse(string(data)), nil
}

// Parse parses checklist markdown. Parsing never fails: unrecognized lines
// are preserved as-is and near-miss checkbox lines are reported as warnings.
func Parse(text string) *Document {
	doc := &Document{}

	var curPhase *models.Phase
	var curWeek *models.Week
	section := models.SectionStudy

	for i, raw := range strings.Split(text, "\n") {
		lineNo := i + 1

		if m := phaseRe.FindStringSubmatch(raw); m != nil {
			id, _ := strconv.Atoi(m[1])
			doc.phases = append(doc.phases, models.Phase{ID: id, Name: m[2]})
			curPhase = &doc.phases[len(doc.phases)-1]
			curWeek = nil
			section = models.SectionStudy
			doc.lines = append(doc.lines, line{raw: raw})
			continue
		}

		if m := weekRe.FindStringSubmatch(raw); m != nil {
			id, _ := strconv.Atoi(m[1])
			if curPhase == nil {
				doc.warn(lineNo, raw, "week heading outside any phase")
				doc.lines = append(doc.lines, line{raw: raw})
				continue
			}
			doc.weeks = append(doc.weeks, models.Week{ID: id, PhaseID: curPhase.ID, Title: m[2]})
			curWeek = &doc.weeks[len(doc.weeks)-1]
			section = models.SectionStudy
			if curPhase.FirstWeek == 0 || id < curPhase.FirstWeek {
				curPhase.FirstWeek = id
			}
			if id > curPhase.LastWeek {
				curPhase.LastWeek = id
			}
			doc.lines = append(doc.lines, line{raw: raw})
			continue
		}

		if s, ok := sectionMarker(raw); ok {
			section = s
			doc.lines = append(doc.lines, line{raw: raw})
			continue
		}

		if m := checkboxRe.FindStringSubmatch(raw); m != nil {
			if curWeek == nil {
				doc.warn(lineNo, raw, "checklist item outside any week")
				doc.lines = append(doc.lines, line{raw: raw})
				continue
			}
			item := &itemLine{
				indent:  m[1],
				mark:    m[2][0],
				sep:     m[3],
				label:   m[4],
				weekID:  curWeek.ID,
				phaseID: curWeek.PhaseID,
				section: section,
			}
			curWeek.Items = append(curWeek.Items, models.ChecklistItem{
				WeekID:   curWeek.ID,
				Section:  section,
				Label:    strings.TrimSpace(item.label),
				Done:     item.mark != ' ',
				Position: len(curWeek.Items),
			})
			doc.lines = append(doc.lines, line{raw: raw, item: item})
			continue
		}

		// Near-miss: looks like a checkbox but violates the grammar.
		// Keep the line, skip it, tell the caller.
		if trimmed := strings.TrimLeft(raw, " \t"); strings.HasPrefix(trimmed, "- [") || strings.HasPrefix(trimmed, "-[") {
			doc.warn(lineNo, raw, "malformed checklist line")
		}
		doc.lines = append(doc.lines, line{raw: raw})
	}

	return doc
}

// sectionMarker recognizes the "Study goals:" / "Implementation goals:"
// labels that split a week's checklist in two.
func sectionMarker(raw string) (models.GoalSection, bool) {
	trimmed := strings.Trim(strings.TrimSpace(raw), "*_")
	switch strings.ToLower(trimmed) {
	case "study goals:":
		return models.SectionStudy, true
	case "implementation goals:":
		return models.SectionImplementation, true
	}
	return "", false
}

func (d *Document) warn(lineNo int, text, why string) {
	d.Warnings = append(d.Warnings, Warning{Line: lineNo, Text: text, Why: why})
}

// WriteFile serializes the document and writes it to disk
func (d *Document) WriteFile(path string) error {
	if err := os.WriteFile(path, []byte(d.String()), 0644); err != nil {
		return fmt.Errorf("failed to write checklist file: %v", err)
	}
	return nil
}
