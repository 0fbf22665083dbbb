package checklist

import (
	"testing"

	"github.com/example/algotrack/internal/plan"
	"github.com/example/algotrack/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDoc = `# CLRS 48-Week Study Program

Free-form notes between sections must survive a round trip.

## Phase 1: Foundations

### Week 1: Growth of Functions

Study goals:

- [ ] Read chapters 1-3
- [X] Work the exercises

Implementation goals:

- [ ] Implement timing tools

### Week 2: Insertion Sort & Merge Sort

Study goals:

- [ ] Read chapter 2

Closing notes at the end of the file.
`

func TestParseBuildsTree(t *testing.T) {
	doc := Parse(sampleDoc)

	require.Len(t, doc.Phases(), 1)
	phase := doc.Phases()[0]
	assert.Equal(t, 1, phase.ID)
	assert.Equal(t, "Foundations", phase.Name)
	assert.Equal(t, 1, phase.FirstWeek)
	assert.Equal(t, 2, phase.LastWeek)

	require.Len(t, doc.Weeks(), 2)
	week := doc.Weeks()[0]
	assert.Equal(t, "Growth of Functions", week.Title)
	require.Len(t, week.Items, 3)

	assert.Equal(t, "Read chapters 1-3", week.Items[0].Label)
	assert.False(t, week.Items[0].Done)
	assert.Equal(t, models.SectionStudy, week.Items[0].Section)

	assert.True(t, week.Items[1].Done, "[X] counts as done")

	assert.Equal(t, models.SectionImplementation, week.Items[2].Section)
}

func TestRoundTripIdentity(t *testing.T) {
	doc := Parse(sampleDoc)
	assert.Equal(t, sampleDoc, doc.String())
}

func TestSetItemTouchesOnlyTheMark(t *testing.T) {
	doc := Parse(sampleDoc)

	require.True(t, doc.SetItem(1, 1, "Implement timing tools", true))

	got := doc.String()
	assert.NotEqual(t, sampleDoc, got)
	assert.Contains(t, got, "- [x] Implement timing tools")
	// Everything else is untouched, including the uppercase X mark.
	assert.Contains(t, got, "- [X] Work the exercises")
	assert.Contains(t, got, "Free-form notes between sections must survive a round trip.")
	assert.Contains(t, got, "Closing notes at the end of the file.")

	// The tree reflects the change.
	assert.True(t, doc.Weeks()[0].Items[2].Done)

	// Unchecking restores the original bytes for that line.
	require.True(t, doc.SetItem(1, 1, "Implement timing tools", false))
	assert.Equal(t, sampleDoc, doc.String())
}

func TestSetItemUnknownLabel(t *testing.T) {
	doc := Parse(sampleDoc)
	assert.False(t, doc.SetItem(1, 1, "no such goal", true))
	assert.False(t, doc.SetItem(1, 49, "Read chapters 1-3", true))
}

func TestMalformedLinesAreSkippedWithWarning(t *testing.T) {
	text := "## Phase 1: Foundations\n" +
		"### Week 1: Analysis\n" +
		"- [ ] Valid item\n" +
		"-[x] missing space after dash\n" +
		"- [y] bad mark character\n" +
		"just a plain note\n"
	doc := Parse(text)

	require.Len(t, doc.Weeks(), 1)
	assert.Len(t, doc.Weeks()[0].Items, 1, "malformed lines must not become items")
	require.Len(t, doc.Warnings, 2)
	assert.Equal(t, 4, doc.Warnings[0].Line)
	assert.Equal(t, 5, doc.Warnings[1].Line)

	// Malformed lines are preserved verbatim.
	assert.Equal(t, text, doc.String())
}

func TestItemOutsideWeekIsWarnedAndPreserved(t *testing.T) {
	text := "- [ ] orphan item\n## Phase 1: Foundations\n"
	doc := Parse(text)

	assert.Empty(t, doc.Weeks())
	require.Len(t, doc.Warnings, 1)
	assert.Equal(t, 1, doc.Warnings[0].Line)
	assert.Equal(t, text, doc.String())
}

func TestRenderParsesBackToIdenticalTree(t *testing.T) {
	phases, weeks := plan.Default().Build()

	// Flip a few flags so both states are exercised.
	weeks[0].Items[0].Done = true
	weeks[5].Items[2].Done = true

	doc := Render("CLRS 48-Week Study Program", phases, weeks)
	require.Empty(t, doc.Warnings)

	gotPhases := doc.Phases()
	require.Len(t, gotPhases, len(phases))
	for i, phase := range phases {
		assert.Equal(t, phase.ID, gotPhases[i].ID)
		assert.Equal(t, phase.Name, gotPhases[i].Name)
		assert.Equal(t, phase.FirstWeek, gotPhases[i].FirstWeek)
		assert.Equal(t, phase.LastWeek, gotPhases[i].LastWeek)
	}

	gotWeeks := doc.Weeks()
	require.Len(t, gotWeeks, len(weeks))
	for i, week := range weeks {
		assert.Equal(t, week.ID, gotWeeks[i].ID)
		assert.Equal(t, week.PhaseID, gotWeeks[i].PhaseID)
		assert.Equal(t, week.Title, gotWeeks[i].Title)
		require.Len(t, gotWeeks[i].Items, len(week.Items))
		for j, item := range week.Items {
			assert.Equal(t, item.Label, gotWeeks[i].Items[j].Label)
			assert.Equal(t, item.Section, gotWeeks[i].Items[j].Section)
			assert.Equal(t, item.Done, gotWeeks[i].Items[j].Done)
		}
	}

	// And the rendered text itself round-trips byte for byte.
	assert.Equal(t, doc.String(), Parse(doc.String()).String())
}
