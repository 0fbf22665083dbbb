package checklist

import (
	"fmt"
	"strings"

	"github.com/example/algotrack/pkg/models"
)

// Render produces a fresh checklist document from a materialized program
// tree. The output parses back to an identical tree.
func Render(title string, phases []models.Phase, weeks []models.Week) *Document {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", title)

	for _, phase := range phases {
		fmt.Fprintf(&b, "\n## Phase %d: %s\n", phase.ID, phase.Name)
		for _, week := range weeks {
			if week.PhaseID != phase.ID {
				continue
			}
			fmt.Fprintf(&b, "\n### Week %d: %s\n", week.ID, week.Title)
			writeSection(&b, "Study goals:", week.Goals(models.SectionStudy))
			writeSection(&b, "Implementation goals:", week.Goals(models.SectionImplementation))
		}
	}

	return Parse(b.String())
}

func writeSection(b *strings.Builder, header string, items []models.ChecklistItem) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "\n%s\n\n", header)
	for _, item := range items {
		mark := ' '
		if item.Done {
			mark = 'x'
		}
		fmt.Fprintf(b, "- [%c] %s\n", mark, item.Label)
	}
}
