package excel

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/example/algotrack/internal/plan"
	"github.com/example/algotrack/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func newTestReport(t *testing.T) *Report {
	t.Helper()
	phases, weeks := plan.Default().Build()

	// Complete week 1 so the report has something to show.
	for i := range weeks[0].Items {
		weeks[0].Items[i].Done = true
	}

	progress := make(map[int]float64, len(phases))
	for _, phase := range phases {
		progress[phase.ID] = 0
	}
	progress[1] = 100.0 / 6

	return &Report{
		Snapshot: models.ProgressSnapshot{
			Overall:        100.0 / 48,
			CurrentPhase:   1,
			CurrentWeek:    2,
			CompletedWeeks: 1,
			TotalWeeks:     48,
		},
		Phases:        phases,
		Weeks:         weeks,
		PhaseProgress: progress,
	}
}

func TestExportToExcel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	report := newTestReport(t)

	result, err := Export(DefaultExportConfig(path), report)
	require.NoError(t, err)
	assert.Equal(t, 1+plan.PhaseCount, result.SheetsWritten)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{
		"Overview", "Phase 1", "Phase 2", "Phase 3", "Phase 4", "Phase 5", "Phase 6", "Phase 7",
	}, f.GetSheetList())

	overall, err := f.GetCellValue("Overview", "B1")
	require.NoError(t, err)
	assert.Equal(t, "2.08%", overall)

	rows, err := f.GetRows("Phase 1")
	require.NoError(t, err)
	require.Len(t, rows, 7, "header plus six weeks")
	assert.Equal(t, []string{"Week", "Title", "Status", "Done", "Total"}, rows[0])
	assert.Equal(t, string(models.WeekComplete), rows[1][2])
	assert.Equal(t, string(models.WeekNotStarted), rows[2][2])
}

func TestExportToCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.csv")
	report := newTestReport(t)

	result, err := Export(DefaultExportConfig(path), report)
	require.NoError(t, err)
	assert.Equal(t, 1, result.SheetsWritten)
	assert.Equal(t, 1+plan.TotalWeeks, result.RowsWritten)

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1+plan.TotalWeeks)

	assert.Equal(t, []string{"week", "phase", "phase_name", "title", "status", "done_items", "total_items"}, records[0])
	assert.Equal(t, "1", records[1][0])
	assert.Equal(t, "Foundations", records[1][2])
	assert.Equal(t, string(models.WeekComplete), records[1][4])
	assert.Equal(t, string(models.WeekNotStarted), records[2][4])
}
