package excel

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/example/algotrack/pkg/models"
	"github.com/xuri/excelize/v2"
)

// ExportConfig defines the export configuration
type ExportConfig struct {
	FilePath      string // Path to the Excel or CSV file to write
	OverviewSheet string // Name of the overview sheet
}

// DefaultExportConfig returns the default export configuration
func DefaultExportConfig(path string) ExportConfig {
	return ExportConfig{
		FilePath:      path,
		OverviewSheet: "Overview",
	}
}

// Report is the data an export is rendered from
type Report struct {
	Snapshot      models.ProgressSnapshot
	Phases        []models.Phase
	Weeks         []models.Week
	PhaseProgress map[int]float64 // phase id -> completion percentage
}

// ExportResult holds the result of an export operation
type ExportResult struct {
	SheetsWritten int
	RowsWritten   int
}

// Export writes a progress report. The format follows the file extension:
// .csv produces a flat week table, anything else an Excel workbook.
func Export(config ExportConfig, report *Report) (*ExportResult, error) {
	ext := strings.ToLower(filepath.Ext(config.FilePath))
	if ext == ".csv" {
		return exportToCSV(config, report)
	}
	return exportToExcel(config, report)
}

// exportToExcel writes an overview sheet plus one week sheet per phase
func exportToExcel(config ExportConfig, report *Report) (*ExportResult, error) {
	f := excelize.NewFile()
	defer f.Close()

	result := &ExportResult{}

	if err := f.SetSheetName("Sheet1", config.OverviewSheet); err != nil {
		return nil, fmt.Errorf("failed to create overview sheet: %v", err)
	}
	result.SheetsWritten++

	snap := report.Snapshot
	overview := [][]interface{}{
		{"Overall progress", fmt.Sprintf("%.2f%%", snap.Overall)},
		{"Completed weeks", fmt.Sprintf("%d of %d", snap.CompletedWeeks, snap.TotalWeeks)},
		{"Current phase", snap.CurrentPhase},
		{"Current week", snap.CurrentWeek},
		{},
		{"Phase", "Name", "Weeks", "Progress"},
	}
	if snap.ProgramDone {
		overview[2] = []interface{}{"Current phase", "complete"}
		overview[3] = []interface{}{"Current week", "complete"}
	}
	for _, phase := range report.Phases {
		overview = append(overview, []interface{}{
			phase.ID,
			phase.Name,
			fmt.Sprintf("%d-%d", phase.FirstWeek, phase.LastWeek),
			fmt.Sprintf("%.1f%%", report.PhaseProgress[phase.ID]),
		})
	}
	for i, row := range overview {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, fmt.Errorf("failed to compute cell name: %v", err)
		}
		if err := f.SetSheetRow(config.OverviewSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write overview row %d: %v", i+1, err)
		}
		result.RowsWritten++
	}

	for _, phase := range report.Phases {
		sheet := fmt.Sprintf("Phase %d", phase.ID)
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, fmt.Errorf("failed to create sheet %q: %v", sheet, err)
		}
		result.SheetsWritten++

		rows := [][]interface{}{{"Week", "Title", "Status", "Done", "Total"}}
		for _, week := range report.Weeks {
			if week.PhaseID != phase.ID {
				continue
			}
			done := 0
			for _, item := range week.Items {
				if item.Done {
					done++
				}
			}
			rows = append(rows, []interface{}{
				week.ID, week.Title, string(week.Status()), done, len(week.Items),
			})
		}
		for i, row := range rows {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			if err != nil {
				return nil, fmt.Errorf("failed to compute cell name: %v", err)
			}
			if err := f.SetSheetRow(sheet, cell, &row); err != nil {
				return nil, fmt.Errorf("failed to write %q row %d: %v", sheet, i+1, err)
			}
			result.RowsWritten++
		}
	}

	if err := f.SaveAs(config.FilePath); err != nil {
		return nil, fmt.Errorf("failed to save Excel file: %v", err)
	}
	return result, nil
}

// exportToCSV writes the flat week table
func exportToCSV(config ExportConfig, report *Report) (*ExportResult, error) {
	file, err := os.Create(config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to create CSV file: %v", err)
	}
	defer file.Close()

	phaseNames := make(map[int]string, len(report.Phases))
	for _, phase := range report.Phases {
		phaseNames[phase.ID] = phase.Name
	}

	w := csv.NewWriter(file)
	result := &ExportResult{SheetsWritten: 1}

	if err := w.Write([]string{"week", "phase", "phase_name", "title", "status", "done_items", "total_items"}); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %v", err)
	}
	result.RowsWritten++

	for _, week := range report.Weeks {
		done := 0
		for _, item := range week.Items {
			if item.Done {
				done++
			}
		}
		record := []string{
			strconv.Itoa(week.ID),
			strconv.Itoa(week.PhaseID),
			phaseNames[week.PhaseID],
			week.Title,
			string(week.Status()),
			strconv.Itoa(done),
			strconv.Itoa(len(week.Items)),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV row for week %d: %v", week.ID, err)
		}
		result.RowsWritten++
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %v", err)
	}
	return result, nil
}
