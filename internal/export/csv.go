package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"viaggio/internal/core"
)

// summaryHeader is the column layout shared by the CSV and Sheets writers:
// one denormalized row per trip.
var summaryHeader = []string{
	"trip_id", "destination", "start_date", "end_date", "budget",
	"itinerary_entries", "total_expenses", "remaining_budget",
	"items_packed", "items_total",
}

// CSVWriter writes the summary as a CSV file, replacing any previous
// export at the same path.
type CSVWriter struct {
	path string
}

func NewCSVWriter(path string) *CSVWriter {
	return &CSVWriter{path: path}
}

var _ SummaryWriter = (*CSVWriter)(nil)

func (w *CSVWriter) WriteSummary(_ context.Context, sum core.Summary) error {
	if dir := filepath.Dir(w.path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create export directory: %w", err)
		}
	}
	f, err := os.Create(w.path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(summaryHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range summaryRows(sum) {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush export: %w", err)
	}
	return nil
}

// summaryRows flattens the trip summaries into string cells. Unset money
// values come out as "not set" / "not available", matching the on-screen
// rendering.
func summaryRows(sum core.Summary) [][]string {
	rows := make([][]string, 0, len(sum.Trips))
	for _, t := range sum.Trips {
		budget := "not set"
		if t.Budget != nil && t.Budget.Valid() {
			budget = t.Budget.String()
		}
		remaining := "not available"
		if t.RemainingBudget != nil {
			remaining = t.RemainingBudget.String()
		}
		rows = append(rows, []string{
			t.TripID,
			t.Destination,
			t.StartDate.String(),
			t.EndDate.String(),
			budget,
			strconv.Itoa(len(t.Entries)),
			t.TotalExpenses.String(),
			remaining,
			strconv.Itoa(t.PackedCount),
			strconv.Itoa(len(t.Packing)),
		})
	}
	return rows
}
