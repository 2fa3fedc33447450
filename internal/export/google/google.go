// Package google writes the trip summary to a Google Sheet.
package google

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"

	"viaggio/internal/core"
	"viaggio/internal/export"
)

// Client replaces the contents of one sheet with the current summary on
// every export.
type Client struct {
	svc           *gsheet.Service
	spreadsheetID string
	sheetName     string
}

var _ export.SummaryWriter = (*Client)(nil)

// NewFromEnv creates a Sheets client from environment variables.
// Required: GOOGLE_SPREADSHEET_ID.
// Optional: GOOGLE_SHEET_NAME (default "Summary") and Service Account
// credentials via GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE,
// or GOOGLE_APPLICATION_CREDENTIALS.
func NewFromEnv(ctx context.Context) (*Client, error) {
	spreadsheetID := strings.TrimSpace(os.Getenv("GOOGLE_SPREADSHEET_ID"))
	if spreadsheetID == "" {
		return nil, errors.New("missing GOOGLE_SPREADSHEET_ID")
	}
	sheetName := strings.TrimSpace(os.Getenv("GOOGLE_SHEET_NAME"))
	if sheetName == "" {
		sheetName = "Summary"
	}

	svc, err := newSheetsService(ctx)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}
	return &Client{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		sheetName:     sheetName,
	}, nil
}

func newSheetsService(ctx context.Context) (*gsheet.Service, error) {
	serviceAccountJSON := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON"))
	serviceAccountFile := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_FILE"))
	if serviceAccountJSON == "" && serviceAccountFile == "" {
		serviceAccountFile = strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
	}

	var credentialsJSON []byte
	var err error
	switch {
	case serviceAccountJSON != "":
		credentialsJSON = []byte(serviceAccountJSON)
	case serviceAccountFile != "":
		credentialsJSON, err = os.ReadFile(serviceAccountFile)
		if err != nil {
			return nil, fmt.Errorf("read service account file: %w", err)
		}
	default:
		return nil, errors.New("missing service account credentials (set GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE, or GOOGLE_APPLICATION_CREDENTIALS)")
	}

	return gsheet.NewService(ctx,
		goption.WithCredentialsJSON(credentialsJSON),
		goption.WithScopes(gsheet.SpreadsheetsScope))
}

// WriteSummary clears the sheet and writes the header plus one row per
// trip.
func (c *Client) WriteSummary(ctx context.Context, sum core.Summary) error {
	_, err := c.svc.Spreadsheets.Values.Clear(
		c.spreadsheetID, c.sheetName, &gsheet.ClearValuesRequest{}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("clear sheet %q: %w", c.sheetName, err)
	}

	values := [][]interface{}{{
		"trip_id", "destination", "start_date", "end_date", "budget",
		"itinerary_entries", "total_expenses", "remaining_budget",
		"items_packed", "items_total",
	}}
	for _, t := range sum.Trips {
		budget := "not set"
		if t.Budget != nil && t.Budget.Valid() {
			budget = t.Budget.String()
		}
		remaining := "not available"
		if t.RemainingBudget != nil {
			remaining = t.RemainingBudget.String()
		}
		values = append(values, []interface{}{
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

	_, err = c.svc.Spreadsheets.Values.Update(
		c.spreadsheetID,
		c.sheetName+"!A1",
		&gsheet.ValueRange{Values: values},
	).ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("update sheet %q: %w", c.sheetName, err)
	}
	return nil
}
