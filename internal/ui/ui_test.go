package ui

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"viaggio/internal/services"
	"viaggio/internal/storage"
)

func newTestUI(script string) (*UI, *bytes.Buffer) {
	store := storage.NewMemoryStore()
	trips := services.NewTripService(store, nil)
	itinerary := services.NewItineraryService(store, nil, false)
	expenses := services.NewExpenseService(store, nil)
	packing := services.NewPackingService(store, nil)
	summary := services.NewSummaryService(store)

	out := &bytes.Buffer{}
	u := New(strings.NewReader(script), out, trips, itinerary, expenses, packing, summary)
	return u, out
}

func TestRunExitOption(t *testing.T) {
	u, out := newTestUI("6\n")
	if err := u.Run(context.Background()); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if !strings.Contains(out.String(), "Goodbye") {
		t.Fatalf("expected farewell message, got:\n%s", out.String())
	}
}

func TestRunEndOfInputIsNotAnError(t *testing.T) {
	u, _ := newTestUI("")
	if err := u.Run(context.Background()); err != nil {
		t.Fatalf("Run returned error on EOF: %v", err)
	}
}

func TestAddAndViewTrip(t *testing.T) {
	script := strings.Join([]string{
		"1",          // manage trips
		"1",          // add trip
		"T1",         // id
		"Paris",      // destination
		"2026-06-01", // start
		"2026-06-10", // end
		"1000",       // budget
		"2",          // view trips
		"5",          // back
		"6",          // exit
	}, "\n") + "\n"

	u, out := newTestUI(script)
	if err := u.Run(context.Background()); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "Trip T1 to Paris added.") {
		t.Fatalf("missing confirmation in output:\n%s", got)
	}
	if !strings.Contains(got, "T1: Paris (2026-06-01 to 2026-06-10), budget 1000.00") {
		t.Fatalf("missing trip listing in output:\n%s", got)
	}
}

func TestBadDateReasksUntilValid(t *testing.T) {
	script := strings.Join([]string{
		"1",          // manage trips
		"1",          // add trip
		"T1",         // id
		"Rome",       // destination
		"junk",       // bad start date, re-asked
		"2026-06-01", // start
		"2026-06-03", // end
		"",           // no budget
		"5",          // back
		"6",          // exit
	}, "\n") + "\n"

	u, out := newTestUI(script)
	if err := u.Run(context.Background()); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "Error:") {
		t.Fatalf("expected a rendered date error:\n%s", got)
	}
	if !strings.Contains(got, "Trip T1 to Rome added.") {
		t.Fatalf("expected trip to be added after retry:\n%s", got)
	}
}

func TestDuplicateTripIDRendersError(t *testing.T) {
	script := strings.Join([]string{
		"1",
		"1", "T1", "Paris", "2026-06-01", "2026-06-10", "",
		"1", "T1", "Lyon", "2026-07-01", "2026-07-05", "",
		"5",
		"6",
	}, "\n") + "\n"

	u, out := newTestUI(script)
	if err := u.Run(context.Background()); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if !strings.Contains(out.String(), "already in use") {
		t.Fatalf("expected duplicate id error in output:\n%s", out.String())
	}
}

func TestSummaryShowsTotalsAndRemaining(t *testing.T) {
	script := strings.Join([]string{
		"1",
		"1", "T1", "Paris", "2026-06-01", "2026-06-10", "1000",
		"5",
		"3",
		"1", "1", "T1", "200", "food", "dinner",
		"1", "2", "T1", "150", "transport", "train",
		"5",
		"5", // summary
		"6",
	}, "\n") + "\n"

	u, out := newTestUI(script)
	if err := u.Run(context.Background()); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "Total expenses: 350.00") {
		t.Fatalf("missing total in summary:\n%s", got)
	}
	if !strings.Contains(got, "Remaining budget: 650.00") {
		t.Fatalf("missing remaining budget in summary:\n%s", got)
	}
}
