package services

import (
	"context"
	"testing"

	"viaggio/internal/storage"
)

// TestSummaryEndToEnd drives the managers through their public API and
// checks the derived figures: trip T1 with a 1000 budget and expenses of
// 200 and 150 must report 350 spent and 650 remaining.
func TestSummaryEndToEnd(t *testing.T) {
	store := storage.NewMemoryStore()
	ctx := context.Background()

	trips := NewTripService(store, nil)
	expenses := NewExpenseService(store, nil)
	itinerary := NewItineraryService(store, nil, false)
	summary := NewSummaryService(store)

	if _, err := trips.Create(ctx, "T1", "Paris", "2025-06-01", "2025-06-10", "1000"); err != nil {
		t.Fatalf("trip: %v", err)
	}
	if _, err := expenses.Create(ctx, "1", "T1", "200", "food", "dinner"); err != nil {
		t.Fatalf("expense 1: %v", err)
	}
	if _, err := expenses.Create(ctx, "2", "T1", "150", "transport", "train"); err != nil {
		t.Fatalf("expense 2: %v", err)
	}
	if _, err := itinerary.Create(ctx, "1", "T1", "2025-06-02", "Louvre"); err != nil {
		t.Fatalf("entry: %v", err)
	}

	sum, err := summary.Build(ctx)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(sum.Trips) != 1 {
		t.Fatalf("expected 1 trip row, got %d", len(sum.Trips))
	}
	row := sum.Trips[0]
	if row.TotalExpenses.String() != "350.00" {
		t.Fatalf("total = %s, want 350.00", row.TotalExpenses)
	}
	if row.RemainingBudget == nil || row.RemainingBudget.String() != "650.00" {
		t.Fatalf("remaining = %v, want 650.00", row.RemainingBudget)
	}
	if len(row.Entries) != 1 || len(row.Expenses) != 2 {
		t.Fatalf("join sizes: %d entries, %d expenses", len(row.Entries), len(row.Expenses))
	}

	// Deleting the trip orphans the dependents instead of cascading.
	if err := trips.Delete(ctx, "T1"); err != nil {
		t.Fatalf("delete trip: %v", err)
	}
	sum, err = summary.Build(ctx)
	if err != nil {
		t.Fatalf("rebuild: %v", err)
	}
	if len(sum.Trips) != 0 {
		t.Fatalf("deleted trip still summarized")
	}
	if len(sum.OrphanedExpenses) != 2 || len(sum.OrphanedEntries) != 1 {
		t.Fatalf("orphans: %d expenses, %d entries",
			len(sum.OrphanedExpenses), len(sum.OrphanedEntries))
	}
}
