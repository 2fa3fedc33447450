package services

import (
	"context"
	"errors"
	"testing"

	"viaggio/internal/core"
	"viaggio/internal/storage"
)

func expenseFixture(t *testing.T) (*TripService, *ExpenseService) {
	t.Helper()
	store := storage.NewMemoryStore()
	trips := NewTripService(store, nil)
	if _, err := trips.Create(context.Background(), "T1", "Paris", "2025-06-01", "2025-06-10", "1000"); err != nil {
		t.Fatalf("fixture trip: %v", err)
	}
	return trips, NewExpenseService(store, nil)
}

func TestExpenseCreate(t *testing.T) {
	_, svc := expenseFixture(t)
	ctx := context.Background()

	row, err := svc.Create(ctx, "1", "T1", "200", "food", "dinner")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if row.Expense.Amount.Cents != 20000 {
		t.Fatalf("amount = %s", row.Expense.Amount)
	}

	// Zero is a valid amount.
	if _, err := svc.Create(ctx, "2", "T1", "0", "misc", "freebie"); err != nil {
		t.Fatalf("zero amount rejected: %v", err)
	}
}

func TestExpenseCreateValidation(t *testing.T) {
	_, svc := expenseFixture(t)
	ctx := context.Background()

	cases := []struct {
		name                              string
		id, trip, amount, category, descr string
		want                              error
	}{
		{"non-numeric id", "x", "T1", "10", "food", "snack", core.ErrInvalidID},
		{"missing trip", "1", "T9", "10", "food", "snack", core.ErrTripNotFound},
		{"negative amount", "1", "T1", "-10", "food", "snack", core.ErrBadAmount},
		{"junk amount", "1", "T1", "ten", "food", "snack", core.ErrBadAmount},
		{"blank category", "1", "T1", "10", " ", "snack", core.ErrEmptyField},
		{"blank description", "1", "T1", "10", "food", " ", core.ErrEmptyField},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tc.id, tc.trip, tc.amount, tc.category, tc.descr)
			if !errors.Is(err, tc.want) {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
		})
	}

	rows, _ := svc.List(ctx)
	if len(rows) != 0 {
		t.Fatalf("failed creates wrote %d records", len(rows))
	}
}

func TestExpenseUpdateKeepsAmountOnJunk(t *testing.T) {
	_, svc := expenseFixture(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, "1", "T1", "200", "food", "dinner"); err != nil {
		t.Fatalf("create: %v", err)
	}

	// A non-numeric amount is not a hard failure: the previous value is
	// kept and the rest of the update goes through.
	row, err := svc.Update(ctx, "1", "", "lots", "drinks", "")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if row.Expense.Amount.Cents != 20000 {
		t.Fatalf("amount changed to %s", row.Expense.Amount)
	}
	if row.Expense.Category != "drinks" {
		t.Fatalf("category = %q", row.Expense.Category)
	}

	// A parsable amount replaces the previous one.
	row, err = svc.Update(ctx, "1", "", "150", "", "")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if row.Expense.Amount.Cents != 15000 {
		t.Fatalf("amount = %s", row.Expense.Amount)
	}
}

func TestExpenseUpdateChecksTrip(t *testing.T) {
	_, svc := expenseFixture(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, "1", "T1", "200", "food", "dinner"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Update(ctx, "1", "T9", "", "", ""); !errors.Is(err, core.ErrTripNotFound) {
		t.Fatalf("expected ErrTripNotFound, got %v", err)
	}
	if _, err := svc.Update(ctx, "9", "", "", "", ""); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestExpensesSurviveTripDelete(t *testing.T) {
	trips, svc := expenseFixture(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, "1", "T1", "200", "food", "dinner"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create(ctx, "2", "T1", "150", "transport", "train"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := trips.Delete(ctx, "T1"); err != nil {
		t.Fatalf("delete trip: %v", err)
	}

	// No cascade: both expenses remain, still pointing at T1.
	rows, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 surviving expenses, got %d", len(rows))
	}
	for _, r := range rows {
		if r.Expense.TripID != "T1" {
			t.Fatalf("trip reference rewritten: %+v", r)
		}
	}
}
