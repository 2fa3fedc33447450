package services

import (
	"context"
	"errors"
	"testing"

	"viaggio/internal/core"
	"viaggio/internal/storage"
)

// itineraryFixture returns services sharing one store, with trip T1
// spanning 2025-06-01..2025-06-10 already created.
func itineraryFixture(t *testing.T, futureOnly bool) (*TripService, *ItineraryService) {
	t.Helper()
	store := storage.NewMemoryStore()
	trips := NewTripService(store, nil)
	if _, err := trips.Create(context.Background(), "T1", "Paris", "2025-06-01", "2025-06-10", "1000"); err != nil {
		t.Fatalf("fixture trip: %v", err)
	}
	return trips, NewItineraryService(store, nil, futureOnly)
}

func TestItineraryCreate(t *testing.T) {
	_, svc := itineraryFixture(t, false)
	ctx := context.Background()

	row, err := svc.Create(ctx, "1", "T1", "2025-06-02", "Louvre")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if row.ID != "1" || row.Entry.Activity != "Louvre" {
		t.Fatalf("row = %+v", row)
	}

	// Boundary dates are inside the span.
	if _, err := svc.Create(ctx, "2", "T1", "2025-06-01", "arrival"); err != nil {
		t.Fatalf("start boundary rejected: %v", err)
	}
	if _, err := svc.Create(ctx, "3", "T1", "2025-06-10", "departure"); err != nil {
		t.Fatalf("end boundary rejected: %v", err)
	}
}

func TestItineraryCreateValidation(t *testing.T) {
	_, svc := itineraryFixture(t, false)
	ctx := context.Background()

	cases := []struct {
		name                    string
		id, trip, date, activity string
		want                    error
	}{
		{"non-numeric id", "abc", "T1", "2025-06-02", "walk", core.ErrInvalidID},
		{"zero id", "0", "T1", "2025-06-02", "walk", core.ErrInvalidID},
		{"missing trip", "1", "T9", "2025-06-02", "walk", core.ErrTripNotFound},
		{"bad date", "1", "T1", "junk", "walk", core.ErrBadDate},
		{"before span", "1", "T1", "2025-05-31", "walk", core.ErrOutOfRange},
		{"after span", "1", "T1", "2025-06-11", "walk", core.ErrOutOfRange},
		{"blank activity", "1", "T1", "2025-06-02", "   ", core.ErrEmptyField},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tc.id, tc.trip, tc.date, tc.activity)
			if !errors.Is(err, tc.want) {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
		})
	}

	// No failed create left a record behind.
	rows, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("failed creates wrote %d records", len(rows))
	}
}

func TestItineraryCanonicalIDs(t *testing.T) {
	_, svc := itineraryFixture(t, false)
	ctx := context.Background()

	if _, err := svc.Create(ctx, "01", "T1", "2025-06-02", "walk"); err != nil {
		t.Fatalf("create: %v", err)
	}
	// "1" and "01" are the same id once canonicalized.
	if _, err := svc.Create(ctx, "1", "T1", "2025-06-03", "museum"); !errors.Is(err, core.ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID, got %v", err)
	}
	rows, _ := svc.List(ctx)
	if len(rows) != 1 || rows[0].ID != "1" {
		t.Fatalf("stored ids = %+v", rows)
	}
}

func TestItineraryFutureOnly(t *testing.T) {
	store := storage.NewMemoryStore()
	trips := NewTripService(store, nil)
	ctx := context.Background()
	// A span safely in the past and one safely in the future.
	if _, err := trips.Create(ctx, "OLD", "Pompeii", "2000-01-01", "2000-01-10", ""); err != nil {
		t.Fatalf("fixture: %v", err)
	}
	if _, err := trips.Create(ctx, "NEW", "Mars", "2100-01-01", "2100-01-10", ""); err != nil {
		t.Fatalf("fixture: %v", err)
	}

	svc := NewItineraryService(store, nil, true)
	if _, err := svc.Create(ctx, "1", "OLD", "2000-01-02", "ruins"); !errors.Is(err, core.ErrOutOfRange) {
		t.Fatalf("past date should be rejected, got %v", err)
	}
	if _, err := svc.Create(ctx, "1", "NEW", "2100-01-02", "launch"); err != nil {
		t.Fatalf("future date rejected: %v", err)
	}

	// The lenient ruleset accepts past dates.
	lenient := NewItineraryService(store, nil, false)
	if _, err := lenient.Create(ctx, "2", "OLD", "2000-01-02", "ruins"); err != nil {
		t.Fatalf("lenient ruleset rejected past date: %v", err)
	}
}

func TestItineraryUpdateRevalidatesSpan(t *testing.T) {
	trips, svc := itineraryFixture(t, false)
	ctx := context.Background()

	if _, err := svc.Create(ctx, "1", "T1", "2025-06-09", "market"); err != nil {
		t.Fatalf("create: %v", err)
	}

	// Shrink the trip span under the entry, then touch the entry: the
	// stale date must fail re-validation even when left blank.
	if _, err := trips.Update(ctx, "T1", "", "", "2025-06-05", ""); err != nil {
		t.Fatalf("shrink trip: %v", err)
	}
	if _, err := svc.Update(ctx, "1", "", "", "bazaar"); !errors.Is(err, core.ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange against current span, got %v", err)
	}

	// Moving the date back inside works.
	row, err := svc.Update(ctx, "1", "", "2025-06-03", "bazaar")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if row.Entry.Activity != "bazaar" || row.Entry.Date.String() != "2025-06-03" {
		t.Fatalf("row = %+v", row)
	}

	if _, err := svc.Update(ctx, "7", "", "", ""); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestItineraryDelete(t *testing.T) {
	_, svc := itineraryFixture(t, false)
	ctx := context.Background()

	if _, err := svc.Create(ctx, "1", "T1", "2025-06-02", "walk"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Delete(ctx, "01"); err != nil { // canonical lookup
		t.Fatalf("delete: %v", err)
	}
	if err := svc.Delete(ctx, "1"); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
