package services

import (
	"context"

	"viaggio/internal/core"
	"viaggio/internal/storage"
)

// SummaryService builds the cross-referenced per-trip summary. It only
// reads; the join itself is core.BuildSummary.
type SummaryService struct {
	store storage.RecordStore
}

func NewSummaryService(store storage.RecordStore) *SummaryService {
	return &SummaryService{store: store}
}

// Build loads all four record sets and joins them by trip id.
func (s *SummaryService) Build(ctx context.Context) (core.Summary, error) {
	trips, err := storage.LoadSet[core.Trip](ctx, s.store, storage.SetTrips)
	if err != nil {
		return core.Summary{}, err
	}
	entries, err := storage.LoadSet[core.ItineraryEntry](ctx, s.store, storage.SetItinerary)
	if err != nil {
		return core.Summary{}, err
	}
	expenses, err := storage.LoadSet[core.Expense](ctx, s.store, storage.SetExpenses)
	if err != nil {
		return core.Summary{}, err
	}
	packing, err := storage.LoadSet[core.PackingItem](ctx, s.store, storage.SetPacking)
	if err != nil {
		return core.Summary{}, err
	}
	return core.BuildSummary(trips, entries, expenses, packing), nil
}
