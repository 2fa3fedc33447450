package services

import (
	"context"
	"fmt"
	"strings"

	"viaggio/internal/amqp"
	"viaggio/internal/core"
	"viaggio/internal/storage"
)

// ItineraryService owns the itinerary record set. Entries reference a trip
// by id; the reference is checked at create and update time only.
type ItineraryService struct {
	store    storage.RecordStore
	notifier *amqp.Client

	// futureOnly additionally rejects dates before today.
	futureOnly bool
}

func NewItineraryService(store storage.RecordStore, notifier *amqp.Client, futureOnly bool) *ItineraryService {
	return &ItineraryService{store: store, notifier: notifier, futureOnly: futureOnly}
}

// Create validates and persists a new itinerary entry. The date must fall
// within the referenced trip's span, boundaries included.
func (s *ItineraryService) Create(ctx context.Context, id, tripID, date, activity string) (core.ItineraryRow, error) {
	entries, err := storage.LoadSet[core.ItineraryEntry](ctx, s.store, storage.SetItinerary)
	if err != nil {
		return core.ItineraryRow{}, err
	}
	canonical, err := core.CanonicalID(id)
	if err != nil {
		return core.ItineraryRow{}, err
	}
	if entries.Has(canonical) {
		return core.ItineraryRow{}, fmt.Errorf("%w: entry %q", core.ErrDuplicateID, canonical)
	}

	trip, err := s.parentTrip(ctx, tripID)
	if err != nil {
		return core.ItineraryRow{}, err
	}
	d, err := s.validDate(date, trip)
	if err != nil {
		return core.ItineraryRow{}, err
	}
	if !core.NonEmpty(activity) {
		return core.ItineraryRow{}, fmt.Errorf("%w: activity", core.ErrEmptyField)
	}

	entry := core.ItineraryEntry{
		TripID:   strings.TrimSpace(tripID),
		Date:     d,
		Activity: strings.TrimSpace(activity),
	}
	entries.Put(canonical, entry)
	if err := storage.SaveSet(ctx, s.store, storage.SetItinerary, entries); err != nil {
		return core.ItineraryRow{}, err
	}
	notify(ctx, s.notifier, storage.SetItinerary, canonical, amqp.ActionCreate)
	return core.ItineraryRow{ID: canonical, Entry: entry}, nil
}

// Update merges non-blank fields and re-validates the date against the
// parent trip's current span, which may have changed since creation.
func (s *ItineraryService) Update(ctx context.Context, id, tripID, date, activity string) (core.ItineraryRow, error) {
	entries, err := storage.LoadSet[core.ItineraryEntry](ctx, s.store, storage.SetItinerary)
	if err != nil {
		return core.ItineraryRow{}, err
	}
	canonical, err := core.CanonicalID(id)
	if err != nil {
		return core.ItineraryRow{}, err
	}
	entry, ok := entries.Get(canonical)
	if !ok {
		return core.ItineraryRow{}, fmt.Errorf("%w: entry %q", core.ErrNotFound, canonical)
	}

	if core.NonEmpty(tripID) {
		entry.TripID = strings.TrimSpace(tripID)
	}
	trip, err := s.parentTrip(ctx, entry.TripID)
	if err != nil {
		return core.ItineraryRow{}, err
	}
	if core.NonEmpty(date) {
		d, err := s.validDate(date, trip)
		if err != nil {
			return core.ItineraryRow{}, err
		}
		entry.Date = d
	} else if !entry.Date.Within(trip.StartDate, trip.EndDate) {
		return core.ItineraryRow{}, fmt.Errorf("%w: %s not in [%s, %s]",
			core.ErrOutOfRange, entry.Date, trip.StartDate, trip.EndDate)
	}
	if core.NonEmpty(activity) {
		entry.Activity = strings.TrimSpace(activity)
	}

	entries.Put(canonical, entry)
	if err := storage.SaveSet(ctx, s.store, storage.SetItinerary, entries); err != nil {
		return core.ItineraryRow{}, err
	}
	notify(ctx, s.notifier, storage.SetItinerary, canonical, amqp.ActionUpdate)
	return core.ItineraryRow{ID: canonical, Entry: entry}, nil
}

// Delete removes the entry.
func (s *ItineraryService) Delete(ctx context.Context, id string) error {
	entries, err := storage.LoadSet[core.ItineraryEntry](ctx, s.store, storage.SetItinerary)
	if err != nil {
		return err
	}
	canonical, err := core.CanonicalID(id)
	if err != nil {
		return err
	}
	if !entries.Delete(canonical) {
		return fmt.Errorf("%w: entry %q", core.ErrNotFound, canonical)
	}
	if err := storage.SaveSet(ctx, s.store, storage.SetItinerary, entries); err != nil {
		return err
	}
	notify(ctx, s.notifier, storage.SetItinerary, canonical, amqp.ActionDelete)
	return nil
}

// List returns all entries in persisted insertion order.
func (s *ItineraryService) List(ctx context.Context) ([]core.ItineraryRow, error) {
	entries, err := storage.LoadSet[core.ItineraryEntry](ctx, s.store, storage.SetItinerary)
	if err != nil {
		return nil, err
	}
	rows := make([]core.ItineraryRow, 0, entries.Len())
	for _, id := range entries.IDs() {
		entry, _ := entries.Get(id)
		rows = append(rows, core.ItineraryRow{ID: id, Entry: entry})
	}
	return rows, nil
}

func (s *ItineraryService) parentTrip(ctx context.Context, tripID string) (core.Trip, error) {
	trips, err := storage.LoadSet[core.Trip](ctx, s.store, storage.SetTrips)
	if err != nil {
		return core.Trip{}, err
	}
	trip, ok := trips.Get(strings.TrimSpace(tripID))
	if !ok {
		return core.Trip{}, fmt.Errorf("%w: %q", core.ErrTripNotFound, strings.TrimSpace(tripID))
	}
	return trip, nil
}

func (s *ItineraryService) validDate(date string, trip core.Trip) (core.Date, error) {
	d, err := core.ParseDate(date)
	if err != nil {
		return core.Date{}, err
	}
	if s.futureOnly && !d.OnOrAfter(core.Today()) {
		return core.Date{}, fmt.Errorf("%w: %s is in the past", core.ErrOutOfRange, d)
	}
	if !d.Within(trip.StartDate, trip.EndDate) {
		return core.Date{}, fmt.Errorf("%w: %s not in [%s, %s]",
			core.ErrOutOfRange, d, trip.StartDate, trip.EndDate)
	}
	return d, nil
}
