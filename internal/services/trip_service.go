package services

import (
	"context"
	"fmt"
	"strings"

	"viaggio/internal/amqp"
	"viaggio/internal/core"
	"viaggio/internal/storage"
)

// TripService owns the trips record set.
type TripService struct {
	store    storage.RecordStore
	notifier *amqp.Client // nil when AMQP is not configured
}

func NewTripService(store storage.RecordStore, notifier *amqp.Client) *TripService {
	return &TripService{store: store, notifier: notifier}
}

// Create validates and persists a new trip. The budget may be blank, which
// leaves it unset.
func (s *TripService) Create(ctx context.Context, id, destination, start, end, budget string) (core.TripRow, error) {
	trips, err := storage.LoadSet[core.Trip](ctx, s.store, storage.SetTrips)
	if err != nil {
		return core.TripRow{}, err
	}

	id = strings.TrimSpace(id)
	if id == "" {
		return core.TripRow{}, fmt.Errorf("%w: trip id must not be blank", core.ErrInvalidID)
	}
	if trips.Has(id) {
		return core.TripRow{}, fmt.Errorf("%w: trip %q", core.ErrDuplicateID, id)
	}
	trip, err := buildTrip(destination, start, end, budget)
	if err != nil {
		return core.TripRow{}, err
	}

	trips.Put(id, trip)
	if err := storage.SaveSet(ctx, s.store, storage.SetTrips, trips); err != nil {
		return core.TripRow{}, err
	}
	notify(ctx, s.notifier, storage.SetTrips, id, amqp.ActionCreate)
	return core.TripRow{ID: id, Trip: trip}, nil
}

// Update merges non-blank fields into the stored trip and re-validates the
// result. A blank field means "no change", never "clear".
func (s *TripService) Update(ctx context.Context, id, destination, start, end, budget string) (core.TripRow, error) {
	trips, err := storage.LoadSet[core.Trip](ctx, s.store, storage.SetTrips)
	if err != nil {
		return core.TripRow{}, err
	}
	id = strings.TrimSpace(id)
	trip, ok := trips.Get(id)
	if !ok {
		return core.TripRow{}, fmt.Errorf("%w: trip %q", core.ErrNotFound, id)
	}

	if core.NonEmpty(destination) {
		trip.Destination = strings.TrimSpace(destination)
	}
	if core.NonEmpty(start) {
		d, err := core.ParseDate(start)
		if err != nil {
			return core.TripRow{}, err
		}
		trip.StartDate = d
	}
	if core.NonEmpty(end) {
		d, err := core.ParseDate(end)
		if err != nil {
			return core.TripRow{}, err
		}
		trip.EndDate = d
	}
	if !core.DateOrderOK(trip.StartDate, trip.EndDate) {
		return core.TripRow{}, fmt.Errorf("%w: %s > %s", core.ErrDateOrder, trip.StartDate, trip.EndDate)
	}
	if core.NonEmpty(budget) {
		cents, err := core.ParseAmountToCents(budget)
		if err != nil {
			return core.TripRow{}, fmt.Errorf("%w: %v", core.ErrBadBudget, err)
		}
		trip.Budget = &core.Money{Cents: cents}
	}

	trips.Put(id, trip)
	if err := storage.SaveSet(ctx, s.store, storage.SetTrips, trips); err != nil {
		return core.TripRow{}, err
	}
	notify(ctx, s.notifier, storage.SetTrips, id, amqp.ActionUpdate)
	return core.TripRow{ID: id, Trip: trip}, nil
}

// Delete removes the trip. Dependent itinerary entries, expenses, and
// packing items are left in place; the summary reports them as orphaned.
func (s *TripService) Delete(ctx context.Context, id string) error {
	trips, err := storage.LoadSet[core.Trip](ctx, s.store, storage.SetTrips)
	if err != nil {
		return err
	}
	id = strings.TrimSpace(id)
	if !trips.Delete(id) {
		return fmt.Errorf("%w: trip %q", core.ErrNotFound, id)
	}
	if err := storage.SaveSet(ctx, s.store, storage.SetTrips, trips); err != nil {
		return err
	}
	notify(ctx, s.notifier, storage.SetTrips, id, amqp.ActionDelete)
	return nil
}

// Get returns a single trip by id.
func (s *TripService) Get(ctx context.Context, id string) (core.TripRow, error) {
	trips, err := storage.LoadSet[core.Trip](ctx, s.store, storage.SetTrips)
	if err != nil {
		return core.TripRow{}, err
	}
	id = strings.TrimSpace(id)
	trip, ok := trips.Get(id)
	if !ok {
		return core.TripRow{}, fmt.Errorf("%w: trip %q", core.ErrNotFound, id)
	}
	return core.TripRow{ID: id, Trip: trip}, nil
}

// List returns all trips in persisted insertion order.
func (s *TripService) List(ctx context.Context) ([]core.TripRow, error) {
	trips, err := storage.LoadSet[core.Trip](ctx, s.store, storage.SetTrips)
	if err != nil {
		return nil, err
	}
	rows := make([]core.TripRow, 0, trips.Len())
	for _, id := range trips.IDs() {
		trip, _ := trips.Get(id)
		rows = append(rows, core.TripRow{ID: id, Trip: trip})
	}
	return rows, nil
}

func buildTrip(destination, start, end, budget string) (core.Trip, error) {
	if !core.NonEmpty(destination) {
		return core.Trip{}, fmt.Errorf("%w: destination", core.ErrEmptyField)
	}
	startDate, err := core.ParseDate(start)
	if err != nil {
		return core.Trip{}, err
	}
	endDate, err := core.ParseDate(end)
	if err != nil {
		return core.Trip{}, err
	}
	if !core.DateOrderOK(startDate, endDate) {
		return core.Trip{}, fmt.Errorf("%w: %s > %s", core.ErrDateOrder, startDate, endDate)
	}
	trip := core.Trip{
		Destination: strings.TrimSpace(destination),
		StartDate:   startDate,
		EndDate:     endDate,
	}
	if core.NonEmpty(budget) {
		cents, err := core.ParseAmountToCents(budget)
		if err != nil {
			return core.Trip{}, fmt.Errorf("%w: %v", core.ErrBadBudget, err)
		}
		trip.Budget = &core.Money{Cents: cents}
	}
	return trip, nil
}
