package services

import (
	"context"
	"fmt"
	"strings"

	"viaggio/internal/amqp"
	"viaggio/internal/core"
	"viaggio/internal/storage"
)

// PackingService owns the packing-list record set. Items follow the same
// referential rule as itinerary entries and expenses: the trip must exist
// when the item is created or repointed.
type PackingService struct {
	store    storage.RecordStore
	notifier *amqp.Client
}

func NewPackingService(store storage.RecordStore, notifier *amqp.Client) *PackingService {
	return &PackingService{store: store, notifier: notifier}
}

// Create validates and persists a new packing item. New items start
// unpacked.
func (s *PackingService) Create(ctx context.Context, id, tripID, name, quantity string) (core.PackingRow, error) {
	items, err := storage.LoadSet[core.PackingItem](ctx, s.store, storage.SetPacking)
	if err != nil {
		return core.PackingRow{}, err
	}
	canonical, err := core.CanonicalID(id)
	if err != nil {
		return core.PackingRow{}, err
	}
	if items.Has(canonical) {
		return core.PackingRow{}, fmt.Errorf("%w: item %q", core.ErrDuplicateID, canonical)
	}
	if err := s.tripExists(ctx, tripID); err != nil {
		return core.PackingRow{}, err
	}
	if !core.NonEmpty(name) {
		return core.PackingRow{}, fmt.Errorf("%w: name", core.ErrEmptyField)
	}
	qty, err := core.ParseQuantity(quantity)
	if err != nil {
		return core.PackingRow{}, err
	}

	item := core.PackingItem{
		TripID:   strings.TrimSpace(tripID),
		Name:     strings.TrimSpace(name),
		Quantity: qty,
	}
	items.Put(canonical, item)
	if err := storage.SaveSet(ctx, s.store, storage.SetPacking, items); err != nil {
		return core.PackingRow{}, err
	}
	notify(ctx, s.notifier, storage.SetPacking, canonical, amqp.ActionCreate)
	return core.PackingRow{ID: canonical, Item: item}, nil
}

// Update merges non-blank fields.
func (s *PackingService) Update(ctx context.Context, id, tripID, name, quantity string) (core.PackingRow, error) {
	items, err := storage.LoadSet[core.PackingItem](ctx, s.store, storage.SetPacking)
	if err != nil {
		return core.PackingRow{}, err
	}
	canonical, err := core.CanonicalID(id)
	if err != nil {
		return core.PackingRow{}, err
	}
	item, ok := items.Get(canonical)
	if !ok {
		return core.PackingRow{}, fmt.Errorf("%w: item %q", core.ErrNotFound, canonical)
	}

	if core.NonEmpty(tripID) {
		if err := s.tripExists(ctx, tripID); err != nil {
			return core.PackingRow{}, err
		}
		item.TripID = strings.TrimSpace(tripID)
	}
	if core.NonEmpty(name) {
		item.Name = strings.TrimSpace(name)
	}
	if core.NonEmpty(quantity) {
		qty, err := core.ParseQuantity(quantity)
		if err != nil {
			return core.PackingRow{}, err
		}
		item.Quantity = qty
	}

	items.Put(canonical, item)
	if err := storage.SaveSet(ctx, s.store, storage.SetPacking, items); err != nil {
		return core.PackingRow{}, err
	}
	notify(ctx, s.notifier, storage.SetPacking, canonical, amqp.ActionUpdate)
	return core.PackingRow{ID: canonical, Item: item}, nil
}

// TogglePacked flips the packed flag.
func (s *PackingService) TogglePacked(ctx context.Context, id string) (core.PackingRow, error) {
	items, err := storage.LoadSet[core.PackingItem](ctx, s.store, storage.SetPacking)
	if err != nil {
		return core.PackingRow{}, err
	}
	canonical, err := core.CanonicalID(id)
	if err != nil {
		return core.PackingRow{}, err
	}
	item, ok := items.Get(canonical)
	if !ok {
		return core.PackingRow{}, fmt.Errorf("%w: item %q", core.ErrNotFound, canonical)
	}
	item.Packed = !item.Packed

	items.Put(canonical, item)
	if err := storage.SaveSet(ctx, s.store, storage.SetPacking, items); err != nil {
		return core.PackingRow{}, err
	}
	notify(ctx, s.notifier, storage.SetPacking, canonical, amqp.ActionUpdate)
	return core.PackingRow{ID: canonical, Item: item}, nil
}

// Delete removes the item.
func (s *PackingService) Delete(ctx context.Context, id string) error {
	items, err := storage.LoadSet[core.PackingItem](ctx, s.store, storage.SetPacking)
	if err != nil {
		return err
	}
	canonical, err := core.CanonicalID(id)
	if err != nil {
		return err
	}
	if !items.Delete(canonical) {
		return fmt.Errorf("%w: item %q", core.ErrNotFound, canonical)
	}
	if err := storage.SaveSet(ctx, s.store, storage.SetPacking, items); err != nil {
		return err
	}
	notify(ctx, s.notifier, storage.SetPacking, canonical, amqp.ActionDelete)
	return nil
}

// List returns all packing items in persisted insertion order.
func (s *PackingService) List(ctx context.Context) ([]core.PackingRow, error) {
	items, err := storage.LoadSet[core.PackingItem](ctx, s.store, storage.SetPacking)
	if err != nil {
		return nil, err
	}
	rows := make([]core.PackingRow, 0, items.Len())
	for _, id := range items.IDs() {
		item, _ := items.Get(id)
		rows = append(rows, core.PackingRow{ID: id, Item: item})
	}
	return rows, nil
}

func (s *PackingService) tripExists(ctx context.Context, tripID string) error {
	trips, err := storage.LoadSet[core.Trip](ctx, s.store, storage.SetTrips)
	if err != nil {
		return err
	}
	if !trips.Has(strings.TrimSpace(tripID)) {
		return fmt.Errorf("%w: %q", core.ErrTripNotFound, strings.TrimSpace(tripID))
	}
	return nil
}
