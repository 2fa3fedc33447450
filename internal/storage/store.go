// Package storage persists the record sets. Each set is one ordered mapping
// from id to record document; backends exist for JSON files (the default
// layout), SQLite, and process memory.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"viaggio/internal/core"
)

// Names of the persisted record sets.
const (
	SetTrips     = "trips"
	SetItinerary = "itinerary"
	SetExpenses  = "expenses"
	SetPacking   = "packing"
)

// ErrCorrupted marks persisted data that cannot be decoded. There is no
// recovery path: commands report it and exit.
var ErrCorrupted = errors.New("corrupted record set")

// RawSet is an ordered mapping from id to an undecoded record document.
type RawSet = core.RecordSet[json.RawMessage]

// RecordStore persists one ordered mapping per named record set.
//
// Load of a never-saved set yields an empty mapping, never an error. Save
// replaces the set's entire persisted contents; callers follow a full
// load-mutate-save cycle per operation.
type RecordStore interface {
	Load(ctx context.Context, set string) (*RawSet, error)
	Save(ctx context.Context, set string, records *RawSet) error
}

// LoadSet loads a record set and decodes every document into T.
func LoadSet[T any](ctx context.Context, store RecordStore, set string) (*core.RecordSet[T], error) {
	raw, err := store.Load(ctx, set)
	if err != nil {
		return nil, err
	}
	out := core.NewRecordSet[T]()
	for _, id := range raw.IDs() {
		doc, _ := raw.Get(id)
		var rec T
		if err := json.Unmarshal(doc, &rec); err != nil {
			return nil, fmt.Errorf("%w: %s[%s]: %v", ErrCorrupted, set, id, err)
		}
		out.Put(id, rec)
	}
	return out, nil
}

// SaveSet encodes every record and saves the full set.
func SaveSet[T any](ctx context.Context, store RecordStore, set string, records *core.RecordSet[T]) error {
	raw := core.NewRecordSet[json.RawMessage]()
	for _, id := range records.IDs() {
		rec, _ := records.Get(id)
		doc, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("encode %s[%s]: %w", set, id, err)
		}
		raw.Put(id, doc)
	}
	return store.Save(ctx, set, raw)
}
