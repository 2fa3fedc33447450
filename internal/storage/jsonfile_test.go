package storage

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"viaggio/internal/core"
)

func TestJSONStoreLoadMissing(t *testing.T) {
	store, err := NewJSONStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	records, err := store.Load(context.Background(), SetTrips)
	if err != nil {
		t.Fatalf("load missing set: %v", err)
	}
	if records.Len() != 0 {
		t.Fatalf("expected empty set, got %d records", records.Len())
	}
}

func TestJSONStoreRoundTrip(t *testing.T) {
	store, err := NewJSONStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	ctx := context.Background()

	in := core.NewRecordSet[json.RawMessage]()
	in.Put("T2", json.RawMessage(`{"destination":"Oslo"}`))
	in.Put("T1", json.RawMessage(`{"destination":"Paris"}`))
	if err := store.Save(ctx, SetTrips, in); err != nil {
		t.Fatalf("save: %v", err)
	}

	out, err := store.Load(ctx, SetTrips)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := out.IDs(); !reflect.DeepEqual(got, []string{"T2", "T1"}) {
		t.Fatalf("insertion order lost: %v", got)
	}
	doc, _ := out.Get("T1")
	var trip struct {
		Destination string `json:"destination"`
	}
	if err := json.Unmarshal(doc, &trip); err != nil || trip.Destination != "Paris" {
		t.Fatalf("record content lost: %s (%v)", doc, err)
	}
}

func TestJSONStoreSaveReplaces(t *testing.T) {
	store, _ := NewJSONStore(t.TempDir())
	ctx := context.Background()

	in := core.NewRecordSet[json.RawMessage]()
	in.Put("1", json.RawMessage(`{}`))
	in.Put("2", json.RawMessage(`{}`))
	if err := store.Save(ctx, SetExpenses, in); err != nil {
		t.Fatalf("save: %v", err)
	}

	in.Delete("1")
	if err := store.Save(ctx, SetExpenses, in); err != nil {
		t.Fatalf("second save: %v", err)
	}
	out, err := store.Load(ctx, SetExpenses)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if out.Len() != 1 || !out.Has("2") {
		t.Fatalf("save is not a full replace: %v", out.IDs())
	}
}

func TestJSONStoreCorruptFile(t *testing.T) {
	dir := t.TempDir()
	store, _ := NewJSONStore(dir)
	if err := os.WriteFile(filepath.Join(dir, "trips.json"), []byte("{not json"), 0644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}
	_, err := store.Load(context.Background(), SetTrips)
	if !errors.Is(err, ErrCorrupted) {
		t.Fatalf("expected ErrCorrupted, got %v", err)
	}

	// An array instead of an object is also corrupt.
	if err := os.WriteFile(filepath.Join(dir, "trips.json"), []byte("[1,2]"), 0644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}
	_, err = store.Load(context.Background(), SetTrips)
	if !errors.Is(err, ErrCorrupted) {
		t.Fatalf("expected ErrCorrupted for array, got %v", err)
	}
}

func TestLoadSetTyped(t *testing.T) {
	store, _ := NewJSONStore(t.TempDir())
	ctx := context.Background()

	trips := core.NewRecordSet[core.Trip]()
	trips.Put("T1", core.Trip{
		Destination: "Paris",
		StartDate:   core.NewDate(2025, 6, 1),
		EndDate:     core.NewDate(2025, 6, 10),
		Budget:      &core.Money{Cents: 100000},
	})
	trips.Put("T2", core.Trip{
		Destination: "Oslo",
		StartDate:   core.NewDate(2025, 7, 1),
		EndDate:     core.NewDate(2025, 7, 1),
	})
	if err := SaveSet(ctx, store, SetTrips, trips); err != nil {
		t.Fatalf("save set: %v", err)
	}

	back, err := LoadSet[core.Trip](ctx, store, SetTrips)
	if err != nil {
		t.Fatalf("load set: %v", err)
	}
	if got := back.IDs(); !reflect.DeepEqual(got, []string{"T1", "T2"}) {
		t.Fatalf("order = %v", got)
	}
	t1, _ := back.Get("T1")
	if t1.Destination != "Paris" || t1.Budget == nil || t1.Budget.Cents != 100000 {
		t.Fatalf("T1 round trip lost fields: %+v", t1)
	}
	if !t1.StartDate.Equal(core.NewDate(2025, 6, 1).Time) {
		t.Fatalf("T1 start date = %s", t1.StartDate)
	}
	t2, _ := back.Get("T2")
	if t2.Budget != nil {
		t.Fatalf("absent budget must read back as not set")
	}
}
