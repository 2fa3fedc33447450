package storage

import (
	"context"
	"encoding/json"

	"viaggio/internal/core"
)

// MemoryStore keeps record sets in process memory. Used in tests and for
// throwaway runs; contents are lost on exit.
type MemoryStore struct {
	sets map[string]*RawSet
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sets: make(map[string]*RawSet)}
}

// Load returns a copy, so callers mutating the result do not leak changes
// into the store without a Save.
func (s *MemoryStore) Load(_ context.Context, set string) (*RawSet, error) {
	stored, ok := s.sets[set]
	if !ok {
		return core.NewRecordSet[json.RawMessage](), nil
	}
	return copySet(stored), nil
}

func (s *MemoryStore) Save(_ context.Context, set string, records *RawSet) error {
	s.sets[set] = copySet(records)
	return nil
}

func copySet(in *RawSet) *RawSet {
	out := core.NewRecordSet[json.RawMessage]()
	for _, id := range in.IDs() {
		doc, _ := in.Get(id)
		cp := make(json.RawMessage, len(doc))
		copy(cp, doc)
		out.Put(id, cp)
	}
	return out
}
