package core

// RecordSet is an insertion-ordered mapping from record id to record.
// Listings and persisted documents keep the order in which ids first
// arrived; replacing a record does not move it.
type RecordSet[T any] struct {
	ids   []string
	items map[string]T
}

// NewRecordSet returns an empty set.
func NewRecordSet[T any]() *RecordSet[T] {
	return &RecordSet[T]{items: make(map[string]T)}
}

// Len returns the number of records in the set.
func (s *RecordSet[T]) Len() int {
	return len(s.ids)
}

// Has reports whether id is present.
func (s *RecordSet[T]) Has(id string) bool {
	_, ok := s.items[id]
	return ok
}

// Get returns the record stored under id.
func (s *RecordSet[T]) Get(id string) (T, bool) {
	v, ok := s.items[id]
	return v, ok
}

// Put inserts or replaces the record under id. A new id is appended at the
// end of the iteration order.
func (s *RecordSet[T]) Put(id string, v T) {
	if _, ok := s.items[id]; !ok {
		s.ids = append(s.ids, id)
	}
	s.items[id] = v
}

// Delete removes the record under id and reports whether it was present.
func (s *RecordSet[T]) Delete(id string) bool {
	if _, ok := s.items[id]; !ok {
		return false
	}
	delete(s.items, id)
	for i, existing := range s.ids {
		if existing == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			break
		}
	}
	return true
}

// IDs returns the ids in insertion order. The slice is a copy.
func (s *RecordSet[T]) IDs() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}
