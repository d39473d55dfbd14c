package storage

import (
	"context"
	"slices"

	"registrar/pkg/platform/sentinel"
)

// InMemory is a map-backed keyed store. Records are held by value of V, so
// when V is a pointer type the store and its callers share the record.
//
// InMemory is not safe for concurrent use. Callers that share one across
// goroutines must serialize access themselves, e.g. with a sync.Mutex held
// around every call.
type InMemory[K ~string, V Record[K]] struct {
	records map[K]V
}

func NewInMemory[K ~string, V Record[K]]() *InMemory[K, V] {
	return &InMemory[K, V]{records: make(map[K]V)}
}

// Create inserts a record. Returns sentinel.ErrConflict when the key is
// already taken; the stored record is left untouched.
func (s *InMemory[K, V]) Create(_ context.Context, record V) error {
	id := record.ID()
	if _, exists := s.records[id]; exists {
		return sentinel.ErrConflict
	}
	s.records[id] = record
	return nil
}

func (s *InMemory[K, V]) FindByID(_ context.Context, id K) (V, error) {
	if record, ok := s.records[id]; ok {
		return record, nil
	}
	var zero V
	return zero, sentinel.ErrNotFound
}

func (s *InMemory[K, V]) Delete(_ context.Context, id K) error {
	if _, ok := s.records[id]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.records, id)
	return nil
}

// List returns a snapshot of the stored records ordered by key.
func (s *InMemory[K, V]) List(_ context.Context) ([]V, error) {
	keys := make([]K, 0, len(s.records))
	for id := range s.records {
		keys = append(keys, id)
	}
	slices.Sort(keys)

	out := make([]V, 0, len(keys))
	for _, id := range keys {
		out = append(out, s.records[id])
	}
	return out, nil
}

func (s *InMemory[K, V]) Count(_ context.Context) (int, error) {
	return len(s.records), nil
}
