// Package store keeps the last fetched state of remote resources.
package store

import "sync"

// Identifiable is implemented by records stored in a Slot.
type Identifiable interface {
	Key() string
}

// Slot holds the latest list fetched for one resource.
//
// Responses are committed only if they answer the most recently issued request;
// a slow response to an older request is discarded rather than overwriting newer data.
type Slot[T Identifiable] struct {
	mu        sync.RWMutex
	issued    uint64
	committed uint64
	items     []T
	index     map[string]int
	loaded    bool
}

// NewSlot returns an empty slot.
func NewSlot[T Identifiable]() *Slot[T] {
	return &Slot[T]{index: map[string]int{}}
}

// Begin issues the sequence number for a new fetch.
func (s *Slot[T]) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issued++
	return s.issued
}

// Commit replaces the slot wholesale with items if seq is the newest issued request.
// It reports whether the items were stored.
func (s *Slot[T]) Commit(seq uint64, items []T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.issued || seq <= s.committed {
		return false
	}

	s.committed = seq
	s.items = make([]T, len(items))
	copy(s.items, items)
	s.reindex()
	s.loaded = true
	return true
}

// Upsert replaces the record with the same key or appends it.
func (s *Slot[T]) Upsert(item T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i, ok := s.index[item.Key()]; ok {
		s.items[i] = item
		return
	}
	s.items = append(s.items, item)
	s.index[item.Key()] = len(s.items) - 1
}

// Remove drops the record with key. Removing an unknown key is a no-op.
func (s *Slot[T]) Remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[key]
	if !ok {
		return
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	s.reindex()
}

// Get returns the record with key.
func (s *Slot[T]) Get(key string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var zero T
	i, ok := s.index[key]
	if !ok {
		return zero, false
	}
	return s.items[i], true
}

// Items returns a copy of the stored records in order.
func (s *Slot[T]) Items() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Loaded reports whether any fetch has been committed.
func (s *Slot[T]) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

func (s *Slot[T]) reindex() {
	s.index = make(map[string]int, len(s.items))
	for i, item := range s.items {
		s.index[item.Key()] = i
	}
}
