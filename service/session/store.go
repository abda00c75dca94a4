package session

import "sync"

// Store is a small generic in-memory record store keyed by a comparable
// key extracted from the value. The lifecycle manager keeps its sessions in
// one, keyed by source view identity.
type Store[K comparable, T any] struct {
	mu          sync.RWMutex
	records     map[K]*T
	keySelector func(*T) K
}

// NewStore creates a store; keySelector extracts the record key.
func NewStore[K comparable, T any](keySelector func(*T) K) *Store[K, T] {
	return &Store[K, T]{
		records:     make(map[K]*T),
		keySelector: keySelector,
	}
}

// Save stores or overwrites a record.
func (s *Store[K, T]) Save(v *T) {
	if v == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[s.keySelector(v)] = v
}

// Load returns a record by key, nil when absent.
func (s *Store[K, T]) Load(key K) *T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records[key]
}

// Delete removes a record.
func (s *Store[K, T]) Delete(key K) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, key)
}

// List returns all stored records.
func (s *Store[K, T]) List() []*T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*T, 0, len(s.records))
	for _, v := range s.records {
		out = append(out, v)
	}
	return out
}
