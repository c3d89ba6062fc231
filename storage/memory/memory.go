package memory

import (
	"sync"
)

// Store implements an in-memory key-value store for testing and for hosts
// that do not want any on-disk state.
type Store struct {
	values map[string][]byte
	mutex  sync.RWMutex
}

// NewStore creates a new in-memory store instance.
func NewStore() *Store {
	return &Store{
		values: make(map[string][]byte),
	}
}

// Get returns the value for key and whether it was present.
func (s *Store) Get(key string) ([]byte, bool, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	value, found := s.values[key]
	if !found {
		return nil, false, nil
	}

	out := make([]byte, len(value))
	copy(out, value)
	return out, true, nil
}

// Set writes the value for key, replacing any previous value.
func (s *Store) Set(key string, value []byte) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	s.values[key] = stored
	return nil
}
