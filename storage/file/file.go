package file

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Store implements a key-value store backed by a single JSON file. The full
// map is held in memory and rewritten on every Set; the store only ever
// carries a handful of small entries.
type Store struct {
	filePath string
	values   map[string]string
	mu       sync.RWMutex
}

// NewStore creates a file-backed store at the provided path, loading any
// previously persisted values.
func NewStore(filePath string) (*Store, error) {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	store := &Store{
		filePath: filePath,
		values:   make(map[string]string),
	}

	if err := store.loadFromFile(); err != nil {
		return nil, err
	}

	return store, nil
}

// Get returns the value for key and whether it was present.
func (s *Store) Get(key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, found := s.values[key]
	if !found {
		return nil, false, nil
	}

	return []byte(value), true, nil
}

// Set writes the value for key and persists the store to disk.
func (s *Store) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = string(value)
	return s.saveToFile()
}

func (s *Store) loadFromFile() error {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read storage file: %w", err)
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.values); err != nil {
		return fmt.Errorf("failed to parse storage file: %w", err)
	}

	return nil
}

func (s *Store) saveToFile() error {
	data, err := json.Marshal(s.values)
	if err != nil {
		return fmt.Errorf("failed to encode storage file: %w", err)
	}

	if err := os.WriteFile(s.filePath, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage file: %w", err)
	}

	return nil
}
