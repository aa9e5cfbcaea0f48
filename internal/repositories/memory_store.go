package repositories

import (
	"context"
	"sync"
)

type memoryEntry struct {
	value   string
	version int64
}

// MemoryStore is a process-local KVStore.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]memoryEntry)}
}

// Get returns the value stored under key.
func (s *MemoryStore) Get(ctx context.Context, key string) (string, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return "", 0, ErrNotFound
	}
	return e.value, e.version, nil
}

// Set stores value under key.
func (s *MemoryStore) Set(ctx context.Context, key, value string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.entries[key]
	e.value = value
	e.version++
	s.entries[key] = e
	return e.version, nil
}

// CompareAndSet stores value under key if the key is still at version.
func (s *MemoryStore) CompareAndSet(ctx context.Context, key, value string, version int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.entries[key]
	if e.version != version {
		return e.version, ErrVersionConflict
	}
	e.value = value
	e.version++
	s.entries[key] = e
	return e.version, nil
}
