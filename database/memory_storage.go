package database

import (
	"sync"

	"github.com/rpupo63/portfolio-sync/errs"
)

// MemoryStorage lives for the process only.
type MemoryStorage struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{entries: map[string][]byte{}}
}

func (s *MemoryStorage) Get(key string, dst any) (bool, error) {
	s.mu.RLock()
	raw, ok := s.entries[key]
	s.mu.RUnlock()

	if !ok {
		return false, nil
	}
	if err := decode(raw, dst); err != nil {
		return false, errs.NewStorageError(key, err)
	}
	return true, nil
}

func (s *MemoryStorage) Set(key string, value any) error {
	raw, err := encode(value)
	if err != nil {
		return errs.NewStorageError(key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = raw
	return nil
}

func (s *MemoryStorage) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}
