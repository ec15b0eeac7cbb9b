package database

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/gofrs/flock"
	"github.com/rpupo63/portfolio-sync/errs"
)

// FileStorage keeps the session as a JSON object in a single file. A
// sibling ".lock" file serializes access across processes.
type FileStorage struct {
	filePath string
	fileLock *flock.Flock
	mu       sync.Mutex
}

func NewFileStorage(filePath string) *FileStorage {
	return &FileStorage{
		filePath: filePath,
		fileLock: flock.New(filePath + ".lock"),
	}
}

func (s *FileStorage) Get(key string, dst any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var raw json.RawMessage
	err := s.withLock(func() error {
		entries, err := s.load()
		if err != nil {
			return err
		}
		raw = entries[key]
		return nil
	})
	if err != nil {
		return false, errs.NewStorageError(key, err)
	}
	if raw == nil {
		return false, nil
	}
	if err := decode(raw, dst); err != nil {
		return false, errs.NewStorageError(key, err)
	}
	return true, nil
}

func (s *FileStorage) Set(key string, value any) error {
	raw, err := encode(value)
	if err != nil {
		return errs.NewStorageError(key, err)
	}
	return s.mutate(key, func(entries map[string]json.RawMessage) {
		entries[key] = raw
	})
}

func (s *FileStorage) Remove(key string) error {
	return s.mutate(key, func(entries map[string]json.RawMessage) {
		delete(entries, key)
	})
}

func (s *FileStorage) mutate(key string, apply func(map[string]json.RawMessage)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.withLock(func() error {
		entries, err := s.load()
		if err != nil {
			return err
		}
		apply(entries)
		return s.save(entries)
	})
	if err != nil {
		return errs.NewStorageError(key, err)
	}
	return nil
}

func (s *FileStorage) withLock(fn func() error) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	locked, err := s.fileLock.TryLockContext(ctx, 100*time.Millisecond)
	if err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("could not acquire file lock")
	}
	defer func() { _ = s.fileLock.Unlock() }()

	return fn()
}

// load must be called with the file lock held.
func (s *FileStorage) load() (map[string]json.RawMessage, error) {
	entries := map[string]json.RawMessage{}

	data, err := os.ReadFile(s.filePath)
	if os.IsNotExist(err) {
		return entries, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if len(data) == 0 {
		return entries, nil
	}

	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return entries, nil
}

// save must be called with the file lock held.
func (s *FileStorage) save(entries map[string]json.RawMessage) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	tmpFile := s.filePath + ".tmp"
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := os.Rename(tmpFile, s.filePath); err != nil {
		_ = os.Remove(tmpFile)
		return fmt.Errorf("failed to rename file: %w", err)
	}
	return nil
}
