// Package jsonstore provides a JSON file-based implementation of HistoryRepository.
package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/runoshun/guardkit/internal/domain"
)

// storeVersion is written to new store files.
const storeVersion = 1

// storeData represents the JSON file structure.
// Entries are kept oldest first.
type storeData struct {
	Entries []domain.HistoryEntry `json:"entries"`
	Meta    meta                  `json:"meta"`
}

// meta contains store metadata.
type meta struct {
	Version int `json:"version"`
}

// Store implements domain.HistoryRepository using a JSON file.
type Store struct {
	path     string
	lockPath string
}

// Ensure Store implements HistoryRepository.
var _ domain.HistoryRepository = (*Store)(nil)

// New creates a new Store for the given file path.
// The file and its directory are created on first write.
func New(path string) *Store {
	return &Store{
		path:     path,
		lockPath: path + ".lock",
	}
}

// Append adds an entry and drops the oldest entries beyond keep (0 = unlimited).
func (s *Store) Append(entry domain.HistoryEntry, keep int) error {
	return s.withLockWrite(func(data *storeData) error {
		data.Entries = append(data.Entries, entry)
		if keep > 0 && len(data.Entries) > keep {
			data.Entries = append([]domain.HistoryEntry(nil), data.Entries[len(data.Entries)-keep:]...)
		}
		return nil
	})
}

// List returns entries matching the filter, newest first.
func (s *Store) List(filter domain.HistoryFilter) ([]domain.HistoryEntry, error) {
	entries := []domain.HistoryEntry{}
	err := s.withLock(func(data *storeData) error {
		for i := len(data.Entries) - 1; i >= 0; i-- {
			e := data.Entries[i]
			if filter.Kind != "" && e.Kind != filter.Kind {
				continue
			}
			entries = append(entries, e)
			if filter.Limit > 0 && len(entries) >= filter.Limit {
				break
			}
		}
		return nil
	})
	return entries, err
}

// Clear removes all entries and returns how many were removed.
func (s *Store) Clear() (int, error) {
	var n int
	err := s.withLockWrite(func(data *storeData) error {
		n = len(data.Entries)
		data.Entries = []domain.HistoryEntry{}
		return nil
	})
	return n, err
}

func newStoreData() *storeData {
	return &storeData{
		Entries: []domain.HistoryEntry{},
		Meta:    meta{Version: storeVersion},
	}
}

// withLock executes fn with a shared (read) lock.
func (s *Store) withLock(fn func(*storeData) error) error {
	lock, err := s.acquireLock(syscall.LOCK_SH)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	data, err := s.read()
	if err != nil {
		return err
	}

	return fn(data)
}

// withLockWrite executes fn with an exclusive (write) lock and writes the result.
func (s *Store) withLockWrite(fn func(*storeData) error) error {
	lock, err := s.acquireLock(syscall.LOCK_EX)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	data, err := s.read()
	if err != nil {
		return err
	}

	if err := fn(data); err != nil {
		return err
	}

	return s.write(data)
}

func (s *Store) acquireLock(lockType int) (*os.File, error) {
	dir := filepath.Dir(s.lockPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}

	lock, err := os.OpenFile(s.lockPath, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}

	if err := syscall.Flock(int(lock.Fd()), lockType); err != nil {
		_ = lock.Close()
		return nil, fmt.Errorf("acquire lock: %w", err)
	}

	return lock, nil
}

func (s *Store) releaseLock(lock *os.File) {
	_ = syscall.Flock(int(lock.Fd()), syscall.LOCK_UN)
	_ = lock.Close()
}

// read loads the store file. A missing file reads as an empty store.
func (s *Store) read() (*storeData, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return newStoreData(), nil
		}
		return nil, fmt.Errorf("read store file: %w", err)
	}

	var data storeData
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("parse store file: %w", err)
	}
	if data.Entries == nil {
		data.Entries = []domain.HistoryEntry{}
	}

	return &data, nil
}

func (s *Store) write(data *storeData) error {
	content, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal store data: %w", err)
	}

	// Write to temp file first, then rename for atomicity
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath) // Clean up
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}
