// Package statefile implements the notification state store as a flat
// JSON file, for run-once scheduled execution where the file is carried
// between runs as a CI artifact.
package statefile

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/diegoclair/slack-sheet-monitor/internal/domain/contract"
	"github.com/diegoclair/slack-sheet-monitor/internal/domain/entity"
)

type Store struct {
	path string

	mu      sync.Mutex
	entries map[string]time.Time
}

// New loads the state file at path. A missing or unreadable file starts an
// empty store: losing throttle state only risks an extra notification, which
// beats never starting.
func New(path string) (*Store, error) {
	s := &Store{
		path:    path,
		entries: map[string]time.Time{},
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}

	if err := json.Unmarshal(data, &s.entries); err != nil {
		slog.Warn("state file is corrupt, starting empty",
			slog.String("path", path),
			slog.String("error", err.Error()))
		s.entries = map[string]time.Time{}
	}

	return s, nil
}

var _ contract.NotificationStateRepo = (*Store)(nil)

func (s *Store) Get(key string) (*entity.StateEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	notifiedAt, ok := s.entries[key]
	if !ok {
		return nil, nil
	}

	return &entity.StateEntry{Key: key, NotifiedAt: notifiedAt}, nil
}

func (s *Store) Upsert(entry *entity.StateEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[entry.Key] = entry.NotifiedAt.UTC()
	return s.save()
}

func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[key]; !ok {
		return nil
	}

	delete(s.entries, key)
	return s.save()
}

// save rewrites the whole file on every mutation, under the caller's lock.
// Write-then-rename keeps a crashed run from leaving a truncated file behind.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".state-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp state file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write state file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close state file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace state file: %w", err)
	}

	return nil
}
