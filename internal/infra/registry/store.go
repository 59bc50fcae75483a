// Package registry provides the JSON file-backed process registry.
package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/runoshun/bonk/internal/domain"
)

// Store implements domain.Registry on top of a single JSON file.
//
// The whole file is read into memory when the store is opened and rewritten
// in full on every mutation. There is no advisory locking: concurrent bonk
// invocations racing to mutate the registry are last-writer-wins. The write
// itself is atomic (temp file + rename), so a racing reader never observes a
// torn file, but a lost update remains possible. Known limitation.
type Store struct {
	data map[string]map[string]domain.Entry
	path string
}

// Open loads the registry file at path, creating an empty one if it does not
// exist yet.
func Open(path string) (*Store, error) {
	s := &Store{path: path}
	content, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read registry file: %w", err)
		}
		s.data = make(map[string]map[string]domain.Entry)
		if err := s.write(); err != nil {
			return nil, err
		}
		return s, nil
	}

	if err := json.Unmarshal(content, &s.data); err != nil {
		return nil, fmt.Errorf("parse registry file: %w", err)
	}
	if s.data == nil {
		s.data = make(map[string]map[string]domain.Entry)
	}
	return s, nil
}

// Get returns the entry for a task, if present.
func (s *Store) Get(projectID, task string) (domain.Entry, bool) {
	e, ok := s.data[projectID][task]
	return e, ok
}

// Tasks returns all entries recorded for a project.
func (s *Store) Tasks(projectID string) map[string]domain.Entry {
	entries := make(map[string]domain.Entry, len(s.data[projectID]))
	for task, e := range s.data[projectID] {
		entries[task] = e
	}
	return entries
}

// Record inserts or overwrites an entry and flushes the file.
func (s *Store) Record(projectID, task string, e domain.Entry) error {
	if s.data[projectID] == nil {
		s.data[projectID] = make(map[string]domain.Entry)
	}
	s.data[projectID][task] = e
	return s.write()
}

// Clear removes an entry if present and flushes the file.
func (s *Store) Clear(projectID, task string) error {
	tasks, ok := s.data[projectID]
	if !ok {
		return nil
	}
	if _, ok := tasks[task]; !ok {
		return nil
	}
	delete(tasks, task)
	if len(tasks) == 0 {
		delete(s.data, projectID)
	}
	return s.write()
}

func (s *Store) write() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create registry directory: %w", err)
	}

	content, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal registry: %w", err)
	}

	// Write to temp file first, then rename for atomicity
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// Ensure Store implements Registry.
var _ domain.Registry = (*Store)(nil)
