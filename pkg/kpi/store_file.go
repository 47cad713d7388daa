package kpi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
)

// FileStore persists goal overrides as one JSON file per scope under a data
// directory. It is the default store for single-node deployments.
type FileStore struct {
	dir string
}

// NewFileStore creates the store, creating the directory if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create goal store dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// path maps a scope to its file, escaping both components so arbitrary IDs
// cannot traverse out of the data directory.
func (s *FileStore) path(scope Scope) string {
	name := url.PathEscape(scope.ProjectID) + "__" + url.PathEscape(scope.FlowsheetVersionID) + ".json"
	return filepath.Join(s.dir, name)
}

// Load returns the stored overrides for the scope, empty if none exist.
func (s *FileStore) Load(_ context.Context, scope Scope) (map[string]Goal, error) {
	if !scope.Valid() {
		return nil, fmt.Errorf("goal store: incomplete scope %q", scope.Key())
	}
	data, err := os.ReadFile(s.path(scope))
	if os.IsNotExist(err) {
		return map[string]Goal{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read goal overrides for %s: %w", scope.Key(), err)
	}

	goals := make(map[string]Goal)
	if err := json.Unmarshal(data, &goals); err != nil {
		return nil, fmt.Errorf("parse goal overrides for %s: %w", scope.Key(), err)
	}
	return goals, nil
}

// Save replaces the stored overrides for the scope. Invalid goals are
// rejected before anything is written, and the write itself goes through a
// rename so a crash cannot leave a torn file.
func (s *FileStore) Save(_ context.Context, scope Scope, goals map[string]Goal) error {
	if err := validateGoals(scope, goals); err != nil {
		return err
	}

	data, err := json.MarshalIndent(goals, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal goal overrides for %s: %w", scope.Key(), err)
	}

	target := s.path(scope)
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write goal overrides for %s: %w", scope.Key(), err)
	}
	if err := os.Rename(tmp, target); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("commit goal overrides for %s: %w", scope.Key(), err)
	}
	return nil
}
