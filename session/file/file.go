// Package file stores browser session records in a local JSON file so the
// viewer can run without a cloud parameter store.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/sonnes/liveview/core"
	"github.com/sonnes/liveview/session"
)

// Registry holds the list of session records.
type Registry struct {
	Sessions []core.Session `json:"sessions"`
}

// DefaultPath returns sessions.json under the user config directory.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "sessions.json"
	}
	return filepath.Join(dir, "liveview", "sessions.json")
}

// ReadFile reads a registry from disk. Returns an empty Registry if the file
// does not exist.
func ReadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Registry{}, nil
	}
	if err != nil {
		return nil, err
	}

	var r Registry
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &r, nil
}

// Lookup returns the record for id.
func (r *Registry) Lookup(id string) (core.Session, bool) {
	for _, s := range r.Sessions {
		if s.ID == id {
			return s, true
		}
	}
	return core.Session{}, false
}

// Upsert adds or replaces a record matched by ID. Records are kept sorted by ID.
func (r *Registry) Upsert(s core.Session) {
	for i, e := range r.Sessions {
		if e.ID == s.ID {
			r.Sessions[i] = s
			return
		}
	}
	r.Sessions = append(r.Sessions, s)
	sort.Slice(r.Sessions, func(i, j int) bool {
		return r.Sessions[i].ID < r.Sessions[j].ID
	})
}

// WriteFile saves the registry as the sessions file at path, creating its
// directory if needed. The file is replaced in one rename, so a viewer
// looking up a session sees either the old or the new registry.
func (r *Registry) WriteFile(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".sessions-*.json")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}

	return os.Rename(tmpPath, path)
}

// Store serves live view URLs from a registry file. The file is re-read on
// every lookup so records registered while the viewer runs are picked up.
type Store struct {
	Path string
}

var _ session.Store = (*Store)(nil)

// LiveViewURL implements session.Store.
func (s *Store) LiveViewURL(_ context.Context, sessionID string) (string, error) {
	r, err := ReadFile(s.Path)
	if err != nil {
		return "", err
	}
	rec, ok := r.Lookup(sessionID)
	if !ok || rec.LiveViewURL == "" {
		return "", fmt.Errorf("%w: %s", session.ErrNotFound, sessionID)
	}
	return rec.LiveViewURL, nil
}

// Put upserts rec into the registry file.
func (s *Store) Put(rec core.Session) error {
	r, err := ReadFile(s.Path)
	if err != nil {
		return err
	}
	r.Upsert(rec)
	return r.WriteFile(s.Path)
}
