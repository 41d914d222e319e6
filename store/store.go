// Package store persists one JSON-array collection per file. Collections are
// loaded into memory on start and rewritten wholesale after every mutation;
// there is no partial-write protection.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
)

// PersistenceError reports an unreadable, unwritable or malformed backing file.
type PersistenceError struct {
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Store binds a collection to a single JSON file.
type Store struct {
	path string
}

// New creates a Store for path and ensures its directory exists.
func New(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, &PersistenceError{Path: path, Err: err}
	}
	return &Store{path: path}, nil
}

func (s *Store) Path() string { return s.path }

// Load deserializes the backing file into v. A missing file leaves v
// untouched; the file is created on the first Flush. Any other read failure,
// or content that does not match v's shape (e.g. a non-array file for a
// slice target), is a *PersistenceError.
func (s *Store) Load(v any) error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return &PersistenceError{Path: s.path, Err: err}
	}
	if err := json.Unmarshal(data, v); err != nil {
		return &PersistenceError{Path: s.path, Err: err}
	}
	return nil
}

// Flush serializes v and rewrites the backing file. The two-space indent
// matches the format of the seed data files.
func (s *Store) Flush(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return &PersistenceError{Path: s.path, Err: err}
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return &PersistenceError{Path: s.path, Err: err}
	}
	return nil
}
