// Package store persists build records as JSON files.
package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/emforge/internal/core/domain"
	"go.trai.ch/emforge/internal/core/ports"
	"go.trai.ch/zerr"
)

// Store implements ports.BuildRecordStore with one JSON file per output
// directory.
type Store struct{}

// NewStore creates a new build record store.
func NewStore() *Store {
	return &Store{}
}

// Get returns the record stored at path, or nil when none exists.
func (s *Store) Get(path string) (*domain.BuildRecord, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path derives from the configured output dir
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(errors.Join(domain.ErrRecordReadFailed, err), "path", path)
	}

	var rec domain.BuildRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, zerr.With(errors.Join(domain.ErrRecordDecodeFailed, err), "path", path)
	}
	return &rec, nil
}

// Put writes the record to path, creating parent directories as needed.
func (s *Store) Put(path string, rec domain.BuildRecord) error {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return errors.Join(domain.ErrRecordWriteFailed, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(errors.Join(domain.ErrRecordWriteFailed, err), "path", path)
	}

	if err := os.WriteFile(path, data, domain.FilePerm); err != nil { //nolint:gosec // see Get
		return zerr.With(errors.Join(domain.ErrRecordWriteFailed, err), "path", path)
	}
	return nil
}

var _ ports.BuildRecordStore = (*Store)(nil)
