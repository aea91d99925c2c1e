package ports

import "go.trai.ch/emforge/internal/core/domain"

// BuildRecordStore persists the summary of the last successful build of an
// output directory.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type BuildRecordStore interface {
	// Get returns the record stored at path, or nil if none exists.
	Get(path string) (*domain.BuildRecord, error)

	// Put writes the record to path, creating parent directories as needed.
	Put(path string, rec domain.BuildRecord) error
}
