// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/endotarter/internal/core/domain"

// CacheStore defines the interface for persisting the cache record.
//
//go:generate mockgen -source=cache_store.go -destination=mocks/mock_cache_store.go -package=mocks
type CacheStore interface {
	// Load reads the record stored at path.
	// Returns nil, nil if no record exists.
	// Returns domain.ErrCorruptCache if the record exists but cannot be parsed,
	// and domain.ErrCacheIO on any other I/O failure.
	Load(path string) (*domain.CacheRecord, error)

	// Save replaces the record stored at path as one atomic unit.
	Save(path string, record domain.CacheRecord) error
}
