package storage

import "errors"

// ErrNotFound is returned by Get when no value exists for a key.
var ErrNotFound = errors.New("key not found")

// Provider is the persistence collaborator: a flat, string-keyed blob store.
// All journal state (questions, per-day answers, settings, reminder time)
// lives behind this interface; the journal core never touches files or SQL
// directly. Implementations are synchronous and single-writer: the
// application is the only process touching the store, and last write wins.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Get returns the stored value for key, or ErrNotFound.
	Get(key string) ([]byte, error)
	// Set stores value under key, overwriting any prior value.
	Set(key string, value []byte) error
	// Remove deletes the value for key. Removing an absent key is not an error.
	Remove(key string) error
	// Keys returns all stored keys with the given prefix, sorted. An empty
	// prefix returns every key.
	Keys(prefix string) ([]string, error)

	// Utils
	GetConfigPath() string
}
