// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"
)

// Keys of the three persisted records. The names match the ones the
// browser dashboard used in localStorage.
const (
	KeySession = "wasteManager_user"
	KeyUsers   = "wasteManager_users"
	KeyLogs    = "wasteManager_logs"
)

// ErrNotFound is returned by Store.Get when a key has never been written
// or was deleted.
var ErrNotFound = errors.New("record not found")

// Record is one key and its encoded value.
type Record struct {
	Key   string
	Value []byte
}

// Store defines the interface for the string-keyed record store.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL,
// Redis, memory) without changing the credential or waste log logic.
type Store interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put writes all records atomically: either every record is stored
	// or none is.
	Put(ctx context.Context, records ...Record) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the store.
	Close() error
}

// Pinger is implemented by stores that can check their backend is
// reachable. The health endpoint uses it when available.
type Pinger interface {
	Ping(ctx context.Context) error
}
