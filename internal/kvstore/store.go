// Package kvstore provides the key-value storage backends for the service.
//
// The store exposes atomic get/put/delete/list primitives and nothing more:
// there are no multi-key transactions, so collection-valued keys (such as the
// memory collection) are read-modify-write at the caller and carry a
// last-write-wins race window.
package kvstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned by Get when the key does not exist.
var ErrNotFound = errors.New("kvstore: key not found")

// Store is the opaque key-value service the handlers persist into.
type Store interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put stores value under key, overwriting any previous value.
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// List returns all keys that start with prefix, in store enumeration
	// order (no ordering guarantee).
	List(ctx context.Context, prefix string) ([]string, error)

	// Ping checks that the backend is reachable.
	Ping(ctx context.Context) error

	// Close releases the backend connection.
	Close() error
}

// Open creates a store from a URL-ish string:
//
//	redis://host:port/db  Redis backend
//	memory:               in-process cache backend (non-persistent)
//	anything else         SQLite database file path
func Open(ctx context.Context, storeURL string) (Store, error) {
	switch {
	case strings.HasPrefix(storeURL, "redis://") || strings.HasPrefix(storeURL, "rediss://"):
		return NewRedis(ctx, storeURL)
	case storeURL == "memory:" || storeURL == "memory":
		return NewMemory(), nil
	case storeURL == "":
		return nil, fmt.Errorf("store URL is empty")
	default:
		return NewSQLite(storeURL)
	}
}
