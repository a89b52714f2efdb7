package kvstore

import (
	"context"
	"strings"

	"github.com/patrickmn/go-cache"
)

// MemoryStore is the in-process backend used for development and tests.
// Nothing survives a restart.
type MemoryStore struct {
	cache *cache.Cache
}

// NewMemory creates an in-process store
func NewMemory() *MemoryStore {
	return &MemoryStore{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

// Get returns the value stored under key
func (s *MemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	value, found := s.cache.Get(key)
	if !found {
		return nil, ErrNotFound
	}
	return value.([]byte), nil
}

// Put stores value under key
func (s *MemoryStore) Put(ctx context.Context, key string, value []byte) error {
	// Copy so later caller mutations don't leak into the store
	buf := make([]byte, len(value))
	copy(buf, value)
	s.cache.Set(key, buf, cache.NoExpiration)
	return nil
}

// Delete removes key; deleting a missing key succeeds
func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	s.cache.Delete(key)
	return nil
}

// List returns all keys starting with prefix (map iteration order)
func (s *MemoryStore) List(ctx context.Context, prefix string) ([]string, error) {
	var keys []string
	for key := range s.cache.Items() {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	return keys, nil
}

// Ping always succeeds for the in-process store
func (s *MemoryStore) Ping(ctx context.Context) error {
	return nil
}

// Close is a no-op
func (s *MemoryStore) Close() error {
	return nil
}
