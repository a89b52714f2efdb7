package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"memomate/internal/kvstore"
	"memomate/internal/logging"
	"memomate/internal/models"
)

// memoriesKey is the single store key holding the whole collection.
const memoriesKey = "memories"

// MemoryService implements list/add/delete over the memory collection.
//
// The collection lives under one key as a JSON array, so Add and Delete are
// read-modify-write over the entire collection. Two concurrent writes can
// interleave and the later Put silently wins (lost update). That matches the
// single-key-collection design; callers wanting stronger guarantees should
// move to per-record keys the way the transcript store does.
type MemoryService struct {
	store    kvstore.Store
	defaults models.MemoryDefaults
}

// NewMemoryService creates a new memory service
func NewMemoryService(store kvstore.Store) *MemoryService {
	return &MemoryService{
		store:    store,
		defaults: models.StandardDefaults(),
	}
}

// List returns the stored collection, newest first.
// A missing key is the valid empty state, not an error.
func (s *MemoryService) List(ctx context.Context) ([]models.Memory, error) {
	return s.load(ctx)
}

// Add constructs a record from the request fields, prepends it to the
// collection and persists the whole collection back.
func (s *MemoryService) Add(ctx context.Context, text string, tags []string, priority string) (*models.Memory, error) {
	memories, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	memory := models.NewMemory(time.Now(), text, tags, priority, s.defaults)

	// Prepend: the collection is newest-first
	memories = append([]models.Memory{memory}, memories...)

	if err := s.save(ctx, memories); err != nil {
		return nil, err
	}

	recordMemoryCreated()
	return &memory, nil
}

// Delete removes the record whose id matches exactly. Deleting an id that
// does not exist is a no-op success.
func (s *MemoryService) Delete(ctx context.Context, id string) error {
	memories, err := s.load(ctx)
	if err != nil {
		return err
	}

	filtered := memories[:0]
	for _, m := range memories {
		if m.ID != id {
			filtered = append(filtered, m)
		}
	}

	if err := s.save(ctx, filtered); err != nil {
		return err
	}

	recordMemoryDeleted()
	return nil
}

func (s *MemoryService) load(ctx context.Context) ([]models.Memory, error) {
	data, err := s.store.Get(ctx, memoriesKey)
	if errors.Is(err, kvstore.ErrNotFound) {
		return []models.Memory{}, nil
	}
	if err != nil {
		logging.WithStore("kvstore", memoriesKey).Error("memory collection read failed", "error", err)
		recordStoreError("get")
		return nil, fmt.Errorf("failed to read memory collection: %w", err)
	}

	var memories []models.Memory
	if err := json.Unmarshal(data, &memories); err != nil {
		return nil, fmt.Errorf("failed to parse memory collection: %w", err)
	}
	if memories == nil {
		memories = []models.Memory{}
	}
	return memories, nil
}

func (s *MemoryService) save(ctx context.Context, memories []models.Memory) error {
	data, err := json.Marshal(memories)
	if err != nil {
		return fmt.Errorf("failed to encode memory collection: %w", err)
	}
	if err := s.store.Put(ctx, memoriesKey, data); err != nil {
		logging.WithStore("kvstore", memoriesKey).Error("memory collection write failed", "error", err)
		recordStoreError("put")
		return fmt.Errorf("failed to write memory collection: %w", err)
	}
	return nil
}
