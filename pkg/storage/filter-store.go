package storage

import (
	"os"
	"sync"

	"github.com/matst80/slask-catalog/pkg/types"
)

const filtersFile = "current_filters.json"

// FilterStore holds the single active filter selection. Load returns
// (nil, nil) when nothing is stored; Clear on an empty store is a
// no-op.
type FilterStore interface {
	Load() (*types.StoredFilters, error)
	Save(filters *types.StoredFilters) error
	Clear() error
}

// DiskFilterStore keeps the selection as one JSON document next to the
// catalog data, overwritten wholesale on every save.
type DiskFilterStore struct {
	storage *DiskStorage
}

func NewDiskFilterStore(storage *DiskStorage) *DiskFilterStore {
	return &DiskFilterStore{storage: storage}
}

func (s *DiskFilterStore) Load() (*types.StoredFilters, error) {
	filters := &types.StoredFilters{}
	if err := s.storage.LoadJson(filters, filtersFile); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return filters, nil
}

func (s *DiskFilterStore) Save(filters *types.StoredFilters) error {
	return s.storage.SaveJson(filters, filtersFile)
}

func (s *DiskFilterStore) Clear() error {
	fileName, _ := s.storage.GetFileName(filtersFile)
	if err := os.Remove(fileName); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// MemoryFilterStore is used in tests and for ephemeral runs.
type MemoryFilterStore struct {
	mu      sync.RWMutex
	filters *types.StoredFilters
}

func NewMemoryFilterStore() *MemoryFilterStore {
	return &MemoryFilterStore{}
}

func (s *MemoryFilterStore) Load() (*types.StoredFilters, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.filters == nil {
		return nil, nil
	}
	clone := *s.filters
	return &clone, nil
}

func (s *MemoryFilterStore) Save(filters *types.StoredFilters) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = filters
	return nil
}

func (s *MemoryFilterStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = nil
	return nil
}
