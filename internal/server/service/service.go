package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"pokedle/internal/server/catalog"
	"pokedle/internal/server/game"
	"pokedle/internal/server/storage"
)

// ErrNoMatchingPartition indicates a partition key that maps to no known
// sub-pool. Deterministic selection means retrying with unchanged inputs
// cannot succeed.
var ErrNoMatchingPartition = errors.New("no matching partition")

// ErrStorageDisabled indicates an operation that requires persistence was
// called while the server runs without a storage path
var ErrStorageDisabled = errors.New("storage disabled")

// Service coordinates the catalog, the selection/comparison engine, and
// storage
type Service struct {
	catalog  catalog.Reader
	store    *storage.Store // nil disables persistence
	scoring  *game.ModifierRegistry
	volatile bool
}

// New creates a new service instance with optional storage. Volatile mode
// seeds selection from the current instant and skips puzzle persistence; it
// exists for load and integration testing only.
func New(reader catalog.Reader, store *storage.Store, scoring *game.ModifierRegistry, volatile bool) *Service {
	if scoring == nil {
		scoring = game.NewModifierRegistry()
	}
	return &Service{
		catalog:  reader,
		store:    store,
		scoring:  scoring,
		volatile: volatile,
	}
}

// GetStorageHealth returns the storage component status
func (s *Service) GetStorageHealth() string {
	if s.store == nil {
		return "disabled"
	}
	if s.store.IsHealthy() {
		return "ok"
	}
	return "degraded"
}

// roster resolves a partition key to its candidate pool. An empty key is the
// full default-form roster; "gen<N>" restricts to one generation.
func (s *Service) roster(partition string) ([]catalog.Entity, error) {
	var filter catalog.Filter

	if partition != "" {
		numeric, ok := strings.CutPrefix(partition, "gen")
		if !ok {
			return nil, fmt.Errorf("partition %q: %w", partition, ErrNoMatchingPartition)
		}
		gen, err := strconv.Atoi(numeric)
		if err != nil || gen < 1 {
			return nil, fmt.Errorf("partition %q: %w", partition, ErrNoMatchingPartition)
		}
		filter.Generation = gen
	}

	roster, err := s.catalog.Roster(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch roster: %w", err)
	}
	return roster, nil
}

// Shutdown gracefully shuts down the service
func (s *Service) Shutdown() error {
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			return fmt.Errorf("storage: %w", err)
		}
	}
	return nil
}
