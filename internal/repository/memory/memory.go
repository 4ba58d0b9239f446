// Package memory provides mutex-guarded in-memory implementations of the
// repository contracts, the default backend for local development and tests.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/ipa-agro/agromanager/internal/domain/models"
	"github.com/ipa-agro/agromanager/internal/repository"
)

// SeedProductionRepository keeps seed-production records in a map with an
// auto-incrementing id counter.
type SeedProductionRepository struct {
	mu      sync.RWMutex
	records map[int]models.SeedProduction
	nextID  int
}

// NewSeedProductionRepository builds an empty in-memory store.
func NewSeedProductionRepository() *SeedProductionRepository {
	return &SeedProductionRepository{
		records: make(map[int]models.SeedProduction),
		nextID:  1,
	}
}

// List returns all records ordered by id.
func (r *SeedProductionRepository) List(_ context.Context) ([]models.SeedProduction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.SeedProduction, 0, len(r.records))
	for _, record := range r.records {
		out = append(out, record)
	}
	sort.Slice(out, func(i, j int) bool { return *out[i].ID < *out[j].ID })
	return out, nil
}

// Get returns the record under id.
func (r *SeedProductionRepository) Get(_ context.Context, id int) (models.SeedProduction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.records[id]
	if !ok {
		return models.SeedProduction{}, fmt.Errorf("seed production %d: %w", id, repository.ErrNotFound)
	}
	return record, nil
}

// Create assigns the next id and stores the record.
func (r *SeedProductionRepository) Create(_ context.Context, record models.SeedProduction) (models.SeedProduction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextID
	r.nextID++
	record.ID = &id
	r.records[id] = record
	return record, nil
}

// Update replaces the record under id.
func (r *SeedProductionRepository) Update(_ context.Context, id int, record models.SeedProduction) (models.SeedProduction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[id]; !ok {
		return models.SeedProduction{}, fmt.Errorf("seed production %d: %w", id, repository.ErrNotFound)
	}
	record.ID = &id
	r.records[id] = record
	return record, nil
}

// Delete removes the record under id.
func (r *SeedProductionRepository) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[id]; !ok {
		return fmt.Errorf("seed production %d: %w", id, repository.ErrNotFound)
	}
	delete(r.records, id)
	return nil
}

// FarmerRepository keeps farmer records in a map keyed by tax identifier.
type FarmerRepository struct {
	mu      sync.RWMutex
	records map[string]models.Farmer
}

// NewFarmerRepository builds an empty in-memory store.
func NewFarmerRepository() *FarmerRepository {
	return &FarmerRepository{records: make(map[string]models.Farmer)}
}

// List returns all farmers ordered by tax identifier.
func (r *FarmerRepository) List(_ context.Context) ([]models.Farmer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Farmer, 0, len(r.records))
	for _, record := range r.records {
		out = append(out, record)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TaxID < out[j].TaxID })
	return out, nil
}

// Get returns the farmer under taxID.
func (r *FarmerRepository) Get(_ context.Context, taxID string) (models.Farmer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.records[taxID]
	if !ok {
		return models.Farmer{}, fmt.Errorf("farmer %s: %w", taxID, repository.ErrNotFound)
	}
	return record, nil
}

// Create stores a new farmer; the tax identifier must be unused.
func (r *FarmerRepository) Create(_ context.Context, record models.Farmer) (models.Farmer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[record.TaxID]; ok {
		return models.Farmer{}, fmt.Errorf("farmer %s: %w", record.TaxID, repository.ErrDuplicate)
	}
	r.records[record.TaxID] = record
	return record, nil
}

// Update replaces the farmer under taxID.
func (r *FarmerRepository) Update(_ context.Context, taxID string, record models.Farmer) (models.Farmer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[taxID]; !ok {
		return models.Farmer{}, fmt.Errorf("farmer %s: %w", taxID, repository.ErrNotFound)
	}
	record.TaxID = taxID
	r.records[taxID] = record
	return record, nil
}

// Delete removes the farmer under taxID.
func (r *FarmerRepository) Delete(_ context.Context, taxID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[taxID]; !ok {
		return fmt.Errorf("farmer %s: %w", taxID, repository.ErrNotFound)
	}
	delete(r.records, taxID)
	return nil
}
