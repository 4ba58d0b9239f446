// Package repository defines the storage contracts behind the development
// API server.
package repository

import (
	"context"
	"errors"

	"github.com/ipa-agro/agromanager/internal/domain/models"
)

// ErrNotFound indicates no record exists under the requested key.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate indicates a create collided with an existing key.
var ErrDuplicate = errors.New("record already exists")

// SeedProductions stores seed-production records keyed by a numeric
// surrogate id assigned on create.
type SeedProductions interface {
	List(ctx context.Context) ([]models.SeedProduction, error)
	Get(ctx context.Context, id int) (models.SeedProduction, error)
	Create(ctx context.Context, record models.SeedProduction) (models.SeedProduction, error)
	Update(ctx context.Context, id int, record models.SeedProduction) (models.SeedProduction, error)
	Delete(ctx context.Context, id int) error
}

// Farmers stores farmer records keyed by their tax identifier.
type Farmers interface {
	List(ctx context.Context) ([]models.Farmer, error)
	Get(ctx context.Context, taxID string) (models.Farmer, error)
	Create(ctx context.Context, record models.Farmer) (models.Farmer, error)
	Update(ctx context.Context, taxID string, record models.Farmer) (models.Farmer, error)
	Delete(ctx context.Context, taxID string) error
}
