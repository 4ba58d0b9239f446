package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ipa-agro/agromanager/internal/domain/models"
	"github.com/ipa-agro/agromanager/internal/repository"
)

func TestSeedProductionCRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewSeedProductionRepository()

	created, err := repo.Create(ctx, models.SeedProduction{SeedType: "Corn", Quantity: 100, Price: 2.50, ExpiryDate: "2025-12-31"})
	require.NoError(t, err)
	require.NotNil(t, created.ID)
	assert.Equal(t, 1, *created.ID)

	second, err := repo.Create(ctx, models.SeedProduction{SeedType: "Wheat", Quantity: 5, Price: 1.10, ExpiryDate: "2026-03-01"})
	require.NoError(t, err)
	assert.Equal(t, 2, *second.ID, "ids are assigned in sequence")

	records, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Corn", records[0].SeedType, "listed in id order")

	got, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Corn", got.SeedType)

	got.Quantity = 150
	updated, err := repo.Update(ctx, 1, got)
	require.NoError(t, err)
	assert.Equal(t, 150, updated.Quantity)

	require.NoError(t, repo.Delete(ctx, 1))
	_, err = repo.Get(ctx, 1)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, 1), repository.ErrNotFound, "second delete is not silent")

	_, err = repo.Update(ctx, 99, got)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestFarmerCRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewFarmerRepository()

	maria := models.Farmer{TaxID: "12345678900", Name: "Maria Silva", Email: "maria@example.com"}
	_, err := repo.Create(ctx, maria)
	require.NoError(t, err)

	_, err = repo.Create(ctx, maria)
	assert.ErrorIs(t, err, repository.ErrDuplicate)

	_, err = repo.Create(ctx, models.Farmer{TaxID: "00011122233", Name: "João Souza"})
	require.NoError(t, err)

	records, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "00011122233", records[0].TaxID, "listed in tax-id order")

	maria.Phone = "+55 81 99999-0000"
	updated, err := repo.Update(ctx, "12345678900", maria)
	require.NoError(t, err)
	assert.Equal(t, "+55 81 99999-0000", updated.Phone)

	require.NoError(t, repo.Delete(ctx, "12345678900"))
	_, err = repo.Get(ctx, "12345678900")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
