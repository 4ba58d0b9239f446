package service

import (
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"github.com/ipa-agro/agromanager/internal/domain/models"
	"github.com/ipa-agro/agromanager/pkg/clients/api"
)

const (
	seedProductionsPath = "/producao-sementes"
	farmersPath         = "/agricultores"
)

// NewSeedProductions builds the resource service for seed-production records,
// keyed by the backend-assigned numeric id.
func NewSeedProductions(client *api.Client, logger *zap.Logger) *Resource[int, models.SeedProduction] {
	return NewResource[int, models.SeedProduction](client, seedProductionsPath, strconv.Itoa, logger)
}

// NewFarmers builds the resource service for farmer records, keyed by the
// tax identifier string.
func NewFarmers(client *api.Client, logger *zap.Logger) *Resource[string, models.Farmer] {
	return NewResource[string, models.Farmer](client, farmersPath, url.PathEscape, logger)
}
