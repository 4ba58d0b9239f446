package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ipa-agro/agromanager/internal/config"
	"github.com/ipa-agro/agromanager/internal/domain/models"
	"github.com/ipa-agro/agromanager/pkg/clients/api"
)

func newBackend(t *testing.T, handler http.HandlerFunc) *api.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return api.New(config.APIConfig{BaseURL: srv.URL, Timeout: 2 * time.Second})
}

func TestListReturnsRecordsInServerOrder(t *testing.T) {
	client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/producao-sementes", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":2,"seedType":"Wheat","quantity":5,"price":1.10,"expiryDate":"2026-03-01"},
			{"id":1,"seedType":"Corn","quantity":100,"price":2.50,"expiryDate":"2025-12-31"}
		]`))
	})

	records, err := NewSeedProductions(client, nil).List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Wheat", records[0].SeedType, "order is server-defined")
	assert.Equal(t, "Corn", records[1].SeedType)
}

func TestGetMapsNotFound(t *testing.T) {
	client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/producao-sementes/9", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "record not found"})
	})

	_, err := NewSeedProductions(client, nil).Get(context.Background(), 9)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreatePostsDraftAndReturnsAssignedID(t *testing.T) {
	client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		_, hasID := body["id"]
		assert.False(t, hasID, "a create draft never carries an id")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		body["id"] = 7
		_ = json.NewEncoder(w).Encode(body)
	})

	created, err := NewSeedProductions(client, nil).Create(context.Background(), models.SeedProduction{
		SeedType:   "Corn",
		Quantity:   100,
		Price:      2.50,
		ExpiryDate: "2025-12-31",
	})
	require.NoError(t, err)
	require.NotNil(t, created.ID)
	assert.Equal(t, 7, *created.ID)
}

func TestUpdatePutsFullRecord(t *testing.T) {
	client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/producao-sementes/7", r.URL.Path)
		var record models.SeedProduction
		require.NoError(t, json.NewDecoder(r.Body).Decode(&record))
		assert.Equal(t, 150, record.Quantity)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(record)
	})

	id := 7
	updated, err := NewSeedProductions(client, nil).Update(context.Background(), 7, models.SeedProduction{
		ID:         &id,
		SeedType:   "Corn",
		Quantity:   150,
		Price:      2.50,
		ExpiryDate: "2025-12-31",
	})
	require.NoError(t, err)
	assert.Equal(t, 150, updated.Quantity)
}

func TestUpdateMapsValidationRejection(t *testing.T) {
	client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "SeedType is required"})
	})

	_, err := NewSeedProductions(client, nil).Update(context.Background(), 7, models.SeedProduction{})
	require.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "SeedType is required")
}

func TestDeleteMapsNotFound(t *testing.T) {
	deleted := false
	client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		if deleted {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "record not found"})
			return
		}
		deleted = true
		w.WriteHeader(http.StatusNoContent)
	})

	svc := NewSeedProductions(client, nil)
	require.NoError(t, svc.Delete(context.Background(), 7))
	assert.ErrorIs(t, svc.Delete(context.Background(), 7), ErrNotFound)
}

func TestFarmersAreKeyedByTaxIdentifier(t *testing.T) {
	client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/agricultores/12345678900", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.Farmer{TaxID: "12345678900", Name: "Maria Silva"})
	})

	farmer, err := NewFarmers(client, nil).Get(context.Background(), "12345678900")
	require.NoError(t, err)
	assert.Equal(t, "Maria Silva", farmer.Name)
}

func TestTransportFailurePropagatesUnchanged(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()
	client := api.New(config.APIConfig{BaseURL: srv.URL, Timeout: time.Second})

	_, err := NewSeedProductions(client, nil).List(context.Background())
	require.Error(t, err)

	var transportErr *api.TransportError
	assert.ErrorAs(t, err, &transportErr)
}
