// Package service maps domain intents onto HTTP calls for one resource
// family. It performs no retry or fallback: transport and HTTP failures
// bubble up unchanged, not-found and rejected payloads are translated into
// the package's sentinel errors.
package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/ipa-agro/agromanager/pkg/clients/api"
)

// ErrNotFound indicates the backend has no record under the requested key.
var ErrNotFound = errors.New("record not found")

// ErrInvalid indicates the backend rejected the submitted record.
var ErrInvalid = errors.New("record rejected by the backend")

// Resource translates list/get/create/update/delete intents into HTTP calls
// for one entity family rooted at basePath. K is the record key type and R
// the record type.
type Resource[K comparable, R any] struct {
	client     *api.Client
	basePath   string
	keySegment func(K) string
	logger     *zap.Logger
}

// NewResource wires a resource service for one entity family. keySegment
// renders a key as its URL path segment.
func NewResource[K comparable, R any](client *api.Client, basePath string, keySegment func(K) string, logger *zap.Logger) *Resource[K, R] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resource[K, R]{
		client:     client,
		basePath:   basePath,
		keySegment: keySegment,
		logger:     logger,
	}
}

// List fetches the full collection in server-defined order.
func (r *Resource[K, R]) List(ctx context.Context) ([]R, error) {
	var records []R
	if err := r.client.Get(ctx, r.basePath, &records); err != nil {
		return nil, r.mapError("list", err)
	}
	r.logger.Debug("listed records", zap.String("path", r.basePath), zap.Int("count", len(records)))
	return records, nil
}

// Get fetches one record by key.
func (r *Resource[K, R]) Get(ctx context.Context, key K) (R, error) {
	var record R
	if err := r.client.Get(ctx, r.recordPath(key), &record); err != nil {
		return record, r.mapError("get", err)
	}
	return record, nil
}

// Create persists a draft and returns the stored record, key assigned.
func (r *Resource[K, R]) Create(ctx context.Context, draft R) (R, error) {
	var created R
	if err := r.client.Post(ctx, r.basePath, draft, &created); err != nil {
		return created, r.mapError("create", err)
	}
	return created, nil
}

// Update replaces the record under key with the given full record.
func (r *Resource[K, R]) Update(ctx context.Context, key K, record R) (R, error) {
	var updated R
	if err := r.client.Put(ctx, r.recordPath(key), record, &updated); err != nil {
		return updated, r.mapError("update", err)
	}
	return updated, nil
}

// Delete removes the record under key.
func (r *Resource[K, R]) Delete(ctx context.Context, key K) error {
	if err := r.client.Delete(ctx, r.recordPath(key)); err != nil {
		return r.mapError("delete", err)
	}
	return nil
}

func (r *Resource[K, R]) recordPath(key K) string {
	return r.basePath + "/" + r.keySegment(key)
}

func (r *Resource[K, R]) mapError(op string, err error) error {
	var httpErr *api.HTTPError
	if errors.As(err, &httpErr) {
		switch {
		case httpErr.StatusCode == http.StatusNotFound:
			return fmt.Errorf("%s %s: %w", op, r.basePath, ErrNotFound)
		case httpErr.StatusCode == http.StatusBadRequest || httpErr.StatusCode == http.StatusUnprocessableEntity:
			if httpErr.Message != "" {
				return fmt.Errorf("%s %s: %s: %w", op, r.basePath, httpErr.Message, ErrInvalid)
			}
			return fmt.Errorf("%s %s: %w", op, r.basePath, ErrInvalid)
		}
	}
	return err
}
