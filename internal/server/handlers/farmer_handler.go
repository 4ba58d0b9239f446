package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ipa-agro/agromanager/internal/domain/models"
	"github.com/ipa-agro/agromanager/internal/repository"
)

// FarmerHandler serves the farmer CRUD endpoints, keyed by tax identifier.
type FarmerHandler struct {
	repo   repository.Farmers
	logger *zap.Logger
}

// NewFarmerHandler constructs the HTTP handler adapter.
func NewFarmerHandler(repo repository.Farmers, logger *zap.Logger) *FarmerHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FarmerHandler{repo: repo, logger: logger}
}

// List returns the full collection.
func (h *FarmerHandler) List(c *gin.Context) {
	records, err := h.repo.List(c.Request.Context())
	if err != nil {
		h.logger.Error("failed listing farmers", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to list records"})
		return
	}
	c.JSON(http.StatusOK, records)
}

// Get returns one farmer by tax identifier.
func (h *FarmerHandler) Get(c *gin.Context) {
	record, err := h.repo.Get(c.Request.Context(), c.Param("taxId"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// Create stores a new farmer.
func (h *FarmerHandler) Create(c *gin.Context) {
	var record models.Farmer
	if err := c.ShouldBindJSON(&record); err != nil {
		h.logger.Warn("invalid farmer payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	if violations := models.ValidateDraft(record); len(violations) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": models.ViolationSummary(violations)})
		return
	}

	created, err := h.repo.Create(c.Request.Context(), record)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Update replaces the farmer under the path tax identifier.
func (h *FarmerHandler) Update(c *gin.Context) {
	var record models.Farmer
	if err := c.ShouldBindJSON(&record); err != nil {
		h.logger.Warn("invalid farmer payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	record.TaxID = c.Param("taxId")
	if violations := models.ValidateDraft(record); len(violations) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": models.ViolationSummary(violations)})
		return
	}

	updated, err := h.repo.Update(c.Request.Context(), record.TaxID, record)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete removes the farmer under the path tax identifier.
func (h *FarmerHandler) Delete(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("taxId")); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *FarmerHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "record not found"})
	case errors.Is(err, repository.ErrDuplicate):
		c.JSON(http.StatusBadRequest, gin.H{"message": "a farmer with this tax identifier already exists"})
	default:
		h.logger.Error("farmer operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
	}
}
