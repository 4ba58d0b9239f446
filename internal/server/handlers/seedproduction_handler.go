package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ipa-agro/agromanager/internal/domain/models"
	"github.com/ipa-agro/agromanager/internal/repository"
)

// SeedProductionHandler serves the seed-production CRUD endpoints.
type SeedProductionHandler struct {
	repo   repository.SeedProductions
	logger *zap.Logger
}

// NewSeedProductionHandler constructs the HTTP handler adapter.
func NewSeedProductionHandler(repo repository.SeedProductions, logger *zap.Logger) *SeedProductionHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SeedProductionHandler{repo: repo, logger: logger}
}

// List returns the full collection.
func (h *SeedProductionHandler) List(c *gin.Context) {
	records, err := h.repo.List(c.Request.Context())
	if err != nil {
		h.logger.Error("failed listing seed productions", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to list records"})
		return
	}
	c.JSON(http.StatusOK, records)
}

// Get returns one record by id.
func (h *SeedProductionHandler) Get(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	record, err := h.repo.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// Create stores a new record and returns it with the assigned id.
func (h *SeedProductionHandler) Create(c *gin.Context) {
	var record models.SeedProduction
	if err := c.ShouldBindJSON(&record); err != nil {
		h.logger.Warn("invalid seed production payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	if record.ID != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "a new record must not carry an id"})
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

// Update replaces the record under the path id with the submitted record.
func (h *SeedProductionHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var record models.SeedProduction
	if err := c.ShouldBindJSON(&record); err != nil {
		h.logger.Warn("invalid seed production payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	if violations := models.ValidateDraft(record); len(violations) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": models.ViolationSummary(violations)})
		return
	}

	updated, err := h.repo.Update(c.Request.Context(), id, record)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete removes the record under the path id.
func (h *SeedProductionHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *SeedProductionHandler) parseID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "id must be an integer"})
		return 0, false
	}
	return id, true
}

func (h *SeedProductionHandler) respondError(c *gin.Context, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "record not found"})
		return
	}
	h.logger.Error("seed production operation failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
}
