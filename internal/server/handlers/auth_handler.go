package handlers

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ipa-agro/agromanager/internal/config"
	"github.com/ipa-agro/agromanager/internal/domain/models"
)

// AuthHandler serves the login endpoint. Tokens are opaque and unchecked by
// the development server; the client only needs the issue/capture flow.
type AuthHandler struct {
	cfg    config.AuthConfig
	logger *zap.Logger
}

// NewAuthHandler constructs the HTTP handler adapter.
func NewAuthHandler(cfg config.AuthConfig, logger *zap.Logger) *AuthHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthHandler{cfg: cfg, logger: logger}
}

// Login checks the submitted credentials against the configured admin
// account and issues an opaque token on success.
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid login payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, models.LoginResponse{
			Success: false,
			Message: "identifier and password are required",
		})
		return
	}

	if !h.credentialsMatch(req) {
		h.logger.Info("login rejected", zap.String("identifier", req.Identifier))
		c.JSON(http.StatusUnauthorized, models.LoginResponse{
			Success: false,
			Message: "invalid identifier or password",
		})
		return
	}

	token := uuid.NewString()
	h.logger.Info("login accepted", zap.String("identifier", req.Identifier))
	c.JSON(http.StatusOK, models.LoginResponse{Success: true, Token: token})
}

func (h *AuthHandler) credentialsMatch(req models.LoginRequest) bool {
	if h.cfg.AdminPassword == "" {
		return false
	}
	idOK := subtle.ConstantTimeCompare([]byte(req.Identifier), []byte(h.cfg.AdminIdentifier)) == 1
	pwOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.cfg.AdminPassword)) == 1
	return idOK && pwOK
}
