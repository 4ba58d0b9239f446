package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/ipa-agro/agromanager/internal/domain/models"
	"github.com/ipa-agro/agromanager/internal/session"
	"github.com/ipa-agro/agromanager/pkg/clients/api"
)

const loginPath = "/auth/login"

// AuthService handles the credential exchange and session-token capture.
type AuthService struct {
	client *api.Client
	store  *session.Store
	logger *zap.Logger
}

// NewAuthService wires the auth service.
func NewAuthService(client *api.Client, store *session.Store, logger *zap.Logger) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{client: client, store: store, logger: logger}
}

// Login posts the credentials and, on success, persists the returned token
// and arms the API client's bearer header. Rejected credentials come back as
// a LoginResponse with Success false, not an error: only transport failures
// and 5xx statuses error out.
func (a *AuthService) Login(ctx context.Context, identifier, password string) (models.LoginResponse, error) {
	req := models.LoginRequest{Identifier: identifier, Password: password}

	var resp models.LoginResponse
	status, err := a.client.PostAnyStatus(ctx, loginPath, req, &resp)
	if err != nil {
		return models.LoginResponse{}, err
	}

	a.logger.Debug("login attempted", zap.Int("status", status), zap.Bool("success", resp.Success))

	if resp.Success && resp.Token != "" {
		if err := a.store.Save(resp.Token); err != nil {
			a.logger.Warn("token not persisted", zap.Error(err))
		}
		a.client.SetToken(resp.Token)
	}

	return resp, nil
}

// Resume re-arms the API client from a previously persisted token. It
// returns true when a token was found.
func (a *AuthService) Resume() (bool, error) {
	token, err := a.store.Load()
	if err != nil {
		return false, err
	}
	if token == "" {
		return false, nil
	}
	a.client.SetToken(token)
	return true, nil
}

// Logout drops the persisted token.
func (a *AuthService) Logout() error {
	return a.store.Clear()
}
