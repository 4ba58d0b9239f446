package api

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
)

func newTestClient(baseURL string) *Client {
	return New(config.APIConfig{BaseURL: baseURL, Timeout: 2 * time.Second})
}

func TestGetDecodesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/things", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]map[string]any{{"id": 1}})
	}))
	defer srv.Close()

	var out []map[string]any
	err := newTestClient(srv.URL).Get(context.Background(), "/things", &out)
	require.NoError(t, err)
	require.Len(t, out, 1)
}

func TestPostSendsJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Corn", body["seedType"])
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{"id": 7, "seedType": "Corn"})
	}))
	defer srv.Close()

	var out map[string]any
	err := newTestClient(srv.URL).Post(context.Background(), "/things", map[string]string{"seedType": "Corn"}, &out)
	require.NoError(t, err)
	assert.EqualValues(t, 7, out["id"])
}

func TestNonSuccessStatusYieldsHTTPErrorWithPayloadMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "record not found"})
	}))
	defer srv.Close()

	err := newTestClient(srv.URL).Get(context.Background(), "/things/9", nil)
	require.Error(t, err)

	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.StatusCode)
	assert.Equal(t, "record not found", httpErr.Message)
}

func TestUnreachableServerYieldsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing is listening anymore

	err := newTestClient(srv.URL).Get(context.Background(), "/things", nil)
	require.Error(t, err)

	var transportErr *TransportError
	assert.ErrorAs(t, err, &transportErr)
}

func TestDeleteTreatsNoContentAsSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	require.NoError(t, newTestClient(srv.URL).Delete(context.Background(), "/things/7"))
}

func TestSetTokenArmsAuthorizationHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	client.SetToken("secret-token")
	require.NoError(t, client.Get(context.Background(), "/things", nil))
}

func TestPostAnyStatusDecodesRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "invalid identifier or password"})
	}))
	defer srv.Close()

	var out struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	status, err := newTestClient(srv.URL).PostAnyStatus(context.Background(), "/auth/login", map[string]string{}, &out)
	require.NoError(t, err, "a 401 login rejection is a decodable response, not an error")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.False(t, out.Success)
	assert.Equal(t, "invalid identifier or password", out.Message)
}

func TestPostAnyStatusTreatsServerErrorAsTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).PostAnyStatus(context.Background(), "/auth/login", map[string]string{}, nil)
	require.Error(t, err)

	var transportErr *TransportError
	assert.ErrorAs(t, err, &transportErr)
}
