package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/ipa-agro/agromanager/internal/config"
)

// Client is the single configured transport to the backend's API root. Every
// call is one network round trip: no retries, no caching, no deduplication.
type Client struct {
	httpClient *resty.Client
}

// New builds an API client from the provided configuration values.
func New(cfg config.APIConfig) *Client {
	restyClient := resty.New()
	restyClient.
		SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetTimeout(cfg.Timeout)

	return &Client{httpClient: restyClient}
}

// SetToken arms the Authorization header for all subsequent requests.
func (c *Client) SetToken(token string) {
	if token == "" {
		return
	}
	c.httpClient.SetHeader("Authorization", fmt.Sprintf("Bearer %s", token))
}

// Get issues a GET for the relative path and decodes the body into result.
func (c *Client) Get(ctx context.Context, path string, result any) error {
	return c.do(ctx, http.MethodGet, path, nil, result)
}

// Post issues a POST with the given body and decodes the response into result.
func (c *Client) Post(ctx context.Context, path string, body, result any) error {
	return c.do(ctx, http.MethodPost, path, body, result)
}

// Put issues a PUT with the given body and decodes the response into result.
func (c *Client) Put(ctx context.Context, path string, body, result any) error {
	return c.do(ctx, http.MethodPut, path, body, result)
}

// Delete issues a DELETE for the relative path.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, result any) error {
	apiErr := new(errorPayload)

	req := c.httpClient.R().
		SetContext(ctx).
		SetError(apiErr)
	if body != nil {
		req.SetBody(body)
	}
	if result != nil {
		req.SetResult(result)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return &TransportError{Op: fmt.Sprintf("%s %s", method, path), Err: err}
	}

	if resp.StatusCode() >= http.StatusMultipleChoices {
		return &HTTPError{StatusCode: resp.StatusCode(), Message: apiErr.text()}
	}

	return nil
}

// PostAnyStatus issues a POST and decodes the body into result for any status
// below 500, returning the status code. Statuses of 500 and above, and
// requests that never complete, are transport-level failures. The login call
// needs this shape: the backend answers 401 with a regular decodable payload.
func (c *Client) PostAnyStatus(ctx context.Context, path string, body, result any) (int, error) {
	req := c.httpClient.R().
		SetContext(ctx).
		SetBody(body)

	resp, err := req.Execute(http.MethodPost, path)
	if err != nil {
		return 0, &TransportError{Op: fmt.Sprintf("POST %s", path), Err: err}
	}

	status := resp.StatusCode()
	if status >= http.StatusInternalServerError {
		return status, &TransportError{
			Op:  fmt.Sprintf("POST %s", path),
			Err: fmt.Errorf("server error status %d", status),
		}
	}

	if result != nil && len(resp.Body()) > 0 {
		if err := json.Unmarshal(resp.Body(), result); err != nil {
			return status, fmt.Errorf("decode response for POST %s: %w", path, err)
		}
	}

	return status, nil
}
