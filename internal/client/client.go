// Package client implements the HTTP transport for the Cycleops
// stack-manager API: request construction, api-key authentication and the
// mapping of non-2xx responses onto typed errors.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"cycleops/internal/config"
	"cycleops/internal/domain"
)

// Client talks to the Cycleops API. One request is in flight at a time; the
// zero value is not usable, construct with New.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *zap.Logger
}

// New builds a client from the resolved configuration.
func New(cfg *config.Config, logger *zap.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: time.Duration(cfg.API.Timeout) * time.Second},
		baseURL:    strings.TrimSuffix(cfg.API.BaseURL, "/"),
		apiKey:     cfg.API.Key,
		logger:     logger,
	}
}

// Request performs a single JSON request against the API. A non-nil payload
// is sent as the JSON body; params become the query string. When out is
// non-nil the response body is decoded into it. A 204 response leaves out
// untouched.
func (c *Client) Request(ctx context.Context, method, endpoint string, payload any, params url.Values, out any) error {
	if c.apiKey == "" {
		return &domain.AuthError{Message: "no API key configured: set CYCLEOPS_API_KEY or pass --api-key"}
	}

	reqURL := fmt.Sprintf("%s/%s", c.baseURL, strings.TrimPrefix(endpoint, "/"))
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	var body io.Reader
	if payload != nil {
		buf := &bytes.Buffer{}
		if err := json.NewEncoder(buf).Encode(payload); err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		body = buf
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "api-key "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug("API request", zap.String("method", method), zap.String("url", reqURL))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	return c.handleResponse(resp, out)
}

func (c *Client) handleResponse(resp *http.Response, out any) error {
	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return &domain.AuthError{Message: extractErrorMessage(resp)}
	case resp.StatusCode == http.StatusNoContent:
		return nil
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return &domain.APIError{StatusCode: resp.StatusCode, Message: extractErrorMessage(resp)}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &domain.APIError{StatusCode: resp.StatusCode, Message: fmt.Sprintf("invalid JSON response: %v", err)}
	}
	return nil
}

// extractErrorMessage pulls a human-readable message out of an error
// response. JSON bodies are probed for the keys the API is known to use.
func extractErrorMessage(resp *http.Response) string {
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return ""
	}

	contentType := resp.Header.Get("Content-Type")

	if strings.Contains(contentType, "application/json") {
		var data map[string]any
		if err := json.Unmarshal(body, &data); err == nil {
			for _, key := range []string{"message", "msg", "detail"} {
				if msg, ok := data[key].(string); ok {
					return msg
				}
			}
		}
		return ""
	}

	if strings.Contains(contentType, "text/plain") {
		return strings.TrimSpace(string(body))
	}

	return ""
}
