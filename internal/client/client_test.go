package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"go.uber.org/zap"

	"cycleops/internal/config"
	"cycleops/internal/domain"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := config.DefaultConfig()
	cfg.API.BaseURL = srv.URL
	cfg.API.Key = "secret-key"
	return New(cfg, zap.NewNop())
}

func TestRequestSendsAPIKeyHeader(t *testing.T) {
	var gotAuth, gotAccept string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	})

	var out map[string]any
	if err := c.Request(context.Background(), http.MethodGet, "hosts", nil, nil, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "api-key secret-key" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "api-key secret-key")
	}
	if gotAccept != "application/json" {
		t.Errorf("Accept = %q, want application/json", gotAccept)
	}
}

func TestRequestWithoutKeyFailsBeforeNetwork(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))
	defer srv.Close()

	cfg := config.DefaultConfig()
	cfg.API.BaseURL = srv.URL
	c := New(cfg, zap.NewNop())

	err := c.Request(context.Background(), http.MethodGet, "hosts", nil, nil, nil)

	var aerr *domain.AuthError
	if !errors.As(err, &aerr) {
		t.Fatalf("expected AuthError, got %v", err)
	}
	if !strings.Contains(aerr.Message, "CYCLEOPS_API_KEY") {
		t.Errorf("message %q should mention CYCLEOPS_API_KEY", aerr.Message)
	}
	if hits != 0 {
		t.Errorf("server hit %d times, want 0", hits)
	}
}

func TestRequestUnauthorizedBecomesAuthError(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail": "invalid api key"}`))
	})

	err := c.Request(context.Background(), http.MethodGet, "hosts", nil, nil, nil)

	var aerr *domain.AuthError
	if !errors.As(err, &aerr) {
		t.Fatalf("expected AuthError, got %v", err)
	}
	if aerr.Message != "invalid api key" {
		t.Errorf("message = %q, want %q", aerr.Message, "invalid api key")
	}
}

func TestRequestNoContent(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	out := map[string]any{"untouched": true}
	if err := c.Request(context.Background(), http.MethodDelete, "hosts/1", nil, nil, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := out["untouched"]; !ok {
		t.Error("out should be left untouched on 204")
	}
}

func TestRequestQueryParams(t *testing.T) {
	var query url.Values
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	})

	var out []any
	params := url.Values{"name": {"web-1"}}
	if err := c.Request(context.Background(), http.MethodGet, "hosts", nil, params, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := query.Get("name"); got != "web-1" {
		t.Errorf("query name = %q, want web-1", got)
	}
}

func TestErrorMessageExtraction(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		contentType string
		body        string
		want        string
	}{
		{"json message key", 400, "application/json", `{"message": "name taken"}`, "name taken"},
		{"json msg key", 400, "application/json", `{"msg": "bad slug"}`, "bad slug"},
		{"json detail key", 400, "application/json", `{"detail": "missing field"}`, "missing field"},
		{"plain text", 400, "text/plain", "something broke\n", "something broke"},
		{"json without known keys falls back", 400, "application/json", `{"other": "x"}`, "Please check your inputs and try again"},
		{"server error fallback", 503, "text/html", "<html>oops</html>", "Service unavailable, please try again later"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", tc.contentType)
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			})

			err := c.Request(context.Background(), http.MethodPost, "hosts", map[string]any{}, nil, nil)

			var apiErr *domain.APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("expected APIError, got %v", err)
			}
			if apiErr.StatusCode != tc.status {
				t.Errorf("status = %d, want %d", apiErr.StatusCode, tc.status)
			}
			if !strings.Contains(apiErr.Error(), tc.want) {
				t.Errorf("error %q should contain %q", apiErr.Error(), tc.want)
			}
		})
	}
}

func TestRequestDecodesResponse(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id": 1, "name": "web-1"}, {"id": 2, "name": "web-2"}]`))
	})

	var hosts []domain.Host
	if err := c.Request(context.Background(), http.MethodGet, "hosts", nil, nil, &hosts); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(hosts) != 2 || hosts[0].Name != "web-1" || hosts[1].ID != 2 {
		t.Errorf("unexpected decode result: %+v", hosts)
	}
}

func TestRequestMalformedJSONResponse(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{not json`))
	})

	var out map[string]any
	err := c.Request(context.Background(), http.MethodGet, "hosts", nil, nil, &out)

	var apiErr *domain.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
}

func TestBaseURLTrailingSlashNormalized(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	cfg := config.DefaultConfig()
	cfg.API.BaseURL = srv.URL + "/"
	cfg.API.Key = "secret-key"
	c := New(cfg, zap.NewNop())

	var out []any
	if err := c.Request(context.Background(), http.MethodGet, "/hosts", nil, nil, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/hosts" {
		t.Errorf("path = %q, want /hosts", gotPath)
	}
}
