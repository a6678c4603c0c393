package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/funcx-faas/fx-deploy/pkg/errors"
	"github.com/funcx-faas/fx-deploy/pkg/k8s/deployer"
)

// fakeStatusProvider serves canned statuses for handler tests.
type fakeStatusProvider struct {
	statuses map[string]*deployer.Status
	err      error
}

func (f *fakeStatusProvider) Status(_ context.Context, release string) (*deployer.Status, error) {
	if f.err != nil {
		return nil, f.err
	}
	s, ok := f.statuses[release]
	if !ok {
		return nil, errors.New(errors.ErrCodeNotFound, "endpoint deployment not found")
	}
	return s, nil
}

func (f *fakeStatusProvider) StatusAll(_ context.Context) ([]*deployer.Status, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*deployer.Status, 0, len(f.statuses))
	for _, s := range f.statuses {
		out = append(out, s)
	}
	return out, nil
}

func newTestServer(t *testing.T, provider StatusProvider) *Server {
	t.Helper()
	return NewServer(NewConfig(), provider)
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(t, &fakeStatusProvider{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.handleHealth(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp.Status != "healthy" {
		t.Errorf("Status = %q, want healthy", resp.Status)
	}
}

func TestHandleHealthMethodNotAllowed(t *testing.T) {
	s := newTestServer(t, &fakeStatusProvider{})

	req := httptest.NewRequest(http.MethodPost, "/health", nil)
	rec := httptest.NewRecorder()
	s.handleHealth(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}

	var resp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp.Code != ErrCodeMethodNotAllowed {
		t.Errorf("Code = %q, want %q", resp.Code, ErrCodeMethodNotAllowed)
	}
	if resp.RequestID == "" {
		t.Error("expected a request id on the error response")
	}
}

func TestHandleReady(t *testing.T) {
	s := newTestServer(t, &fakeStatusProvider{})

	req := httptest.NewRequest(http.MethodGet, "/ready", nil)

	// Not ready before Start
	rec := httptest.NewRecorder()
	s.handleReady(rec, req)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusServiceUnavailable)
	}

	s.SetReady(true)
	rec = httptest.NewRecorder()
	s.handleReady(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestHandleVersion(t *testing.T) {
	cfg := NewConfig()
	cfg.Version = "1.2.3"
	s := NewServer(cfg, &fakeStatusProvider{})

	req := httptest.NewRequest(http.MethodGet, "/version", nil)
	rec := httptest.NewRecorder()
	s.handleVersion(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp VersionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp.Version != "1.2.3" {
		t.Errorf("Version = %q, want 1.2.3", resp.Version)
	}
	if resp.Name != name {
		t.Errorf("Name = %q, want %q", resp.Name, name)
	}
}

func TestEndpointsAPI(t *testing.T) {
	provider := &fakeStatusProvider{
		statuses: map[string]*deployer.Status{
			"alpha": {
				Release:    "alpha",
				Namespace:  "funcx",
				EndpointID: "8a2f1e30-0000-4000-8000-000000000001",
				Image:      "funcx/kube-endpoint:main-3.14",
				Desired:    1,
				Ready:      1,
				Available:  true,
			},
		},
	}
	s := newTestServer(t, provider)
	handler := s.setupRoutes()

	t.Run("list endpoints", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/endpoints", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
		}

		var statuses []*deployer.Status
		if err := json.Unmarshal(rec.Body.Bytes(), &statuses); err != nil {
			t.Fatalf("failed to parse response: %v", err)
		}
		if len(statuses) != 1 || statuses[0].Release != "alpha" {
			t.Errorf("unexpected statuses: %+v", statuses)
		}
	})

	t.Run("get endpoint", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/endpoints/alpha", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
		}

		var status deployer.Status
		if err := json.Unmarshal(rec.Body.Bytes(), &status); err != nil {
			t.Fatalf("failed to parse response: %v", err)
		}
		if status.EndpointID != "8a2f1e30-0000-4000-8000-000000000001" {
			t.Errorf("EndpointID = %q", status.EndpointID)
		}
	})

	t.Run("get unknown endpoint", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/endpoints/missing", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
		}

		var errResp ErrorResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &errResp); err != nil {
			t.Fatalf("failed to parse error response: %v", err)
		}
		if errResp.Code != ErrCodeNotFound {
			t.Errorf("Code = %q, want %q", errResp.Code, ErrCodeNotFound)
		}
		if errResp.RequestID == "" {
			t.Error("expected a request ID in the error response")
		}
	})

	t.Run("request id propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/endpoints", nil)
		req.Header.Set("X-Request-Id", "00000000-0000-4000-8000-00000000beef")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if got := rec.Header().Get("X-Request-Id"); got != "00000000-0000-4000-8000-00000000beef" {
			t.Errorf("X-Request-Id = %q", got)
		}
	})
}

func TestNewConfigEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9191")
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "5")

	cfg := NewConfig()
	if cfg.Port != 9191 {
		t.Errorf("Port = %d, want 9191", cfg.Port)
	}
	if cfg.ShutdownTimeout.Seconds() != 5 {
		t.Errorf("ShutdownTimeout = %v, want 5s", cfg.ShutdownTimeout)
	}
}
