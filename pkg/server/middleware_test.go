package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/time/rate"
)

func TestRateLimitMiddleware(t *testing.T) {
	cfg := NewConfig()
	cfg.RateLimit = rate.Limit(1)
	cfg.RateLimitBurst = 1
	s := NewServer(cfg, &fakeStatusProvider{})

	handler := s.rateLimitMiddleware(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// First request consumes the burst
	req := httptest.NewRequest(http.MethodGet, "/v1/endpoints", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("first request status = %d, want %d", rec.Code, http.StatusOK)
	}

	// Second request must be rejected
	rec = httptest.NewRecorder()
	handler(rec, req)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("second request status = %d, want %d", rec.Code, http.StatusTooManyRequests)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Error("expected Retry-After header")
	}
}

func TestPanicRecoveryMiddleware(t *testing.T) {
	s := newTestServer(t, &fakeStatusProvider{})

	handler := s.panicRecoveryMiddleware(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/endpoints", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
}

func TestResponseWriterStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := newResponseWriter(rec)

	if rw.Status() != http.StatusOK {
		t.Errorf("default status = %d, want %d", rw.Status(), http.StatusOK)
	}

	rw.WriteHeader(http.StatusNotFound)
	rw.WriteHeader(http.StatusOK) // ignored
	if rw.Status() != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rw.Status(), http.StatusNotFound)
	}

	if _, err := rw.Write([]byte("body")); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("recorded status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}
