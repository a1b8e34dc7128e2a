package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHealthReportsProcessUp(t *testing.T) {
	t.Setenv("APP_VERSION", "1.2.3")
	h := NewHealthHandler(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	h.Health(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["status"] != "UP" {
		t.Errorf("expected status UP, got %v", body["status"])
	}
	if body["version"] != "1.2.3" {
		t.Errorf("expected version from APP_VERSION, got %v", body["version"])
	}
}

func TestHealthVersionDefaultsToUnknown(t *testing.T) {
	t.Setenv("APP_VERSION", "")
	h := NewHealthHandler(nil, nil)

	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if body := decodeBody(t, rec); body["version"] != "unknown" {
		t.Errorf("expected version 'unknown', got %v", body["version"])
	}
}

// Readiness degrades to 503 when the backing connections were never set up.
func TestReadyReportsDownWithoutBackends(t *testing.T) {
	h := NewHealthHandler(nil, nil)

	rec := httptest.NewRecorder()
	h.Ready(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["status"] != "DOWN" {
		t.Errorf("expected status DOWN, got %v", body["status"])
	}
}
