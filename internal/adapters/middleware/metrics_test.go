package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestMetricsHandlerPassesThrough(t *testing.T) {
	metrics := NewMetrics("metrics_test")

	mux := http.NewServeMux()
	mux.HandleFunc("GET /op/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("body"))
	})
	wrapped := metrics.Handler(mux)

	req := httptest.NewRequest(http.MethodGet, "/op/op-1", nil)
	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, req)

	if rec.Code != http.StatusTeapot {
		t.Fatalf("expected wrapped handler status, got %d", rec.Code)
	}
	if rec.Body.String() != "body" {
		t.Errorf("expected body to pass through, got %q", rec.Body.String())
	}

	// Unmatched routes must not panic the label lookup.
	rec = httptest.NewRecorder()
	wrapped.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/nope", nil))
	if rec.Code != http.StatusMethodNotAllowed && rec.Code != http.StatusNotFound {
		t.Errorf("unexpected status for unmatched route: %d", rec.Code)
	}
}
