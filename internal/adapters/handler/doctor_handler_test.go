package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/opcare/report-triage-service/internal/core/services"
	"github.com/opcare/report-triage-service/test/mocks"
)

func newDoctorHandler(reports *mocks.MockReportRepository) *DoctorHandler {
	return NewDoctorHandler(services.NewTriageService(reports, mocks.NewMockTriageCache()))
}

func TestDoctorDashboard(t *testing.T) {
	h := newDoctorHandler(mocks.NewMockReportRepository())

	req := httptest.NewRequest(http.MethodGet, "/doctor/dashboard", nil)
	rec := httptest.NewRecorder()
	h.Dashboard(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["message"] != "Doctor Dashboard Page" {
		t.Errorf("unexpected message: %v", body["message"])
	}
}

func TestDoctorReports(t *testing.T) {
	reports := mocks.NewMockReportRepository()
	reports.SeedReport(mocks.NewTestReport("op-1", "user-1", "doc-1", 1))
	reports.SeedReport(mocks.NewTestReport("op-2", "user-2", "doc-1", 6))
	solved := mocks.NewTestReport("op-3", "user-1", "doc-1", 9)
	solved.Status = "solved"
	reports.SeedReport(solved)
	h := newDoctorHandler(reports)

	req := httptest.NewRequest(http.MethodGet, "/doctor/doc-1/reports", nil)
	req.SetPathValue("doctorId", "doc-1")
	rec := httptest.NewRecorder()
	h.Reports(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	view, _ := body["reports"].(map[string]any)
	pending, _ := view["pending"].([]any)
	solvedList, _ := view["solved"].([]any)
	if len(pending) != 2 || len(solvedList) != 1 {
		t.Fatalf("expected 2 pending / 1 solved, got %d / %d", len(pending), len(solvedList))
	}
	first, _ := pending[0].(map[string]any)
	if first["id"] != "op-2" {
		t.Errorf("expected highest-severity report first, got %v", first["id"])
	}
}

func TestDoctorReportsNoneFound(t *testing.T) {
	h := newDoctorHandler(mocks.NewMockReportRepository())

	req := httptest.NewRequest(http.MethodGet, "/doctor/doc-9/reports", nil)
	req.SetPathValue("doctorId", "doc-9")
	rec := httptest.NewRecorder()
	h.Reports(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["message"] != "Reports not found." {
		t.Errorf("unexpected message: %v", body["message"])
	}
}
