package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/opcare/report-triage-service/internal/core/domain"
	"github.com/opcare/report-triage-service/internal/core/services"
	"github.com/opcare/report-triage-service/test/mocks"
)

func newReportHandler(identity *mocks.MockIdentityRepository, reports *mocks.MockReportRepository) *ReportHandler {
	svc := services.NewReportService(reports, identity, identity, mocks.NewMockTriageCache())
	return NewReportHandler(svc)
}

func seededIdentity() *mocks.MockIdentityRepository {
	repo := mocks.NewMockIdentityRepository()
	repo.SeedUser(mocks.NewTestUser("user-1", "alice"))
	repo.SeedDoctor(mocks.NewTestDoctor("doc-1", "drbones"))
	return repo
}

func TestReportAdd(t *testing.T) {
	reports := mocks.NewMockReportRepository()
	h := newReportHandler(seededIdentity(), reports)

	payload := `{"report":"severe chest pain","userId":"user-1","doctorId":"doc-1"}`
	req := httptest.NewRequest(http.MethodPost, "/op/add", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	h.Add(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	if body["message"] != "OP record created successfully." {
		t.Errorf("unexpected message: %v", body["message"])
	}
	op, _ := body["op"].(map[string]any)
	if op["status"] != "pending" {
		t.Errorf("expected pending status, got %v", op["status"])
	}
	if op["severity"] != float64(0) {
		t.Errorf("expected severity 0, got %v", op["severity"])
	}
	if len(reports.CreateReportCalls) != 1 {
		t.Errorf("expected one persist call, got %d", len(reports.CreateReportCalls))
	}
}

func TestReportAddMissingFields(t *testing.T) {
	h := newReportHandler(seededIdentity(), mocks.NewMockReportRepository())

	payload := `{"report":"text","userId":"user-1"}`
	req := httptest.NewRequest(http.MethodPost, "/op/add", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	h.Add(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["message"] != "Report, userId, and doctorId are required." {
		t.Errorf("unexpected message: %v", body["message"])
	}
}

func TestReportAddUnknownDoctor(t *testing.T) {
	h := newReportHandler(seededIdentity(), mocks.NewMockReportRepository())

	payload := `{"report":"text","userId":"user-1","doctorId":"ghost"}`
	req := httptest.NewRequest(http.MethodPost, "/op/add", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	h.Add(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["message"] != "Doctor not found." {
		t.Errorf("unexpected message: %v", body["message"])
	}
}

func TestReportList(t *testing.T) {
	reports := mocks.NewMockReportRepository()
	reports.SeedReport(mocks.NewTestReport("op-1", "user-1", "doc-1", 2))
	reports.SeedReport(mocks.NewTestReport("op-2", "user-1", "doc-1", 7))
	h := newReportHandler(seededIdentity(), reports)

	req := httptest.NewRequest(http.MethodGet, "/op/list", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	ops, _ := body["ops"].([]any)
	if len(ops) != 2 {
		t.Fatalf("expected 2 records, got %d", len(ops))
	}
}

func TestReportGet(t *testing.T) {
	reports := mocks.NewMockReportRepository()
	reports.SeedReport(mocks.NewTestReport("op-1", "user-1", "doc-1", 2))
	h := newReportHandler(seededIdentity(), reports)

	req := httptest.NewRequest(http.MethodGet, "/op/op-1", nil)
	req.SetPathValue("id", "op-1")
	rec := httptest.NewRecorder()
	h.Get(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	op, _ := body["op"].(map[string]any)
	if op["id"] != "op-1" {
		t.Errorf("expected op-1, got %v", op["id"])
	}
}

func TestReportGetNotFound(t *testing.T) {
	h := newReportHandler(seededIdentity(), mocks.NewMockReportRepository())

	req := httptest.NewRequest(http.MethodGet, "/op/missing", nil)
	req.SetPathValue("id", "missing")
	rec := httptest.NewRecorder()
	h.Get(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["message"] != "OP record not found." {
		t.Errorf("unexpected message: %v", body["message"])
	}
}

func TestReportUpdateTriage(t *testing.T) {
	reports := mocks.NewMockReportRepository()
	reports.SeedReport(mocks.NewTestReport("op-1", "user-1", "doc-1", 0))
	h := newReportHandler(seededIdentity(), reports)

	payload := `{"severity":7.5,"status":"solved"}`
	req := httptest.NewRequest(http.MethodPatch, "/op/op-1", strings.NewReader(payload))
	req.SetPathValue("id", "op-1")
	rec := httptest.NewRecorder()
	h.UpdateTriage(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	op, _ := body["op"].(map[string]any)
	if op["severity"] != 7.5 {
		t.Errorf("expected severity 7.5, got %v", op["severity"])
	}
	if op["status"] != string(domain.ReportSolved) {
		t.Errorf("expected solved status, got %v", op["status"])
	}
}

func TestReportUpdateTriageRejectsReopen(t *testing.T) {
	reports := mocks.NewMockReportRepository()
	solved := mocks.NewTestReport("op-1", "user-1", "doc-1", 5)
	solved.Status = domain.ReportSolved
	reports.SeedReport(solved)
	h := newReportHandler(seededIdentity(), reports)

	req := httptest.NewRequest(http.MethodPatch, "/op/op-1", strings.NewReader(`{"status":"pending"}`))
	req.SetPathValue("id", "op-1")
	rec := httptest.NewRecorder()
	h.UpdateTriage(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestReportUpdateTriageEmptyBody(t *testing.T) {
	reports := mocks.NewMockReportRepository()
	reports.SeedReport(mocks.NewTestReport("op-1", "user-1", "doc-1", 0))
	h := newReportHandler(seededIdentity(), reports)

	req := httptest.NewRequest(http.MethodPatch, "/op/op-1", strings.NewReader(`{}`))
	req.SetPathValue("id", "op-1")
	rec := httptest.NewRecorder()
	h.UpdateTriage(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
