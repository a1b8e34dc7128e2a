package handler

import (
	"encoding/json"
	"net/http"

	"github.com/opcare/report-triage-service/internal/core/domain"
	"github.com/opcare/report-triage-service/internal/core/ports"
)

// ReportHandler serves the OP endpoints.
type ReportHandler struct {
	reports ports.ReportService
}

func NewReportHandler(reports ports.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

type AddReportRequest struct {
	Report   string `json:"report"`
	UserID   string `json:"userId"`
	DoctorID string `json:"doctorId"`
}

type UpdateTriageRequest struct {
	Severity *float64 `json:"severity,omitempty"`
	Status   *string  `json:"status,omitempty"`
}

func (h *ReportHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req AddReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if req.Report == "" || req.UserID == "" || req.DoctorID == "" {
		respondMessage(w, http.StatusBadRequest, "Report, userId, and doctorId are required.")
		return
	}

	report, err := h.reports.CreateReport(r.Context(), req.Report, req.UserID, req.DoctorID)
	if err != nil {
		respondFailure(w, err)
		return
	}

	respond(w, http.StatusCreated, envelope{
		"message": "OP record created successfully.",
		"op":      report,
	})
}

func (h *ReportHandler) List(w http.ResponseWriter, r *http.Request) {
	reports, err := h.reports.ListReports(r.Context())
	if err != nil {
		respondFailure(w, err)
		return
	}

	respond(w, http.StatusOK, envelope{
		"message": "OP records retrieved successfully.",
		"ops":     reports,
	})
}

func (h *ReportHandler) Get(w http.ResponseWriter, r *http.Request) {
	report, err := h.reports.GetReport(r.Context(), r.PathValue("id"))
	if err != nil {
		respondFailure(w, err)
		return
	}

	respond(w, http.StatusOK, envelope{
		"message": "OP record retrieved successfully.",
		"op":      report,
	})
}

// UpdateTriage is the doctor-side workflow: set severity and/or mark solved.
func (h *ReportHandler) UpdateTriage(w http.ResponseWriter, r *http.Request) {
	var req UpdateTriageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	var status *domain.ReportStatus
	if req.Status != nil {
		s := domain.ReportStatus(*req.Status)
		status = &s
	}

	report, err := h.reports.UpdateTriage(r.Context(), r.PathValue("id"), req.Severity, status)
	if err != nil {
		respondFailure(w, err)
		return
	}

	respond(w, http.StatusOK, envelope{
		"message": "OP record updated successfully.",
		"op":      report,
	})
}
