package handler

import (
	"net/http"

	"github.com/opcare/report-triage-service/internal/core/ports"
)

// DoctorHandler serves the doctor-side landing page and triage view.
type DoctorHandler struct {
	triage ports.TriageService
}

func NewDoctorHandler(triage ports.TriageService) *DoctorHandler {
	return &DoctorHandler{triage: triage}
}

func (h *DoctorHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	respondMessage(w, http.StatusOK, "Doctor Dashboard Page")
}

// Reports returns the triage view for the doctor named in the path.
func (h *DoctorHandler) Reports(w http.ResponseWriter, r *http.Request) {
	doctorID := r.PathValue("doctorId")
	if doctorID == "" {
		respondMessage(w, http.StatusBadRequest, "doctorId is required.")
		return
	}

	view, err := h.triage.TriageForDoctor(r.Context(), doctorID)
	if err != nil {
		respondFailure(w, err)
		return
	}

	respond(w, http.StatusOK, envelope{
		"message": "Reports retrieved successfully.",
		"reports": view,
	})
}
