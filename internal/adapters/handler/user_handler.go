package handler

import (
	"encoding/json"
	"net/http"

	"github.com/opcare/report-triage-service/internal/adapters/middleware"
	"github.com/opcare/report-triage-service/internal/core/ports"
)

// UserHandler serves signup, the caller's profile and the user triage view.
type UserHandler struct {
	registration ports.RegistrationService
	users        ports.UserRepository
	triage       ports.TriageService
}

func NewUserHandler(
	registration ports.RegistrationService,
	users ports.UserRepository,
	triage ports.TriageService,
) *UserHandler {
	return &UserHandler{
		registration: registration,
		users:        users,
		triage:       triage,
	}
}

type SignUpRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Photo    string `json:"photo,omitempty"`
	Location string `json:"location,omitempty"`
}

func (h *UserHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if req.Username == "" || req.Password == "" {
		respondMessage(w, http.StatusBadRequest, "Username and password are required.")
		return
	}

	user, err := h.registration.RegisterUser(r.Context(), req.Username, req.Password, req.Photo, req.Location)
	if err != nil {
		respondFailure(w, err)
		return
	}

	respond(w, http.StatusCreated, envelope{
		"message": "User created successfully.",
		"user":    envelope{"username": user.Username},
	})
}

// Profile echoes the caller's stored record; the subject comes from the token.
func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	subjectID, ok := middleware.SubjectID(r.Context())
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "Authorization token is required.")
		return
	}

	user, err := h.users.FindUserByID(r.Context(), subjectID)
	if err != nil {
		respondFailure(w, err)
		return
	}

	respond(w, http.StatusOK, envelope{
		"message": "User Dashboard Page",
		"user":    user,
	})
}

// Reports returns the triage view for the authenticated user. The userId path
// parameter is ignored; identity comes from the token.
func (h *UserHandler) Reports(w http.ResponseWriter, r *http.Request) {
	subjectID, ok := middleware.SubjectID(r.Context())
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "Authorization token is required.")
		return
	}

	view, err := h.triage.TriageForUser(r.Context(), subjectID)
	if err != nil {
		respondFailure(w, err)
		return
	}

	respond(w, http.StatusOK, envelope{
		"message": "Reports retrieved successfully.",
		"reports": view,
	})
}
