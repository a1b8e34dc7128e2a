package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/opcare/report-triage-service/internal/core/domain"
	"github.com/opcare/report-triage-service/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(auth ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: auth}
}

type SignInRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AuthHandler) UserSignIn(w http.ResponseWriter, r *http.Request) {
	var req SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if req.Username == "" || req.Password == "" {
		respondMessage(w, http.StatusBadRequest, "Username and password are required.")
		return
	}

	token, err := h.authService.SignInUser(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondMessage(w, http.StatusNotFound, "Username is incorrect.")
			return
		}
		respondFailure(w, err)
		return
	}

	respond(w, http.StatusOK, envelope{
		"message": "User signed in successfully.",
		"token":   token,
	})
}

func (h *AuthHandler) DoctorSignIn(w http.ResponseWriter, r *http.Request) {
	var req SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if req.Username == "" || req.Password == "" {
		respondMessage(w, http.StatusBadRequest, "Username and password are required.")
		return
	}

	token, err := h.authService.SignInDoctor(r.Context(), req.Username, req.Password)
	if err != nil {
		respondFailure(w, err)
		return
	}

	respond(w, http.StatusOK, envelope{
		"message": "Doctor signed in successfully.",
		"token":   token,
	})
}
