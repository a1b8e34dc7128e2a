package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/opcare/report-triage-service/internal/core/domain"
)

// envelope is the response shape shared by every endpoint: a message string
// plus a payload keyed by entity name, and an error field on failures.
type envelope map[string]any

func respond(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("failed to write response: %v", err)
	}
}

func respondMessage(w http.ResponseWriter, status int, message string) {
	respond(w, status, envelope{"message": message})
}

// respondFailure translates the domain error taxonomy to HTTP. Unexpected
// errors surface as 500 with the raw diagnostic in the error field.
func respondFailure(w http.ResponseWriter, err error) {
	var verr *domain.ValidationError
	var nferr *domain.NotFoundError

	switch {
	case errors.As(err, &verr):
		respondMessage(w, http.StatusBadRequest, verr.Error())
	case errors.Is(err, domain.ErrDuplicateUsername):
		respondMessage(w, http.StatusBadRequest, "Username already taken.")
	case errors.As(err, &nferr):
		respondMessage(w, http.StatusNotFound, nferr.Entity+" not found.")
	case errors.Is(err, domain.ErrNotFound):
		respondMessage(w, http.StatusNotFound, "Not found.")
	case errors.Is(err, domain.ErrInvalidCredential):
		respondMessage(w, http.StatusUnauthorized, "Password is incorrect.")
	default:
		respond(w, http.StatusInternalServerError, envelope{
			"message": "Internal Server Error",
			"error":   err.Error(),
		})
	}
}
