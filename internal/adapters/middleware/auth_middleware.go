package middleware

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/opcare/report-triage-service/internal/core/ports"
)

type contextKey string

// SubjectIDKey holds the authenticated subject's identifier in the request context.
const SubjectIDKey contextKey = "subjectID"

// AuthMiddleware is the access gate for one signing domain. The API runs two
// instances: a user gate and a doctor/admin gate; each protected endpoint picks
// exactly one. A token only passes the gate whose domain issued it.
type AuthMiddleware struct {
	domain   string
	verifier ports.TokenVerifier
}

func NewAuthMiddleware(domain string, verifier ports.TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{domain: domain, verifier: verifier}
}

// Require rejects requests without a valid bearer token for this domain and
// attaches the decoded subject identifier to the request context.
func (m *AuthMiddleware) Require(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			unauthenticated(w, "Authorization token is required.")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			unauthenticated(w, "Authorization token is required.")
			return
		}

		subjectID, err := m.verifier.Verify(parts[1])
		if err != nil {
			log.Printf("%s gate: token rejected: %v", m.domain, err)
			unauthenticated(w, "Invalid or expired token.")
			return
		}

		ctx := context.WithValue(r.Context(), SubjectIDKey, subjectID)
		next(w, r.WithContext(ctx))
	}
}

// SubjectID extracts the authenticated subject set by Require.
func SubjectID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(SubjectIDKey).(string)
	return id, ok
}

func unauthenticated(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	if err := json.NewEncoder(w).Encode(map[string]string{"message": message}); err != nil {
		log.Printf("failed to write response: %v", err)
	}
}
