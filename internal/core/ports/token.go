package ports

import "time"

// TokenIssuer signs access tokens for one signing domain (user or doctor/admin).
// A token is only meaningful to the verifier of the domain that issued it; the
// two domains share no secret, which is the sole role-separation mechanism.
type TokenIssuer interface {
	Issue(subjectID string, ttl time.Duration) (string, error)
}

// TokenVerifier validates a token against its domain's secret and extracts the
// subject identifier.
type TokenVerifier interface {
	Verify(token string) (subjectID string, err error)
}
