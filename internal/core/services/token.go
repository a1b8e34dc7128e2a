package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/opcare/report-triage-service/internal/core/ports"
)

// TokenDomain signs and verifies HS256 access tokens for a single auth domain.
// The user and doctor/admin domains are separate instances with independent
// secrets; role is implied by which domain validated the token, not by a claim.
type TokenDomain struct {
	name   string
	secret []byte
}

var _ ports.TokenIssuer = (*TokenDomain)(nil)
var _ ports.TokenVerifier = (*TokenDomain)(nil)

func NewTokenDomain(name string, secret []byte) *TokenDomain {
	return &TokenDomain{name: name, secret: secret}
}

func (d *TokenDomain) Name() string { return d.name }

// Issue signs a token carrying the subject identifier, valid for ttl.
func (d *TokenDomain) Issue(subjectID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": subjectID,
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(d.secret)
}

// Verify parses the token against this domain's secret and returns the subject.
// Tokens signed by any other domain, expired or malformed tokens all fail.
func (d *TokenDomain) Verify(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return d.secret, nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", jwt.ErrTokenUnverifiable
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token claims")
	}
	subjectID, ok := claims["sub"].(string)
	if !ok || subjectID == "" {
		return "", errors.New("token missing subject")
	}
	return subjectID, nil
}
