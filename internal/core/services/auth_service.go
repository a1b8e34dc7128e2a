package services

import (
	"context"
	"errors"
	"time"

	"github.com/opcare/report-triage-service/internal/core/domain"
	"github.com/opcare/report-triage-service/internal/core/ports"
)

// accessTokenTTL is how long a signed-in session lasts in either domain.
const accessTokenTTL = time.Hour

// AuthService is the credential verifier: it resolves a subject by username,
// checks the password against the stored hash and issues a token signed by the
// subject's domain.
type AuthService struct {
	users        ports.UserRepository
	doctors      ports.DoctorRepository
	userTokens   ports.TokenIssuer
	doctorTokens ports.TokenIssuer
}

var _ ports.AuthService = (*AuthService)(nil)

func NewAuthService(
	users ports.UserRepository,
	doctors ports.DoctorRepository,
	userTokens ports.TokenIssuer,
	doctorTokens ports.TokenIssuer,
) *AuthService {
	return &AuthService{
		users:        users,
		doctors:      doctors,
		userTokens:   userTokens,
		doctorTokens: doctorTokens,
	}
}

func (s *AuthService) SignInUser(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", &domain.NotFoundError{Entity: "User"}
		}
		return "", err
	}
	if !VerifyPassword(password, user.Password) {
		return "", domain.ErrInvalidCredential
	}
	return s.userTokens.Issue(user.ID, accessTokenTTL)
}

func (s *AuthService) SignInDoctor(ctx context.Context, username, password string) (string, error) {
	doctor, err := s.doctors.FindDoctorByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", &domain.NotFoundError{Entity: "Doctor"}
		}
		return "", err
	}
	if !VerifyPassword(password, doctor.Password) {
		return "", domain.ErrInvalidCredential
	}
	return s.doctorTokens.Issue(doctor.ID, accessTokenTTL)
}
