package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/opcare/report-triage-service/internal/core/domain"
	"github.com/opcare/report-triage-service/internal/core/ports"
)

// RegistrationService creates identity records. Users sign up through the API;
// doctors are provisioned out-of-band by an operator.
type RegistrationService struct {
	users   ports.UserRepository
	doctors ports.DoctorRepository
}

var _ ports.RegistrationService = (*RegistrationService)(nil)

func NewRegistrationService(users ports.UserRepository, doctors ports.DoctorRepository) *RegistrationService {
	return &RegistrationService{users: users, doctors: doctors}
}

// RegisterUser creates a user record. Photo and location are independently
// optional; empty strings are persisted as absent.
func (s *RegistrationService) RegisterUser(
	ctx context.Context,
	username, password, photo, location string,
) (*domain.User, error) {
	if err := domain.ValidateUsername(username); err != nil {
		return nil, err
	}
	if err := domain.ValidatePassword(password); err != nil {
		return nil, err
	}

	// Explicit uniqueness check before the insert; the unique index on the
	// store backs this up against concurrent signups.
	if _, err := s.users.FindUserByUsername(ctx, username); err == nil {
		return nil, domain.ErrDuplicateUsername
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := domain.User{
		ID:        uuid.NewString(),
		Username:  username,
		Password:  hash,
		Photo:     photo,
		Location:  location,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return &user, nil
}

// RegisterDoctor provisions a doctor record with full field validation.
func (s *RegistrationService) RegisterDoctor(
	ctx context.Context,
	doctor domain.Doctor,
	password string,
) (*domain.Doctor, error) {
	if err := doctor.Validate(); err != nil {
		return nil, err
	}
	if err := domain.ValidatePassword(password); err != nil {
		return nil, err
	}

	if _, err := s.doctors.FindDoctorByUsername(ctx, doctor.Username); err == nil {
		return nil, domain.ErrDuplicateUsername
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	doctor.ID = uuid.NewString()
	doctor.Password = hash
	doctor.CreatedAt = now
	doctor.UpdatedAt = now

	if err := s.doctors.CreateDoctor(ctx, doctor); err != nil {
		return nil, err
	}
	return &doctor, nil
}
