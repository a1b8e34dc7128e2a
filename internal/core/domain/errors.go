package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound marks any missing subject: user, doctor or report.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateUsername is returned when a signup reuses an existing username.
	ErrDuplicateUsername = errors.New("username already taken")

	// ErrInvalidCredential is returned when a password does not match the stored hash.
	ErrInvalidCredential = errors.New("invalid credentials")
)

// ValidationError names the offending field of a malformed write.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// NotFoundError carries the entity kind so handlers can phrase the response.
// It matches ErrNotFound under errors.Is.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return e.Entity + " not found"
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
