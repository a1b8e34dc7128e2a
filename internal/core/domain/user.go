package domain

import (
	"regexp"
	"time"
)

// usernamePattern mirrors the signup contract: alphanumeric, at least 3 characters.
var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9]{3,}$`)

const minPasswordLength = 4

type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"-"` // bcrypt hash, never serialized
	Photo     string    `json:"photo,omitempty"`
	Location  string    `json:"location,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ValidateUsername checks the signup username format.
func ValidateUsername(username string) error {
	if !usernamePattern.MatchString(username) {
		return &ValidationError{
			Field:  "username",
			Reason: "must be alphanumeric and at least 3 characters long",
		}
	}
	return nil
}

// ValidatePassword checks a plaintext password before it is hashed.
func ValidatePassword(password string) error {
	if len(password) < minPasswordLength {
		return &ValidationError{
			Field:  "password",
			Reason: "must be at least 4 characters long",
		}
	}
	return nil
}
