package domain

import (
	"regexp"
	"time"
)

type Availability string

const (
	AvailabilityMorning   Availability = "Morning"
	AvailabilityAfternoon Availability = "Afternoon"
	AvailabilityEvening   Availability = "Evening"
	AvailabilityNight     Availability = "Night"
	AvailabilityFullTime  Availability = "Full-time"
)

var (
	emailPattern   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	contactPattern = regexp.MustCompile(`^\d{10}$`)
)

type Hospital struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// Doctor records are provisioned out-of-band; there is no public signup route.
type Doctor struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Specialty    string       `json:"specialty"`
	Username     string       `json:"username"`
	Password     string       `json:"-"` // bcrypt hash, never serialized
	Email        string       `json:"email"`
	Contact      string       `json:"contact"`
	Location     string       `json:"location"`
	Availability Availability `json:"availability"`
	Hospital     Hospital     `json:"hospital"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// Validate checks every required doctor attribute at write time.
func (d Doctor) Validate() error {
	if d.Name == "" {
		return &ValidationError{Field: "name", Reason: "is required"}
	}
	if d.Specialty == "" {
		return &ValidationError{Field: "specialty", Reason: "is required"}
	}
	if err := ValidateUsername(d.Username); err != nil {
		return err
	}
	if !emailPattern.MatchString(d.Email) {
		return &ValidationError{Field: "email", Reason: "is not a valid email address"}
	}
	if !contactPattern.MatchString(d.Contact) {
		return &ValidationError{Field: "contact", Reason: "must be a 10-digit number"}
	}
	if d.Location == "" {
		return &ValidationError{Field: "location", Reason: "is required"}
	}
	if !d.Availability.Valid() {
		return &ValidationError{Field: "availability", Reason: "must be one of Morning, Afternoon, Evening, Night, Full-time"}
	}
	if d.Hospital.Name == "" || d.Hospital.Address == "" {
		return &ValidationError{Field: "hospital", Reason: "name and address are required"}
	}
	return nil
}

func (a Availability) Valid() bool {
	switch a {
	case AvailabilityMorning, AvailabilityAfternoon, AvailabilityEvening,
		AvailabilityNight, AvailabilityFullTime:
		return true
	}
	return false
}
