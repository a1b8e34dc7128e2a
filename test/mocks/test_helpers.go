package mocks

import (
	"time"

	"github.com/opcare/report-triage-service/internal/core/domain"
)

// NewTestUser returns a user record suitable for seeding.
func NewTestUser(id, username string) domain.User {
	now := time.Now().UTC()
	return domain.User{
		ID:        id,
		Username:  username,
		Password:  "$2a$10$test.hash.placeholder",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewTestDoctor returns a doctor record that passes domain validation.
func NewTestDoctor(id, username string) domain.Doctor {
	now := time.Now().UTC()
	return domain.Doctor{
		ID:           id,
		Name:         "Dr. Test",
		Specialty:    "Cardiology",
		Username:     username,
		Password:     "$2a$10$test.hash.placeholder",
		Email:        "doctor@example.com",
		Contact:      "0123456789",
		Location:     "Rotterdam",
		Availability: domain.AvailabilityMorning,
		Hospital: domain.Hospital{
			Name:    "Test General",
			Address: "1 Hospital Way",
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewTestReport returns a pending report linking the given user and doctor.
func NewTestReport(id, userID, doctorID string, severity float64) domain.Report {
	now := time.Now().UTC()
	return domain.Report{
		ID:        id,
		Report:    "persistent headache and dizziness",
		UserID:    userID,
		DoctorID:  doctorID,
		Status:    domain.ReportPending,
		Severity:  severity,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
