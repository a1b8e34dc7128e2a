package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/opcare/report-triage-service/internal/core/domain"
	"github.com/opcare/report-triage-service/internal/core/ports"
)

// ReportService owns the OP lifecycle: creation by users and triage updates by
// doctors. Every write emits an outbox event in the same transaction and
// invalidates the cached triage views of both referenced subjects.
type ReportService struct {
	reports ports.ReportRepository
	users   ports.UserRepository
	doctors ports.DoctorRepository
	cache   ports.TriageCache
}

var _ ports.ReportService = (*ReportService)(nil)

func NewReportService(
	reports ports.ReportRepository,
	users ports.UserRepository,
	doctors ports.DoctorRepository,
	cache ports.TriageCache,
) *ReportService {
	return &ReportService{
		reports: reports,
		users:   users,
		doctors: doctors,
		cache:   cache,
	}
}

// CreateReport files a new OP for the given user against the given doctor.
// Both references are resolved before the insert. The two reads and the insert
// are not atomic; the store's row-level guarantees are considered sufficient
// since identities are never deleted in this design.
func (s *ReportService) CreateReport(ctx context.Context, reportText, userID, doctorID string) (*domain.Report, error) {
	if reportText == "" {
		return nil, &domain.ValidationError{Field: "report", Reason: "is required"}
	}
	if userID == "" {
		return nil, &domain.ValidationError{Field: "userId", Reason: "is required"}
	}
	if doctorID == "" {
		return nil, &domain.ValidationError{Field: "doctorId", Reason: "is required"}
	}

	user, err := s.users.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, &domain.NotFoundError{Entity: "User"}
		}
		return nil, err
	}
	doctor, err := s.doctors.FindDoctorByID(ctx, doctorID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, &domain.NotFoundError{Entity: "Doctor"}
		}
		return nil, err
	}

	now := time.Now().UTC()
	report := domain.Report{
		ID:        uuid.NewString(),
		Report:    reportText,
		UserID:    user.ID,
		DoctorID:  doctor.ID,
		Status:    domain.ReportPending,
		CreatedAt: now,
		UpdatedAt: now,
		User:      &domain.UserRef{ID: user.ID, Username: user.Username},
		Doctor:    &domain.DoctorRef{ID: doctor.ID, Name: doctor.Name, Specialty: doctor.Specialty},
	}

	payload, err := json.Marshal(ports.ReportEvent{
		ReportID: report.ID,
		UserID:   report.UserID,
		DoctorID: report.DoctorID,
		Status:   string(report.Status),
		Severity: report.Severity,
	})
	if err != nil {
		return nil, err
	}

	if err := s.reports.CreateReport(ctx, report, ports.EventReportCreated, payload); err != nil {
		return nil, err
	}

	s.invalidateTriage(ctx, report)
	return &report, nil
}

func (s *ReportService) GetReport(ctx context.Context, id string) (*domain.Report, error) {
	report, err := s.reports.FindReportByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, &domain.NotFoundError{Entity: "OP record"}
		}
		return nil, err
	}
	return report, nil
}

func (s *ReportService) ListReports(ctx context.Context) ([]domain.Report, error) {
	return s.reports.ListReports(ctx)
}

// UpdateTriage applies the doctor-side workflow: adjust severity and/or mark a
// pending report solved. The pending→solved transition is monotonic; a solved
// report can never be reopened.
func (s *ReportService) UpdateTriage(
	ctx context.Context,
	id string,
	severity *float64,
	status *domain.ReportStatus,
) (*domain.Report, error) {
	if severity == nil && status == nil {
		return nil, &domain.ValidationError{Field: "severity or status", Reason: "is required"}
	}
	if status != nil {
		if !status.Valid() {
			return nil, &domain.ValidationError{Field: "status", Reason: "must be pending or solved"}
		}
		if *status != domain.ReportSolved {
			return nil, &domain.ValidationError{Field: "status", Reason: "can only transition to solved"}
		}
	}

	report, err := s.reports.FindReportByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, &domain.NotFoundError{Entity: "OP record"}
		}
		return nil, err
	}

	if severity != nil {
		report.Severity = *severity
	}
	if status != nil {
		report.Status = *status
	}
	report.UpdatedAt = time.Now().UTC()

	payload, err := json.Marshal(ports.ReportEvent{
		ReportID: report.ID,
		UserID:   report.UserID,
		DoctorID: report.DoctorID,
		Status:   string(report.Status),
		Severity: report.Severity,
	})
	if err != nil {
		return nil, err
	}

	if err := s.reports.UpdateReportTriage(ctx, *report, ports.EventReportUpdated, payload); err != nil {
		return nil, err
	}

	s.invalidateTriage(ctx, *report)
	return report, nil
}

func (s *ReportService) invalidateTriage(ctx context.Context, report domain.Report) {
	if s.cache == nil {
		return
	}
	s.cache.Invalidate(ctx,
		ports.DoctorTriageKey(report.DoctorID),
		ports.UserTriageKey(report.UserID),
	)
}
