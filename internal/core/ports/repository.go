package ports

import (
	"context"

	"github.com/opcare/report-triage-service/internal/core/domain"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user domain.User) error
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
	FindUserByID(ctx context.Context, id string) (*domain.User, error)
}

type DoctorRepository interface {
	CreateDoctor(ctx context.Context, doctor domain.Doctor) error
	FindDoctorByUsername(ctx context.Context, username string) (*domain.Doctor, error)
	FindDoctorByID(ctx context.Context, id string) (*domain.Doctor, error)
}

// ReportRepository persists OP records. Writes also record an outbox event in
// the same transaction; the relay process drains those to the message broker.
// Read operations return reports with the user and doctor references populated.
type ReportRepository interface {
	CreateReport(ctx context.Context, report domain.Report, eventType string, eventPayload []byte) error
	UpdateReportTriage(ctx context.Context, report domain.Report, eventType string, eventPayload []byte) error
	FindReportByID(ctx context.Context, id string) (*domain.Report, error)
	ListReports(ctx context.Context) ([]domain.Report, error)
	ListReportsForDoctor(ctx context.Context, doctorID string) ([]domain.Report, error)
	ListReportsForUser(ctx context.Context, userID string) ([]domain.Report, error)
}
