package ports

import (
	"context"

	"github.com/opcare/report-triage-service/internal/core/domain"
)

type AuthService interface {
	SignInUser(ctx context.Context, username, password string) (string, error)
	SignInDoctor(ctx context.Context, username, password string) (string, error)
}

type RegistrationService interface {
	RegisterUser(ctx context.Context, username, password, photo, location string) (*domain.User, error)
	RegisterDoctor(ctx context.Context, doctor domain.Doctor, password string) (*domain.Doctor, error)
}

type ReportService interface {
	CreateReport(ctx context.Context, reportText, userID, doctorID string) (*domain.Report, error)
	GetReport(ctx context.Context, id string) (*domain.Report, error)
	ListReports(ctx context.Context) ([]domain.Report, error)
	UpdateTriage(ctx context.Context, id string, severity *float64, status *domain.ReportStatus) (*domain.Report, error)
}

type TriageService interface {
	TriageForDoctor(ctx context.Context, doctorID string) (*domain.TriageView, error)
	TriageForUser(ctx context.Context, userID string) (*domain.TriageView, error)
}
