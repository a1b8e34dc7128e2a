package ports

import "context"

const (
	EventReportCreated = "report.created"
	EventReportUpdated = "report.updated"
)

// ReportEvent is the outbox payload describing a report lifecycle change.
type ReportEvent struct {
	ReportID string  `json:"report_id"`
	UserID   string  `json:"user_id"`
	DoctorID string  `json:"doctor_id"`
	Status   string  `json:"status"`
	Severity float64 `json:"severity"`
}

type ReportEventPublisher interface {
	PublishReportEvent(ctx context.Context, eventType string, evt ReportEvent) error
}
