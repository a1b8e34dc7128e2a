package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/opcare/report-triage-service/internal/core/domain"
	"github.com/opcare/report-triage-service/internal/core/ports"
)

// ReportRepository stores OP records in PostgreSQL. Read paths join the
// referenced user and doctor so responses can present username and
// name+specialty without extra lookups. Writes insert an outbox event in the
// same transaction; a trigger notifies the relay process.
type ReportRepository struct {
	db *sql.DB
}

var _ ports.ReportRepository = (*ReportRepository)(nil)

func NewReportRepository(db *sql.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

const reportColumns = `
	r.id, r.report, r.user_id, r.doctor_id, r.status, r.severity,
	r.created_at, r.updated_at,
	u.id, u.username,
	d.id, d.name, d.specialty`

const reportJoin = `
	FROM reports r
	JOIN users u ON u.id = r.user_id
	JOIN doctors d ON d.id = r.doctor_id`

func (r *ReportRepository) CreateReport(ctx context.Context, report domain.Report, eventType string, eventPayload []byte) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO reports (id, report, user_id, doctor_id, status, severity, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		report.ID,
		report.Report,
		report.UserID,
		report.DoctorID,
		string(report.Status),
		report.Severity,
		report.CreatedAt,
		report.UpdatedAt,
	)
	if err != nil {
		return err
	}

	if err := insertOutboxEvent(ctx, tx, eventType, eventPayload); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *ReportRepository) UpdateReportTriage(ctx context.Context, report domain.Report, eventType string, eventPayload []byte) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE reports SET status = $2, severity = $3, updated_at = $4 WHERE id = $1`,
		report.ID,
		string(report.Status),
		report.Severity,
		report.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}

	if err := insertOutboxEvent(ctx, tx, eventType, eventPayload); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *ReportRepository) FindReportByID(ctx context.Context, id string) (*domain.Report, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT`+reportColumns+reportJoin+` WHERE r.id = $1`, id)
	report, err := scanReport(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return report, nil
}

func (r *ReportRepository) ListReports(ctx context.Context) ([]domain.Report, error) {
	return r.queryReports(ctx,
		`SELECT`+reportColumns+reportJoin+` ORDER BY r.created_at, r.id`)
}

func (r *ReportRepository) ListReportsForDoctor(ctx context.Context, doctorID string) ([]domain.Report, error) {
	return r.queryReports(ctx,
		`SELECT`+reportColumns+reportJoin+` WHERE r.doctor_id = $1 ORDER BY r.created_at, r.id`,
		doctorID)
}

func (r *ReportRepository) ListReportsForUser(ctx context.Context, userID string) ([]domain.Report, error) {
	return r.queryReports(ctx,
		`SELECT`+reportColumns+reportJoin+` WHERE r.user_id = $1 ORDER BY r.created_at, r.id`,
		userID)
}

func (r *ReportRepository) queryReports(ctx context.Context, query string, args ...any) ([]domain.Report, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []domain.Report
	for rows.Next() {
		report, err := scanReport(rows.Scan)
		if err != nil {
			return nil, err
		}
		reports = append(reports, *report)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return reports, nil
}

func scanReport(scan func(dest ...any) error) (*domain.Report, error) {
	var report domain.Report
	var status string
	var user domain.UserRef
	var doctor domain.DoctorRef
	err := scan(
		&report.ID,
		&report.Report,
		&report.UserID,
		&report.DoctorID,
		&status,
		&report.Severity,
		&report.CreatedAt,
		&report.UpdatedAt,
		&user.ID,
		&user.Username,
		&doctor.ID,
		&doctor.Name,
		&doctor.Specialty,
	)
	if err != nil {
		return nil, err
	}
	report.Status = domain.ReportStatus(status)
	report.User = &user
	report.Doctor = &doctor
	return &report, nil
}

func insertOutboxEvent(ctx context.Context, tx *sql.Tx, eventType string, payload []byte) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO outbox_events (id, event_type, payload, created_at) VALUES ($1, $2, $3, NOW())`,
		uuid.NewString(),
		eventType,
		payload,
	)
	return err
}
