package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/opcare/report-triage-service/internal/core/domain"
	"github.com/opcare/report-triage-service/internal/core/ports"
)

// pq error code for unique_violation
const uniqueViolation = "23505"

// IdentityRepository stores user and doctor records in PostgreSQL.
type IdentityRepository struct {
	db *sql.DB
}

var _ ports.UserRepository = (*IdentityRepository)(nil)
var _ ports.DoctorRepository = (*IdentityRepository)(nil)

func NewIdentityRepository(db *sql.DB) *IdentityRepository {
	return &IdentityRepository{db: db}
}

func (r *IdentityRepository) CreateUser(ctx context.Context, user domain.User) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, username, password, photo, location, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID,
		user.Username,
		user.Password,
		nullString(user.Photo),
		nullString(user.Location),
		user.CreatedAt,
		user.UpdatedAt,
	)
	return translateUnique(err)
}

func (r *IdentityRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.scanUser(r.db.QueryRowContext(ctx,
		`SELECT id, username, password, photo, location, created_at, updated_at
		 FROM users WHERE username = $1`, username))
}

func (r *IdentityRepository) FindUserByID(ctx context.Context, id string) (*domain.User, error) {
	return r.scanUser(r.db.QueryRowContext(ctx,
		`SELECT id, username, password, photo, location, created_at, updated_at
		 FROM users WHERE id = $1`, id))
}

func (r *IdentityRepository) scanUser(row *sql.Row) (*domain.User, error) {
	var user domain.User
	var photo, location sql.NullString
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Password,
		&photo,
		&location,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	user.Photo = photo.String
	user.Location = location.String
	return &user, nil
}

func (r *IdentityRepository) CreateDoctor(ctx context.Context, doctor domain.Doctor) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO doctors (id, name, specialty, username, password, email, contact,
		                      location, availability, hospital_name, hospital_address,
		                      created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		doctor.ID,
		doctor.Name,
		doctor.Specialty,
		doctor.Username,
		doctor.Password,
		doctor.Email,
		doctor.Contact,
		doctor.Location,
		string(doctor.Availability),
		doctor.Hospital.Name,
		doctor.Hospital.Address,
		doctor.CreatedAt,
		doctor.UpdatedAt,
	)
	return translateUnique(err)
}

func (r *IdentityRepository) FindDoctorByUsername(ctx context.Context, username string) (*domain.Doctor, error) {
	return r.scanDoctor(r.db.QueryRowContext(ctx,
		`SELECT id, name, specialty, username, password, email, contact, location,
		        availability, hospital_name, hospital_address, created_at, updated_at
		 FROM doctors WHERE username = $1`, username))
}

func (r *IdentityRepository) FindDoctorByID(ctx context.Context, id string) (*domain.Doctor, error) {
	return r.scanDoctor(r.db.QueryRowContext(ctx,
		`SELECT id, name, specialty, username, password, email, contact, location,
		        availability, hospital_name, hospital_address, created_at, updated_at
		 FROM doctors WHERE id = $1`, id))
}

func (r *IdentityRepository) scanDoctor(row *sql.Row) (*domain.Doctor, error) {
	var doctor domain.Doctor
	var availability string
	err := row.Scan(
		&doctor.ID,
		&doctor.Name,
		&doctor.Specialty,
		&doctor.Username,
		&doctor.Password,
		&doctor.Email,
		&doctor.Contact,
		&doctor.Location,
		&availability,
		&doctor.Hospital.Name,
		&doctor.Hospital.Address,
		&doctor.CreatedAt,
		&doctor.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	doctor.Availability = domain.Availability(availability)
	return &doctor, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// translateUnique maps the store's unique-index violation to the domain error.
func translateUnique(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return domain.ErrDuplicateUsername
	}
	return err
}
