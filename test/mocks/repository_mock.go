// Package mocks provides hand-written implementations of the port interfaces
// for testing. Services depend on the interfaces only, so tests swap the SQL
// repository for these in-memory versions.
package mocks

import (
	"context"
	"sync"

	"github.com/opcare/report-triage-service/internal/core/domain"
	"github.com/opcare/report-triage-service/internal/core/ports"
)

// MockIdentityRepository implements ports.UserRepository and
// ports.DoctorRepository with in-memory maps.
type MockIdentityRepository struct {
	mu sync.RWMutex

	users   map[string]*domain.User   // keyed by id
	doctors map[string]*domain.Doctor // keyed by id

	// Call tracking for verification
	CreateUserCalls   []domain.User
	CreateDoctorCalls []domain.Doctor

	// Error injection for failure scenarios
	CreateUserError   error
	CreateDoctorError error
	FindUserError     error
	FindDoctorError   error
}

var _ ports.UserRepository = (*MockIdentityRepository)(nil)
var _ ports.DoctorRepository = (*MockIdentityRepository)(nil)

func NewMockIdentityRepository() *MockIdentityRepository {
	return &MockIdentityRepository{
		users:   make(map[string]*domain.User),
		doctors: make(map[string]*domain.Doctor),
	}
}

// SeedUser adds a user for test setup, bypassing call tracking.
func (m *MockIdentityRepository) SeedUser(user domain.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[user.ID] = &user
}

// SeedDoctor adds a doctor for test setup, bypassing call tracking.
func (m *MockIdentityRepository) SeedDoctor(doctor domain.Doctor) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.doctors[doctor.ID] = &doctor
}

func (m *MockIdentityRepository) CreateUser(ctx context.Context, user domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.CreateUserCalls = append(m.CreateUserCalls, user)
	if m.CreateUserError != nil {
		return m.CreateUserError
	}
	for _, existing := range m.users {
		if existing.Username == user.Username {
			return domain.ErrDuplicateUsername
		}
	}
	m.users[user.ID] = &user
	return nil
}

func (m *MockIdentityRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.FindUserError != nil {
		return nil, m.FindUserError
	}
	for _, user := range m.users {
		if user.Username == username {
			u := *user
			return &u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *MockIdentityRepository) FindUserByID(ctx context.Context, id string) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.FindUserError != nil {
		return nil, m.FindUserError
	}
	if user, ok := m.users[id]; ok {
		u := *user
		return &u, nil
	}
	return nil, domain.ErrNotFound
}

func (m *MockIdentityRepository) CreateDoctor(ctx context.Context, doctor domain.Doctor) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.CreateDoctorCalls = append(m.CreateDoctorCalls, doctor)
	if m.CreateDoctorError != nil {
		return m.CreateDoctorError
	}
	for _, existing := range m.doctors {
		if existing.Username == doctor.Username {
			return domain.ErrDuplicateUsername
		}
	}
	m.doctors[doctor.ID] = &doctor
	return nil
}

func (m *MockIdentityRepository) FindDoctorByUsername(ctx context.Context, username string) (*domain.Doctor, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.FindDoctorError != nil {
		return nil, m.FindDoctorError
	}
	for _, doctor := range m.doctors {
		if doctor.Username == username {
			d := *doctor
			return &d, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *MockIdentityRepository) FindDoctorByID(ctx context.Context, id string) (*domain.Doctor, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.FindDoctorError != nil {
		return nil, m.FindDoctorError
	}
	if doctor, ok := m.doctors[id]; ok {
		d := *doctor
		return &d, nil
	}
	return nil, domain.ErrNotFound
}

// MockReportRepository implements ports.ReportRepository in memory. Reports
// keep insertion order so tests can assert the store's natural return order.
type MockReportRepository struct {
	mu sync.RWMutex

	reports []domain.Report

	// Call tracking
	CreateReportCalls []domain.Report
	UpdateTriageCalls []domain.Report
	EventTypes        []string
	EventPayloads     [][]byte

	// Error injection
	CreateReportError error
	UpdateTriageError error
	ListError         error
}

var _ ports.ReportRepository = (*MockReportRepository)(nil)

func NewMockReportRepository() *MockReportRepository {
	return &MockReportRepository{}
}

// SeedReport appends a report for test setup, bypassing call tracking.
func (m *MockReportRepository) SeedReport(report domain.Report) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reports = append(m.reports, report)
}

func (m *MockReportRepository) CreateReport(ctx context.Context, report domain.Report, eventType string, eventPayload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.CreateReportCalls = append(m.CreateReportCalls, report)
	m.EventTypes = append(m.EventTypes, eventType)
	m.EventPayloads = append(m.EventPayloads, eventPayload)
	if m.CreateReportError != nil {
		return m.CreateReportError
	}
	m.reports = append(m.reports, report)
	return nil
}

func (m *MockReportRepository) UpdateReportTriage(ctx context.Context, report domain.Report, eventType string, eventPayload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.UpdateTriageCalls = append(m.UpdateTriageCalls, report)
	m.EventTypes = append(m.EventTypes, eventType)
	m.EventPayloads = append(m.EventPayloads, eventPayload)
	if m.UpdateTriageError != nil {
		return m.UpdateTriageError
	}
	for i := range m.reports {
		if m.reports[i].ID == report.ID {
			m.reports[i] = report
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *MockReportRepository) FindReportByID(ctx context.Context, id string) (*domain.Report, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.ListError != nil {
		return nil, m.ListError
	}
	for _, report := range m.reports {
		if report.ID == id {
			r := report
			return &r, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *MockReportRepository) ListReports(ctx context.Context) ([]domain.Report, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.ListError != nil {
		return nil, m.ListError
	}
	out := make([]domain.Report, len(m.reports))
	copy(out, m.reports)
	return out, nil
}

func (m *MockReportRepository) ListReportsForDoctor(ctx context.Context, doctorID string) ([]domain.Report, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.ListError != nil {
		return nil, m.ListError
	}
	var out []domain.Report
	for _, report := range m.reports {
		if report.DoctorID == doctorID {
			out = append(out, report)
		}
	}
	return out, nil
}

func (m *MockReportRepository) ListReportsForUser(ctx context.Context, userID string) ([]domain.Report, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.ListError != nil {
		return nil, m.ListError
	}
	var out []domain.Report
	for _, report := range m.reports {
		if report.UserID == userID {
			out = append(out, report)
		}
	}
	return out, nil
}
