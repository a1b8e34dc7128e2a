package mocks

import (
	"context"
	"sync"

	"github.com/opcare/report-triage-service/internal/core/ports"
)

// MockReportPublisher implements ports.ReportEventPublisher for relay tests.
type MockReportPublisher struct {
	mu sync.Mutex

	Published      []ports.ReportEvent
	PublishedTypes []string

	PublishError error
}

var _ ports.ReportEventPublisher = (*MockReportPublisher)(nil)

func NewMockReportPublisher() *MockReportPublisher {
	return &MockReportPublisher{}
}

func (m *MockReportPublisher) PublishReportEvent(ctx context.Context, eventType string, evt ports.ReportEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.PublishError != nil {
		return m.PublishError
	}
	m.Published = append(m.Published, evt)
	m.PublishedTypes = append(m.PublishedTypes, eventType)
	return nil
}
