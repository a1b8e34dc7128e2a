package mocks

import (
	"context"
	"sync"

	"github.com/opcare/report-triage-service/internal/core/domain"
	"github.com/opcare/report-triage-service/internal/core/ports"
)

// MockTriageCache implements ports.TriageCache in memory.
type MockTriageCache struct {
	mu sync.RWMutex

	entries map[string]*domain.TriageView

	// Call tracking
	GetCalls        []string
	SetCalls        []string
	InvalidateCalls [][]string
}

var _ ports.TriageCache = (*MockTriageCache)(nil)

func NewMockTriageCache() *MockTriageCache {
	return &MockTriageCache{entries: make(map[string]*domain.TriageView)}
}

func (m *MockTriageCache) Get(ctx context.Context, key string) (*domain.TriageView, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.GetCalls = append(m.GetCalls, key)
	view, ok := m.entries[key]
	return view, ok
}

func (m *MockTriageCache) Set(ctx context.Context, key string, view *domain.TriageView) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.SetCalls = append(m.SetCalls, key)
	m.entries[key] = view
}

func (m *MockTriageCache) Invalidate(ctx context.Context, keys ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.InvalidateCalls = append(m.InvalidateCalls, keys)
	for _, key := range keys {
		delete(m.entries, key)
	}
}
