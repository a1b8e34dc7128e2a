package services

import (
	"context"
	"sort"

	"github.com/opcare/report-triage-service/internal/core/domain"
	"github.com/opcare/report-triage-service/internal/core/ports"
)

// TriageService reshapes a subject's reports for review: pending first by
// descending severity, solved in the store's natural order. A subject with no
// reports at all is reported as not found rather than an empty view.
type TriageService struct {
	reports ports.ReportRepository
	cache   ports.TriageCache
}

var _ ports.TriageService = (*TriageService)(nil)

func NewTriageService(reports ports.ReportRepository, cache ports.TriageCache) *TriageService {
	return &TriageService{reports: reports, cache: cache}
}

func (s *TriageService) TriageForDoctor(ctx context.Context, doctorID string) (*domain.TriageView, error) {
	return s.triage(ctx, ports.DoctorTriageKey(doctorID), func() ([]domain.Report, error) {
		return s.reports.ListReportsForDoctor(ctx, doctorID)
	})
}

func (s *TriageService) TriageForUser(ctx context.Context, userID string) (*domain.TriageView, error) {
	return s.triage(ctx, ports.UserTriageKey(userID), func() ([]domain.Report, error) {
		return s.reports.ListReportsForUser(ctx, userID)
	})
}

func (s *TriageService) triage(ctx context.Context, cacheKey string, fetch func() ([]domain.Report, error)) (*domain.TriageView, error) {
	if s.cache != nil {
		if view, ok := s.cache.Get(ctx, cacheKey); ok {
			return view, nil
		}
	}

	reports, err := fetch()
	if err != nil {
		return nil, err
	}
	if len(reports) == 0 {
		return nil, &domain.NotFoundError{Entity: "Reports"}
	}

	view := Partition(reports)
	if s.cache != nil {
		s.cache.Set(ctx, cacheKey, view)
	}
	return view, nil
}

// Partition splits reports into pending and solved. Every report lands in
// exactly one bucket. Pending is sorted by severity descending with a stable
// sort, so equal severities keep the store's return order; solved keeps the
// store order untouched.
func Partition(reports []domain.Report) *domain.TriageView {
	view := &domain.TriageView{
		Pending: make([]domain.Report, 0, len(reports)),
		Solved:  make([]domain.Report, 0),
	}
	for _, r := range reports {
		if r.Status == domain.ReportSolved {
			view.Solved = append(view.Solved, r)
		} else {
			view.Pending = append(view.Pending, r)
		}
	}
	sort.SliceStable(view.Pending, func(i, j int) bool {
		return view.Pending[i].Severity > view.Pending[j].Severity
	})
	return view
}
