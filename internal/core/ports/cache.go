package ports

import (
	"context"

	"github.com/opcare/report-triage-service/internal/core/domain"
)

// TriageCache is a best-effort read-through cache of triage views. Lookups and
// writes must never surface errors to callers; a broken cache degrades to the
// repository path.
type TriageCache interface {
	Get(ctx context.Context, key string) (*domain.TriageView, bool)
	Set(ctx context.Context, key string, view *domain.TriageView)
	Invalidate(ctx context.Context, keys ...string)
}

func DoctorTriageKey(doctorID string) string { return "triage:doctor:" + doctorID }

func UserTriageKey(userID string) string { return "triage:user:" + userID }
