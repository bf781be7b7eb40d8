package profile

import (
	"context"

	"go.uber.org/zap"

	"github.com/kailas-cloud/stayrec/internal/domain/activity"
	"github.com/kailas-cloud/stayrec/internal/domain/profile"
	"github.com/kailas-cloud/stayrec/internal/logger"
	"github.com/kailas-cloud/stayrec/internal/metrics"
)

// Service resolves guest preference profiles. Resolution never fails: when
// the upstream is unreachable or returns garbage, the deterministic synthetic
// profile derived from the user id takes over, so repeated requests for the
// same guest stay idempotent.
type Service struct {
	fetcher Fetcher
}

// New creates a profile resolver. fetcher may be nil, in which case every
// resolution is synthetic.
func New(fetcher Fetcher) *Service {
	return &Service{fetcher: fetcher}
}

// Resolve returns a usable profile for the guest, always.
func (s *Service) Resolve(ctx context.Context, userID int64, tenant string) profile.Profile {
	if s.fetcher == nil {
		return profile.Synthetic(userID)
	}

	p, err := s.fetcher.Fetch(ctx, userID, tenant)
	if err != nil {
		logger.FromContext(ctx).Warn("preference upstream unavailable, using synthetic profile",
			zap.Int64("user_id", userID), zap.Error(err))
		metrics.UpstreamFallbacksTotal.WithLabelValues("profile").Inc()
		return profile.Synthetic(userID)
	}

	return normalize(p, userID)
}

// normalize fills the gaps of a sparse upstream profile with the documented
// defaults. The age bracket is always derived from the id; it is
// informational only and the upstream does not carry it.
func normalize(p profile.Profile, userID int64) profile.Profile {
	p.UserID = userID

	if len(p.Interests) == 0 {
		p.Interests = []activity.Category{activity.Cultural, activity.Culinary}
	}
	if !p.Budget.IsValid() {
		p.Budget = profile.BudgetMedium
	}

	switch {
	case userID%10 < 3:
		p.Age = profile.AgeYoung
	case userID%10 < 7:
		p.Age = profile.AgeAdult
	default:
		p.Age = profile.AgeSenior
	}
	return p
}
