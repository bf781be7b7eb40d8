package recommend

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kailas-cloud/stayrec/internal/domain"
	"github.com/kailas-cloud/stayrec/internal/domain/activity"
	domrec "github.com/kailas-cloud/stayrec/internal/domain/recommend"
	"github.com/kailas-cloud/stayrec/internal/logger"
	"github.com/kailas-cloud/stayrec/internal/metrics"
)

// Service is the recommendation engine facade. All scoring runs on the
// immutable index snapshot taken at the start of a request, so concurrent
// requests need no coordination and identical requests against the same
// catalog state return identical rankings.
type Service struct {
	catalog  CatalogProvider
	profiles ProfileResolver
	history  HistoryReader
	wContent float64
	wCollab  float64
}

// New creates a recommendation service with the default blend weights.
func New(catalog CatalogProvider, profiles ProfileResolver, history HistoryReader) *Service {
	return &Service{
		catalog:  catalog,
		profiles: profiles,
		history:  history,
		wContent: DefaultContentWeight,
		wCollab:  DefaultCollabWeight,
	}
}

// WithWeights overrides the hybrid blend weights. Non-positive values keep
// the defaults.
func (s *Service) WithWeights(content, collab float64) *Service {
	if content > 0 {
		s.wContent = content
	}
	if collab > 0 {
		s.wCollab = collab
	}
	return s
}

// ForUser produces the hybrid ranking for one guest: content scoring against
// the resolved preference profile blended with similarity propagation from
// the guest's history. A missing history or preference upstream degrades the
// ranking, never fails it.
func (s *Service) ForUser(ctx context.Context, userID int64, tenant string, limit int) ([]domrec.Recommendation, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("limit %d: %w", limit, domain.ErrInvalidLimit)
	}
	ix, err := s.catalog.Current(ctx)
	if err != nil {
		return nil, err
	}

	p := s.profiles.Resolve(ctx, userID, tenant)

	history, err := s.history.History(ctx, userID, tenant)
	if err != nil {
		logger.FromContext(ctx).Warn("history unavailable, ranking without it",
			zap.Int64("user_id", userID), zap.Error(err))
		metrics.UpstreamFallbacksTotal.WithLabelValues("history").Inc()
		history = nil
	}
	p.History = history

	content := contentRecommendations(ix, p, limit)
	collab := collaborativeRecommendations(ix, p.History, limit)
	recs := mergeHybrid(ix, content, collab, s.wContent, s.wCollab, limit)

	metrics.RecommendationsTotal.WithLabelValues("hybrid").Add(float64(len(recs)))
	return recs, nil
}

// Popular returns the top-rated catalog activities, the content-agnostic
// ranking used when nothing is known about the guest.
func (s *Service) Popular(ctx context.Context, limit int) ([]domrec.Recommendation, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("limit %d: %w", limit, domain.ErrInvalidLimit)
	}
	ix, err := s.catalog.Current(ctx)
	if err != nil {
		return nil, err
	}

	recs := make([]domrec.Recommendation, 0, limit)
	for _, a := range ix.TopRated(limit) {
		recs = append(recs, domrec.New(a, a.Rating(), []string{domrec.ReasonPopular}))
	}
	metrics.RecommendationsTotal.WithLabelValues("popular").Add(float64(len(recs)))
	return recs, nil
}

// Similar returns the activities most similar to the given one by
// description similarity. Fails with domain.ErrUnknownActivity when the id
// is outside the catalog.
func (s *Service) Similar(ctx context.Context, activityID int64, limit int) ([]domrec.Recommendation, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("limit %d: %w", limit, domain.ErrInvalidLimit)
	}
	ix, err := s.catalog.Current(ctx)
	if err != nil {
		return nil, err
	}

	neighbors, err := ix.Neighbors(activityID, limit)
	if err != nil {
		return nil, err
	}

	recs := make([]domrec.Recommendation, 0, len(neighbors))
	for _, nb := range neighbors {
		recs = append(recs, domrec.New(nb.Activity, nb.Score, []string{domrec.ReasonSimilar}))
	}
	metrics.RecommendationsTotal.WithLabelValues("similar").Add(float64(len(recs)))
	return recs, nil
}

// ClassifyCatalog returns the catalog with resolved categories, optionally
// filtered to one hotel. Classification happened at index build, so this is
// a read-through over the current snapshot.
func (s *Service) ClassifyCatalog(ctx context.Context, hotelID int64) ([]activity.Activity, error) {
	ix, err := s.catalog.Current(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]activity.Activity, 0, ix.Len())
	for _, a := range ix.Activities() {
		if hotelID > 0 && a.HotelID() != hotelID {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}
