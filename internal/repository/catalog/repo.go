package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/stayrec/internal/domain"
	"github.com/kailas-cloud/stayrec/internal/domain/activity"
	"github.com/kailas-cloud/stayrec/internal/domain/catalog"
	"github.com/kailas-cloud/stayrec/internal/logger"
	"github.com/kailas-cloud/stayrec/internal/metrics"
)

// snapshotStore is the consumer interface for the catalog feed cache (ISP).
type snapshotStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Vectorizer supplies description vectors from an external embedding model.
type Vectorizer interface {
	Vectors(ctx context.Context, texts []string) ([][]float64, error)
}

const (
	snapshotKey        = "catalog:snapshot"
	defaultSnapshotTTL = 24 * time.Hour
	feedPath           = "/api/activities"
)

// Repo holds the live catalog index and rebuilds it from the booking backend
// feed. The index is swapped atomically; readers always see a complete
// snapshot, and a failed or empty rebuild keeps the previous one serving.
type Repo struct {
	client      *http.Client
	baseURL     string
	store       snapshotStore
	vectorizer  Vectorizer
	snapshotTTL time.Duration
	current     atomic.Pointer[catalog.Index]
}

// New creates a catalog repository fetching from the given backend base URL.
func New(baseURL string, timeout time.Duration) *Repo {
	return &Repo{
		client:      &http.Client{Timeout: timeout},
		baseURL:     baseURL,
		snapshotTTL: defaultSnapshotTTL,
	}
}

// WithSnapshotStore enables feed caching: the last good payload is kept in
// the store and used when the backend is unreachable.
func (r *Repo) WithSnapshotStore(s snapshotStore, ttl time.Duration) *Repo {
	r.store = s
	if ttl > 0 {
		r.snapshotTTL = ttl
	}
	return r
}

// WithVectorizer switches similarity vectors to an external embedding model.
// Vectorizer failures fall back to the built-in term vectors.
func (r *Repo) WithVectorizer(v Vectorizer) *Repo {
	r.vectorizer = v
	return r
}

// Current returns the live index. Fails with domain.ErrCatalogNotReady before
// the first successful rebuild.
func (r *Repo) Current(context.Context) (*catalog.Index, error) {
	ix := r.current.Load()
	if ix == nil {
		return nil, domain.ErrCatalogNotReady
	}
	return ix, nil
}

// Ready reports whether an index is available for serving.
func (r *Repo) Ready(ctx context.Context) error {
	_, err := r.Current(ctx)
	return err
}

// Rebuild fetches the catalog feed, indexes it and swaps the live snapshot.
// An empty or invalid feed leaves the previous snapshot serving.
func (r *Repo) Rebuild(ctx context.Context) error {
	log := logger.FromContext(ctx)

	payload, fromCache, err := r.fetchFeed(ctx)
	if err != nil {
		metrics.CatalogRebuildsTotal.WithLabelValues("fetch_error").Inc()
		return err
	}

	items, dropped, err := decodeFeed(payload)
	if err != nil {
		metrics.CatalogRebuildsTotal.WithLabelValues("decode_error").Inc()
		return err
	}
	if dropped > 0 {
		log.Warn("catalog rows dropped by validation", zap.Int("dropped", dropped))
	}
	if len(items) == 0 {
		metrics.CatalogRebuildsTotal.WithLabelValues("empty").Inc()
		return fmt.Errorf("catalog feed: %w", domain.ErrEmptyCatalog)
	}

	ix, err := r.buildIndex(ctx, items)
	if err != nil {
		metrics.CatalogRebuildsTotal.WithLabelValues("build_error").Inc()
		return fmt.Errorf("build index: %w", err)
	}

	if r.store != nil && !fromCache {
		if err := r.store.SetWithTTL(ctx, snapshotKey, payload, r.snapshotTTL); err != nil {
			log.Warn("catalog snapshot cache write failed", zap.Error(err))
		}
	}

	r.current.Store(ix)
	metrics.CatalogRebuildsTotal.WithLabelValues("success").Inc()
	metrics.CatalogSize.Set(float64(ix.Len()))
	log.Info("catalog index rebuilt",
		zap.Int("activities", ix.Len()),
		zap.Bool("from_cache", fromCache))
	return nil
}

// fetchFeed loads the raw feed from the backend, falling back to the cached
// snapshot when the backend is unreachable.
func (r *Repo) fetchFeed(ctx context.Context) (payload []byte, fromCache bool, err error) {
	payload, fetchErr := r.fetchBackend(ctx)
	if fetchErr == nil {
		return payload, false, nil
	}

	logger.FromContext(ctx).Warn("catalog backend fetch failed", zap.Error(fetchErr))
	metrics.UpstreamFallbacksTotal.WithLabelValues("catalog").Inc()

	if r.store == nil {
		return nil, false, fetchErr
	}
	cached, cacheErr := r.store.Get(ctx, snapshotKey)
	if cacheErr != nil {
		return nil, false, errors.Join(fetchErr, cacheErr)
	}
	return cached, true, nil
}

func (r *Repo) fetchBackend(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+feedPath, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w: %w", domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch catalog: status %d: %w", resp.StatusCode, domain.ErrUpstreamUnavailable)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read catalog body: %w", err)
	}
	return body, nil
}

// buildIndex prefers external embedding vectors when configured and falls
// back to the built-in term vectors on any vectorizer failure.
func (r *Repo) buildIndex(ctx context.Context, items []activity.Activity) (*catalog.Index, error) {
	if r.vectorizer != nil {
		texts := make([]string, len(items))
		for i, a := range items {
			texts[i] = a.Name() + " " + a.Description()
		}
		vecs, err := r.vectorizer.Vectors(ctx, texts)
		if err == nil {
			return catalog.BuildFromVectors(items, vecs)
		}
		logger.FromContext(ctx).Warn("vectorizer failed, using term vectors", zap.Error(err))
		metrics.UpstreamFallbacksTotal.WithLabelValues("vectorizer").Inc()
	}
	return catalog.Build(items)
}
