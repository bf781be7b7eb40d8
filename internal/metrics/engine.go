package metrics

import "github.com/prometheus/client_golang/prometheus"

// Engine metrics. Registered explicitly from main (no init()) so tests can
// import this package without polluting the default registry twice.
var (
	// RecommendationsTotal counts recommendations served, by ranking type
	// (hybrid, popular, similar).
	RecommendationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stayrec",
			Name:      "recommendations_total",
			Help:      "Recommendations served, by ranking type",
		},
		[]string{"type"},
	)

	// UpstreamFallbacksTotal counts degradations to fallback behavior, by
	// upstream source (profile, history, catalog).
	UpstreamFallbacksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stayrec",
			Name:      "upstream_fallbacks_total",
			Help:      "Upstream failures absorbed via deterministic fallback",
		},
		[]string{"source"},
	)

	// CatalogRebuildsTotal counts index rebuild attempts, by outcome.
	CatalogRebuildsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stayrec",
			Name:      "catalog_rebuilds_total",
			Help:      "Catalog index rebuild attempts, by outcome",
		},
		[]string{"outcome"},
	)

	// CatalogSize tracks the number of activities in the live index.
	CatalogSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "stayrec",
			Name:      "catalog_activities",
			Help:      "Activities in the live catalog index",
		},
	)

	// VectorizerRequestsTotal counts embedding API calls, by status.
	VectorizerRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stayrec",
			Name:      "vectorizer_requests_total",
			Help:      "Embedding provider requests, by status",
		},
		[]string{"status"},
	)

	// VectorizerRequestDuration observes embedding API latency.
	VectorizerRequestDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "stayrec",
			Name:      "vectorizer_request_duration_seconds",
			Help:      "Embedding provider request duration",
			Buckets:   prometheus.DefBuckets,
		},
	)
)

var engineRegistered = false

// RegisterEngineMetrics registers the engine collectors. Safe to call once.
func RegisterEngineMetrics() {
	if engineRegistered {
		return
	}
	engineRegistered = true
	prometheus.MustRegister(
		RecommendationsTotal,
		UpstreamFallbacksTotal,
		CatalogRebuildsTotal,
		CatalogSize,
		VectorizerRequestsTotal,
		VectorizerRequestDuration,
	)
}
