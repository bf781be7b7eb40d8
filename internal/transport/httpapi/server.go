package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/stayrec/internal/domain"
	"github.com/kailas-cloud/stayrec/internal/domain/activity"
	domrec "github.com/kailas-cloud/stayrec/internal/domain/recommend"
	"github.com/kailas-cloud/stayrec/internal/metrics"
	healthuc "github.com/kailas-cloud/stayrec/internal/usecase/health"
)

const tenantHeader = "X-Tenant-ID"

// Recommender is the engine surface the transport consumes (ISP).
type Recommender interface {
	ForUser(ctx context.Context, userID int64, tenant string, limit int) ([]domrec.Recommendation, error)
	Popular(ctx context.Context, limit int) ([]domrec.Recommendation, error)
	Similar(ctx context.Context, activityID int64, limit int) ([]domrec.Recommendation, error)
	ClassifyCatalog(ctx context.Context, hotelID int64) ([]activity.Activity, error)
}

// Rebuilder triggers a catalog re-index.
type Rebuilder interface {
	Rebuild(ctx context.Context) error
}

// VisitRecorder appends to a guest's visit history. Optional: nil disables
// the history endpoint.
type VisitRecorder interface {
	Record(ctx context.Context, userID int64, tenant string, activityID int64) error
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server is the HTTP API for the recommendation engine.
type Server struct {
	engine        Recommender
	rebuilder     Rebuilder
	visits        VisitRecorder
	health        *healthuc.Service
	logger        *zap.Logger
	defaultLimit  int
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	engine Recommender,
	rebuilder Rebuilder,
	visits VisitRecorder,
	health *healthuc.Service,
	logger *zap.Logger,
	defaultLimit int,
) *Server {
	if defaultLimit <= 0 {
		defaultLimit = 10
	}
	s := &Server{
		engine:       engine,
		rebuilder:    rebuilder,
		visits:       visits,
		health:       health,
		logger:       logger,
		defaultLimit: defaultLimit,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrInvalidLimit, http.StatusBadRequest, codeBadRequest),
		sentinelHandler(domain.ErrUnknownActivity, http.StatusNotFound, codeNotFound),
		sentinelHandler(domain.ErrCatalogNotReady, http.StatusServiceUnavailable, codeCatalogNotReady),
		sentinelHandler(domain.ErrEmptyCatalog, http.StatusUnprocessableEntity, codeEmptyCatalog),
		sentinelHandler(domain.ErrUpstreamUnavailable, http.StatusBadGateway, codeUpstreamError),
	}
	return s
}

// Routes mounts all endpoints on the given router.
func (s *Server) Routes(r chi.Router) {
	r.Get("/health", s.healthCheck)
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/recommendations/user/{userID}", s.recommendForUser)
		r.Get("/recommendations/popular", s.recommendPopular)
		r.Get("/recommendations/similar/{activityID}", s.recommendSimilar)
		r.Get("/catalog/hotel/{hotelID}", s.classifyCatalog)
		r.Get("/categories", s.listCategories)
		r.Post("/catalog/rebuild", s.rebuildCatalog)
		r.Post("/users/{userID}/history", s.recordVisit)
	})
}

// recommendForUser handles GET /api/v1/recommendations/user/{userID}.
func (s *Server) recommendForUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userID")
	if !ok {
		return
	}
	limit, ok := s.limitParam(w, r)
	if !ok {
		return
	}

	recs, err := s.engine.ForUser(r.Context(), userID, r.Header.Get(tenantHeader), limit)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, userRecommendationsResponse{
		UserID:          userID,
		Recommendations: recommendationsToDTO(recs),
		Count:           len(recs),
	})
}

// recommendPopular handles GET /api/v1/recommendations/popular.
func (s *Server) recommendPopular(w http.ResponseWriter, r *http.Request) {
	limit, ok := s.limitParam(w, r)
	if !ok {
		return
	}

	recs, err := s.engine.Popular(r.Context(), limit)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, typedRecommendationsResponse{
		Recommendations: recommendationsToDTO(recs),
		Count:           len(recs),
		Type:            "popular",
	})
}

// recommendSimilar handles GET /api/v1/recommendations/similar/{activityID}.
func (s *Server) recommendSimilar(w http.ResponseWriter, r *http.Request) {
	activityID, ok := pathID(w, r, "activityID")
	if !ok {
		return
	}
	limit, ok := s.limitParam(w, r)
	if !ok {
		return
	}

	recs, err := s.engine.Similar(r.Context(), activityID, limit)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, similarRecommendationsResponse{
		BaseItemID:      activityID,
		Recommendations: recommendationsToDTO(recs),
		Count:           len(recs),
		Type:            "similar",
	})
}

// classifyCatalog handles GET /api/v1/catalog/hotel/{hotelID}.
func (s *Server) classifyCatalog(w http.ResponseWriter, r *http.Request) {
	hotelID, ok := pathID(w, r, "hotelID")
	if !ok {
		return
	}

	items, err := s.engine.ClassifyCatalog(r.Context(), hotelID)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	dtos := make([]activityDTO, len(items))
	for i, a := range items {
		dtos[i] = activityToDTO(a)
	}
	writeJSON(w, http.StatusOK, catalogResponse{
		HotelID:    hotelID,
		Activities: dtos,
		Count:      len(dtos),
	})
}

// listCategories handles GET /api/v1/categories: the fixed category set with
// example activities from the live catalog.
func (s *Server) listCategories(w http.ResponseWriter, r *http.Request) {
	items, err := s.engine.ClassifyCatalog(r.Context(), 0)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	const maxExamples = 3
	examples := make(map[activity.Category][]string)
	for _, a := range items {
		if len(examples[a.Category()]) < maxExamples {
			examples[a.Category()] = append(examples[a.Category()], a.Name())
		}
	}

	out := make([]categoryDTO, 0, len(activity.Categories()))
	for _, c := range activity.Categories() {
		ex := examples[c]
		if ex == nil {
			ex = []string{}
		}
		out = append(out, categoryDTO{Category: string(c), Examples: ex})
	}
	writeJSON(w, http.StatusOK, categoriesResponse{Categories: out})
}

// rebuildCatalog handles POST /api/v1/catalog/rebuild.
func (s *Server) rebuildCatalog(w http.ResponseWriter, r *http.Request) {
	if err := s.rebuilder.Rebuild(r.Context()); err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "rebuilt"})
}

// recordVisit handles POST /api/v1/users/{userID}/history.
func (s *Server) recordVisit(w http.ResponseWriter, r *http.Request) {
	if s.visits == nil {
		writeError(w, http.StatusNotImplemented, codeBadRequest, "history storage is not configured")
		return
	}
	userID, ok := pathID(w, r, "userID")
	if !ok {
		return
	}

	var req visitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.ActivityID <= 0 {
		writeError(w, http.StatusBadRequest, codeBadRequest, "activity_id must be positive")
		return
	}

	if err := s.visits.Record(r.Context(), userID, r.Header.Get(tenantHeader), req.ActivityID); err != nil {
		s.handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// healthCheck handles GET /health.
func (s *Server) healthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	status := http.StatusOK
	if report.Status != healthuc.Healthy {
		status = http.StatusServiceUnavailable
	}

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}
	writeJSON(w, status, healthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// pathID parses a positive int64 path parameter, writing a 400 on failure.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, codeBadRequest, name+" must be a positive integer")
		return 0, false
	}
	return id, true
}

// limitParam parses the optional limit query parameter.
func (s *Server) limitParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return s.defaultLimit, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "limit must be an integer")
		return 0, false
	}
	return limit, true
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}

// Error codes returned to clients.
const (
	codeBadRequest      = "bad_request"
	codeNotFound        = "not_found"
	codeCatalogNotReady = "catalog_not_ready"
	codeEmptyCatalog    = "empty_catalog"
	codeUpstreamError   = "upstream_error"
	codeInternalError   = "internal_error"
)

// safeDomainMessage returns a sentinel error message for the client without
// exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrInvalidLimit,
		domain.ErrUnknownActivity,
		domain.ErrCatalogNotReady,
		domain.ErrEmptyCatalog,
		domain.ErrUpstreamUnavailable,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code string) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}

// Middleware assembles the standard chain for the service router.
func Middleware(logger *zap.Logger) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		jsonRecoverer(logger),
		chiMiddleware.RequestID,
		wideEventMiddleware(logger),
		metrics.Middleware(),
	}
}
