package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/kailas-cloud/stayrec/internal/config"
	"github.com/kailas-cloud/stayrec/internal/db"
	dbRedis "github.com/kailas-cloud/stayrec/internal/db/redis"
	logpkg "github.com/kailas-cloud/stayrec/internal/logger"
	"github.com/kailas-cloud/stayrec/internal/metrics"
	catalogrepo "github.com/kailas-cloud/stayrec/internal/repository/catalog"
	historyrepo "github.com/kailas-cloud/stayrec/internal/repository/history"
	profilerepo "github.com/kailas-cloud/stayrec/internal/repository/profile"
	"github.com/kailas-cloud/stayrec/internal/transport/httpapi"
	openaiVec "github.com/kailas-cloud/stayrec/internal/transport/openai"
	healthuc "github.com/kailas-cloud/stayrec/internal/usecase/health"
	profileuc "github.com/kailas-cloud/stayrec/internal/usecase/profile"
	recommenduc "github.com/kailas-cloud/stayrec/internal/usecase/recommend"
	"github.com/kailas-cloud/stayrec/internal/version"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.New(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting stayrec API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("backend_url", cfg.Backend.BaseURL),
		zap.String("similarity_provider", cfg.Similarity.Provider),
	)

	// Register engine metrics explicitly (no init())
	metrics.RegisterEngineMetrics()

	ctx := context.Background()

	// Redis is optional: without it the service runs with no catalog
	// snapshot cache and no visit history.
	var store db.Store
	if len(cfg.Redis.Addrs) > 0 {
		store, err = dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Redis.Addrs,
			Username: cfg.Redis.Username,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			logger.Fatal("Failed to create cache store", zap.Error(err))
		}
		defer store.Close()

		if err := store.WaitForReady(ctx, time.Duration(cfg.Redis.ReadinessTimeout)*time.Second); err != nil {
			logger.Fatal("Cache not ready", zap.Error(err))
		}
		logger.Info("Connected to cache", zap.Strings("addrs", cfg.Redis.Addrs))
	} else {
		logger.Warn("No cache configured, running without snapshots and history")
	}

	backendTimeout := time.Duration(cfg.Backend.TimeoutSec) * time.Second

	// Catalog repository — composition root for the index pipeline.
	catalogRepo := catalogrepo.New(cfg.Backend.BaseURL, backendTimeout)
	if store != nil {
		catalogRepo = catalogRepo.WithSnapshotStore(store, time.Duration(cfg.Redis.SnapshotTTLSec)*time.Second)
	}
	if cfg.Similarity.Provider == "openai" {
		catalogRepo = catalogRepo.WithVectorizer(openaiVec.NewVectorizer(&openaiVec.Config{
			APIKey:     cfg.Similarity.OpenAI.APIKey,
			BaseURL:    cfg.Similarity.OpenAI.BaseURL,
			Model:      cfg.Similarity.OpenAI.Model,
			Dimensions: cfg.Similarity.OpenAI.Dimensions,
			User:       cfg.Similarity.OpenAI.User,
		}))
		logger.Info("Using embedding vectorizer",
			zap.String("model", cfg.Similarity.OpenAI.Model),
			zap.Int("dimensions", cfg.Similarity.OpenAI.Dimensions),
		)
	}

	profileRepo := profilerepo.New(cfg.Backend.BaseURL, backendTimeout)

	// Pass a no-op reader (not a typed nil pointer!) when history storage
	// is absent. Go gotcha: (*historyrepo.Repo)(nil) wrapped in the
	// HistoryReader interface != nil.
	var historyReader recommenduc.HistoryReader = noHistory{}
	var visitRecorder httpapi.VisitRecorder
	if store != nil {
		historyRepo := historyrepo.New(store)
		historyReader = historyRepo
		visitRecorder = historyRepo
	}

	// Use case services
	profileSvc := profileuc.New(profileRepo)
	engine := recommenduc.New(catalogRepo, profileSvc, historyReader).
		WithWeights(cfg.Engine.ContentWeight, cfg.Engine.CollabWeight)
	healthSvc := healthuc.New(store, catalogRepo)

	// Initial index build; a failed first build is not fatal — the refresh
	// loop retries and /health reports catalog: error until it succeeds.
	if err := catalogRepo.Rebuild(ctx); err != nil {
		logger.Error("Initial catalog build failed", zap.Error(err))
	} else {
		logger.Info("Catalog index built")
	}

	refreshCtx, stopRefresh := context.WithCancel(ctx)
	defer stopRefresh()
	go refreshLoop(refreshCtx, catalogRepo, time.Duration(cfg.Engine.RefreshEverySec)*time.Second, logger)

	// HTTP server
	server := httpapi.NewServer(engine, catalogRepo, visitRecorder, healthSvc, logger, cfg.Engine.TopN)

	r := chi.NewRouter()
	for _, mw := range httpapi.Middleware(logger) {
		r.Use(mw)
	}
	r.Use(httpapi.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(httpapi.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
	server.Routes(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")
	stopRefresh()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// refreshLoop re-indexes the catalog on a fixed interval until ctx is done.
func refreshLoop(ctx context.Context, repo *catalogrepo.Repo, every time.Duration, logger *zap.Logger) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := repo.Rebuild(ctx); err != nil {
				logger.Warn("Catalog refresh failed, keeping previous index", zap.Error(err))
			}
		}
	}
}

// noHistory is the HistoryReader used when no cache store is configured.
type noHistory struct{}

func (noHistory) History(context.Context, int64, string) ([]int64, error) { return nil, nil }
