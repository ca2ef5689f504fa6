package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/kailas-cloud/vecdex-console/internal/config"
	"github.com/kailas-cloud/vecdex-console/internal/db"
	dbRedis "github.com/kailas-cloud/vecdex-console/internal/db/redis"
	"github.com/kailas-cloud/vecdex-console/internal/domain"
	"github.com/kailas-cloud/vecdex-console/internal/domain/search/params"
	logpkg "github.com/kailas-cloud/vecdex-console/internal/logger"
	"github.com/kailas-cloud/vecdex-console/internal/metrics"
	budgetrepo "github.com/kailas-cloud/vecdex-console/internal/repository/budget"
	collectionrepo "github.com/kailas-cloud/vecdex-console/internal/repository/collection"
	documentrepo "github.com/kailas-cloud/vecdex-console/internal/repository/document"
	presetrepo "github.com/kailas-cloud/vecdex-console/internal/repository/preset"
	"github.com/kailas-cloud/vecdex-console/internal/repository/resultcache"
	searchrepo "github.com/kailas-cloud/vecdex-console/internal/repository/search"
	chiTransport "github.com/kailas-cloud/vecdex-console/internal/transport/chi"
	gen "github.com/kailas-cloud/vecdex-console/internal/transport/generated"
	"github.com/kailas-cloud/vecdex-console/internal/usecase/budget"
	collectionuc "github.com/kailas-cloud/vecdex-console/internal/usecase/collection"
	"github.com/kailas-cloud/vecdex-console/internal/usecase/dialog"
	documentuc "github.com/kailas-cloud/vecdex-console/internal/usecase/document"
	healthuc "github.com/kailas-cloud/vecdex-console/internal/usecase/health"
	"github.com/kailas-cloud/vecdex-console/internal/usecase/presetsync"
	"github.com/kailas-cloud/vecdex-console/internal/usecase/query"
	usageuc "github.com/kailas-cloud/vecdex-console/internal/usecase/usage"
	"github.com/kailas-cloud/vecdex-console/internal/version"
)

// defaultVectorDim is reported for collections whose metadata predates the dimension field.
const defaultVectorDim = 1024

// resultCachePrefix namespaces console-owned cache keys on the administered cluster.
const resultCachePrefix = "console:"

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting vecdex console",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("cluster", cfg.Search.Cluster),
		zap.Strings("db_addrs", cfg.Database.Addrs),
	)

	var store db.Store
	store, err = dbRedis.NewStore(dbRedis.Config{
		Addrs:      cfg.Database.Addrs,
		Username:   cfg.Database.Username,
		Password:   cfg.Database.Password,
		ClientName: "vecdex-console",
	})
	if err != nil {
		logger.Fatal("Failed to create database store", zap.Error(err))
	}
	defer store.Close()

	// Wait for database to be ready
	ctx := context.Background()
	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Database not ready", zap.Error(err))
	}
	logger.Info("Connected to database")

	// Register console metrics explicitly (no init())
	metrics.RegisterConsoleMetrics()

	keys := domain.Keys{Prefix: cfg.Storage.KeyPrefix}

	// Repositories
	collRepo := collectionrepo.New(store, keys, defaultVectorDim)
	docRepo := documentrepo.New(store, keys)
	presetRepo := presetrepo.New(store, cfg.Presets.KeyPrefix)

	// Search budget: counted always, persisted and enforced only when a limit is set
	budgetCfg := cfg.Search.Budget
	tracker := budget.NewTracker(cfg.Search.Cluster,
		budgetCfg.DailyQueryLimit, budgetCfg.MonthlyQueryLimit, budget.Action(budgetCfg.Action), logger)
	if budgetCfg.Enabled() {
		tracker.WithStore(ctx, budgetrepo.New(store, budgetCfg.KeyPrefix))
	}

	fetcher := buildFetcher(cfg.Search, store, keys, tracker, logger)

	// Dialog controller: one process-wide prompt
	dialogRegistry, err := dialog.NewRegistry(nil)
	if err != nil {
		logger.Fatal("Invalid dialog slots", zap.Error(err))
	}
	dialogs := dialog.New(dialogRegistry, logger).WithMetrics(metrics.DialogOutcomesTotal)

	// Search surfaces
	searchRegistry, err := query.NewRegistry(nil)
	if err != nil {
		logger.Fatal("Invalid search slots", zap.Error(err))
	}
	newStore := func(collection string) *query.Store {
		return query.New(cfg.Search.Cluster, collection, fetcher,
			query.WithDebounce(time.Duration(cfg.Search.DebounceMS)*time.Millisecond),
			query.WithFetchTimeout(time.Duration(cfg.Search.FetchTimeoutSec)*time.Second),
			query.WithParams(params.Params{PerPage: cfg.Search.DefaultPerPage}),
			query.WithLogger(logger.With(zap.String("collection", collection))),
			query.WithMetrics(metrics.SearchFetchesTotal, metrics.SearchFetchDuration),
		)
	}
	surfaces := query.NewSurfaces(searchRegistry, newStore, cfg.Search.MaxSurfaces, logger).
		WithMetrics(metrics.OpenSurfaces)
	defer surfaces.CloseAll()

	// Use case services
	collSvc := collectionuc.New(collRepo, dialogs, logger)
	docSvc := documentuc.New(docRepo, collSvc, dialogs, logger)
	presetSvc := presetsync.New(presetRepo, logger)
	healthSvc := healthuc.New(store, store)
	usageSvc := usageuc.New(tracker)

	server := chiTransport.NewServer(collSvc, docSvc, dialogs, surfaces, presetSvc, healthSvc, usageSvc, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware("/metrics"))
	gen.HandlerWithOptions(server, gen.ChiServerOptions{
		BaseRouter: r,
		ErrorHandlerFunc: func(w http.ResponseWriter, _ *http.Request, err error) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(gen.ErrorResponse{
				Code:    gen.ErrorResponseCodeBadRequest,
				Message: "invalid request",
			})
		},
	})

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
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// buildFetcher assembles the retrieval chain: search repository behind the
// budget guard, optionally behind the result cache. Cache hits cost no budget.
func buildFetcher(
	cfg config.SearchConfig, store db.Store, keys domain.Keys, tracker *budget.Tracker, logger *zap.Logger,
) query.Fetcher {
	var fetcher query.Fetcher = budget.NewGuardedFetcher(
		searchrepo.New(store, keys, cfg.MaxFacetValues),
		tracker, metrics.SearchBudgetRemaining, logger,
	)
	if cfg.ResultCacheTTLSec > 0 {
		fetcher = resultcache.New(
			fetcher, store, resultCachePrefix,
			time.Duration(cfg.ResultCacheTTLSec)*time.Second,
			metrics.ResultCacheTotal, logger,
		)
		logger.Info("Result cache enabled", zap.Int("ttl_sec", cfg.ResultCacheTTLSec))
	}
	return fetcher
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"code":    "internal_error",
						"message": "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line, one per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
