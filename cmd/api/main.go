package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/ech0p1ng/articles-rest/internal/cache"
	hhttp "github.com/ech0p1ng/articles-rest/internal/handler/http"
	harticle "github.com/ech0p1ng/articles-rest/internal/handler/http/article"
	hcomment "github.com/ech0p1ng/articles-rest/internal/handler/http/comment"
	"github.com/ech0p1ng/articles-rest/internal/handler/http/requestid"
	pgRepo "github.com/ech0p1ng/articles-rest/internal/infra/adapter/persistence/postgres"
	"github.com/ech0p1ng/articles-rest/internal/infra/db"
	"github.com/ech0p1ng/articles-rest/internal/observability/logging"
	"github.com/ech0p1ng/articles-rest/internal/resilience/circuitbreaker"
	artUC "github.com/ech0p1ng/articles-rest/internal/usecase/article"
	comUC "github.com/ech0p1ng/articles-rest/internal/usecase/comment"
	"github.com/ech0p1ng/articles-rest/pkg/config"
)

// @title           Articles API
// @version         1.0
// @description     REST API for articles and their comments, with a cached
// @description     single-article read path.

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

func main() {
	logger := logging.NewLogger()
	slog.SetDefault(logger)

	ctx := context.Background()

	database, err := db.Open(ctx)
	if err != nil {
		logger.Error("failed to open database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	if err := db.MigrateUp(database); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}

	store := initCache(ctx, logger)
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close cache", slog.Any("error", err))
		}
	}()

	version := config.GetEnvString("VERSION", "dev")
	handler := setupServer(logger, database, store, version)

	runServer(logger, handler, version)
}

// initCache builds the cache store: Redis when REDIS_ADDR is configured, an
// in-process LRU otherwise. Either way the store sits behind a circuit
// breaker so a misbehaving cache degrades reads instead of stalling them.
func initCache(ctx context.Context, logger *slog.Logger) cache.Store {
	var store cache.Store

	if addr := config.GetEnvString("REDIS_ADDR", ""); addr != "" {
		redisStore, err := cache.NewRedisStore(ctx, cache.RedisConfig{
			Addr:     addr,
			Password: config.GetEnvString("REDIS_PASSWORD", ""),
			DB:       config.GetEnvInt("REDIS_DB", 0),
		})
		if err != nil {
			logger.Error("failed to connect to redis", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("cache: redis", slog.String("addr", addr))
		store = redisStore
	} else {
		capacity := config.GetEnvInt("CACHE_CAPACITY", cache.DefaultMemoryCapacity)
		logger.Info("cache: in-memory", slog.Int("capacity", capacity))
		store = cache.NewMemoryStore(capacity)
	}

	return cache.NewBreakerStore(store, circuitbreaker.New(circuitbreaker.CacheConfig()))
}

// setupServer wires repositories, services, routes, and middleware.
func setupServer(logger *slog.Logger, database *sql.DB, store cache.Store, version string) http.Handler {
	artSvc := artUC.NewService(pgRepo.NewArticleRepo(database), store, logger)
	comSvc := comUC.NewService(pgRepo.NewCommentRepo(database), artSvc)

	ttl := config.GetEnvDuration("CACHE_TTL", artUC.DefaultCacheTTL)
	if err := config.ValidatePositiveDuration(ttl); err != nil {
		logger.Error("invalid CACHE_TTL", slog.Any("error", err))
		os.Exit(1)
	}
	artSvc.TTL = ttl

	mux := http.NewServeMux()
	harticle.Register(mux, artSvc)
	hcomment.Register(mux, comSvc)

	mux.Handle("/healthz", &hhttp.HealthHandler{DB: database, Cache: store, Version: version})
	mux.Handle("/readyz", &hhttp.ReadyHandler{DB: database})
	mux.Handle("/livez", hhttp.LiveHandler{})
	mux.Handle("/metrics", hhttp.MetricsHandler())

	// Innermost to outermost: metrics, body limit, logging, recovery,
	// request id.
	var handler http.Handler = mux
	handler = hhttp.MetricsMiddleware(handler)
	handler = hhttp.LimitRequestBody(1 << 20)(handler)
	handler = hhttp.Logging(logger)(handler)
	handler = hhttp.Recover(logger)(handler)
	handler = requestid.Middleware(handler)
	return handler
}

// runServer starts the HTTP server and blocks until SIGINT/SIGTERM, then
// shuts down gracefully.
func runServer(logger *slog.Logger, handler http.Handler, version string) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	addr := ":" + config.GetEnvString("PORT", "8080")
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", addr),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
