// Copyright (c) 2026 ClubCompass. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the ClubCompass HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool) and Redis.
//  4. Run database migrations and register the configured schools.
//  5. Wire sessions, tenancy, authorization and domain handlers.
//  6. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/taibuivan/clubcompass/internal/api"
	"github.com/taibuivan/clubcompass/internal/core/club"
	"github.com/taibuivan/clubcompass/internal/core/tag"
	"github.com/taibuivan/clubcompass/internal/platform/config"
	"github.com/taibuivan/clubcompass/internal/platform/constants"
	"github.com/taibuivan/clubcompass/internal/platform/metrics"
	"github.com/taibuivan/clubcompass/internal/platform/middleware"
	"github.com/taibuivan/clubcompass/internal/platform/migration"
	pgstore "github.com/taibuivan/clubcompass/internal/platform/postgres"
	redisstore "github.com/taibuivan/clubcompass/internal/platform/redis"
	"github.com/taibuivan/clubcompass/internal/platform/sec"
	"github.com/taibuivan/clubcompass/internal/school"
	"github.com/taibuivan/clubcompass/internal/session"
	"github.com/taibuivan/clubcompass/internal/users/account"
	"github.com/taibuivan/clubcompass/internal/users/auth"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	log := newLogger(slog.LevelInfo)
	slog.SetDefault(log)

	log.Info("service_initializing", slog.String("version", constants.AppVersion))

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("client_domain", cfg.ClientDomain),
		slog.Any("schools", cfg.Schools),
	)

	// Startup deadline so misconfiguration fails fast.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing_postgres_pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, cfg.SessionStoreTimeout, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing_redis_client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis_close_error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations & Tenants ───────────────────────────────────────────
	must(log, migration.RunUp(startupCtx, cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	schoolStore := school.NewPostgresRepository(pool)
	must(log, schoolStore.Register(startupCtx, cfg.Schools), "register schools")
	schools := school.NewCachedRepository(schoolStore, cfg.SchoolCacheSize, cfg.SchoolCacheTTL)

	// ── 6. Sessions & Access Control ──────────────────────────────────────
	signer, err := sec.NewSigner(cfg.SessionSecret)
	must(log, err, "initialize cookie signer")

	recorder := metrics.New()
	userRepository := auth.NewUserRepository(pool)
	sessions := session.NewManager(session.NewRedisStore(rdb, cfg.SessionStoreTimeout), signer, userRepository)
	authorizer := middleware.NewAuthorizer(sessions, recorder).WithCookieDomain(cfg.ClientDomain)
	tenants := middleware.NewTenantResolver(cfg.ClientDomain, cfg.Schools, schools, recorder)

	// Background context for long-lived workers, cancelled on shutdown.
	appCtx, appCancel := context.WithCancel(context.Background())
	defer appCancel()

	rateLimiter := middleware.NewRateLimiter(constants.DefaultRateLimitRPS, constants.DefaultRateLimitBurst)
	go rateLimiter.RunCleanup(appCtx, constants.RateLimitCleanupInterval, constants.RateLimitClientTTL)

	// ── 7. Health handlers ────────────────────────────────────────────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func(ctx context.Context) error {
			return pgstore.Ping(ctx, pool)
		},
		CheckSessionStore: func(ctx context.Context) error {
			return redisstore.Ping(ctx, rdb)
		},
	})

	// ── 8. Domain Wiring ──────────────────────────────────────────────────
	authService, err := auth.NewService(userRepository, sessions)
	must(log, err, "initialize auth service")

	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Auth:      auth.NewHandler(authService, authorizer, cfg.ClientDomain),
		School:    school.NewHandler(schools),
		Clubs:     club.NewHandler(club.NewService(club.NewPostgresRepository(pool)), authorizer),
		Tags:      tag.NewHandler(tag.NewService(tag.NewPostgresRepository(pool)), authorizer),
		Account:   account.NewHandler(account.NewService(account.NewPostgresRepository(pool, userRepository)), authorizer),
	}

	// ── 9. HTTP Server ────────────────────────────────────────────────────
	server := api.NewServer(cfg, log, api.Dependencies{
		Metrics:     recorder,
		Tenants:     tenants,
		RateLimiter: rateLimiter,
	}, handlers)

	// ── 10. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case sig := <-quit:
		log.Info("shutdown_signal_received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server_startup_error", slog.Any("error", err))
	}

	appCancel()

	log.Info("shutting_down_server", slog.Duration("timeout", constants.ShutdownTimeout))
	if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
		log.Error("shutdown_error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server_stopped_cleanly")
}

// newLogger builds the JSON logger tagged with the application name.
func newLogger(level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("app", "clubcompass"))
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring. After startup, all errors are returned and
// handled explicitly.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup_failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
