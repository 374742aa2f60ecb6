// Copyright (c) 2026 SomaliTag. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the SomaliTag directory server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Load and validate the catalog (builtin, YAML file, or PostgreSQL snapshot).
//  4. Open the preference backend (cookies, or Redis keyed by a visitor cookie).
//  5. Wire HTTP handlers.
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

	goredis "github.com/redis/go-redis/v9"

	"github.com/taibuivan/somalitag/internal/api"
	"github.com/taibuivan/somalitag/internal/catalog"
	"github.com/taibuivan/somalitag/internal/directory"
	"github.com/taibuivan/somalitag/internal/platform/config"
	"github.com/taibuivan/somalitag/internal/platform/constants"
	"github.com/taibuivan/somalitag/internal/platform/migration"
	pgstore "github.com/taibuivan/somalitag/internal/platform/postgres"
	redisstore "github.com/taibuivan/somalitag/internal/platform/redis"
	"github.com/taibuivan/somalitag/internal/preference"
	"github.com/taibuivan/somalitag/internal/profile"
	"github.com/taibuivan/somalitag/internal/web"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
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
		slog.String("catalog_source", cfg.CatalogSource),
		slog.String("preference_backend", cfg.PreferenceBackend),
	)

	// Startup deadline so misconfiguration is caught quickly rather than hanging.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. Catalog ────────────────────────────────────────────────────────
	source, closeSource, err := openCatalogSource(startupCtx, cfg, log)
	must(log, err, "open catalog source")

	dataCatalog, err := catalog.Load(startupCtx, source, log)
	closeSource()
	must(log, err, "load catalog")

	controller := directory.NewController(dataCatalog)

	checks := []api.Check{{
		Name: "catalog",
		Run: func(context.Context) error {
			if dataCatalog.Counts().Profiles == 0 {
				return errors.New("catalog has no profiles")
			}
			return nil
		},
	}}

	// ── 4. Preferences ────────────────────────────────────────────────────
	var (
		backend       preference.Backend = preference.CookieBackend{TTL: cfg.PreferenceTTL, Secure: cfg.IsProduction()}
		webMiddleware []func(http.Handler) http.Handler
	)

	switch cfg.PreferenceBackend {
	case config.PreferenceBackendMemory:
		backend = preference.NewMemoryBackend()
		webMiddleware = append(webMiddleware, preference.VisitorID(cfg.PreferenceTTL, cfg.IsProduction()))

	case config.PreferenceBackendRedis:
		rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		must(log, err, "connect to redis")
		defer closeRedis(log, rdb)

		backend = preference.NewRedisBackend(rdb, cfg.PreferenceTTL)
		webMiddleware = append(webMiddleware, preference.VisitorID(cfg.PreferenceTTL, cfg.IsProduction()))
		checks = append(checks, api.Check{
			Name: "redis",
			Run: func(ctx context.Context) error {
				return redisstore.Ping(ctx, rdb)
			},
		})
	}

	// ── 5. Domain Wiring ──────────────────────────────────────────────────
	webHandler, err := web.NewHandler(controller, backend, log)
	must(log, err, "initialize web handler")

	profileHandler := profile.NewHandler(profile.NewService(controller, log))

	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{Checks: checks}, log)

	// ── 6. HTTP Server ────────────────────────────────────────────────────
	rootCtx, rootCancel := context.WithCancel(context.Background())
	defer rootCancel()

	server := api.NewServer(rootCtx, cfg, log, api.Handlers{
		Liveness:      liveness,
		Readiness:     readiness,
		Web:           webHandler,
		WebMiddleware: webMiddleware,
		Profile:       profileHandler,
	})

	// ── 7. Graceful Shutdown ──────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// openCatalogSource selects the configured catalog source. The returned close
// function releases anything the source holds once the snapshot is loaded.
func openCatalogSource(ctx context.Context, cfg *config.Config, log *slog.Logger) (catalog.Source, func(), error) {
	switch cfg.CatalogSource {
	case config.CatalogSourceYAML:
		return catalog.YAMLSource{Path: cfg.CatalogPath}, func() {}, nil

	case config.CatalogSourcePostgres:
		if err := migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log); err != nil {
			return nil, nil, err
		}

		pool, err := pgstore.NewPool(ctx, cfg.DatabaseURL, pgstore.Options{ReadOnly: true}, log)
		if err != nil {
			return nil, nil, err
		}

		return catalog.NewPostgresSource(pool), func() {
			log.Info("closing postgres pool")
			pool.Close()
		}, nil

	default:
		return catalog.ShippedSource{}, func() {}, nil
	}
}

func newLogger(level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("app", constants.AppName))
}

func closeRedis(log *slog.Logger, rdb *goredis.Client) {
	log.Info("closing redis client")
	if err := rdb.Close(); err != nil {
		log.Error("redis close error", slog.Any("error", err))
	}
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring. After startup, all errors are returned and
// handled explicitly.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
