// Package main is the entry point for the quotevault service.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/quotevault/quotevault/internal/adapters/clients"
	"github.com/quotevault/quotevault/internal/adapters/clients/postgrest"
	httpadapter "github.com/quotevault/quotevault/internal/adapters/http"
	"github.com/quotevault/quotevault/internal/adapters/http/handlers"
	"github.com/quotevault/quotevault/internal/adapters/http/middleware"
	"github.com/quotevault/quotevault/internal/adapters/notify"
	"github.com/quotevault/quotevault/internal/app"
	"github.com/quotevault/quotevault/internal/platform/config"
	"github.com/quotevault/quotevault/internal/platform/logging"
	"github.com/quotevault/quotevault/internal/platform/telemetry"
	"github.com/quotevault/quotevault/internal/ports"
	"github.com/quotevault/quotevault/internal/scheduler"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	// Version is the semantic version of the service.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "unknown"

	// BuildTime is the timestamp when the binary was built.
	BuildTime = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// 1. Determine profile from environment
	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	// 2. Load and validate configuration (fail fast)
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// 3. Initialize logging
	logger := logging.New(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
	slog.SetDefault(logger)
	logging.SetDefault(logger)

	logger.Info("starting service",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
	)

	// 4. Initialize telemetry (noop if disabled)
	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		if shutdownErr := telProvider.Shutdown(ctx); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	// 5. Create health registry
	healthRegistry := ports.NewHealthRegistry()

	// 6. Create the PostgREST HTTP client. The anon key rides on every
	// request; Authorization carries the caller's JWT when the store put
	// one there, otherwise the anon key stands in so RLS still applies.
	anonKey := cfg.Supabase.AnonKey
	httpClient, err := clients.New(&clients.Config{
		BaseURL:     cfg.Supabase.BaseURL,
		ServiceName: "postgrest",
		Timeout:     cfg.Client.Timeout,
		Retry:       cfg.Client.Retry,
		Circuit:     cfg.Client.CircuitBreaker,
		AuthFunc: func(req *http.Request) {
			req.Header.Set("apikey", anonKey)
			if req.Header.Get("Authorization") == "" {
				req.Header.Set("Authorization", "Bearer "+anonKey)
			}
		},
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("creating HTTP client: %w", err)
	}

	// 7. Create the store adapter and register its health check
	store := postgrest.NewStore(httpClient)
	if err := healthRegistry.Register(store); err != nil {
		return fmt.Errorf("registering store health check: %w", err)
	}

	// 8. Create application services
	session := middleware.ContextSessionProvider{}
	flags := ports.NewStaticFlags(map[string]bool{
		app.FlagServerSideRandom: cfg.Catalog.ServerSideRandom,
	})

	favoriteService := app.NewFavoriteService(app.FavoriteServiceConfig{
		Store:   store.Favorites(),
		Quotes:  store.Quotes(),
		Session: session,
		Logger:  logger,
	})

	catalogService := app.NewCatalogService(app.CatalogServiceConfig{
		Quotes:    store.Quotes(),
		Favorites: favoriteService,
		Flags:     flags,
		PageSize:  cfg.Catalog.PageSize,
		Logger:    logger,
	})

	collectionService := app.NewCollectionService(app.CollectionServiceConfig{
		Store:     store.Collections(),
		Quotes:    store.Quotes(),
		Favorites: favoriteService,
		Session:   session,
		Logger:    logger,
	})

	// 9. Create handlers
	buildInfo := handlers.NewBuildInfo(Version, Commit, BuildTime)

	// 10. Create HTTP server and router
	server := httpadapter.New(&cfg.Server, logger)
	httpadapter.SetupRouter(server.Engine(), httpadapter.RouterConfig{
		Logger:        logger,
		AuthConfig:    &cfg.Auth,
		AppConfig:     &cfg.App,
		HealthHandler: handlers.NewHealthHandler(healthRegistry, buildInfo),
		Catalog:       handlers.NewCatalogHandler(catalogService),
		Home:          handlers.NewHomeHandler(catalogService, logger),
		Favorites:     handlers.NewFavoriteHandler(favoriteService),
		Collections:   handlers.NewCollectionHandler(collectionService),
		Session:       handlers.NewSessionHandler(),
		Timeout:       httpadapter.DefaultRequestTimeout,
	})

	// 11. Start the daily quote job if enabled
	jobCtx, stopJob := context.WithCancel(ctx)
	defer stopJob()

	if cfg.Scheduler.Enabled {
		job := scheduler.NewDailyQuote(scheduler.Config{
			Picker:      catalogService,
			Notifier:    notify.NewLogNotifier(logger),
			Interval:    cfg.Scheduler.Interval,
			MaxAttempts: cfg.Scheduler.MaxAttempts,
			Logger:      logger,
		})
		go job.Run(jobCtx)
	}

	// 12. Start server (non-blocking)
	serverErr := server.Start()

	// 13. Wait for shutdown signal
	return waitForShutdown(ctx, logger, server, serverErr, cfg.Server.ShutdownTimeout)
}

// waitForShutdown blocks until a shutdown signal is received or server error occurs.
// It then performs graceful shutdown of the HTTP server.
func waitForShutdown(
	ctx context.Context,
	logger *slog.Logger,
	server *httpadapter.Server,
	serverErr <-chan error,
	shutdownTimeout time.Duration,
) error {
	// Listen for OS signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		// Server error during startup or runtime
		return fmt.Errorf("server error: %w", err)

	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	}

	// Create shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	// Graceful shutdown sequence
	logger.Info("initiating graceful shutdown",
		slog.Duration("timeout", shutdownTimeout),
	)

	// Stop accepting new requests, drain in-flight
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("shutdown complete")

	return nil
}
