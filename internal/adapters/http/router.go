package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/quotevault/quotevault/internal/adapters/http/handlers"
	"github.com/quotevault/quotevault/internal/adapters/http/middleware"
	"github.com/quotevault/quotevault/internal/platform/config"
	"github.com/quotevault/quotevault/internal/platform/telemetry"
)

// DefaultRequestTimeout is the default timeout for API requests.
const DefaultRequestTimeout = 30 * time.Second

// RouterConfig contains configuration for setting up the router.
type RouterConfig struct {
	// Logger is the structured logger for request logging.
	Logger *slog.Logger

	// AuthConfig holds the token verification settings.
	AuthConfig *config.AuthConfig

	// AppConfig contains application configuration.
	AppConfig *config.AppConfig

	// HealthHandler handles health check endpoints.
	HealthHandler *handlers.HealthHandler

	// Catalog handles catalog read endpoints.
	Catalog *handlers.CatalogHandler

	// Home handles the aggregated home screen endpoint.
	Home *handlers.HomeHandler

	// Favorites handles favorite mark endpoints.
	Favorites *handlers.FavoriteHandler

	// Collections handles collection endpoints.
	Collections *handlers.CollectionHandler

	// Session handles the authenticated identity endpoint.
	Session *handlers.SessionHandler

	// Timeout is the default request timeout.
	Timeout time.Duration
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Middleware is applied in the following order (first to last):
//  1. Recovery - catch panics first
//  2. Request ID - generate/extract request ID
//  3. Correlation ID - handle distributed tracing correlation
//  4. OpenTelemetry - tracing and metrics
//  5. Logging - request logging
//  6. Auth - resolve the session from the Authorization header
//  7. Timeout - request deadline on the API group
//
// Route groups:
//   - /-/ (internal): Health endpoints, no auth required
//   - /api/v1/ (public API): catalog reads available anonymously,
//     favorites and collections behind RequireSession
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.Use(
		middleware.Recovery(cfg.Logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
		telemetry.Middleware(cfg.AppConfig.Name),
		middleware.Logging(cfg.Logger),
	)

	// Health endpoints stay outside auth and timeout so probes never
	// depend on business middleware.
	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutesOnEngine(engine)
	}

	apiV1 := engine.Group("/api/v1")
	apiV1.Use(middleware.Auth(cfg.AuthConfig))

	if cfg.Timeout > 0 {
		apiV1.Use(middleware.SimpleTimeout(cfg.Timeout))
	}

	setupAPIRoutes(apiV1, cfg)
}

// setupAPIRoutes registers business API routes.
func setupAPIRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	// Catalog reads work for anonymous callers; the favorite overlay is
	// simply empty without a session.
	if cfg.Catalog != nil {
		cfg.Catalog.RegisterRoutes(rg)
	}

	if cfg.Home != nil {
		cfg.Home.RegisterRoutes(rg)
	}

	// Per-user state requires an authenticated session.
	authed := rg.Group("")
	authed.Use(middleware.RequireSession())

	if cfg.Favorites != nil {
		cfg.Favorites.RegisterRoutes(authed)
	}

	if cfg.Collections != nil {
		cfg.Collections.RegisterRoutes(authed)
	}

	if cfg.Session != nil {
		cfg.Session.RegisterRoutes(authed)
	}
}

// SetupMinimalRouter sets up a minimal router with just health endpoints.
// Useful for testing or lightweight deployments.
func SetupMinimalRouter(engine *gin.Engine, logger *slog.Logger, healthHandler *handlers.HealthHandler) {
	engine.Use(
		middleware.Recovery(logger),
		middleware.RequestID(),
	)

	if healthHandler != nil {
		healthHandler.RegisterHealthRoutesOnEngine(engine)
	}
}
