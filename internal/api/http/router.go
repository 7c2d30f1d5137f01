package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/token-service/internal/api/http/handlers"
	"github.com/spec-kit/token-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health *handlers.HealthHandler
	Token  *handlers.TokenHandler
	Me     *handlers.MeHandler
	Gate   *auth.Gate
}

// RegisterRoutes wires HTTP routes. The gate runs for every API request but
// only endpoints wrapped in Gate.RequireAuthenticated refuse anonymous callers.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/health/metrics", cfg.Health.Metrics)

	api := app.Group("/api/v1", cfg.Gate.Handle)
	api.Post("/token", cfg.Token.Issue)
	api.Post("/GetToken", cfg.Token.Issue)

	api.Get("/me", cfg.Gate.RequireAuthenticated(), cfg.Me.Show)
}
