package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/token-service/internal/api/http"
	"github.com/spec-kit/token-service/internal/api/http/handlers"
	"github.com/spec-kit/token-service/internal/auth"
	"github.com/spec-kit/token-service/internal/config"
	"github.com/spec-kit/token-service/internal/observability"
	"github.com/spec-kit/token-service/internal/persistence"
	"github.com/spec-kit/token-service/internal/repository"
	"github.com/spec-kit/token-service/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger, cfg.App.Env)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	if len(cfg.Auth.JWTSecret) < 64 {
		logger.Warn("AUTH_JWT_SECRET is shorter than 64 bytes; HS512 keys should be at least as long as the hash output")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	tokens, err := auth.NewTokenManager(cfg.Auth.JWTSecret)
	if err != nil {
		logger.Fatal("failed to init token manager", zap.Error(err))
	}

	identityRepo := repository.NewIdentityRepository(pg.PoolHandle())
	verifier, err := service.NewPasswordVerifier(identityRepo, cfg.Auth.BcryptCost)
	if err != nil {
		logger.Fatal("failed to init credential verifier", zap.Error(err))
	}
	authService := service.NewAuthService(verifier, tokens)

	metrics := observability.NewMetrics()
	app := fiber.New(fiber.Config{
		AppName:               cfg.App.Name,
		DisableStartupMessage: true,
	})
	httptransport.RegisterMiddlewares(app, logger, metrics, httptransport.MiddlewareConfig{
		Timeout:          cfg.App.RequestTimeout(),
		CORSAllowOrigins: cfg.App.CORSAllowOrigins,
	})

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health: handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, map[string]handlers.Pinger{"postgres": pg}, metrics),
		Token:  handlers.NewTokenHandler(authService, logger),
		Me:     handlers.NewMeHandler(),
		Gate:   auth.NewGate(authService.TokenManager(), cfg.Auth.Realm, logger),
	})

	go func() {
		logger.Info("listening", zap.String("addr", cfg.App.Addr()), zap.String("env", cfg.App.Env))
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
