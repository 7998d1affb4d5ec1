// @title         auth-service API
// @version       1.0
// @description   Credential-issuance microservice: account registration, login with bearer session tokens, self-service password rotation and account deletion.
// @BasePath      /
// @schemes       http
// @host          localhost:80
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Session token issued by /auth/login, sent as "Bearer <JWT>".
package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	swagger "github.com/gofiber/swagger"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "github.com/artem13815/auth/docs"

	// internal imports
	httpapi "github.com/artem13815/auth/api/http"
	"github.com/artem13815/auth/api/http/handlers"
	"github.com/artem13815/auth/pkg/auth"
	"github.com/artem13815/auth/pkg/config"
	"github.com/artem13815/auth/pkg/health"
	healthpg "github.com/artem13815/auth/pkg/health/checkers"
	"github.com/artem13815/auth/pkg/observability"
	pgrepo "github.com/artem13815/auth/pkg/repository/postgres"
	"github.com/artem13815/auth/pkg/security/jwt"
	"github.com/artem13815/auth/pkg/security/password"
	"github.com/artem13815/auth/pkg/storage/postgres"
)

func main() {
	// Refuses to start without SECRET_KEY or DATABASE_URL.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := observability.NewLogger(cfg.LogLevel)
	metrics := observability.NewMetrics()

	ctx := context.Background()
	if err := postgres.Migrate(ctx, cfg.DatabaseURL); err != nil {
		logger.Fatalf("migrate: %v", err)
	}
	pool, err := postgres.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("postgres connect: %v", err)
	}
	defer pool.Close()

	// Wire dependencies (Clean Architecture)
	accountRepo := pgrepo.NewAccountRepository(pool)
	issuer := jwt.NewIssuer(cfg.SecretKey, cfg.TokenTTL)
	hasher := password.NewHasher(cfg.BcryptCost)

	authUC := auth.NewAuthService(accountRepo, hasher, issuer)
	authHandler := handlers.NewAuthHandler(authUC, logger)

	// Health service: compose checkers
	readiness := health.NewService(healthpg.NewPostgresChecker(pool))
	healthHandler := handlers.NewHealthHandler(readiness)

	app := fiber.New()

	// Correlation id first so every later log line can carry it.
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(recover.New())
	app.Use(httpapi.NewTracking(logger, metrics))

	// JWT auth middleware for protected routes
	authMW := jwt.NewAuthMiddleware(issuer)

	// Register routes
	httpapi.Register(app, authHandler, healthHandler, authMW)

	// Prometheus scrape endpoint and Swagger UI
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))
	app.Get("/apidoc/*", swagger.HandlerDefault)

	// Start server
	logger.WithField("addr", cfg.ListenAddr).Info("HTTP server listening")
	if err := app.Listen(cfg.ListenAddr); err != nil {
		logger.Fatalf("server stopped: %v", err)
	}
}
