package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/auth/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app. The /auth paths are a
// compatibility contract with existing clients and must not move under a
// versioned prefix.
func Register(app *fiber.App, auth *handlers.AuthHandler, health *handlers.HealthHandler, authMW fiber.Handler) {
	// Health and readiness endpoints for probes/monitoring
	app.Get("/health", health.Health)
	app.Get("/ready", health.Ready)

	a := app.Group("/auth")
	a.Post("/register", auth.Register)
	a.Post("/login", auth.Login)
	a.Put("/users", authMW, auth.ChangePassword)
	a.Delete("/users", authMW, auth.DeleteAccount)
}
