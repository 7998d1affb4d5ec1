package jwt

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// SubjectKey is the fiber.Ctx local under which the middleware stores the
// validated subject email.
const SubjectKey = "subjectEmail"

// NewAuthMiddleware returns a Fiber middleware that requires a valid
// "Bearer <jwt>" Authorization header. A missing header, a different scheme
// or an invalid/expired token all end the request with 403 before the
// handler runs.
func NewAuthMiddleware(issuer *Issuer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return failed(c, "invalid authorization")
		}

		scheme, credentials, found := strings.Cut(authHeader, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") {
			return failed(c, "invalid authentication scheme")
		}

		claims, err := issuer.Validate(strings.TrimSpace(credentials))
		if err != nil {
			return failed(c, "expired token or invalid token")
		}

		c.Locals(SubjectKey, claims.Email)
		return c.Next()
	}
}

// Subject returns the validated subject email stored by the middleware, or ""
// when the request did not pass through it.
func Subject(c *fiber.Ctx) string {
	email, _ := c.Locals(SubjectKey).(string)
	return email
}

func failed(c *fiber.Ctx, detail string) error {
	return c.Status(http.StatusForbidden).JSON(fiber.Map{
		"status": "failed",
		"detail": detail,
	})
}
