package presenter

import "github.com/gofiber/fiber/v2"

// Response is the uniform body of every auth endpoint. Status is "passed" or
// "failed"; Detail carries the error description on failure; Token is set on
// successful login only.
type Response struct {
	Status string `json:"status"`
	Detail string `json:"detail,omitempty"`
	Token  string `json:"token,omitempty"`
}

func Passed(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(Response{Status: "passed"})
}

func PassedToken(c *fiber.Ctx, token string) error {
	return c.Status(fiber.StatusOK).JSON(Response{Status: "passed", Token: token})
}

func Failed(c *fiber.Ctx, status int, detail string) error {
	return c.Status(status).JSON(Response{Status: "failed", Detail: detail})
}
