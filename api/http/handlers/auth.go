package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/artem13815/auth/api/http/presenter"
	"github.com/artem13815/auth/pkg/auth"
	"github.com/artem13815/auth/pkg/security/jwt"
)

type AuthHandler struct {
	useCase auth.AuthUseCase
	log     *logrus.Logger
}

func NewAuthHandler(useCase auth.AuthUseCase, log *logrus.Logger) *AuthHandler {
	return &AuthHandler{useCase: useCase, log: log}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type changePasswordRequest struct {
	Email           string `json:"email"`
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// Register handles account registration.
// @Summary Register account
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body credentialsRequest true "registration payload"
// @Success 200 {object} presenter.Response
// @Failure 409 {object} presenter.Response
// @Failure 422 {object} presenter.Response
// @Router  /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Failed(c, http.StatusUnprocessableEntity, "invalid JSON payload")
	}

	if err := h.useCase.Register(c.Context(), req.Email, req.Password); err != nil {
		return h.failed(c, "register", err)
	}
	return presenter.Passed(c)
}

// Login verifies credentials and issues a session token.
// @Summary Login
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body credentialsRequest true "login payload"
// @Success 200 {object} presenter.Response
// @Failure 403 {object} presenter.Response
// @Failure 404 {object} presenter.Response
// @Router  /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Failed(c, http.StatusUnprocessableEntity, "invalid JSON payload")
	}

	token, err := h.useCase.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return h.failed(c, "login", err)
	}
	return presenter.PassedToken(c, token)
}

// ChangePassword rotates the caller's password.
// @Summary Change password
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body changePasswordRequest true "password change payload"
// @Success 200 {object} presenter.Response
// @Failure 400 {object} presenter.Response
// @Failure 403 {object} presenter.Response
// @Failure 404 {object} presenter.Response
// @Security BearerAuth
// @Router  /auth/users [put]
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	var req changePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Failed(c, http.StatusUnprocessableEntity, "invalid JSON payload")
	}

	err := h.useCase.ChangePassword(c.Context(), jwt.Subject(c), req.Email, req.CurrentPassword, req.NewPassword)
	if err != nil {
		return h.failed(c, "change_password", err)
	}
	return presenter.Passed(c)
}

// DeleteAccount removes the caller's account. Idempotent: deleting an absent
// account still passes.
// @Summary Delete account
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body credentialsRequest true "deletion payload"
// @Success 200 {object} presenter.Response
// @Failure 400 {object} presenter.Response
// @Failure 403 {object} presenter.Response
// @Security BearerAuth
// @Router  /auth/users [delete]
func (h *AuthHandler) DeleteAccount(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Failed(c, http.StatusUnprocessableEntity, "invalid JSON payload")
	}

	err := h.useCase.DeleteAccount(c.Context(), jwt.Subject(c), req.Email, req.Password)
	if err != nil {
		return h.failed(c, "delete_account", err)
	}
	return presenter.Passed(c)
}

// failed maps the expected use-case outcomes to their status codes. Anything
// unexpected is logged with full context and surfaced as a generic 500 so
// internals never leak to the client.
func (h *AuthHandler) failed(c *fiber.Ctx, useCase string, err error) error {
	switch {
	case errors.Is(err, auth.ErrInvalidEmail), errors.Is(err, auth.ErrInvalidPassword):
		return presenter.Failed(c, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, auth.ErrAccountExists):
		return presenter.Failed(c, http.StatusConflict, "existing user")
	case errors.Is(err, auth.ErrNotFound):
		return presenter.Failed(c, http.StatusNotFound, "user not found")
	case errors.Is(err, auth.ErrWrongPassword):
		return presenter.Failed(c, http.StatusForbidden, "wrong password or email address")
	case errors.Is(err, auth.ErrSubjectMismatch):
		return presenter.Failed(c, http.StatusBadRequest, "bad request")
	default:
		h.log.WithFields(logrus.Fields{
			"request_id": requestID(c),
			"function":   useCase,
		}).WithError(err).Error("internal error")
		return presenter.Failed(c, http.StatusInternalServerError, "Internal Server Error")
	}
}

func requestID(c *fiber.Ctx) string {
	id, _ := c.Locals("requestid").(string)
	return id
}
