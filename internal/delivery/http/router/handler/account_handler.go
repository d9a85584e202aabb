// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"craftapp/internal/delivery/http/middleware"
	"craftapp/internal/delivery/http/response"
	"craftapp/internal/usecase"
)

// AccountHandler holds dependencies for account-related handlers.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register handles the account registration request.
func (h *AccountHandler) Register(c echo.Context) error {
	var input usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.uc.Register(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "User registered successfully")
}

// Activate handles the activation code redemption request.
func (h *AccountHandler) Activate(c echo.Context) error {
	var input usecase.ActivateInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid activation input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	if err := h.uc.Activate(c.Request().Context(), &input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Account activated successfully"}, "Account activated")
}

// Token handles the login request. The body is form-encoded with username and
// password fields; the issued token goes back bare, not in the envelope, so
// standard bearer clients can consume it.
func (h *AccountHandler) Token(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), &input)
	if err != nil {
		c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")

		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, output)
}

// Me returns the account of the authenticated caller.
func (h *AccountHandler) Me(c echo.Context) error {
	email, ok := middleware.SubjectEmail(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Could not validate credentials")
	}

	output, err := h.uc.CurrentUser(c.Request().Context(), email)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Profile retrieved successfully")
}

// ForgotPassword handles the reset-code request. The acknowledgment is
// identical whether or not the email is registered.
func (h *AccountHandler) ForgotPassword(c echo.Context) error {
	var input usecase.ForgotPasswordInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	if err := h.uc.ForgotPassword(c.Request().Context(), &input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK,
		map[string]string{"message": "If your email is registered, you will receive a password reset code"},
		"Request accepted")
}

// ResetPassword handles the reset code redemption request.
func (h *AccountHandler) ResetPassword(c echo.Context) error {
	var input usecase.ResetPasswordInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reset input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	if err := h.uc.ResetPassword(c.Request().Context(), &input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Password has been reset successfully"}, "Password reset")
}

// UpdateAccount applies a partial update to the authenticated account.
func (h *AccountHandler) UpdateAccount(c echo.Context) error {
	email, ok := middleware.SubjectEmail(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Could not validate credentials")
	}

	var input usecase.UpdateAccountInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid update input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.uc.UpdateAccount(c.Request().Context(), email, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Account updated successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
