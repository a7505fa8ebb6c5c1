// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"agroalerta/internal/delivery/http/middleware"
	"agroalerta/internal/delivery/http/response"
	"agroalerta/internal/domain/entity"
	"agroalerta/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for authentication handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, logger: logger}
}

// Login handles the login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de inicio de sesión inválidos")
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Inicio de sesión exitoso")
}

// Logout handles the logout request.
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.uc.Logout(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Sesión cerrada"}, "Sesión cerrada")
}

// Session returns the session resolved by the auth middleware.
func (h *AuthHandler) Session(c echo.Context) error {
	if session, ok := middleware.SessionFromContext(c); ok {
		return response.Success(c, http.StatusOK, session, "")
	}

	session, err := h.uc.Current(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, session, "")
}

// UpdateConsents rewrites the notification channel consents.
func (h *AuthHandler) UpdateConsents(c echo.Context) error {
	var channels entity.NotificationChannels
	if err := c.Bind(&channels); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Preferencias de notificación inválidas")
	}

	session, err := h.uc.UpdateConsents(c.Request().Context(), channels)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, session, "Preferencias actualizadas")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
