package handler

import (
	"log/slog"
	"net/http"

	"agroalerta/internal/delivery/http/response"
	"agroalerta/internal/domain/entity"
	"agroalerta/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PreferenceHandler holds dependencies for device preference handlers.
type PreferenceHandler struct {
	uc     usecase.PreferenceUsecase
	logger *slog.Logger
}

// NewPreferenceHandler is the constructor for PreferenceHandler, injected by Fx.
func NewPreferenceHandler(uc usecase.PreferenceUsecase, logger *slog.Logger) *PreferenceHandler {
	return &PreferenceHandler{uc: uc, logger: logger}
}

// Get retrieves the current settings.
func (h *PreferenceHandler) Get(c echo.Context) error {
	prefs, err := h.uc.Get(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, prefs, "")
}

// SetLanguage stores the UI language.
func (h *PreferenceHandler) SetLanguage(c echo.Context) error {
	var input struct {
		Language entity.Language `json:"language"`
	}
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Idioma inválido")
	}

	if err := h.uc.SetLanguage(c.Request().Context(), input.Language); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"language": string(input.Language)}, "Idioma actualizado")
}

// SetOfflineMode stores the offline-mode flag.
func (h *PreferenceHandler) SetOfflineMode(c echo.Context) error {
	var input struct {
		Enabled bool `json:"enabled"`
	}
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Valor inválido")
	}

	if err := h.uc.SetOfflineMode(c.Request().Context(), input.Enabled); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"offlineMode": input.Enabled}, "Modo offline actualizado")
}
