package handler

import (
	"log/slog"
	"net/http"

	"agroalerta/internal/delivery/http/response"
	"agroalerta/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// WeatherHandler holds dependencies for weather handlers.
type WeatherHandler struct {
	uc     usecase.WeatherUsecase
	logger *slog.Logger
}

// NewWeatherHandler is the constructor for WeatherHandler, injected by Fx.
func NewWeatherHandler(uc usecase.WeatherUsecase, logger *slog.Logger) *WeatherHandler {
	return &WeatherHandler{uc: uc, logger: logger}
}

// Current returns the latest snapshot.
func (h *WeatherHandler) Current(c echo.Context) error {
	snapshot, err := h.uc.Current(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, snapshot, "")
}

// Refresh triggers a manual refresh.
func (h *WeatherHandler) Refresh(c echo.Context) error {
	snapshot, err := h.uc.Refresh(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, snapshot, "Clima actualizado")
}
