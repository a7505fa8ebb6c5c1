package handler

import (
	"log/slog"
	"net/http"

	"agroalerta/internal/delivery/http/response"
	"agroalerta/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RecommendationHandler holds dependencies for recommendation handlers.
type RecommendationHandler struct {
	uc     usecase.RecommendationUsecase
	logger *slog.Logger
}

// NewRecommendationHandler is the constructor for RecommendationHandler, injected by Fx.
func NewRecommendationHandler(uc usecase.RecommendationUsecase, logger *slog.Logger) *RecommendationHandler {
	return &RecommendationHandler{uc: uc, logger: logger}
}

// Refresh regenerates the advice list and returns it.
func (h *RecommendationHandler) Refresh(c echo.Context) error {
	recs, err := h.uc.Refresh(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, recs, "Recomendaciones actualizadas")
}

// List retrieves the persisted advice.
func (h *RecommendationHandler) List(c echo.Context) error {
	recs, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, recs, "")
}

// MarkRead flips the read flag of one entry.
func (h *RecommendationHandler) MarkRead(c echo.Context) error {
	if err := h.uc.MarkRead(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": c.Param("id")}, "Recomendación leída")
}

// Dismiss removes one entry.
func (h *RecommendationHandler) Dismiss(c echo.Context) error {
	if err := h.uc.Dismiss(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": c.Param("id")}, "Recomendación descartada")
}

// MarkAllRead flips the read flag of every entry.
func (h *RecommendationHandler) MarkAllRead(c echo.Context) error {
	if err := h.uc.MarkAllRead(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "ok"}, "Recomendaciones leídas")
}

// UnreadCount counts the unread entries.
func (h *RecommendationHandler) UnreadCount(c echo.Context) error {
	count, err := h.uc.UnreadCount(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int{"unread": count}, "")
}

// Priority retrieves the unread high-priority entries.
func (h *RecommendationHandler) Priority(c echo.Context) error {
	recs, err := h.uc.Priority(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, recs, "")
}
