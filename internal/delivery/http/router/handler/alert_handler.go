package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"agroalerta/internal/delivery/http/response"
	"agroalerta/internal/domain/entity"
	domainerrors "agroalerta/internal/domain/errors"
	"agroalerta/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AlertHandler holds dependencies for alert feed handlers.
type AlertHandler struct {
	uc     usecase.AlertUsecase
	logger *slog.Logger
}

// NewAlertHandler is the constructor for AlertHandler, injected by Fx.
func NewAlertHandler(uc usecase.AlertUsecase, logger *slog.Logger) *AlertHandler {
	return &AlertHandler{uc: uc, logger: logger}
}

// List retrieves alerts matching the query filters.
func (h *AlertHandler) List(c echo.Context) error {
	filters, err := parseAlertFilters(c)
	if err != nil {
		return err
	}

	alerts, err := h.uc.List(c.Request().Context(), filters)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, alerts, "")
}

// Active retrieves the active alerts.
func (h *AlertHandler) Active(c echo.Context) error {
	alerts, err := h.uc.Active(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, alerts, "")
}

// Get retrieves one alert.
func (h *AlertHandler) Get(c echo.Context) error {
	alert, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, alert, "")
}

// Share renders the alert as a shareable message.
func (h *AlertHandler) Share(c echo.Context) error {
	message, err := h.uc.Share(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": message}, "")
}

func parseAlertFilters(c echo.Context) (usecase.AlertFilters, error) {
	var filters usecase.AlertFilters

	if t := c.QueryParam("type"); t != "" {
		alertType := entity.AlertType(t)
		if !alertType.IsValid() {
			return filters, domainerrors.ErrValidationFailed.WithDetails("tipo de alerta no reconocido")
		}
		filters.Type = &alertType
	}

	if s := c.QueryParam("severity"); s != "" {
		severity := entity.SeverityLevel(s)
		if !severity.IsValid() {
			return filters, domainerrors.ErrValidationFailed.WithDetails("severidad no reconocida")
		}
		filters.Severity = &severity
	}

	if a := c.QueryParam("active"); a != "" {
		active, err := strconv.ParseBool(a)
		if err != nil {
			return filters, domainerrors.ErrValidationFailed.WithDetails("el filtro active debe ser booleano")
		}
		filters.Active = &active
	}

	filters.Search = c.QueryParam("search")
	filters.SortBy = c.QueryParam("sortBy")

	return filters, nil
}
