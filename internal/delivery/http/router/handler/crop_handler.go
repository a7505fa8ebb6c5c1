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

// CropHandler holds dependencies for crop handlers.
type CropHandler struct {
	uc     usecase.CropUsecase
	logger *slog.Logger
}

// NewCropHandler is the constructor for CropHandler, injected by Fx.
func NewCropHandler(uc usecase.CropUsecase, logger *slog.Logger) *CropHandler {
	return &CropHandler{uc: uc, logger: logger}
}

// Add registers a crop.
func (h *CropHandler) Add(c echo.Context) error {
	var input usecase.AddCropInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de cultivo inválidos")
	}

	crop, err := h.uc.Add(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, crop, "Cultivo registrado")
}

// Update merges a partial update into a crop.
func (h *CropHandler) Update(c echo.Context) error {
	var input usecase.UpdateCropInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de cultivo inválidos")
	}

	crop, err := h.uc.Update(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, crop, "Cultivo actualizado")
}

// Delete removes a crop.
func (h *CropHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": c.Param("id")}, "Cultivo eliminado")
}

// Get retrieves a crop by id.
func (h *CropHandler) Get(c echo.Context) error {
	crop, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, crop, "")
}

// List retrieves the crops, optionally narrowed to one type.
func (h *CropHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	if t := c.QueryParam("type"); t != "" {
		cropType := entity.CropType(t)
		if !cropType.IsValid() {
			return response.BadRequest(c, "VALIDATION_FAILED", "Tipo de cultivo no reconocido")
		}

		crops, err := h.uc.ListByType(ctx, cropType)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, crops, "")
	}

	crops, err := h.uc.List(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, crops, "")
}

// Stats returns the dashboard aggregates.
func (h *CropHandler) Stats(c echo.Context) error {
	stats, err := h.uc.Stats(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "")
}
