package handler

import (
	"log/slog"
	"net/http"

	"agroalerta/internal/delivery/http/response"
	"agroalerta/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// fieldEdit is the body of a single field edit.
type fieldEdit struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// FormHandler holds dependencies for registration form handlers.
type FormHandler struct {
	uc     usecase.FormUsecase
	logger *slog.Logger
}

// NewFormHandler is the constructor for FormHandler, injected by Fx.
func NewFormHandler(uc usecase.FormUsecase, logger *slog.Logger) *FormHandler {
	return &FormHandler{uc: uc, logger: logger}
}

// Get returns the draft with progress and hints.
func (h *FormHandler) Get(c echo.Context) error {
	state, err := h.uc.Get(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, state, "")
}

// SetField applies a single-value edit.
func (h *FormHandler) SetField(c echo.Context) error {
	var input fieldEdit
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Edición de campo inválida")
	}

	state, err := h.uc.SetField(c.Request().Context(), input.Field, input.Value)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, state, "")
}

// ToggleMember toggles a multi-select member.
func (h *FormHandler) ToggleMember(c echo.Context) error {
	var input fieldEdit
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Edición de campo inválida")
	}

	state, err := h.uc.ToggleMember(c.Request().Context(), input.Field, input.Value)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, state, "")
}

// Progress returns the completion percentage.
func (h *FormHandler) Progress(c echo.Context) error {
	progress, err := h.uc.Progress(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int{"progress": progress}, "")
}

// Submit turns the draft into the registered profile.
func (h *FormHandler) Submit(c echo.Context) error {
	var input usecase.SubmitFormInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de envío inválidos")
	}

	profile, err := h.uc.Submit(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, profile, "Registro completado")
}
