package handler

import (
	"log/slog"
	"net/http"

	"agroalerta/internal/delivery/http/response"
	"agroalerta/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportHandler holds dependencies for report handlers.
type ReportHandler struct {
	uc     usecase.ReportUsecase
	logger *slog.Logger
}

// NewReportHandler is the constructor for ReportHandler, injected by Fx.
func NewReportHandler(uc usecase.ReportUsecase, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{uc: uc, logger: logger}
}

// Generate builds a report for the requested crop and range.
func (h *ReportHandler) Generate(c echo.Context) error {
	var input usecase.GenerateReportInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Parámetros de reporte inválidos")
	}

	rpt, err := h.uc.Generate(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, rpt, "Reporte generado")
}

// Export streams a generated report as an XLSX workbook.
func (h *ReportHandler) Export(c echo.Context) error {
	var input usecase.GenerateReportInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Parámetros de reporte inválidos")
	}

	filename, data, err := h.uc.Export(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)

	return c.Blob(http.StatusOK, xlsxContentType, data)
}
