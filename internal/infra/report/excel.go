// Package report renders generated reports as XLSX workbooks.
package report

import (
	"bytes"
	"fmt"

	"agroalerta/internal/domain/entity"
	"agroalerta/internal/errors"

	"github.com/xuri/excelize/v2"
)

const (
	summarySheet = "Resumen"
	seriesSheet  = "Temperaturas"
)

// ExcelExporter writes a Report as a two-sheet workbook: a summary and the
// daily temperature series.
type ExcelExporter struct{}

// NewExcelExporter is the constructor for ExcelExporter.
func NewExcelExporter() *ExcelExporter {
	return &ExcelExporter{}
}

// Export renders the report and returns the workbook bytes.
func (e *ExcelExporter) Export(r *entity.Report) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, errors.Wrap(err, "failed to rename summary sheet")
	}

	summary := [][]any{
		{"Cultivo", r.CropType.Label()},
		{"Desde", r.RangeStart.Format("2006-01-02")},
		{"Hasta", r.RangeEnd.Format("2006-01-02")},
		{"Alertas altas", r.AlertsCount.High},
		{"Alertas medias", r.AlertsCount.Medium},
		{"Alertas bajas", r.AlertsCount.Low},
	}
	for i, row := range summary {
		cell := fmt.Sprintf("A%d", i+1)
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return nil, errors.Wrap(err, "failed to write summary row")
		}
	}

	if _, err := f.NewSheet(seriesSheet); err != nil {
		return nil, errors.Wrap(err, "failed to create series sheet")
	}

	header := []any{"Fecha", "Temperatura (°C)", "Con alerta"}
	if err := f.SetSheetRow(seriesSheet, "A1", &header); err != nil {
		return nil, errors.Wrap(err, "failed to write series header")
	}
	for i, point := range r.TemperatureData {
		row := []any{
			point.Date.Format("2006-01-02"),
			point.Temperature,
			point.HasAlert,
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(seriesSheet, cell, &row); err != nil {
			return nil, errors.Wrap(err, "failed to write series row")
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, errors.Wrap(err, "failed to encode workbook")
	}

	return buf.Bytes(), nil
}
