package usecase

import (
	"context"

	"agroalerta/internal/domain/entity"
)

// GenerateReportInput selects the crop type and the trailing number of days
// the report covers.
type GenerateReportInput struct {
	CropType entity.CropType `json:"cropType"`
	Days     int             `json:"days"`
}

// ReportUsecase builds temperature/alert summaries and exports them.
type ReportUsecase interface {
	// Generate builds a report for the trailing range ending now.
	Generate(ctx context.Context, input GenerateReportInput) (*entity.Report, error)

	// Export renders a generated report as an XLSX workbook.
	Export(ctx context.Context, input GenerateReportInput) (filename string, data []byte, err error)
}
