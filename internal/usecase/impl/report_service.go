package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	deliverycontext "agroalerta/internal/delivery/context"
	"agroalerta/internal/domain/entity"
	domainerrors "agroalerta/internal/domain/errors"
	"agroalerta/internal/domain/repository"
	"agroalerta/internal/domain/service"
	"agroalerta/internal/errors"
	"agroalerta/internal/infra/report"
	"agroalerta/internal/infra/weather"
	"agroalerta/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	reportMinDays = 1
	reportMaxDays = 30

	// seriesSpread bounds the daily deviation from the current reading.
	seriesSpread = 4.0
)

// reportService implements the ReportUsecase interface.
type reportService struct {
	alertRepo repository.AlertRepository
	provider  *weather.Provider
	exporter  *report.ExcelExporter
	clock     service.Clock
	rand      service.Rand
	logger    *slog.Logger
}

// ReportServiceParams holds dependencies for reportService, injected by Fx.
type ReportServiceParams struct {
	fx.In

	AlertRepo repository.AlertRepository
	Provider  *weather.Provider
	Exporter  *report.ExcelExporter
	Clock     service.Clock
	Rand      service.Rand
	Logger    *slog.Logger
}

// NewReportService is the constructor for reportService.
func NewReportService(params ReportServiceParams) usecase.ReportUsecase {
	return &reportService{
		alertRepo: params.AlertRepo,
		provider:  params.Provider,
		exporter:  params.Exporter,
		clock:     params.Clock,
		rand:      params.Rand,
		logger:    params.Logger,
	}
}

func (srv *reportService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Generate builds a report for the trailing range ending now. The daily
// temperature series is synthesized around the current reading; alert counts
// come from the feed entries created within the range.
func (srv *reportService) Generate(ctx context.Context, input usecase.GenerateReportInput) (*entity.Report, error) {
	if !input.CropType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("tipo de cultivo no reconocido")
	}
	if input.Days < reportMinDays || input.Days > reportMaxDays {
		return nil, domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("el período debe estar entre %d y %d días", reportMinDays, reportMaxDays))
	}

	snapshot := srv.provider.Current()
	if snapshot == nil {
		return nil, domainerrors.ErrWeatherUnavailable
	}

	alerts, err := srv.alertRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load alerts")
	}

	end := srv.clock.Now()
	start := end.AddDate(0, 0, -input.Days)

	rpt := &entity.Report{
		ID:         uuid.New().String(),
		CropType:   input.CropType,
		RangeStart: start,
		RangeEnd:   end,
	}

	alertDays := map[string]bool{}
	for _, a := range alerts {
		if a.CreatedAt.Before(start) || a.CreatedAt.After(end) {
			continue
		}
		alertDays[a.CreatedAt.Format("2006-01-02")] = true
		switch a.Severity {
		case entity.SeverityHigh:
			rpt.AlertsCount.High++
		case entity.SeverityMedium:
			rpt.AlertsCount.Medium++
		case entity.SeverityLow:
			rpt.AlertsCount.Low++
		}
	}

	for day := 0; day < input.Days; day++ {
		date := start.AddDate(0, 0, day+1)
		temp := snapshot.Temperature + (srv.rand.Float64()-0.5)*seriesSpread
		rpt.TemperatureData = append(rpt.TemperatureData, entity.TemperaturePoint{
			Date:        date,
			Temperature: math.Round(temp*10) / 10,
			HasAlert:    alertDays[date.Format("2006-01-02")],
		})
	}

	return rpt, nil
}

// Export renders a generated report as an XLSX workbook.
func (srv *reportService) Export(ctx context.Context, input usecase.GenerateReportInput) (string, []byte, error) {
	rpt, err := srv.Generate(ctx, input)
	if err != nil {
		return "", nil, err
	}

	data, err := srv.exporter.Export(rpt)
	if err != nil {
		return "", nil, errors.Wrap(err, "failed to export report")
	}

	filename := fmt.Sprintf("reporte_%s_%ddias.xlsx", input.CropType, input.Days)
	srv.log(ctx).Info("Report exported", slog.String("filename", filename))

	return filename, data, nil
}
