package impl

import (
	"bytes"
	"context"
	"testing"

	"agroalerta/config"
	"agroalerta/internal/domain/entity"
	domainerrors "agroalerta/internal/domain/errors"
	"agroalerta/internal/infra/alertfeed"
	"agroalerta/internal/infra/report"
	"agroalerta/internal/infra/weather"
	"agroalerta/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReportService(t *testing.T) usecase.ReportUsecase {
	t.Helper()

	logger := testLogger()
	clk := &fixedClock{now: testNow()}
	weatherCfg := config.WeatherConfig{
		Location:    "Huancavelica Centro",
		Temperature: 18.5,
		Humidity:    65,
		WindSpeed:   12,
		Rainfall:    3.2,
	}

	return NewReportService(ReportServiceParams{
		AlertRepo: alertfeed.NewStaticFeed(clk),
		Provider:  weather.NewManualProvider(weatherCfg, clk, fixedRand{v: 0.5}, logger),
		Exporter:  report.NewExcelExporter(),
		Clock:     clk,
		Rand:      fixedRand{v: 0.5},
		Logger:    logger,
	})
}

func TestReportService_Generate(t *testing.T) {
	service := newReportService(t)

	rpt, err := service.Generate(context.Background(), usecase.GenerateReportInput{
		CropType: entity.CropPotato,
		Days:     7,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.CropPotato, rpt.CropType)
	assert.Len(t, rpt.TemperatureData, 7)
	assert.Equal(t, 7*24.0, rpt.RangeEnd.Sub(rpt.RangeStart).Hours())

	// The canned feed has one alto and one medio alert inside the range.
	assert.Equal(t, 1, rpt.AlertsCount.High)
	assert.Equal(t, 1, rpt.AlertsCount.Medium)
	assert.Equal(t, 0, rpt.AlertsCount.Low)

	// rand 0.5 keeps the series pinned at the current reading.
	for _, point := range rpt.TemperatureData {
		assert.InDelta(t, 18.5, point.Temperature, 1e-9)
	}
}

func TestReportService_Generate_InvalidInput(t *testing.T) {
	service := newReportService(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		input usecase.GenerateReportInput
	}{
		{name: "unknown crop", input: usecase.GenerateReportInput{CropType: "arroz", Days: 7}},
		{name: "zero days", input: usecase.GenerateReportInput{CropType: entity.CropPotato}},
		{name: "too many days", input: usecase.GenerateReportInput{CropType: entity.CropPotato, Days: 90}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Generate(ctx, tt.input)
			require.Error(t, err)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
		})
	}
}

func TestReportService_Export(t *testing.T) {
	service := newReportService(t)

	filename, data, err := service.Export(context.Background(), usecase.GenerateReportInput{
		CropType: entity.CropQuinoa,
		Days:     15,
	})
	require.NoError(t, err)

	assert.Equal(t, "reporte_quinua_15dias.xlsx", filename)
	require.NotEmpty(t, data)
	// XLSX files are ZIP archives.
	assert.True(t, bytes.HasPrefix(data, []byte("PK")))
}
