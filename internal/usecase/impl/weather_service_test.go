package impl

import (
	"context"
	"testing"

	"agroalerta/config"
	domainerrors "agroalerta/internal/domain/errors"
	"agroalerta/internal/infra/weather"
	"agroalerta/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWeatherService(t *testing.T, rnd fixedRand) usecase.WeatherUsecase {
	t.Helper()

	logger := testLogger()
	cfg := config.WeatherConfig{
		Location:    "Huancavelica Centro",
		Temperature: 18.5,
		Humidity:    65,
		WindSpeed:   12,
		Rainfall:    3.2,
	}

	return NewWeatherService(WeatherServiceParams{
		Provider: weather.NewManualProvider(cfg, &fixedClock{now: testNow()}, rnd, logger),
		Logger:   logger,
	})
}

func TestWeatherService_Current(t *testing.T) {
	service := newWeatherService(t, fixedRand{v: 0.5})

	snapshot, err := service.Current(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Huancavelica Centro", snapshot.Location)
	assert.InDelta(t, 18.5, snapshot.Temperature, 1e-9)
	assert.InDelta(t, 65, snapshot.Humidity, 1e-9)
	assert.Equal(t, testNow(), snapshot.LastUpdated)
}

func TestWeatherService_Refresh_PerturbsWithinBounds(t *testing.T) {
	// rand 0 pushes every reading to its lowest delta.
	service := newWeatherService(t, fixedRand{v: 0})

	snapshot, err := service.Refresh(context.Background())
	require.NoError(t, err)

	assert.InDelta(t, 17.5, snapshot.Temperature, 1e-9)
	assert.InDelta(t, 60, snapshot.Humidity, 1e-9)
	assert.InDelta(t, 9.5, snapshot.WindSpeed, 1e-9)
	assert.InDelta(t, 2.7, snapshot.Rainfall, 1e-9)
}

func TestWeatherService_Current_Unavailable(t *testing.T) {
	service := NewWeatherService(WeatherServiceParams{
		Provider: &weather.Provider{},
		Logger:   testLogger(),
	})

	_, err := service.Current(context.Background())
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "WEATHER_UNAVAILABLE", appErr.ErrorCode())
}
