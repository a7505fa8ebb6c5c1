package impl

import (
	"context"
	"log/slog"

	deliverycontext "agroalerta/internal/delivery/context"
	"agroalerta/internal/domain/entity"
	domainerrors "agroalerta/internal/domain/errors"
	"agroalerta/internal/infra/weather"
	"agroalerta/internal/usecase"

	"go.uber.org/fx"
)

// weatherService implements the WeatherUsecase interface.
type weatherService struct {
	provider *weather.Provider
	logger   *slog.Logger
}

// WeatherServiceParams holds dependencies for weatherService, injected by Fx.
type WeatherServiceParams struct {
	fx.In

	Provider *weather.Provider
	Logger   *slog.Logger
}

// NewWeatherService is the constructor for weatherService.
func NewWeatherService(params WeatherServiceParams) usecase.WeatherUsecase {
	return &weatherService{
		provider: params.Provider,
		logger:   params.Logger,
	}
}

func (srv *weatherService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Current returns the latest snapshot.
func (srv *weatherService) Current(_ context.Context) (*entity.WeatherSnapshot, error) {
	snapshot := srv.provider.Current()
	if snapshot == nil {
		return nil, domainerrors.ErrWeatherUnavailable
	}

	return snapshot, nil
}

// Refresh triggers a manual refresh and returns the resulting snapshot.
func (srv *weatherService) Refresh(ctx context.Context) (*entity.WeatherSnapshot, error) {
	srv.provider.Refresh()

	snapshot := srv.provider.Current()
	if snapshot == nil {
		return nil, domainerrors.ErrWeatherUnavailable
	}

	srv.log(ctx).Debug("Weather refreshed", slog.Time("lastUpdated", snapshot.LastUpdated))

	return snapshot, nil
}
