package usecase

import (
	"context"

	"agroalerta/internal/domain/entity"
)

// WeatherUsecase exposes the current mocked weather reading.
type WeatherUsecase interface {
	// Current returns the latest snapshot, or ErrWeatherUnavailable while
	// nothing has loaded yet.
	Current(ctx context.Context) (*entity.WeatherSnapshot, error)

	// Refresh triggers a manual refresh; a refresh already in flight makes
	// this a no-op.
	Refresh(ctx context.Context) (*entity.WeatherSnapshot, error)
}
