package local

import (
	"context"
	"log/slog"
	"time"

	"agroalerta/config"
	"agroalerta/internal/domain/entity"
	"agroalerta/internal/domain/repository"
	"agroalerta/internal/domain/service"
	"agroalerta/internal/errors"
)

// SeedParams holds the dependencies of the first-run bootstrap.
type SeedParams struct {
	Config      *config.Config
	Clock       service.Clock
	Logger      *slog.Logger
	ProfileRepo repository.UserProfileRepository
	CropRepo    repository.CropRepository
}

// Seed installs the demo credential pair and, when enabled, the sample crops.
// It only fills gaps: existing data is never touched.
func Seed(ctx context.Context, params SeedParams) error {
	if _, err := params.ProfileRepo.FindDemoCredentials(ctx); errors.Is(err, repository.ErrDemoCredentialsNotFound) {
		creds := &entity.DemoCredentials{
			Telefono:   params.Config.Demo.Phone,
			Contrasena: params.Config.Demo.Password,
		}
		if err := params.ProfileRepo.SaveDemoCredentials(ctx, creds); err != nil {
			return errors.Wrap(err, "failed to seed demo credentials")
		}
		params.Logger.Info("Seeded demo credentials", slog.String("phone", creds.Telefono))
	} else if err != nil {
		return errors.Wrap(err, "failed to check demo credentials")
	}

	if !params.Config.Demo.SeedData {
		return nil
	}

	crops, err := params.CropRepo.List(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to list crops before seeding")
	}
	if len(crops) > 0 {
		return nil
	}

	now := params.Clock.Now()
	if err := params.CropRepo.ReplaceAll(ctx, sampleCrops(now)); err != nil {
		return errors.Wrap(err, "failed to seed sample crops")
	}
	params.Logger.Info("Seeded sample crops")

	return nil
}

// sampleCrops builds the two demonstration plots. The planting offsets put
// the potato inside the hilling window and the maize in its early stage so a
// fresh install shows the advice feed working.
func sampleCrops(now time.Time) []*entity.Crop {
	potatoPlanting := now.AddDate(0, 0, -50)
	potatoHarvest := now.AddDate(0, 0, 100)
	maizePlanting := now.AddDate(0, 0, -10)
	maizeHarvest := now.AddDate(0, 0, 140)

	return []*entity.Crop{
		{
			ID:           "1",
			Name:         "Papa Blanca Lote Norte",
			Type:         entity.CropPotato,
			Area:         2.5,
			Location:     "Sector Alto Verde",
			PlantingDate: &potatoPlanting,
			HarvestDate:  &potatoHarvest,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		{
			ID:           "2",
			Name:         "Maíz Amarillo Lote Sur",
			Type:         entity.CropMaize,
			Area:         1.8,
			Location:     "Sector Bajo Verde",
			PlantingDate: &maizePlanting,
			HarvestDate:  &maizeHarvest,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
	}
}
