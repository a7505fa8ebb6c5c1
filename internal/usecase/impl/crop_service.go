package impl

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	deliverycontext "agroalerta/internal/delivery/context"
	"agroalerta/internal/domain/entity"
	domainerrors "agroalerta/internal/domain/errors"
	"agroalerta/internal/domain/repository"
	"agroalerta/internal/domain/service"
	"agroalerta/internal/errors"
	"agroalerta/internal/usecase"

	"go.uber.org/fx"
)

// cropService implements the CropUsecase interface.
type cropService struct {
	cropRepo repository.CropRepository
	clock    service.Clock
	logger   *slog.Logger
}

// CropServiceParams holds dependencies for cropService, injected by Fx.
type CropServiceParams struct {
	fx.In

	CropRepo repository.CropRepository
	Clock    service.Clock
	Logger   *slog.Logger
}

// NewCropService is the constructor for cropService.
func NewCropService(params CropServiceParams) usecase.CropUsecase {
	return &cropService{
		cropRepo: params.CropRepo,
		clock:    params.Clock,
		logger:   params.Logger,
	}
}

func (srv *cropService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Add registers a crop, assigning its id and timestamps.
func (srv *cropService) Add(ctx context.Context, input usecase.AddCropInput) (*entity.Crop, error) {
	now := srv.clock.Now()
	crop := &entity.Crop{
		ID:           strconv.FormatInt(now.UnixMilli(), 10),
		Name:         strings.TrimSpace(input.Name),
		Type:         input.Type,
		Area:         input.Area,
		Location:     strings.TrimSpace(input.Location),
		PlantingDate: input.PlantingDate,
		HarvestDate:  input.HarvestDate,
		Notes:        input.Notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := validateCrop(crop); err != nil {
		return nil, err
	}

	crops, err := srv.cropRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load crops")
	}

	crops = append(crops, crop)
	if err := srv.cropRepo.ReplaceAll(ctx, crops); err != nil {
		return nil, errors.Wrap(err, "failed to persist crops")
	}

	srv.log(ctx).Info("Crop registered",
		slog.String("id", crop.ID), slog.String("type", crop.Type.String()))

	return crop, nil
}

// Update merges the provided fields into an existing crop.
func (srv *cropService) Update(ctx context.Context, id string, input usecase.UpdateCropInput) (*entity.Crop, error) {
	crops, err := srv.cropRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load crops")
	}

	var crop *entity.Crop
	for _, c := range crops {
		if c.ID == id {
			crop = c

			break
		}
	}
	if crop == nil {
		return nil, domainerrors.ErrCropNotFound.WithDetails(id)
	}

	if input.Name != nil {
		crop.Name = strings.TrimSpace(*input.Name)
	}
	if input.Type != nil {
		crop.Type = *input.Type
	}
	if input.Area != nil {
		crop.Area = *input.Area
	}
	if input.Location != nil {
		crop.Location = strings.TrimSpace(*input.Location)
	}
	if input.PlantingDate != nil {
		crop.PlantingDate = input.PlantingDate
	}
	if input.HarvestDate != nil {
		crop.HarvestDate = input.HarvestDate
	}
	if input.Notes != nil {
		crop.Notes = *input.Notes
	}
	crop.UpdatedAt = srv.clock.Now()

	if err := validateCrop(crop); err != nil {
		return nil, err
	}

	if err := srv.cropRepo.ReplaceAll(ctx, crops); err != nil {
		return nil, errors.Wrap(err, "failed to persist crops")
	}

	return crop, nil
}

// Delete removes a crop by id.
func (srv *cropService) Delete(ctx context.Context, id string) error {
	crops, err := srv.cropRepo.List(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to load crops")
	}

	kept := crops[:0]
	for _, c := range crops {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(crops) {
		return domainerrors.ErrCropNotFound.WithDetails(id)
	}

	if err := srv.cropRepo.ReplaceAll(ctx, kept); err != nil {
		return errors.Wrap(err, "failed to persist crops")
	}

	srv.log(ctx).Info("Crop removed", slog.String("id", id))

	return nil
}

// Get retrieves a crop by id.
func (srv *cropService) Get(ctx context.Context, id string) (*entity.Crop, error) {
	crops, err := srv.cropRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load crops")
	}

	for _, c := range crops {
		if c.ID == id {
			return c, nil
		}
	}

	return nil, domainerrors.ErrCropNotFound.WithDetails(id)
}

// List retrieves every crop.
func (srv *cropService) List(ctx context.Context) ([]*entity.Crop, error) {
	crops, err := srv.cropRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load crops")
	}

	return crops, nil
}

// ListByType retrieves the crops of one type.
func (srv *cropService) ListByType(ctx context.Context, cropType entity.CropType) ([]*entity.Crop, error) {
	crops, err := srv.cropRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load crops")
	}

	matched := []*entity.Crop{}
	for _, c := range crops {
		if c.Type == cropType {
			matched = append(matched, c)
		}
	}

	return matched, nil
}

// Stats computes the dashboard aggregates.
func (srv *cropService) Stats(ctx context.Context) (*entity.CropStats, error) {
	crops, err := srv.cropRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load crops")
	}

	now := srv.clock.Now()
	stats := &entity.CropStats{ByType: map[entity.CropType]int{}}
	for _, c := range crops {
		stats.Total++
		stats.TotalArea += c.Area
		stats.ByType[c.Type]++
		if c.IsActive(now) {
			stats.Active++
		}
	}

	return stats, nil
}

func validateCrop(crop *entity.Crop) error {
	if crop.Name == "" {
		return domainerrors.ErrValidationFailed.WithDetails("el nombre es obligatorio")
	}
	if !crop.Type.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("tipo de cultivo no reconocido")
	}
	if crop.Area <= 0 {
		return domainerrors.ErrValidationFailed.WithDetails("el área debe ser mayor a cero")
	}
	if crop.PlantingDate != nil && crop.HarvestDate != nil && crop.HarvestDate.Before(*crop.PlantingDate) {
		return domainerrors.ErrValidationFailed.WithDetails("la cosecha no puede ser anterior a la siembra")
	}

	return nil
}
