package local

import (
	"context"
	"log/slog"

	"agroalerta/internal/domain/entity"
	"agroalerta/internal/domain/repository"
	"agroalerta/internal/errors"
	"agroalerta/internal/infra/kvstore"
)

// cropRepository persists the crop list as one snapshot.
type cropRepository struct {
	store  kvstore.Store
	logger *slog.Logger
}

// NewCropRepository is the constructor for cropRepository.
func NewCropRepository(store kvstore.Store, logger *slog.Logger) repository.CropRepository {
	return &cropRepository{store: store, logger: logger}
}

// List retrieves every stored crop. A missing snapshot yields an empty list.
func (repo *cropRepository) List(ctx context.Context) ([]*entity.Crop, error) {
	crops, err := loadSnapshot[[]*entity.Crop](ctx, repo.store, repo.logger, keyCrops)
	if err != nil {
		if errors.Is(err, kvstore.ErrKeyNotFound) {
			return []*entity.Crop{}, nil
		}

		return nil, err
	}

	return *crops, nil
}

// ReplaceAll atomically overwrites the stored crop list.
func (repo *cropRepository) ReplaceAll(ctx context.Context, crops []*entity.Crop) error {
	return saveSnapshot(ctx, repo.store, keyCrops, &crops)
}
