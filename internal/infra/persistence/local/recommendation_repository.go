package local

import (
	"context"
	"log/slog"

	"agroalerta/internal/domain/entity"
	"agroalerta/internal/domain/repository"
	"agroalerta/internal/errors"
	"agroalerta/internal/infra/kvstore"
)

// recommendationRepository persists the generated advice list as one snapshot.
type recommendationRepository struct {
	store  kvstore.Store
	logger *slog.Logger
}

// NewRecommendationRepository is the constructor for recommendationRepository.
func NewRecommendationRepository(store kvstore.Store, logger *slog.Logger) repository.RecommendationRepository {
	return &recommendationRepository{store: store, logger: logger}
}

// List retrieves every stored recommendation. A missing snapshot yields an
// empty list.
func (repo *recommendationRepository) List(ctx context.Context) ([]*entity.Recommendation, error) {
	recs, err := loadSnapshot[[]*entity.Recommendation](ctx, repo.store, repo.logger, keyRecommendations)
	if err != nil {
		if errors.Is(err, kvstore.ErrKeyNotFound) {
			return []*entity.Recommendation{}, nil
		}

		return nil, err
	}

	return *recs, nil
}

// ReplaceAll atomically overwrites the stored recommendation list.
func (repo *recommendationRepository) ReplaceAll(ctx context.Context, recs []*entity.Recommendation) error {
	return saveSnapshot(ctx, repo.store, keyRecommendations, &recs)
}
