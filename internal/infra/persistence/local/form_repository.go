package local

import (
	"context"
	"log/slog"

	"agroalerta/internal/domain/entity"
	"agroalerta/internal/domain/repository"
	"agroalerta/internal/errors"
	"agroalerta/internal/infra/kvstore"
)

// formDraftRepository persists the registration draft snapshot.
type formDraftRepository struct {
	store  kvstore.Store
	logger *slog.Logger
}

// NewFormDraftRepository is the constructor for formDraftRepository.
func NewFormDraftRepository(store kvstore.Store, logger *slog.Logger) repository.FormDraftRepository {
	return &formDraftRepository{store: store, logger: logger}
}

// Load retrieves the saved draft.
func (repo *formDraftRepository) Load(ctx context.Context) (*entity.FormDraft, error) {
	draft, err := loadSnapshot[entity.FormDraft](ctx, repo.store, repo.logger, keyFormDraft)
	if err != nil {
		if errors.Is(err, kvstore.ErrKeyNotFound) {
			return nil, repository.ErrDraftNotFound
		}

		return nil, err
	}

	if draft.Cultivos == nil {
		draft.Cultivos = []string{}
	}
	if draft.MedioAlerta == nil {
		draft.MedioAlerta = []string{}
	}

	return draft, nil
}

// Save overwrites the stored draft.
func (repo *formDraftRepository) Save(ctx context.Context, draft *entity.FormDraft) error {
	return saveSnapshot(ctx, repo.store, keyFormDraft, draft)
}

// Clear removes the stored draft.
func (repo *formDraftRepository) Clear(ctx context.Context) error {
	return errors.Wrap(repo.store.Delete(ctx, keyFormDraft), "failed to clear form draft")
}
