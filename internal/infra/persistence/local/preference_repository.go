package local

import (
	"context"
	"log/slog"

	"agroalerta/internal/domain/entity"
	"agroalerta/internal/domain/repository"
	"agroalerta/internal/errors"
	"agroalerta/internal/infra/kvstore"
)

// preferenceRepository persists the device-level settings.
type preferenceRepository struct {
	store  kvstore.Store
	logger *slog.Logger
}

// NewPreferenceRepository is the constructor for preferenceRepository.
func NewPreferenceRepository(store kvstore.Store, logger *slog.Logger) repository.PreferenceRepository {
	return &preferenceRepository{store: store, logger: logger}
}

// Language retrieves the selected UI language, defaulting to Spanish.
func (repo *preferenceRepository) Language(ctx context.Context) (entity.Language, error) {
	lang, err := loadSnapshot[entity.Language](ctx, repo.store, repo.logger, keyLanguage)
	if err != nil {
		if errors.Is(err, kvstore.ErrKeyNotFound) {
			return entity.LanguageSpanish, nil
		}

		return "", err
	}

	if !lang.IsValid() {
		return entity.LanguageSpanish, nil
	}

	return *lang, nil
}

// SetLanguage stores the selected UI language.
func (repo *preferenceRepository) SetLanguage(ctx context.Context, lang entity.Language) error {
	return saveSnapshot(ctx, repo.store, keyLanguage, &lang)
}

// OfflineMode retrieves the offline-mode flag, defaulting to false.
func (repo *preferenceRepository) OfflineMode(ctx context.Context) (bool, error) {
	enabled, err := loadSnapshot[bool](ctx, repo.store, repo.logger, keyOfflineMode)
	if err != nil {
		if errors.Is(err, kvstore.ErrKeyNotFound) {
			return false, nil
		}

		return false, err
	}

	return *enabled, nil
}

// SetOfflineMode stores the offline-mode flag.
func (repo *preferenceRepository) SetOfflineMode(ctx context.Context, enabled bool) error {
	return saveSnapshot(ctx, repo.store, keyOfflineMode, &enabled)
}
