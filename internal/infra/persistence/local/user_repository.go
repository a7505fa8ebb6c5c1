package local

import (
	"context"
	"log/slog"

	"agroalerta/internal/domain/entity"
	"agroalerta/internal/domain/repository"
	"agroalerta/internal/errors"
	"agroalerta/internal/infra/kvstore"
)

// userProfileRepository persists the registered profile and the demo
// fallback credential pair.
type userProfileRepository struct {
	store  kvstore.Store
	logger *slog.Logger
}

// NewUserProfileRepository is the constructor for userProfileRepository.
func NewUserProfileRepository(store kvstore.Store, logger *slog.Logger) repository.UserProfileRepository {
	return &userProfileRepository{store: store, logger: logger}
}

// Find retrieves the registered profile.
func (repo *userProfileRepository) Find(ctx context.Context) (*entity.UserProfile, error) {
	profile, err := loadSnapshot[entity.UserProfile](ctx, repo.store, repo.logger, keyProfile)
	if err != nil {
		if errors.Is(err, kvstore.ErrKeyNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, err
	}

	return profile, nil
}

// Save overwrites the registered profile.
func (repo *userProfileRepository) Save(ctx context.Context, profile *entity.UserProfile) error {
	return saveSnapshot(ctx, repo.store, keyProfile, profile)
}

// FindDemoCredentials retrieves the fallback credential pair.
func (repo *userProfileRepository) FindDemoCredentials(ctx context.Context) (*entity.DemoCredentials, error) {
	creds, err := loadSnapshot[entity.DemoCredentials](ctx, repo.store, repo.logger, keyDemoUser)
	if err != nil {
		if errors.Is(err, kvstore.ErrKeyNotFound) {
			return nil, repository.ErrDemoCredentialsNotFound
		}

		return nil, err
	}

	return creds, nil
}

// SaveDemoCredentials overwrites the fallback credential pair.
func (repo *userProfileRepository) SaveDemoCredentials(ctx context.Context, creds *entity.DemoCredentials) error {
	return saveSnapshot(ctx, repo.store, keyDemoUser, creds)
}

// sessionRepository persists the single active session.
type sessionRepository struct {
	store  kvstore.Store
	logger *slog.Logger
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(store kvstore.Store, logger *slog.Logger) repository.SessionRepository {
	return &sessionRepository{store: store, logger: logger}
}

// Find retrieves the active session.
func (repo *sessionRepository) Find(ctx context.Context) (*entity.Session, error) {
	session, err := loadSnapshot[entity.Session](ctx, repo.store, repo.logger, keySession)
	if err != nil {
		if errors.Is(err, kvstore.ErrKeyNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, err
	}

	return session, nil
}

// Save overwrites the active session.
func (repo *sessionRepository) Save(ctx context.Context, session *entity.Session) error {
	return saveSnapshot(ctx, repo.store, keySession, session)
}

// Delete ends the session, leaving the registered profile intact.
func (repo *sessionRepository) Delete(ctx context.Context) error {
	return errors.Wrap(repo.store.Delete(ctx, keySession), "failed to delete session")
}
