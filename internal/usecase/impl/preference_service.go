package impl

import (
	"context"
	"log/slog"

	deliverycontext "agroalerta/internal/delivery/context"
	"agroalerta/internal/domain/entity"
	domainerrors "agroalerta/internal/domain/errors"
	"agroalerta/internal/domain/repository"
	"agroalerta/internal/errors"
	"agroalerta/internal/usecase"

	"go.uber.org/fx"
)

// preferenceService implements the PreferenceUsecase interface.
type preferenceService struct {
	prefRepo repository.PreferenceRepository
	logger   *slog.Logger
}

// PreferenceServiceParams holds dependencies for preferenceService, injected by Fx.
type PreferenceServiceParams struct {
	fx.In

	PrefRepo repository.PreferenceRepository
	Logger   *slog.Logger
}

// NewPreferenceService is the constructor for preferenceService.
func NewPreferenceService(params PreferenceServiceParams) usecase.PreferenceUsecase {
	return &preferenceService{
		prefRepo: params.PrefRepo,
		logger:   params.Logger,
	}
}

func (srv *preferenceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Get retrieves the current settings.
func (srv *preferenceService) Get(ctx context.Context) (*usecase.Preferences, error) {
	lang, err := srv.prefRepo.Language(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load language")
	}

	offline, err := srv.prefRepo.OfflineMode(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load offline mode")
	}

	return &usecase.Preferences{Language: lang, OfflineMode: offline}, nil
}

// SetLanguage stores the UI language.
func (srv *preferenceService) SetLanguage(ctx context.Context, lang entity.Language) error {
	if !lang.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("idioma no soportado")
	}

	if err := srv.prefRepo.SetLanguage(ctx, lang); err != nil {
		return errors.Wrap(err, "failed to persist language")
	}

	srv.log(ctx).Info("Language changed", slog.String("language", string(lang)))

	return nil
}

// SetOfflineMode stores the offline-mode flag.
func (srv *preferenceService) SetOfflineMode(ctx context.Context, enabled bool) error {
	if err := srv.prefRepo.SetOfflineMode(ctx, enabled); err != nil {
		return errors.Wrap(err, "failed to persist offline mode")
	}

	srv.log(ctx).Info("Offline mode changed", slog.Bool("enabled", enabled))

	return nil
}
