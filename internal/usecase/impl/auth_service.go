package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "agroalerta/internal/delivery/context"
	"agroalerta/internal/domain/entity"
	domainerrors "agroalerta/internal/domain/errors"
	"agroalerta/internal/domain/repository"
	"agroalerta/internal/domain/service"
	"agroalerta/internal/errors"
	"agroalerta/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const defaultLocation = "Huancavelica Centro"

// authService implements the AuthUsecase interface.
type authService struct {
	profileRepo repository.UserProfileRepository
	sessionRepo repository.SessionRepository
	tokenSvc    service.TokenService
	logger      *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	ProfileRepo repository.UserProfileRepository
	SessionRepo repository.SessionRepository
	TokenSvc    service.TokenService
	Logger      *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		profileRepo: params.ProfileRepo,
		sessionRepo: params.SessionRepo,
		tokenSvc:    params.TokenSvc,
		logger:      params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login verifies the submitted credentials against the registered profile
// first and the stored fallback pair second, then creates the session.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	phone := strings.TrimSpace(input.Phone)
	password := strings.TrimSpace(input.Password)

	session, err := srv.authenticate(ctx, phone, password)
	if err != nil {
		return nil, err
	}

	if err := srv.sessionRepo.Save(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to persist session")
	}

	token, err := srv.tokenSvc.GenerateSessionToken(session.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign session token")
	}

	srv.log(ctx).Info("Login succeeded", slog.String("phone", phone))

	return &usecase.LoginOutput{Session: session, Token: token}, nil
}

func (srv *authService) authenticate(ctx context.Context, phone, password string) (*entity.Session, error) {
	profile, profileErr := srv.profileRepo.Find(ctx)
	if profileErr != nil && !errors.Is(profileErr, repository.ErrProfileNotFound) {
		return nil, errors.Wrap(profileErr, "failed to load registered profile")
	}

	if profile != nil {
		if profile.Telefono == phone && profile.Contrasena == password {
			return &entity.Session{
				ID:              uuid.New().String(),
				Phone:           phone,
				Name:            profile.Nombre,
				Location:        locationOf(profile),
				IsAuthenticated: true,
				Notifications:   entity.ChannelsFromMedios(profile.MedioAlerta),
			}, nil
		}
	}

	creds, credsErr := srv.profileRepo.FindDemoCredentials(ctx)
	if credsErr != nil && !errors.Is(credsErr, repository.ErrDemoCredentialsNotFound) {
		return nil, errors.Wrap(credsErr, "failed to load fallback credentials")
	}

	if creds != nil {
		if creds.Telefono == phone && creds.Contrasena == password {
			return &entity.Session{
				ID:              uuid.New().String(),
				Phone:           phone,
				Name:            "Usuario " + phone,
				Location:        defaultLocation,
				IsAuthenticated: true,
				Notifications:   entity.NotificationChannels{SMS: true},
			}, nil
		}
	}

	if profile == nil && creds == nil {
		srv.log(ctx).Warn("Login attempted with no registered user")

		return nil, domainerrors.ErrNoRegisteredUser
	}

	srv.log(ctx).Warn("Login rejected", slog.String("phone", phone))

	return nil, domainerrors.ErrInvalidCredentials
}

// Logout destroys the session. The registered profile stays behind so the
// farmer can log in again.
func (srv *authService) Logout(ctx context.Context) error {
	if err := srv.sessionRepo.Delete(ctx); err != nil {
		return errors.Wrap(err, "failed to delete session")
	}

	srv.log(ctx).Info("Logout completed")

	return nil
}

// Current returns the active session.
func (srv *authService) Current(ctx context.Context) (*entity.Session, error) {
	session, err := srv.sessionRepo.Find(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, domainerrors.ErrNoSession
		}

		return nil, errors.Wrap(err, "failed to load session")
	}

	return session, nil
}

// UpdateConsents rewrites the session's notification channels.
func (srv *authService) UpdateConsents(ctx context.Context, channels entity.NotificationChannels) (*entity.Session, error) {
	session, err := srv.Current(ctx)
	if err != nil {
		return nil, err
	}

	session.Notifications = channels
	if err := srv.sessionRepo.Save(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to persist session")
	}

	return session, nil
}

func locationOf(profile *entity.UserProfile) string {
	if profile.Provincia != "" {
		return profile.Provincia
	}

	return defaultLocation
}
