package impl

import (
	"context"
	"testing"

	"agroalerta/config"
	"agroalerta/internal/domain/entity"
	domainerrors "agroalerta/internal/domain/errors"
	"agroalerta/internal/domain/repository"
	"agroalerta/internal/infra/auth"
	"agroalerta/internal/infra/kvstore"
	"agroalerta/internal/infra/persistence/local"
	"agroalerta/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authFixture struct {
	service     usecase.AuthUsecase
	profileRepo repository.UserProfileRepository
	sessionRepo repository.SessionRepository
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	store := kvstore.NewMemory()
	logger := testLogger()
	clk := &fixedClock{now: testNow()}

	cfg := &config.Config{}
	cfg.SecretKey.Session = "test-secret"
	tokenSvc, err := auth.NewJWTService(cfg, clk)
	require.NoError(t, err)

	profileRepo := local.NewUserProfileRepository(store, logger)
	sessionRepo := local.NewSessionRepository(store, logger)

	service := NewAuthService(AuthServiceParams{
		ProfileRepo: profileRepo,
		SessionRepo: sessionRepo,
		TokenSvc:    tokenSvc,
		Logger:      logger,
	})

	return &authFixture{service: service, profileRepo: profileRepo, sessionRepo: sessionRepo}
}

func registeredProfile() *entity.UserProfile {
	draft := entity.NewFormDraft()
	draft.Nombre = "María Quispe"
	draft.Telefono = "+51911222333"
	draft.Contrasena = "secreta1"
	draft.Provincia = "Acobamba"
	draft.MedioAlerta = []string{"sms", "Telegram"}

	return &entity.UserProfile{FormDraft: *draft, RegisteredAt: testNow()}
}

func TestAuthService_Login_RegisteredProfile(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	require.NoError(t, f.profileRepo.Save(ctx, registeredProfile()))

	output, err := f.service.Login(ctx, usecase.LoginInput{Phone: " +51911222333 ", Password: "secreta1"})
	require.NoError(t, err)

	assert.NotEmpty(t, output.Token)
	assert.True(t, output.Session.IsAuthenticated)
	assert.Equal(t, "María Quispe", output.Session.Name)
	assert.Equal(t, "Acobamba", output.Session.Location)
	assert.True(t, output.Session.Notifications.SMS)
	assert.True(t, output.Session.Notifications.Telegram)
	assert.False(t, output.Session.Notifications.Email)
}

func TestAuthService_Login_DemoFallback(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	creds := &entity.DemoCredentials{Telefono: "+51987654321", Contrasena: "password123"}
	require.NoError(t, f.profileRepo.SaveDemoCredentials(ctx, creds))

	output, err := f.service.Login(ctx, usecase.LoginInput{Phone: "+51987654321", Password: "password123"})
	require.NoError(t, err)

	assert.Equal(t, "Usuario +51987654321", output.Session.Name)
	assert.Equal(t, "Huancavelica Centro", output.Session.Location)
	assert.True(t, output.Session.Notifications.SMS)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	require.NoError(t, f.profileRepo.Save(ctx, registeredProfile()))

	_, err := f.service.Login(ctx, usecase.LoginInput{Phone: "+51911222333", Password: "incorrecta"})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_CREDENTIALS", appErr.ErrorCode())
}

func TestAuthService_Login_NoRegisteredUser(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.service.Login(context.Background(), usecase.LoginInput{Phone: "+51911222333", Password: "x"})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NO_REGISTERED_USER", appErr.ErrorCode())
}

func TestAuthService_Logout_KeepsProfile(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	require.NoError(t, f.profileRepo.Save(ctx, registeredProfile()))

	_, err := f.service.Login(ctx, usecase.LoginInput{Phone: "+51911222333", Password: "secreta1"})
	require.NoError(t, err)

	require.NoError(t, f.service.Logout(ctx))

	_, err = f.service.Current(ctx)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NO_SESSION", appErr.ErrorCode())

	// Logging in again still works: the profile survived.
	_, err = f.service.Login(ctx, usecase.LoginInput{Phone: "+51911222333", Password: "secreta1"})
	require.NoError(t, err)
}

func TestAuthService_UpdateConsents(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	require.NoError(t, f.profileRepo.Save(ctx, registeredProfile()))

	_, err := f.service.Login(ctx, usecase.LoginInput{Phone: "+51911222333", Password: "secreta1"})
	require.NoError(t, err)

	session, err := f.service.UpdateConsents(ctx, entity.NotificationChannels{Email: true})
	require.NoError(t, err)
	assert.True(t, session.Notifications.Email)
	assert.False(t, session.Notifications.SMS)

	current, err := f.service.Current(ctx)
	require.NoError(t, err)
	assert.True(t, current.Notifications.Email)
}
