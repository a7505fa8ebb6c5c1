package impl

import (
	"context"
	"testing"

	"agroalerta/internal/domain/entity"
	domainerrors "agroalerta/internal/domain/errors"
	"agroalerta/internal/infra/kvstore"
	"agroalerta/internal/infra/persistence/local"
	"agroalerta/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPreferenceService(t *testing.T) usecase.PreferenceUsecase {
	t.Helper()

	logger := testLogger()

	return NewPreferenceService(PreferenceServiceParams{
		PrefRepo: local.NewPreferenceRepository(kvstore.NewMemory(), logger),
		Logger:   logger,
	})
}

func TestPreferenceService_Defaults(t *testing.T) {
	service := newPreferenceService(t)

	prefs, err := service.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, entity.LanguageSpanish, prefs.Language)
	assert.False(t, prefs.OfflineMode)
}

func TestPreferenceService_SetLanguage(t *testing.T) {
	service := newPreferenceService(t)
	ctx := context.Background()

	require.NoError(t, service.SetLanguage(ctx, entity.LanguageQuechua))

	prefs, err := service.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.LanguageQuechua, prefs.Language)
}

func TestPreferenceService_SetLanguage_Invalid(t *testing.T) {
	service := newPreferenceService(t)

	err := service.SetLanguage(context.Background(), "fr")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestPreferenceService_SetOfflineMode(t *testing.T) {
	service := newPreferenceService(t)
	ctx := context.Background()

	require.NoError(t, service.SetOfflineMode(ctx, true))

	prefs, err := service.Get(ctx)
	require.NoError(t, err)
	assert.True(t, prefs.OfflineMode)
}
