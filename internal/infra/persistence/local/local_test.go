package local

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"agroalerta/internal/domain/entity"
	"agroalerta/internal/domain/repository"
	"agroalerta/internal/infra/kvstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFormDraftRepository_RoundTrip(t *testing.T) {
	store := kvstore.NewMemory()
	repo := NewFormDraftRepository(store, testLogger())
	ctx := context.Background()

	_, err := repo.Load(ctx)
	assert.ErrorIs(t, err, repository.ErrDraftNotFound)

	draft := entity.NewFormDraft()
	draft.Nombre = "María Quispe"
	draft.DNI = "12345678"
	draft.Contrasena = "secreta1"
	draft.Cultivos = []string{"papa", "quinua"}

	require.NoError(t, repo.Save(ctx, draft))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, draft, loaded)

	require.NoError(t, repo.Clear(ctx))
	_, err = repo.Load(ctx)
	assert.ErrorIs(t, err, repository.ErrDraftNotFound)
}

func TestFormDraftRepository_UsesSpanishFieldNames(t *testing.T) {
	store := kvstore.NewMemory()
	repo := NewFormDraftRepository(store, testLogger())
	ctx := context.Background()

	// Snapshots written by earlier versions of the platform are readable.
	raw := []byte(`{"nombre":"Juan","contraseña":"clave123","cultivos":["papa"]}`)
	require.NoError(t, store.Set(ctx, "agriculturalForm", raw))

	draft, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Juan", draft.Nombre)
	assert.Equal(t, "clave123", draft.Contrasena)
	assert.Equal(t, []string{"papa"}, draft.Cultivos)
	assert.Equal(t, []string{}, draft.MedioAlerta, "absent multi-selects load as empty slices")
}

func TestFormDraftRepository_DiscardsCorruptedSnapshot(t *testing.T) {
	store := kvstore.NewMemory()
	repo := NewFormDraftRepository(store, testLogger())
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "agriculturalForm", []byte(`{not json`)))

	_, err := repo.Load(ctx)
	assert.ErrorIs(t, err, repository.ErrDraftNotFound)

	// The corrupted blob is gone so the next save starts clean.
	_, err = store.Get(ctx, "agriculturalForm")
	assert.ErrorIs(t, err, kvstore.ErrKeyNotFound)
}

func TestCropRepository_EmptyOnMissingKey(t *testing.T) {
	repo := NewCropRepository(kvstore.NewMemory(), testLogger())

	crops, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, crops)
}

func TestCropRepository_RoundTrip(t *testing.T) {
	repo := NewCropRepository(kvstore.NewMemory(), testLogger())
	ctx := context.Background()

	planted := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	crops := []*entity.Crop{{
		ID:           "1715000000000",
		Name:         "Papa Blanca",
		Type:         entity.CropPotato,
		Area:         2.5,
		Location:     "Huancavelica",
		PlantingDate: &planted,
		CreatedAt:    planted,
		UpdatedAt:    planted,
	}}

	require.NoError(t, repo.ReplaceAll(ctx, crops))

	loaded, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, crops, loaded)
}

func TestCropRepository_AcceptsStringAreas(t *testing.T) {
	store := kvstore.NewMemory()
	repo := NewCropRepository(store, testLogger())
	ctx := context.Background()

	// Historical snapshots stored the area as a quoted string.
	raw := []byte(`[{"id":"1","name":"Papa","type":"papa","area":"2.5","location":"Huancavelica",` +
		`"createdAt":"2024-03-01T00:00:00Z","updatedAt":"2024-03-01T00:00:00Z"}]`)
	require.NoError(t, store.Set(ctx, "crops", raw))

	crops, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, crops, 1)
	assert.Equal(t, entity.Hectares(2.5), crops[0].Area)
}

func TestUserProfileRepository_DemoCredentials(t *testing.T) {
	store := kvstore.NewMemory()
	repo := NewUserProfileRepository(store, testLogger())
	ctx := context.Background()

	_, err := repo.FindDemoCredentials(ctx)
	assert.ErrorIs(t, err, repository.ErrDemoCredentialsNotFound)

	creds := &entity.DemoCredentials{Telefono: "+51987654321", Contrasena: "password123"}
	require.NoError(t, repo.SaveDemoCredentials(ctx, creds))

	// The stored blob keeps the historical field name.
	raw, err := store.Get(ctx, "demoUser")
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"contraseña":"password123"`)

	loaded, err := repo.FindDemoCredentials(ctx)
	require.NoError(t, err)
	assert.Equal(t, creds, loaded)
}

func TestSessionRepository_Lifecycle(t *testing.T) {
	store := kvstore.NewMemory()
	repo := NewSessionRepository(store, testLogger())
	ctx := context.Background()

	_, err := repo.Find(ctx)
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)

	session := &entity.Session{
		ID:              "s1",
		Phone:           "+51987654321",
		Name:            "Usuario +51987654321",
		Location:        "Huancavelica Centro",
		IsAuthenticated: true,
		Notifications:   entity.NotificationChannels{SMS: true},
	}
	require.NoError(t, repo.Save(ctx, session))

	// The session lives under the historical key.
	_, err = store.Get(ctx, "climaAlert_user")
	require.NoError(t, err)

	loaded, err := repo.Find(ctx)
	require.NoError(t, err)
	assert.Equal(t, session, loaded)

	require.NoError(t, repo.Delete(ctx))
	require.NoError(t, repo.Delete(ctx), "deleting an absent session is not an error")
	_, err = repo.Find(ctx)
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
}

func TestPreferenceRepository_Defaults(t *testing.T) {
	repo := NewPreferenceRepository(kvstore.NewMemory(), testLogger())
	ctx := context.Background()

	lang, err := repo.Language(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.LanguageSpanish, lang)

	offline, err := repo.OfflineMode(ctx)
	require.NoError(t, err)
	assert.False(t, offline)
}

func TestPreferenceRepository_RoundTrip(t *testing.T) {
	repo := NewPreferenceRepository(kvstore.NewMemory(), testLogger())
	ctx := context.Background()

	require.NoError(t, repo.SetLanguage(ctx, entity.LanguageQuechua))
	require.NoError(t, repo.SetOfflineMode(ctx, true))

	lang, err := repo.Language(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.LanguageQuechua, lang)

	offline, err := repo.OfflineMode(ctx)
	require.NoError(t, err)
	assert.True(t, offline)
}
