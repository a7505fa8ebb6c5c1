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

func newFormService(t *testing.T) (usecase.FormUsecase, kvstore.Store) {
	t.Helper()

	store := kvstore.NewMemory()
	logger := testLogger()

	return NewFormService(FormServiceParams{
		DraftRepo:   local.NewFormDraftRepository(store, logger),
		ProfileRepo: local.NewUserProfileRepository(store, logger),
		Clock:       &fixedClock{now: testNow()},
		Logger:      logger,
	}), store
}

func TestFormService_SetField_SanitizesDNI(t *testing.T) {
	service, _ := newFormService(t)
	ctx := context.Background()

	state, err := service.SetField(ctx, entity.FieldDNI, "12a3-45678extra")
	require.NoError(t, err)
	assert.Equal(t, "12345678", state.Draft.DNI)
}

func TestFormService_SetField_SanitizesPhone(t *testing.T) {
	service, _ := newFormService(t)
	ctx := context.Background()

	state, err := service.SetField(ctx, entity.FieldTelefono, "+51 987-654 321")
	require.NoError(t, err)
	assert.Equal(t, "+51987654321", state.Draft.Telefono)
}

func TestFormService_SetField_UnknownField(t *testing.T) {
	service, _ := newFormService(t)

	_, err := service.SetField(context.Background(), "apellido", "x")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "UNKNOWN_FIELD", appErr.ErrorCode())
}

func TestFormService_Progress_MonotonicToFull(t *testing.T) {
	service, _ := newFormService(t)
	ctx := context.Background()

	progress, err := service.Progress(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, progress)

	values := map[string]string{
		entity.FieldNombre:                     "María Quispe",
		entity.FieldDNI:                        "12345678",
		entity.FieldTelefono:                   "+51987654321",
		entity.FieldEmail:                      "maria@example.com",
		entity.FieldProvincia:                  "Huancavelica",
		entity.FieldExtension:                  "2.5",
		entity.FieldProblemasClima:             "heladas",
		entity.FieldAltitud:                    "3700",
		entity.FieldExperiencia:                "10",
		entity.FieldUsaPrediccion:              "si",
		entity.FieldImportanciaRecomendaciones: "alta",
	}

	previous := 0
	for _, name := range entity.RequiredScalarFields() {
		state, err := service.SetField(ctx, name, values[name])
		require.NoError(t, err)
		assert.GreaterOrEqual(t, state.Progress, previous, "progress must never decrease")
		previous = state.Progress
	}

	_, err = service.ToggleMember(ctx, entity.FieldMedioAlerta, "sms")
	require.NoError(t, err)
	state, err := service.ToggleMember(ctx, entity.FieldCultivos, "papa")
	require.NoError(t, err)

	assert.Equal(t, 100, state.Progress)
}

func TestFormService_ToggleMember_AddAndRemove(t *testing.T) {
	service, _ := newFormService(t)
	ctx := context.Background()

	state, err := service.ToggleMember(ctx, entity.FieldCultivos, "papa")
	require.NoError(t, err)
	assert.Equal(t, []string{"papa"}, state.Draft.Cultivos)

	state, err = service.ToggleMember(ctx, entity.FieldCultivos, "quinua")
	require.NoError(t, err)
	assert.Equal(t, []string{"papa", "quinua"}, state.Draft.Cultivos)

	state, err = service.ToggleMember(ctx, entity.FieldCultivos, "papa")
	require.NoError(t, err)
	assert.Equal(t, []string{"quinua"}, state.Draft.Cultivos)
}

func TestFormService_Hints_AdvisoryOnly(t *testing.T) {
	service, _ := newFormService(t)
	ctx := context.Background()

	// A short DNI is persisted anyway; the hint just flags it.
	state, err := service.SetField(ctx, entity.FieldDNI, "123")
	require.NoError(t, err)
	assert.Equal(t, "123", state.Draft.DNI)

	found := false
	for _, hint := range state.Hints {
		if hint.Field == entity.FieldDNI {
			found = true
		}
	}
	assert.True(t, found, "expected a hint for the dni field")
}

func TestFormService_Submit_BelowThreshold(t *testing.T) {
	service, _ := newFormService(t)
	ctx := context.Background()

	_, err := service.SetField(ctx, entity.FieldNombre, "María")
	require.NoError(t, err)

	_, err = service.Submit(ctx, usecase.SubmitFormInput{})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "FORM_INCOMPLETE", appErr.ErrorCode())
}

func TestFormService_Submit_RegistersProfileAndClearsDraft(t *testing.T) {
	service, store := newFormService(t)
	ctx := context.Background()

	fields := map[string]string{
		entity.FieldNombre:         "María Quispe",
		entity.FieldDNI:            "12345678",
		entity.FieldTelefono:       "+51911222333",
		entity.FieldEmail:          "maria@example.com",
		entity.FieldProvincia:      "Acobamba",
		entity.FieldExtension:      "2.5",
		entity.FieldProblemasClima: "heladas",
		entity.FieldContrasena:     "secreta1",
	}
	for name, value := range fields {
		_, err := service.SetField(ctx, name, value)
		require.NoError(t, err)
	}
	_, err := service.ToggleMember(ctx, entity.FieldMedioAlerta, "sms")
	require.NoError(t, err)

	profile, err := service.Submit(ctx, usecase.SubmitFormInput{RememberDevice: true, AllowNotifications: true})
	require.NoError(t, err)
	assert.Equal(t, "María Quispe", profile.Nombre)
	assert.Equal(t, testNow(), profile.RegisteredAt)
	assert.True(t, profile.RememberDevice)

	// The submitted credentials become the login pair.
	logger := testLogger()
	creds, err := local.NewUserProfileRepository(store, logger).FindDemoCredentials(ctx)
	require.NoError(t, err)
	assert.Equal(t, "+51911222333", creds.Telefono)
	assert.Equal(t, "secreta1", creds.Contrasena)

	// The draft is gone.
	state, err := service.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, state.Progress)
	assert.Empty(t, state.Draft.Nombre)
}
