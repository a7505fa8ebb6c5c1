// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"math"
	"reflect"
	"strconv"
	"strings"

	deliverycontext "agroalerta/internal/delivery/context"
	"agroalerta/internal/domain/entity"
	domainerrors "agroalerta/internal/domain/errors"
	"agroalerta/internal/domain/repository"
	"agroalerta/internal/domain/service"
	"agroalerta/internal/errors"
	"agroalerta/internal/usecase"

	"github.com/go-playground/validator/v10"
	"go.uber.org/fx"
)

const (
	dniLength = 8

	// submitThreshold is the minimum completion percentage accepted at submit.
	submitThreshold = 50

	// requiredSlotsExtra counts the multi-select slots (medio_alerta and
	// cultivos) that join the scalar fields in the required set.
	requiredSlotsExtra = 2
)

// formService implements the FormUsecase interface.
type formService struct {
	draftRepo   repository.FormDraftRepository
	profileRepo repository.UserProfileRepository
	clock       service.Clock
	validate    *validator.Validate
	logger      *slog.Logger
}

// FormServiceParams holds dependencies for formService, injected by Fx.
type FormServiceParams struct {
	fx.In

	DraftRepo   repository.FormDraftRepository
	ProfileRepo repository.UserProfileRepository
	Clock       service.Clock
	Logger      *slog.Logger
}

// NewFormService is the constructor for formService.
func NewFormService(params FormServiceParams) usecase.FormUsecase {
	return &formService{
		draftRepo:   params.DraftRepo,
		profileRepo: params.ProfileRepo,
		clock:       params.Clock,
		validate:    newDraftValidator(),
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *formService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Get returns the current draft with progress and advisory hints.
func (srv *formService) Get(ctx context.Context) (*usecase.FormStateOutput, error) {
	draft, err := srv.loadDraft(ctx)
	if err != nil {
		return nil, err
	}

	return srv.state(draft), nil
}

// SetField assigns a single-value field and persists the whole draft.
func (srv *formService) SetField(ctx context.Context, name, value string) (*usecase.FormStateOutput, error) {
	draft, err := srv.loadDraft(ctx)
	if err != nil {
		return nil, err
	}

	switch name {
	case entity.FieldDNI:
		value = sanitizeDNI(value)
	case entity.FieldTelefono:
		value = sanitizePhone(value)
	}

	if !draft.SetScalarField(name, value) {
		return nil, domainerrors.ErrUnknownField.WithDetails(name)
	}

	if err := srv.draftRepo.Save(ctx, draft); err != nil {
		srv.log(ctx).Error("Failed to persist form draft", slog.String("field", name), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to persist form draft")
	}

	return srv.state(draft), nil
}

// ToggleMember adds or removes a value from a multi-select field.
func (srv *formService) ToggleMember(ctx context.Context, name, value string) (*usecase.FormStateOutput, error) {
	draft, err := srv.loadDraft(ctx)
	if err != nil {
		return nil, err
	}

	members, ok := draft.MultiField(name)
	if !ok {
		return nil, domainerrors.ErrUnknownField.WithDetails(name)
	}

	idx := -1
	for i, m := range *members {
		if m == value {
			idx = i

			break
		}
	}
	if idx >= 0 {
		*members = append((*members)[:idx], (*members)[idx+1:]...)
	} else {
		*members = append(*members, value)
	}

	if err := srv.draftRepo.Save(ctx, draft); err != nil {
		srv.log(ctx).Error("Failed to persist form draft", slog.String("field", name), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to persist form draft")
	}

	return srv.state(draft), nil
}

// Progress returns the completion percentage over the fixed required set.
func (srv *formService) Progress(ctx context.Context) (int, error) {
	draft, err := srv.loadDraft(ctx)
	if err != nil {
		return 0, err
	}

	return progressOf(draft), nil
}

// Submit turns the draft into the registered profile.
func (srv *formService) Submit(ctx context.Context, input usecase.SubmitFormInput) (*entity.UserProfile, error) {
	draft, err := srv.loadDraft(ctx)
	if err != nil {
		return nil, err
	}

	progress := progressOf(draft)
	if progress < submitThreshold {
		srv.log(ctx).Warn("Registration rejected below completion threshold", slog.Int("progress", progress))

		return nil, domainerrors.ErrFormIncomplete
	}

	profile := &entity.UserProfile{
		FormDraft:          *draft,
		RegisteredAt:       srv.clock.Now(),
		RememberDevice:     input.RememberDevice,
		AllowNotifications: input.AllowNotifications,
	}

	if err := srv.profileRepo.Save(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "failed to persist registered profile")
	}

	// The submitted credentials also become the device's login pair.
	creds := &entity.DemoCredentials{Telefono: draft.Telefono, Contrasena: draft.Contrasena}
	if err := srv.profileRepo.SaveDemoCredentials(ctx, creds); err != nil {
		return nil, errors.Wrap(err, "failed to persist login credentials")
	}

	if err := srv.draftRepo.Clear(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to clear form draft")
	}

	srv.log(ctx).Info("Registration submitted", slog.String("phone", profile.Telefono))

	return profile, nil
}

func (srv *formService) loadDraft(ctx context.Context) (*entity.FormDraft, error) {
	draft, err := srv.draftRepo.Load(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrDraftNotFound) {
			return entity.NewFormDraft(), nil
		}

		return nil, errors.Wrap(err, "failed to load form draft")
	}

	return draft, nil
}

func (srv *formService) state(draft *entity.FormDraft) *usecase.FormStateOutput {
	return &usecase.FormStateOutput{
		Draft:    draft,
		Progress: progressOf(draft),
		Hints:    srv.hints(draft),
	}
}

// hints runs the advisory validation. Failures never block editing.
func (srv *formService) hints(draft *entity.FormDraft) []usecase.FieldHint {
	hints := []usecase.FieldHint{}

	err := srv.validate.Struct(draft)
	if err == nil {
		return hints
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return hints
	}

	for _, fe := range fieldErrs {
		hints = append(hints, usecase.FieldHint{Field: fe.Field(), Message: hintMessage(fe)})
	}

	return hints
}

func hintMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case entity.FieldDNI:
		return "El DNI debe tener exactamente 8 dígitos"
	case entity.FieldTelefono:
		return "Use el formato +51 seguido de 9 dígitos"
	case entity.FieldEmail:
		return "Ingrese un correo electrónico válido"
	case entity.FieldAltitud:
		return "La altitud debe estar entre 0 y 5000 msnm"
	case entity.FieldContrasena:
		return "La contraseña debe tener al menos 6 caracteres"
	default:
		return "Revise este campo"
	}
}

// progressOf computes round(100 * filled / total) over the fixed required
// set: every scalar required field plus the two multi-selects.
func progressOf(draft *entity.FormDraft) int {
	required := entity.RequiredScalarFields()
	total := len(required) + requiredSlotsExtra

	filled := 0
	for _, name := range required {
		if value, ok := draft.ScalarField(name); ok && value != "" {
			filled++
		}
	}
	if len(draft.MedioAlerta) > 0 {
		filled++
	}
	if len(draft.Cultivos) > 0 {
		filled++
	}

	return int(math.Round(100 * float64(filled) / float64(total)))
}

// sanitizeDNI keeps only digits and clamps the length to 8.
func sanitizeDNI(value string) string {
	var b strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
			if b.Len() == dniLength {
				break
			}
		}
	}

	return b.String()
}

// sanitizePhone keeps a leading plus sign and digits.
func sanitizePhone(value string) string {
	var b strings.Builder
	for i, r := range value {
		if r == '+' && i == 0 {
			b.WriteRune(r)

			continue
		}
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// newDraftValidator builds the advisory validator with the two custom rules
// the draft uses: the Peruvian phone format and the altitude range.
func newDraftValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	_ = v.RegisterValidation("e164_pe", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		if !strings.HasPrefix(value, "+51") || len(value) != 12 {
			return false
		}
		for _, r := range value[3:] {
			if r < '0' || r > '9' {
				return false
			}
		}

		return true
	})

	_ = v.RegisterValidation("altitude", func(fl validator.FieldLevel) bool {
		altitude, err := strconv.ParseFloat(fl.Field().String(), 64)
		if err != nil {
			return false
		}

		return altitude >= 0 && altitude <= 5000
	})

	return v
}
