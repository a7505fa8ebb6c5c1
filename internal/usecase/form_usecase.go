// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"agroalerta/internal/domain/entity"
)

// FieldHint is one advisory validation message. Hints never block editing;
// they are rendered next to the field.
type FieldHint struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// SubmitFormInput carries the consent flags collected at submission time.
type SubmitFormInput struct {
	RememberDevice     bool `json:"rememberDevice"`
	AllowNotifications bool `json:"allowNotifications"`
}

// FormStateOutput bundles the draft with its derived progress and hints.
type FormStateOutput struct {
	Draft    *entity.FormDraft `json:"draft"`
	Progress int               `json:"progress"`
	Hints    []FieldHint       `json:"hints"`
}

// FormUsecase manages the in-progress registration form: field-level edits,
// completion progress and submission into a registered profile.
type FormUsecase interface {
	// Get returns the current draft with progress and advisory hints.
	Get(ctx context.Context) (*FormStateOutput, error)

	// SetField assigns a single-value field and persists the whole draft.
	// Input filtering (DNI digits, phone characters) happens here.
	SetField(ctx context.Context, name, value string) (*FormStateOutput, error)

	// ToggleMember adds or removes a value from a multi-select field,
	// preventing duplicates, and persists the whole draft.
	ToggleMember(ctx context.Context, name, value string) (*FormStateOutput, error)

	// Progress returns the completion percentage over the fixed required set.
	Progress(ctx context.Context) (int, error)

	// Submit turns the draft into the registered profile. It fails below the
	// completion threshold; on success the draft is cleared.
	Submit(ctx context.Context, input SubmitFormInput) (*entity.UserProfile, error)
}
