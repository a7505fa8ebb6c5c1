package usecase

import (
	"context"

	"agroalerta/internal/domain/entity"
)

// Preferences bundles the device-level settings.
type Preferences struct {
	Language    entity.Language `json:"language"`
	OfflineMode bool            `json:"offlineMode"`
}

// PreferenceUsecase manages the UI language and the offline-mode flag.
type PreferenceUsecase interface {
	// Get retrieves the current settings.
	Get(ctx context.Context) (*Preferences, error)

	// SetLanguage stores the UI language; only es, qu and en are accepted.
	SetLanguage(ctx context.Context, lang entity.Language) error

	// SetOfflineMode stores the offline-mode flag.
	SetOfflineMode(ctx context.Context, enabled bool) error
}
