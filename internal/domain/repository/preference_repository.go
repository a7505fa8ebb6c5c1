// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"agroalerta/internal/domain/entity"
)

// PreferenceRepository persists the small device-level settings: the UI
// language tag and the offline-mode flag. Absent values fall back to their
// defaults rather than erroring.
type PreferenceRepository interface {
	// Language retrieves the selected UI language, defaulting to Spanish.
	Language(ctx context.Context) (entity.Language, error)

	// SetLanguage stores the selected UI language.
	SetLanguage(ctx context.Context, lang entity.Language) error

	// OfflineMode retrieves the offline-mode flag, defaulting to false.
	OfflineMode(ctx context.Context) (bool, error)

	// SetOfflineMode stores the offline-mode flag.
	SetOfflineMode(ctx context.Context, enabled bool) error
}
