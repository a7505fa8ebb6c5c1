// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"agroalerta/internal/domain/entity"
	"agroalerta/internal/errors"
)

// Domain-specific errors for form persistence.
var (
	// ErrDraftNotFound is returned when no form draft has been saved yet.
	ErrDraftNotFound = errors.New("form draft not found")
)

// FormDraftRepository persists the single in-progress registration form.
type FormDraftRepository interface {
	// Load retrieves the saved draft. Returns ErrDraftNotFound when no draft
	// exists or the stored snapshot could not be decoded.
	Load(ctx context.Context) (*entity.FormDraft, error)

	// Save overwrites the stored draft with the full current state.
	Save(ctx context.Context, draft *entity.FormDraft) error

	// Clear removes the stored draft.
	Clear(ctx context.Context) error
}
