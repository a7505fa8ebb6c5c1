// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"agroalerta/internal/domain/entity"
	"agroalerta/internal/errors"
)

// Domain-specific errors for the alert feed.
var (
	// ErrAlertNotFound is returned when an alert id does not exist.
	ErrAlertNotFound = errors.New("alert not found")
)

// AlertRepository is the read-only climate alert feed. Alerts are published
// upstream and never mutated here.
type AlertRepository interface {
	// List retrieves every known alert, unfiltered.
	List(ctx context.Context) ([]*entity.Alert, error)

	// FindByID retrieves a single alert.
	FindByID(ctx context.Context, id string) (*entity.Alert, error)
}
