package usecase

import (
	"context"

	"agroalerta/internal/domain/entity"
)

// Alert sort modes.
const (
	SortByDate     = "date"
	SortBySeverity = "severity"
)

// AlertFilters narrows and orders the alert list. All predicates are
// optional and AND-combined.
type AlertFilters struct {
	Type     *entity.AlertType     `json:"type,omitempty"`
	Severity *entity.SeverityLevel `json:"severity,omitempty"`
	Active   *bool                 `json:"showActive,omitempty"`
	Search   string                `json:"search,omitempty"`
	SortBy   string                `json:"sortBy,omitempty"`
}

// AlertUsecase serves the climate alert feed with client-side filtering.
type AlertUsecase interface {
	// List retrieves alerts matching the filters, ordered per SortBy.
	List(ctx context.Context, filters AlertFilters) ([]*entity.Alert, error)

	// Active retrieves the active alerts, independent of any filters.
	Active(ctx context.Context) ([]*entity.Alert, error)

	// Get retrieves a single alert.
	Get(ctx context.Context, id string) (*entity.Alert, error)

	// Share renders the alert as a shareable message.
	Share(ctx context.Context, id string) (string, error)
}
