package usecase

import (
	"context"

	"agroalerta/internal/domain/entity"
)

// RecommendationUsecase runs the advice rule table over the current crops,
// active alerts and weather, and manages the persisted advice list.
type RecommendationUsecase interface {
	// Refresh regenerates advice from current inputs, purges expired entries,
	// deduplicates against the recent window and persists the merged list.
	Refresh(ctx context.Context) ([]*entity.Recommendation, error)

	// List retrieves the persisted advice, newest first.
	List(ctx context.Context) ([]*entity.Recommendation, error)

	// MarkRead flips the read flag of one entry.
	MarkRead(ctx context.Context, id string) error

	// Dismiss removes one entry.
	Dismiss(ctx context.Context, id string) error

	// MarkAllRead flips the read flag of every entry.
	MarkAllRead(ctx context.Context) error

	// UnreadCount counts the unread entries.
	UnreadCount(ctx context.Context) (int, error)

	// Priority retrieves the unread high-priority entries.
	Priority(ctx context.Context) ([]*entity.Recommendation, error)
}
