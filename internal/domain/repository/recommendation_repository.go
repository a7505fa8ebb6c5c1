// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"agroalerta/internal/domain/entity"
	"agroalerta/internal/errors"
)

// Domain-specific errors for recommendation persistence.
var (
	// ErrRecommendationNotFound is returned when a recommendation id does not exist.
	ErrRecommendationNotFound = errors.New("recommendation not found")
)

// RecommendationRepository persists the generated advice list as one
// snapshot, mirroring the crop repository's read-modify-write contract.
type RecommendationRepository interface {
	// List retrieves every stored recommendation. A missing or undecodable
	// snapshot yields an empty list.
	List(ctx context.Context) ([]*entity.Recommendation, error)

	// ReplaceAll atomically overwrites the stored recommendation list.
	ReplaceAll(ctx context.Context, recs []*entity.Recommendation) error
}
