// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"agroalerta/internal/domain/entity"
	"agroalerta/internal/errors"
)

// Domain-specific errors for crop persistence.
var (
	// ErrCropNotFound is returned when a crop id does not exist.
	ErrCropNotFound = errors.New("crop not found")
)

// CropRepository persists the crop list as one snapshot. Mutations go through
// read-modify-write of the whole list within a single synchronous call so the
// in-memory view and the stored snapshot never diverge.
type CropRepository interface {
	// List retrieves every stored crop. A missing or undecodable snapshot
	// yields an empty list.
	List(ctx context.Context) ([]*entity.Crop, error)

	// ReplaceAll atomically overwrites the stored crop list.
	ReplaceAll(ctx context.Context, crops []*entity.Crop) error
}
