package usecase

import (
	"context"
	"time"

	"agroalerta/internal/domain/entity"
)

// AddCropInput defines the data required to register a crop.
type AddCropInput struct {
	Name         string          `json:"name"`
	Type         entity.CropType `json:"type"`
	Area         entity.Hectares `json:"area"`
	Location     string          `json:"location"`
	PlantingDate *time.Time      `json:"plantingDate,omitempty"`
	HarvestDate  *time.Time      `json:"harvestDate,omitempty"`
	Notes        string          `json:"notes,omitempty"`
}

// UpdateCropInput defines a partial crop update; nil fields are untouched.
type UpdateCropInput struct {
	Name         *string          `json:"name,omitempty"`
	Type         *entity.CropType `json:"type,omitempty"`
	Area         *entity.Hectares `json:"area,omitempty"`
	Location     *string          `json:"location,omitempty"`
	PlantingDate *time.Time       `json:"plantingDate,omitempty"`
	HarvestDate  *time.Time       `json:"harvestDate,omitempty"`
	Notes        *string          `json:"notes,omitempty"`
}

// CropUsecase manages the farmer's registered plots and their derived
// aggregates.
type CropUsecase interface {
	// Add registers a crop, assigning its id and timestamps.
	Add(ctx context.Context, input AddCropInput) (*entity.Crop, error)

	// Update merges the provided fields into an existing crop.
	Update(ctx context.Context, id string, input UpdateCropInput) (*entity.Crop, error)

	// Delete removes a crop by id.
	Delete(ctx context.Context, id string) error

	// Get retrieves a crop by id.
	Get(ctx context.Context, id string) (*entity.Crop, error)

	// List retrieves every crop.
	List(ctx context.Context) ([]*entity.Crop, error)

	// ListByType retrieves the crops of one type.
	ListByType(ctx context.Context, cropType entity.CropType) ([]*entity.Crop, error)

	// Stats computes the dashboard aggregates.
	Stats(ctx context.Context) (*entity.CropStats, error)
}
