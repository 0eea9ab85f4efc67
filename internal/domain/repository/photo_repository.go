package repository

import (
	"context"

	"travelfit/internal/domain/entity"
	"travelfit/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for gym photo persistence.
var (
	// ErrPhotoNotFound is returned when a photo does not exist for the given gym.
	ErrPhotoNotFound = errors.New("photo not found")
)

// PhotoRepository defines the interface for gym photo records.
type PhotoRepository interface {
	// CreatePhoto persists a photo record after its blob was uploaded.
	CreatePhoto(ctx context.Context, photo *entity.GymPhoto) error

	// FindPhotosByGym retrieves a gym's photos in upload order.
	FindPhotosByGym(ctx context.Context, gymID uuid.UUID) ([]*entity.GymPhoto, error)

	// FindPhotoForGym retrieves a photo only if it belongs to gymID.
	FindPhotoForGym(ctx context.Context, gymID, photoID uuid.UUID) (*entity.GymPhoto, error)

	// DeletePhoto removes a photo record by its ID.
	DeletePhoto(ctx context.Context, id uuid.UUID) error
}
