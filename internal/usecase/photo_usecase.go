package usecase

import (
	"context"

	"travelfit/internal/domain/entity"

	"github.com/google/uuid"
)

// PhotoUpload is an image received for a gym's gallery.
type PhotoUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// PhotoUsecase defines the interface for a gym's photo gallery
type PhotoUsecase interface {
	// AddPhoto stores an image and records it against the gym.
	AddPhoto(ctx context.Context, actor *entity.Identity, gymID uuid.UUID, upload *PhotoUpload) (*entity.GymPhoto, error)

	// ListPhotos retrieves the gym's photos in upload order.
	ListPhotos(ctx context.Context, gymID uuid.UUID) ([]*entity.GymPhoto, error)

	// DeletePhoto removes a photo that belongs to the gym, including its stored image.
	DeletePhoto(ctx context.Context, actor *entity.Identity, gymID, photoID uuid.UUID) error
}
