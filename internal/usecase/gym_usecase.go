package usecase

import (
	"context"

	"travelfit/internal/domain/entity"

	"github.com/google/uuid"
)

// GymInput carries the fields of a new gym listing.
type GymInput struct {
	Name        string
	Description string
	Address     entity.GymAddress
	Amenities   []string
	Hours       map[string]string
}

// GymPatch carries a partial gym update; nil fields are left unchanged.
type GymPatch struct {
	Name        *string
	Description *string
	Address1    *string
	Address2    *string
	City        *string
	State       *string
	Zipcode     *string
	Amenities   []string
	Hours       map[string]string
}

// GymUsecase defines the interface for gym directory management
type GymUsecase interface {
	// CreateGym resolves the gym's address and persists it.
	CreateGym(ctx context.Context, actor *entity.Identity, input *GymInput) (*entity.Gym, error)

	// GetGym retrieves a gym with its photo URLs.
	GetGym(ctx context.Context, gymID uuid.UUID) (*entity.Gym, error)

	// UpdateGym applies a partial update, re-resolving the location when the address changes.
	UpdateGym(ctx context.Context, actor *entity.Identity, gymID uuid.UUID, patch *GymPatch) (*entity.Gym, error)

	// DeleteGym removes a gym listing.
	DeleteGym(ctx context.Context, actor *entity.Identity, gymID uuid.UUID) error

	// ListGymsInCity retrieves summaries of the gyms in a city.
	ListGymsInCity(ctx context.Context, city string) ([]*entity.GymSummary, error)
}
