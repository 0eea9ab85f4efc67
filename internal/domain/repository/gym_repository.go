// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"travelfit/internal/domain/entity"
	"travelfit/internal/errors"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Domain-specific errors for gym persistence.
var (
	// ErrGymNotFound is returned when a gym is not found.
	ErrGymNotFound = errors.New("gym not found")
)

// GymRepository defines the interface for gym-related database operations,
// including the geographic proximity search.
type GymRepository interface {
	// CreateGym persists a new gym. The gym's Location must already be resolved.
	CreateGym(ctx context.Context, gym *entity.Gym) error

	// FindGymByID retrieves a gym by its unique ID.
	FindGymByID(ctx context.Context, id uuid.UUID) (*entity.Gym, error)

	// UpdateGym overwrites the stored gym with the given values.
	UpdateGym(ctx context.Context, gym *entity.Gym) error

	// DeleteGym removes a gym by its ID. Returns ErrGymNotFound when nothing was deleted.
	DeleteGym(ctx context.Context, id uuid.UUID) error

	// FindGymsByCity retrieves summaries of every gym in a city (case-insensitive).
	FindGymsByCity(ctx context.Context, city string) ([]*entity.GymSummary, error)

	// FindGymsNearby returns gyms whose geodesic distance to point is at most radiusMeters,
	// nearest first. A limit of 0 means no limit.
	FindGymsNearby(ctx context.Context, point orb.Point, radiusMeters float64, limit int) ([]*entity.NearbyGym, error)
}
