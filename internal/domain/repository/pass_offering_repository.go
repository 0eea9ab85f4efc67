package repository

import (
	"context"

	"travelfit/internal/domain/entity"
	"travelfit/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for pass offering persistence.
var (
	// ErrPassOfferingNotFound is returned when an offering does not exist for the given gym.
	ErrPassOfferingNotFound = errors.New("pass offering not found")
)

// PassOfferingRepository defines the interface for a gym's guest-pass catalog.
// Every lookup and mutation is scoped by gym so an offering can never be reached through another gym.
type PassOfferingRepository interface {
	// CreateOffering persists a new offering.
	CreateOffering(ctx context.Context, offering *entity.PassOffering) error

	// FindOfferingsByGym retrieves a gym's offerings in insertion order.
	FindOfferingsByGym(ctx context.Context, gymID uuid.UUID) ([]*entity.PassOffering, error)

	// FindOfferingForGym retrieves an offering only if it belongs to gymID.
	FindOfferingForGym(ctx context.Context, gymID, offeringID uuid.UUID) (*entity.PassOffering, error)

	// DeleteOfferingForGym deletes an offering only if it belongs to gymID.
	// Returns ErrPassOfferingNotFound when no row matched both ids.
	DeleteOfferingForGym(ctx context.Context, gymID, offeringID uuid.UUID) error
}
