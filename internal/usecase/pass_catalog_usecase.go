package usecase

import (
	"context"

	"travelfit/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OfferingInput carries the fields of a new guest-pass offering.
type OfferingInput struct {
	Name         string
	Price        decimal.Decimal
	DurationDays int
	Description  string
}

// PassCatalogUsecase defines the interface for a gym's guest-pass catalog
type PassCatalogUsecase interface {
	// CreateOffering validates and persists a new offering for the gym.
	CreateOffering(ctx context.Context, actor *entity.Identity, gymID uuid.UUID, input *OfferingInput) (*entity.PassOffering, error)

	// ListOfferings retrieves the gym's offerings in insertion order.
	ListOfferings(ctx context.Context, gymID uuid.UUID) ([]*entity.PassOffering, error)

	// DeleteOffering deletes an offering that belongs to the gym.
	DeleteOffering(ctx context.Context, actor *entity.Identity, gymID, offeringID uuid.UUID) error
}
