package usecase

import (
	"context"

	"travelfit/internal/domain/entity"

	"github.com/google/uuid"
)

// PassLedgerUsecase defines the interface for purchasing and managing guest passes
type PassLedgerUsecase interface {
	// Purchase issues a pass for one of the gym's offerings, including its redemption QR image.
	// Either the whole purchase is recorded or nothing is.
	Purchase(ctx context.Context, actor *entity.Identity, gymID, offeringID uuid.UUID) (*entity.PassPurchase, error)

	// ListForUser retrieves the caller's valid passes joined with their gyms.
	ListForUser(ctx context.Context, actor *entity.Identity) ([]*entity.PassView, error)

	// GetPassQRCode returns the redemption QR image of a pass owned by the caller.
	GetPassQRCode(ctx context.Context, actor *entity.Identity, passID uuid.UUID) ([]byte, error)

	// RevokePass invalidates a pass permanently.
	RevokePass(ctx context.Context, actor *entity.Identity, passID uuid.UUID) error
}
