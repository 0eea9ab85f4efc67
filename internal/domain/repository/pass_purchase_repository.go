package repository

import (
	"context"
	"time"

	"travelfit/internal/domain/entity"
	"travelfit/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for pass purchase persistence.
var (
	// ErrPassNotFound is returned when a purchase is not found.
	ErrPassNotFound = errors.New("pass purchase not found")
)

// PassPurchaseRepository defines the interface for the guest-pass ledger.
type PassPurchaseRepository interface {
	// CreatePurchase persists a new purchase in the issued state.
	CreatePurchase(ctx context.Context, purchase *entity.PassPurchase) error

	// FindPurchaseByID retrieves a purchase by its unique ID.
	FindPurchaseByID(ctx context.Context, id uuid.UUID) (*entity.PassPurchase, error)

	// SetRedemptionURL stores the blob URL of the purchase's redemption image.
	SetRedemptionURL(ctx context.Context, id uuid.UUID, url string) error

	// ActivatePurchase sets the expiration only if it is still unset.
	// It reports whether this call performed the transition; a concurrent activation
	// that got there first yields (false, nil).
	ActivatePurchase(ctx context.Context, id uuid.UUID, expiresAt time.Time) (bool, error)

	// RevokePurchase marks a purchase as no longer valid.
	RevokePurchase(ctx context.Context, id uuid.UUID) error

	// FindValidPassViewsByUser retrieves a user's valid purchases joined with their gyms,
	// in purchase order.
	FindValidPassViewsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.PassView, error)
}
