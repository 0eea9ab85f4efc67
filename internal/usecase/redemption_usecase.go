package usecase

import (
	"context"

	"travelfit/internal/domain/entity"
)

// RedemptionUsecase defines the interface for redeeming scanned guest passes at the gym door
type RedemptionUsecase interface {
	// VerifyPass activates the pass on its first scan and decides whether the holder is admitted.
	// Denials are returned as a Verification with Granted=false, not as errors.
	VerifyPass(ctx context.Context, actor *entity.Identity, token *entity.RedemptionToken) (*entity.Verification, error)

	// VerifyScan parses raw QR data and verifies the encoded pass.
	VerifyScan(ctx context.Context, actor *entity.Identity, qrData string) (*entity.Verification, error)
}
