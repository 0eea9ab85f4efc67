package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/shopspring/decimal"
)

// PassOffering is a gym-defined, priced, time-boxed guest-pass product.
type PassOffering struct {
	ID           uuid.UUID
	GymID        uuid.UUID
	Name         string
	Price        decimal.Decimal // Positive, at most two fractional digits.
	DurationDays int             // Validity window in whole days once activated.
	Description  string
	CreatedAt    time.Time
}

// PassState is the redemption state of a purchased pass at a point in time.
type PassState string

const (
	// PassStateIssued means the pass was bought but never scanned.
	PassStateIssued PassState = "issued"
	// PassStateActive means the pass was scanned and its window has not closed.
	PassStateActive PassState = "active"
	// PassStateExpired means the activation window has closed.
	PassStateExpired PassState = "expired"
	// PassStateRevoked means the pass was invalidated by an administrator.
	PassStateRevoked PassState = "revoked"
)

// PassPurchase is an issued guest pass. Name, duration, price and description are
// copied from the offering at purchase time so later catalog edits never change its terms.
type PassPurchase struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	GymID         uuid.UUID
	OfferingID    uuid.UUID
	PassName      string
	DurationDays  int
	Price         decimal.Decimal
	Description   string
	RedemptionURL string     // Blob URL of the redemption QR image, set after creation.
	ExpiresAt     *time.Time // Nil until the first successful verification.
	IsValid       bool       // False once revoked.
	PurchasedAt   time.Time
	UpdatedAt     time.Time
}

// State derives the lifecycle state at the given instant. Revocation wins over expiry.
func (p *PassPurchase) State(now time.Time) PassState {
	switch {
	case !p.IsValid:
		return PassStateRevoked
	case p.ExpiresAt == nil:
		return PassStateIssued
	case now.After(*p.ExpiresAt):
		return PassStateExpired
	default:
		return PassStateActive
	}
}

// Grantable reports whether a scan at the given instant may admit the holder.
func (p *PassPurchase) Grantable(now time.Time) bool {
	state := p.State(now)

	return state == PassStateIssued || state == PassStateActive
}

// ActivationExpiry returns the expiration a pass gets when activated at activatedAt.
func ActivationExpiry(activatedAt time.Time, durationDays int) time.Time {
	return activatedAt.AddDate(0, 0, durationDays)
}

// PassView is a purchase joined with the gym it is redeemable at, as shown to its holder.
type PassView struct {
	Purchase    *PassPurchase
	GymName     string
	GymCity     string
	GymLocation orb.Point
}

// RedemptionToken is the payload encoded in a pass's QR image and read back by scanners.
type RedemptionToken struct {
	PassID       uuid.UUID
	UserID       uuid.UUID
	GymID        uuid.UUID
	PassName     string
	DurationDays int
}

// DenialReason explains why a scan did not admit the holder.
type DenialReason string

const (
	// DenialReasonNone is used when access was granted.
	DenialReasonNone DenialReason = ""
	// DenialReasonRevoked is used when the pass was administratively invalidated.
	DenialReasonRevoked DenialReason = "revoked"
	// DenialReasonExpired is used when the activation window has closed.
	DenialReasonExpired DenialReason = "expired"
)

// Verification is the outcome of scanning a redemption token.
type Verification struct {
	PassID    uuid.UUID
	Granted   bool
	Reason    DenialReason
	State     PassState
	Activated bool // True when this scan started the pass's validity window.
	ExpiresAt *time.Time
	Message   string
}
