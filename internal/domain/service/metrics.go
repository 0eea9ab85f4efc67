package service

import "time"

// VerificationOutcome labels the result of a redemption scan for metrics.
type VerificationOutcome string

const (
	VerificationGranted VerificationOutcome = "granted"
	VerificationRevoked VerificationOutcome = "revoked"
	VerificationExpired VerificationOutcome = "expired"
)

// MetricsRecorder records business metrics for the pass lifecycle and gym search.
type MetricsRecorder interface {
	// PassPurchased counts a committed purchase.
	PassPurchased()

	// PassVerified counts a scan outcome and whether it activated the pass.
	PassVerified(outcome VerificationOutcome, activated bool)

	// NearbySearchCompleted observes a nearby search's latency and result count.
	NearbySearchCompleted(elapsed time.Duration, results int)
}
