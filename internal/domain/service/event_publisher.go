package service

import (
	"context"
	"time"
)

// PassEventType identifies what happened to a guest pass.
type PassEventType string

const (
	// PassEventPurchased is published after a purchase commits.
	PassEventPurchased PassEventType = "pass.purchased"
	// PassEventActivated is published when a scan starts a pass's validity window.
	PassEventActivated PassEventType = "pass.activated"
	// PassEventRevoked is published when a pass is invalidated.
	PassEventRevoked PassEventType = "pass.revoked"
)

// PassEvent represents a guest-pass lifecycle event for downstream consumers (billing, analytics).
type PassEvent struct {
	RequestID  string        `json:"request_id,omitempty"` // For distributed tracing
	Type       PassEventType `json:"type"`
	PassID     string        `json:"pass_id"`
	UserID     string        `json:"user_id"`
	GymID      string        `json:"gym_id"`
	PassName   string        `json:"pass_name"`
	Price      string        `json:"price,omitempty"`
	ExpiresAt  *time.Time    `json:"expires_at,omitempty"`
	OccurredAt time.Time     `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishPassEvent publishes a pass lifecycle event
	PublishPassEvent(ctx context.Context, event *PassEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
