package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "travelfit/internal/delivery/context"
	"travelfit/internal/domain/entity"
	"travelfit/internal/domain/lifecycle"
	"travelfit/internal/domain/service"
)

// publishPassEvent publishes a pass lifecycle event. Publishing is best effort:
// the state change already committed, so failures are logged and dropped.
// A stalled broker holds the response for at most lifecycle.DefaultTimeout.
func publishPassEvent(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, eventType service.PassEventType, purchase *entity.PassPurchase, at time.Time) {
	if publisher == nil || purchase == nil {
		return
	}

	event := &service.PassEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       eventType,
		PassID:     purchase.ID.String(),
		UserID:     purchase.UserID.String(),
		GymID:      purchase.GymID.String(),
		PassName:   purchase.PassName,
		Price:      purchase.Price.StringFixed(2),
		ExpiresAt:  purchase.ExpiresAt,
		OccurredAt: at,
	}

	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lifecycle.DefaultTimeout)
	defer cancel()

	if err := publisher.PublishPassEvent(publishCtx, event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, logger).Warn("Failed to publish pass event",
			slog.String("type", string(eventType)),
			slog.String("pass_id", event.PassID),
			slog.Any("error", err),
		)
	}
}
