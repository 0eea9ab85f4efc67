package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"travelfit/internal/domain/entity"
	"travelfit/internal/domain/lifecycle"
	"travelfit/internal/domain/service"
	mockSvc "travelfit/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPublishPassEvent_BoundsPublishWithDeadline(t *testing.T) {
	publisher := mockSvc.NewMockEventPublisher(t)
	purchase := &entity.PassPurchase{
		ID:       uuid.New(),
		UserID:   uuid.New(),
		GymID:    uuid.New(),
		PassName: "Week",
		Price:    decimal.RequireFromString("15.50"),
	}

	// The request context is already gone; the publish must still run, but not forever.
	reqCtx, cancel := context.WithCancel(context.Background())
	cancel()

	publisher.EXPECT().
		PublishPassEvent(mock.MatchedBy(func(ctx context.Context) bool {
			deadline, ok := ctx.Deadline()

			return ok && ctx.Err() == nil && time.Until(deadline) <= lifecycle.DefaultTimeout
		}), mock.MatchedBy(func(event *service.PassEvent) bool {
			return event.Type == service.PassEventPurchased && event.PassID == purchase.ID.String() && event.Price == "15.50"
		})).
		Return(nil)

	publishPassEvent(reqCtx, publisher, slog.Default(), service.PassEventPurchased, purchase, time.Now())
}

func TestPublishPassEvent_FailureIsDropped(t *testing.T) {
	publisher := mockSvc.NewMockEventPublisher(t)
	purchase := &entity.PassPurchase{ID: uuid.New(), UserID: uuid.New(), GymID: uuid.New()}

	publisher.EXPECT().PublishPassEvent(mock.Anything, mock.Anything).Return(errors.New("broker stalled"))

	assert.NotPanics(t, func() {
		publishPassEvent(context.Background(), publisher, slog.Default(), service.PassEventRevoked, purchase, time.Now())
	})
}
