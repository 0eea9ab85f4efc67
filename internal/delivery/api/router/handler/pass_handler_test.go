package handler

import (
	"net/http"
	"testing"
	"time"

	"travelfit/internal/domain/entity"
	domainerrors "travelfit/internal/domain/errors"
	mockusecase "travelfit/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPassHandlerForTest(t *testing.T, now time.Time) (*PassHandler, *mockusecase.MockPassLedgerUsecase) {
	ledgerUC := mockusecase.NewMockPassLedgerUsecase(t)
	h := NewPassHandler(PassHandlerParams{PassLedgerUC: ledgerUC, Logger: testLogger})
	h.now = func() time.Time { return now }

	return h, ledgerUC
}

func TestPassHandler_PurchasePass(t *testing.T) {
	t.Run("purchased", func(t *testing.T) {
		h, ledgerUC := newPassHandlerForTest(t, time.Now())
		actor := userIdentity()
		gymID, optionID := uuid.New(), uuid.New()
		purchase := &entity.PassPurchase{
			ID:            uuid.New(),
			UserID:        actor.UserID,
			GymID:         gymID,
			OfferingID:    optionID,
			PassName:      "Week",
			DurationDays:  7,
			Price:         decimal.RequireFromString("19.99"),
			RedemptionURL: "https://cdn.example.com/tokens/p.png",
			IsValid:       true,
			PurchasedAt:   time.Now(),
		}
		ledgerUC.EXPECT().Purchase(mock.Anything, actor, gymID, optionID).Return(purchase, nil)

		c, rec := newTestContext(testRequest{
			method:   http.MethodPost,
			target:   "/gyms/" + gymID.String() + "/guest-passes/purchase",
			identity: actor,
			params:   map[string]string{"gymId": gymID.String()},
			body:     `{"pass_option_id":"` + optionID.String() + `"}`,
		})

		require.NoError(t, h.PurchasePass(c))
		assert.Equal(t, http.StatusCreated, rec.Code)

		body := decodeData[PurchaseResponse](t, rec)
		assert.Equal(t, purchase.ID, body.PurchaseID)
		assert.Equal(t, "19.99", body.Price)
		assert.Equal(t, purchase.RedemptionURL, body.RedemptionURL)
	})

	t.Run("option id must be a UUID", func(t *testing.T) {
		h, _ := newPassHandlerForTest(t, time.Now())
		gymID := uuid.New()

		c, rec := newTestContext(testRequest{
			method:   http.MethodPost,
			target:   "/gyms/" + gymID.String() + "/guest-passes/purchase",
			identity: userIdentity(),
			params:   map[string]string{"gymId": gymID.String()},
			body:     `{"pass_option_id":"7"}`,
		})

		require.NoError(t, h.PurchasePass(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_ERROR", decodeErrorCode(t, rec))
	})

	t.Run("failed purchase hides internals", func(t *testing.T) {
		h, ledgerUC := newPassHandlerForTest(t, time.Now())
		gymID, optionID := uuid.New(), uuid.New()
		ledgerUC.EXPECT().Purchase(mock.Anything, mock.Anything, gymID, optionID).
			Return(nil, errors.Wrap(domainerrors.ErrPurchaseFailed, "upload redemption image: bucket unavailable"))

		c, rec := newTestContext(testRequest{
			method:   http.MethodPost,
			target:   "/gyms/" + gymID.String() + "/guest-passes/purchase",
			identity: userIdentity(),
			params:   map[string]string{"gymId": gymID.String()},
			body:     `{"pass_option_id":"` + optionID.String() + `"}`,
		})

		require.NoError(t, h.PurchasePass(c))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "PURCHASE_FAILED", decodeErrorCode(t, rec))
		assert.NotContains(t, rec.Body.String(), "bucket")
	})
}

func TestPassHandler_ListPasses(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	h, ledgerUC := newPassHandlerForTest(t, now)
	actor := userIdentity()
	expired := now.Add(-time.Hour)
	views := []*entity.PassView{
		{
			Purchase:    &entity.PassPurchase{ID: uuid.New(), GymID: uuid.New(), PassName: "Day", DurationDays: 1, IsValid: true},
			GymName:     "Iron Temple",
			GymCity:     "Austin",
			GymLocation: orb.Point{-97.7, 30.2},
		},
		{
			Purchase: &entity.PassPurchase{ID: uuid.New(), GymID: uuid.New(), PassName: "Week", DurationDays: 7, IsValid: true, ExpiresAt: &expired},
			GymName:  "Lift Lab",
			GymCity:  "Dallas",
		},
	}
	ledgerUC.EXPECT().ListForUser(mock.Anything, actor).Return(views, nil)

	c, rec := newTestContext(testRequest{method: http.MethodGet, target: "/guest-passes", identity: actor})

	require.NoError(t, h.ListPasses(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	passes := decodeData[[]GuestPassResponse](t, rec)
	require.Len(t, passes, 2)
	assert.Equal(t, views[0].Purchase.ID, passes[0].PassID)
	assert.Equal(t, entity.PassStateIssued, passes[0].State)
	assert.Nil(t, passes[0].Expiration)
	assert.InDelta(t, 30.2, passes[0].Coordinate.Latitude, 1e-9)
	assert.Equal(t, entity.PassStateExpired, passes[1].State)
	require.NotNil(t, passes[1].Expiration)
	assert.True(t, expired.Equal(*passes[1].Expiration))
}

func TestPassHandler_GetPassQRCode(t *testing.T) {
	t.Run("serves the PNG", func(t *testing.T) {
		h, ledgerUC := newPassHandlerForTest(t, time.Now())
		actor := userIdentity()
		passID := uuid.New()
		png := []byte("\x89PNG\r\n\x1a\n")
		ledgerUC.EXPECT().GetPassQRCode(mock.Anything, actor, passID).Return(png, nil)

		c, rec := newTestContext(testRequest{
			method:   http.MethodGet,
			target:   "/guest-passes/" + passID.String() + "/qr",
			identity: actor,
			params:   map[string]string{"passId": passID.String()},
		})

		require.NoError(t, h.GetPassQRCode(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
		assert.Equal(t, png, rec.Body.Bytes())
	})

	t.Run("someone else's pass is not found", func(t *testing.T) {
		h, ledgerUC := newPassHandlerForTest(t, time.Now())
		passID := uuid.New()
		ledgerUC.EXPECT().GetPassQRCode(mock.Anything, mock.Anything, passID).
			Return(nil, errors.Wrap(domainerrors.ErrPassNotFound, "pass not found"))

		c, rec := newTestContext(testRequest{
			method:   http.MethodGet,
			target:   "/guest-passes/" + passID.String() + "/qr",
			identity: userIdentity(),
			params:   map[string]string{"passId": passID.String()},
		})

		require.NoError(t, h.GetPassQRCode(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "PASS_NOT_FOUND", decodeErrorCode(t, rec))
	})
}

func TestPassHandler_RevokePass(t *testing.T) {
	h, ledgerUC := newPassHandlerForTest(t, time.Now())
	actor := adminIdentity()
	passID := uuid.New()
	ledgerUC.EXPECT().RevokePass(mock.Anything, actor, passID).Return(nil)

	c, rec := newTestContext(testRequest{
		method:   http.MethodPost,
		target:   "/guest-passes/" + passID.String() + "/revoke",
		identity: actor,
		params:   map[string]string{"passId": passID.String()},
	})

	require.NoError(t, h.RevokePass(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
