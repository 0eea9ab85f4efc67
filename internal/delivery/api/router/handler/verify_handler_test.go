package handler

import (
	"net/http"
	"testing"
	"time"

	"travelfit/internal/domain/entity"
	domainerrors "travelfit/internal/domain/errors"
	mockusecase "travelfit/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newVerifyHandlerForTest(t *testing.T) (*VerifyHandler, *mockusecase.MockRedemptionUsecase) {
	redemptionUC := mockusecase.NewMockRedemptionUsecase(t)

	return NewVerifyHandler(VerifyHandlerParams{RedemptionUC: redemptionUC, Logger: testLogger}), redemptionUC
}

func TestVerifyHandler_VerifyPass(t *testing.T) {
	scanned := `{"type":"guest_pass","pass_id":"6f1c3b9e-8f0a-4a57-9a3e-0c6f2f9a1b11","user_id":"0d0e5c6a-3e7a-4c61-8c0b-2b9c1f0e4a22","gym_id":"a4c2e1f0-5b6d-4e7f-8a9b-0c1d2e3f4a33","pass_name":"Week","duration":7}`

	t.Run("first scan grants and activates", func(t *testing.T) {
		h, redemptionUC := newVerifyHandlerForTest(t)
		actor := adminIdentity()
		expiresAt := time.Now().Add(7 * 24 * time.Hour)
		verification := &entity.Verification{
			PassID:    uuid.MustParse("6f1c3b9e-8f0a-4a57-9a3e-0c6f2f9a1b11"),
			Granted:   true,
			State:     entity.PassStateActive,
			Activated: true,
			ExpiresAt: &expiresAt,
			Message:   "Welcome Ada to Iron Temple, Enjoy your workout!",
		}
		redemptionUC.EXPECT().VerifyScan(mock.Anything, actor, scanned).Return(verification, nil)

		c, rec := newTestContext(testRequest{
			method:      http.MethodPost,
			target:      "/verify-pass",
			identity:    actor,
			body:        "  " + scanned + "\n",
			contentType: "text/plain",
		})

		require.NoError(t, h.VerifyPass(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		body := decodeData[VerificationResponse](t, rec)
		assert.True(t, body.Granted)
		assert.True(t, body.Activated)
		assert.Equal(t, verification.Message, body.Message)
		assert.Empty(t, body.Reason)
	})

	tests := []struct {
		name     string
		reason   entity.DenialReason
		state    entity.PassState
		message  string
		wantCode string
	}{
		{
			name:     "revoked pass is denied",
			reason:   entity.DenialReasonRevoked,
			state:    entity.PassStateRevoked,
			message:  domainerrors.ErrPassRevoked.Message(),
			wantCode: "PASS_REVOKED",
		},
		{
			name:     "expired pass is denied",
			reason:   entity.DenialReasonExpired,
			state:    entity.PassStateExpired,
			message:  domainerrors.ErrPassExpired.Message(),
			wantCode: "PASS_EXPIRED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, redemptionUC := newVerifyHandlerForTest(t)
			redemptionUC.EXPECT().VerifyScan(mock.Anything, mock.Anything, scanned).Return(&entity.Verification{
				Granted: false,
				Reason:  tt.reason,
				State:   tt.state,
				Message: tt.message,
			}, nil)

			c, rec := newTestContext(testRequest{
				method:   http.MethodPost,
				target:   "/verify-pass",
				identity: adminIdentity(),
				body:     scanned,
			})

			require.NoError(t, h.VerifyPass(c))
			assert.Equal(t, http.StatusForbidden, rec.Code)
			assert.Equal(t, tt.wantCode, decodeErrorCode(t, rec))
			assert.Contains(t, rec.Body.String(), tt.message)
		})
	}

	t.Run("garbled scan", func(t *testing.T) {
		h, redemptionUC := newVerifyHandlerForTest(t)
		redemptionUC.EXPECT().VerifyScan(mock.Anything, mock.Anything, "not a pass").
			Return(nil, domainerrors.ErrInvalidRedemptionToken)

		c, rec := newTestContext(testRequest{
			method:   http.MethodPost,
			target:   "/verify-pass",
			identity: adminIdentity(),
			body:     "not a pass",
		})

		require.NoError(t, h.VerifyPass(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_REDEMPTION_TOKEN", decodeErrorCode(t, rec))
	})

	t.Run("empty body", func(t *testing.T) {
		h, _ := newVerifyHandlerForTest(t)

		c, rec := newTestContext(testRequest{
			method:   http.MethodPost,
			target:   "/verify-pass",
			identity: adminIdentity(),
			body:     "   ",
		})

		require.NoError(t, h.VerifyPass(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_ERROR", decodeErrorCode(t, rec))
	})
}
