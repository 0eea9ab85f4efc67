package handler

import (
	"net/http"
	"testing"

	"travelfit/internal/domain/entity"
	domainerrors "travelfit/internal/domain/errors"
	mockusecase "travelfit/internal/mocks/usecase"
	"travelfit/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPassOptionHandlerForTest(t *testing.T) (*PassOptionHandler, *mockusecase.MockPassCatalogUsecase) {
	catalogUC := mockusecase.NewMockPassCatalogUsecase(t)

	return NewPassOptionHandler(PassOptionHandlerParams{PassCatalogUC: catalogUC, Logger: testLogger}), catalogUC
}

func TestPassOptionHandler_CreatePassOption(t *testing.T) {
	t.Run("price accepts a JSON number", func(t *testing.T) {
		h, catalogUC := newPassOptionHandlerForTest(t)
		gymID := uuid.New()
		actor := staffIdentity(gymID)
		offering := &entity.PassOffering{
			ID:           uuid.New(),
			GymID:        gymID,
			Name:         "Week",
			Price:        decimal.RequireFromString("19.99"),
			DurationDays: 7,
		}

		catalogUC.EXPECT().
			CreateOffering(mock.Anything, actor, gymID, mock.MatchedBy(func(input *usecase.OfferingInput) bool {
				return input.Name == "Week" && input.Price.Equal(decimal.RequireFromString("19.99")) && input.DurationDays == 7
			})).
			Return(offering, nil)

		c, rec := newTestContext(testRequest{
			method:   http.MethodPost,
			target:   "/gyms/" + gymID.String() + "/guest-pass-options",
			identity: actor,
			params:   map[string]string{"gymId": gymID.String()},
			body:     `{"pass_name":"Week","price":19.99,"duration":7}`,
		})

		require.NoError(t, h.CreatePassOption(c))
		assert.Equal(t, http.StatusCreated, rec.Code)

		body := decodeData[PassOptionResponse](t, rec)
		assert.Equal(t, offering.ID, body.ID)
		assert.Equal(t, "19.99", body.Price)
		assert.Equal(t, 7, body.Duration)
	})

	t.Run("invalid price maps to its error code", func(t *testing.T) {
		h, catalogUC := newPassOptionHandlerForTest(t)
		gymID := uuid.New()
		catalogUC.EXPECT().CreateOffering(mock.Anything, mock.Anything, gymID, mock.Anything).
			Return(nil, domainerrors.ErrInvalidPrice)

		c, rec := newTestContext(testRequest{
			method:   http.MethodPost,
			target:   "/gyms/" + gymID.String() + "/guest-pass-options",
			identity: adminIdentity(),
			params:   map[string]string{"gymId": gymID.String()},
			body:     `{"pass_name":"Free","price":"0","duration":1}`,
		})

		require.NoError(t, h.CreatePassOption(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_PRICE", decodeErrorCode(t, rec))
	})

	t.Run("malformed price does not bind", func(t *testing.T) {
		h, _ := newPassOptionHandlerForTest(t)
		gymID := uuid.New()

		c, rec := newTestContext(testRequest{
			method:   http.MethodPost,
			target:   "/gyms/" + gymID.String() + "/guest-pass-options",
			identity: adminIdentity(),
			params:   map[string]string{"gymId": gymID.String()},
			body:     `{"pass_name":"Week","price":"cheap","duration":7}`,
		})

		require.NoError(t, h.CreatePassOption(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_INPUT", decodeErrorCode(t, rec))
	})
}

func TestPassOptionHandler_ListPassOptions(t *testing.T) {
	h, catalogUC := newPassOptionHandlerForTest(t)
	gymID := uuid.New()
	first := &entity.PassOffering{ID: uuid.New(), GymID: gymID, Name: "Day", Price: decimal.RequireFromString("5"), DurationDays: 1}
	second := &entity.PassOffering{ID: uuid.New(), GymID: gymID, Name: "Week", Price: decimal.RequireFromString("19.99"), DurationDays: 7}
	catalogUC.EXPECT().ListOfferings(mock.Anything, gymID).Return([]*entity.PassOffering{first, second}, nil)

	c, rec := newTestContext(testRequest{
		method: http.MethodGet,
		target: "/gyms/" + gymID.String() + "/guest-pass-options",
		params: map[string]string{"gymId": gymID.String()},
	})

	require.NoError(t, h.ListPassOptions(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	options := decodeData[[]PassOptionResponse](t, rec)
	require.Len(t, options, 2)
	assert.Equal(t, first.ID, options[0].ID)
	assert.Equal(t, "5.00", options[0].Price)
	assert.Equal(t, second.ID, options[1].ID)
}

func TestPassOptionHandler_DeletePassOption(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		h, catalogUC := newPassOptionHandlerForTest(t)
		gymID, optionID := uuid.New(), uuid.New()
		actor := staffIdentity(gymID)
		catalogUC.EXPECT().DeleteOffering(mock.Anything, actor, gymID, optionID).Return(nil)

		c, rec := newTestContext(testRequest{
			method:   http.MethodDelete,
			target:   "/gyms/" + gymID.String() + "/guest-pass-options/" + optionID.String(),
			identity: actor,
			params:   map[string]string{"gymId": gymID.String(), "optionId": optionID.String()},
		})

		require.NoError(t, h.DeletePassOption(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("offering of another gym", func(t *testing.T) {
		h, catalogUC := newPassOptionHandlerForTest(t)
		gymID, optionID := uuid.New(), uuid.New()
		catalogUC.EXPECT().DeleteOffering(mock.Anything, mock.Anything, gymID, optionID).
			Return(errors.Wrap(domainerrors.ErrPassOfferingNotFound, "pass option not found"))

		c, rec := newTestContext(testRequest{
			method:   http.MethodDelete,
			target:   "/gyms/" + gymID.String() + "/guest-pass-options/" + optionID.String(),
			identity: adminIdentity(),
			params:   map[string]string{"gymId": gymID.String(), "optionId": optionID.String()},
		})

		require.NoError(t, h.DeletePassOption(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "PASS_OPTION_NOT_FOUND", decodeErrorCode(t, rec))
	})
}
