package handler

import (
	"net/http"
	"testing"

	"travelfit/internal/domain/entity"
	domainerrors "travelfit/internal/domain/errors"
	mockusecase "travelfit/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newFavoriteHandlerForTest(t *testing.T) (*FavoriteHandler, *mockusecase.MockFavoriteUsecase) {
	favoriteUC := mockusecase.NewMockFavoriteUsecase(t)

	return NewFavoriteHandler(FavoriteHandlerParams{FavoriteUC: favoriteUC, Logger: testLogger}), favoriteUC
}

func TestFavoriteHandler_ListFavorites(t *testing.T) {
	h, favoriteUC := newFavoriteHandlerForTest(t)
	actor := userIdentity()
	summary := &entity.GymSummary{ID: uuid.New(), Name: "Iron Temple", City: "Austin", Location: orb.Point{-97.7, 30.2}}
	favoriteUC.EXPECT().ListFavorites(mock.Anything, actor).Return([]*entity.GymSummary{summary}, nil)

	c, rec := newTestContext(testRequest{method: http.MethodGet, target: "/users/favorites", identity: actor})

	require.NoError(t, h.ListFavorites(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	gyms := decodeData[[]GymSummaryResponse](t, rec)
	require.Len(t, gyms, 1)
	assert.Equal(t, summary.ID, gyms[0].ID)
}

func TestFavoriteHandler_AddFavorite(t *testing.T) {
	t.Run("added", func(t *testing.T) {
		h, favoriteUC := newFavoriteHandlerForTest(t)
		actor := userIdentity()
		gymID := uuid.New()
		favoriteUC.EXPECT().AddFavorite(mock.Anything, actor, gymID).Return(nil)

		c, rec := newTestContext(testRequest{
			method:   http.MethodPost,
			target:   "/users/favorites/" + gymID.String(),
			identity: actor,
			params:   map[string]string{"gymId": gymID.String()},
		})

		require.NoError(t, h.AddFavorite(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown gym", func(t *testing.T) {
		h, favoriteUC := newFavoriteHandlerForTest(t)
		gymID := uuid.New()
		favoriteUC.EXPECT().AddFavorite(mock.Anything, mock.Anything, gymID).
			Return(errors.Wrap(domainerrors.ErrGymNotFound, "gym not found"))

		c, rec := newTestContext(testRequest{
			method:   http.MethodPost,
			target:   "/users/favorites/" + gymID.String(),
			identity: userIdentity(),
			params:   map[string]string{"gymId": gymID.String()},
		})

		require.NoError(t, h.AddFavorite(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("missing identity", func(t *testing.T) {
		h, _ := newFavoriteHandlerForTest(t)
		gymID := uuid.New()

		c, rec := newTestContext(testRequest{
			method: http.MethodPost,
			target: "/users/favorites/" + gymID.String(),
			params: map[string]string{"gymId": gymID.String()},
		})

		require.NoError(t, h.AddFavorite(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestFavoriteHandler_RemoveFavorite(t *testing.T) {
	h, favoriteUC := newFavoriteHandlerForTest(t)
	actor := userIdentity()
	gymID := uuid.New()
	favoriteUC.EXPECT().RemoveFavorite(mock.Anything, actor, gymID).Return(nil)

	c, rec := newTestContext(testRequest{
		method:   http.MethodDelete,
		target:   "/users/favorites/" + gymID.String(),
		identity: actor,
		params:   map[string]string{"gymId": gymID.String()},
	})

	require.NoError(t, h.RemoveFavorite(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
