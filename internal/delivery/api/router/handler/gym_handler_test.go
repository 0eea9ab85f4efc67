package handler

import (
	"net/http"
	"testing"
	"time"

	"travelfit/internal/domain/entity"
	domainerrors "travelfit/internal/domain/errors"
	mockusecase "travelfit/internal/mocks/usecase"
	"travelfit/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newGymHandlerForTest(t *testing.T) (*GymHandler, *mockusecase.MockGymUsecase, *mockusecase.MockGeoSearchUsecase) {
	gymUC := mockusecase.NewMockGymUsecase(t)
	geoUC := mockusecase.NewMockGeoSearchUsecase(t)

	return NewGymHandler(GymHandlerParams{GymUC: gymUC, GeoSearchUC: geoUC, Logger: testLogger}), gymUC, geoUC
}

func sampleGym() *entity.Gym {
	return &entity.Gym{
		ID:          uuid.New(),
		Name:        "Iron Temple",
		Description: "Free weights",
		Address: entity.GymAddress{
			Address1: "1 Main St",
			City:     "Austin",
			State:    "TX",
			Zipcode:  "78701",
		},
		Location:  orb.Point{-97.7431, 30.2672},
		Amenities: []string{"sauna"},
		Hours:     map[string]string{"monday": "06:00-22:00"},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func TestGymHandler_FindNearby(t *testing.T) {
	t.Run("passes the query through and returns distances", func(t *testing.T) {
		h, _, geoUC := newGymHandlerForTest(t)
		gym := sampleGym()

		geoUC.EXPECT().
			FindNearby(mock.Anything, &usecase.NearbyQuery{Latitude: 30.2672, Longitude: -97.7431, RadiusMeters: 5000, Limit: 10}).
			Return([]*entity.NearbyGym{{Gym: gym, DistanceMeters: 12.5}}, nil)

		c, rec := newTestContext(testRequest{
			method: http.MethodPost,
			target: "/gyms/nearby",
			body:   `{"latitude":30.2672,"longitude":-97.7431,"radius_in_meters":5000,"limit":10}`,
		})

		require.NoError(t, h.FindNearby(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		gyms := decodeData[[]NearbyGymResponse](t, rec)
		require.Len(t, gyms, 1)
		assert.Equal(t, gym.ID, gyms[0].ID)
		assert.Equal(t, "Iron Temple", gyms[0].GymName)
		assert.InDelta(t, 12.5, gyms[0].DistanceMeters, 1e-9)
		assert.InDelta(t, 30.2672, gyms[0].Coordinate.Latitude, 1e-9)
	})

	t.Run("empty result is an empty list", func(t *testing.T) {
		h, _, geoUC := newGymHandlerForTest(t)
		geoUC.EXPECT().FindNearby(mock.Anything, mock.Anything).Return([]*entity.NearbyGym{}, nil)

		c, rec := newTestContext(testRequest{
			method: http.MethodPost,
			target: "/gyms/nearby",
			body:   `{"latitude":0,"longitude":0}`,
		})

		require.NoError(t, h.FindNearby(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, decodeData[[]NearbyGymResponse](t, rec))
	})

	t.Run("missing coordinates are rejected before the search", func(t *testing.T) {
		h, _, _ := newGymHandlerForTest(t)

		c, rec := newTestContext(testRequest{
			method: http.MethodPost,
			target: "/gyms/nearby",
			body:   `{"latitude":30.2}`,
		})

		require.NoError(t, h.FindNearby(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_ERROR", decodeErrorCode(t, rec))
	})

	t.Run("invalid radius maps to its error code", func(t *testing.T) {
		h, _, geoUC := newGymHandlerForTest(t)
		geoUC.EXPECT().FindNearby(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidRadius)

		c, rec := newTestContext(testRequest{
			method: http.MethodPost,
			target: "/gyms/nearby",
			body:   `{"latitude":30.2,"longitude":-97.7,"radius_in_meters":-1}`,
		})

		require.NoError(t, h.FindNearby(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_RADIUS", decodeErrorCode(t, rec))
	})

	t.Run("query failure reaches the error handler", func(t *testing.T) {
		h, _, geoUC := newGymHandlerForTest(t)
		geoUC.EXPECT().FindNearby(mock.Anything, mock.Anything).Return(nil, errors.New("connection reset"))

		c, _ := newTestContext(testRequest{
			method: http.MethodPost,
			target: "/gyms/nearby",
			body:   `{"latitude":30.2,"longitude":-97.7}`,
		})

		assert.Error(t, h.FindNearby(c))
	})
}

func TestGymHandler_ListByCity(t *testing.T) {
	h, gymUC, _ := newGymHandlerForTest(t)
	summary := &entity.GymSummary{ID: uuid.New(), Name: "Iron Temple", City: "Austin", Location: orb.Point{-97.7, 30.2}}
	gymUC.EXPECT().ListGymsInCity(mock.Anything, "Austin").Return([]*entity.GymSummary{summary}, nil)

	c, rec := newTestContext(testRequest{
		method: http.MethodGet,
		target: "/gyms/city/Austin",
		params: map[string]string{"city": "Austin"},
	})

	require.NoError(t, h.ListByCity(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	gyms := decodeData[[]GymSummaryResponse](t, rec)
	require.Len(t, gyms, 1)
	assert.Equal(t, summary.ID, gyms[0].ID)
	assert.InDelta(t, 30.2, gyms[0].Coordinate.Latitude, 1e-9)
	assert.InDelta(t, -97.7, gyms[0].Coordinate.Longitude, 1e-9)
}

func TestGymHandler_CreateGym(t *testing.T) {
	t.Run("creates a gym from the request", func(t *testing.T) {
		h, gymUC, _ := newGymHandlerForTest(t)
		actor := adminIdentity()
		gym := sampleGym()

		gymUC.EXPECT().
			CreateGym(mock.Anything, actor, mock.MatchedBy(func(input *usecase.GymInput) bool {
				return input.Name == "Iron Temple" &&
					input.Address.City == "Austin" &&
					input.Hours["monday"] == "06:00-22:00" &&
					len(input.Amenities) == 1
			})).
			Return(gym, nil)

		c, rec := newTestContext(testRequest{
			method:   http.MethodPost,
			target:   "/gyms",
			identity: actor,
			body: `{"gym_name":"Iron Temple","gym_description":"Free weights","address1":"1 Main St",
				"city":"Austin","state":"TX","zipcode":"78701","amenities":["sauna"],
				"hours_of_operation":{"monday":"06:00-22:00"}}`,
		})

		require.NoError(t, h.CreateGym(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, gym.ID, decodeData[GymResponse](t, rec).ID)
	})

	t.Run("missing address fields fail validation", func(t *testing.T) {
		h, _, _ := newGymHandlerForTest(t)

		c, rec := newTestContext(testRequest{
			method:   http.MethodPost,
			target:   "/gyms",
			identity: adminIdentity(),
			body:     `{"gym_name":"Iron Temple"}`,
		})

		require.NoError(t, h.CreateGym(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_ERROR", decodeErrorCode(t, rec))
	})

	t.Run("unresolvable address", func(t *testing.T) {
		h, gymUC, _ := newGymHandlerForTest(t)
		gymUC.EXPECT().CreateGym(mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errors.Wrap(domainerrors.ErrAddressUnresolvable, "geocode"))

		c, rec := newTestContext(testRequest{
			method:   http.MethodPost,
			target:   "/gyms",
			identity: adminIdentity(),
			body:     `{"gym_name":"X","address1":"nowhere","city":"Y","state":"Z","zipcode":"0"}`,
		})

		require.NoError(t, h.CreateGym(c))
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "ADDRESS_UNRESOLVABLE", decodeErrorCode(t, rec))
	})

	t.Run("missing identity", func(t *testing.T) {
		h, _, _ := newGymHandlerForTest(t)

		c, rec := newTestContext(testRequest{method: http.MethodPost, target: "/gyms", body: `{}`})

		require.NoError(t, h.CreateGym(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestGymHandler_GetGym(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		h, gymUC, _ := newGymHandlerForTest(t)
		gym := sampleGym()
		gym.PhotoURLs = []string{"https://cdn.example.com/p1.jpg"}
		gymUC.EXPECT().GetGym(mock.Anything, gym.ID).Return(gym, nil)

		c, rec := newTestContext(testRequest{
			method: http.MethodGet,
			target: "/gyms/" + gym.ID.String(),
			params: map[string]string{"gymId": gym.ID.String()},
		})

		require.NoError(t, h.GetGym(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		body := decodeData[GymResponse](t, rec)
		assert.Equal(t, []string{"https://cdn.example.com/p1.jpg"}, body.Photos)
		assert.Equal(t, "06:00-22:00", body.HoursOfOperation["monday"])
	})

	t.Run("not found", func(t *testing.T) {
		h, gymUC, _ := newGymHandlerForTest(t)
		gymID := uuid.New()
		gymUC.EXPECT().GetGym(mock.Anything, gymID).Return(nil, errors.Wrap(domainerrors.ErrGymNotFound, "gym not found"))

		c, rec := newTestContext(testRequest{
			method: http.MethodGet,
			target: "/gyms/" + gymID.String(),
			params: map[string]string{"gymId": gymID.String()},
		})

		require.NoError(t, h.GetGym(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "GYM_NOT_FOUND", decodeErrorCode(t, rec))
	})

	t.Run("malformed id", func(t *testing.T) {
		h, _, _ := newGymHandlerForTest(t)

		c, rec := newTestContext(testRequest{
			method: http.MethodGet,
			target: "/gyms/42",
			params: map[string]string{"gymId": "42"},
		})

		require.NoError(t, h.GetGym(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_ID", decodeErrorCode(t, rec))
	})
}

func TestGymHandler_UpdateGym(t *testing.T) {
	t.Run("only provided fields are set on the patch", func(t *testing.T) {
		h, gymUC, _ := newGymHandlerForTest(t)
		gym := sampleGym()
		actor := staffIdentity(gym.ID)

		gymUC.EXPECT().
			UpdateGym(mock.Anything, actor, gym.ID, mock.MatchedBy(func(patch *usecase.GymPatch) bool {
				return patch.Name != nil && *patch.Name == "Iron Temple II" &&
					patch.City == nil && patch.Address1 == nil && patch.Amenities == nil
			})).
			Return(gym, nil)

		c, rec := newTestContext(testRequest{
			method:   http.MethodPut,
			target:   "/gyms/" + gym.ID.String(),
			identity: actor,
			params:   map[string]string{"gymId": gym.ID.String()},
			body:     `{"gym_name":"Iron Temple II"}`,
		})

		require.NoError(t, h.UpdateGym(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("blank name is rejected", func(t *testing.T) {
		h, _, _ := newGymHandlerForTest(t)
		gymID := uuid.New()

		c, rec := newTestContext(testRequest{
			method:   http.MethodPut,
			target:   "/gyms/" + gymID.String(),
			identity: adminIdentity(),
			params:   map[string]string{"gymId": gymID.String()},
			body:     `{"gym_name":""}`,
		})

		require.NoError(t, h.UpdateGym(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("staff of another gym", func(t *testing.T) {
		h, gymUC, _ := newGymHandlerForTest(t)
		gymID := uuid.New()
		gymUC.EXPECT().UpdateGym(mock.Anything, mock.Anything, gymID, mock.Anything).
			Return(nil, domainerrors.ErrForbidden.WithDetails("account is not bound to this gym"))

		c, rec := newTestContext(testRequest{
			method:   http.MethodPut,
			target:   "/gyms/" + gymID.String(),
			identity: staffIdentity(uuid.New()),
			params:   map[string]string{"gymId": gymID.String()},
			body:     `{"city":"Dallas"}`,
		})

		require.NoError(t, h.UpdateGym(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "FORBIDDEN", decodeErrorCode(t, rec))
		assert.NotContains(t, rec.Body.String(), "not bound")
	})
}

func TestGymHandler_DeleteGym(t *testing.T) {
	h, gymUC, _ := newGymHandlerForTest(t)
	actor := adminIdentity()
	gymID := uuid.New()
	gymUC.EXPECT().DeleteGym(mock.Anything, actor, gymID).Return(nil)

	c, rec := newTestContext(testRequest{
		method:   http.MethodDelete,
		target:   "/gyms/" + gymID.String(),
		identity: actor,
		params:   map[string]string{"gymId": gymID.String()},
	})

	require.NoError(t, h.DeleteGym(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Gym deleted successfully", decodeData[MessageResponse](t, rec).Message)
}
