package impl

import (
	"context"
	"testing"

	"travelfit/internal/domain/entity"
	domainerrors "travelfit/internal/domain/errors"
	mockRepo "travelfit/internal/mocks/repository"
	mockSvc "travelfit/internal/mocks/service"
	"travelfit/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newGeoSearchServiceForTest(t *testing.T) (usecase.GeoSearchUsecase, *mockRepo.MockGymRepository, *mockSvc.MockMetricsRecorder) {
	gymRepo := mockRepo.NewMockGymRepository(t)
	metrics := mockSvc.NewMockMetricsRecorder(t)
	svc := NewGeoSearchService(GeoSearchServiceParams{
		GymRepo: gymRepo,
		Metrics: metrics,
		Config:  newTestConfig(),
		Logger:  newDiscardLogger(),
	})

	return svc, gymRepo, metrics
}

func TestGeoSearchService_FindNearby_DefaultsRadius(t *testing.T) {
	svc, gymRepo, metrics := newGeoSearchServiceForTest(t)
	ctx := context.Background()

	near := &entity.NearbyGym{Gym: &entity.Gym{ID: uuid.New(), Name: "Near"}, DistanceMeters: 120}
	far := &entity.NearbyGym{Gym: &entity.Gym{ID: uuid.New(), Name: "Far"}, DistanceMeters: 1900}

	gymRepo.EXPECT().
		FindGymsNearby(ctx, orb.Point{-73.9857, 40.7484}, 2000.0, 100).
		Return([]*entity.NearbyGym{near, far}, nil)
	metrics.EXPECT().NearbySearchCompleted(mock.Anything, 2).Return()

	gyms, err := svc.FindNearby(ctx, &usecase.NearbyQuery{Latitude: 40.7484, Longitude: -73.9857})
	require.NoError(t, err)
	require.Len(t, gyms, 2)
	assert.Equal(t, "Near", gyms[0].Gym.Name)
	assert.Equal(t, "Far", gyms[1].Gym.Name)
}

func TestGeoSearchService_FindNearby_EmptyResultIsNotAnError(t *testing.T) {
	svc, gymRepo, metrics := newGeoSearchServiceForTest(t)
	ctx := context.Background()

	gymRepo.EXPECT().
		FindGymsNearby(ctx, orb.Point{10, 20}, 500.0, 5).
		Return(nil, nil)
	metrics.EXPECT().NearbySearchCompleted(mock.Anything, 0).Return()

	gyms, err := svc.FindNearby(ctx, &usecase.NearbyQuery{Latitude: 20, Longitude: 10, RadiusMeters: 500, Limit: 5})
	require.NoError(t, err)
	assert.NotNil(t, gyms)
	assert.Empty(t, gyms)
}

func TestGeoSearchService_FindNearby_QueryFailureSurfaces(t *testing.T) {
	svc, gymRepo, _ := newGeoSearchServiceForTest(t)
	ctx := context.Background()

	gymRepo.EXPECT().
		FindGymsNearby(ctx, mock.Anything, 2000.0, 100).
		Return(nil, errors.New("connection refused"))

	gyms, err := svc.FindNearby(ctx, &usecase.NearbyQuery{Latitude: 1, Longitude: 1})
	require.Error(t, err)
	assert.Nil(t, gyms)
	assert.True(t, errors.Is(err, domainerrors.ErrQueryFailed))
}

func TestGeoSearchService_FindNearby_ClampsLimit(t *testing.T) {
	svc, gymRepo, metrics := newGeoSearchServiceForTest(t)
	ctx := context.Background()

	gymRepo.EXPECT().
		FindGymsNearby(ctx, mock.Anything, 2000.0, 100).
		Return([]*entity.NearbyGym{}, nil)
	metrics.EXPECT().NearbySearchCompleted(mock.Anything, 0).Return()

	_, err := svc.FindNearby(ctx, &usecase.NearbyQuery{Latitude: 1, Longitude: 1, Limit: 5000})
	require.NoError(t, err)
}

func TestGeoSearchService_FindNearby_RejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		query   *usecase.NearbyQuery
		wantErr error
	}{
		{name: "nil query", query: nil, wantErr: domainerrors.ErrValidationFailed},
		{name: "negative radius", query: &usecase.NearbyQuery{RadiusMeters: -1}, wantErr: domainerrors.ErrInvalidRadius},
		{name: "radius above maximum", query: &usecase.NearbyQuery{RadiusMeters: 50001}, wantErr: domainerrors.ErrInvalidRadius},
		{name: "latitude out of range", query: &usecase.NearbyQuery{Latitude: 91}, wantErr: domainerrors.ErrInvalidCoordinate},
		{name: "longitude out of range", query: &usecase.NearbyQuery{Longitude: -180.5}, wantErr: domainerrors.ErrInvalidCoordinate},
		{name: "negative limit", query: &usecase.NearbyQuery{Limit: -3}, wantErr: domainerrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newGeoSearchServiceForTest(t)

			gyms, err := svc.FindNearby(context.Background(), tt.query)
			require.Error(t, err)
			assert.Nil(t, gyms)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}
