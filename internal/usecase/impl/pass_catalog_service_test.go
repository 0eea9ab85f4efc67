package impl

import (
	"context"
	"testing"
	"time"

	"travelfit/internal/domain/entity"
	domainerrors "travelfit/internal/domain/errors"
	"travelfit/internal/domain/repository"
	mockRepo "travelfit/internal/mocks/repository"
	"travelfit/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPassCatalogServiceForTest(t *testing.T) (*passCatalogService, *mockRepo.MockGymRepository, *mockRepo.MockPassOfferingRepository) {
	gymRepo := mockRepo.NewMockGymRepository(t)
	offeringRepo := mockRepo.NewMockPassOfferingRepository(t)
	svc := NewPassCatalogService(PassCatalogServiceParams{
		GymRepo:      gymRepo,
		OfferingRepo: offeringRepo,
		Logger:       newDiscardLogger(),
	}).(*passCatalogService)
	svc.now = fixedClock(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))

	return svc, gymRepo, offeringRepo
}

func TestPassCatalogService_CreateOffering_Success(t *testing.T) {
	svc, gymRepo, offeringRepo := newPassCatalogServiceForTest(t)
	ctx := context.Background()
	gymID := uuid.New()

	gymRepo.EXPECT().FindGymByID(ctx, gymID).Return(&entity.Gym{ID: gymID}, nil)
	offeringRepo.EXPECT().
		CreateOffering(ctx, mock.MatchedBy(func(o *entity.PassOffering) bool {
			return o.GymID == gymID && o.Price.Equal(decimal.RequireFromString("19.99")) && o.DurationDays == 7
		})).
		Return(nil)

	offering, err := svc.CreateOffering(ctx, gymIdentity(gymID), gymID, &usecase.OfferingInput{
		Name:         " Week Pass ",
		Price:        decimal.RequireFromString("19.99"),
		DurationDays: 7,
	})
	require.NoError(t, err)
	assert.Equal(t, "Week Pass", offering.Name)
	assert.NotEqual(t, uuid.Nil, offering.ID)
}

func TestPassCatalogService_CreateOffering_RejectsInvalidTermsBeforeWriting(t *testing.T) {
	tests := []struct {
		name     string
		price    string
		duration int
		wantErr  error
	}{
		{name: "zero price", price: "0", duration: 7, wantErr: domainerrors.ErrInvalidPrice},
		{name: "negative price", price: "-5.00", duration: 7, wantErr: domainerrors.ErrInvalidPrice},
		{name: "three decimals", price: "19.999", duration: 7, wantErr: domainerrors.ErrInvalidPrice},
		{name: "too many digits", price: "1000.00", duration: 7, wantErr: domainerrors.ErrInvalidPrice},
		{name: "zero duration", price: "19.99", duration: 0, wantErr: domainerrors.ErrInvalidDuration},
		{name: "negative duration", price: "19.99", duration: -1, wantErr: domainerrors.ErrInvalidDuration},
		{name: "duration past ten years", price: "19.99", duration: 3651, wantErr: domainerrors.ErrInvalidDuration},
		{name: "duration overflowing expiry", price: "19.99", duration: 1073741824, wantErr: domainerrors.ErrInvalidDuration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newPassCatalogServiceForTest(t)
			gymID := uuid.New()

			offering, err := svc.CreateOffering(context.Background(), adminIdentity(), gymID, &usecase.OfferingInput{
				Name:         "Pass",
				Price:        decimal.RequireFromString(tt.price),
				DurationDays: tt.duration,
			})
			assert.Nil(t, offering)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestPassCatalogService_CreateOffering_AcceptsLongestTerm(t *testing.T) {
	svc, gymRepo, offeringRepo := newPassCatalogServiceForTest(t)
	ctx := context.Background()
	gymID := uuid.New()

	gymRepo.EXPECT().FindGymByID(ctx, gymID).Return(&entity.Gym{ID: gymID}, nil)
	offeringRepo.EXPECT().CreateOffering(ctx, mock.Anything).Return(nil)

	offering, err := svc.CreateOffering(ctx, adminIdentity(), gymID, &usecase.OfferingInput{
		Name:         "Decade Pass",
		Price:        decimal.RequireFromString("999.99"),
		DurationDays: 3650,
	})
	require.NoError(t, err)
	assert.Equal(t, 3650, offering.DurationDays)
	assert.Less(t, entity.ActivationExpiry(time.Now(), offering.DurationDays).Year(), 294276)
}

func TestPassCatalogService_CreateOffering_TrailingZerosAccepted(t *testing.T) {
	svc, gymRepo, offeringRepo := newPassCatalogServiceForTest(t)
	ctx := context.Background()
	gymID := uuid.New()

	gymRepo.EXPECT().FindGymByID(ctx, gymID).Return(&entity.Gym{ID: gymID}, nil)
	offeringRepo.EXPECT().CreateOffering(ctx, mock.Anything).Return(nil)

	_, err := svc.CreateOffering(ctx, adminIdentity(), gymID, &usecase.OfferingInput{
		Name:         "Day Pass",
		Price:        decimal.RequireFromString("5.500"),
		DurationDays: 1,
	})
	require.NoError(t, err)
}

func TestPassCatalogService_CreateOffering_OtherGymStaffForbidden(t *testing.T) {
	svc, _, _ := newPassCatalogServiceForTest(t)

	_, err := svc.CreateOffering(context.Background(), gymIdentity(uuid.New()), uuid.New(), &usecase.OfferingInput{
		Name:         "Pass",
		Price:        decimal.RequireFromString("10"),
		DurationDays: 1,
	})
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestPassCatalogService_DeleteOffering_CrossGymIsNotFound(t *testing.T) {
	svc, _, offeringRepo := newPassCatalogServiceForTest(t)
	ctx := context.Background()
	gymFive := uuid.New()
	offeringOfGymSeven := uuid.New()

	offeringRepo.EXPECT().
		DeleteOfferingForGym(ctx, gymFive, offeringOfGymSeven).
		Return(repository.ErrPassOfferingNotFound)

	err := svc.DeleteOffering(ctx, adminIdentity(), gymFive, offeringOfGymSeven)
	assert.True(t, errors.Is(err, domainerrors.ErrPassOfferingNotFound))
}

func TestPassCatalogService_DeleteOffering_Success(t *testing.T) {
	svc, _, offeringRepo := newPassCatalogServiceForTest(t)
	ctx := context.Background()
	gymID := uuid.New()
	offeringID := uuid.New()

	offeringRepo.EXPECT().DeleteOfferingForGym(ctx, gymID, offeringID).Return(nil)

	require.NoError(t, svc.DeleteOffering(ctx, gymIdentity(gymID), gymID, offeringID))
}

func TestPassCatalogService_ListOfferings(t *testing.T) {
	svc, _, offeringRepo := newPassCatalogServiceForTest(t)
	ctx := context.Background()
	gymID := uuid.New()
	first := &entity.PassOffering{ID: uuid.New(), Name: "Day"}
	second := &entity.PassOffering{ID: uuid.New(), Name: "Week"}

	offeringRepo.EXPECT().FindOfferingsByGym(ctx, gymID).Return([]*entity.PassOffering{first, second}, nil)

	offerings, err := svc.ListOfferings(ctx, gymID)
	require.NoError(t, err)
	assert.Equal(t, []*entity.PassOffering{first, second}, offerings)
}
