package impl

import (
	"context"
	"strings"
	"testing"

	"travelfit/internal/domain/entity"
	domainerrors "travelfit/internal/domain/errors"
	"travelfit/internal/domain/repository"
	mockRepo "travelfit/internal/mocks/repository"
	mockSvc "travelfit/internal/mocks/service"
	"travelfit/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type photoMocks struct {
	gymRepo   *mockRepo.MockGymRepository
	photoRepo *mockRepo.MockPhotoRepository
	blob      *mockSvc.MockBlobStorage
}

func newPhotoServiceForTest(t *testing.T) (usecase.PhotoUsecase, photoMocks) {
	m := photoMocks{
		gymRepo:   mockRepo.NewMockGymRepository(t),
		photoRepo: mockRepo.NewMockPhotoRepository(t),
		blob:      mockSvc.NewMockBlobStorage(t),
	}
	svc := NewPhotoService(PhotoServiceParams{
		GymRepo:     m.gymRepo,
		PhotoRepo:   m.photoRepo,
		BlobStorage: m.blob,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	})

	return svc, m
}

func TestPhotoService_AddPhoto(t *testing.T) {
	svc, m := newPhotoServiceForTest(t)
	ctx := context.Background()
	gymID := uuid.New()
	data := []byte("jpeg bytes")
	prefix := "gym-photos/gym-" + gymID.String() + "/"

	m.gymRepo.EXPECT().FindGymByID(ctx, gymID).Return(&entity.Gym{ID: gymID}, nil)
	m.blob.EXPECT().
		Put(ctx, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, prefix) && strings.HasSuffix(key, "-front_desk.jpg")
		}), data, "image/jpeg").
		Return("https://cdn.example/photo.jpg", nil)
	m.photoRepo.EXPECT().CreatePhoto(ctx, mock.AnythingOfType("*entity.GymPhoto")).Return(nil)

	photo, err := svc.AddPhoto(ctx, gymIdentity(gymID), gymID, &usecase.PhotoUpload{
		Filename:    "../../front desk.jpg",
		ContentType: "image/jpeg",
		Data:        data,
	})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/photo.jpg", photo.URL)
	assert.True(t, strings.HasPrefix(photo.BlobKey, prefix))
}

func TestPhotoService_AddPhoto_RemovesBlobWhenRecordFails(t *testing.T) {
	svc, m := newPhotoServiceForTest(t)
	ctx := context.Background()
	gymID := uuid.New()

	var stored string
	m.gymRepo.EXPECT().FindGymByID(ctx, gymID).Return(&entity.Gym{ID: gymID}, nil)
	m.blob.EXPECT().Put(ctx, mock.Anything, mock.Anything, "image/png").
		Run(func(_ context.Context, key string, _ []byte, _ string) { stored = key }).
		Return("https://cdn.example/p.png", nil)
	m.photoRepo.EXPECT().CreatePhoto(ctx, mock.Anything).Return(errors.New("insert failed"))
	m.blob.EXPECT().Delete(mock.Anything, mock.MatchedBy(func(key string) bool { return key == stored })).Return(nil)

	photo, err := svc.AddPhoto(ctx, adminIdentity(), gymID, &usecase.PhotoUpload{Filename: "p.png", ContentType: "image/png", Data: []byte("x")})
	require.Error(t, err)
	assert.Nil(t, photo)
}

func TestPhotoService_AddPhoto_RejectsNonImages(t *testing.T) {
	svc, _ := newPhotoServiceForTest(t)

	_, err := svc.AddPhoto(context.Background(), adminIdentity(), uuid.New(), &usecase.PhotoUpload{
		Filename:    "notes.txt",
		ContentType: "text/plain",
		Data:        []byte("hello"),
	})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestPhotoService_DeletePhoto_MustBelongToGym(t *testing.T) {
	svc, m := newPhotoServiceForTest(t)
	ctx := context.Background()
	gymID := uuid.New()
	photoID := uuid.New()

	m.photoRepo.EXPECT().FindPhotoForGym(ctx, gymID, photoID).Return(nil, repository.ErrPhotoNotFound)

	err := svc.DeletePhoto(ctx, adminIdentity(), gymID, photoID)
	assert.True(t, errors.Is(err, domainerrors.ErrPhotoNotFound))
}

func TestPhotoService_DeletePhoto(t *testing.T) {
	svc, m := newPhotoServiceForTest(t)
	ctx := context.Background()
	gymID := uuid.New()
	photo := &entity.GymPhoto{ID: uuid.New(), GymID: gymID, BlobKey: "gym-photos/gym-x/p.png"}

	m.photoRepo.EXPECT().FindPhotoForGym(ctx, gymID, photo.ID).Return(photo, nil)
	m.blob.EXPECT().Delete(ctx, photo.BlobKey).Return(nil)
	m.photoRepo.EXPECT().DeletePhoto(ctx, photo.ID).Return(nil)

	require.NoError(t, svc.DeletePhoto(ctx, gymIdentity(gymID), gymID, photo.ID))
}

func TestSanitizeFilename(t *testing.T) {
	tests := map[string]string{
		"photo.jpg":           "photo.jpg",
		"../../etc/passwd":    "passwd",
		`C:\Users\me\gym.png`: "gym.png",
		"my gym (1).png":      "my_gym_1.png",
		"":                    "photo",
		"%%%":                 "photo",
	}

	for in, want := range tests {
		assert.Equal(t, want, sanitizeFilename(in), in)
	}
}
