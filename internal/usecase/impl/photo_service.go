package impl

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"
	"time"

	"travelfit/config"
	deliverycontext "travelfit/internal/delivery/context"
	"travelfit/internal/domain/entity"
	domainerrors "travelfit/internal/domain/errors"
	"travelfit/internal/domain/repository"
	"travelfit/internal/domain/service"
	"travelfit/internal/usecase"
	"travelfit/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type photoService struct {
	gymRepo     repository.GymRepository
	photoRepo   repository.PhotoRepository
	blobStorage service.BlobStorage
	photoPrefix string
	logger      *slog.Logger
	now         func() time.Time
}

// PhotoServiceParams holds dependencies for PhotoService, injected by Fx.
type PhotoServiceParams struct {
	fx.In

	GymRepo     repository.GymRepository
	PhotoRepo   repository.PhotoRepository
	BlobStorage service.BlobStorage
	Config      *config.Config
	Logger      *slog.Logger
}

// NewPhotoService creates a new photo gallery service instance
func NewPhotoService(params PhotoServiceParams) usecase.PhotoUsecase {
	return &photoService{
		gymRepo:     params.GymRepo,
		photoRepo:   params.PhotoRepo,
		blobStorage: params.BlobStorage,
		photoPrefix: params.Config.Blob.PhotoPrefix,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (s *photoService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// AddPhoto stores an image and records it against the gym
func (s *photoService) AddPhoto(ctx context.Context, actor *entity.Identity, gymID uuid.UUID, upload *usecase.PhotoUpload) (*entity.GymPhoto, error) {
	if err := authorize(actor, policyGymManagement, gymID); err != nil {
		return nil, err
	}

	if upload == nil || len(upload.Data) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("photo is empty")
	}
	if !strings.HasPrefix(upload.ContentType, "image/") {
		return nil, domainerrors.ErrValidationFailed.WithDetails("photo must be an image")
	}

	if _, err := s.gymRepo.FindGymByID(ctx, gymID); err != nil {
		if errors.Is(err, repository.ErrGymNotFound) {
			return nil, errors.Wrap(domainerrors.ErrGymNotFound, "gym not found")
		}

		return nil, errors.Wrap(err, "failed to find gym")
	}

	photoID := uuid.New()
	key := path.Join(s.photoPrefix, fmt.Sprintf("gym-%s", gymID), fmt.Sprintf("%s-%s", photoID, sanitizeFilename(upload.Filename)))

	url, err := s.blobStorage.Put(ctx, key, upload.Data, upload.ContentType)
	if err != nil {
		return nil, errors.Wrapf(domainerrors.ErrStorageFailed, "store photo: %v", err)
	}

	photo := &entity.GymPhoto{
		ID:        photoID,
		GymID:     gymID,
		URL:       url,
		BlobKey:   key,
		CreatedAt: s.now(),
	}

	if err := s.photoRepo.CreatePhoto(ctx, photo); err != nil {
		if delErr := s.blobStorage.Delete(context.WithoutCancel(ctx), key); delErr != nil {
			s.log(ctx).Warn("Failed to remove orphaned photo", slog.String("key", key), slog.Any("error", delErr))
		}

		return nil, errors.Wrap(err, "failed to create photo")
	}

	s.log(ctx).Info("Gym photo added",
		slog.Any("gym_id", gymID),
		slog.Any("photo_id", photoID),
		slog.String("size", util.FormatBytes(int64(len(upload.Data)))),
		slog.String("sha256", util.Checksum(upload.Data)),
	)

	return photo, nil
}

// ListPhotos retrieves the gym's photos in upload order
func (s *photoService) ListPhotos(ctx context.Context, gymID uuid.UUID) ([]*entity.GymPhoto, error) {
	photos, err := s.photoRepo.FindPhotosByGym(ctx, gymID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find photos")
	}

	if photos == nil {
		photos = []*entity.GymPhoto{}
	}

	return photos, nil
}

// DeletePhoto removes a photo that belongs to the gym, including its stored image
func (s *photoService) DeletePhoto(ctx context.Context, actor *entity.Identity, gymID, photoID uuid.UUID) error {
	if err := authorize(actor, policyGymManagement, gymID); err != nil {
		return err
	}

	photo, err := s.photoRepo.FindPhotoForGym(ctx, gymID, photoID)
	if err != nil {
		if errors.Is(err, repository.ErrPhotoNotFound) {
			return errors.Wrap(domainerrors.ErrPhotoNotFound, "photo not found")
		}

		return errors.Wrap(err, "failed to find photo")
	}

	if err := s.blobStorage.Delete(ctx, photo.BlobKey); err != nil {
		return errors.Wrapf(domainerrors.ErrStorageFailed, "delete photo: %v", err)
	}

	if err := s.photoRepo.DeletePhoto(ctx, photo.ID); err != nil {
		return errors.Wrap(err, "failed to delete photo")
	}

	return nil
}

// sanitizeFilename keeps the base name of an uploaded file and drops characters unsafe in blob keys.
func sanitizeFilename(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			return r
		case r == ' ':
			return '_'
		default:
			return -1
		}
	}, name)

	if name == "" || name == "." || name == ".." {
		return "photo"
	}

	return name
}
