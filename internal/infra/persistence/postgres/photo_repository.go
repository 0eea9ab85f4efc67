package postgres

import (
	"context"

	"travelfit/internal/domain/entity"
	domainerrors "travelfit/internal/domain/errors"
	"travelfit/internal/domain/repository"
	"travelfit/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// photoRepository implements the domain.PhotoRepository interface.
type photoRepository struct {
	db *gorm.DB
}

// NewPhotoRepository is the constructor for photoRepository.
func NewPhotoRepository(db *gorm.DB) repository.PhotoRepository {
	return &photoRepository{db: db}
}

// CreatePhoto persists a photo record.
func (repo *photoRepository) CreatePhoto(ctx context.Context, photo *entity.GymPhoto) error {
	photoM := fromGymPhotoDomain(photo)

	if err := repo.db.WithContext(ctx).Create(photoM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrGymNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create gym photo")
	}

	photo.ID = photoM.ID
	photo.CreatedAt = photoM.CreatedAt

	return nil
}

// FindPhotosByGym retrieves a gym's photos in upload order.
func (repo *photoRepository) FindPhotosByGym(ctx context.Context, gymID uuid.UUID) ([]*entity.GymPhoto, error) {
	var photoModels []*model.GymPhotoModel

	if err := repo.db.WithContext(ctx).
		Where("gym_id = ?", gymID).
		Order("position ASC").
		Find(&photoModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find photos by gym")
	}

	photos := make([]*entity.GymPhoto, 0, len(photoModels))
	for _, photoM := range photoModels {
		photos = append(photos, toGymPhotoDomain(photoM))
	}

	return photos, nil
}

// FindPhotoForGym retrieves a photo only if it belongs to gymID.
func (repo *photoRepository) FindPhotoForGym(ctx context.Context, gymID, photoID uuid.UUID) (*entity.GymPhoto, error) {
	var photoM model.GymPhotoModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND gym_id = ?", photoID, gymID).
		First(&photoM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPhotoNotFound
		}

		return nil, errors.Wrap(err, "failed to find photo for gym")
	}

	return toGymPhotoDomain(&photoM), nil
}

// DeletePhoto removes a photo record by its ID.
func (repo *photoRepository) DeletePhoto(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.GymPhotoModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete photo")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPhotoNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toGymPhotoDomain converts a GORM GymPhotoModel to a domain GymPhoto entity.
func toGymPhotoDomain(data *model.GymPhotoModel) *entity.GymPhoto {
	if data == nil {
		return nil
	}

	return &entity.GymPhoto{
		ID:        data.ID,
		GymID:     data.GymID,
		URL:       data.URL,
		BlobKey:   data.BlobKey,
		CreatedAt: data.CreatedAt,
	}
}

// fromGymPhotoDomain converts a domain GymPhoto entity to a GORM GymPhotoModel.
func fromGymPhotoDomain(data *entity.GymPhoto) *model.GymPhotoModel {
	if data == nil {
		return nil
	}

	return &model.GymPhotoModel{
		ID:        data.ID,
		GymID:     data.GymID,
		URL:       data.URL,
		BlobKey:   data.BlobKey,
		CreatedAt: data.CreatedAt,
	}
}
