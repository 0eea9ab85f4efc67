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

// passOfferingRepository implements the domain.PassOfferingRepository interface.
type passOfferingRepository struct {
	db *gorm.DB
}

// NewPassOfferingRepository is the constructor for passOfferingRepository.
func NewPassOfferingRepository(db *gorm.DB) repository.PassOfferingRepository {
	return &passOfferingRepository{db: db}
}

// CreateOffering persists a new offering.
func (repo *passOfferingRepository) CreateOffering(ctx context.Context, offering *entity.PassOffering) error {
	offeringM := fromPassOfferingDomain(offering)

	if err := repo.db.WithContext(ctx).Create(offeringM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrGymNotFound
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("offering violates a table constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create pass offering")
	}

	offering.ID = offeringM.ID
	offering.CreatedAt = offeringM.CreatedAt

	return nil
}

// FindOfferingsByGym retrieves a gym's offerings in insertion order.
func (repo *passOfferingRepository) FindOfferingsByGym(ctx context.Context, gymID uuid.UUID) ([]*entity.PassOffering, error) {
	var offeringModels []*model.PassOfferingModel

	if err := repo.db.WithContext(ctx).
		Where("gym_id = ?", gymID).
		Order("position ASC").
		Find(&offeringModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find pass offerings by gym")
	}

	offerings := make([]*entity.PassOffering, 0, len(offeringModels))
	for _, offeringM := range offeringModels {
		offerings = append(offerings, toPassOfferingDomain(offeringM))
	}

	return offerings, nil
}

// FindOfferingForGym retrieves an offering only if it belongs to gymID.
func (repo *passOfferingRepository) FindOfferingForGym(ctx context.Context, gymID, offeringID uuid.UUID) (*entity.PassOffering, error) {
	var offeringM model.PassOfferingModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND gym_id = ?", offeringID, gymID).
		First(&offeringM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPassOfferingNotFound
		}

		return nil, errors.Wrap(err, "failed to find pass offering for gym")
	}

	return toPassOfferingDomain(&offeringM), nil
}

// DeleteOfferingForGym deletes an offering only if it belongs to gymID.
func (repo *passOfferingRepository) DeleteOfferingForGym(ctx context.Context, gymID, offeringID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND gym_id = ?", offeringID, gymID).
		Delete(&model.PassOfferingModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete pass offering")
	}

	// Either the offering does not exist or it belongs to another gym.
	if result.RowsAffected == 0 {
		return repository.ErrPassOfferingNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toPassOfferingDomain converts a GORM PassOfferingModel to a domain PassOffering entity.
func toPassOfferingDomain(data *model.PassOfferingModel) *entity.PassOffering {
	if data == nil {
		return nil
	}

	return &entity.PassOffering{
		ID:           data.ID,
		GymID:        data.GymID,
		Name:         data.Name,
		Price:        data.Price,
		DurationDays: data.DurationDays,
		Description:  data.Description,
		CreatedAt:    data.CreatedAt,
	}
}

// fromPassOfferingDomain converts a domain PassOffering entity to a GORM PassOfferingModel.
func fromPassOfferingDomain(data *entity.PassOffering) *model.PassOfferingModel {
	if data == nil {
		return nil
	}

	return &model.PassOfferingModel{
		ID:           data.ID,
		GymID:        data.GymID,
		Name:         data.Name,
		Price:        data.Price,
		DurationDays: data.DurationDays,
		Description:  data.Description,
		CreatedAt:    data.CreatedAt,
	}
}
