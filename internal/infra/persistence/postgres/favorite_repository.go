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
	"gorm.io/gorm/clause"
)

// favoriteRepository implements the domain.FavoriteRepository interface.
type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository is the constructor for favoriteRepository.
func NewFavoriteRepository(db *gorm.DB) repository.FavoriteRepository {
	return &favoriteRepository{db: db}
}

// AddFavorite bookmarks a gym. The composite primary key makes repeated adds a no-op.
func (repo *favoriteRepository) AddFavorite(ctx context.Context, userID, gymID uuid.UUID) error {
	favoriteM := &model.FavoriteModel{
		UserID: userID,
		GymID:  gymID,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(favoriteM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrGymNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add favorite")
	}

	return nil
}

// RemoveFavorite removes a bookmark. Removing an absent favorite is not an error.
func (repo *favoriteRepository) RemoveFavorite(ctx context.Context, userID, gymID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND gym_id = ?", userID, gymID).
		Delete(&model.FavoriteModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to remove favorite")
	}

	return nil
}

// FindFavoriteGymsByUser retrieves summaries of the gyms a user bookmarked, oldest bookmark first.
func (repo *favoriteRepository) FindFavoriteGymsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.GymSummary, error) {
	var summaryModels []*model.GymSummaryModel

	if err := repo.db.WithContext(ctx).
		Table("favorites f").
		Select("g.id, g.name, g.city, g.latitude, g.longitude").
		Joins("JOIN gyms g ON g.id = f.gym_id").
		Where("f.user_id = ?", userID).
		Order("f.created_at ASC, g.id ASC").
		Scan(&summaryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find favorite gyms by user")
	}

	return toGymSummaries(summaryModels), nil
}
