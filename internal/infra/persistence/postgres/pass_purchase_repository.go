package postgres

import (
	"context"
	"time"

	"travelfit/internal/domain/entity"
	domainerrors "travelfit/internal/domain/errors"
	"travelfit/internal/domain/repository"
	"travelfit/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// passPurchaseRepository implements the domain.PassPurchaseRepository interface.
type passPurchaseRepository struct {
	db *gorm.DB
}

// NewPassPurchaseRepository is the constructor for passPurchaseRepository.
func NewPassPurchaseRepository(db *gorm.DB) repository.PassPurchaseRepository {
	return &passPurchaseRepository{db: db}
}

// CreatePurchase persists a new purchase.
func (repo *passPurchaseRepository) CreatePurchase(ctx context.Context, purchase *entity.PassPurchase) error {
	purchaseM := fromPassPurchaseDomain(purchase)

	if err := repo.db.WithContext(ctx).Create(purchaseM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrGymNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create pass purchase")
	}

	purchase.ID = purchaseM.ID
	purchase.UpdatedAt = purchaseM.UpdatedAt

	return nil
}

// FindPurchaseByID retrieves a purchase by its unique ID.
func (repo *passPurchaseRepository) FindPurchaseByID(ctx context.Context, id uuid.UUID) (*entity.PassPurchase, error) {
	var purchaseM model.PassPurchaseModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&purchaseM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPassNotFound
		}

		return nil, errors.Wrap(err, "failed to find pass purchase by ID")
	}

	return toPassPurchaseDomain(&purchaseM), nil
}

// SetRedemptionURL stores the blob URL of the purchase's redemption image.
func (repo *passPurchaseRepository) SetRedemptionURL(ctx context.Context, id uuid.UUID, url string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PassPurchaseModel{}).
		Where("id = ?", id).
		Update("redemption_url", url)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to set redemption URL")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPassNotFound
	}

	return nil
}

// ActivatePurchase is a conditional update: only a still-valid row without an expiration
// is changed, so concurrent scans activate a pass at most once.
func (repo *passPurchaseRepository) ActivatePurchase(ctx context.Context, id uuid.UUID, expiresAt time.Time) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.PassPurchaseModel{}).
		Where("id = ? AND expires_at IS NULL AND is_valid = ?", id, true).
		Update("expires_at", expiresAt)
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to activate pass purchase")
	}

	return result.RowsAffected == 1, nil
}

// RevokePurchase marks a purchase as no longer valid.
func (repo *passPurchaseRepository) RevokePurchase(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PassPurchaseModel{}).
		Where("id = ?", id).
		Update("is_valid", false)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to revoke pass purchase")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPassNotFound
	}

	return nil
}

// FindValidPassViewsByUser retrieves a user's valid purchases joined with their gyms, in purchase order.
func (repo *passPurchaseRepository) FindValidPassViewsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.PassView, error) {
	var viewModels []*model.PassViewModel

	query := `
		SELECT p.*,
		       g.name      AS gym_name,
		       g.city      AS gym_city,
		       g.latitude  AS gym_latitude,
		       g.longitude AS gym_longitude
		FROM pass_purchases p
		JOIN gyms g ON g.id = p.gym_id
		WHERE p.user_id = ?
		  AND p.is_valid = true
		ORDER BY p.position ASC
	`

	if err := repo.db.WithContext(ctx).Raw(query, userID).Scan(&viewModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find valid passes by user")
	}

	views := make([]*entity.PassView, 0, len(viewModels))
	for _, viewM := range viewModels {
		views = append(views, &entity.PassView{
			Purchase:    toPassPurchaseDomain(&viewM.PassPurchaseModel),
			GymName:     viewM.GymName,
			GymCity:     viewM.GymCity,
			GymLocation: orb.Point{viewM.GymLongitude, viewM.GymLatitude},
		})
	}

	return views, nil
}

// --- Mapper Functions ---

// toPassPurchaseDomain converts a GORM PassPurchaseModel to a domain PassPurchase entity.
func toPassPurchaseDomain(data *model.PassPurchaseModel) *entity.PassPurchase {
	if data == nil {
		return nil
	}

	return &entity.PassPurchase{
		ID:            data.ID,
		UserID:        data.UserID,
		GymID:         data.GymID,
		OfferingID:    data.OfferingID,
		PassName:      data.PassName,
		DurationDays:  data.DurationDays,
		Price:         data.Price,
		Description:   data.Description,
		RedemptionURL: data.RedemptionURL,
		ExpiresAt:     data.ExpiresAt,
		IsValid:       data.IsValid,
		PurchasedAt:   data.PurchasedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromPassPurchaseDomain converts a domain PassPurchase entity to a GORM PassPurchaseModel.
func fromPassPurchaseDomain(data *entity.PassPurchase) *model.PassPurchaseModel {
	if data == nil {
		return nil
	}

	return &model.PassPurchaseModel{
		ID:            data.ID,
		UserID:        data.UserID,
		GymID:         data.GymID,
		OfferingID:    data.OfferingID,
		PassName:      data.PassName,
		DurationDays:  data.DurationDays,
		Price:         data.Price,
		Description:   data.Description,
		RedemptionURL: data.RedemptionURL,
		ExpiresAt:     data.ExpiresAt,
		IsValid:       data.IsValid,
		PurchasedAt:   data.PurchasedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
