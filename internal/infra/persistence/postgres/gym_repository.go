// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"strings"

	"travelfit/internal/domain/entity"
	domainerrors "travelfit/internal/domain/errors"
	"travelfit/internal/domain/repository"
	"travelfit/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// gymColumns lists the scalar columns of 'gyms'. The generated geography column is left out
// because it has no counterpart in the model.
const gymColumns = `g.id, g.name, g.description, g.address1, g.address2, g.city, g.state, g.zipcode,
	g.latitude, g.longitude, g.amenities, g.hours, g.created_at, g.updated_at`

// gymRepository implements the domain.GymRepository interface.
type gymRepository struct {
	db *gorm.DB
}

// NewGymRepository is the constructor for gymRepository.
func NewGymRepository(db *gorm.DB) repository.GymRepository {
	return &gymRepository{db: db}
}

// CreateGym persists a new gym.
func (repo *gymRepository) CreateGym(ctx context.Context, gym *entity.Gym) error {
	gymM := fromGymDomain(gym)

	if err := repo.db.WithContext(ctx).Create(gymM).Error; err != nil {
		if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("gym violates a table constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create gym")
	}

	gym.ID = gymM.ID
	gym.CreatedAt = gymM.CreatedAt
	gym.UpdatedAt = gymM.UpdatedAt

	return nil
}

// FindGymByID retrieves a gym by its unique ID.
func (repo *gymRepository) FindGymByID(ctx context.Context, id uuid.UUID) (*entity.Gym, error) {
	var gymM model.GymModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&gymM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGymNotFound
		}

		return nil, errors.Wrap(err, "failed to find gym by ID")
	}

	return toGymDomain(&gymM), nil
}

// UpdateGym overwrites every mutable column of an existing gym.
func (repo *gymRepository) UpdateGym(ctx context.Context, gym *entity.Gym) error {
	gymM := fromGymDomain(gym)

	result := repo.db.WithContext(ctx).
		Model(gymM).
		Select("*").
		Omit("ID", "CreatedAt").
		Updates(gymM)
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) || isNotNullConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("gym violates a table constraint")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update gym")
	}

	if result.RowsAffected == 0 {
		return repository.ErrGymNotFound
	}

	gym.UpdatedAt = gymM.UpdatedAt

	return nil
}

// DeleteGym removes a gym. Offerings, purchases, photos and favorites cascade.
func (repo *gymRepository) DeleteGym(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.GymModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete gym")
	}

	if result.RowsAffected == 0 {
		return repository.ErrGymNotFound
	}

	return nil
}

// FindGymsByCity retrieves summaries of every gym in a city, compared case-insensitively.
func (repo *gymRepository) FindGymsByCity(ctx context.Context, city string) ([]*entity.GymSummary, error) {
	var summaryModels []*model.GymSummaryModel

	if err := repo.db.WithContext(ctx).
		Model(&model.GymModel{}).
		Select("id, name, city, latitude, longitude").
		Where("lower(city) = ?", strings.ToLower(strings.TrimSpace(city))).
		Order("name ASC, id ASC").
		Scan(&summaryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find gyms by city")
	}

	return toGymSummaries(summaryModels), nil
}

// FindGymsNearby performs a PostGIS geography query. Filtering and ordering both use the
// geodesic distance on the WGS 84 spheroid, so the two can never disagree.
func (repo *gymRepository) FindGymsNearby(ctx context.Context, point orb.Point, radiusMeters float64, limit int) ([]*entity.NearbyGym, error) {
	var nearbyModels []*model.NearbyGymModel

	query := `
		WITH origin AS (
		  SELECT ST_SetSRID(ST_MakePoint(?, ?), 4326)::geography AS geog
		)
		SELECT ` + gymColumns + `,
		       ST_Distance(g.location, origin.geog) AS distance_meters
		FROM gyms g, origin
		WHERE ST_DWithin(g.location, origin.geog, ?)
		ORDER BY distance_meters ASC, g.id ASC
	`
	args := []any{point.Lon(), point.Lat(), radiusMeters}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	if err := repo.db.WithContext(ctx).Raw(query, args...).Scan(&nearbyModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find gyms nearby")
	}

	gyms := make([]*entity.NearbyGym, 0, len(nearbyModels))
	for _, nearbyM := range nearbyModels {
		gyms = append(gyms, &entity.NearbyGym{
			Gym:            toGymDomain(&nearbyM.GymModel),
			DistanceMeters: nearbyM.DistanceMeters,
		})
	}

	return gyms, nil
}

// --- Mapper Functions ---

// toGymDomain converts a GORM GymModel to a domain Gym entity.
func toGymDomain(data *model.GymModel) *entity.Gym {
	if data == nil {
		return nil
	}

	amenities := []string(data.Amenities)
	if amenities == nil {
		amenities = []string{}
	}
	hours := data.Hours.Data()
	if hours == nil {
		hours = map[string]string{}
	}

	return &entity.Gym{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Address: entity.GymAddress{
			Address1: data.Address1,
			Address2: data.Address2,
			City:     data.City,
			State:    data.State,
			Zipcode:  data.Zipcode,
		},
		Location:  orb.Point{data.Longitude, data.Latitude},
		Amenities: amenities,
		Hours:     hours,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromGymDomain converts a domain Gym entity to a GORM GymModel.
func fromGymDomain(data *entity.Gym) *model.GymModel {
	if data == nil {
		return nil
	}

	amenities := data.Amenities
	if amenities == nil {
		amenities = []string{}
	}
	hours := data.Hours
	if hours == nil {
		hours = map[string]string{}
	}

	return &model.GymModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Address1:    data.Address.Address1,
		Address2:    data.Address.Address2,
		City:        data.Address.City,
		State:       data.Address.State,
		Zipcode:     data.Address.Zipcode,
		Latitude:    data.Location.Lat(),
		Longitude:   data.Location.Lon(),
		Amenities:   datatypes.JSONSlice[string](amenities),
		Hours:       datatypes.NewJSONType(hours),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// toGymSummaries converts summary rows to domain GymSummary values.
func toGymSummaries(rows []*model.GymSummaryModel) []*entity.GymSummary {
	summaries := make([]*entity.GymSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, &entity.GymSummary{
			ID:       row.ID,
			Name:     row.Name,
			City:     row.City,
			Location: orb.Point{row.Longitude, row.Latitude},
		})
	}

	return summaries
}
