package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "travelfit/internal/delivery/context"
	"travelfit/internal/domain/entity"
	domainerrors "travelfit/internal/domain/errors"
	"travelfit/internal/domain/repository"
	"travelfit/internal/domain/service"
	"travelfit/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type gymService struct {
	gymRepo   repository.GymRepository
	photoRepo repository.PhotoRepository
	geocoder  service.Geocoder
	logger    *slog.Logger
	now       func() time.Time
}

// GymServiceParams holds dependencies for GymService, injected by Fx.
type GymServiceParams struct {
	fx.In

	GymRepo   repository.GymRepository
	PhotoRepo repository.PhotoRepository
	Geocoder  service.Geocoder
	Logger    *slog.Logger
}

// NewGymService creates a new gym directory service instance
func NewGymService(params GymServiceParams) usecase.GymUsecase {
	return &gymService{
		gymRepo:   params.GymRepo,
		photoRepo: params.PhotoRepo,
		geocoder:  params.Geocoder,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (s *gymService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// CreateGym resolves the gym's address and persists it
func (s *gymService) CreateGym(ctx context.Context, actor *entity.Identity, input *usecase.GymInput) (*entity.Gym, error) {
	if err := authorizeRole(actor, policyPlatformAdmin); err != nil {
		return nil, err
	}

	if input == nil || strings.TrimSpace(input.Name) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is required")
	}
	if err := validateAddress(input.Address); err != nil {
		return nil, err
	}

	// The location must be resolved before anything is written.
	location, err := s.resolve(ctx, input.Address)
	if err != nil {
		return nil, err
	}

	now := s.now()
	gym := &entity.Gym{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		Address:     input.Address,
		Location:    location,
		Amenities:   input.Amenities,
		Hours:       input.Hours,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.gymRepo.CreateGym(ctx, gym); err != nil {
		return nil, errors.Wrap(err, "failed to create gym")
	}

	s.log(ctx).Info("Gym created", slog.Any("gym_id", gym.ID), slog.String("city", gym.Address.City))

	return gym, nil
}

// GetGym retrieves a gym with its photo URLs
func (s *gymService) GetGym(ctx context.Context, gymID uuid.UUID) (*entity.Gym, error) {
	gym, err := s.findGym(ctx, gymID)
	if err != nil {
		return nil, err
	}

	photos, err := s.photoRepo.FindPhotosByGym(ctx, gymID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find gym photos")
	}

	gym.PhotoURLs = make([]string, 0, len(photos))
	for _, photo := range photos {
		gym.PhotoURLs = append(gym.PhotoURLs, photo.URL)
	}

	return gym, nil
}

// UpdateGym applies a partial update, re-resolving the location when the address changes
func (s *gymService) UpdateGym(ctx context.Context, actor *entity.Identity, gymID uuid.UUID, patch *usecase.GymPatch) (*entity.Gym, error) {
	if err := authorize(actor, policyGymManagement, gymID); err != nil {
		return nil, err
	}

	if patch == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("empty update")
	}

	gym, err := s.findGym(ctx, gymID)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, domainerrors.ErrValidationFailed.WithDetails("name must not be empty")
		}
		gym.Name = name
	}
	if patch.Description != nil {
		gym.Description = *patch.Description
	}
	if patch.Amenities != nil {
		gym.Amenities = patch.Amenities
	}
	if patch.Hours != nil {
		gym.Hours = patch.Hours
	}

	address, changed := applyAddressPatch(gym.Address, patch)
	if changed {
		if err := validateAddress(address); err != nil {
			return nil, err
		}

		if address.Geocodable() != gym.Address.Geocodable() {
			location, err := s.resolve(ctx, address)
			if err != nil {
				return nil, err
			}
			gym.Location = location
		}
		gym.Address = address
	}

	gym.UpdatedAt = s.now()
	if err := s.gymRepo.UpdateGym(ctx, gym); err != nil {
		if errors.Is(err, repository.ErrGymNotFound) {
			return nil, errors.Wrap(domainerrors.ErrGymNotFound, "gym removed during update")
		}

		return nil, errors.Wrap(err, "failed to update gym")
	}

	return gym, nil
}

// DeleteGym removes a gym listing
func (s *gymService) DeleteGym(ctx context.Context, actor *entity.Identity, gymID uuid.UUID) error {
	if err := authorizeRole(actor, policyPlatformAdmin); err != nil {
		return err
	}

	if err := s.gymRepo.DeleteGym(ctx, gymID); err != nil {
		if errors.Is(err, repository.ErrGymNotFound) {
			return errors.Wrap(domainerrors.ErrGymNotFound, "gym not found")
		}

		return errors.Wrap(err, "failed to delete gym")
	}

	s.log(ctx).Info("Gym deleted", slog.Any("gym_id", gymID))

	return nil
}

// ListGymsInCity retrieves summaries of the gyms in a city
func (s *gymService) ListGymsInCity(ctx context.Context, city string) ([]*entity.GymSummary, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("city is required")
	}

	gyms, err := s.gymRepo.FindGymsByCity(ctx, city)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find gyms by city")
	}

	if gyms == nil {
		gyms = []*entity.GymSummary{}
	}

	return gyms, nil
}

func (s *gymService) findGym(ctx context.Context, gymID uuid.UUID) (*entity.Gym, error) {
	gym, err := s.gymRepo.FindGymByID(ctx, gymID)
	if err != nil {
		if errors.Is(err, repository.ErrGymNotFound) {
			return nil, errors.Wrap(domainerrors.ErrGymNotFound, "gym not found")
		}

		return nil, errors.Wrap(err, "failed to find gym")
	}

	return gym, nil
}

// resolve turns an address into a point, mapping resolver misses to ErrAddressUnresolvable.
func (s *gymService) resolve(ctx context.Context, address entity.GymAddress) (orb.Point, error) {
	line := address.Geocodable()

	point, err := s.geocoder.Geocode(ctx, line)
	if err != nil {
		if errors.Is(err, service.ErrAddressNotFound) {
			return orb.Point{}, domainerrors.ErrAddressUnresolvable
		}

		s.log(ctx).Error("Address resolution failed", slog.String("address", line), slog.Any("error", err))

		return orb.Point{}, errors.Wrap(err, "failed to resolve address")
	}

	if !validCoordinate(point.Lat(), point.Lon()) {
		return orb.Point{}, domainerrors.ErrAddressUnresolvable
	}

	return point, nil
}

func validateAddress(address entity.GymAddress) error {
	if strings.TrimSpace(address.Address1) == "" || strings.TrimSpace(address.City) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("address1 and city are required")
	}

	return nil
}

// applyAddressPatch returns the patched address and whether any field actually changed.
func applyAddressPatch(current entity.GymAddress, patch *usecase.GymPatch) (entity.GymAddress, bool) {
	next := current
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}

	set(&next.Address1, patch.Address1)
	set(&next.Address2, patch.Address2)
	set(&next.City, patch.City)
	set(&next.State, patch.State)
	set(&next.Zipcode, patch.Zipcode)

	return next, next != current
}
