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
	"travelfit/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// maxOfferingPrice is the exclusive upper bound of a numeric(5,2) price column.
var maxOfferingPrice = decimal.NewFromInt(1000)

// maxOfferingDays caps a pass term at ten years so the activation expiry stays storable.
const maxOfferingDays = 3650

type passCatalogService struct {
	gymRepo      repository.GymRepository
	offeringRepo repository.PassOfferingRepository
	logger       *slog.Logger
	now          func() time.Time
}

// PassCatalogServiceParams holds dependencies for PassCatalogService, injected by Fx.
type PassCatalogServiceParams struct {
	fx.In

	GymRepo      repository.GymRepository
	OfferingRepo repository.PassOfferingRepository
	Logger       *slog.Logger
}

// NewPassCatalogService creates a new pass catalog service instance
func NewPassCatalogService(params PassCatalogServiceParams) usecase.PassCatalogUsecase {
	return &passCatalogService{
		gymRepo:      params.GymRepo,
		offeringRepo: params.OfferingRepo,
		logger:       params.Logger,
		now:          time.Now,
	}
}

// CreateOffering validates and persists a new offering for the gym
func (s *passCatalogService) CreateOffering(ctx context.Context, actor *entity.Identity, gymID uuid.UUID, input *usecase.OfferingInput) (*entity.PassOffering, error) {
	if err := authorize(actor, policyGymManagement, gymID); err != nil {
		return nil, err
	}

	if err := validateOffering(input); err != nil {
		return nil, err
	}

	if _, err := s.gymRepo.FindGymByID(ctx, gymID); err != nil {
		if errors.Is(err, repository.ErrGymNotFound) {
			return nil, errors.Wrap(domainerrors.ErrGymNotFound, "gym not found")
		}

		return nil, errors.Wrap(err, "failed to find gym")
	}

	offering := &entity.PassOffering{
		ID:           uuid.New(),
		GymID:        gymID,
		Name:         strings.TrimSpace(input.Name),
		Price:        input.Price,
		DurationDays: input.DurationDays,
		Description:  input.Description,
		CreatedAt:    s.now(),
	}

	if err := s.offeringRepo.CreateOffering(ctx, offering); err != nil {
		return nil, errors.Wrap(err, "failed to create pass offering")
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Pass offering created",
		slog.Any("gym_id", gymID),
		slog.Any("offering_id", offering.ID),
		slog.String("price", offering.Price.StringFixed(2)),
		slog.Int("duration_days", offering.DurationDays),
	)

	return offering, nil
}

// ListOfferings retrieves the gym's offerings in insertion order
func (s *passCatalogService) ListOfferings(ctx context.Context, gymID uuid.UUID) ([]*entity.PassOffering, error) {
	offerings, err := s.offeringRepo.FindOfferingsByGym(ctx, gymID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find pass offerings")
	}

	if offerings == nil {
		offerings = []*entity.PassOffering{}
	}

	return offerings, nil
}

// DeleteOffering deletes an offering that belongs to the gym
func (s *passCatalogService) DeleteOffering(ctx context.Context, actor *entity.Identity, gymID, offeringID uuid.UUID) error {
	if err := authorize(actor, policyGymManagement, gymID); err != nil {
		return err
	}

	// Both ids are matched in one statement so an offering of another gym is reported as missing.
	if err := s.offeringRepo.DeleteOfferingForGym(ctx, gymID, offeringID); err != nil {
		if errors.Is(err, repository.ErrPassOfferingNotFound) {
			return errors.Wrap(domainerrors.ErrPassOfferingNotFound, "pass offering not found")
		}

		return errors.Wrap(err, "failed to delete pass offering")
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Pass offering deleted",
		slog.Any("gym_id", gymID),
		slog.Any("offering_id", offeringID),
	)

	return nil
}

func validateOffering(input *usecase.OfferingInput) error {
	if input == nil || strings.TrimSpace(input.Name) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("name is required")
	}

	price := input.Price
	if !price.IsPositive() || !price.Equal(price.Round(2)) || price.GreaterThanOrEqual(maxOfferingPrice) {
		return domainerrors.ErrInvalidPrice
	}

	if input.DurationDays < 1 || input.DurationDays > maxOfferingDays {
		return domainerrors.ErrInvalidDuration
	}

	return nil
}
