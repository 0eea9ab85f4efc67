package impl

import (
	"context"

	"travelfit/internal/domain/entity"
	domainerrors "travelfit/internal/domain/errors"
	"travelfit/internal/domain/repository"
	"travelfit/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
	gymRepo      repository.GymRepository
}

// FavoriteServiceParams holds dependencies for FavoriteService, injected by Fx.
type FavoriteServiceParams struct {
	fx.In

	FavoriteRepo repository.FavoriteRepository
	GymRepo      repository.GymRepository
}

// NewFavoriteService creates a new favorite service instance
func NewFavoriteService(params FavoriteServiceParams) usecase.FavoriteUsecase {
	return &favoriteService{
		favoriteRepo: params.FavoriteRepo,
		gymRepo:      params.GymRepo,
	}
}

// AddFavorite bookmarks a gym; repeating it is a no-op
func (s *favoriteService) AddFavorite(ctx context.Context, actor *entity.Identity, gymID uuid.UUID) error {
	if err := authorizeRole(actor, policyAuthenticated); err != nil {
		return err
	}

	if _, err := s.gymRepo.FindGymByID(ctx, gymID); err != nil {
		if errors.Is(err, repository.ErrGymNotFound) {
			return errors.Wrap(domainerrors.ErrGymNotFound, "gym not found")
		}

		return errors.Wrap(err, "failed to find gym")
	}

	if err := s.favoriteRepo.AddFavorite(ctx, actor.UserID, gymID); err != nil {
		return errors.Wrap(err, "failed to add favorite")
	}

	return nil
}

// RemoveFavorite removes a bookmark; removing an absent one is a no-op
func (s *favoriteService) RemoveFavorite(ctx context.Context, actor *entity.Identity, gymID uuid.UUID) error {
	if err := authorizeRole(actor, policyAuthenticated); err != nil {
		return err
	}

	if err := s.favoriteRepo.RemoveFavorite(ctx, actor.UserID, gymID); err != nil {
		return errors.Wrap(err, "failed to remove favorite")
	}

	return nil
}

// ListFavorites retrieves summaries of the caller's bookmarked gyms
func (s *favoriteService) ListFavorites(ctx context.Context, actor *entity.Identity) ([]*entity.GymSummary, error) {
	if err := authorizeRole(actor, policyAuthenticated); err != nil {
		return nil, err
	}

	gyms, err := s.favoriteRepo.FindFavoriteGymsByUser(ctx, actor.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find favorite gyms")
	}

	if gyms == nil {
		gyms = []*entity.GymSummary{}
	}

	return gyms, nil
}
