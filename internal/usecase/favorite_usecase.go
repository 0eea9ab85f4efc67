package usecase

import (
	"context"

	"travelfit/internal/domain/entity"

	"github.com/google/uuid"
)

// FavoriteUsecase defines the interface for a user's bookmarked gyms
type FavoriteUsecase interface {
	// AddFavorite bookmarks a gym; repeating it is a no-op.
	AddFavorite(ctx context.Context, actor *entity.Identity, gymID uuid.UUID) error

	// RemoveFavorite removes a bookmark; removing an absent one is a no-op.
	RemoveFavorite(ctx context.Context, actor *entity.Identity, gymID uuid.UUID) error

	// ListFavorites retrieves summaries of the caller's bookmarked gyms.
	ListFavorites(ctx context.Context, actor *entity.Identity) ([]*entity.GymSummary, error)
}
