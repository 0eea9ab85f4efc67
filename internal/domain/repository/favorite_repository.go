package repository

import (
	"context"

	"travelfit/internal/domain/entity"

	"github.com/google/uuid"
)

// FavoriteRepository defines the interface for the user-to-gym bookmark relation.
type FavoriteRepository interface {
	// AddFavorite bookmarks a gym. Adding an existing favorite is a no-op.
	AddFavorite(ctx context.Context, userID, gymID uuid.UUID) error

	// RemoveFavorite removes a bookmark. Removing an absent favorite is a no-op.
	RemoveFavorite(ctx context.Context, userID, gymID uuid.UUID) error

	// FindFavoriteGymsByUser retrieves summaries of the gyms a user bookmarked.
	FindFavoriteGymsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.GymSummary, error)
}
