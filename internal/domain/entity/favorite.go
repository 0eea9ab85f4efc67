package entity

import (
	"time"

	"github.com/google/uuid"
)

// Favorite bookmarks a gym for a user. The (UserID, GymID) pair is unique.
type Favorite struct {
	UserID    uuid.UUID
	GymID     uuid.UUID
	CreatedAt time.Time
}
