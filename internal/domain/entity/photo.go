package entity

import (
	"time"

	"github.com/google/uuid"
)

// GymPhoto is an image of a gym stored in blob storage.
type GymPhoto struct {
	ID        uuid.UUID
	GymID     uuid.UUID
	URL       string // Public URL served to clients.
	BlobKey   string // Key inside the bucket, used for deletion.
	CreatedAt time.Time
}
