package model

import (
	"time"

	"github.com/google/uuid"
)

// GymPhotoModel is the GORM-specific struct for the 'gym_photos' table.
type GymPhotoModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	GymID     uuid.UUID `gorm:"type:uuid;not null;index:idx_gym_photos_gym"`
	URL       string    `gorm:"type:text;not null"`
	BlobKey   string    `gorm:"type:text;not null"`
	Position  int64     `gorm:"->"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (GymPhotoModel) TableName() string {
	return "gym_photos"
}
