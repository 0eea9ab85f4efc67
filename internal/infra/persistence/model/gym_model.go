// Package model contains the GORM structs mapped onto the database tables.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// GymModel is the GORM-specific struct for the 'gyms' table.
// The geography column 'location' is generated from latitude/longitude by the database.
type GymModel struct {
	ID          uuid.UUID                             `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name        string                                `gorm:"type:varchar(255);not null"`
	Description string                                `gorm:"type:text;not null;default:''"`
	Address1    string                                `gorm:"column:address1;type:varchar(255);not null"`
	Address2    string                                `gorm:"column:address2;type:varchar(255);not null;default:''"`
	City        string                                `gorm:"type:varchar(100);not null"`
	State       string                                `gorm:"type:varchar(100);not null;default:''"`
	Zipcode     string                                `gorm:"type:varchar(20);not null;default:''"`
	Latitude    float64                               `gorm:"not null"`
	Longitude   float64                               `gorm:"not null"`
	Amenities   datatypes.JSONSlice[string]           `gorm:"type:jsonb;not null"`
	Hours       datatypes.JSONType[map[string]string] `gorm:"type:jsonb;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (GymModel) TableName() string {
	return "gyms"
}

// NearbyGymModel is the scan target of the proximity query: a gym row plus its computed distance.
type NearbyGymModel struct {
	GymModel
	DistanceMeters float64 `gorm:"column:distance_meters"`
}

// GymSummaryModel is the scan target of summary projections.
type GymSummaryModel struct {
	ID        uuid.UUID
	Name      string
	City      string
	Latitude  float64
	Longitude float64
}
