package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PassOfferingModel is the GORM-specific struct for the 'pass_offerings' table.
type PassOfferingModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	GymID        uuid.UUID       `gorm:"type:uuid;not null;index:idx_pass_offerings_gym"`
	Name         string          `gorm:"type:varchar(255);not null"`
	Price        decimal.Decimal `gorm:"type:numeric(5,2);not null"`
	DurationDays int             `gorm:"not null"`
	Description  string          `gorm:"type:text;not null;default:''"`
	Position     int64           `gorm:"->"` // Identity column, defines listing order.
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (PassOfferingModel) TableName() string {
	return "pass_offerings"
}

// PassPurchaseModel is the GORM-specific struct for the 'pass_purchases' table.
type PassPurchaseModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index:idx_pass_purchases_user"`
	GymID         uuid.UUID       `gorm:"type:uuid;not null"`
	OfferingID    uuid.UUID       `gorm:"type:uuid;not null"`
	PassName      string          `gorm:"type:varchar(255);not null"`
	DurationDays  int             `gorm:"not null"`
	Price         decimal.Decimal `gorm:"type:numeric(5,2);not null"`
	Description   string          `gorm:"type:text;not null;default:''"`
	RedemptionURL string          `gorm:"type:text;not null;default:''"`
	ExpiresAt     *time.Time
	IsValid       bool  `gorm:"not null;default:true"`
	Position      int64 `gorm:"->"`
	PurchasedAt   time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (PassPurchaseModel) TableName() string {
	return "pass_purchases"
}

// PassViewModel is the scan target of a purchase joined with its gym.
type PassViewModel struct {
	PassPurchaseModel
	GymName      string  `gorm:"column:gym_name"`
	GymCity      string  `gorm:"column:gym_city"`
	GymLatitude  float64 `gorm:"column:gym_latitude"`
	GymLongitude float64 `gorm:"column:gym_longitude"`
}
