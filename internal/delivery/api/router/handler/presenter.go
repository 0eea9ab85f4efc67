package handler

import (
	"time"

	"travelfit/internal/domain/entity"

	"github.com/google/uuid"
)

// Coordinate is a WGS 84 position in degrees.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// GymResponse is the full representation of a gym listing.
type GymResponse struct {
	ID               uuid.UUID         `json:"id"`
	GymName          string            `json:"gym_name"`
	Description      string            `json:"description"`
	Address1         string            `json:"address1"`
	Address2         string            `json:"address2,omitempty"`
	City             string            `json:"city"`
	State            string            `json:"state"`
	Zipcode          string            `json:"zipcode"`
	Coordinate       Coordinate        `json:"coordinate"`
	Amenities        []string          `json:"amenities"`
	HoursOfOperation map[string]string `json:"hours_of_operation"`
	Photos           []string          `json:"photos,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

// NearbyGymResponse is a gym returned by a proximity search.
type NearbyGymResponse struct {
	GymResponse
	DistanceMeters float64 `json:"distance_meters"`
}

// GymSummaryResponse is the compact gym representation used by listings.
type GymSummaryResponse struct {
	ID         uuid.UUID  `json:"id"`
	GymName    string     `json:"gym_name"`
	City       string     `json:"city"`
	Coordinate Coordinate `json:"coordinate"`
}

// PassOptionResponse is a guest-pass offering as shown in a gym's catalog.
type PassOptionResponse struct {
	ID          uuid.UUID `json:"id"`
	GymID       uuid.UUID `json:"gym_id"`
	PassName    string    `json:"pass_name"`
	Price       string    `json:"price"`
	Duration    int       `json:"duration"`
	Description string    `json:"description"`
}

// PurchaseResponse confirms a completed purchase.
type PurchaseResponse struct {
	PurchaseID    uuid.UUID `json:"purchase_id"`
	GymID         uuid.UUID `json:"gym_id"`
	PassName      string    `json:"pass_name"`
	Price         string    `json:"price"`
	DurationDays  int       `json:"duration_days"`
	RedemptionURL string    `json:"qr_code"`
	PurchasedAt   time.Time `json:"purchased_at"`
	Message       string    `json:"message"`
}

// GuestPassResponse is a pass in its holder's wallet.
type GuestPassResponse struct {
	PassID        uuid.UUID        `json:"pass_id"`
	GymID         uuid.UUID        `json:"gym_id"`
	GymName       string           `json:"gym_name"`
	City          string           `json:"city"`
	PassName      string           `json:"pass_name"`
	DurationDays  int              `json:"duration_days"`
	Description   string           `json:"description"`
	RedemptionURL string           `json:"qr_code"`
	Expiration    *time.Time       `json:"expiration"`
	IsValid       bool             `json:"is_valid"`
	State         entity.PassState `json:"state"`
	Coordinate    Coordinate       `json:"coordinate"`
}

// VerificationResponse is the outcome of a door scan.
type VerificationResponse struct {
	PassID    uuid.UUID           `json:"pass_id"`
	Granted   bool                `json:"granted"`
	Reason    entity.DenialReason `json:"reason,omitempty"`
	State     entity.PassState    `json:"state"`
	Activated bool                `json:"activated"`
	ExpiresAt *time.Time          `json:"expires_at"`
	Message   string              `json:"message"`
}

// PhotoResponse is a gym photo.
type PhotoResponse struct {
	ID       uuid.UUID `json:"id"`
	PhotoURL string    `json:"photo_url"`
}

// MessageResponse carries a human-readable confirmation.
type MessageResponse struct {
	Message string `json:"message"`
}

func toCoordinate(lat, lng float64) Coordinate {
	return Coordinate{Latitude: lat, Longitude: lng}
}

func toGymResponse(gym *entity.Gym) GymResponse {
	amenities := gym.Amenities
	if amenities == nil {
		amenities = []string{}
	}
	hours := gym.Hours
	if hours == nil {
		hours = map[string]string{}
	}

	return GymResponse{
		ID:               gym.ID,
		GymName:          gym.Name,
		Description:      gym.Description,
		Address1:         gym.Address.Address1,
		Address2:         gym.Address.Address2,
		City:             gym.Address.City,
		State:            gym.Address.State,
		Zipcode:          gym.Address.Zipcode,
		Coordinate:       toCoordinate(gym.Latitude(), gym.Longitude()),
		Amenities:        amenities,
		HoursOfOperation: hours,
		Photos:           gym.PhotoURLs,
		CreatedAt:        gym.CreatedAt,
		UpdatedAt:        gym.UpdatedAt,
	}
}

func toNearbyGymResponses(gyms []*entity.NearbyGym) []NearbyGymResponse {
	result := make([]NearbyGymResponse, 0, len(gyms))
	for _, nearby := range gyms {
		result = append(result, NearbyGymResponse{
			GymResponse:    toGymResponse(nearby.Gym),
			DistanceMeters: nearby.DistanceMeters,
		})
	}

	return result
}

func toGymSummaryResponses(summaries []*entity.GymSummary) []GymSummaryResponse {
	result := make([]GymSummaryResponse, 0, len(summaries))
	for _, summary := range summaries {
		result = append(result, GymSummaryResponse{
			ID:         summary.ID,
			GymName:    summary.Name,
			City:       summary.City,
			Coordinate: toCoordinate(summary.Location.Lat(), summary.Location.Lon()),
		})
	}

	return result
}

func toPassOptionResponse(offering *entity.PassOffering) PassOptionResponse {
	return PassOptionResponse{
		ID:          offering.ID,
		GymID:       offering.GymID,
		PassName:    offering.Name,
		Price:       offering.Price.StringFixed(2),
		Duration:    offering.DurationDays,
		Description: offering.Description,
	}
}

func toGuestPassResponses(views []*entity.PassView, now time.Time) []GuestPassResponse {
	result := make([]GuestPassResponse, 0, len(views))
	for _, view := range views {
		purchase := view.Purchase
		result = append(result, GuestPassResponse{
			PassID:        purchase.ID,
			GymID:         purchase.GymID,
			GymName:       view.GymName,
			City:          view.GymCity,
			PassName:      purchase.PassName,
			DurationDays:  purchase.DurationDays,
			Description:   purchase.Description,
			RedemptionURL: purchase.RedemptionURL,
			Expiration:    purchase.ExpiresAt,
			IsValid:       purchase.IsValid,
			State:         purchase.State(now),
			Coordinate:    toCoordinate(view.GymLocation.Lat(), view.GymLocation.Lon()),
		})
	}

	return result
}

func toPhotoResponses(photos []*entity.GymPhoto) []PhotoResponse {
	result := make([]PhotoResponse, 0, len(photos))
	for _, photo := range photos {
		result = append(result, PhotoResponse{ID: photo.ID, PhotoURL: photo.URL})
	}

	return result
}
