// Package usecase defines the application's business operations as interfaces consumed by the delivery layer.
package usecase

import (
	"context"

	"travelfit/internal/domain/entity"
)

// NearbyQuery describes a proximity search. Zero RadiusMeters and Limit select the configured defaults.
type NearbyQuery struct {
	Latitude     float64
	Longitude    float64
	RadiusMeters float64
	Limit        int
}

// GeoSearchUsecase defines the interface for gym discovery by location
type GeoSearchUsecase interface {
	// FindNearby returns gyms within the query radius, nearest first.
	// An empty result is not an error; a failed query is.
	FindNearby(ctx context.Context, query *NearbyQuery) ([]*entity.NearbyGym, error)
}
