// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// GymAddress is the postal address a gym's coordinate is resolved from.
type GymAddress struct {
	Address1 string
	Address2 string
	City     string
	State    string
	Zipcode  string
}

// Geocodable returns the single-line address handed to the address resolver.
// Address2 (suite, floor) is left out because resolvers match on the street line.
func (a GymAddress) Geocodable() string {
	parts := make([]string, 0, 4)
	for _, part := range []string{a.Address1, a.City, a.State, a.Zipcode} {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}

	return strings.Join(parts, ", ")
}

// Gym is a listed facility that sells guest passes.
type Gym struct {
	ID          uuid.UUID         // The Global Unique Identifier (GUID) for the gym.
	Name        string            // Display name shown to users and on redemption messages.
	Description string            // Free-form description of the facility.
	Address     GymAddress        // Postal address the location was resolved from.
	Location    orb.Point         // Geographic point as [longitude, latitude] (WGS 84).
	Amenities   []string          // Amenity tags, e.g. "sauna", "pool".
	Hours       map[string]string // Weekly operating hours keyed by weekday, e.g. "monday": "06:00-22:00".
	PhotoURLs   []string          // Public photo URLs, only populated on detail reads.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Latitude returns the gym's latitude in degrees.
func (g *Gym) Latitude() float64 {
	return g.Location.Lat()
}

// Longitude returns the gym's longitude in degrees.
func (g *Gym) Longitude() float64 {
	return g.Location.Lon()
}

// GymSummary is the compact projection used by city listings and favorites.
type GymSummary struct {
	ID       uuid.UUID
	Name     string
	City     string
	Location orb.Point
}

// NearbyGym is a gym returned by a proximity search together with its great-circle distance.
type NearbyGym struct {
	Gym            *Gym
	DistanceMeters float64
}
