package service

import (
	"context"

	"travelfit/internal/errors"

	"github.com/paulmach/orb"
)

// ErrAddressNotFound is returned when the resolver has no match for an address.
var ErrAddressNotFound = errors.New("address could not be resolved")

// Geocoder resolves a postal address to a geographic point.
type Geocoder interface {
	// Geocode returns the point for a single-line address as [longitude, latitude].
	Geocode(ctx context.Context, address string) (orb.Point, error)
}
