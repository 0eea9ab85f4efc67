package geocode

import (
	"context"
	"strings"

	"travelfit/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"googlemaps.github.io/maps"
)

// googleGeocoder implements service.Geocoder with the Google Maps Geocoding API
type googleGeocoder struct {
	client *maps.Client
	region string
}

// NewGoogleGeocoder creates a geocoder backed by the Google Maps Geocoding API
func NewGoogleGeocoder(apiKey, region string) (service.Geocoder, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Google Maps client")
	}

	return &googleGeocoder{
		client: client,
		region: region,
	}, nil
}

// Geocode resolves the address with the first result Google returns
func (g *googleGeocoder) Geocode(ctx context.Context, address string) (orb.Point, error) {
	results, err := g.client.Geocode(ctx, &maps.GeocodingRequest{
		Address: address,
		Region:  g.region,
	})
	if err != nil {
		if strings.Contains(err.Error(), "ZERO_RESULTS") {
			return orb.Point{}, service.ErrAddressNotFound
		}

		return orb.Point{}, errors.Wrap(err, "failed to geocode address")
	}

	if len(results) == 0 {
		return orb.Point{}, service.ErrAddressNotFound
	}

	location := results[0].Geometry.Location

	return orb.Point{location.Lng, location.Lat}, nil
}
