package geocode

import (
	"context"
	"strconv"
	"strings"

	"travelfit/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// staticGeocoder resolves addresses from a fixed table, for local development and tests
type staticGeocoder struct {
	points map[string]orb.Point
}

// NewStaticGeocoder builds a geocoder from an address to "lat,lng" table
func NewStaticGeocoder(table map[string]string) (service.Geocoder, error) {
	points := make(map[string]orb.Point, len(table))
	for address, coordinate := range table {
		point, err := parseLatLng(coordinate)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid coordinate for %q", address)
		}
		points[normalizeAddress(address)] = point
	}

	return &staticGeocoder{points: points}, nil
}

// Geocode looks the address up ignoring case and whitespace differences
func (g *staticGeocoder) Geocode(_ context.Context, address string) (orb.Point, error) {
	point, ok := g.points[normalizeAddress(address)]
	if !ok {
		return orb.Point{}, service.ErrAddressNotFound
	}

	return point, nil
}

func normalizeAddress(address string) string {
	return strings.ToLower(strings.Join(strings.Fields(address), " "))
}

func parseLatLng(value string) (orb.Point, error) {
	latText, lngText, ok := strings.Cut(value, ",")
	if !ok {
		return orb.Point{}, errors.Errorf("expected \"lat,lng\", got %q", value)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(latText), 64)
	if err != nil {
		return orb.Point{}, errors.Wrap(err, "parse latitude")
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(lngText), 64)
	if err != nil {
		return orb.Point{}, errors.Wrap(err, "parse longitude")
	}

	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return orb.Point{}, errors.Errorf("coordinate out of range: %q", value)
	}

	return orb.Point{lng, lat}, nil
}
