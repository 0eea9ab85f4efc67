package geocode

import (
	"context"
	"log/slog"
	"testing"

	"travelfit/config"
	"travelfit/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticGeocoder_Geocode(t *testing.T) {
	geocoder, err := NewStaticGeocoder(map[string]string{
		"350 5th Ave, New York, NY, 10118": "40.7484, -73.9857",
	})
	require.NoError(t, err)

	point, err := geocoder.Geocode(context.Background(), "  350 5TH AVE,  New York, NY, 10118 ")
	require.NoError(t, err)
	assert.Equal(t, orb.Point{-73.9857, 40.7484}, point)

	_, err = geocoder.Geocode(context.Background(), "1 Unknown Rd")
	assert.ErrorIs(t, err, service.ErrAddressNotFound)
}

func TestNewStaticGeocoder_InvalidTable(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"missing comma", "40.7484"},
		{"bad latitude", "north,-73.9"},
		{"bad longitude", "40.7,west"},
		{"out of range", "91,0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewStaticGeocoder(map[string]string{"somewhere": tt.value})
			assert.Error(t, err)
		})
	}
}

func TestNewGeocoder(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	tests := []struct {
		name    string
		cfg     config.GeocoderConfig
		wantErr bool
	}{
		{"static", config.GeocoderConfig{Provider: "static"}, false},
		{"empty provider defaults to static", config.GeocoderConfig{}, false},
		{"google", config.GeocoderConfig{Provider: "google", APIKey: "AIzaTestKey"}, false},
		{"google without key", config.GeocoderConfig{Provider: "google"}, true},
		{"unknown", config.GeocoderConfig{Provider: "osm"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{Geocoder: &tt.cfg}

			geocoder, err := NewGeocoder(Params{Config: cfg, Logger: logger})
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.NotNil(t, geocoder)
		})
	}
}
