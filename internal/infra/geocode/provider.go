// Package geocode resolves gym addresses to coordinates.
package geocode

import (
	"log/slog"

	"travelfit/config"
	"travelfit/internal/domain/constants"
	"travelfit/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the Geocoder, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewGeocoder creates a Geocoder based on configuration
func NewGeocoder(params Params) (service.Geocoder, error) {
	cfg := params.Config.Geocoder

	switch cfg.Provider {
	case constants.GeocoderProviderGoogle:
		if cfg.APIKey == "" {
			return nil, errors.New("api key is required for google geocoder")
		}
		params.Logger.Info("Using Google Maps geocoder", slog.String("region", cfg.Region))

		return NewGoogleGeocoder(cfg.APIKey, cfg.Region)

	case constants.GeocoderProviderStatic, "":
		params.Logger.Info("Using static geocoder", slog.Int("addresses", len(cfg.Static)))

		return NewStaticGeocoder(cfg.Static)

	default:
		return nil, errors.Errorf("unknown geocoder provider: %s", cfg.Provider)
	}
}
