// Package constants contains values shared between configuration and infrastructure wiring.
package constants

const (
	// EnvDevelop is the environment name used for local development.
	EnvDevelop = "develop"

	// PubSubProviderLocal publishes events as HTTP push requests to a local endpoint.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"

	// GeocoderProviderGoogle resolves addresses with the Google Maps Geocoding API.
	GeocoderProviderGoogle = "google"
	// GeocoderProviderStatic resolves addresses from a fixed table in the configuration.
	GeocoderProviderStatic = "static"

	// DefaultSearchRadiusMeters is used when a nearby search does not specify a radius.
	DefaultSearchRadiusMeters = 2000.0
)
