package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"travelfit/internal/domain/constants"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultMaxUploadBodySize  = "10MB"
	defaultMetricsPath        = "/metrics"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		// MaxUploadBodySize bounds multipart photo uploads, which bypass MaxRequestBodySize.
		MaxUploadBodySize string `json:"maxUploadBodySize" yaml:"maxUploadBodySize"`
		Timeouts          struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
		AllowOrigins []string `json:"allowOrigins" yaml:"allowOrigins"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	// Migration configuration for the embedded schema migrations
	Migration *MigrationConfig `json:"migration" yaml:"migration"`

	// GeoSearch configuration for nearby gym queries
	GeoSearch *GeoSearchConfig `json:"geoSearch" yaml:"geoSearch"`

	// QRCode configuration for redemption QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// Blob configuration for the object store holding QR images and gym photos
	Blob *BlobConfig `json:"blob" yaml:"blob"`

	// Geocoder configuration for address resolution
	Geocoder *GeocoderConfig `json:"geocoder" yaml:"geocoder"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Metrics configuration for the Prometheus endpoint
	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// MigrationConfig defines schema migration behaviour at startup
type MigrationConfig struct {
	// Apply pending migrations before the HTTP server starts
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`
}

// GeoSearchConfig defines nearby search limits
type GeoSearchConfig struct {
	// Radius in meters used when a request omits it
	DefaultRadius float64 `json:"defaultRadius" yaml:"defaultRadius"`

	// Largest radius in meters a request may ask for
	MaxRadius float64 `json:"maxRadius" yaml:"maxRadius"`

	// Result cap used when a request omits it (0 = unlimited)
	DefaultLimit int `json:"defaultLimit" yaml:"defaultLimit"`

	// Largest result cap a request may ask for
	MaxLimit int `json:"maxLimit" yaml:"maxLimit"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// BlobConfig defines the object store configuration
type BlobConfig struct {
	// gocloud bucket URL, e.g. "azblob://travelfit", "file:///var/lib/travelfit", "mem://"
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`

	// Public base URL objects are served from; empty falls back to the bucket URL
	PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`

	// Key prefix for redemption QR images
	TokenPrefix string `json:"tokenPrefix" yaml:"tokenPrefix"`

	// Key prefix for gym photos
	PhotoPrefix string `json:"photoPrefix" yaml:"photoPrefix"`
}

// GeocoderConfig defines address resolution configuration
type GeocoderConfig struct {
	// Provider type: "google" for the Google Maps Geocoding API or "static" for a fixed table
	Provider string `json:"provider" yaml:"provider"`

	// Google Maps API key (for google provider)
	APIKey string `json:"apiKey" yaml:"apiKey"`

	// Region bias passed to the geocoding API, e.g. "us"
	Region string `json:"region" yaml:"region"`

	// Address to "lat,lng" table (for static provider)
	Static map[string]string `json:"static" yaml:"static"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub; empty disables publishing
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// MetricsConfig defines Prometheus metrics configuration
type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if strings.TrimSpace(cfg.HTTP.MaxUploadBodySize) == "" {
		cfg.HTTP.MaxUploadBodySize = defaultMaxUploadBodySize
	}

	applyDefaults(cfg)

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	cfg.Postgres.Replicas = buildReplicasFromEnv()

	return cfg, nil
}

// applyDefaults fills optional sections so the rest of the application can rely on them.
func applyDefaults(cfg *Config) {
	if cfg.Migration == nil {
		cfg.Migration = &MigrationConfig{}
	}

	if cfg.GeoSearch == nil {
		cfg.GeoSearch = &GeoSearchConfig{}
	}
	if cfg.GeoSearch.DefaultRadius <= 0 {
		cfg.GeoSearch.DefaultRadius = constants.DefaultSearchRadiusMeters
	}
	if cfg.GeoSearch.MaxRadius < cfg.GeoSearch.DefaultRadius {
		cfg.GeoSearch.MaxRadius = 50 * cfg.GeoSearch.DefaultRadius
	}

	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{}
	}
	if cfg.QRCode.Size <= 0 {
		cfg.QRCode.Size = 256
	}

	if cfg.Blob == nil {
		cfg.Blob = &BlobConfig{}
	}
	if cfg.Blob.BucketURL == "" {
		cfg.Blob.BucketURL = "mem://"
	}
	if cfg.Blob.TokenPrefix == "" {
		cfg.Blob.TokenPrefix = "qrcodes"
	}
	if cfg.Blob.PhotoPrefix == "" {
		cfg.Blob.PhotoPrefix = "gym-photos"
	}

	if cfg.Geocoder == nil {
		cfg.Geocoder = &GeocoderConfig{Provider: constants.GeocoderProviderStatic}
	}

	if cfg.PubSub == nil {
		cfg.PubSub = &PubSubConfig{}
	}

	if cfg.Metrics == nil {
		cfg.Metrics = &MetricsConfig{}
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = defaultMetricsPath
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
