package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

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

	defaultLocationTimeout      = 10 * time.Second
	defaultGeocodingBaseURL     = "https://nominatim.openstreetmap.org"
	defaultGeocodingUserAgent   = "marketplace-stores/1.0"
	defaultGeocodingTimeout     = 10 * time.Second
	defaultGeocodingRatePerSec  = 1.0
	defaultStoreRadiusKm        = 10.0
	defaultStoreMaxRadiusKm     = 100.0
	defaultDatastoreProvider    = "postgres"
	defaultDatastoreRESTTimeout = 10 * time.Second
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
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		// Access is the HMAC secret shared with the hosted auth platform.
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	// Geolocation configures how the current position of a caller is obtained
	Geolocation *GeolocationConfig `json:"geolocation" yaml:"geolocation"`

	// Geocoding configures the reverse-geocoding endpoint
	Geocoding *GeocodingConfig `json:"geocoding" yaml:"geocoding"`

	// StoreFilter configures radius limits for the store proximity filter
	StoreFilter *StoreFilterConfig `json:"storeFilter" yaml:"storeFilter"`

	// Datastore selects where store warehouse locations are read from
	Datastore *DatastoreConfig `json:"datastore" yaml:"datastore"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// GeolocationConfig defines the position provider and the fix options handed to it
type GeolocationConfig struct {
	// Provider type: "static", "ipapi" or empty (no location capability)
	Provider string `json:"provider" yaml:"provider"`

	// HighAccuracy defaults to true when unset
	HighAccuracy *bool         `json:"highAccuracy" yaml:"highAccuracy"`
	Timeout      time.Duration `json:"timeout" yaml:"timeout"`
	MaximumAge   time.Duration `json:"maximumAge" yaml:"maximumAge"`

	// Static position (for static provider)
	Latitude  float64 `json:"latitude" yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`

	// Base URL of an ip-api.com compatible endpoint (for ipapi provider)
	IPAPIBaseURL string `json:"ipapiBaseUrl" yaml:"ipapiBaseUrl"`
}

// GeocodingConfig defines the reverse-geocoding (Nominatim) client configuration
type GeocodingConfig struct {
	BaseURL        string        `json:"baseUrl" yaml:"baseUrl"`
	UserAgent      string        `json:"userAgent" yaml:"userAgent"`
	Timeout        time.Duration `json:"timeout" yaml:"timeout"`
	RequestsPerSec float64       `json:"requestsPerSec" yaml:"requestsPerSec"`
}

// StoreFilterConfig defines radius defaults for proximity filtering
type StoreFilterConfig struct {
	DefaultRadiusKm float64 `json:"defaultRadiusKm" yaml:"defaultRadiusKm"`
	MaxRadiusKm     float64 `json:"maxRadiusKm" yaml:"maxRadiusKm"`
}

// DatastoreConfig defines which store/address datastore adapter is used
type DatastoreConfig struct {
	// Provider type: "postgres" for direct GORM access or "rest" for the hosted REST API
	Provider string `json:"provider" yaml:"provider"`

	// REST API base URL, e.g. https://<project>.supabase.co/rest/v1 (for rest provider)
	RESTBaseURL string `json:"restBaseUrl" yaml:"restBaseUrl"`

	// API key sent as apikey header and bearer token (for rest provider)
	RESTAPIKey string `json:"restApiKey" yaml:"restApiKey"`

	RESTTimeout time.Duration `json:"restTimeout" yaml:"restTimeout"`
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

	cfg.ApplyDefaults()

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// ApplyDefaults fills unset sections and fields with their defaults.
// HighAccuracyEnabled reports the configured accuracy preference, true when unset.
func (g *GeolocationConfig) HighAccuracyEnabled() bool {
	return g.HighAccuracy == nil || *g.HighAccuracy
}

func (c *Config) ApplyDefaults() {
	if strings.TrimSpace(c.HTTP.MaxRequestBodySize) == "" {
		c.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if c.Geolocation == nil {
		c.Geolocation = &GeolocationConfig{}
	}
	if c.Geolocation.HighAccuracy == nil {
		highAccuracy := true
		c.Geolocation.HighAccuracy = &highAccuracy
	}
	if c.Geolocation.Timeout <= 0 {
		c.Geolocation.Timeout = defaultLocationTimeout
	}
	if c.Geolocation.MaximumAge < 0 {
		c.Geolocation.MaximumAge = 0
	}

	if c.Geocoding == nil {
		c.Geocoding = &GeocodingConfig{}
	}
	if c.Geocoding.BaseURL == "" {
		c.Geocoding.BaseURL = defaultGeocodingBaseURL
	}
	if c.Geocoding.UserAgent == "" {
		c.Geocoding.UserAgent = defaultGeocodingUserAgent
	}
	if c.Geocoding.Timeout <= 0 {
		c.Geocoding.Timeout = defaultGeocodingTimeout
	}
	if c.Geocoding.RequestsPerSec <= 0 {
		c.Geocoding.RequestsPerSec = defaultGeocodingRatePerSec
	}

	if c.StoreFilter == nil {
		c.StoreFilter = &StoreFilterConfig{}
	}
	if c.StoreFilter.DefaultRadiusKm <= 0 {
		c.StoreFilter.DefaultRadiusKm = defaultStoreRadiusKm
	}
	if c.StoreFilter.MaxRadiusKm <= 0 {
		c.StoreFilter.MaxRadiusKm = defaultStoreMaxRadiusKm
	}

	if c.Datastore == nil {
		c.Datastore = &DatastoreConfig{}
	}
	if c.Datastore.Provider == "" {
		c.Datastore.Provider = defaultDatastoreProvider
	}
	if c.Datastore.RESTTimeout <= 0 {
		c.Datastore.RESTTimeout = defaultDatastoreRESTTimeout
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
