package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ServiceConfig holds all configuration for the guidance service.
type ServiceConfig struct {
	Port   string
	AppEnv string

	// MapsAPIKey authorizes calls to the routing provider. It may be empty;
	// the directions feature then degrades with a configuration error at
	// request time rather than failing startup.
	MapsAPIKey string

	// APIBaseURL is the recommendation backend base URL. Like the API key it
	// may be absent and degrades the dependent feature only.
	APIBaseURL string

	RoutesEndpoint string
	LanguageCode   string
	Units          string

	// Fallback map center used when no client location is available
	// (Seoul city hall).
	DefaultLat float64
	DefaultLng float64

	UpstreamTimeout time.Duration
	WatchInterval   time.Duration
}

// Load reads configuration from the environment (and an optional .env file)
// with the GUIDE_ prefix.
func Load() (*ServiceConfig, error) {
	// Missing .env is fine; real environments set variables directly.
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("GUIDE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("SERVICE_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("ROUTES_ENDPOINT", "https://routes.googleapis.com/directions/v2:computeRoutes")
	v.SetDefault("LANGUAGE_CODE", "ko")
	v.SetDefault("UNITS", "METRIC")
	v.SetDefault("DEFAULT_LAT", 37.5665)
	v.SetDefault("DEFAULT_LNG", 126.9780)
	v.SetDefault("UPSTREAM_TIMEOUT", "15s")
	v.SetDefault("WATCH_INTERVAL", "5s")

	upstreamTimeout, err := time.ParseDuration(v.GetString("UPSTREAM_TIMEOUT"))
	if err != nil {
		return nil, fmt.Errorf("invalid GUIDE_UPSTREAM_TIMEOUT: %w", err)
	}
	watchInterval, err := time.ParseDuration(v.GetString("WATCH_INTERVAL"))
	if err != nil {
		return nil, fmt.Errorf("invalid GUIDE_WATCH_INTERVAL: %w", err)
	}

	return &ServiceConfig{
		Port:            ":" + strings.TrimPrefix(v.GetString("SERVICE_PORT"), ":"),
		AppEnv:          v.GetString("APP_ENV"),
		MapsAPIKey:      v.GetString("MAPS_API_KEY"),
		APIBaseURL:      strings.TrimSuffix(v.GetString("API_URL"), "/"),
		RoutesEndpoint:  v.GetString("ROUTES_ENDPOINT"),
		LanguageCode:    v.GetString("LANGUAGE_CODE"),
		Units:           v.GetString("UNITS"),
		DefaultLat:      v.GetFloat64("DEFAULT_LAT"),
		DefaultLng:      v.GetFloat64("DEFAULT_LNG"),
		UpstreamTimeout: upstreamTimeout,
		WatchInterval:   watchInterval,
	}, nil
}
