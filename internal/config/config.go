package config

import (
	"fmt"
	"os"
	"time"
)

type AppConfig struct {
	// Provider credentials. Absence is not fatal at startup; each call fails
	// with a configuration error the presentation layer can message.
	GeoapifyAPIKey    string
	AccuWeatherAPIKey string

	// IPLocatorURL is the endpoint used to approximate the device position.
	IPLocatorURL string

	// Language is the BCP 47 tag sent to the place-search and forecast APIs.
	Language string

	// CacheTTL bounds the freshness of resolved locations.
	CacheTTL time.Duration

	// RefreshInterval controls the periodic forecast refresh. Independent of
	// CacheTTL; the two are unrelated knobs.
	RefreshInterval time.Duration

	// GeolocationTimeout bounds the single position request.
	GeolocationTimeout time.Duration

	// HTTPTimeout is the shared outbound client timeout.
	HTTPTimeout time.Duration

	Port string
}

// Load reads configuration from environment with sensible defaults. The caller
// is expected to have loaded any .env file beforehand.
func Load() (*AppConfig, error) {
	cfg := &AppConfig{}

	cfg.GeoapifyAPIKey = os.Getenv("GEOAPIFY_API_KEY")
	cfg.AccuWeatherAPIKey = os.Getenv("ACCUWEATHER_API_KEY")
	cfg.IPLocatorURL = getenvDefault("IP_LOCATOR_URL", "http://ip-api.com/json")
	cfg.Language = getenvDefault("LANGUAGE", "en-US")
	cfg.Port = getenvDefault("PORT", "8080")

	var err error
	if cfg.CacheTTL, err = getenvDuration("CACHE_TTL", "30m"); err != nil {
		return nil, err
	}
	if cfg.RefreshInterval, err = getenvDuration("REFRESH_INTERVAL", "3h"); err != nil {
		return nil, err
	}
	if cfg.GeolocationTimeout, err = getenvDuration("GEOLOCATION_TIMEOUT", "20s"); err != nil {
		return nil, err
	}
	if cfg.HTTPTimeout, err = getenvDuration("HTTP_TIMEOUT", "10s"); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvDuration(key, def string) (time.Duration, error) {
	v := getenvDefault(key, def)
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
