package config

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v6"
)

// DefaultBaseURL is the production Whyleloop endpoint.
const DefaultBaseURL = "https://whyleloop.app"

// Config carries everything a Client needs at construction time.
type Config struct {
	// AppID is the opaque tenant identifier sent with every request.
	AppID string `env:"WHYLELOOP_APP_ID"`
	// BaseURL overrides the host of every API endpoint.
	BaseURL string `env:"WHYLELOOP_BASE_URL" envDefault:"https://whyleloop.app"`
	// HTTPTimeout bounds each request round trip.
	HTTPTimeout time.Duration `env:"WHYLELOOP_HTTP_TIMEOUT" envDefault:"10s"`
	// StoragePath locates the fingerprint cache file.
	StoragePath string `env:"WHYLELOOP_STORAGE_PATH"`
	// LogLevel sets SDK log verbosity; "disabled" keeps the SDK silent.
	LogLevel string `env:"WHYLELOOP_LOG_LEVEL" envDefault:"disabled"`
}

// New returns a Config with defaults for the given app ID.
func New(appID string) *Config {
	return &Config{
		AppID:       appID,
		BaseURL:     DefaultBaseURL,
		HTTPTimeout: 10 * time.Second,
		StoragePath: defaultStoragePath(),
		LogLevel:    "disabled",
	}
}

// Load builds a Config from WHYLELOOP_* environment variables.
func Load() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	if cfg.StoragePath == "" {
		cfg.StoragePath = defaultStoragePath()
	}

	return cfg, nil
}

// Validate reports whether the Config can construct a working client.
func (c *Config) Validate() error {
	if c.AppID == "" {
		return errors.New("app ID is required")
	}
	if c.BaseURL == "" {
		return errors.New("base URL is required")
	}
	return nil
}

func defaultStoragePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "whyleloop.json"
	}
	return filepath.Join(homeDir, ".whyleloop", "whyleloop.json")
}
