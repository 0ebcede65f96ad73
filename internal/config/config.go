package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds all configuration for the station status service
type Config struct {
	// Server configuration
	Port string `env:"PORT,default=8982"`

	// Station the status endpoints are probed on. Host and port stay
	// separate so panel migrations only need one variable changed.
	StreamHost string `env:"STREAM_HOST,default=cast.garalhogames.com"`
	StreamPort string `env:"STREAM_PORT,default=8000"`

	// Per endpoint probe timeout in milliseconds
	StatusTimeoutMS int `env:"STATUS_TIMEOUT_MS,default=5000"`

	// Local testing configuration
	MockupMode bool `env:"MOCKUP_MODE,default=false"`

	// Service configuration
	Environment string `env:"ENVIRONMENT,default=production"`
	LogLevel    string `env:"LOG_LEVEL,default=info"`
	LogFormat   string `env:"LOG_FORMAT,default=text"`
}

// Load loads configuration from environment variables
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	return &cfg, nil
}

// StreamBaseURL assembles the base URL the station status endpoints hang off
func (c *Config) StreamBaseURL() string {
	return fmt.Sprintf("http://%s:%s", c.StreamHost, c.StreamPort)
}

// StatusTimeout returns the per-endpoint probe timeout as a duration
func (c *Config) StatusTimeout() time.Duration {
	return time.Duration(c.StatusTimeoutMS) * time.Millisecond
}
