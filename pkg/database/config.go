package database

import (
	"time"

	"github.com/the11eximoverseas/exim_backend/config"
)

// Config holds MongoDB connection settings
type Config struct {
	URI  string
	Name string

	MaxPoolSize             uint64
	ConnectTimeoutSeconds   int
	SelectionTimeoutSeconds int
}

// DefaultConfig returns sensible defaults for database configuration
func DefaultConfig() Config {
	return Config{
		URI:                     "mongodb://localhost:27017",
		Name:                    "the11eximoverseas",
		MaxPoolSize:             10,
		ConnectTimeoutSeconds:   10,
		SelectionTimeoutSeconds: 5,
	}
}

// ConnectTimeout returns the connect timeout as a duration
func (c Config) ConnectTimeout() time.Duration {
	if c.ConnectTimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.ConnectTimeoutSeconds) * time.Second
}

// SelectionTimeout returns the server selection timeout as a duration
func (c Config) SelectionTimeout() time.Duration {
	if c.SelectionTimeoutSeconds <= 0 {
		return 5 * time.Second
	}
	return time.Duration(c.SelectionTimeoutSeconds) * time.Second
}

// FromCentralConfig converts central config.DatabaseConfig to package Config
func FromCentralConfig(c config.DatabaseConfig) Config {
	cfg := Config{
		URI:                     c.URI,
		Name:                    c.Name,
		MaxPoolSize:             c.MaxPoolSize,
		ConnectTimeoutSeconds:   c.ConnectTimeoutSeconds,
		SelectionTimeoutSeconds: c.SelectionTimeoutSeconds,
	}
	if cfg.MaxPoolSize == 0 {
		cfg.MaxPoolSize = DefaultConfig().MaxPoolSize
	}
	return cfg
}
