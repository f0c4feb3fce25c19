// Package config loads the core's recognized routing options plus the
// ambient logging, metrics and cache settings: koanf over defaults, an
// optional YAML file, then environment overrides.
package config

import (
	"fmt"
	"strings"
	"time"
)

// Config is the root configuration for cmd/evroute.
type Config struct {
	Routing RoutingConfig `koanf:"routing"`
	Log     LogConfig     `koanf:"log"`
	Metrics MetricsConfig `koanf:"metrics"`
	Cache   CacheConfig   `koanf:"cache"`
}

// RoutingConfig holds the core's public operation options.
type RoutingConfig struct {
	// M is the battery capacity; required, must be positive.
	M float64 `koanf:"m"`
	// NNodes optionally restricts the graph to its first N vertices
	// (by stable iteration order). Zero means the full graph.
	NNodes int `koanf:"n_nodes"`
	// NStations overrides the sampled station count for csfw. Zero
	// means the default floor(0.1 * n_nodes) fraction.
	NStations int `koanf:"n_stations"`
	// StationIDs, if non-empty, bypasses sampling entirely.
	StationIDs []int64 `koanf:"station_ids"`
	// Seed is the RNG seed for station sampling; default 234.
	Seed int64 `koanf:"seed"`
	// Testing loads the built-in ten-vertex fixture (package fixture)
	// instead of the seeded random graph cmd/evroute builds otherwise.
	Testing bool `koanf:"testing"`
	// Source and Target name the endpoints for dijkstra_profile; both
	// are vertex IDs in the loaded graph.
	Source int64 `koanf:"source"`
	Target int64 `koanf:"target"`
	// Operation selects which public operation cmd/evroute runs:
	// "dijkstra", "fw", "fw-history", "cs-fw", or "cs-fw-final".
	Operation string `koanf:"operation"`
}

// LogConfig configures package telemetry's logger.
type LogConfig struct {
	Level      string `koanf:"level"`  // debug, info, warn, error
	Format     string `koanf:"format"` // json, text
	Output     string `koanf:"output"` // stdout, stderr, file
	FilePath   string `koanf:"file_path"`
	MaxSizeMB  int    `koanf:"max_size_mb"`
	MaxBackups int    `koanf:"max_backups"`
	MaxAgeDays int    `koanf:"max_age_days"`
	Compress   bool   `koanf:"compress"`
}

// MetricsConfig configures package telemetry's Prometheus registry.
type MetricsConfig struct {
	Enabled   bool   `koanf:"enabled"`
	Namespace string `koanf:"namespace"`
	Subsystem string `koanf:"subsystem"`
}

// CacheConfig configures package routecache.
type CacheConfig struct {
	Enabled       bool          `koanf:"enabled"`
	Backend       string        `koanf:"backend"` // memory, redis
	RedisAddr     string        `koanf:"redis_addr"`
	RedisPassword string        `koanf:"redis_password"`
	RedisDB       int           `koanf:"redis_db"`
	DefaultTTL    time.Duration `koanf:"default_ttl"`
}

// Validate enforces the core's required/sentinel options: M must be
// positive, n_stations=0 is legal and degenerate (not an error),
// Operation must name one of the five public operations.
func (c *Config) Validate() error {
	var errs []string

	if c.Routing.M <= 0 {
		errs = append(errs, fmt.Sprintf("routing.m must be positive, got %v", c.Routing.M))
	}
	if c.Routing.NNodes < 0 {
		errs = append(errs, "routing.n_nodes must be non-negative")
	}
	if c.Routing.NStations < 0 {
		errs = append(errs, "routing.n_stations must be non-negative")
	}

	switch c.Routing.Operation {
	case "dijkstra", "fw", "fw-history", "cs-fw", "cs-fw-final":
	default:
		errs = append(errs, fmt.Sprintf(
			"routing.operation must be one of dijkstra, fw, fw-history, cs-fw, cs-fw-final, got %q",
			c.Routing.Operation))
	}

	if c.Cache.Enabled {
		switch c.Cache.Backend {
		case "memory", "redis":
		default:
			errs = append(errs, fmt.Sprintf("cache.backend must be memory or redis, got %q", c.Cache.Backend))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
