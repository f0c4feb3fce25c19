package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix    = "EVROUTE_"
	configEnvVar = "EVROUTE_CONFIG_PATH"
)

// Loader resolves a Config from defaults, an optional YAML file, and
// environment variables, in that order of increasing priority.
type Loader struct {
	k           *koanf.Koanf
	configPaths []string
	envPrefix   string
}

// LoaderOption customizes a Loader.
type LoaderOption func(*Loader)

// WithConfigPaths overrides the list of candidate YAML file locations
// searched in order when EVROUTE_CONFIG_PATH is unset.
func WithConfigPaths(paths ...string) LoaderOption {
	return func(l *Loader) { l.configPaths = paths }
}

// WithEnvPrefix overrides the environment variable prefix.
func WithEnvPrefix(prefix string) LoaderOption {
	return func(l *Loader) { l.envPrefix = prefix }
}

// NewLoader returns a Loader with the default search paths and prefix.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		k: koanf.New("."),
		configPaths: []string{
			"evroute.yaml",
			"config/evroute.yaml",
			"/etc/evroute/evroute.yaml",
		},
		envPrefix: envPrefix,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load resolves a Config: defaults, then an optional file, then env.
func (l *Loader) Load() (*Config, error) {
	if err := l.loadDefaults(); err != nil {
		return nil, fmt.Errorf("config: defaults: %w", err)
	}
	l.loadConfigFile() // best effort: a missing file is not fatal.
	if err := l.loadEnv(); err != nil {
		return nil, fmt.Errorf("config: env: %w", err)
	}

	var cfg Config
	if err := l.k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (l *Loader) loadDefaults() error {
	defaults := map[string]any{
		"routing.m":          50.0,
		"routing.n_nodes":    0,
		"routing.n_stations": 0,
		"routing.seed":       234,
		"routing.testing":    false,
		"routing.source":     0,
		"routing.target":     1,
		"routing.operation":  "dijkstra",

		"log.level":        "info",
		"log.format":       "json",
		"log.output":       "stdout",
		"log.max_size_mb":  100,
		"log.max_backups":  3,
		"log.max_age_days": 7,
		"log.compress":     true,

		"metrics.enabled":   true,
		"metrics.namespace": "evroute",
		"metrics.subsystem": "",

		"cache.enabled":     false,
		"cache.backend":     "memory",
		"cache.redis_addr":  "localhost:6379",
		"cache.redis_db":    0,
		"cache.default_ttl": "5m",
	}
	return l.k.Load(confmap.Provider(defaults, "."), nil)
}

func (l *Loader) loadConfigFile() {
	if p := os.Getenv(configEnvVar); p != "" {
		if _, err := os.Stat(p); err == nil {
			_ = l.k.Load(file.Provider(p), yaml.Parser())
			return
		}
	}
	for _, p := range l.configPaths {
		abs, err := filepath.Abs(p)
		if err != nil {
			continue
		}
		if _, err := os.Stat(abs); err == nil {
			_ = l.k.Load(file.Provider(abs), yaml.Parser())
			return
		}
	}
}

func (l *Loader) loadEnv() error {
	return l.k.Load(env.Provider(l.envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, l.envPrefix)), "_", ".")
	}), nil)
}

// Load is a convenience wrapper around NewLoader().Load().
func Load() (*Config, error) {
	return NewLoader().Load()
}
