// Package routecache caches computed SoC profiles (and profile matrices)
// keyed by a graph fingerprint plus the query parameters that produced
// them, so repeated queries against the same graph skip recomputation:
// a small Cache interface with an in-memory and a Redis-backed
// implementation behind the same Options struct.
package routecache

import (
	"context"
	"errors"
	"time"

	"github.com/evroute/evroute/config"
)

// Backend names recognized by New.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// ErrKeyNotFound is returned by Get when key has no entry (or has
// expired).
var ErrKeyNotFound = errors.New("routecache: key not found")

// Cache stores opaque byte payloads (see codec.go for the profile
// encoding used by cmd/evroute) under string keys built by BuildKey.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	Close() error
}

// Options configures New.
type Options struct {
	Backend       string
	DefaultTTL    time.Duration
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// FromConfig builds Options from the resolved CacheConfig.
func FromConfig(cfg config.CacheConfig) Options {
	return Options{
		Backend:       cfg.Backend,
		DefaultTTL:    cfg.DefaultTTL,
		RedisAddr:     cfg.RedisAddr,
		RedisPassword: cfg.RedisPassword,
		RedisDB:       cfg.RedisDB,
	}
}

// New builds a Cache for the requested backend. An unrecognized or empty
// backend falls back to the in-memory implementation.
func New(opts Options) (Cache, error) {
	switch opts.Backend {
	case BackendRedis:
		return newRedisCache(opts)
	default:
		return newMemoryCache(opts), nil
	}
}
