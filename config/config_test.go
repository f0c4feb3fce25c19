package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/evroute/evroute/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.NewLoader(config.WithConfigPaths()).Load()
	require.NoError(t, err)
	assert.Equal(t, 50.0, cfg.Routing.M)
	assert.Equal(t, "dijkstra", cfg.Routing.Operation)
	assert.Equal(t, int64(234), cfg.Routing.Seed)
	assert.Equal(t, "memory", cfg.Cache.Backend)
}

func TestLoadRejectsInvalidOperation(t *testing.T) {
	t.Setenv("EVROUTE_ROUTING_OPERATION", "not-a-real-op")
	cfg, err := config.NewLoader(config.WithConfigPaths()).Load()
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoadFromFileThenEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "evroute.yaml")
	require.NoError(t, os.WriteFile(path, []byte("routing:\n  m: 80\n  operation: fw\n"), 0o600))

	t.Setenv("EVROUTE_CONFIG_PATH", path)
	t.Setenv("EVROUTE_ROUTING_SEED", "7")

	cfg, err := config.NewLoader().Load()
	require.NoError(t, err)
	assert.Equal(t, 80.0, cfg.Routing.M)
	assert.Equal(t, "fw", cfg.Routing.Operation)
	assert.Equal(t, int64(7), cfg.Routing.Seed)
}

func TestValidateRejectsNonPositiveCapacity(t *testing.T) {
	cfg := config.Config{Routing: config.RoutingConfig{M: 0, Operation: "dijkstra"}}
	assert.Error(t, cfg.Validate())
}

func TestValidateAcceptsZeroStationsAsDegenerate(t *testing.T) {
	cfg := config.Config{Routing: config.RoutingConfig{M: 10, Operation: "cs-fw", NStations: 0}}
	assert.NoError(t, cfg.Validate())
}
