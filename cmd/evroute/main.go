// Command evroute is a thin CLI over the core's four public operations:
// dijkstra_profile, fw_profile, fw_profile_with_history and cs_fw (plus
// its cs_fw_final lift). It loads configuration via config.Load (file
// plus env overrides under EVROUTE_*), wires up structured logging and
// Prometheus metrics via package telemetry, and, unless -testing selects
// the built-in ten-vertex fixture, builds a deterministic random graph
// via package fixture, since the real OSM/elevation importer is an
// external collaborator outside this module's scope.
//
// Usage:
//
//	evroute -op dijkstra -source 0 -target 1 -m 50
//	evroute -op cs-fw -testing -m 5
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/evroute/evroute/config"
	"github.com/evroute/evroute/core"
	"github.com/evroute/evroute/routecache"
	"github.com/evroute/evroute/telemetry"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "evroute:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := loadConfigWithFlags(args)
	if err != nil {
		return err
	}

	log := telemetry.NewLogger(cfg.Log)
	metrics := telemetry.NewMetrics(cfg.Metrics, prometheus.DefaultRegisterer)
	runID := uuid.New().String()
	log = log.With("run_id", runID)

	g, err := loadGraph(cfg)
	if err != nil {
		return fmt.Errorf("loading graph: %w", err)
	}
	log.Info("graph loaded", "vertices", g.NumVertices(), "edges", len(g.Edges()))

	var cache routecache.Cache
	if cfg.Cache.Enabled {
		cache, err = routecache.New(routecache.FromConfig(cfg.Cache))
		if err != nil {
			return fmt.Errorf("opening cache: %w", err)
		}
		defer cache.Close()
	}

	ctx := context.Background()
	summary, err := dispatch(ctx, g, cfg, telemetry.WithOperation(log, cfg.Routing.Operation), metrics, cache)
	if err != nil {
		return fmt.Errorf("running %s: %w", cfg.Routing.Operation, err)
	}

	fmt.Println(summary)
	return nil
}

// loadConfigWithFlags resolves Config from defaults/file/env (config.Load)
// and then applies any command-line flags on top, since flags are the
// CLI's own highest-priority override layer.
func loadConfigWithFlags(args []string) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	fs := flag.NewFlagSet("evroute", flag.ContinueOnError)
	op := fs.String("op", cfg.Routing.Operation, "dijkstra, fw, fw-history, cs-fw, or cs-fw-final")
	m := fs.Float64("m", cfg.Routing.M, "battery capacity")
	source := fs.Int64("source", cfg.Routing.Source, "source vertex id (dijkstra only)")
	target := fs.Int64("target", cfg.Routing.Target, "target vertex id (dijkstra only)")
	nNodes := fs.Int("n-nodes", cfg.Routing.NNodes, "node subset size (0 = full graph)")
	nStations := fs.Int("n-stations", cfg.Routing.NStations, "station sample count (0 = default fraction)")
	seed := fs.Int64("seed", cfg.Routing.Seed, "RNG seed for station sampling")
	testing := fs.Bool("testing", cfg.Routing.Testing, "use the built-in ten-vertex fixture")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg.Routing.Operation = *op
	cfg.Routing.M = *m
	cfg.Routing.Source = *source
	cfg.Routing.Target = *target
	cfg.Routing.NNodes = *nNodes
	cfg.Routing.NStations = *nStations
	cfg.Routing.Seed = *seed
	cfg.Routing.Testing = *testing

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadGraph(cfg *config.Config) (*core.Graph, error) {
	if cfg.Routing.Testing {
		return loadTestingFixture()
	}
	n := cfg.Routing.NNodes
	if n <= 0 {
		n = 30
	}
	return loadRandomFixture(n, cfg.Routing.Seed)
}
