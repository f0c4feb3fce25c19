package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/evroute/evroute/bplist"
	"github.com/evroute/evroute/config"
	"github.com/evroute/evroute/core"
	"github.com/evroute/evroute/csfw"
	"github.com/evroute/evroute/dijkstraprofile"
	"github.com/evroute/evroute/fwprofile"
	"github.com/evroute/evroute/routecache"
	"github.com/evroute/evroute/telemetry"
)

// dispatch runs the operation named by cfg.Routing.Operation, using
// cache (if non-nil) to skip recomputation for a previously-seen
// (graph, M, seed[, source, target]) combination, and returns a short
// human-readable summary of the result.
func dispatch(ctx context.Context, g *core.Graph, cfg *config.Config, log *slog.Logger, metrics *telemetry.Metrics, cache routecache.Cache) (string, error) {
	fp := routecache.GraphFingerprint(g)
	m := cfg.Routing.M

	var summary string
	err := metrics.Track(cfg.Routing.Operation, func() error {
		var runErr error
		switch cfg.Routing.Operation {
		case "dijkstra":
			summary, runErr = runDijkstra(ctx, g, m, cfg, fp, cache, log)
		case "fw":
			summary, runErr = runFW(g, m, cfg, fp, cache, log)
		case "fw-history":
			summary, runErr = runFWHistory(g, m, cfg, log)
		case "cs-fw":
			summary, runErr = runCSFW(g, m, cfg, log, metrics)
		case "cs-fw-final":
			summary, runErr = runCSFWFinal(g, m, cfg, log, metrics)
		default:
			runErr = fmt.Errorf("unknown operation %q", cfg.Routing.Operation)
		}
		return runErr
	})
	return summary, err
}

func runDijkstra(ctx context.Context, g *core.Graph, m float64, cfg *config.Config, fp string, cache routecache.Cache, log *slog.Logger) (string, error) {
	source := core.VertexID(cfg.Routing.Source)
	target := core.VertexID(cfg.Routing.Target)

	if cache != nil {
		key := routecache.BuildPairKey("dijkstra", fp, m, cfg.Routing.Seed, source, target)
		if data, err := cache.Get(ctx, key); err == nil {
			if profile, decodeErr := routecache.DecodeProfile(data); decodeErr == nil {
				log.Info("cache hit")
				return describeProfile(profile, m), nil
			}
		}
	}

	profile, err := dijkstraprofile.Run(g, m, source, target)
	if err != nil {
		return "", err
	}

	if cache != nil {
		key := routecache.BuildPairKey("dijkstra", fp, m, cfg.Routing.Seed, source, target)
		_ = cache.Set(ctx, key, routecache.EncodeProfile(profile), 0)
	}
	return describeProfile(profile, m), nil
}

func runFW(g *core.Graph, m float64, cfg *config.Config, fp string, cache routecache.Cache, log *slog.Logger) (string, error) {
	ctx := context.Background()
	if cache != nil {
		key := routecache.BuildKey("fw", fp, m, 0)
		if data, err := cache.Get(ctx, key); err == nil {
			if mat, decodeErr := routecache.DecodeMatrix(data); decodeErr == nil {
				log.Info("cache hit")
				return describeMatrix(mat, m), nil
			}
		}
	}

	mat, _ := fwprofile.NewMatrixN(g, m, cfg.Routing.NNodes)
	if err := fwprofile.Run(mat, m); err != nil {
		return "", err
	}

	if cache != nil {
		key := routecache.BuildKey("fw", fp, m, 0)
		_ = cache.Set(ctx, key, routecache.EncodeMatrix(mat), 0)
	}
	return describeMatrix(mat, m), nil
}

func runFWHistory(g *core.Graph, m float64, cfg *config.Config, log *slog.Logger) (string, error) {
	mat, _ := fwprofile.NewMatrixN(g, m, cfg.Routing.NNodes)
	history, err := fwprofile.RunWithHistory(mat, m)
	if err != nil {
		return "", err
	}
	log.Info("history computed", "rounds", len(history))
	return fmt.Sprintf("fw_profile_with_history: %d rounds, final round:\n%s", len(history)-1, describeMatrix(history[len(history)-1], m)), nil
}

func runCSFW(g *core.Graph, m float64, cfg *config.Config, log *slog.Logger, metrics *telemetry.Metrics) (string, error) {
	res, err := csfw.Run(g, m, csfwOptions(cfg)...)
	if err != nil {
		return "", err
	}
	metrics.SetStationCount(len(res.Stations))
	log.Info("stations selected", "count", len(res.Stations))
	return fmt.Sprintf("cs_fw: %d stations\nbase:\n%s", len(res.Stations), describeMatrix(res.Base, m)), nil
}

func runCSFWFinal(g *core.Graph, m float64, cfg *config.Config, log *slog.Logger, metrics *telemetry.Metrics) (string, error) {
	res, err := csfw.Run(g, m, csfwOptions(cfg)...)
	if err != nil {
		return "", err
	}
	metrics.SetStationCount(len(res.Stations))
	log.Info("stations selected", "count", len(res.Stations))
	return fmt.Sprintf("cs_fw_final: %d stations\nfinal:\n%s", len(res.Stations), describeMatrix(res.Final(), m)), nil
}

func csfwOptions(cfg *config.Config) []csfw.Option {
	var opts []csfw.Option
	opts = append(opts, csfw.WithSeed(cfg.Routing.Seed))
	if cfg.Routing.NNodes > 0 {
		opts = append(opts, csfw.WithNodeCount(cfg.Routing.NNodes))
	}
	if cfg.Routing.NStations > 0 {
		opts = append(opts, csfw.WithStationCount(cfg.Routing.NStations))
	}
	if len(cfg.Routing.StationIDs) > 0 {
		ids := make([]core.VertexID, len(cfg.Routing.StationIDs))
		for i, id := range cfg.Routing.StationIDs {
			ids[i] = core.VertexID(id)
		}
		opts = append(opts, csfw.WithStationIDs(ids))
	}
	return opts
}

func describeProfile(l bplist.List, m float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "profile with %d break-points:\n", len(l))
	for _, p := range l {
		fmt.Fprintf(&b, "  x=%.2f y=%.2f slope=%d\n", p.X, p.Y, p.S)
	}
	return b.String()
}

func describeMatrix(mat [][]bplist.List, m float64) string {
	var b strings.Builder
	reachable := 0
	total := 0
	for i, row := range mat {
		for j, cell := range row {
			if i == j {
				continue
			}
			total++
			if bplist.List(cell).Reachable() {
				reachable++
			}
		}
	}
	fmt.Fprintf(&b, "  %d/%d ordered pairs reachable\n", reachable, total)
	return b.String()
}
