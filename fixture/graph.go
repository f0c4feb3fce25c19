package fixture

import (
	"fmt"
	"math/rand"

	"github.com/evroute/evroute/core"
)

// RandomSparseOption customizes RandomSparse.
type RandomSparseOption func(*randomSparseConfig)

type randomSparseConfig struct {
	seed      int64
	edgeProb  float64
	latSpan   float64
	lonSpan   float64
	elevSpan  float64
	bidirProb float64
}

func defaultRandomSparseConfig() randomSparseConfig {
	return randomSparseConfig{
		seed:      234,
		edgeProb:  0.15,
		latSpan:   0.05,
		lonSpan:   0.05,
		elevSpan:  120,
		bidirProb: 0.5,
	}
}

// WithRandomSparseSeed fixes the math/rand source so the same (n, opts)
// pair always yields the same graph.
func WithRandomSparseSeed(seed int64) RandomSparseOption {
	return func(cfg *randomSparseConfig) { cfg.seed = seed }
}

// WithEdgeProbability sets the per-ordered-pair probability of a
// candidate edge; each candidate that survives is independently given a
// reverse edge with probability WithReverseProbability.
func WithEdgeProbability(p float64) RandomSparseOption {
	return func(cfg *randomSparseConfig) { cfg.edgeProb = p }
}

// WithReverseProbability sets the probability that a surviving u->v
// candidate also gets a v->u edge (with its own, independently
// Cost-derived weight, since elevation is not symmetric).
func WithReverseProbability(p float64) RandomSparseOption {
	return func(cfg *randomSparseConfig) { cfg.bidirProb = p }
}

// WithElevationSpan sets the +/- range (in metres) vertex elevations are
// drawn from around 0; a wider span produces more pronounced
// recuperation edges.
func WithElevationSpan(metres float64) RandomSparseOption {
	return func(cfg *randomSparseConfig) { cfg.elevSpan = metres }
}

// RandomSparse builds a deterministic random directed graph of n
// vertices scattered over a small lat/lon/elevation box, with edges
// costed by DefaultCost so that climbs consume extra charge and descents
// recuperate it. core.Builder owns the actual Graph construction; this
// function only decides which vertices and edges to feed it.
func RandomSparse(n int, opts ...RandomSparseOption) (*core.Graph, error) {
	if n <= 0 {
		return nil, fmt.Errorf("fixture: random sparse graph needs at least one vertex, got %d", n)
	}
	cfg := defaultRandomSparseConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	rng := rand.New(rand.NewSource(cfg.seed))

	type point struct{ lat, lon, elev float64 }
	pts := make([]point, n)
	for i := range pts {
		pts[i] = point{
			lat:  rng.Float64() * cfg.latSpan,
			lon:  rng.Float64() * cfg.lonSpan,
			elev: (rng.Float64()*2 - 1) * cfg.elevSpan,
		}
	}

	b := core.NewBuilder()
	for i, p := range pts {
		if err := b.AddVertex(core.VertexID(i), p.lat, p.lon, p.elev); err != nil {
			return nil, err
		}
	}

	var nextEdge int
	addEdge := func(u, v int) error {
		cost := DefaultCost(pts[u].lat, pts[u].lon, pts[u].elev, pts[v].lat, pts[v].lon, pts[v].elev)
		if err := b.AddEdge(core.EdgeID(nextEdge), core.VertexID(u), core.VertexID(v), cost); err != nil {
			return err
		}
		nextEdge++
		return nil
	}

	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u == v {
				continue
			}
			if rng.Float64() >= cfg.edgeProb {
				continue
			}
			if err := addEdge(u, v); err != nil {
				return nil, err
			}
			if rng.Float64() < cfg.bidirProb {
				if err := addEdge(v, u); err != nil {
					return nil, err
				}
			}
		}
	}

	return b.Freeze(), nil
}
