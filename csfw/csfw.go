package csfw

import (
	"math"

	"github.com/evroute/evroute/bplist"
	"github.com/evroute/evroute/core"
	"github.com/evroute/evroute/fwprofile"
	"github.com/evroute/evroute/matrix"
)

// Result is the output of Run: the base node-to-node profile matrix
// (plain Floyd-Warshall, no station detours), the stations that were
// sampled (or supplied), the scalar min-cost closure over the full node
// set, and the station-to-station cost/path views read off it. Feed it
// to Final for the lifted profile matrix.
type Result struct {
	// Index maps VertexIDs to matrix positions, in g.VertexIDs() order.
	Index fwprofile.Index

	// Stations are the charging-station vertices, in selection order
	// (ascending by matrix position when sampled).
	Stations []core.VertexID

	// Base is the profile matrix after the BASE-FW phase.
	Base fwprofile.Matrix

	// MinCosts is the n x n scalar shortest-cost closure over direct
	// edge costs, with edges exceeding capacity treated as absent. Its
	// diagonal is zero.
	MinCosts *matrix.Dense

	// PairCosts is the k x k station-to-station slice of MinCosts,
	// indexed by station enumeration order (same order as Stations).
	PairCosts [][]float64

	// Paths holds, for each ordered station pair, the node-position
	// sequence of the cheapest scalar path between them (endpoints
	// included), or nil when unreachable.
	Paths [][][]int

	positions []int
	m         float64
}

// Run executes the first two phases of the CS-Floyd-Warshall state
// machine:
//
//  1. BASE-FW: the plain profile Floyd-Warshall over the whole graph, or
//     its first n vertices under WithNodeCount (package fwprofile).
//  2. STATION-GRAPH: station selection (seeded sampling, or an explicit
//     WithStationIDs override) plus a scalar min-cost closure over the
//     full node set, closed with matrix/ops.FloydWarshall.
//
// The third phase, FINAL, runs separately via (*Result).Final so a
// caller can inspect the station graph before paying for the lift.
// Run never mutates its input graph.
func Run(g *core.Graph, m float64, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if m <= 0 {
		return nil, ErrNonPositiveCapacity
	}
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// Phase BASE-FW.
	base, idx := fwprofile.NewMatrixN(g, m, cfg.nNodes)
	if err := fwprofile.Run(base, m); err != nil {
		return nil, err
	}

	ids := g.VertexIDs()
	if cfg.nNodes > 0 && cfg.nNodes < len(ids) {
		ids = ids[:cfg.nNodes]
	}
	n := len(ids)

	// Phase STATION-GRAPH: resolve station positions, either from an
	// explicit override or by seeded sampling.
	var positions []int
	if cfg.stationIDs != nil {
		for _, id := range cfg.stationIDs {
			if pos, ok := idx[id]; ok {
				positions = append(positions, pos)
			}
		}
	} else {
		count := cfg.nStations
		if count == 0 {
			count = int(defaultStationFraction * float64(n))
		}
		positions = sampleStationPositions(n, count, cfg.seed)
	}

	// Zero stations is legal: the extension degenerates to base FW, and
	// Final returns a plain copy of the base matrix.
	sg, err := buildStationGraph(g, ids, positions, m)
	if err != nil {
		return nil, err
	}

	stations := make([]core.VertexID, len(positions))
	for i, pos := range positions {
		stations[i] = ids[pos]
	}

	return &Result{
		Index:     idx,
		Stations:  stations,
		Base:      base,
		MinCosts:  sg.minCosts,
		PairCosts: sg.pairCosts(),
		Paths:     sg.pairPaths(),
		positions: positions,
		m:         m,
	}, nil
}

// Final runs the FINAL phase: every station detour is folded into a
// fresh copy of the base matrix, so the profile at (i, j) becomes the
// point-wise best of the direct base route and, for each station si
// reachable from i, the route i -> si (base profile) followed by the
// cheapest scalar completion si -> ... -> j. The base matrix is left
// untouched.
func (r *Result) Final() fwprofile.Matrix {
	cNew := r.detourCosts()
	final := r.Base.Clone()
	n := len(r.Base)

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			for a, si := range r.positions {
				if !r.Base[i][si].Reachable() {
					continue
				}
				cost := cNew[a][j]
				if math.IsInf(cost, 1) {
					continue
				}
				final[i][j] = bplist.DisconnectedMerge(r.Base[i][si], cost, final[i][j], 0, r.m)
			}
		}
	}
	return final
}

// detourCosts precomputes, for every station si and every destination
// j, the cheapest total scalar cost of completing a trip from si to j:
// either riding si's own base profile (its minimum reachable charge) or
// hopping the scalar station graph to some station sj and then riding
// sj's base profile to j, paying the break-even charge that profile
// demands. This does not depend on the trip's origin i, so it is
// computed once and reused across every (i, j) pair in Final.
func (r *Result) detourCosts() [][]float64 {
	k := len(r.positions)
	n := len(r.Base)
	cNew := make([][]float64, k)
	for a, si := range r.positions {
		cNew[a] = make([]float64, n)
		for j := 0; j < n; j++ {
			best := r.Base[si][j].MinReachableCharge()
			for _, sj := range r.positions {
				if !r.Base[sj][j].Reachable() {
					continue
				}
				sjCost, ok := zeroChargeCost(r.Base[sj][j])
				if !ok {
					continue
				}
				hop, _ := r.MinCosts.At(si, sj)
				if math.IsInf(hop, 1) {
					continue
				}
				if cand := hop + sjCost; cand < best {
					best = cand
				}
			}
			cNew[a][j] = best
		}
	}
	return cNew
}

// zeroChargeCost returns the initial charge x at which profile l reaches
// the sink with exactly zero charge remaining, i.e. the break-even
// charge needed to just barely arrive. Reports false if l never reaches
// zero.
func zeroChargeCost(l bplist.List) (float64, bool) {
	idx, ok := bplist.SearchRange(l, 0)
	if !ok {
		return 0, false
	}
	return l[idx].X, true
}
