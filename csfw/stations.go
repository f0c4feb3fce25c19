package csfw

import (
	"math"
	"math/rand"
	"sort"

	"github.com/evroute/evroute/core"
	"github.com/evroute/evroute/matrix"
	"github.com/evroute/evroute/matrix/ops"
)

// sampleStationPositions picks count matrix-positions (0..n-1) at random
// using a seeded source, deduplicating repeats into a set, so the
// returned count may be smaller than requested.
func sampleStationPositions(n, count int, seed int64) []int {
	if count <= 0 || n <= 0 {
		return nil
	}
	r := rand.New(rand.NewSource(seed))
	seen := make(map[int]struct{}, count)
	for i := 0; i < count; i++ {
		seen[r.Intn(n)] = struct{}{}
	}
	out := make([]int, 0, len(seen))
	for pos := range seen {
		out = append(out, pos)
	}
	sort.Ints(out)
	return out
}

// stationGraph holds the scalar min-cost layer of the STATION-GRAPH
// phase: minCosts is the all-pairs shortest-path closure over the FULL
// node set (direct edge costs, with edges exceeding capacity treated as
// absent), and pred[i][j] is the node position immediately preceding j
// on the cheapest i->j path (or -1 if i==j or j is unreachable from i)
// — threaded straight out of ops.FloydWarshall's own relaxation loop
// rather than recovered from the closed matrix afterwards. Stations
// only select which rows/columns the FINAL phase reads; the closure
// itself may route through any vertex.
type stationGraph struct {
	positions []int // station matrix-positions, ascending
	minCosts  *matrix.Dense
	pred      [][]int
}

// buildStationGraph constructs the scalar min-cost graph over all n
// vertices: a direct entry exists between two vertices only if the graph
// has a direct edge whose cost fits within capacity m, then
// Floyd-Warshall (package matrix/ops) closes it to all-pairs shortest
// costs and hands back the predecessor table needed to reconstruct
// station-to-station paths.
func buildStationGraph(g *core.Graph, ids []core.VertexID, positions []int, m float64) (*stationGraph, error) {
	n := len(ids)
	direct, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}

	inf := math.Inf(1)
	for a := 0; a < n; a++ {
		for b := 0; b < n; b++ {
			if a == b {
				continue // Dense zero-initializes; diagonal stays 0
			}
			if e, ok := g.Connected(ids[a], ids[b]); ok && e.Cost <= m {
				if err := direct.Set(a, b, e.Cost); err != nil {
					return nil, err
				}
			} else {
				if err := direct.Set(a, b, inf); err != nil {
					return nil, err
				}
			}
		}
	}

	pred, err := ops.FloydWarshall(direct)
	if err != nil {
		return nil, err
	}

	return &stationGraph{
		positions: positions,
		minCosts:  direct,
		pred:      pred,
	}, nil
}

// path reconstructs the node-position sequence from i to j (inclusive
// of both endpoints) using the predecessor table, or nil if j is
// unreachable from i.
func (sg *stationGraph) path(i, j int) []int {
	if i == j {
		return []int{i}
	}
	cij, _ := sg.minCosts.At(i, j)
	if math.IsInf(cij, 1) {
		return nil
	}
	rev := []int{j}
	cur := j
	for cur != i {
		prev := sg.pred[i][cur]
		if prev == -1 {
			return nil
		}
		rev = append(rev, prev)
		cur = prev
	}
	out := make([]int, len(rev))
	for n, p := range rev {
		out[len(rev)-1-n] = p
	}
	return out
}

// pairCosts extracts the k x k station-to-station cost view from the
// closed full-node matrix.
func (sg *stationGraph) pairCosts() [][]float64 {
	k := len(sg.positions)
	out := make([][]float64, k)
	for a, pa := range sg.positions {
		out[a] = make([]float64, k)
		for b, pb := range sg.positions {
			c, _ := sg.minCosts.At(pa, pb)
			out[a][b] = c
		}
	}
	return out
}

// pairPaths reconstructs the k x k station-to-station path view; a nil
// entry means the second station is unreachable from the first.
func (sg *stationGraph) pairPaths() [][][]int {
	k := len(sg.positions)
	out := make([][][]int, k)
	for a, pa := range sg.positions {
		out[a] = make([][]int, k)
		for b, pb := range sg.positions {
			out[a][b] = sg.path(pa, pb)
		}
	}
	return out
}
