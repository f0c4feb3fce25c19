package potential

import (
	"math"

	"github.com/evroute/evroute/core"
)

// Alpha derives the graph-wide potential scale for g. For every edge with
// a strictly positive elevation change (uphill), it tracks the largest
// cost/elevation-change ratio; for every edge with a strictly negative
// change (downhill), the smallest. alpha is 1 if that range straddles 1
// (alphaMin <= 1 <= alphaMax), else 2.
//
// A graph with no uphill edges imposes no upper bound (alphaMax = +Inf);
// one with no downhill edges imposes no lower bound (alphaMin = -Inf).
// Either way the missing side can never exclude 1, matching the source's
// assumption that some edge of each kind exists.
//
// The fallback value 2 is carried over from the original implementation
// as is; nothing here proves that it yields a consistent potential.
func Alpha(g *core.Graph) int {
	var haveUp, haveDown bool
	var maxUp, minDown float64

	for _, e := range g.Edges() {
		uElev, _ := g.Elevation(e.From)
		vElev, _ := g.Elevation(e.To)
		dh := vElev - uElev

		switch {
		case dh > 0:
			ratio := e.Cost / dh
			if !haveUp || ratio > maxUp {
				maxUp = ratio
			}
			haveUp = true
		case dh < 0:
			ratio := e.Cost / dh
			if !haveDown || ratio < minDown {
				minDown = ratio
			}
			haveDown = true
		}
	}

	alphaMax := math.Inf(1)
	if haveUp {
		alphaMax = math.Trunc(maxUp)
	}
	alphaMin := math.Inf(-1)
	if haveDown {
		alphaMin = math.Trunc(minDown)
	}

	if alphaMin <= 1 && 1 <= alphaMax {
		return 1
	}
	return 2
}

// Table returns pi(v) = alpha * elevation(v) for every vertex of g, the
// potential table consumed by the Dijkstra profile search's priority
// queue key.
func Table(g *core.Graph) map[core.VertexID]float64 {
	alpha := float64(Alpha(g))
	out := make(map[core.VertexID]float64, g.NumVertices())
	for _, id := range g.VertexIDs() {
		elev, _ := g.Elevation(id)
		out[id] = alpha * elev
	}
	return out
}
