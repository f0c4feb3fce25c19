package dijkstraprofile

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/evroute/evroute/bp"
	"github.com/evroute/evroute/bplist"
	"github.com/evroute/evroute/core"
	"github.com/evroute/evroute/potential"
)

// Run computes the SoC profile from source to target on g with battery
// capacity m: f(x) is the final charge reachable at target when starting
// at source with initial charge x, or bp.NegInf where infeasible.
//
// The frontier behaves like an ordered mapping with one live key per
// vertex: the heap holds every pushed entry, but an entry is discarded on
// pop unless its key still matches the vertex's latest (a
// decrease-key-by-replacement scheme). A vertex is re-relaxed every time
// an improvement re-inserts it — profiles can keep improving after the
// first settle because edge costs may be negative (recuperation), so
// there is no settled set. Unless WithoutTargetPruning is set, a
// relaxation into a vertex whose profile is already dominated by the
// target's is skipped, per the target-pruning predicate.
func Run(g *core.Graph, m float64, source, target core.VertexID, opts ...Option) (bplist.List, error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGraph
	}
	if m <= 0 {
		return nil, ErrNonPositiveCapacity
	}
	if _, err := g.Vertex(source); err != nil {
		return nil, fmt.Errorf("%w: source %d", ErrVertexNotFound, source)
	}
	if _, err := g.Vertex(target); err != nil {
		return nil, fmt.Errorf("%w: target %d", ErrVertexNotFound, target)
	}

	pot := cfg.potentials
	if pot == nil {
		pot = potential.Table(g)
	}

	r := &runner{
		g:             g,
		m:             m,
		target:        target,
		potentials:    pot,
		targetPruning: cfg.targetPruning,
		f:             make(map[core.VertexID]bplist.List, g.NumVertices()),
		pending:       make(map[core.VertexID]float64, g.NumVertices()),
	}

	for _, id := range g.VertexIDs() {
		r.f[id] = bplist.List(bp.Unreachable(m))
	}
	r.f[source] = bplist.List(bp.Identity(m))

	r.pq = make(priorityQueue, 0, g.NumVertices())
	heap.Init(&r.pq)
	r.push(source, pot[source]+minConsumption(r.f[source]))

	if err := r.process(); err != nil {
		return nil, err
	}

	return r.f[target], nil
}

// runner holds the mutable state for a single Run execution.
type runner struct {
	g             *core.Graph
	m             float64
	target        core.VertexID
	potentials    map[core.VertexID]float64
	targetPruning bool

	f       map[core.VertexID]bplist.List
	pending map[core.VertexID]float64
	pq      priorityQueue
}

// push records key as v's one live entry and inserts it into the heap;
// any older heap entry for v becomes stale and is dropped on pop.
func (r *runner) push(v core.VertexID, key float64) {
	r.pending[v] = key
	heap.Push(&r.pq, &item{vertex: v, key: key})
}

func (r *runner) process() error {
	for r.pq.Len() > 0 {
		it := heap.Pop(&r.pq).(*item)
		v := it.vertex

		key, live := r.pending[v]
		if !live || key != it.key {
			continue
		}
		delete(r.pending, v)

		if err := r.relax(v); err != nil {
			return err
		}
	}
	return nil
}

func (r *runner) relax(v core.VertexID) error {
	outgoing, err := r.g.Outgoing(v)
	if err != nil {
		return fmt.Errorf("dijkstraprofile: relax %d: %w", v, err)
	}

	for _, eid := range outgoing {
		e, err := r.g.Edge(eid)
		if err != nil {
			return fmt.Errorf("dijkstraprofile: relax %d: %w", v, err)
		}
		w := e.To

		if r.targetPruning && w != r.target && targetPrune(r.f[w], r.f[r.target], r.m) {
			continue
		}

		edgeProfile := bplist.List(bp.EdgeProfile(e.Cost, r.m))
		candidate := bplist.Sort(bplist.Link(r.f[v], edgeProfile))
		old := r.f[w]
		merged := bplist.Merge(old, candidate, r.m)

		fresh := newBreakPoints(old, merged)
		if len(fresh) == 0 {
			continue
		}
		r.f[w] = merged
		r.push(w, r.potentials[w]+minConsumption(fresh))
	}
	return nil
}

// newBreakPoints returns the set difference merged \ old, by value: the
// break-points a Merge actually introduced. Re-keying a relaxed vertex
// must look only at this new set, not at every break-point merged
// carries forward unchanged from old.
func newBreakPoints(old, merged bplist.List) bplist.List {
	seen := make(map[bp.BreakPoint]struct{}, len(old))
	for _, p := range old {
		seen[p] = struct{}{}
	}

	out := make(bplist.List, 0, len(merged))
	for _, p := range merged {
		if _, ok := seen[p]; !ok {
			out = append(out, p)
		}
	}
	return out
}

// minConsumption returns the smallest x-y over l's break-points: the
// cheapest initial-to-final-charge gap not yet known to be better
// elsewhere. A break-point with y = -inf contributes +Inf, naturally
// excluding infeasible fragments from the minimum.
func minConsumption(l bplist.List) float64 {
	min := math.Inf(1)
	for _, p := range l {
		c := p.X - p.Y
		if c < min {
			min = c
		}
	}
	return min
}

// targetPrune reports whether fV (the profile currently known for some
// vertex v) is already dominated by fT (the profile currently known for
// the target): if so, relaxing v further cannot improve the answer at
// the target. If either profile has no reachable break-point yet (the
// minimum feasible initial charge is undefined), pruning never applies;
// most importantly this keeps the search from pruning everything on the
// very first pop, when the target's profile is still the unreachable
// sentinel.
func targetPrune(fV, fT bplist.List, m float64) bool {
	if !fT.Reachable() || !fV.Reachable() {
		return false
	}

	cT := []float64{0}
	for _, p := range fT {
		if c := p.X - p.Y; c <= m {
			cT = append(cT, c)
		}
	}
	cTMax := maxOf(cT)

	cV := []float64{m}
	for _, p := range fV {
		if c := p.X - p.Y; c >= 0 {
			cV = append(cV, c)
		}
	}
	cVMin := minOf(cV)

	bTMin := fT.MinReachableCharge()
	bVMin := fV.MinReachableCharge()

	return bVMin >= bTMin && cVMin >= cTMax
}

func maxOf(xs []float64) float64 {
	m := xs[0]
	for _, x := range xs[1:] {
		if x > m {
			m = x
		}
	}
	return m
}

func minOf(xs []float64) float64 {
	m := xs[0]
	for _, x := range xs[1:] {
		if x < m {
			m = x
		}
	}
	return m
}
