package dijkstraprofile

import (
	"container/heap"
	"errors"

	"github.com/evroute/evroute/core"
)

// Sentinel errors returned by Run.
var (
	// ErrNilGraph indicates a nil *core.Graph was passed to Run.
	ErrNilGraph = errors.New("dijkstraprofile: graph is nil")

	// ErrNonPositiveCapacity indicates M <= 0.
	ErrNonPositiveCapacity = errors.New("dijkstraprofile: battery capacity must be positive")

	// ErrVertexNotFound indicates the source or target vertex does not
	// exist in the graph.
	ErrVertexNotFound = errors.New("dijkstraprofile: vertex not found in graph")
)

// Options configures a Run invocation.
type Options struct {
	potentials    map[core.VertexID]float64
	targetPruning bool
}

// Option mutates Options; see With* constructors.
type Option func(*Options)

func defaultOptions() Options {
	return Options{targetPruning: true}
}

// WithPotentials overrides the automatically computed potential table
// (package potential's Table) with a caller-supplied one. Mainly useful
// for tests that want to pin alpha without constructing a graph with the
// right uphill/downhill edge mix.
func WithPotentials(pot map[core.VertexID]float64) Option {
	return func(o *Options) { o.potentials = pot }
}

// WithoutTargetPruning disables the target-dominance pruning check,
// forcing Run to explore the full reachable frontier. Useful for testing
// the pruning predicate itself against an unpruned baseline.
func WithoutTargetPruning() Option {
	return func(o *Options) { o.targetPruning = false }
}

// item is a single heap entry for vertex, keyed by potential(vertex)
// plus the cheapest consumption among the break-points the triggering
// relaxation introduced.
type item struct {
	vertex core.VertexID
	key    float64
}

// priorityQueue is a min-heap of *item ordered by key ascending, using
// the decrease-key-by-replacement pattern: an entry superseded by a
// later push for the same vertex is popped and discarded rather than
// removed in place.
type priorityQueue []*item

func (pq priorityQueue) Len() int            { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool  { return pq[i].key < pq[j].key }
func (pq priorityQueue) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *priorityQueue) Push(x interface{}) { *pq = append(*pq, x.(*item)) }
func (pq *priorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]
	return it
}

var _ heap.Interface = (*priorityQueue)(nil)
