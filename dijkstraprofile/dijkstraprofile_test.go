package dijkstraprofile_test

import (
	"math"
	"testing"

	"github.com/evroute/evroute/bp"
	"github.com/evroute/evroute/bplist"
	"github.com/evroute/evroute/core"
	"github.com/evroute/evroute/dijkstraprofile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flatGraph(t *testing.T) *core.Graph {
	t.Helper()
	b := core.NewBuilder()
	require.NoError(t, b.AddVertex(1, 0, 0, 0))
	require.NoError(t, b.AddVertex(2, 0, 0, 0))
	require.NoError(t, b.AddVertex(3, 0, 0, 0))
	require.NoError(t, b.AddEdge(10, 1, 2, 2))
	require.NoError(t, b.AddEdge(11, 2, 3, 3))
	require.NoError(t, b.AddEdge(12, 1, 3, 6))
	return b.Freeze()
}

func TestRunMatchesBestOfBothPaths(t *testing.T) {
	g := flatGraph(t)
	const m = 10.0

	got, err := dijkstraprofile.Run(g, m, 1, 3, dijkstraprofile.WithPotentials(map[core.VertexID]float64{1: 0, 2: 0, 3: 0}))
	require.NoError(t, err)

	direct := bplist.Sort(bplist.Link(bplist.List(bp.Identity(m)), bplist.List(bp.EdgeProfile(6, m))))
	via2First := bplist.Sort(bplist.Link(bplist.List(bp.Identity(m)), bplist.List(bp.EdgeProfile(2, m))))
	via2 := bplist.Sort(bplist.Link(via2First, bplist.List(bp.EdgeProfile(3, m))))
	want := bplist.Merge(direct, via2, m)

	for x := 0.0; x <= m; x++ {
		assert.Equal(t, bplist.Evaluate(want, x), bplist.Evaluate(got, x), "x=%v", x)
	}
}

func TestRunUnreachableTargetStaysInfeasible(t *testing.T) {
	b := core.NewBuilder()
	require.NoError(t, b.AddVertex(1, 0, 0, 0))
	require.NoError(t, b.AddVertex(2, 0, 0, 0))
	g := b.Freeze()

	got, err := dijkstraprofile.Run(g, 10, 1, 2)
	require.NoError(t, err)
	assert.False(t, got.Reachable())
}

func TestRunRejectsUnknownVertex(t *testing.T) {
	g := flatGraph(t)
	_, err := dijkstraprofile.Run(g, 10, 1, 99)
	assert.ErrorIs(t, err, dijkstraprofile.ErrVertexNotFound)
}

func TestRunRejectsNonPositiveCapacity(t *testing.T) {
	g := flatGraph(t)
	_, err := dijkstraprofile.Run(g, 0, 1, 3)
	assert.ErrorIs(t, err, dijkstraprofile.ErrNonPositiveCapacity)
}

func TestDisablingTargetPruningStillConverges(t *testing.T) {
	g := flatGraph(t)
	const m = 10.0

	withPruning, err := dijkstraprofile.Run(g, m, 1, 3)
	require.NoError(t, err)
	withoutPruning, err := dijkstraprofile.Run(g, m, 1, 3, dijkstraprofile.WithoutTargetPruning())
	require.NoError(t, err)

	for x := 0.0; x <= m; x++ {
		a := bplist.Evaluate(withPruning, x)
		b := bplist.Evaluate(withoutPruning, x)
		if math.IsInf(a, -1) && math.IsInf(b, -1) {
			continue
		}
		assert.Equal(t, a, b, "x=%v", x)
	}
}
