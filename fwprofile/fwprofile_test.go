package fwprofile_test

import (
	"testing"

	"github.com/evroute/evroute/bplist"
	"github.com/evroute/evroute/core"
	"github.com/evroute/evroute/fwprofile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chainGraph(t *testing.T) *core.Graph {
	t.Helper()
	b := core.NewBuilder()
	require.NoError(t, b.AddVertex(1, 0, 0, 0))
	require.NoError(t, b.AddVertex(2, 0, 0, 0))
	require.NoError(t, b.AddVertex(3, 0, 0, 0))
	require.NoError(t, b.AddEdge(1, 1, 2, 2))
	require.NoError(t, b.AddEdge(2, 2, 3, 3))
	return b.Freeze()
}

func TestRunComposesChainedEdges(t *testing.T) {
	g := chainGraph(t)
	const m = 10.0

	mat, idx := fwprofile.NewMatrix(g, m)
	require.NoError(t, fwprofile.Run(mat, m))

	i1, i3 := idx[1], idx[3]
	assert.True(t, mat[i1][i3].Reachable())
	assert.True(t, bplist.Evaluate(mat[i1][i3], 4) < 0)
	assert.Equal(t, 0.0, bplist.Evaluate(mat[i1][i3], 5))
}

func TestRunLeavesDisconnectedPairsUnreachable(t *testing.T) {
	b := core.NewBuilder()
	require.NoError(t, b.AddVertex(1, 0, 0, 0))
	require.NoError(t, b.AddVertex(2, 0, 0, 0))
	g := b.Freeze()
	const m = 10.0

	mat, idx := fwprofile.NewMatrix(g, m)
	require.NoError(t, fwprofile.Run(mat, m))

	assert.False(t, mat[idx[1]][idx[2]].Reachable())
}

func TestRunWithHistoryHasNPlusOneSnapshots(t *testing.T) {
	g := chainGraph(t)
	const m = 10.0

	mat, idx := fwprofile.NewMatrix(g, m)
	history, err := fwprofile.RunWithHistory(mat, m)
	require.NoError(t, err)
	require.Len(t, history, 4)

	final, err := fwprofile.RunWithHistory(mat, m)
	require.NoError(t, err)
	assert.Equal(t, final[3][idx[1]][idx[3]], history[3][idx[1]][idx[3]])
}
