package core_test

import (
	"errors"
	"testing"

	"github.com/evroute/evroute/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTriangle(t *testing.T) *core.Graph {
	t.Helper()
	b := core.NewBuilder()
	require.NoError(t, b.AddVertex(1, 0, 0, 10))
	require.NoError(t, b.AddVertex(2, 0, 1, 20))
	require.NoError(t, b.AddVertex(3, 1, 1, 5))
	require.NoError(t, b.AddEdge(100, 1, 2, 3))
	require.NoError(t, b.AddEdge(101, 2, 3, -4))
	return b.Freeze()
}

func TestBuilderDuplicateVertex(t *testing.T) {
	b := core.NewBuilder()
	require.NoError(t, b.AddVertex(1, 0, 0, 0))
	err := b.AddVertex(1, 1, 1, 1)
	assert.ErrorIs(t, err, core.ErrDuplicateVertex)
}

func TestBuilderEdgeUnknownEndpoint(t *testing.T) {
	b := core.NewBuilder()
	require.NoError(t, b.AddVertex(1, 0, 0, 0))
	err := b.AddEdge(1, 1, 2, 1)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestBuilderDuplicateEdge(t *testing.T) {
	b := core.NewBuilder()
	require.NoError(t, b.AddVertex(1, 0, 0, 0))
	require.NoError(t, b.AddVertex(2, 0, 0, 0))
	require.NoError(t, b.AddEdge(1, 1, 2, 1))
	err := b.AddEdge(1, 2, 1, 1)
	assert.ErrorIs(t, err, core.ErrDuplicateEdge)
}

func TestGraphAccessors(t *testing.T) {
	g := buildTriangle(t)

	assert.Equal(t, 3, g.NumVertices())
	assert.Equal(t, []core.VertexID{1, 2, 3}, g.VertexIDs())

	v1, err := g.Vertex(1)
	require.NoError(t, err)
	assert.Equal(t, 10.0, v1.Elev)

	elev, err := g.Elevation(2)
	require.NoError(t, err)
	assert.Equal(t, 20.0, elev)

	_, err = g.Vertex(99)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	out, err := g.Outgoing(1)
	require.NoError(t, err)
	assert.Equal(t, []core.EdgeID{100}, out)

	in, err := g.Incoming(3)
	require.NoError(t, err)
	assert.Equal(t, []core.EdgeID{101}, in)

	e, ok := g.Connected(1, 2)
	assert.True(t, ok)
	assert.Equal(t, 3.0, e.Cost)

	_, ok = g.Connected(1, 3)
	assert.False(t, ok)

	edges := g.Edges()
	assert.Len(t, edges, 2)
	assert.Equal(t, core.EdgeID(100), edges[0].ID)
}

func TestGraphOutgoingUnknownVertex(t *testing.T) {
	g := buildTriangle(t)
	_, err := g.Outgoing(99)
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrVertexNotFound))
}

func TestFreezeIsolatesFurtherMutation(t *testing.T) {
	b := core.NewBuilder()
	require.NoError(t, b.AddVertex(1, 0, 0, 0))
	require.NoError(t, b.AddVertex(2, 0, 0, 0))
	require.NoError(t, b.AddEdge(1, 1, 2, 1))

	g1 := b.Freeze()
	require.NoError(t, b.AddVertex(3, 0, 0, 0))
	require.NoError(t, b.AddEdge(2, 2, 3, 1))
	g2 := b.Freeze()

	assert.Equal(t, 2, g1.NumVertices())
	assert.Equal(t, 3, g2.NumVertices())
}
