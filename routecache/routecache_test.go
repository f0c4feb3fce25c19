package routecache_test

import (
	"context"
	"testing"
	"time"

	"github.com/evroute/evroute/bp"
	"github.com/evroute/evroute/bplist"
	"github.com/evroute/evroute/core"
	"github.com/evroute/evroute/routecache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildGraph(t *testing.T) *core.Graph {
	t.Helper()
	b := core.NewBuilder()
	require.NoError(t, b.AddVertex(1, 0, 0, 10))
	require.NoError(t, b.AddVertex(2, 0, 0, 0))
	require.NoError(t, b.AddEdge(1, 1, 2, 3))
	return b.Freeze()
}

func TestMemoryCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c, err := routecache.New(routecache.Options{Backend: routecache.BackendMemory, DefaultTTL: time.Minute})
	require.NoError(t, err)
	defer c.Close()

	_, err = c.Get(ctx, "missing")
	assert.ErrorIs(t, err, routecache.ErrKeyNotFound)

	require.NoError(t, c.Set(ctx, "k", []byte("v"), 0))
	got, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)

	ok, err := c.Exists(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, c.Delete(ctx, "k"))
	ok, err = c.Exists(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, err := routecache.New(routecache.Options{Backend: routecache.BackendMemory})
	require.NoError(t, err)
	defer c.Close()

	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Millisecond))
	time.Sleep(5 * time.Millisecond)

	_, err = c.Get(ctx, "k")
	assert.ErrorIs(t, err, routecache.ErrKeyNotFound)
}

func TestGraphFingerprintStableUnderVertexOrder(t *testing.T) {
	g1 := buildGraph(t)

	b2 := core.NewBuilder()
	require.NoError(t, b2.AddVertex(2, 0, 0, 0))
	require.NoError(t, b2.AddVertex(1, 0, 0, 10))
	require.NoError(t, b2.AddEdge(1, 1, 2, 3))
	g2 := b2.Freeze()

	assert.Equal(t, routecache.GraphFingerprint(g1), routecache.GraphFingerprint(g2))
}

func TestGraphFingerprintChangesWithCost(t *testing.T) {
	g1 := buildGraph(t)

	b2 := core.NewBuilder()
	require.NoError(t, b2.AddVertex(1, 0, 0, 10))
	require.NoError(t, b2.AddVertex(2, 0, 0, 0))
	require.NoError(t, b2.AddEdge(1, 1, 2, 99))
	g2 := b2.Freeze()

	assert.NotEqual(t, routecache.GraphFingerprint(g1), routecache.GraphFingerprint(g2))
}

func TestProfileCodecRoundTripsIncludingNegInf(t *testing.T) {
	l := bplist.List(bp.EdgeProfile(3, 10))
	data := routecache.EncodeProfile(l)
	decoded, err := routecache.DecodeProfile(data)
	require.NoError(t, err)
	assert.Equal(t, l, decoded)
}

func TestDecodeProfileRejectsTruncatedPayload(t *testing.T) {
	_, err := routecache.DecodeProfile([]byte{0, 0, 0})
	assert.Error(t, err)
}

func TestMatrixCodecRoundTrip(t *testing.T) {
	mat := [][]bplist.List{
		{bplist.List(bp.Identity(10)), bplist.List(bp.EdgeProfile(3, 10))},
		{bplist.List(bp.Unreachable(10)), bplist.List(bp.Identity(10))},
	}
	data := routecache.EncodeMatrix(mat)
	decoded, err := routecache.DecodeMatrix(data)
	require.NoError(t, err)
	assert.Equal(t, mat, decoded)
}

func TestDecodeMatrixRejectsTruncatedPayload(t *testing.T) {
	_, err := routecache.DecodeMatrix([]byte{0, 0, 0, 0, 0, 0, 0, 2, 0})
	assert.Error(t, err)
}
