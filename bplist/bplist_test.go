package bplist_test

import (
	"math"
	"testing"

	"github.com/evroute/evroute/bp"
	"github.com/evroute/evroute/bplist"
	"github.com/stretchr/testify/assert"
)

func TestSortDedupAndOrders(t *testing.T) {
	raw := bplist.List{
		bp.New(0, 0, bp.Rising),
		bp.New(600, 600, bp.Flat),
		bp.New(300, 200, bp.Rising),
		bp.New(1000, 1000, bp.Flat),
		bp.New(100, 100, bp.Flat),
		bp.New(1000, 1000, bp.Flat),
	}

	got := bplist.Sort(raw)

	assert.Len(t, got, 5)
	for i := 1; i < len(got); i++ {
		assert.Greater(t, got[i].X, got[i-1].X)
	}
	assert.Equal(t, []float64{0, 100, 300, 600, 1000}, xs(got))
}

func TestEvaluateBelowAndWithinDomain(t *testing.T) {
	l := bplist.List(bp.EdgeProfile(3, 10))
	assert.True(t, math.IsInf(bplist.Evaluate(l, 0), -1))
	assert.Equal(t, 0.0, bplist.Evaluate(l, 3))
	assert.Equal(t, 7.0, bplist.Evaluate(l, 10))
	assert.Equal(t, 3.5, bplist.Evaluate(l, 6.5))
}

func TestEvaluateAboveDomainPanics(t *testing.T) {
	l := bplist.List(bp.EdgeProfile(3, 10))
	assert.Panics(t, func() { bplist.Evaluate(l, 11) })
}

func TestSlopeAtBelowDomainIsFlat(t *testing.T) {
	l := bplist.List(bp.EdgeProfile(3, 10))
	assert.Equal(t, bp.Flat, bplist.SlopeAt(l, -1))
}

func TestReachableAndMinReachableCharge(t *testing.T) {
	l := bplist.List(bp.EdgeProfile(3, 10))
	assert.True(t, l.Reachable())
	assert.Equal(t, 3.0, l.MinReachableCharge())

	un := bplist.List(bp.Unreachable(10))
	assert.False(t, un.Reachable())
	assert.True(t, math.IsInf(un.MinReachableCharge(), 1))
}

func TestLinkAndSortComposeTwoEdges(t *testing.T) {
	// i-k edge cost 3, k-j edge cost 2, M=10: composing should require an
	// initial charge of at least 5 to arrive with any charge at j.
	lik := bplist.List(bp.EdgeProfile(3, 10))
	lkj := bplist.List(bp.EdgeProfile(2, 10))

	raw := bplist.Link(lik, lkj)
	got := bplist.Sort(raw)

	assert.True(t, math.IsInf(bplist.Evaluate(got, 4), -1))
	assert.Equal(t, 0.0, bplist.Evaluate(got, 5))
	assert.Equal(t, 5.0, bplist.Evaluate(got, 10))
}

func TestMergePrefersHigherProfile(t *testing.T) {
	better := bplist.List(bp.EdgeProfile(2, 10))
	worse := bplist.List(bp.EdgeProfile(5, 10))

	merged := bplist.Merge(worse, better, 10)

	for x := 0.0; x <= 10; x += 1 {
		assert.Equal(t, bplist.Evaluate(better, x), bplist.Evaluate(merged, x))
	}
}

func TestDisconnectedMergeWorkedExample(t *testing.T) {
	l1 := bplist.List{
		bp.New(0, bp.NegInf, bp.Flat),
		bp.New(5, 0, bp.Rising),
		bp.New(10, 6, bp.Rising),
		bp.New(12, 9, bp.Rising),
		bp.New(15, 12, bp.Flat),
	}
	l2 := bplist.List{
		bp.New(0, bp.NegInf, bp.Flat),
		bp.New(4, 0, bp.Rising),
		bp.New(7, 9, bp.Rising),
		bp.New(13, 15, bp.Flat),
		bp.New(15, 15, bp.Flat),
	}

	got := bplist.DisconnectedMerge(l1, 36, l2, 46, 15)

	want := bplist.List{
		bp.New(0, bp.NegInf, bp.Flat),
		bp.New(4, -46, bp.Rising),
		bp.New(5, -36, bp.Rising),
		bp.New(10, -30, bp.Rising),
		bp.New(12, -27, bp.Rising),
		bp.New(15, -24, bp.Flat),
	}

	assert.Equal(t, want, got)
}

func xs(l bplist.List) []float64 {
	out := make([]float64, len(l))
	for i, p := range l {
		out[i] = p.X
	}
	return out
}
