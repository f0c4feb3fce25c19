package bp_test

import (
	"math"
	"testing"

	"github.com/evroute/evroute/bp"
	"github.com/stretchr/testify/assert"
)

func TestEdgeProfilePositiveCost(t *testing.T) {
	// c=3, M=10 -> [(0,-inf,0),(3,0,1),(10,7,0)]
	got := bp.EdgeProfile(3, 10)
	want := []bp.BreakPoint{
		bp.New(0, bp.NegInf, bp.Flat),
		bp.New(3, 0, bp.Rising),
		bp.New(10, 7, bp.Flat),
	}
	assert.Equal(t, want, got)
}

func TestEdgeProfileNegativeCost(t *testing.T) {
	// c=-4, M=10 -> [(0,4,1),(6,10,0),(10,10,0)]
	got := bp.EdgeProfile(-4, 10)
	want := []bp.BreakPoint{
		bp.New(0, 4, bp.Rising),
		bp.New(6, 10, bp.Flat),
		bp.New(10, 10, bp.Flat),
	}
	assert.Equal(t, want, got)
}

func TestEdgeProfileZeroCost(t *testing.T) {
	got := bp.EdgeProfile(0, 10)
	assert.Equal(t, 0.0, got[1].X)
	assert.Equal(t, 0.0, got[1].Y)
}

func TestIdentityAndUnreachable(t *testing.T) {
	id := bp.Identity(5)
	assert.Equal(t, 0.0, id[0].X)
	assert.Equal(t, 5.0, id[1].Y)

	un := bp.Unreachable(5)
	assert.True(t, math.IsInf(un[0].Y, -1))
	assert.True(t, math.IsInf(un[1].Y, -1))
}
