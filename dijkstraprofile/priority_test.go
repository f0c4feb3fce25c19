package dijkstraprofile

import (
	"math"
	"testing"

	"github.com/evroute/evroute/bp"
	"github.com/evroute/evroute/bplist"
	"github.com/stretchr/testify/assert"
)

func TestNewBreakPointsIsSetDifference(t *testing.T) {
	old := bplist.List{
		bp.New(0, bp.NegInf, bp.Flat),
		bp.New(5, 0, bp.Rising),
		bp.New(10, 5, bp.Flat),
	}
	merged := bplist.List{
		bp.New(0, bp.NegInf, bp.Flat),
		bp.New(3, 0, bp.Rising),
		bp.New(5, 2, bp.Rising),
		bp.New(10, 7, bp.Flat),
	}

	got := newBreakPoints(old, merged)

	assert.Equal(t, bplist.List{
		bp.New(3, 0, bp.Rising),
		bp.New(5, 2, bp.Rising),
		bp.New(10, 7, bp.Flat),
	}, got)
}

func TestPriorityKeyLooksOnlyAtNewBreakPoints(t *testing.T) {
	// old already carries a cheap fragment (x-y = 2) that merged keeps
	// untouched, plus one new, more expensive fragment (x-y = 9). Keying
	// off the whole merged profile would report the cheap, already-known
	// fragment's cost; the key must come from the new fragment only.
	old := bplist.List{
		bp.New(0, bp.NegInf, bp.Flat),
		bp.New(2, 0, bp.Rising),
	}
	merged := bplist.List{
		bp.New(0, bp.NegInf, bp.Flat),
		bp.New(2, 0, bp.Rising),
		bp.New(9, 0, bp.Rising),
	}

	fresh := newBreakPoints(old, merged)
	assert.Equal(t, bplist.List{bp.New(9, 0, bp.Rising)}, fresh)
	assert.Equal(t, 9.0, minConsumption(fresh))
	assert.Equal(t, 2.0, minConsumption(merged), "whole-profile min stays dominated by the untouched old fragment")
}

func TestNewBreakPointsEmptyWhenIdentical(t *testing.T) {
	l := bplist.List(bp.Identity(10))
	got := newBreakPoints(l, l)
	assert.Empty(t, got)
	assert.True(t, math.IsInf(minConsumption(got), 1))
}
