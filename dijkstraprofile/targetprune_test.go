package dijkstraprofile

import (
	"testing"

	"github.com/evroute/evroute/bp"
	"github.com/evroute/evroute/bplist"
	"github.com/stretchr/testify/assert"
)

func TestTargetPruneWorkedExample(t *testing.T) {
	fT := bplist.List{
		bp.New(0, bp.NegInf, bp.Flat),
		bp.New(2, 0, bp.Rising),
		bp.New(3, 1, bp.Flat),
		bp.New(4, 1, bp.Rising),
		bp.New(5, 2, bp.Flat),
	}
	fV := bplist.List{
		bp.New(0, bp.NegInf, bp.Flat),
		bp.New(3, 0, bp.Rising),
		bp.New(4, 1, bp.Flat),
		bp.New(5, 1, bp.Flat),
	}

	assert.True(t, targetPrune(fV, fT, 5))
}

func TestTargetPruneNeverFiresAgainstUnreachableTarget(t *testing.T) {
	// The target's profile starts out as the unreachable sentinel for
	// every vertex but the source; b_t_min is undefined in that state,
	// so pruning must never trigger, or the search would stall on its
	// very first pop.
	const m = 10.0
	fT := bplist.List(bp.Unreachable(m))
	fV := bplist.List(bp.Identity(m))

	assert.False(t, targetPrune(fV, fT, m))
}

func TestTargetPruneNeverFiresWhenCandidateUnreachable(t *testing.T) {
	const m = 10.0
	fT := bplist.List(bp.Identity(m))
	fV := bplist.List(bp.Unreachable(m))

	assert.False(t, targetPrune(fV, fT, m))
}
