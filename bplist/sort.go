package bplist

import (
	"math"
	"sort"

	"github.com/evroute/evroute/bp"
	"gonum.org/v1/gonum/floats/scalar"
)

// DefaultEpsilon is the absolute tolerance used by RemoveRedundant to
// decide whether a break-point lies on the line through its predecessor.
// Either three-decimal rounding or an epsilon comparison is acceptable
// here; gonum's floats/scalar gives the latter directly, so that is what
// is used.
const DefaultEpsilon = 1e-9

// Sort canonicalizes a raw break-point list into strictly-increasing-x
// form: break-points sharing an x are collapsed to one, keeping the
// larger y (a later arrival can never be worse), and breaking a y-tie in
// favor of Rising over Flat, which preserves feasibility of later
// composition. The result is sorted by x but not collinearity-reduced;
// see RemoveRedundant for that pass, which Merge and DisconnectedMerge
// apply on their own output.
func Sort(l List) List {
	if len(l) < 2 {
		out := make(List, len(l))
		copy(out, l)
		return out
	}

	dedup := make(List, 0, len(l))
	dedup = append(dedup, l[0])
	for _, cand := range l[1:] {
		matched := false
		for i := range dedup {
			if dedup[i].X != cand.X {
				continue
			}
			matched = true
			if cand.Y > dedup[i].Y || (cand.Y == dedup[i].Y && cand.S == bp.Rising && dedup[i].S == bp.Flat) {
				dedup[i] = cand
			}
			break
		}
		if !matched {
			dedup = append(dedup, cand)
		}
	}

	sort.Slice(dedup, func(i, j int) bool { return dedup[i].X < dedup[j].X })
	return dedup
}

// RemoveRedundant drops any break-point that lies on the line extended
// from its kept predecessor at the same slope, restoring canonical form
// after an operation like Merge or DisconnectedMerge has produced a
// list that may contain such redundancies. eps is an absolute tolerance;
// DefaultEpsilon is appropriate for profiles built from typical road-
// network cost and battery-capacity scales.
func RemoveRedundant(l List, eps float64) List {
	if len(l) <= 2 {
		out := make(List, len(l))
		copy(out, l)
		return out
	}
	out := make(List, 1, len(l))
	out[0] = l[0]
	for i, cur := range l[1:] {
		// The final break-point anchors the domain at x = M and is never
		// removed, even when collinear.
		if i < len(l)-2 && collinear(out[len(out)-1], cur, eps) {
			continue
		}
		out = append(out, cur)
	}
	return out
}

func collinear(last, cur bp.BreakPoint, eps float64) bool {
	if last.S != cur.S {
		return false
	}
	// Two infeasible points on the same flat line; the subtraction below
	// would be NaN, so handle them directly.
	if math.IsInf(last.Y, -1) && math.IsInf(cur.Y, -1) {
		return true
	}
	return scalar.EqualWithinAbs(last.Y+float64(last.S)*(cur.X-last.X), cur.Y, eps)
}
