package bplist

import (
	"fmt"
	"math"

	"github.com/evroute/evroute/bp"
)

// List is a canonical or in-progress break-point list: x strictly
// increasing once canonicalized, x[0]=0. Callers own the backing slice;
// the operations in this package never mutate a List in place, they
// return a new one.
type List []bp.BreakPoint

// Reachable reports whether any break-point of l has a non-negative final
// charge, i.e. whether some initial charge reaches the sink at all.
func (l List) Reachable() bool {
	for _, p := range l {
		if p.Y >= 0 {
			return true
		}
	}
	return false
}

// MinReachableCharge returns the smallest initial charge at which l is
// reachable, or +Inf if l is nowhere reachable. l must be x-sorted; since
// y is non-decreasing where defined (invariant I2), the first break-point
// with y>=0 gives the answer.
func (l List) MinReachableCharge() float64 {
	for _, p := range l {
		if p.Y >= 0 {
			return p.X
		}
	}
	return math.Inf(1)
}

// SearchDomain returns the index of the segment containing x: the largest
// i such that l[i].X <= x < l[i+1].X, or len(l)-1 if x equals the last
// break-point's x. Reports false if x is outside [0, l[last].X].
func SearchDomain(l List, x float64) (int, bool) {
	if len(l) == 0 {
		return 0, false
	}
	last := l[len(l)-1].X
	if x < 0 || x > last {
		return 0, false
	}
	for i := 0; i < len(l)-1; i++ {
		if l[i].X <= x && x < l[i+1].X {
			return i, true
		}
	}
	if x == last {
		return len(l) - 1, true
	}
	return 0, false
}

// SearchRange returns the index of the segment whose achievable-y range
// contains y: for a Flat segment that means y equals the segment's
// constant value; for a Rising segment it means y falls in
// [y_i, y_i + (x_{i+1}-x_i)). Reports false if no segment's range covers
// y.
func SearchRange(l List, y float64) (int, bool) {
	if len(l) == 0 || y < 0 {
		return 0, false
	}
	for i := 0; i < len(l)-1; i++ {
		if l[i].S == bp.Flat {
			if y == l[i].Y {
				return i, true
			}
			continue
		}
		if l[i].Y <= y && y < l[i].Y+(l[i+1].X-l[i].X) {
			return i, true
		}
	}
	if l[len(l)-1].Y == y {
		return len(l) - 1, true
	}
	return 0, false
}

// Evaluate returns f(x): the final charge reached from initial charge x.
// Below the domain it returns NegInf (infeasible); above it, x is a
// programmer error and Evaluate panics.
func Evaluate(l List, x float64) float64 {
	if len(l) == 0 {
		panic("bplist: evaluate: empty list")
	}
	if x < l[0].X {
		return bp.NegInf
	}
	idx, ok := SearchDomain(l, x)
	if !ok {
		panic(fmt.Sprintf("bplist: evaluate: charge %v outside domain [%v,%v]", x, l[0].X, l[len(l)-1].X))
	}
	p := l[idx]
	if p.S == bp.Flat {
		return p.Y
	}
	return x - p.X + p.Y
}

// SlopeAt returns the slope of the segment containing x. Below the domain
// it returns Flat (an out-of-range query is treated as non-improving
// rather than as an error); above it, x is a programmer error and SlopeAt
// panics.
func SlopeAt(l List, x float64) bp.Slope {
	if len(l) == 0 {
		panic("bplist: slope: empty list")
	}
	if x < l[0].X {
		return bp.Flat
	}
	idx, ok := SearchDomain(l, x)
	if !ok {
		panic(fmt.Sprintf("bplist: slope: charge %v outside domain [%v,%v]", x, l[0].X, l[len(l)-1].X))
	}
	return l[idx].S
}
