package bplist

import (
	"math"

	"github.com/evroute/evroute/bp"
)

// Link composes two profiles along a shared midpoint k: lIK is the
// profile from i to k, lKJ is the profile from k to j, and the result is
// the (unsorted, possibly duplicated) raw profile from i to j. Callers
// sort the result with Sort before using it ("link then sort then
// merge").
//
// Two passes build the raw list:
//
//  1. For each break-point (x_u, y_u, s_u) of lIK, project y_u through
//     lKJ. If lKJ is infeasible at y_u the result is (x_u, -inf, Flat);
//     otherwise it is (x_u, f(lKJ,y_u), s') where s' is Rising only if
//     both s_u and lKJ's segment at y_u are Rising.
//  2. For each break-point (x_d, y_d, s_d) of lKJ, project x_d back
//     through lIK via the segment whose achievable range contains x_d.
//     A Flat segment there simply carries y_d forward at that segment's
//     x; a Rising segment maps x_d to the initial charge that would
//     reach it.
func Link(lIK, lKJ List) List {
	out := make(List, 0, len(lIK)+len(lKJ))

	for _, u := range lIK {
		chargeAtJ := Evaluate(lKJ, u.Y)
		if math.IsInf(chargeAtJ, -1) {
			out = append(out, bp.New(u.X, chargeAtJ, bp.Flat))
			continue
		}
		if u.Y < 0 {
			continue
		}
		idx, ok := SearchDomain(lKJ, u.Y)
		if !ok {
			continue
		}
		s := bp.Flat
		if u.S == bp.Rising && lKJ[idx].S == bp.Rising {
			s = bp.Rising
		}
		out = append(out, bp.New(u.X, chargeAtJ, s))
	}

	last := lIK[len(lIK)-1].X
	for _, d := range lKJ {
		idx, ok := SearchRange(lIK, d.X)
		if !ok {
			continue
		}
		seg := lIK[idx]
		if seg.S == bp.Flat {
			out = append(out, bp.New(seg.X, d.Y, bp.Flat))
			continue
		}
		xNew := seg.X + (d.X - seg.Y)
		if xNew > 0 && xNew < last {
			s := bp.Flat
			if d.S == bp.Rising {
				s = bp.Rising
			}
			out = append(out, bp.New(xNew, d.Y, s))
		}
	}

	return out
}
