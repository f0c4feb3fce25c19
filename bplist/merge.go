package bplist

import (
	"math"

	"github.com/evroute/evroute/bp"
)

// Merge computes the point-wise maximum of lOld and lNew — "old" is the
// profile already on file (e.g. a running accumulator), "new" is the
// candidate being folded in — and canonicalizes the result (collinear
// break-points removed, per I5). M is the battery capacity: a detected
// crossing point is only inserted if it falls strictly inside (0, M).
//
// The two lists are walked together by ascending x, one event at a time.
// At each event the winner (larger y, ties broken toward the larger
// slope) is appended; if the sign of (new - old) just flipped, the two
// functions crossed between the previous event and this one and a linear
// interpolation of that crossing is inserted just before the point
// appended this step.
func Merge(lOld, lNew List, m float64) List {
	n1, n2 := len(lOld), len(lNew)
	i, j := 0, 0

	merged := make(List, 0, n1+n2)

	var dfOld, xOld, fOld float64
	var sOld bp.Slope

	for i < n1 || j < n2 {
		x1 := math.Inf(1)
		if i < n1 {
			x1 = lOld[i].X
		}
		x2 := math.Inf(1)
		if j < n2 {
			x2 = lNew[j].X
		}

		var x, fOldAt, fNewAt float64
		var sOldAt, sNewAt bp.Slope
		var di, dj int

		switch {
		case x1 < x2:
			x = x1
			fOldAt, sOldAt = lOld[i].Y, lOld[i].S
			fNewAt, sNewAt = Evaluate(lNew, x), SlopeAt(lNew, x)
			di, dj = 1, 0
			appendWinner(&merged, lOld[i], bp.New(x, fNewAt, sNewAt), fOldAt, fNewAt, sOldAt, sNewAt)

		case x2 < x1:
			x = x2
			fOldAt, sOldAt = Evaluate(lOld, x), SlopeAt(lOld, x)
			fNewAt, sNewAt = lNew[j].Y, lNew[j].S
			di, dj = 0, 1
			appendWinner(&merged, bp.New(x, fOldAt, sOldAt), lNew[j], fOldAt, fNewAt, sOldAt, sNewAt)

		default:
			x = x1
			fOldAt, sOldAt = lOld[i].Y, lOld[i].S
			fNewAt, sNewAt = lNew[j].Y, lNew[j].S
			di, dj = 1, 1
			appendWinner(&merged, lOld[i], lNew[j], fOldAt, fNewAt, sOldAt, sNewAt)
		}

		df := fNewAt - fOldAt

		if df*dfOld < 0 {
			xCross := xOld + dfOld
			fCross := fOld + float64(sOld)*dfOld
			if xCross > 0 && xCross < m && fCross < m {
				insertBeforeLast(&merged, bp.New(xCross, fCross, sOld))
			}
		}

		i += di
		j += dj

		last := merged[len(merged)-1]
		dfOld, xOld, fOld, sOld = df, last.X, last.Y, last.S
	}

	return RemoveRedundant(merged, DefaultEpsilon)
}

func appendWinner(merged *List, oldCand, newCand bp.BreakPoint, fOld, fNew float64, sOld, sNew bp.Slope) {
	if fOld != fNew {
		if fOld > fNew {
			*merged = append(*merged, oldCand)
		} else {
			*merged = append(*merged, newCand)
		}
		return
	}
	if sOld > sNew {
		*merged = append(*merged, oldCand)
		return
	}
	*merged = append(*merged, newCand)
}

// insertBeforeLast inserts p immediately before the current last element
// of *l, matching Python's list.insert(-1, p).
func insertBeforeLast(l *List, p bp.BreakPoint) {
	s := *l
	idx := len(s) - 1
	s = append(s, bp.BreakPoint{})
	copy(s[idx+1:], s[idx:])
	s[idx] = p
	*l = s
}
