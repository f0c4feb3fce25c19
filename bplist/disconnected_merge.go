package bplist

import "github.com/evroute/evroute/bp"

// DisconnectedMerge splices a via-station detour into a running profile.
// lPrefix is a profile from i to a station (or any intermediate node),
// cSeg is the scalar cost of completing the trip from there to j (a
// station-to-station hop plus the final leg, already reduced to a single
// number by the caller), lSuffix is the profile accumulated so far for
// i->j, and cRef is the scalar cost already baked into lSuffix (zero for
// a plain accumulator). Both profiles are shifted down by their
// respective scalar cost — a higher cost can only ever reduce the final
// charge available at j — then merged and canonicalized.
func DisconnectedMerge(lPrefix List, cSeg float64, lSuffix List, cRef float64, m float64) List {
	shiftedPrefix := shiftCharge(lPrefix, cSeg)
	shiftedSuffix := shiftCharge(lSuffix, cRef)
	return Merge(shiftedSuffix, shiftedPrefix, m)
}

func shiftCharge(l List, c float64) List {
	out := make(List, len(l))
	for i, p := range l {
		out[i] = bp.New(p.X, p.Y-c, p.S)
	}
	return out
}
