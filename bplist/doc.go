// Package bplist implements the break-point list algebra: the State-of-
// Charge profile representation and its three primitives — Link (function
// composition along a two-hop path), Merge (point-wise maximum of two
// profiles), and Sort (canonicalization of a raw, possibly-duplicated list
// into strictly-increasing-x form) — plus the evaluation and search helpers
// they are built from.
//
// A List is a thin []bp.BreakPoint: x[0]=0, x[last]=M, x strictly
// increasing, slopes in {Flat,Rising}, y non-decreasing where defined and
// clipped to M. Canonical form (no two consecutive collinear break-points
// under the same slope) is restored by RemoveRedundant, which Merge and
// DisconnectedMerge call internally; Sort alone only removes same-x
// duplicates and orders by x.
package bplist
