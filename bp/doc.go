// Package bp defines the break-point: a single record (x, y, slope) of a
// piecewise-linear State-of-Charge profile, and the edge-profile
// constructor that maps an edge's signed cost and the battery capacity M
// to its 2- or 3-break-point profile.
//
// A break-point is a value type, not a node in a linked list; its lifetime
// is that of the slice (bplist.List) it lives in. See package bplist for
// the list algebra (sort/link/merge/evaluate) built on top of it.
package bp
