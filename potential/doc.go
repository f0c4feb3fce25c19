// Package potential computes the elevation-based consistent potential used
// to reweight the Dijkstra profile search.
//
// The potential of a vertex is alpha times its elevation, where alpha is a
// single graph-wide constant in {1, 2} used for an A*-style reweighting.
// alpha is derived from the cost-to-elevation-change ratio of every uphill
// and downhill edge in the graph; see Alpha for the rule and for the
// unproven fallback case.
package potential
