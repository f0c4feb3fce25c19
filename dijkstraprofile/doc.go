// Package dijkstraprofile computes a single-source-single-target
// State-of-Charge profile over a frozen core.Graph, generalizing
// Dijkstra's shortest-path algorithm with the structure of a scalar
// search: a functional-option constructor, a decrease-key-by-replacement
// min-heap, and a runner holding per-execution state.
//
// Where scalar Dijkstra keys its heap by a running distance, this search
// keys it by pi(v) + the cheapest not-yet-absorbed break-point of the
// candidate profile fragment proposed for v, with pi the elevation-based
// potential from package potential. Target pruning discards a relaxation
// into a vertex whose known profile is already dominated by the
// target's.
package dijkstraprofile
