// Package evroute computes energy-feasible routes for electric vehicles on
// a road network whose edges carry signed energy costs: positive cost
// consumes charge, negative cost (downhill recuperation) restores it, and
// the battery is bounded by a capacity M.
//
// The central object is the State-of-Charge profile (SoC profile): a
// piecewise-linear function f: [0,M] -> [-Inf,M] mapping every possible
// initial charge at a source node to the optimal final charge at a target
// node. The profile is represented as a break-point list (package bp for
// the record type, package bplist for its sort/link/merge algebra) and
// consumed by two shortest-profile algorithms:
//
//	dijkstraprofile — single-source-single-target profile search with
//	                  consistent elevation-based potentials (package
//	                  potential) and target pruning.
//	fwprofile       — all-pairs profile matrix via a profile-variant of
//	                  Floyd-Warshall.
//	csfw            — the charging-station extension of fwprofile: selects
//	                  a sample of stations, solves a scalar station-to-
//	                  station shortest-path problem (package matrix/ops),
//	                  and lifts the result into a station-aware node-to-
//	                  node profile matrix.
//
// Graphs are represented by the immutable package core, built once via
// core.Builder and frozen; road-network import, elevation lookup, and any
// CLI/visualization wrapping are external collaborators. Package fixture
// assembles deterministic core.Graph values for tests and the CLI,
// including the ten-vertex charging-station fixture. cmd/evroute is a thin
// CLI over the four public operations; package config loads its settings,
// package telemetry gives it structured logs and metrics, and package
// routecache lets repeated queries against the same graph skip
// recomputation.
package evroute
