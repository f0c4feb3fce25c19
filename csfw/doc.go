// Package csfw implements charging-station-aware Floyd-Warshall: a
// three-phase state machine that first runs the plain profile
// Floyd-Warshall (package fwprofile), then samples a subset of vertices
// as charging stations and closes a scalar min-cost graph over the full
// node set, then lifts the station-to-station detours back into
// node-to-node profiles via bplist.DisconnectedMerge.
//
// Station sampling uses a seeded math/rand source (default seed 234),
// so the same graph and options always select the same stations.
package csfw
