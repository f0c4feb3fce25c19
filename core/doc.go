// Package core defines the frozen directed graph consumed by the SoC-profile
// algorithms: Vertex (with elevation), Edge (with signed cost), and Graph
// (adjacency in both directions, read-only once built).
//
// A Graph is constructed through a Builder, then frozen with Freeze. After
// Freeze, vertices and edges are immutable: there is no AddVertex/AddEdge
// on the frozen type, since the SoC profile algorithms never mutate the
// graph they search.
package core
