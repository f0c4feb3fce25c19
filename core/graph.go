package core

import (
	"fmt"
	"sort"
)

// Graph is an immutable directed graph: vertices carry elevation, edges
// carry a signed cost. It is built via Builder and frozen once; the
// SoC-profile algorithms (packages bplist, dijkstraprofile, fwprofile,
// csfw) treat it as read-only for their entire run.
type Graph struct {
	order    []VertexID // stable vertex iteration order (insertion order)
	vertices map[VertexID]Vertex
	edges    map[EdgeID]Edge
	outAdj   map[VertexID][]EdgeID
	inAdj    map[VertexID][]EdgeID
}

// VertexIDs returns all vertex IDs in stable (insertion) order.
// Complexity: O(n); the result is a fresh copy the caller may modify.
func (g *Graph) VertexIDs() []VertexID {
	out := make([]VertexID, len(g.order))
	copy(out, g.order)
	return out
}

// NumVertices returns the number of vertices in the graph.
func (g *Graph) NumVertices() int { return len(g.order) }

// Vertex looks up a vertex by ID.
func (g *Graph) Vertex(id VertexID) (Vertex, error) {
	v, ok := g.vertices[id]
	if !ok {
		return Vertex{}, fmt.Errorf("core: vertex %d: %w", id, ErrVertexNotFound)
	}
	return v, nil
}

// Edge looks up an edge by ID.
func (g *Graph) Edge(id EdgeID) (Edge, error) {
	e, ok := g.edges[id]
	if !ok {
		return Edge{}, fmt.Errorf("core: edge %d: %w", id, ErrEdgeNotFound)
	}
	return e, nil
}

// Elevation returns the elevation of vertex id.
func (g *Graph) Elevation(id VertexID) (float64, error) {
	v, err := g.Vertex(id)
	if err != nil {
		return 0, err
	}
	return v.Elev, nil
}

// Outgoing returns the edge IDs leaving vertex id, in insertion order.
func (g *Graph) Outgoing(id VertexID) ([]EdgeID, error) {
	if _, ok := g.vertices[id]; !ok {
		return nil, fmt.Errorf("core: vertex %d: %w", id, ErrVertexNotFound)
	}
	out := g.outAdj[id]
	cp := make([]EdgeID, len(out))
	copy(cp, out)
	return cp, nil
}

// Incoming returns the edge IDs entering vertex id, in insertion order.
func (g *Graph) Incoming(id VertexID) ([]EdgeID, error) {
	if _, ok := g.vertices[id]; !ok {
		return nil, fmt.Errorf("core: vertex %d: %w", id, ErrVertexNotFound)
	}
	in := g.inAdj[id]
	cp := make([]EdgeID, len(in))
	copy(cp, in)
	return cp, nil
}

// Connected reports whether there is a direct edge u->v, returning it if so.
// Complexity: O(out-degree(u)).
func (g *Graph) Connected(u, v VertexID) (Edge, bool) {
	for _, eid := range g.outAdj[u] {
		e := g.edges[eid]
		if e.To == v {
			return e, true
		}
	}
	return Edge{}, false
}

// Edges returns every edge in the graph, in ascending EdgeID order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, len(g.edges))
	for _, id := range g.edgeOrder() {
		out = append(out, g.edges[id])
	}
	return out
}

// edgeOrder recomputes a deterministic edge ID ordering (ascending) since
// edges are not separately tracked in insertion order once frozen. EdgeIDs
// are chosen by the Builder's caller, so this matches insertion order only
// when edges were added with increasing IDs.
func (g *Graph) edgeOrder() []EdgeID {
	ids := make([]EdgeID, 0, len(g.edges))
	for id := range g.edges {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
