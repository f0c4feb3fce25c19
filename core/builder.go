package core

import "fmt"

// Builder accumulates vertices and edges, then produces a frozen Graph.
// Construction validates eagerly and returns sentinel errors, never
// panics, and the resulting Graph is immutable. Builder itself is not
// safe for concurrent use; construction is a single-threaded, one-shot
// step.
type Builder struct {
	order    []VertexID
	vertices map[VertexID]Vertex
	edges    map[EdgeID]Edge
	outAdj   map[VertexID][]EdgeID
	inAdj    map[VertexID][]EdgeID
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		vertices: make(map[VertexID]Vertex),
		edges:    make(map[EdgeID]Edge),
		outAdj:   make(map[VertexID][]EdgeID),
		inAdj:    make(map[VertexID][]EdgeID),
	}
}

// AddVertex registers a vertex. Returns ErrDuplicateVertex if id was already
// added.
func (b *Builder) AddVertex(id VertexID, lat, lon, elev float64) error {
	if _, exists := b.vertices[id]; exists {
		return fmt.Errorf("core: vertex %d: %w", id, ErrDuplicateVertex)
	}
	b.vertices[id] = Vertex{ID: id, Lat: lat, Lon: lon, Elev: elev}
	b.order = append(b.order, id)
	return nil
}

// AddEdge registers a directed edge from -> to with the given signed cost.
// Both endpoints must already have been added via AddVertex. Returns
// ErrDuplicateEdge if id was already added, or ErrVertexNotFound if either
// endpoint is unknown.
func (b *Builder) AddEdge(id EdgeID, from, to VertexID, cost float64) error {
	if _, exists := b.edges[id]; exists {
		return fmt.Errorf("core: edge %d: %w", id, ErrDuplicateEdge)
	}
	if _, ok := b.vertices[from]; !ok {
		return fmt.Errorf("core: edge %d source %d: %w", id, from, ErrVertexNotFound)
	}
	if _, ok := b.vertices[to]; !ok {
		return fmt.Errorf("core: edge %d target %d: %w", id, to, ErrVertexNotFound)
	}
	b.edges[id] = Edge{ID: id, From: from, To: to, Cost: cost}
	b.outAdj[from] = append(b.outAdj[from], id)
	b.inAdj[to] = append(b.inAdj[to], id)
	return nil
}

// Freeze finalizes construction and returns the immutable Graph. The
// Builder remains usable afterward but any further mutation is not
// reflected in previously frozen Graphs (each Freeze takes a private copy
// of the adjacency slices).
func (b *Builder) Freeze() *Graph {
	g := &Graph{
		order:    make([]VertexID, len(b.order)),
		vertices: make(map[VertexID]Vertex, len(b.vertices)),
		edges:    make(map[EdgeID]Edge, len(b.edges)),
		outAdj:   make(map[VertexID][]EdgeID, len(b.outAdj)),
		inAdj:    make(map[VertexID][]EdgeID, len(b.inAdj)),
	}
	copy(g.order, b.order)
	for id, v := range b.vertices {
		g.vertices[id] = v
	}
	for id, e := range b.edges {
		g.edges[id] = e
	}
	for id, es := range b.outAdj {
		cp := make([]EdgeID, len(es))
		copy(cp, es)
		g.outAdj[id] = cp
	}
	for id, es := range b.inAdj {
		cp := make([]EdgeID, len(es))
		copy(cp, es)
		g.inAdj[id] = cp
	}
	return g
}
