package core

import "errors"

// Sentinel errors for core graph construction and lookup.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrDuplicateVertex indicates a vertex ID was registered twice.
	ErrDuplicateVertex = errors.New("core: duplicate vertex id")

	// ErrDuplicateEdge indicates an edge ID was registered twice.
	ErrDuplicateEdge = errors.New("core: duplicate edge id")
)

// VertexID uniquely identifies a Vertex within its Graph. It is opaque: the
// only meaningful operations are equality and using it as a map key.
type VertexID int64

// EdgeID uniquely identifies an Edge within its Graph.
type EdgeID int64

// Vertex is a node in the road network: an identity, a geographic position,
// and an elevation. Elevation feeds the potential (see package potential);
// lat/lon are carried through for the cost function in package fixture but
// are otherwise opaque to the SoC-profile algorithms.
type Vertex struct {
	ID   VertexID
	Lat  float64
	Lon  float64
	Elev float64
}

// Edge is a directed connection u->v with a signed cost. Cost > 0 consumes
// charge; cost < 0 recuperates charge (downhill).
type Edge struct {
	ID   EdgeID
	From VertexID
	To   VertexID
	Cost float64
}
