package fwprofile

import (
	"github.com/evroute/evroute/bp"
	"github.com/evroute/evroute/bplist"
	"github.com/evroute/evroute/core"
)

// Matrix is an n x n array of SoC profiles, indexed by position in the
// graph's VertexIDs() order (see Index).
type Matrix [][]bplist.List

// Index maps a graph's vertices to their row/column position in a
// Matrix, since core.VertexID values need not be contiguous from 0.
type Index map[core.VertexID]int

// NewIndex builds the VertexID -> matrix-position mapping for g, in the
// same order as g.VertexIDs().
func NewIndex(g *core.Graph) Index {
	ids := g.VertexIDs()
	idx := make(Index, len(ids))
	for i, id := range ids {
		idx[id] = i
	}
	return idx
}

// NewMatrix builds the initial n x n profile matrix over all of g's
// vertices with battery capacity m: the diagonal holds the identity
// profile, a direct edge u->v holds that edge's profile, and everything
// else holds the unreachable sentinel profile.
func NewMatrix(g *core.Graph, m float64) (Matrix, Index) {
	return NewMatrixN(g, m, 0)
}

// NewMatrixN is NewMatrix restricted to the first n vertices of g in
// stable iteration order, the node-subset form of the all-pairs
// operations. n <= 0 or n past the vertex count means the full graph.
func NewMatrixN(g *core.Graph, m float64, n int) (Matrix, Index) {
	ids := g.VertexIDs()
	if n > 0 && n < len(ids) {
		ids = ids[:n]
	}
	idx := make(Index, len(ids))
	for i, id := range ids {
		idx[id] = i
	}

	size := len(ids)
	mat := make(Matrix, size)
	for i := range mat {
		mat[i] = make([]bplist.List, size)
	}

	for i, u := range ids {
		for j, v := range ids {
			switch {
			case i == j:
				mat[i][j] = bplist.List(bp.Identity(m))
			default:
				if e, ok := g.Connected(u, v); ok {
					mat[i][j] = bplist.List(bp.EdgeProfile(e.Cost, m))
				} else {
					mat[i][j] = bplist.List(bp.Unreachable(m))
				}
			}
		}
	}
	return mat, idx
}

// Clone returns a deep copy of m: each cell's break-point slice is
// copied, so mutating the clone never affects m.
func (m Matrix) Clone() Matrix {
	out := make(Matrix, len(m))
	for i, row := range m {
		out[i] = make([]bplist.List, len(row))
		for j, cell := range row {
			cellCopy := make(bplist.List, len(cell))
			copy(cellCopy, cell)
			out[i][j] = cellCopy
		}
	}
	return out
}
