package fwprofile

import (
	"fmt"

	"github.com/evroute/evroute/bplist"
)

// ErrDimensionMismatch is returned when mat is not square.
type ErrDimensionMismatch struct {
	Rows, Cols int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("fwprofile: non-square matrix %dx%d", e.Rows, e.Cols)
}

// Run relaxes mat in place through every intermediate vertex k, folding
// the i->k->j composition into matrix[i][j] via Merge whenever it beats
// the direct entry already on file: the same triple loop and in-place
// relax-if-better shape as a scalar Floyd-Warshall, generalized to
// break-point lists.
func Run(mat Matrix, m float64) error {
	n := len(mat)
	for _, row := range mat {
		if len(row) != n {
			return &ErrDimensionMismatch{Rows: n, Cols: len(row)}
		}
	}

	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				viaK := bplist.Sort(bplist.Link(mat[i][k], mat[k][j]))
				mat[i][j] = bplist.Merge(mat[i][j], viaK, m)
			}
		}
	}
	return nil
}

// RunWithHistory behaves like Run but returns a deep-copied snapshot of
// the matrix after each of the n relaxation rounds, in addition to the
// untouched starting matrix at index 0: a history of length n+1. Each
// round reads only the previous snapshot, so no round ever observes its
// own partial writes.
func RunWithHistory(mat Matrix, m float64) ([]Matrix, error) {
	n := len(mat)
	for _, row := range mat {
		if len(row) != n {
			return nil, &ErrDimensionMismatch{Rows: n, Cols: len(row)}
		}
	}

	history := make([]Matrix, n+1)
	history[0] = mat.Clone()

	for k := 0; k < n; k++ {
		next := history[k].Clone()
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				viaK := bplist.Sort(bplist.Link(history[k][i][k], history[k][k][j]))
				next[i][j] = bplist.Merge(history[k][i][j], viaK, m)
			}
		}
		history[k+1] = next
	}

	return history, nil
}
