// Package ops provides scalar matrix operations for the matrix package.
// floyd_warshal.go implements a Floyd-Warshall all-pairs shortest-path
// closure that threads a predecessor table through the same triple loop
// it relaxes costs in, rather than reconstructing one afterwards: csfw
// needs both the closed cost matrix and a predecessor chain to splice
// station detours into its final profiles, and recovering that chain
// from the closed matrix alone means re-deriving exactly the relaxation
// decisions this loop already made.
package ops

import (
	"fmt"
	"math"

	"github.com/evroute/evroute/matrix"
)

// noPredecessor marks an (i,j) cell with no recorded predecessor: either
// i equals j, or j is not (yet, or ever) reachable from i.
const noPredecessor = -1

// FloydWarshall closes m in place to all-pairs shortest distances and
// returns pred, a predecessor table sized to m: pred[i][j] is the
// vertex immediately preceding j on the current cheapest i->j path.
// m must be square, with +Inf marking an absent direct edge; returns
// ErrDimensionMismatch otherwise.
//
// pred starts at i for every pair with a finite direct edge and -1
// elsewhere, then whenever a detour through k strictly improves i->j,
// pred[i][j] is repointed to pred[k][j]: the last hop into j is
// whatever hop the cheaper k->j path used. Walking pred backwards from
// j therefore reconstructs the whole chain without a second pass over
// the closed matrix.
//
// Complexity: O(n^3) time, O(n^2) extra memory for pred.
func FloydWarshall(m matrix.Matrix) ([][]int, error) {
	n := m.Rows()
	if n != m.Cols() {
		return nil, fmt.Errorf(
			"FloydWarshall: non-square matrix %dx%d: %w",
			m.Rows(), m.Cols(), matrix.ErrDimensionMismatch,
		)
	}

	pred, err := seedPredecessors(m, n)
	if err != nil {
		return nil, err
	}

	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			dik, err := m.At(i, k)
			if err != nil {
				return nil, fmt.Errorf("FloydWarshall: At(%d,%d): %w", i, k, err)
			}
			if math.IsInf(dik, 1) {
				continue // no path reaches k from i; nothing through k can help
			}
			for j := 0; j < n; j++ {
				dkj, err := m.At(k, j)
				if err != nil {
					return nil, fmt.Errorf("FloydWarshall: At(%d,%d): %w", k, j, err)
				}
				dij, err := m.At(i, j)
				if err != nil {
					return nil, fmt.Errorf("FloydWarshall: At(%d,%d): %w", i, j, err)
				}
				if via := dik + dkj; via < dij {
					if err := m.Set(i, j, via); err != nil {
						return nil, fmt.Errorf("FloydWarshall: Set(%d,%d): %w", i, j, err)
					}
					pred[i][j] = pred[k][j]
				}
			}
		}
	}

	return pred, nil
}

// seedPredecessors builds the initial n x n predecessor table from m's
// direct edges, before any relaxation: pred[i][j] is i wherever a finite
// direct edge i->j exists, noPredecessor everywhere else (including the
// diagonal, which has no predecessor by definition).
func seedPredecessors(m matrix.Matrix, n int) ([][]int, error) {
	pred := make([][]int, n)
	for i := 0; i < n; i++ {
		pred[i] = make([]int, n)
		for j := 0; j < n; j++ {
			if i == j {
				pred[i][j] = noPredecessor
				continue
			}
			dij, err := m.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("FloydWarshall: At(%d,%d): %w", i, j, err)
			}
			if math.IsInf(dij, 1) {
				pred[i][j] = noPredecessor
			} else {
				pred[i][j] = i
			}
		}
	}
	return pred, nil
}
