// Package fwprofile computes all-pairs SoC profiles with a Floyd-Warshall
// generalization: instead of relaxing scalar distances through an
// intermediate vertex k, it relaxes break-point lists — composing
// matrix[i][k] with matrix[k][j] via bplist.Link, then folding the
// result into matrix[i][j] via bplist.Merge.
//
// Same triple loop and in-place relax-if-better shape as a scalar
// Floyd-Warshall; RunWithHistory additionally snapshots the matrix after
// every relaxation round.
package fwprofile
