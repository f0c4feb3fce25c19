// Package matrix provides the scalar n x n matrix used by csfw's
// station-to-station cost graph: a plain Matrix interface, a dense
// row-major implementation, and a Floyd-Warshall routine over it.
package matrix
