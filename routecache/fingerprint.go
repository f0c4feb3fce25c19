package routecache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"

	"github.com/evroute/evroute/core"
)

// GraphFingerprint computes a deterministic hash of g's topology and
// costs: vertices and edges are sorted into a canonical byte string
// before hashing, so the fingerprint is independent of map iteration
// order.
func GraphFingerprint(g *core.Graph) string {
	if g == nil {
		return ""
	}

	ids := g.VertexIDs()
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var buf []byte
	for _, id := range ids {
		v, _ := g.Vertex(id)
		buf = append(buf, fmt.Sprintf("v:%d:%.6f;", id, v.Elev)...)
	}

	edges := g.Edges()
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}
		return edges[i].To < edges[j].To
	})
	for _, e := range edges {
		buf = append(buf, fmt.Sprintf("e:%d:%d:%.6f;", e.From, e.To, e.Cost)...)
	}

	sum := sha256.Sum256(buf)
	return hex.EncodeToString(sum[:16])
}

// BuildKey composes a cache key for one of the core's public operations
// run against a fingerprinted graph with capacity m and RNG seed.
func BuildKey(operation, graphFingerprint string, m float64, seed int64) string {
	return fmt.Sprintf("evroute:%s:%s:m=%.3f:seed=%d", operation, graphFingerprint, m, seed)
}

// BuildPairKey composes a cache key for a single source/target pair,
// used by dijkstra_profile (the other operations are all-pairs and use
// BuildKey alone).
func BuildPairKey(operation, graphFingerprint string, m float64, seed int64, source, target core.VertexID) string {
	return fmt.Sprintf("%s:s=%d:t=%d", BuildKey(operation, graphFingerprint, m, seed), source, target)
}
