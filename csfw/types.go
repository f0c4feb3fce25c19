package csfw

import (
	"errors"

	"github.com/evroute/evroute/core"
)

// ErrNilGraph is returned when Run is called with a nil graph.
var ErrNilGraph = errors.New("csfw: nil graph")

// ErrNonPositiveCapacity is returned when m <= 0.
var ErrNonPositiveCapacity = errors.New("csfw: capacity must be positive")

// defaultSeed feeds station sampling; given the same graph and options
// the selected stations are fully deterministic.
const defaultSeed = 234

// defaultStationFraction is the fraction of vertices sampled as stations
// when WithStationCount is not given.
const defaultStationFraction = 0.1

// options configures Run. Construct via the With* functions below.
type options struct {
	nNodes     int
	nStations  int
	seed       int64
	stationIDs []core.VertexID
}

func defaultOptions() options {
	return options{seed: defaultSeed}
}

// Option configures a Run call.
type Option func(*options)

// WithNodeCount restricts the run to the first n vertices of the graph
// in stable iteration order, the node-subset form of cs_fw. Zero (the
// default) means the full graph.
func WithNodeCount(n int) Option {
	return func(o *options) { o.nNodes = n }
}

// WithStationCount overrides the number of stations sampled (before
// dedup; the actual station count may end up smaller). Default is
// floor(0.1 * n) where n is the vertex count.
func WithStationCount(n int) Option {
	return func(o *options) { o.nStations = n }
}

// WithSeed overrides the math/rand seed used for station sampling.
// Default is 234.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// WithStationIDs bypasses sampling entirely and uses exactly these
// vertices as charging stations. Intended for tests and for callers
// that already know which vertices host chargers.
func WithStationIDs(ids []core.VertexID) Option {
	return func(o *options) {
		cp := make([]core.VertexID, len(ids))
		copy(cp, ids)
		o.stationIDs = cp
	}
}
