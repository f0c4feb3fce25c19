package bp

import "math"

// Slope is the right-side slope of a profile segment: Flat (0) holds the
// final charge constant across the segment; Rising (1) increases it 1:1
// with the initial charge (a 45-degree segment).
type Slope uint8

const (
	// Flat marks a horizontal segment: f(x) is constant to the right of the
	// break-point until the next one.
	Flat Slope = 0

	// Rising marks a 45-degree segment: f(x) = x - x_i + y_i to the right of
	// the break-point.
	Rising Slope = 1
)

// NegInf is the sentinel final charge denoting infeasibility: the sink is
// unreachable from this initial charge. Any IEEE-754 negative infinity
// value would do; this is the canonical one used throughout.
var NegInf = math.Inf(-1)

// BreakPoint is a single (x, y, slope) triple of a piecewise-linear SoC
// profile: x is an initial charge in [0, M], y is the final charge reached
// from x (or NegInf if infeasible), and slope describes the segment
// starting at x. It is a plain value; callers compose it into a
// bplist.List.
type BreakPoint struct {
	X float64
	Y float64
	S Slope
}

// New constructs a BreakPoint. It performs no validation: canonical-form
// invariants are enforced by bplist, not at the individual break-point
// level.
func New(x, y float64, s Slope) BreakPoint {
	return BreakPoint{X: x, Y: y, S: s}
}

// EdgeProfile computes the deterministic 2- or 3-break-point profile for an
// edge of signed cost c and battery capacity m:
//
//	c >= 0: [(0, -inf, Flat), (c, 0, Rising), (m, m-c, Flat)]
//	c <  0: [(0, -c, Rising), (m+c, m, Flat), (m, m, Flat)]
func EdgeProfile(c, m float64) []BreakPoint {
	if c < 0 {
		return []BreakPoint{
			New(0, -c, Rising),
			New(m+c, m, Flat),
			New(m, m, Flat),
		}
	}
	return []BreakPoint{
		New(0, NegInf, Flat),
		New(c, 0, Rising),
		New(m, m-c, Flat),
	}
}

// Identity returns the identity profile on [0, m]: f(x) = x for all x,
// used to seed the diagonal of a profile matrix and as the source node's
// initial profile in the Dijkstra profile search.
func Identity(m float64) []BreakPoint {
	return []BreakPoint{
		New(0, 0, Rising),
		New(m, m, Flat),
	}
}

// Unreachable returns the sentinel infeasible profile on [0, m]: no
// initial charge reaches the sink.
func Unreachable(m float64) []BreakPoint {
	return []BreakPoint{
		New(0, NegInf, Flat),
		New(m, NegInf, Flat),
	}
}
