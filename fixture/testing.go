package fixture

import "github.com/evroute/evroute/core"

// testingArea is the bounding box the fixture's vertices are laid out
// in: [lat0, lon0, lat1, lon1], a small patch of central Berlin.
var testingArea = [4]float64{52.51, 13.373, 52.52, 13.401}

// testingVertexGrid places each of the ten fixture vertices at a
// (latSteps, lonSteps) offset into testingArea, divided into 5 latitude
// steps and 6 longitude steps. Elevation is 0 for every vertex; the
// positions do not feed the edge costs below, which are literals.
var testingVertexGrid = [10][2]int{
	0: {2, 2},
	1: {3, 1},
	2: {4, 3},
	3: {3, 2},
	4: {0, 1},
	5: {1, 5},
	6: {1, 2},
	7: {3, 5},
	8: {2, 4},
	9: {0, 0},
}

// testingEdges holds the fixture's 18 directed edges among the ten
// vertices, with costs fixed at literal unit-ish values in {1,2,3,5}
// rather than recomputed from Cost, so expected results stay stable.
var testingEdges = [18]struct {
	from, to core.VertexID
	cost     float64
}{
	{2, 3, 1},
	{1, 3, 2},
	{0, 3, 2},
	{3, 1, 2},
	{3, 0, 2},
	{1, 0, 5},
	{8, 0, 3},
	{0, 8, 3},
	{7, 8, 5},
	{8, 7, 5},
	{8, 5, 5},
	{5, 8, 5},
	{0, 6, 1},
	{6, 0, 1},
	{4, 6, 2},
	{6, 4, 2},
	{9, 4, 1},
	{4, 9, 1},
}

// Testing10 builds the built-in ten-vertex, eighteen-edge graph behind
// the testing configuration flag: a fixed-layout fixture within
// testingArea, every vertex flat (elevation 0), edge costs taken from
// testingEdges verbatim.
func Testing10() (*core.Graph, error) {
	lat0, lon0 := testingArea[0], testingArea[1]
	dlat := (testingArea[2] - testingArea[0]) / 5
	dlon := (testingArea[3] - testingArea[1]) / 6

	b := core.NewBuilder()
	for i, steps := range testingVertexGrid {
		lat := lat0 + float64(steps[0])*dlat
		lon := lon0 + float64(steps[1])*dlon
		if err := b.AddVertex(core.VertexID(i), lat, lon, 0); err != nil {
			return nil, err
		}
	}
	for i, e := range testingEdges {
		if err := b.AddEdge(core.EdgeID(i), e.from, e.to, e.cost); err != nil {
			return nil, err
		}
	}
	return b.Freeze(), nil
}
