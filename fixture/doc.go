// Package fixture assembles deterministic core.Graph values: a cost
// function grounded on the road-network importer's edge-cost contract,
// a seeded random sparse generator for load-test-shaped graphs, and the
// fixed ten-vertex charging-station graph used by the package csfw test
// suite and the CLI's -testing flag.
package fixture
