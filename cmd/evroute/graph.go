package main

import (
	"github.com/evroute/evroute/core"
	"github.com/evroute/evroute/fixture"
)

func loadTestingFixture() (*core.Graph, error) {
	return fixture.Testing10()
}

func loadRandomFixture(n int, seed int64) (*core.Graph, error) {
	return fixture.RandomSparse(n, fixture.WithRandomSparseSeed(seed))
}
