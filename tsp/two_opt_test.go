// Package tsp_test exercises the 2-opt polish via the public API.
package tsp_test

import (
	"testing"

	"github.com/katalvlaran/annealtsp/tsp"
	"github.com/stretchr/testify/require"
)

// TestTwoOpt_UntanglesHexagon starts from a crossing order on a convex
// hexagon and expects the polygon boundary.
func TestTwoOpt_UntanglesHexagon(t *testing.T) {
	const n = 6
	d := euclid(t, circle(n))
	tangled, err := tsp.NewRoute([]int{0, 3, 1, 4, 2, 5})
	require.NoError(t, err)

	startCost, err := tsp.TourCost(d, tangled)
	require.NoError(t, err)

	Repeat(t, 3, func(t *testing.T) {
		got, cost, err := tsp.TwoOpt(d, tangled, 1e-12, 0)
		require.NoError(t, err)
		require.NoError(t, got.Validate(n))
		require.Equal(t, 0, got.At(0), "position 0 stays fixed")
		require.True(t, got.EqualCycle(tsp.Identity(n)), "got %v", got)
		require.Less(t, cost, startCost)
	})

	// Input untouched.
	mustEqualInts(t, tangled.Cities(), []int{0, 3, 1, 4, 2, 5})
}

func TestTwoOpt_MaxItersBoundsWork(t *testing.T) {
	d := euclid(t, circle(8))
	tangled, _ := tsp.NewRoute([]int{0, 4, 1, 5, 2, 6, 3, 7})

	one, c1, err := tsp.TwoOpt(d, tangled, 1e-12, 1)
	require.NoError(t, err)
	full, cf, err := tsp.TwoOpt(d, tangled, 1e-12, 0)
	require.NoError(t, err)

	require.NoError(t, one.Validate(8))
	require.LessOrEqual(t, cf, c1)
	require.True(t, full.EqualCycle(tsp.Identity(8)))
}

func TestTwoOpt_Errors(t *testing.T) {
	d := euclid(t, circle(5))
	_, _, err := tsp.TwoOpt(d, tsp.Identity(4), 0, 0)
	mustErrIs(t, err, tsp.ErrNotPermutation)

	_, _, err = tsp.TwoOpt(nil, tsp.Identity(4), 0, 0)
	mustErrIs(t, err, tsp.ErrInvalidInput)
}
