package tsp_test

import (
	"encoding/json"
	"testing"

	"github.com/katalvlaran/annealtsp/tsp"
	"github.com/stretchr/testify/require"
)

func TestNewRoute_ValidatesAndCopies(t *testing.T) {
	perm := []int{2, 0, 1}
	r, err := tsp.NewRoute(perm)
	require.NoError(t, err)

	perm[0] = 99 // caller's slice is not aliased
	mustEqualInts(t, r.Cities(), []int{2, 0, 1})

	got := r.Cities()
	got[1] = 77 // Cities hands out a copy
	require.Equal(t, 0, r.At(1))

	bad := [][]int{
		nil,
		{0, 0, 1},
		{0, 1, 3},
		{-1, 0, 1},
	}
	for _, p := range bad {
		_, err = tsp.NewRoute(p)
		mustErrIs(t, err, tsp.ErrNotPermutation)
		mustErrIs(t, err, tsp.ErrValidation)
	}
}

func TestIdentityAndString(t *testing.T) {
	r := tsp.Identity(4)
	mustEqualInts(t, r.Cities(), []int{0, 1, 2, 3})
	require.Equal(t, "[0 1 2 3 | 0]", r.String())
	require.Equal(t, "[]", tsp.Identity(0).String())
	require.NoError(t, r.Validate(4))
}

func TestRoute_EqualCycle(t *testing.T) {
	a, _ := tsp.NewRoute([]int{0, 1, 2, 3, 4})
	rot, _ := tsp.NewRoute([]int{2, 3, 4, 0, 1})
	rev, _ := tsp.NewRoute([]int{0, 4, 3, 2, 1})
	other, _ := tsp.NewRoute([]int{0, 2, 1, 3, 4})

	require.True(t, a.EqualCycle(rot))
	require.True(t, a.EqualCycle(rev))
	require.False(t, a.EqualCycle(other))
	require.False(t, a.Equal(rot))
	require.True(t, a.Equal(tsp.Identity(5)))
	require.Equal(t, 3, rot.IndexOf(0))
	require.Equal(t, -1, rot.IndexOf(9))
}

func TestRoute_JSONRoundTripValidates(t *testing.T) {
	r, _ := tsp.NewRoute([]int{1, 0, 2})
	b, err := json.Marshal(r)
	require.NoError(t, err)
	require.JSONEq(t, "[1,0,2]", string(b))

	var back tsp.Route
	require.NoError(t, json.Unmarshal(b, &back))
	require.True(t, back.Equal(r))

	err = json.Unmarshal([]byte("[0,0,2]"), &back)
	mustErrIs(t, err, tsp.ErrNotPermutation)
}
