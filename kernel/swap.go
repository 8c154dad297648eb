package kernel

import "github.com/katalvlaran/annealtsp/tsp"

// Swap exchanges the cities at two positions.
//
// e.g. for [0 1 2 3 4 5 6 7 8 9] with i=3, j=7 the result is
// [0 1 2 7 4 5 6 3 8 9].
type Swap struct{ seeded }

// NewSwap returns a Swap kernel with its own generator.
func NewSwap(seed int64) *Swap { return &Swap{newSeeded(seed)} }

// Sample swaps two distinct positions drawn from [1, n).
func (k *Swap) Sample(r tsp.Route) (tsp.Route, error) {
	i, j, err := k.drawPair("Swap", r)
	if err != nil {
		return tsp.Route{}, err
	}

	return k.SampleAt(r, i, j)
}

// SampleAt swaps positions i and j of a copy of r. i == j yields a copy.
//
// Complexity: O(n).
func (k *Swap) SampleAt(r tsp.Route, i, j int) (tsp.Route, error) {
	if err := checkPositions("Swap", r, i, j); err != nil {
		return tsp.Route{}, err
	}
	out := r.Cities()
	out[i], out[j] = out[j], out[i]

	return tsp.Adopt(out), nil
}
