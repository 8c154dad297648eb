package kernel

import "github.com/katalvlaran/annealtsp/tsp"

// Reversion reverses the closed sub-range [i, j] - the 2-opt move, the most
// effective of the variants at untangling crossing edges.
//
// e.g. for [0 1 2 3 4 5 6 7 8 9] with i=3, j=7 the result is
// [0 1 2 7 6 5 4 3 8 9].
type Reversion struct{ seeded }

// NewReversion returns a Reversion kernel with its own generator.
func NewReversion(seed int64) *Reversion { return &Reversion{newSeeded(seed)} }

// Sample reverses between two distinct positions drawn from [1, n).
func (k *Reversion) Sample(r tsp.Route) (tsp.Route, error) {
	i, j, err := k.drawPair("Reversion", r)
	if err != nil {
		return tsp.Route{}, err
	}

	return k.SampleAt(r, i, j)
}

// SampleAt reverses r[min(i,j) .. max(i,j)] in a copy of r. The argument
// order does not matter; i == 0 reverses a prefix, j == n-1 a suffix.
//
// Complexity: O(n).
func (k *Reversion) SampleAt(r tsp.Route, i, j int) (tsp.Route, error) {
	if err := checkPositions("Reversion", r, i, j); err != nil {
		return tsp.Route{}, err
	}
	if i > j {
		i, j = j, i
	}
	out := r.Cities()
	for i < j {
		out[i], out[j] = out[j], out[i]
		i++
		j--
	}

	return tsp.Adopt(out), nil
}
