package kernel

import "github.com/katalvlaran/annealtsp/tsp"

// Insertion removes the city at position i and re-inserts it at position j of
// the shortened sequence, so the moved city ends up at index j of the result.
//
// e.g. for [0 1 2 3 4 5 6 7 8 9]:
//
//	i=3, j=7 → [0 1 2 4 5 6 7 3 8 9]
//	i=7, j=3 → [0 1 2 7 3 4 5 6 8 9]
type Insertion struct{ seeded }

// NewInsertion returns an Insertion kernel with its own generator.
func NewInsertion(seed int64) *Insertion { return &Insertion{newSeeded(seed)} }

// Sample moves one city between two distinct positions drawn from [1, n).
func (k *Insertion) Sample(r tsp.Route) (tsp.Route, error) {
	i, j, err := k.drawPair("Insertion", r)
	if err != nil {
		return tsp.Route{}, err
	}

	return k.SampleAt(r, i, j)
}

// SampleAt performs the remove-at-i, insert-at-j move on a copy of r.
// j indexes the post-removal sequence (equivalently, the final position of
// the moved city). i == j yields a copy.
//
// Complexity: O(n).
func (k *Insertion) SampleAt(r tsp.Route, i, j int) (tsp.Route, error) {
	if err := checkPositions("Insertion", r, i, j); err != nil {
		return tsp.Route{}, err
	}
	out := r.Cities()
	moved := out[i]
	switch {
	case i < j:
		copy(out[i:j], out[i+1:j+1])
	case i > j:
		copy(out[j+1:i+1], out[j:i])
	}
	out[j] = moved

	return tsp.Adopt(out), nil
}
