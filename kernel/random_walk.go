package kernel

import "github.com/katalvlaran/annealtsp/tsp"

// RandomWalk draws a uniformly random order of positions 1..n-1 (position 0
// fixed) and retries until the result differs from the input. The retry loop
// terminates almost surely; for n == 3 each draw succeeds with probability ½.
type RandomWalk struct{ seeded }

// NewRandomWalk returns a RandomWalk kernel with its own generator.
func NewRandomWalk(seed int64) *RandomWalk { return &RandomWalk{newSeeded(seed)} }

// Sample returns a random route with the same first city, never equal to r.
//
// Complexity: O(n) per draw.
func (k *RandomWalk) Sample(r tsp.Route) (tsp.Route, error) {
	if err := checkSample("RandomWalk", r); err != nil {
		return tsp.Route{}, err
	}
	var (
		n   = r.Len()
		pos = make([]int, n-1)
		out = make([]int, n)
		i   int
	)
	for i = range pos {
		pos[i] = i + 1
	}
	out[0] = r.At(0)
	for {
		tsp.ShuffleInPlace(pos, k.rng)
		for i = range pos {
			out[i+1] = r.At(pos[i])
		}
		if !tsp.Adopt(out).Equal(r) {
			return tsp.Adopt(out), nil
		}
	}
}
