// Package tsp - 2-opt polish for annealed routes.
//
// TwoOpt performs deterministic first-improvement 2-opt on a cyclic route
// while keeping position 0 fixed, so it never disturbs the annealer's
// convention that the first city stays put.
//
//	Δ = w(a,c) + w(b,d) − w(a,b) − w(c,d),
//	a=R[i−1], b=R[i], c=R[k], d=R[(k+1) mod n], 1 ≤ i < k ≤ n−1.
//
// A move is applied when Δ < −eps by reversing R[i..k] in place on a private
// copy. The scan restarts after every accepted move.
//
// Complexity:
//   - One pass: O(n²) candidate checks; each accepted move costs O(k−i).
package tsp

import (
	"fmt"

	"github.com/katalvlaran/annealtsp/matrix"
)

// TwoOpt improves r until no 2-opt move beats eps or maxIters moves were
// applied (maxIters ≤ 0 ⇒ unlimited). Returns the new route and its cost.
// The input route is not modified.
func TwoOpt(d *matrix.Distance, r Route, eps float64, maxIters int) (Route, float64, error) {
	if d == nil {
		return Route{}, 0, fmt.Errorf("TwoOpt: nil distance: %w", ErrInvalidInput)
	}
	n := d.N()
	if err := r.Validate(n); err != nil {
		return Route{}, 0, err
	}
	if eps < 0 {
		eps = 0
	}
	cur := r.Cities()
	if n < 4 {
		cost, err := TourCost(d, Route{cities: cur})

		return Route{cities: cur}, cost, err
	}

	var (
		accepted   int
		improved   bool
		i, k       int
		a, b, c, e int
		delta      float64
	)
	for {
		improved = false
		for i = 1; i <= n-2 && !improved; i++ {
			for k = i + 1; k <= n-1; k++ {
				a = cur[i-1]
				b = cur[i]
				c = cur[k]
				e = cur[(k+1)%n]
				delta = (d.At(a, c) + d.At(b, e)) - (d.At(a, b) + d.At(c, e))
				if delta >= -eps {
					continue
				}
				reverseInPlace(cur, i, k)
				accepted++
				improved = true

				break
			}
		}
		if !improved || (maxIters > 0 && accepted >= maxIters) {
			break
		}
	}

	out := Route{cities: cur}
	cost, err := TourCost(d, out)
	if err != nil {
		return Route{}, 0, err
	}

	return out, cost, nil
}

// reverseInPlace reverses the inclusive segment a[i..k].
func reverseInPlace(a []int, i, k int) {
	for i < k {
		a[i], a[k] = a[k], a[i]
		i++
		k--
	}
}
