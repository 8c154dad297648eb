// Package tsp - cost utilities.
//
// This file provides the cyclic tour-length function used once per annealing
// iteration. It is allocation-free and side-effect free.
//
// Design:
//   - Index checks on every edge: a Route from a foreign kernel may be wrong.
//   - Stable summation: rounded to 1e-9 to avoid cross-platform FP noise.
//
// Complexity:
//   - O(n) time, O(1) extra space.
package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/annealtsp/matrix"
)

// roundScale controls final cost stabilization precision (1e-9).
const roundScale = 1e9

// TourCost returns Σ d[r[k], r[(k+1) mod n]] for k in 0..n-1, rounded to
// the nearest 1e-9. Tours whose exact lengths differ by less than 5e-10 may
// therefore report the same cost; the annealer treats such moves as ties and
// always accepts them.
//
// Contract:
//   - r.Len() == d.N(); every city index within [0, n).
//   - Returns ErrInvalidInput otherwise (duplicates are not detected here;
//     use Route.Validate when the producer is untrusted).
//
// Complexity: O(n).
func TourCost(d *matrix.Distance, r Route) (float64, error) {
	if d == nil {
		return 0, fmt.Errorf("TourCost: nil distance: %w", ErrInvalidInput)
	}
	n := d.N()
	if r.Len() != n {
		return 0, fmt.Errorf("TourCost(len=%d,n=%d): %w", r.Len(), n, ErrInvalidInput)
	}

	var (
		sum  float64
		k    int
		u, v int
	)
	for k = 0; k < n; k++ {
		u = r.cities[k]
		v = r.cities[(k+1)%n]
		if u < 0 || u >= n || v < 0 || v >= n {
			return 0, fmt.Errorf("TourCost(pos=%d): %w", k, ErrInvalidInput)
		}
		sum += d.At(u, v)
	}

	return round1e9(sum), nil
}

// round1e9 returns x rounded to 1e-9 absolute precision.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
