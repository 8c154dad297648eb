package instance

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/annealtsp/matrix"
	"github.com/katalvlaran/annealtsp/tsp"
)

// maxSide bounds the grid side so the cell count fits comfortably in int64.
const maxSide = 1 << 20

var (
	// ErrGridTooSmall is returned when [lb,ub]² holds fewer than n points.
	ErrGridTooSmall = errors.New("instance: grid too small for sample")

	// ErrBadBounds is returned for ub < lb or n < 1.
	ErrBadBounds = errors.New("instance: invalid sample bounds")
)

// Point is a city location in the plane.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 { return math.Hypot(p.X-q.X, p.Y-q.Y) }

// Sample draws n distinct integer points uniformly from the grid [lb,ub]².
// The same seed always yields the same points (tsp.NewRand policy).
//
// Complexity: O(n) time and space (sparse partial Fisher–Yates over the grid).
func Sample(n, lb, ub int, seed int64) ([]Point, error) {
	if n < 1 || ub < lb {
		return nil, fmt.Errorf("Sample(n=%d, lb=%d, ub=%d): %w", n, lb, ub, ErrBadBounds)
	}
	side := int64(ub) - int64(lb) + 1
	if side > maxSide {
		return nil, fmt.Errorf("Sample: side %d exceeds %d: %w", side, maxSide, ErrBadBounds)
	}
	cells := side * side
	if int64(n) > cells {
		return nil, fmt.Errorf("Sample: %d points from %d cells: %w", n, cells, ErrGridTooSmall)
	}

	var (
		rng     = tsp.NewRand(seed)
		swapped = make(map[int64]int64, n)
		out     = make([]Point, n)
		i, j    int64
	)
	at := func(k int64) int64 {
		if v, ok := swapped[k]; ok {
			return v
		}

		return k
	}
	for i = 0; i < int64(n); i++ {
		j = i + rng.Int63n(cells-i)
		vi, vj := at(i), at(j)
		swapped[i], swapped[j] = vj, vi
		out[i] = Point{X: float64(int64(lb) + vj/side), Y: float64(int64(lb) + vj%side)}
	}

	return out, nil
}

// SampleDefault is Sample over the grid [0,n]².
func SampleDefault(n int, seed int64) ([]Point, error) { return Sample(n, 0, n, seed) }

// UnitSquare returns the corners (0,0) (1,0) (1,1) (0,1); the optimal tour
// over them is the perimeter, cost 4.
func UnitSquare() []Point {
	return []Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
}

// Euclidean builds the pairwise distance matrix of pts.
// Fewer than two points, or non-finite coordinates, fail validation.
//
// Complexity: O(n²).
func Euclidean(pts []Point) (*matrix.Distance, error) {
	n := len(pts)
	if n < 2 {
		return nil, fmt.Errorf("Euclidean: %d points: %w", n, matrix.ErrTooSmall)
	}
	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	var (
		i, j int
		v    float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			v = pts[i].Dist(pts[j])
			if err = m.Set(i, j, v); err != nil {
				return nil, fmt.Errorf("Euclidean: points %d,%d: %w", i, j, err)
			}
			if err = m.Set(j, i, v); err != nil {
				return nil, fmt.Errorf("Euclidean: points %d,%d: %w", j, i, err)
			}
		}
	}

	return matrix.NewDistance(m)
}
