// Package tsp_test provides lightweight testing helpers shared across *_test.go
// files in this package.
package tsp_test

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/katalvlaran/annealtsp/matrix"
)

// Repeat runs fn N times. Useful for determinism/stability checks.
func Repeat(t *testing.T, n int, fn func(t *testing.T)) {
	t.Helper()
	var i int
	for i = 0; i < n; i++ {
		fn(t)
	}
}

// mustEqualInts asserts exact equality of two integer slices (length & values).
func mustEqualInts(t *testing.T, got, want []int) {
	t.Helper()
	if !slices.Equal(got, want) {
		t.Fatalf("mismatch:\n got:  %v\n want: %v", got, want)
	}
}

// mustErrIs asserts that err matches target using errors.Is.
func mustErrIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want %v, got %v", target, err)
	}
}

// euclid builds a validated symmetric Distance from 2D points.
func euclid(t *testing.T, pts [][2]float64) *matrix.Distance {
	t.Helper()
	n := len(pts)
	a := make([][]float64, n)

	var (
		i, j   int
		dx, dy float64
	)
	for i = 0; i < n; i++ {
		a[i] = make([]float64, n)
	}
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			dx = pts[i][0] - pts[j][0]
			dy = pts[i][1] - pts[j][1]
			a[i][j] = math.Hypot(dx, dy)
			a[j][i] = a[i][j]
		}
	}
	d, err := matrix.NewDistanceFrom(a)
	if err != nil {
		t.Fatalf("NewDistanceFrom: %v", err)
	}

	return d
}

// circle places n points evenly on the unit circle; the optimal tour is the
// polygon boundary in index order.
func circle(n int) [][2]float64 {
	pts := make([][2]float64, n)

	var (
		i  int
		th float64
	)
	for i = 0; i < n; i++ {
		th = 2 * math.Pi * float64(i) / float64(n)
		pts[i] = [2]float64{math.Cos(th), math.Sin(th)}
	}

	return pts
}
