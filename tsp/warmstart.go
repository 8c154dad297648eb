package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/annealtsp/matrix"
)

// WarmStart names an initial-route construction.
type WarmStart string

const (
	// WarmStartIdentity is the ordering [0, 1, …, n-1].
	WarmStartIdentity WarmStart = "identity"
	// WarmStartNearestNeighbor is the greedy nearest-neighbour tour from city 0.
	WarmStartNearestNeighbor WarmStart = "nearest_neighbor"
)

// ParseWarmStart maps a config string onto a WarmStart. Empty selects identity.
func ParseWarmStart(s string) (WarmStart, error) {
	switch WarmStart(s) {
	case "", WarmStartIdentity:
		return WarmStartIdentity, nil
	case WarmStartNearestNeighbor:
		return WarmStartNearestNeighbor, nil
	default:
		return "", fmt.Errorf("ParseWarmStart(%q): %w", s, ErrUnknownWarmStart)
	}
}

// InitialRoute builds the route selected by kind over d.
func InitialRoute(kind WarmStart, d *matrix.Distance) (Route, error) {
	if d == nil {
		return Route{}, fmt.Errorf("InitialRoute: nil distance: %w", ErrValidation)
	}
	switch kind {
	case "", WarmStartIdentity:
		return Identity(d.N()), nil
	case WarmStartNearestNeighbor:
		return NearestNeighbor(d), nil
	default:
		return Route{}, fmt.Errorf("InitialRoute(%q): %w", kind, ErrUnknownWarmStart)
	}
}

// NearestNeighbor builds a greedy tour starting at city 0: from the current
// city, go to the closest unvisited one. Ties go to the smallest index.
//
// Complexity: O(n²) time, O(n) space.
func NearestNeighbor(d *matrix.Distance) Route {
	n := d.N()
	out := make([]int, 0, n)
	visited := make([]bool, n)

	var (
		cur  = 0
		next int
		best float64
		j    int
		w    float64
	)
	out = append(out, cur)
	visited[cur] = true
	for len(out) < n {
		next = -1
		best = math.Inf(1)
		for j = 0; j < n; j++ {
			if visited[j] {
				continue
			}
			w = d.At(cur, j)
			if w < best {
				best = w
				next = j
			}
		}
		visited[next] = true
		out = append(out, next)
		cur = next
	}

	return Route{cities: out}
}
