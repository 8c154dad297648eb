// Package tsp - Route, the tour value type.
//
// A Route holds a permutation of {0..n-1}. It is a value: no exported method
// mutates it, and every producer (kernels, warm starts, 2-opt) builds a fresh
// backing slice. The closing edge last→first is implicit; unlike closed
// tours of the form [s … s], the start city is not repeated.
//
// Design:
//   - Constructors validate; Adopt trusts the caller (hot path for kernels).
//   - O(n) time for most helpers; accessors are O(1).
package tsp

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Route is a closed visiting order over n cities.
type Route struct {
	cities []int
}

// NewRoute copies perm and validates that it is a permutation of {0..len(perm)-1}.
//
// Complexity: O(n) time, O(n) space.
func NewRoute(perm []int) (Route, error) {
	if err := ValidatePermutation(perm, len(perm)); err != nil {
		return Route{}, err
	}
	cp := make([]int, len(perm))
	copy(cp, perm)

	return Route{cities: cp}, nil
}

// Adopt wraps perm without copying or validating it.
// Ownership of perm transfers to the Route: the caller must not write to it
// afterwards. Kernels use this after building a fresh permutation.
func Adopt(perm []int) Route { return Route{cities: perm} }

// Identity returns the route [0, 1, …, n-1]. n ≤ 0 yields the empty route.
func Identity(n int) Route {
	if n <= 0 {
		return Route{}
	}
	out := make([]int, n)

	var i int
	for i = 0; i < n; i++ {
		out[i] = i
	}

	return Route{cities: out}
}

// ValidatePermutation checks that perm is a permutation of {0..n-1} of length n.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(perm []int, n int) error {
	if n <= 0 || len(perm) != n {
		return fmt.Errorf("ValidatePermutation(len=%d,n=%d): %w", len(perm), n, ErrNotPermutation)
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = perm[i]
		if v < 0 || v >= n || seen[v] {
			return fmt.Errorf("ValidatePermutation(pos=%d,city=%d): %w", i, v, ErrNotPermutation)
		}
		seen[v] = true
	}

	return nil
}

// Len returns the number of cities.
func (r Route) Len() int { return len(r.cities) }

// At returns the city at position i. Panics like a slice index if out of range.
func (r Route) At(i int) int { return r.cities[i] }

// Cities returns an independent copy of the visiting order.
func (r Route) Cities() []int {
	if r.cities == nil {
		return nil
	}
	out := make([]int, len(r.cities))
	copy(out, r.cities)

	return out
}

// Validate checks that r is a permutation of {0..n-1}.
func (r Route) Validate(n int) error { return ValidatePermutation(r.cities, n) }

// Equal reports element-wise equality (same start, same direction).
func (r Route) Equal(o Route) bool {
	if len(r.cities) != len(o.cities) {
		return false
	}

	var i int
	for i = range r.cities {
		if r.cities[i] != o.cities[i] {
			return false
		}
	}

	return true
}

// EqualCycle reports whether r and o describe the same cycle up to rotation
// and direction.
//
// Complexity: O(n).
func (r Route) EqualCycle(o Route) bool {
	n := len(r.cities)
	if n != len(o.cities) {
		return false
	}
	if n == 0 {
		return true
	}
	p := o.IndexOf(r.cities[0])
	if p < 0 {
		return false
	}

	var (
		i       int
		fwd     = true
		bwd     = true
		oi, obi int
	)
	for i = 0; i < n; i++ {
		oi = (p + i) % n
		obi = ((p-i)%n + n) % n
		if r.cities[i] != o.cities[oi] {
			fwd = false
		}
		if r.cities[i] != o.cities[obi] {
			bwd = false
		}
		if !fwd && !bwd {
			return false
		}
	}

	return true
}

// IndexOf returns the position of city in r, or -1.
func (r Route) IndexOf(city int) int {
	var i int
	for i = range r.cities {
		if r.cities[i] == city {
			return i
		}
	}

	return -1
}

// String returns a compact printable representation, e.g. "[0 3 1 2 | 0]",
// where the vertical bar marks the implicit closing edge.
func (r Route) String() string {
	if len(r.cities) == 0 {
		return "[]"
	}
	var (
		sb strings.Builder
		i  int
	)
	sb.WriteString("[")
	for i = range r.cities {
		if i > 0 {
			sb.WriteString(" ")
		}
		fmt.Fprintf(&sb, "%d", r.cities[i])
	}
	fmt.Fprintf(&sb, " | %d]", r.cities[0])

	return sb.String()
}

// MarshalJSON encodes the route as a plain JSON array.
func (r Route) MarshalJSON() ([]byte, error) {
	if r.cities == nil {
		return []byte("[]"), nil
	}

	return json.Marshal(r.cities)
}

// UnmarshalJSON decodes a JSON array and validates it as a permutation.
func (r *Route) UnmarshalJSON(b []byte) error {
	var perm []int
	if err := json.Unmarshal(b, &perm); err != nil {
		return err
	}
	if len(perm) == 0 {
		*r = Route{}

		return nil
	}
	parsed, err := NewRoute(perm)
	if err != nil {
		return err
	}
	*r = parsed

	return nil
}
