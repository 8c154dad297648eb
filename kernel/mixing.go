package kernel

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/annealtsp/tsp"
)

// eps is float64 machine epsilon; every probability is floored by
// eps·len(members) before normalisation so that no member is unreachable.
const eps = 2.220446049250313e-16

// Weighted pairs a kernel with its (unnormalised) selection weight.
type Weighted struct {
	P float64
	K Kernel
}

// Mixing delegates each Sample to one member kernel, picked by weight.
//
// Members are stable-sorted by descending probability and partition [0, 1]
// into consecutive intervals of their lengths. Choose(u) returns the member
// whose interval contains u; u == 1 maps to the last member.
//
// e.g. weights [0.3 0.2 0.5] over [A B C] give order [C A B] and intervals
// [0, 0.5) C, [0.5, 0.8) A, [0.8, 1] B.
type Mixing struct {
	seeded
	kernels []Kernel
	probs   []float64
	bounds  []float64 // bounds[i] is the upper edge of interval i; bounds[last] == 1
}

// NewMixing builds a Mixing kernel from weighted members.
// Weights must be finite and ≥ 0; at least one member is required.
//
// Complexity: O(m log m) for m members.
func NewMixing(members []Weighted, seed int64) (*Mixing, error) {
	m := len(members)
	if m == 0 {
		return nil, fmt.Errorf("NewMixing: no members: %w", tsp.ErrValidation)
	}

	var (
		floor = eps * float64(m)
		raw   = make([]float64, m)
		sum   float64
		i     int
	)
	for i = range members {
		if members[i].K == nil {
			return nil, fmt.Errorf("NewMixing: member %d: nil kernel: %w", i, tsp.ErrValidation)
		}
		p := members[i].P
		if math.IsNaN(p) || math.IsInf(p, 0) || p < 0 {
			return nil, fmt.Errorf("NewMixing: member %d: weight %v: %w", i, p, tsp.ErrValidation)
		}
		raw[i] = p + floor
		sum += raw[i]
	}

	order := make([]int, m)
	for i = range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return raw[order[a]] > raw[order[b]] })

	mx := &Mixing{
		seeded:  newSeeded(seed),
		kernels: make([]Kernel, m),
		probs:   make([]float64, m),
		bounds:  make([]float64, m),
	}
	var acc float64
	for i = range order {
		mx.kernels[i] = members[order[i]].K
		mx.probs[i] = raw[order[i]] / sum
		acc += mx.probs[i]
		mx.bounds[i] = acc
	}
	mx.bounds[m-1] = 1

	return mx, nil
}

// NewMixingFrom is NewMixing over parallel slices.
func NewMixingFrom(kernels []Kernel, probs []float64, seed int64) (*Mixing, error) {
	if len(kernels) != len(probs) {
		return nil, fmt.Errorf("NewMixingFrom: %d kernels, %d probabilities: %w",
			len(kernels), len(probs), tsp.ErrValidation)
	}
	members := make([]Weighted, len(kernels))
	for i := range kernels {
		members[i] = Weighted{P: probs[i], K: kernels[i]}
	}

	return NewMixing(members, seed)
}

// Choose returns the member whose interval contains u.
// Values below 0 map to the first member, values ≥ 1 to the last.
//
// Complexity: O(log m).
func (mx *Mixing) Choose(u float64) Kernel {
	last := len(mx.kernels) - 1
	if u >= 1 {
		return mx.kernels[last]
	}
	idx := sort.Search(len(mx.bounds), func(i int) bool { return u < mx.bounds[i] })
	if idx > last {
		idx = last
	}

	return mx.kernels[idx]
}

// Sample draws u ~ U[0,1) from the mixer's own generator and delegates.
func (mx *Mixing) Sample(r tsp.Route) (tsp.Route, error) {
	return mx.Choose(mx.rng.Float64()).Sample(r)
}

// Probabilities returns the normalised member probabilities in sorted order.
func (mx *Mixing) Probabilities() []float64 {
	out := make([]float64, len(mx.probs))
	copy(out, mx.probs)

	return out
}

// Kernels returns the members in sorted (descending probability) order.
func (mx *Mixing) Kernels() []Kernel {
	out := make([]Kernel, len(mx.kernels))
	copy(out, mx.kernels)

	return out
}
