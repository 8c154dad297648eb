// Package tsp - RNG utilities shared by kernels, engines and chains.
//
// This file centralizes deterministic random generation.
//
// Goals:
//   - Determinism: same seed ⇒ identical results across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Performance: no hidden allocations in hot paths; O(1) helpers, O(n) shuffles.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Every kernel and engine owns its
//     own *rand.Rand; use DeriveSeed to create independent streams for chains.
package tsp

import "math/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// NewRand returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func NewRand(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// DeriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed.
// A SplitMix64 finalizer removes correlation between neighbouring streams, so
// chain k and chain k+1 of the same parent seed behave independently.
// The result is never 0, so it never collapses onto the default stream.
//
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	if x == 0 {
		x = 0x9e3779b97f4a7c15
	}

	return int64(x)
}

// ShuffleInPlace performs an in-place Fisher–Yates shuffle of a using rng.
// If rng==nil, the default deterministic stream is used.
//
// Complexity: O(n) time, O(1) extra space.
func ShuffleInPlace(a []int, rng *rand.Rand) {
	n := len(a)
	if n <= 1 {
		return
	}
	r := rng
	if r == nil {
		r = NewRand(0)
	}

	var i, j int
	for i = n - 1; i > 0; i-- {
		j = r.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// DistinctPair draws i ≠ j uniformly from [lo, hi) without replacement.
// Requires hi-lo ≥ 2; the caller guarantees it.
//
// Complexity: O(1).
func DistinctPair(rng *rand.Rand, lo, hi int) (int, int) {
	span := hi - lo
	i := rng.Intn(span)
	j := rng.Intn(span - 1)
	if j >= i {
		j++
	}

	return lo + i, lo + j
}
