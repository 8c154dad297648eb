// Package kernel provides neighbour-generation moves for simulated annealing.
//
// A Kernel proposes a candidate Route from the current one. Every variant owns
// a private *rand.Rand built from its seed (tsp.NewRand policy), so two
// kernels built with the same seed produce the same proposals.
//
// Variants:
//
//   - Swap       - exchange the cities at two positions.
//   - Reversion  - reverse the closed sub-range [i, j] (the 2-opt move).
//   - Insertion  - remove the city at i and re-insert it so it lands at j.
//   - RandomWalk - a fresh random order of positions 1..n-1, never the input.
//   - Mixing     - a weighted choice among other kernels.
//
// Random sampling never moves position 0; the deterministic SampleAt
// primitives accept any positions. Sample and SampleAt never modify their
// input route; they only advance the kernel's own generator.
//
// Kernels are NOT goroutine-safe: build one per chain.
package kernel
