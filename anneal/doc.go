// Package anneal implements the simulated-annealing engine for the TSP.
//
// An Engine owns one kernel, one cooling schedule and one generator for the
// Metropolis draws. Each iteration k = 1..Iterations proposes a candidate
// route, evaluates its cost and accepts it with probability
//
//	min(1, exp(−(c' − c) / (T(k) + ε)))
//
// The best route seen so far is tracked separately from the current one and
// never gets worse. With EarlyStop, the run ends once the number of
// consecutive rejections exceeds StopAfter.
//
// Every Run starts from scratch: same initial route, generator reseeded from
// Options.Seed. Kernels keep their own generator state between runs, so
// reproducing a run bit-for-bit takes a fresh kernel built from the same seed.
//
// Collector wraps an Engine and records per-iteration series without
// touching accept/reject decisions. RunChains runs several independent
// engines concurrently over one shared, read-only distance matrix.
package anneal
