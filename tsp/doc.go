// Package tsp provides the tour model shared by the annealing packages.
//
// It contains:
//
//   - Route: an immutable-by-convention permutation of city indices,
//     always read as a closed cycle (the last city connects back to the first).
//
//   - TourCost: the cyclic tour length over a *matrix.Distance.
//
//   - Warm starts: identity ordering and greedy nearest neighbour.
//
//   - TwoOpt: a deterministic first-improvement 2-opt polish.
//
//   - RNG policy: NewRand/DeriveSeed give every kernel, engine and chain its
//     own reproducible stream; seed==0 maps to a fixed default seed.
//
// Sentinel errors (ErrValidation, ErrInvalidInput, ErrNotImplemented) are the
// error taxonomy for the whole module: construction-time failures wrap
// ErrValidation, moves requested on routes that cannot support them wrap
// ErrInvalidInput.
package tsp
