// SPDX-License-Identifier: MIT

// Package matrix holds the distance tables consumed by the annealing engine.
//
// The package provides:
//
//   - Matrix, a small bounds-checked interface over two-dimensional float64 data.
//   - Dense, a row-major implementation used to stage raw input.
//   - Distance, an immutable symmetric n×n cost table validated once at
//     construction and read without checks in hot loops.
//
// Validation is eager. A Distance that exists is square, n ≥ 2, finite,
// non-negative, zero on the diagonal and symmetric within symTol. It is never
// mutated after construction and may be shared read-only between goroutines.
package matrix
