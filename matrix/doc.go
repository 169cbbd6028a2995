// SPDX-License-Identifier: MIT

// Package matrix provides dense real and complex matrices over scalar.Number.
//
// Layers:
//
//   - Grid[T]: a rectangular container with an optional per-cell "empty"
//     state, copy-out row/column views and iter.Seq2 iterators.
//   - Numeric[M]: the arithmetic contract (scalar and matrix add, sub, mul,
//     div, integer power, transpose, determinant, inverse, minors,
//     cofactors, trace, Hadamard product).
//   - Real and Complex: independent implementations of Numeric sharing
//     generic kernels. Real compares within EqualityTolerance; Complex
//     compares exactly.
//   - Vector: scalar.Number components with dot, cross, angle and
//     orthogonality helpers.
//
// Errors are sentinels wrapped with an operation tag ("Inverse: matrix:
// singular matrix"), so callers match with errors.Is. Every arithmetic result
// is a freshly allocated matrix; operands are never modified.
//
// Determinants expand along the first row, which costs O(n!). Callers bound
// matrix sizes themselves.
package matrix
