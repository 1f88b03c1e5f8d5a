// Package matrix implements dense linear algebra over a generic numeric
// scalar type.
//
// The matrix package provides:
//
//   - Matrix[T], a rectangular grid of scalars with value semantics:
//     cloning yields an independent deep copy, and every transforming
//     operation returns a freshly allocated result.
//   - Block operations (Partition, Combine) for building augmented systems.
//   - A Gauss–Jordan elimination engine (ReducedEchelonAndDet) that reduces
//     a matrix to reduced row echelon form while tracking the determinant.
//   - Solvers derived from the same engine: Determinant, Inverse, Solve and
//     LeastSquares (normal equations).
//   - Exact and tolerance-based structural equality.
//
// Elimination uses first-nonzero pivoting in a fixed scan order, not
// magnitude-maximal pivoting: results are fully deterministic, and on exact
// scalar domains (integers) the arithmetic is exact, but on floating-point
// inputs the engine trades numerical stability for reproducibility.
// Elimination runs in O(rows²·cols); multiplication in O(rows·cols·inner).
//
// Failures split into two tiers. Malformed shapes (ragged rows, mismatched
// dimensions, out-of-range indices) are programmer errors and panic with a
// "matrix:"-prefixed message. Mathematically meaningful failures — the
// determinant or inverse of a non-square matrix, a singular matrix, an
// inconsistent system — are reported as sentinel errors (ErrNonSquare,
// ErrNotInvertible, ErrInconsistent) matched via errors.Is.
//
// See the examples in this package for usage patterns.
package matrix
