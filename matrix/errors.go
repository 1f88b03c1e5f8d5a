// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Solvers MUST return these sentinels and tests MUST check them via
// errors.Is. Panics are reserved for programmer errors: malformed shapes,
// mismatched dimensions and out-of-range indices abort instead of returning.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with opErrorf at the facade —
// callers will still use errors.Is to match.

var (
	// ErrNonSquare signals that a square matrix was required (determinant,
	// inverse) but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNotInvertible signals that a square matrix is singular: its reduced
	// echelon form is not the identity, so no inverse exists.
	ErrNotInvertible = errors.New("matrix: matrix is not invertible")

	// ErrInconsistent signals a linear system with no solution: elimination
	// produced a row of the form 0 = c with c != 0.
	ErrInconsistent = errors.New("matrix: system is inconsistent")
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opDeterminant  = "Determinant"
	opInverse      = "Inverse"
	opSolve        = "Solve"
	opLeastSquares = "LeastSquares"
)

// opErrorf wraps err with an operation tag, preserving the sentinel via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil to avoid creating a non-nil wrapper around nil.
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// vecLenMsg formats the panic message for a right-hand-side vector whose
// length does not match the matrix row count.
func vecLenMsg(tag string, got, want int) string {
	return fmt.Sprintf("matrix: %s: b vector length %d does not match %d rows", tag, got, want)
}
