// SPDX-License-Identifier: MIT

// Package matrix: scalar type constraints and scalar-level helpers.
// This file intentionally contains ONLY the generic capability constraint
// and the tiny scalar helpers the kernels share. Errors live in errors.go,
// the entity in matrix.go, per the package conventions.
package matrix

// Floats is a constraint for floating-point scalar types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer scalar types.
type SignedInts interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Scalar is the capability constraint every matrix element must satisfy:
// addition, subtraction, multiplication, division, negation, equality and
// ordering, plus the additive identity (the zero value) and multiplicative
// identity (conversion of the untyped constant 1). Floating-point types give
// approximate arithmetic; signed integers give exact arithmetic with
// truncating division.
type Scalar interface {
	Floats | SignedInts
}

// absDiff returns |a-b| using ordering instead of math.Abs, so it works for
// every type in the Scalar set.
// Complexity: O(1).
func absDiff[T Scalar](a, b T) T {
	if a > b {
		return a - b
	}

	return b - a
}
