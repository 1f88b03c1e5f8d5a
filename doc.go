// Package rrefmat is an in-memory dense linear-algebra toolkit built around
// a single Gauss–Jordan elimination engine over generic numeric scalars.
//
// 🚀 What is rrefmat?
//
//	A small, zero-dependency library that brings together:
//		• Matrix entity: generic dense matrices with value semantics
//		• Block operations: partitioning & side-by-side combination
//		• Elimination: reduced row echelon form with determinant tracking
//		• Derived solvers: determinant, inverse, Ax=b, least squares
//		• Comparison: exact and tolerance-based structural equality
//
// ✨ Why choose rrefmat?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Generic – one engine serves float and integer scalar domains alike
//   - Pure Go – no cgo, no hidden deps
//   - Deterministic – fixed pivot order, identical results for identical inputs
//
// Everything lives in a single subpackage:
//
//	matrix/ — the Matrix[T] entity, block operations, the elimination
//	          engine and every solver derived from it
//
// Quick sketch:
//
//	    [ A | I ] ──RREF──▶ [ I | A⁻¹ ]
//	    [ A | b ] ──RREF──▶ x with Ax = b
//
// Dive into matrix/doc.go for the algorithm outline and complexity notes,
// and matrix/example_test.go for runnable walkthroughs.
//
//	go get github.com/velkaren/rrefmat/matrix
package rrefmat
