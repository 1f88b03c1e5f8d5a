// SPDX-License-Identifier: MIT
// Package matrix: elementwise and product kernels on Matrix[T].
// All kernels perform strict fail-fast validation (panic on dimension
// mismatch), allocate exactly one fresh result, and never mutate operands.
// Loop orders are fixed so results are deterministic for identical inputs.

package matrix

import "fmt"

// addSub computes elementwise out = m + sign*other for sign ∈ {+1, -1}.
// Internal helper for Add/Sub to share validation, allocation and the flat
// loop. Panics on shape mismatch.
// Complexity: O(rows*cols), one result allocation.
func (m *Matrix[T]) addSub(other *Matrix[T], sign T, op string) *Matrix[T] {
	// Validate shapes match
	if m.rows != other.rows || m.cols != other.cols {
		panic(fmt.Sprintf("matrix: %s: dimension mismatch (%dx%d vs %dx%d)",
			op, m.rows, m.cols, other.rows, other.cols))
	}

	// Single flat loop over the backing slices, deterministic 0..n-1
	out := New[T](m.rows, m.cols)
	for idx := range out.data {
		out.data[idx] = m.data[idx] + sign*other.data[idx]
	}

	return out
}

// Add returns the elementwise sum m + other as a fresh matrix.
// Panics if the shapes differ.
// Complexity: O(rows*cols).
func (m *Matrix[T]) Add(other *Matrix[T]) *Matrix[T] {
	return m.addSub(other, T(1), "Add")
}

// Sub returns the elementwise difference m - other as a fresh matrix.
// Panics if the shapes differ.
// Complexity: O(rows*cols).
func (m *Matrix[T]) Sub(other *Matrix[T]) *Matrix[T] {
	return m.addSub(other, -T(1), "Sub")
}

// Mul performs standard matrix multiplication C = m × other.
// Panics unless m.cols == other.rows.
//
// Implementation:
//   - Stage 1: validate inner dimensions, allocate the result.
//   - Stage 2: i→k→j loops with row-major strides; zero entries of m are
//     skipped to avoid useless multiplies.
//
// Complexity: O(rows*inner*cols), Space O(rows*cols).
func (m *Matrix[T]) Mul(other *Matrix[T]) *Matrix[T] {
	// Validate inner dimensions
	if m.cols != other.rows {
		panic(fmt.Sprintf("matrix: Mul: inner dimension mismatch (%dx%d × %dx%d)",
			m.rows, m.cols, other.rows, other.cols))
	}

	out := New[T](m.rows, other.cols)
	var zero T
	var (
		i, j, k                            int // loop iterators (deterministic order)
		rowOffsetM, rowOffsetB, rowOffsetR int // flat row bases
		mv                                 T   // current m(i,k)
	)
	for i = 0; i < m.rows; i++ {
		rowOffsetM = i * m.cols
		rowOffsetR = i * out.cols
		for k = 0; k < m.cols; k++ {
			mv = m.data[rowOffsetM+k]
			if mv == zero {
				continue // skip zero for performance
			}
			rowOffsetB = k * other.cols
			for j = 0; j < other.cols; j++ {
				out.data[rowOffsetR+j] += mv * other.data[rowOffsetB+j]
			}
		}
	}

	return out
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
// The original matrix is never mutated.
// Complexity: O(rows*cols).
func (m *Matrix[T]) Scale(alpha T) *Matrix[T] {
	out := New[T](m.rows, m.cols)
	for idx := range out.data { // single flat loop
		out.data[idx] = m.data[idx] * alpha
	}

	return out
}

// Hadamard returns the elementwise product m ⊙ other as a fresh matrix.
// Hadamard is not matrix multiplication; use Mul for m × other.
// Panics if the shapes differ.
// Complexity: O(rows*cols).
func (m *Matrix[T]) Hadamard(other *Matrix[T]) *Matrix[T] {
	// Validate shapes match
	if m.rows != other.rows || m.cols != other.cols {
		panic(fmt.Sprintf("matrix: Hadamard: dimension mismatch (%dx%d vs %dx%d)",
			m.rows, m.cols, other.rows, other.cols))
	}

	out := New[T](m.rows, m.cols)
	for idx := range out.data { // fixed order ensures deterministic accumulation
		out.data[idx] = m.data[idx] * other.data[idx]
	}

	return out
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Complexity: O(rows*cols).
func (m *Matrix[T]) Transpose() *Matrix[T] {
	out := New[T](m.cols, m.rows) // dims flipped
	var i, j, baseSrc int
	for i = 0; i < m.rows; i++ {
		baseSrc = i * m.cols
		for j = 0; j < m.cols; j++ {
			// data[i*cols + j] → out.data[j*rows + i]
			out.data[j*m.rows+i] = m.data[baseSrc+j]
		}
	}

	return out
}

// MatVec computes y = m · x for a column vector x.
// Panics unless len(x) == m.Cols().
// Complexity: O(rows*cols), Space O(rows) for y.
func (m *Matrix[T]) MatVec(x []T) []T {
	// Validate vector length against column count
	if len(x) != m.cols {
		panic(fmt.Sprintf("matrix: MatVec: vector length %d does not match %d columns", len(x), m.cols))
	}

	y := make([]T, m.rows) // allocate exactly rows outputs
	var zero T
	var (
		i, j, base int
		acc, xv    T
	)
	for i = 0; i < m.rows; i++ { // iterate rows deterministically
		acc = zero        // reset accumulator per row
		base = i * m.cols // flat base offset for row i
		for j = 0; j < m.cols; j++ {
			xv = x[j]
			if xv != zero { // skip zero multiplications
				acc += m.data[base+j] * xv
			}
		}
		y[i] = acc
	}

	return y
}
