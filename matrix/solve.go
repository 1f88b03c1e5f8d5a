// SPDX-License-Identifier: MIT
// Package matrix: solvers derived from the elimination engine.
// Inverse, Solve and LeastSquares all follow the same shape: assemble an
// augmented matrix with Combine, reduce it, and interpret the result.

package matrix

// Inverse computes m⁻¹ by reducing the augmented matrix [m | I].
//
// Implementation:
//   - Stage 1: require a square input (ErrNonSquare otherwise).
//   - Stage 2: reduce [m | I]; if the left block of the result is not
//     exactly the identity, m is singular (ErrNotInvertible).
//   - Stage 3: the inverse is the right block, extracted via Partition.
//
// Complexity: O(rows³).
func (m *Matrix[T]) Inverse() (*Matrix[T], error) {
	// Validate squareness first; the identity augmentation needs it anyway.
	if m.rows != m.cols {
		return nil, opErrorf(opInverse, ErrNonSquare)
	}

	ident := Identity[T](m.rows)
	reduced := m.Combine(ident).ReducedEchelonForm()

	// A matrix is invertible iff its RREF is the identity (exact comparison).
	if !reduced.Partition(0, m.rows, 0, m.cols).Equals(ident) {
		return nil, opErrorf(opInverse, ErrNotInvertible)
	}

	return reduced.Partition(0, m.rows, m.cols, reduced.cols), nil
}

// Solve returns a solution x of m·x = b, or ErrInconsistent when no solution
// exists. Panics if len(b) != m.Rows(). Free variables are reported as zero
// rather than parameterized, so underdetermined consistent systems yield one
// particular solution.
// Complexity: O(rows²·cols).
func (m *Matrix[T]) Solve(b []T) ([]T, error) {
	reduced := m.reduceAugmented(b, opSolve)
	if err := reduced.checkConsistent(); err != nil {
		return nil, opErrorf(opSolve, err)
	}

	return reduced.extractSolution(), nil
}

// LeastSquares returns a least-squares solution of m·x ≈ b via the normal
// equations mᵀm·x = mᵀb, delegating to the same reduce/check/extract
// pipeline as Solve. Panics if len(b) != m.Rows().
//
// ErrInconsistent here signals an arithmetic anomaly (possible under
// floating round-off) rather than a genuine absence of a minimizer.
// Complexity: O(rows·cols²) for the normal equations plus O(cols³) to solve.
func (m *Matrix[T]) LeastSquares(b []T) ([]T, error) {
	if len(b) != m.rows {
		panic(vecLenMsg(opLeastSquares, len(b), m.rows))
	}

	// Form the normal equations AᵗA and Aᵗb.
	bm := FromList(b, len(b), 1)
	at := m.Transpose()
	reduced := at.Mul(m).Combine(at.Mul(bm)).ReducedEchelonForm()

	if err := reduced.checkConsistent(); err != nil {
		return nil, opErrorf(opLeastSquares, err)
	}

	return reduced.extractSolution(), nil
}

// reduceAugmented validates the right-hand side, builds [m | b] with b as a
// single column, and reduces it.
func (m *Matrix[T]) reduceAugmented(b []T, op string) *Matrix[T] {
	if len(b) != m.rows {
		panic(vecLenMsg(op, len(b), m.rows))
	}
	bm := FromList(b, len(b), 1)

	return m.Combine(bm).ReducedEchelonForm()
}

// checkConsistent inspects a reduced augmented matrix for rows of the form
// 0 = c with c != 0. Any such row makes the system unsolvable.
// Complexity: O(rows·cols).
func (m *Matrix[T]) checkConsistent() error {
	var zero T
	last := m.cols - 1 // augmented column index

	var row, col int
	var ok bool
	for row = 0; row < m.rows; row++ {
		if m.data[row*m.cols+last] == zero {
			continue // zero right-hand side is always satisfiable
		}
		// Nonzero RHS: at least one coefficient must be nonzero too.
		ok = false
		for col = 0; col < last; col++ {
			if m.data[row*m.cols+col] != zero {
				ok = true

				break
			}
		}
		if !ok {
			return ErrInconsistent
		}
	}

	return nil
}

// extractSolution reads the solution vector out of a consistent reduced
// augmented matrix. It walks columns left to right with a separate row
// cursor: a one in the cursor row marks a pivot column, whose solution
// component is that row's augmented value; any other column is free and
// contributes zero. Relies on RREF structure: every pivot is exactly one
// and pivots appear in strictly increasing column order.
// Complexity: O(cols).
func (m *Matrix[T]) extractSolution() []T {
	one := T(1)
	last := m.cols - 1 // augmented column index

	x := make([]T, last) // one component per coefficient column
	var col, cursor int  // column iterator and pivot row cursor
	for col = 0; col < last; col++ {
		if cursor < m.rows && m.data[cursor*m.cols+col] == one {
			x[col] = m.data[cursor*m.cols+last] // pivot column: take RHS value
			cursor++
		}
		// Free column: x[col] stays zero.
	}

	return x
}
