// SPDX-License-Identifier: MIT
// Package matrix: the Gauss–Jordan elimination engine.
// ReducedEchelonAndDet is the one non-trivial kernel in the package; every
// solver (Determinant, Inverse, Solve, LeastSquares) is derived from it.

package matrix

// ReducedEchelonAndDet reduces m to reduced row echelon form and reports the
// determinant accumulated along the way.
//
// Implementation (Gauss–Jordan with first-nonzero pivoting):
//   - Stage 1: clone m into a working grid; det = 1, pivotRow = pivotCol = 0.
//   - Stage 2: while both cursors are in range, scan columns from pivotCol
//     upward and, within each column, rows from pivotRow downward for the
//     first nonzero entry. No candidate anywhere → no pivots remain, stop.
//   - Stage 3: swap the found row up if needed (det changes sign), divide
//     the pivot row by the pivot value from pivotCol onward (det *= pivot),
//     then subtract multiples of the pivot row from every other row with a
//     nonzero entry in pivotCol. Advance both cursors.
//
// Determinant reporting: ErrNonSquare when rows != cols (rref is still
// returned). For a square input, a zero entry on the diagonal of the
// reduced grid means the matrix is not row-equivalent to the identity and
// the determinant is zero; otherwise it is the signed product of the pivot
// factors.
//
// Pivoting is positional (first nonzero, top-to-bottom), not
// magnitude-maximal: deterministic and exact on integer scalars, but not a
// numerically stabilized scheme for floats.
//
// Complexity: O(rows²·cols), Space O(rows·cols) for the working grid.
func (m *Matrix[T]) ReducedEchelonAndDet() (*Matrix[T], T, error) {
	var zero T
	one := T(1)

	red := m.Clone() // working grid; m is never mutated
	det := one

	var (
		pivotRow, pivotCol int  // current pivot cursors
		row, col           int  // scan iterators
		base, rowBase      int  // flat row offsets
		factor             T    // pivot value, then per-row elimination factor
		found              bool // whether the scan located a pivot
	)
	for pivotRow < red.rows && pivotCol < red.cols {
		// Find the next pivot: first nonzero entry, column-major scan.
		found = false
	scan:
		for col = pivotCol; col < red.cols; col++ {
			for row = pivotRow; row < red.rows; row++ {
				if red.data[row*red.cols+col] != zero {
					// Row swap if necessary; a swap flips the determinant sign.
					if row != pivotRow {
						red.swapRows(row, pivotRow)
						det = -det
					}
					pivotCol = col
					found = true

					break scan
				}
			}
		}
		// No nonzero entry in the remaining sub-grid: all pivots exhausted.
		if !found {
			break
		}

		// Normalize the pivot row so the pivot becomes one.
		base = pivotRow * red.cols
		factor = red.data[base+pivotCol]
		for col = pivotCol; col < red.cols; col++ {
			red.data[base+col] /= factor
		}
		det *= factor

		// Eliminate every other row with a nonzero entry in the pivot column.
		for row = 0; row < red.rows; row++ {
			if row == pivotRow {
				continue
			}
			rowBase = row * red.cols
			factor = red.data[rowBase+pivotCol]
			if factor == zero {
				continue
			}
			for col = pivotCol; col < red.cols; col++ {
				red.data[rowBase+col] -= factor * red.data[base+col]
			}
		}

		// Advance both cursors.
		pivotRow++
		pivotCol++
	}

	// Determinant is only defined for square matrices.
	if m.rows != m.cols {
		return red, zero, ErrNonSquare
	}

	// Rank-deficient square matrix: reduced grid is not the identity.
	for row = 0; row < red.rows; row++ {
		if red.data[row*red.cols+row] == zero {
			det = zero

			break
		}
	}

	return red, det, nil
}

// ReducedEchelonForm returns the reduced row echelon form of m.
// Complexity: O(rows²·cols).
func (m *Matrix[T]) ReducedEchelonForm() *Matrix[T] {
	red, _, _ := m.ReducedEchelonAndDet()

	return red
}

// Determinant returns the determinant of a square matrix, or ErrNonSquare.
// A rank-deficient matrix has determinant zero.
// Complexity: O(rows³).
func (m *Matrix[T]) Determinant() (T, error) {
	_, det, err := m.ReducedEchelonAndDet()
	if err != nil {
		var zero T

		return zero, opErrorf(opDeterminant, err)
	}

	return det, nil
}
