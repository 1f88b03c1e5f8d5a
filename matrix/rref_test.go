// Package matrix_test contains unit tests for the elimination engine:
// reduced row echelon form and the determinant it accumulates.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/velkaren/rrefmat/matrix"
)

// TestRREFInvertible reduces an invertible matrix to the identity.
func TestRREFInvertible(t *testing.T) {
	a := matrix.FromRows([][]float64{{1, 2}, {3, 4}})

	red, det, err := a.ReducedEchelonAndDet()

	require.NoError(t, err)
	require.True(t, red.Equals(matrix.Identity[float64](2))) // full rank → identity
	require.Equal(t, -2.0, det)                              // 1*4 - 2*3
	require.Equal(t, 1.0, a.At(0, 0))                        // input is never mutated
}

// TestRREFRankDeficient keeps the dependent row as zeros and reports a zero
// determinant.
func TestRREFRankDeficient(t *testing.T) {
	a := matrix.FromRows([][]float64{
		{1, 2},
		{2, 4}, // dependent on the first row
	})

	red, det, err := a.ReducedEchelonAndDet()

	require.NoError(t, err)
	require.True(t, red.Equals(matrix.FromRows([][]float64{{1, 2}, {0, 0}})))
	require.Zero(t, det) // rank deficiency forces determinant to zero
}

// TestRREFRectangular reduces a wide matrix with a free column.
func TestRREFRectangular(t *testing.T) {
	a := matrix.FromRows([][]float64{
		{1, 2, 3},
		{2, 4, 6},
	})

	red, _, err := a.ReducedEchelonAndDet()

	require.ErrorIs(t, err, matrix.ErrNonSquare) // no determinant for 2x3
	require.True(t, red.Equals(matrix.FromRows([][]float64{{1, 2, 3}, {0, 0, 0}})))
}

// TestRREFZeroMatrix terminates immediately on an all-zero grid.
func TestRREFZeroMatrix(t *testing.T) {
	z := matrix.New[float64](3, 3)

	red, det, err := z.ReducedEchelonAndDet()

	require.NoError(t, err)
	require.True(t, red.Equals(z)) // RREF of zero is zero
	require.Zero(t, det)
}

// TestRREFIdempotent verifies rref(rref(A)) == rref(A).
func TestRREFIdempotent(t *testing.T) {
	a := matrix.FromRows([][]float64{
		{0, 2, 1},
		{1, -1, 0},
		{2, 0, 3},
	})

	once := a.ReducedEchelonForm()
	twice := once.ReducedEchelonForm()

	require.True(t, twice.Equals(once))
}

// TestRREFLeadingZeroColumn forces a row swap through a zero in the pivot
// position.
func TestRREFLeadingZeroColumn(t *testing.T) {
	a := matrix.FromRows([][]float64{
		{0, 1},
		{1, 0},
	})

	red, det, err := a.ReducedEchelonAndDet()

	require.NoError(t, err)
	require.True(t, red.Equals(matrix.Identity[float64](2)))
	require.Equal(t, -1.0, det) // one swap flips the sign
}

// TestDeterminantDiagonal checks det([[2,0],[0,2]]) == 4.
func TestDeterminantDiagonal(t *testing.T) {
	a := matrix.FromRows([][]float64{{2, 0}, {0, 2}})

	det, err := a.Determinant()

	require.NoError(t, err)
	require.Equal(t, 4.0, det)
}

// TestDeterminantNonSquare reports ErrNonSquare for rectangular input.
func TestDeterminantNonSquare(t *testing.T) {
	a := matrix.New[float64](2, 3)

	_, err := a.Determinant()

	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

// TestDeterminantRowSwapAntisymmetry: swapping two rows negates the
// determinant.
func TestDeterminantRowSwapAntisymmetry(t *testing.T) {
	a := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
	swapped := matrix.FromRows([][]float64{{3, 4}, {1, 2}})

	detA, err := a.Determinant()
	require.NoError(t, err)
	detS, err := swapped.Determinant()
	require.NoError(t, err)

	require.Equal(t, -detA, detS)
}

// TestDeterminantRowScaleLinearity: scaling one row scales the determinant
// by the same factor.
func TestDeterminantRowScaleLinearity(t *testing.T) {
	a := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
	scaled := matrix.FromRows([][]float64{{3, 6}, {3, 4}}) // first row × 3

	detA, err := a.Determinant()
	require.NoError(t, err)
	detS, err := scaled.Determinant()
	require.NoError(t, err)

	require.Equal(t, 3*detA, detS)
}

// TestDeterminantIntegerScalars verifies exact arithmetic on an integer
// matrix whose elimination path stays integral.
func TestDeterminantIntegerScalars(t *testing.T) {
	a := matrix.FromRows([][]int{{2, 0}, {0, 2}})

	det, err := a.Determinant()

	require.NoError(t, err)
	require.Equal(t, 4, det)
}

// TestDeterminant3x3 checks a non-trivial 3x3 value.
func TestDeterminant3x3(t *testing.T) {
	a := matrix.FromRows([][]float64{
		{2, -3, 1},
		{2, 0, -1},
		{1, 4, 5},
	})

	det, err := a.Determinant()

	require.NoError(t, err)
	require.InDelta(t, 49.0, det, 1e-9)
}
