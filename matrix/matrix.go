// Package matrix: the Matrix[T] entity and its constructors.
// Matrix is a concrete, row-major generic matrix, storing elements in a flat
// slice for performance and cache friendliness.
package matrix

import (
	"fmt"
	"math"
	"strings"
)

// Matrix is a row-major rows×cols grid of Scalar values.
// rows and cols are cached dimension counts; data holds rows*cols elements
// in row-major order. A Matrix has pure value semantics: Clone produces an
// independent deep copy, and every transforming operation allocates a fresh
// result. Only Set mutates in place.
type Matrix[T Scalar] struct {
	rows, cols int // number of rows and columns, both >= 1
	data       []T // flat backing storage, length == rows*cols
}

// New creates a rows×cols zero matrix.
// Stage 1 (Validate): ensure rows and cols >= 1, panic otherwise.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(rows*cols) time and memory.
func New[T Scalar](rows, cols int) *Matrix[T] {
	// Validate dimensions
	if rows < 1 || cols < 1 {
		panic(fmt.Sprintf("matrix: dimensions must be > 0, got %dx%d", rows, cols))
	}

	// Return initialized Matrix with zeroed backing slice
	return &Matrix[T]{rows: rows, cols: cols, data: make([]T, rows*cols)}
}

// Square creates a size×size zero matrix.
func Square[T Scalar](size int) *Matrix[T] {
	return New[T](size, size)
}

// Identity creates a size×size matrix with ones on the main diagonal.
// Complexity: O(size²).
func Identity[T Scalar](size int) *Matrix[T] {
	m := Square[T](size)
	one := T(1)
	for i := 0; i < size; i++ {
		m.data[i*size+i] = one // set diagonal entry
	}

	return m
}

// FromRows builds a matrix from a nested slice, copying every row.
// Panics if rows is empty, the first row is empty, or any row length differs
// from the first row's length (ragged input).
// Complexity: O(rows*cols).
func FromRows[T Scalar](rows [][]T) *Matrix[T] {
	// Validate outer shape
	if len(rows) == 0 || len(rows[0]) == 0 {
		panic("matrix: nested rows must be non-empty")
	}
	cols := len(rows[0])

	// Validate rectangularity against the first row
	for i, row := range rows {
		if len(row) != cols {
			panic(fmt.Sprintf("matrix: ragged rows: row %d has %d columns, want %d", i, len(row), cols))
		}
	}

	// Copy row by row into flat storage
	m := New[T](len(rows), cols)
	for i, row := range rows {
		copy(m.data[i*cols:(i+1)*cols], row)
	}

	return m
}

// FromList builds a rows×cols matrix from values listed left-to-right,
// top-to-bottom. Panics if len(values) != rows*cols.
// Complexity: O(rows*cols).
func FromList[T Scalar](values []T, rows, cols int) *Matrix[T] {
	// Validate length against requested shape
	if len(values) != rows*cols {
		panic(fmt.Sprintf("matrix: list length %d does not match dimensions %dx%d", len(values), rows, cols))
	}

	// Copy into fresh flat storage (the caller keeps ownership of values)
	m := New[T](rows, cols)
	copy(m.data, values)

	return m
}

// SquareFromList builds a square matrix from values listed left-to-right,
// top-to-bottom. Panics if len(values) is not a perfect square.
func SquareFromList[T Scalar](values []T) *Matrix[T] {
	size := int(math.Sqrt(float64(len(values))))
	if size*size != len(values) {
		panic(fmt.Sprintf("matrix: list length %d is not a perfect square", len(values)))
	}

	return FromList(values, size, size)
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Matrix[T]) Rows() int {
	return m.rows // return cached row count
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Matrix[T]) Cols() int {
	return m.cols // return cached column count
}

// offset computes the flat index for (row, col), panicking on out-of-range
// indices.
// Complexity: O(1).
func (m *Matrix[T]) offset(row, col int) int {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		panic(fmt.Sprintf("matrix: index (%d,%d) out of range for %dx%d", row, col, m.rows, m.cols))
	}

	return row*m.cols + col
}

// At retrieves the element at (row, col). Panics on out-of-range indices.
// Complexity: O(1).
func (m *Matrix[T]) At(row, col int) T {
	return m.data[m.offset(row, col)]
}

// Set assigns value v at (row, col). Panics on out-of-range indices.
// This is the only in-place mutation the entity exposes.
// Complexity: O(1).
func (m *Matrix[T]) Set(row, col int, v T) {
	m.data[m.offset(row, col)] = v
}

// Row returns a fresh copy of row i. The copy shares no storage with the
// matrix, so callers may not mutate the matrix through it.
// Complexity: O(cols).
func (m *Matrix[T]) Row(i int) []T {
	if i < 0 || i >= m.rows {
		panic(fmt.Sprintf("matrix: row index %d out of range for %dx%d", i, m.rows, m.cols))
	}
	row := make([]T, m.cols)
	copy(row, m.data[i*m.cols:(i+1)*m.cols])

	return row
}

// Clone returns a deep copy of the matrix.
// The returned Matrix is independent of the original.
// Complexity: O(rows*cols) time and memory.
func (m *Matrix[T]) Clone() *Matrix[T] {
	// Allocate new slice and copy all elements
	copyData := make([]T, len(m.data))
	copy(copyData, m.data)

	return &Matrix[T]{rows: m.rows, cols: m.cols, data: copyData}
}

// swapRows exchanges rows i and j in place. Internal helper for the
// elimination engine; indices are assumed valid by the caller.
// Complexity: O(cols).
func (m *Matrix[T]) swapRows(i, j int) {
	bi, bj := i*m.cols, j*m.cols
	for c := 0; c < m.cols; c++ {
		m.data[bi+c], m.data[bj+c] = m.data[bj+c], m.data[bi+c]
	}
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(rows*cols) for string construction.
func (m *Matrix[T]) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.rows; i++ { // iterate over rows
		sb.WriteByte('[')            // open row
		for j = 0; j < m.cols; j++ { // iterate over columns
			// compute flat index directly for performance
			fmt.Fprintf(&sb, "%v", m.data[i*m.cols+j])
			if j < m.cols-1 {
				sb.WriteString(", ") // separate values with comma
			}
		}
		sb.WriteString("]\n") // close row
	}

	return sb.String()
}
