// Package matrix: block operations used to assemble and dismantle augmented
// systems. Partition extracts a sub-rectangle; Combine concatenates two
// matrices side by side. Both return fresh matrices and never alias storage.
package matrix

import "fmt"

// Partition returns the sub-matrix covering rows [rowStart, rowEnd) and
// columns [colStart, colEnd), re-indexed from zero. The window must be
// non-empty and inside the matrix; a malformed window panics.
// Complexity: O((rowEnd-rowStart)*(colEnd-colStart)).
func (m *Matrix[T]) Partition(rowStart, rowEnd, colStart, colEnd int) *Matrix[T] {
	// Validate the window: non-empty, within bounds
	if rowStart < 0 || rowEnd > m.rows || rowStart >= rowEnd ||
		colStart < 0 || colEnd > m.cols || colStart >= colEnd {
		panic(fmt.Sprintf("matrix: invalid partition [%d:%d, %d:%d] of %dx%d",
			rowStart, rowEnd, colStart, colEnd, m.rows, m.cols))
	}

	// Copy the window row by row into a fresh matrix
	out := New[T](rowEnd-rowStart, colEnd-colStart)
	var r, src, dst int
	for r = rowStart; r < rowEnd; r++ {
		src = r*m.cols + colStart       // start of the window in this source row
		dst = (r - rowStart) * out.cols // start of the destination row
		copy(out.data[dst:dst+out.cols], m.data[src:src+out.cols])
	}

	return out
}

// Combine returns a new matrix with m's columns first and right's columns
// after them, forming [m | right]. Panics if the row counts differ.
// Complexity: O(rows*(m.cols+right.cols)).
func (m *Matrix[T]) Combine(right *Matrix[T]) *Matrix[T] {
	// Validate conformable row counts
	if m.rows != right.rows {
		panic(fmt.Sprintf("matrix: Combine: row count mismatch (%d vs %d)", m.rows, right.rows))
	}

	// Interleave the two sources row by row
	out := New[T](m.rows, m.cols+right.cols)
	var r, dst int
	for r = 0; r < m.rows; r++ {
		dst = r * out.cols
		copy(out.data[dst:dst+m.cols], m.data[r*m.cols:(r+1)*m.cols])
		copy(out.data[dst+m.cols:dst+out.cols], right.data[r*right.cols:(r+1)*right.cols])
	}

	return out
}
