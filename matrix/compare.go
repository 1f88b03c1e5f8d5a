// Package matrix: structural comparison.
package matrix

// EqualsWithin reports whether m and other have the same shape and every
// pair of corresponding cells differs by at most delta in absolute value.
// Complexity: O(rows*cols).
func (m *Matrix[T]) EqualsWithin(other *Matrix[T], delta T) bool {
	// Shape mismatch can never be equal
	if m.rows != other.rows || m.cols != other.cols {
		return false
	}

	// Cell-wise tolerance check over the flat slices
	for idx := range m.data {
		if absDiff(m.data[idx], other.data[idx]) > delta {
			return false
		}
	}

	return true
}

// Equals reports exact cell-wise structural equality: EqualsWithin with a
// zero delta.
// Complexity: O(rows*cols).
func (m *Matrix[T]) Equals(other *Matrix[T]) bool {
	var zero T

	return m.EqualsWithin(other, zero)
}
