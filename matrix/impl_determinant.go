// SPDX-License-Identifier: MIT

package matrix

// Determinant returns det(m).
// Implementation:
//   - Stage 1: eliminate to upper-triangular form with partial pivoting.
//   - Stage 2: multiply the diagonal and apply the row-swap sign.
//
// Behavior highlights:
//   - Never fails: a column without a pivot above Epsilon() yields exactly 0.
//   - The 0×0 matrix has determinant 1.
//   - m is not mutated.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func (m *Square[T]) Determinant() T {
	return factorize(m.data, m.size, m.eps).determinant()
}

// IsSingular reports whether elimination finds a column with no pivot above
// Epsilon(). It agrees with Inverse: IsSingular() == true iff Inverse fails
// with ErrSingular.
func (m *Square[T]) IsSingular() bool {
	return factorize(m.data, m.size, m.eps).singular
}
