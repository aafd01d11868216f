// SPDX-License-Identifier: MIT

// Package matrix: structural transforms (transpose, conjugate).
// These kernels only move or conjugate cells and never fail.
package matrix

// Transposed returns a new matrix whose cell (x, y) holds m's cell (y, x).
// Complexity: O(n²).
func (m *Square[T]) Transposed() *Square[T] {
	res := m.emptyLike()
	n := m.size
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			res.data[x*n+y] = m.data[y*n+x]
		}
	}

	return res
}

// Transpose transposes m in place by swapping each pair across the diagonal.
// Diagonal cells stay put; n(n-1)/2 swaps in total.
func (m *Square[T]) Transpose() {
	n := m.size
	for y := 0; y < n; y++ {
		for x := y + 1; x < n; x++ {
			m.data[y*n+x], m.data[x*n+y] = m.data[x*n+y], m.data[y*n+x]
		}
	}
}

// Conjugate returns a new matrix with every cell replaced by its conjugate.
// For real scalar kinds the result equals m.
func (m *Square[T]) Conjugate() *Square[T] {
	res := m.emptyLike()
	for i, v := range m.data {
		res.data[i] = Conj(v)
	}

	return res
}

// ConjugateSelf conjugates every cell of m in place.
func (m *Square[T]) ConjugateSelf() {
	for i, v := range m.data {
		m.data[i] = Conj(v)
	}
}
