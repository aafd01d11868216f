// SPDX-License-Identifier: MIT

// Package matrix - Square storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula y*size + x.
//   - Guarantee safety at the public surface: Get/Set report ok=false instead of panicking.
//   - Keep the invariant len(data) == size*size across every mutation, Resize included.
//
// Complexity quicksheet:
//   - New: O(n²) zero-init; Get/Set: O(1); Clone: O(n²); Resize: O(n'²).
package matrix

import (
	"fmt"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtCellSep = " "
	_fmtRowEnd  = "\n"
)

const panicNegativeSize = "matrix: size must be >= 0"

// New creates a size×size zero matrix.
// Implementation:
//   - Stage 1: validate size >= 0 (negative is a programmer error and panics).
//   - Stage 2: resolve the numeric policy from opts.
//   - Stage 3: allocate a zero-filled buffer of size*size cells.
//
// Behavior highlights:
//   - New[T](0) is the empty matrix: Size()==0, no cells.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func New[T Scalar](size int, opts ...Option) *Square[T] {
	if size < 0 {
		panic(panicNegativeSize)
	}
	o := gatherOptions(opts...)

	return &Square[T]{
		size: size,
		data: make([]T, size*size), // make() zero-fills deterministically
		eps:  o.eps,
	}
}

// NewFromRows builds a matrix from row slices; rows[y][x] becomes cell (x, y).
// Implementation:
//   - Stage 1: validate the input is n×n (no ragged rows).
//   - Stage 2: copy rows into a fresh buffer in row-major order.
//
// Errors:
//   - ErrNonSquare when any row length differs from len(rows).
//
// Complexity:
//   - Time O(n²), Space O(n²). Input slices are not retained.
func NewFromRows[T Scalar](rows [][]T, opts ...Option) (*Square[T], error) {
	if err := validateRows(rows); err != nil {
		return nil, matrixErrorf(opNewFromRows, err)
	}
	m := New[T](len(rows), opts...)
	for y := range rows {
		copy(m.data[y*m.size:(y+1)*m.size], rows[y])
	}

	return m, nil
}

// Size returns the number of rows (and columns).
// Complexity: O(1).
func (m *Square[T]) Size() int {
	return m.size
}

// Epsilon returns the pivot tolerance carried by m.
func (m *Square[T]) Epsilon() float64 {
	return m.eps
}

// inBounds reports whether (x, y) addresses a cell of m.
func (m *Square[T]) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < m.size && y < m.size
}

// Get returns the element at column x, row y.
// ok is false when either coordinate falls outside [0, Size()).
// Complexity: O(1).
func (m *Square[T]) Get(x, y int) (v T, ok bool) {
	if !m.inBounds(x, y) {
		return v, false
	}

	return m.data[y*m.size+x], true
}

// Set writes v at column x, row y and returns the previous value.
// Implementation:
//   - Stage 1: compute the linear index y*size + x.
//   - Stage 2: reject coordinates outside [0, size) and any index that is
//     negative or >= len(data); nothing is written in that case.
//   - Stage 3: swap the value in and return the old one.
//
// Behavior highlights:
//   - Never writes past the buffer and never wraps into a neighbouring row.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Square[T]) Set(x, y int, v T) (old T, ok bool) {
	idx := y*m.size + x
	if !m.inBounds(x, y) || idx < 0 || idx >= len(m.data) {
		return old, false
	}
	old = m.data[idx]
	m.data[idx] = v

	return old, true
}

// Resize replaces the buffer with a zero-filled n×n buffer and returns the old size.
// The operation is destructive: previous contents are discarded, even when
// n equals the current size. Negative n panics.
// Complexity: O(n²).
func (m *Square[T]) Resize(n int) int {
	if n < 0 {
		panic(panicNegativeSize)
	}
	old := m.size
	m.size = n
	m.data = make([]T, n*n)

	return old
}

// Clone returns a deep copy with an independent backing buffer.
// Complexity: O(n²).
func (m *Square[T]) Clone() *Square[T] {
	buf := make([]T, len(m.data))
	copy(buf, m.data)

	return &Square[T]{size: m.size, data: buf, eps: m.eps}
}

// Data returns a row-major copy of the cells.
func (m *Square[T]) Data() []T {
	out := make([]T, len(m.data))
	copy(out, m.data)

	return out
}

// Rows returns the cells as a fresh slice of rows.
func (m *Square[T]) Rows() [][]T {
	out := make([][]T, m.size)
	for y := 0; y < m.size; y++ {
		out[y] = make([]T, m.size)
		copy(out[y], m.data[y*m.size:(y+1)*m.size])
	}

	return out
}

// Trace returns the sum of the diagonal cells (zero for the empty matrix).
func (m *Square[T]) Trace() T {
	var sum T
	for i := 0; i < m.size; i++ {
		sum += m.data[i*m.size+i]
	}

	return sum
}

// String renders one row per line, cells separated by a single space, with a
// trailing newline after the final row. The empty matrix renders "".
// Complexity: O(n²).
func (m *Square[T]) String() string {
	var sb strings.Builder
	for y := 0; y < m.size; y++ {
		for x := 0; x < m.size; x++ {
			if x > 0 {
				sb.WriteString(_fmtCellSep)
			}
			sb.WriteString(formatScalar(m.data[y*m.size+x]))
		}
		sb.WriteString(_fmtRowEnd)
	}

	return sb.String()
}

// GoString supports %#v with size and epsilon for debugging.
func (m *Square[T]) GoString() string {
	return fmt.Sprintf("matrix.Square[%T]{size:%d, eps:%g, data:%v}", *new(T), m.size, m.eps, m.data)
}
