// SPDX-License-Identifier: MIT
// Package matrix provides arithmetic on Square matrices: element-wise
// addition and subtraction, matrix multiplication, negation and scalar
// scaling, plus in-place variants on the receiver. All binary kernels perform
// strict fail-fast validation and return clear errors on size mismatches.
//
// Purpose:
//   - Define operation tags and the shared error wrapper.
//   - Implement the arithmetic kernels on the flat row-major buffer.
//
// Notes:
//   - Results inherit the epsilon policy of the left operand.
//   - In-place variants leave the receiver untouched on error.

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opAddAssign   = "AddAssign"
	opSubAssign   = "SubAssign"
	opMulAssign   = "MulAssign"
	opInverse     = "Inverse"
	opInvert      = "Invert"
	opSolve       = "Solve"
	opNewFromRows = "NewFromRows"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSubInto writes dst[i] = a[i] + sign*b[i] over equally sized buffers.
// sign is +1 for Add and -1 for Sub.
func addSubInto[T Scalar](dst, a, b []T, sign T) {
	for i := range dst { // deterministic 0..n-1
		dst[i] = a[i] + sign*b[i]
	}
}

// mulInto computes dst = a × b for n×n row-major buffers using i→k→j order.
// dst must not alias a or b and must be zeroed by the caller.
// Every product is accumulated, so 0·Inf and 0·NaN propagate as NaN.
// Complexity: O(n³).
func mulInto[T Scalar](dst, a, b []T, n int) {
	var (
		i, j, k            int
		av                 T
		rowA, rowB, rowOut int
	)
	for i = 0; i < n; i++ {
		rowA = i * n   // start of row i in a
		rowOut = i * n // start of row i in dst
		for k = 0; k < n; k++ {
			av = a[rowA+k] // hoisted a(i,k), reused across the j loop
			rowB = k * n   // row k of b is walked contiguously
			for j = 0; j < n; j++ {
				dst[rowOut+j] += av * b[rowB+j]
			}
		}
	}
}

// Add computes the element-wise sum C = A + B and returns a fresh matrix.
// Implementation:
//   - Stage 1: Validate both operands are non-nil and have identical size.
//   - Stage 2: Single flat loop over the row-major buffers.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (size mismatch).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func Add[T Scalar](a, b *Square[T]) (*Square[T], error) {
	if err := ValidateSameSize(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	res := a.emptyLike()
	addSubInto(res.data, a.data, b.data, 1)

	return res, nil
}

// Sub computes the element-wise difference C = A - B and returns a fresh matrix.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (size mismatch).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func Sub[T Scalar](a, b *Square[T]) (*Square[T], error) {
	if err := ValidateSameSize(a, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	res := a.emptyLike()
	addSubInto(res.data, a.data, b.data, -1)

	return res, nil
}

// Mul performs standard matrix multiplication C = A × B.
// Cell (i,j) of the result is Σ_k A(i,k)·B(k,j).
// Implementation:
//   - Stage 1: Validate A,B (not nil) and equal size.
//   - Stage 2: i→k→j triple loop with row-major strides.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (size mismatch).
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Mul[T Scalar](a, b *Square[T]) (*Square[T], error) {
	if err := ValidateSameSize(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	res := a.emptyLike()
	mulInto(res.data, a.data, b.data, a.size)

	return res, nil
}

// Neg returns the element-wise additive inverse of a. A nil input yields nil.
// Complexity: O(n²).
func Neg[T Scalar](a *Square[T]) *Square[T] {
	if a == nil {
		return nil
	}
	res := a.emptyLike()
	for i, v := range a.data {
		res.data[i] = -v
	}

	return res
}

// Scale returns alpha*a. A nil input yields nil.
// Complexity: O(n²).
func Scale[T Scalar](a *Square[T], alpha T) *Square[T] {
	if a == nil {
		return nil
	}
	res := a.emptyLike()
	for i, v := range a.data {
		res.data[i] = alpha * v
	}

	return res
}

// AddAssign sets m = m + b.
// Errors: ErrNilMatrix, ErrDimensionMismatch; m is unchanged on error.
func (m *Square[T]) AddAssign(b *Square[T]) error {
	if err := ValidateSameSize(m, b); err != nil {
		return matrixErrorf(opAddAssign, err)
	}
	addSubInto(m.data, m.data, b.data, 1)

	return nil
}

// SubAssign sets m = m - b.
// Errors: ErrNilMatrix, ErrDimensionMismatch; m is unchanged on error.
func (m *Square[T]) SubAssign(b *Square[T]) error {
	if err := ValidateSameSize(m, b); err != nil {
		return matrixErrorf(opSubAssign, err)
	}
	addSubInto(m.data, m.data, b.data, -1)

	return nil
}

// MulAssign sets m = m × b.
// The product is accumulated into a scratch buffer and swapped in at the
// end, so m.MulAssign(m) is safe.
// Errors: ErrNilMatrix, ErrDimensionMismatch; m is unchanged on error.
// Complexity: O(n³) time, O(n²) scratch.
func (m *Square[T]) MulAssign(b *Square[T]) error {
	if err := ValidateSameSize(m, b); err != nil {
		return matrixErrorf(opMulAssign, err)
	}
	tmp := make([]T, len(m.data))
	mulInto(tmp, m.data, b.data, m.size)
	m.data = tmp

	return nil
}

// emptyLike allocates a zero matrix with m's size and policy.
func (m *Square[T]) emptyLike() *Square[T] {
	return &Square[T]{size: m.size, data: make([]T, len(m.data)), eps: m.eps}
}
