// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks.
//   - Each facade delegates to the canonical kernel.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.

package matrix

import "gonum.org/v1/gonum/floats/scalar"

// ---------- Constructors ----------

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Complexity: O(n²) zeroing + O(n) diagonal writes.
func NewIdentity[T Scalar](n int, opts ...Option) *Square[T] {
	id := New[T](n, opts...)
	for i := 0; i < n; i++ {
		id.data[i*n+i] = 1
	}

	return id
}

// IdentityLike returns the identity with m's size and epsilon policy.
// A nil input yields nil.
func IdentityLike[T Scalar](m *Square[T]) *Square[T] {
	if m == nil {
		return nil
	}

	return NewIdentity[T](m.size, WithEpsilon(m.eps))
}

// ---------- Aliases ----------

// Sum is an alias for Add.
func Sum[T Scalar](a, b *Square[T]) (*Square[T], error) { return Add(a, b) }

// Diff is an alias for Sub.
func Diff[T Scalar](a, b *Square[T]) (*Square[T], error) { return Sub(a, b) }

// Product is an alias for Mul.
func Product[T Scalar](a, b *Square[T]) (*Square[T], error) { return Mul(a, b) }

// T returns mᵀ as a new matrix.
func T[E Scalar](m *Square[E]) *Square[E] { return m.Transposed() }

// InverseOf is an alias for m.Inverse().
func InverseOf[T Scalar](m *Square[T]) (*Square[T], error) { return m.Inverse() }

// Adjoint returns the Hermitian adjoint (conjugate transpose) of m.
// It is the composition m.Transposed().Conjugate(); for real kinds it equals mᵀ.
func Adjoint[T Scalar](m *Square[T]) *Square[T] {
	return m.Transposed().Conjugate()
}

// ---------- Comparison ----------

// Equal reports exact cell-wise equality. The epsilon policy is ignored.
// Two nil matrices are equal; nil and non-nil are not.
func Equal[T Scalar](a, b *Square[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.size != b.size {
		return false
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false
		}
	}

	return true
}

// ApproxEqual reports whether a and b have the same size and every cell
// agrees within tol on both real and imaginary components.
// AI-Hints: use with tol = a.Epsilon() to check A·A⁻¹ against the identity.
func ApproxEqual[T Scalar](a, b *Square[T], tol float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.size != b.size {
		return false
	}
	var ar, ai, br, bi float64
	for i := range a.data {
		ar, ai = parts(a.data[i])
		br, bi = parts(b.data[i])
		if !scalar.EqualWithinAbs(ar, br, tol) || !scalar.EqualWithinAbs(ai, bi, tol) {
			return false
		}
	}

	return true
}
