// Package matrix is a generic square-matrix algebra engine.
//
// The matrix package provides:
//
//   - Square[T], a row-major n×n value type over float32, float64,
//     complex64 or complex128 scalars.
//   - Elementwise and matrix arithmetic (Add, Sub, Mul, Neg, Scale) plus
//     in-place variants on the receiver (AddAssign, SubAssign, MulAssign).
//   - Determinant and inversion through Gaussian elimination with partial
//     pivoting, governed by an explicit epsilon policy (WithEpsilon).
//   - Transpose and conjugation; their composition is the Hermitian adjoint.
//
// Matrices are plain values owned by a single caller. Nothing in the
// package locks; wrap a matrix in Synced when it must be shared across
// goroutines.
//
// See the examples in this package for usage patterns.
package matrix
