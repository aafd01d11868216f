// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors. Kernels return these
// sentinels wrapped with an operation tag (see matrixErrorf) and tests match
// them via errors.Is. No kernel panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Kernels wrap
// with fmt.Errorf("<Op>: %w", ErrX); callers still use errors.Is to match.
//
// Get/Set never return an error: an out-of-range coordinate is reported as
// ok == false, and the caller decides how to handle it.

var (
	// ErrDimensionMismatch indicates incompatible operand sizes, e.g. Add/Sub/Mul
	// between matrices of different size, or Solve with len(b) != Size().
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrSingular is returned when elimination finds no usable pivot
	// (|pivot| <= eps) while inverting or solving.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrIndexOutOfBounds indicates that a coordinate is outside the buffer.
	// Get/Set report this condition as ok == false instead.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrNilMatrix indicates that a nil *Square (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNonSquare signals that row input was ragged or not n×n.
	ErrNonSquare = errors.New("matrix: input is not square")
)
