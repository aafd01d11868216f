// SPDX-License-Identifier: MIT

// Package matrix: domain types.
// This file holds ONLY the Square value type and its compile-time
// conformance checks. Errors, options and scalar helpers live in
// dedicated files (errors.go, options.go, scalar.go).
package matrix

import "fmt"

// Square is an n×n matrix of scalars stored in a flat row-major buffer.
//   - size is the number of rows and columns (>= 0).
//   - data holds size*size cells; cell (x, y) lives at y*size + x.
//   - eps is the numeric tolerance used by pivoting and singularity checks.
//
// The zero value is a usable 0×0 matrix with the default epsilon policy
// disabled (eps == 0); prefer New to get DefaultEpsilon.
type Square[T Scalar] struct {
	size int     // rows == cols
	data []T     // len(data) == size*size at all times
	eps  float64 // pivot tolerance, >= 0
}

// Compile-time assertion for fmt.Stringer conformance.
var (
	_ fmt.Stringer = (*Square[float64])(nil)
	_ fmt.Stringer = (*Square[complex128])(nil)
)
