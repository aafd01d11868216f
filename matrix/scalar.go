// SPDX-License-Identifier: MIT

// Package matrix: scalar capability.
//
// Purpose:
//   - Name the scalar kinds the engine accepts as an explicit constraint.
//   - Provide per-kind conjugation, magnitude and formatting so real and
//     complex scalars satisfy the same contract through distinct behavior.
//
// Arithmetic (+, -, *, /), zero (var z T) and one (T(1)) come from the
// language for every kind in the set.
package matrix

import (
	"math"
	"math/cmplx"
	"strconv"
)

// Scalar is the set of field types a Square may hold.
// Integer kinds are excluded on purpose: inversion needs exact division.
type Scalar interface {
	float32 | float64 | complex64 | complex128
}

// Conj returns the complex conjugate of v; real kinds are returned unchanged.
// A zero imaginary part stays +0, so conjugates never render as "-0i".
func Conj[T Scalar](v T) T {
	switch x := any(v).(type) {
	case complex64:
		return any(complex(real(x), negImag(imag(x)))).(T)
	case complex128:
		return any(complex(real(x), negImag(imag(x)))).(T)
	}

	return v
}

// negImag negates an imaginary part, folding both signed zeros to +0.
func negImag[F float32 | float64](v F) F {
	if v == 0 {
		return 0
	}

	return -v
}

// Abs returns the magnitude |v| as float64 (modulus for complex kinds).
func Abs[T Scalar](v T) float64 {
	switch x := any(v).(type) {
	case float32:
		return math.Abs(float64(x))
	case float64:
		return math.Abs(x)
	case complex64:
		return cmplx.Abs(complex128(x))
	case complex128:
		return cmplx.Abs(x)
	}

	return 0
}

// parts splits v into real and imaginary components.
func parts[T Scalar](v T) (re, im float64) {
	switch x := any(v).(type) {
	case float32:
		return float64(x), 0
	case float64:
		return x, 0
	case complex64:
		return float64(real(x)), float64(imag(x))
	case complex128:
		return real(x), imag(x)
	}

	return 0, 0
}

// formatScalar renders v with the shortest exact representation for its kind.
func formatScalar[T Scalar](v T) string {
	switch x := any(v).(type) {
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case complex64:
		return strconv.FormatComplex(complex128(x), 'g', -1, 64)
	case complex128:
		return strconv.FormatComplex(x, 'g', -1, 128)
	}

	return ""
}
