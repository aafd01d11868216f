// SPDX-License-Identifier: MIT

// Package matrix: Gaussian elimination with partial pivoting (PA = LU).
//
// Purpose:
//   - One elimination kernel shared by Determinant, IsSingular, Inverse and Solve.
//
// Implementation:
//   - Stage 1: copy A into a scratch buffer; perm = identity, sign = +1.
//   - Stage 2: for each column k pick the row r >= k with the largest |a(r,k)|,
//     swap it into row k (flip sign), and stop if |pivot| <= eps.
//   - Stage 3: store multipliers l(i,k) = a(i,k)/a(k,k) below the diagonal and
//     eliminate the rest of row i.
//
// Behavior highlights:
//   - Unit-lower L and upper U share one buffer (multipliers below the diagonal).
//   - A column with no usable pivot marks the factorization singular; the
//     partially reduced buffer is then discarded by callers.
//
// Complexity:
//   - Time O(n³), Space O(n²) scratch + O(n) permutation.
package matrix

// luFactors is the result of eliminating an n×n matrix.
type luFactors[T Scalar] struct {
	n        int
	lu       []T   // U on/above the diagonal, L multipliers below
	perm     []int // perm[i] = source row now at position i
	sign     int   // +1 or -1, flipped on every row swap
	singular bool  // true when a column had no pivot above eps
}

// factorize runs elimination over a copy of data; data itself is never written.
func factorize[T Scalar](data []T, n int, eps float64) luFactors[T] {
	f := luFactors[T]{
		n:    n,
		lu:   make([]T, len(data)),
		perm: make([]int, n),
		sign: 1,
	}
	copy(f.lu, data) // eliminate on scratch; the caller's buffer stays intact
	for i := range f.perm {
		f.perm[i] = i // identity permutation
	}

	var (
		i, j, k, p int
		best, mag  float64
		pivot, fac T
		rowK, rowI int
	)
	for k = 0; k < n; k++ {
		// Partial pivoting: largest magnitude among rows k..n-1 in column k.
		p, best = k, Abs(f.lu[k*n+k])
		for i = k + 1; i < n; i++ {
			if mag = Abs(f.lu[i*n+k]); mag > best {
				p, best = i, mag
			}
		}
		if best <= eps {
			f.singular = true // no usable pivot in column k
			return f
		}
		if p != k {
			// Bring the pivot row up; every swap flips the determinant sign.
			swapRows(f.lu, n, k, p)
			f.perm[k], f.perm[p] = f.perm[p], f.perm[k]
			f.sign = -f.sign
		}

		rowK = k * n
		pivot = f.lu[rowK+k]
		for i = k + 1; i < n; i++ {
			rowI = i * n
			fac = f.lu[rowI+k] / pivot
			f.lu[rowI+k] = fac // L multiplier lives where the zero would be
			if fac == 0 {
				continue // row i already has a zero in column k
			}
			for j = k + 1; j < n; j++ {
				f.lu[rowI+j] -= fac * f.lu[rowK+j]
			}
		}
	}

	return f
}

// swapRows exchanges rows a and b of an n-wide row-major buffer.
func swapRows[T Scalar](buf []T, n, a, b int) {
	ra, rb := buf[a*n:(a+1)*n], buf[b*n:(b+1)*n]
	for j := 0; j < n; j++ {
		ra[j], rb[j] = rb[j], ra[j]
	}
}

// determinant is sign × Π diag(U); zero when singular, one when n == 0.
func (f luFactors[T]) determinant() T {
	if f.singular {
		return 0
	}
	det := T(1)
	for i := 0; i < f.n; i++ {
		det *= f.lu[i*f.n+i]
	}
	if f.sign < 0 {
		det = -det
	}

	return det
}

// solveInto solves A·x = b using the factors, writing x into dst.
// y is scratch of length n. The factorization must not be singular.
func (f luFactors[T]) solveInto(dst, b, y []T) {
	n := f.n
	var (
		i, k int
		sum  T
		row  int
	)
	// Forward substitution: L·y = P·b (unit diagonal).
	for i = 0; i < n; i++ {
		sum = b[f.perm[i]]
		row = i * n
		for k = 0; k < i; k++ {
			sum -= f.lu[row+k] * y[k] // strictly-lower part only
		}
		y[i] = sum // unit diagonal: no division
	}
	// Backward substitution: U·x = y.
	for i = n - 1; i >= 0; i-- {
		sum = y[i]
		row = i * n
		for k = i + 1; k < n; k++ {
			sum -= f.lu[row+k] * dst[k] // dst[k] for k > i is already solved
		}
		dst[i] = sum / f.lu[row+i] // pivot is non-zero: factorization not singular
	}
}
