// SPDX-License-Identifier: MIT

// Package matrix: inversion and linear solves built on the shared elimination.
package matrix

// Inverse returns m⁻¹ without mutating m.
// Implementation:
//   - Stage 1: factorize PA = LU with partial pivoting.
//   - Stage 2: for each identity column e_col, solve L·y = P·e_col then U·x = y.
//   - Stage 3: write x into column col of the result.
//
// Errors:
//   - ErrNilMatrix when m is nil.
//   - ErrSingular when a column has no pivot above Epsilon().
//
// Complexity:
//   - Time O(n³), Space O(n²).
//
// AI-Hints:
//   - Prefer Solve for a single right-hand side; forming m⁻¹ costs n solves.
func (m *Square[T]) Inverse() (*Square[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	inv, err := m.inverseData()
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return &Square[T]{size: m.size, data: inv, eps: m.eps}, nil
}

// Invert replaces m with m⁻¹.
// On ErrSingular the receiver is left unchanged; a nil m yields ErrNilMatrix.
func (m *Square[T]) Invert() error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opInvert, err)
	}
	inv, err := m.inverseData()
	if err != nil {
		return matrixErrorf(opInvert, err)
	}
	m.data = inv

	return nil
}

// inverseData computes the row-major cells of m⁻¹ into a fresh buffer.
func (m *Square[T]) inverseData() ([]T, error) {
	n := m.size
	f := factorize(m.data, n, m.eps)
	if f.singular {
		return nil, ErrSingular
	}

	var (
		out = make([]T, n*n)
		e   = make([]T, n) // identity column
		x   = make([]T, n) // solution column
		y   = make([]T, n) // forward-substitution scratch
	)
	for col := 0; col < n; col++ {
		e[col] = 1
		f.solveInto(x, e, y)
		e[col] = 0
		for i := 0; i < n; i++ {
			out[i*n+col] = x[i]
		}
	}

	return out, nil
}

// Solve returns x such that m·x = b.
//
// Errors:
//   - ErrNilMatrix when m is nil.
//   - ErrDimensionMismatch when len(b) != Size().
//   - ErrSingular when m has no usable pivot in some column.
//
// Complexity:
//   - Time O(n³) for the factorization plus O(n²) for the substitutions.
func (m *Square[T]) Solve(b []T) ([]T, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateVecLen(b, m.size); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	f := factorize(m.data, m.size, m.eps)
	if f.singular {
		return nil, matrixErrorf(opSolve, ErrSingular)
	}
	x := make([]T, m.size)
	f.solveInto(x, b, make([]T, m.size))

	return x, nil
}
