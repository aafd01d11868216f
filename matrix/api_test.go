// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/Melephas/graph-reduce/matrix"
	"github.com/stretchr/testify/require"
)

func TestNewIdentity(t *testing.T) {
	requireCells(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, matrix.NewIdentity[float64](3))
	require.Equal(t, 0, matrix.NewIdentity[float64](0).Size())
	require.Equal(t, complex128(1), matrix.NewIdentity[complex128](2).Trace()/2)

	a := matrix.New[float64](2, matrix.WithEpsilon(1e-6))
	id := matrix.IdentityLike(a)
	require.Equal(t, 2, id.Size())
	require.Equal(t, 1e-6, id.Epsilon())
	require.Nil(t, matrix.IdentityLike[float64](nil))
}

func TestAliases(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2}, {3, 4}})
	b := mustRows(t, [][]float64{{0, 1}, {1, 0}})

	s1, _ := matrix.Sum(a, b)
	s2, _ := matrix.Add(a, b)
	require.True(t, matrix.Equal(s1, s2))

	d1, _ := matrix.Diff(a, b)
	d2, _ := matrix.Sub(a, b)
	require.True(t, matrix.Equal(d1, d2))

	p1, _ := matrix.Product(a, b)
	p2, _ := matrix.Mul(a, b)
	require.True(t, matrix.Equal(p1, p2))

	require.True(t, matrix.Equal(a.Transposed(), matrix.T(a)))

	i1, err := matrix.InverseOf(a)
	require.NoError(t, err)
	i2, err := a.Inverse()
	require.NoError(t, err)
	require.True(t, matrix.Equal(i1, i2))
}

func TestEqual(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2}, {3, 4}})
	require.True(t, matrix.Equal(a, a.Clone()))
	require.False(t, matrix.Equal(a, matrix.New[float64](2)))
	require.False(t, matrix.Equal(a, matrix.New[float64](3)))
	require.False(t, matrix.Equal(a, nil))
	require.True(t, matrix.Equal[float64](nil, nil))
}

func TestApproxEqual(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2}, {3, 4}})
	b := mustRows(t, [][]float64{{1 + 1e-12, 2}, {3, 4 - 1e-12}})
	require.True(t, matrix.ApproxEqual(a, b, 1e-9))
	require.False(t, matrix.ApproxEqual(a, b, 0))
	require.False(t, matrix.ApproxEqual(a, matrix.New[float64](3), 1))

	c := mustComplexRows(t, [][]complex128{{1 + 1i}})
	d := mustComplexRows(t, [][]complex128{{1 + 1.5i}})
	require.False(t, matrix.ApproxEqual(c, d, 0.1))
	require.True(t, matrix.ApproxEqual(c, d, 0.5))
}

func TestScalarHelpers(t *testing.T) {
	require.Equal(t, 3.0, matrix.Conj(3.0))
	require.Equal(t, complex128(1-2i), matrix.Conj(complex128(1+2i)))
	require.Equal(t, complex64(1-2i), matrix.Conj(complex64(1+2i)))
	require.Equal(t, 5.0, matrix.Abs(complex128(3+4i)))
	require.Equal(t, 2.0, matrix.Abs(float32(-2)))
}
