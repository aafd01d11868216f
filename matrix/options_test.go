// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/Melephas/graph-reduce/matrix"
	"github.com/stretchr/testify/require"
)

// TestDefaultOptions_Documented verifies the resolved defaults equal the documented constants.
func TestDefaultOptions_Documented(t *testing.T) {
	o := matrix.GatherOptionsSnapshot_TestOnly()
	require.Equal(t, matrix.DefaultEpsilon, o.Eps)
	require.Equal(t, matrix.DefaultEpsilon, matrix.New[float64](2).Epsilon())
}

// TestWithEpsilon_LastWriterWins ensures options apply in order.
func TestWithEpsilon_LastWriterWins(t *testing.T) {
	o := matrix.GatherOptionsSnapshot_TestOnly(matrix.WithEpsilon(1e-3), matrix.WithEpsilon(1e-6))
	require.Equal(t, 1e-6, o.Eps)

	o = matrix.GatherOptionsSnapshot_TestOnly(matrix.WithEpsilon(0))
	require.Zero(t, o.Eps)
}

// TestWithEpsilon_PanicsOnInvalid documents the programmer-error contract.
func TestWithEpsilon_PanicsOnInvalid(t *testing.T) {
	for _, eps := range []float64{-1e-9, math.NaN(), math.Inf(1), math.Inf(-1)} {
		require.Panics(t, func() { matrix.WithEpsilon(eps) }, "eps=%v", eps)
	}
}

// TestEpsilonPropagation checks results inherit the left operand's policy.
func TestEpsilonPropagation(t *testing.T) {
	a := matrix.NewIdentity[float64](2, matrix.WithEpsilon(1e-4))
	b := matrix.NewIdentity[float64](2)

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	require.Equal(t, 1e-4, sum.Epsilon())

	inv, err := a.Inverse()
	require.NoError(t, err)
	require.Equal(t, 1e-4, inv.Epsilon())
	require.Equal(t, 1e-4, a.Transposed().Epsilon())
	require.Equal(t, 1e-4, matrix.IdentityLike(a).Epsilon())
}
