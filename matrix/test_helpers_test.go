// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed so exact comparisons stay exact.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/Melephas/graph-reduce/matrix"
	"github.com/stretchr/testify/require"
)

// tol is the comparison tolerance used for float64 results in tests.
const tol = 1e-9

// mustRows builds a float64 matrix from rows or fails the test.
func mustRows(tb testing.TB, rows [][]float64, opts ...matrix.Option) *matrix.Square[float64] {
	tb.Helper()
	m, err := matrix.NewFromRows(rows, opts...)
	require.NoError(tb, err)

	return m
}

// mustComplexRows builds a complex128 matrix from rows or fails the test.
func mustComplexRows(tb testing.TB, rows [][]complex128) *matrix.Square[complex128] {
	tb.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(tb, err)

	return m
}

// fillRand fills m with deterministic values in [-1, 1).
func fillRand(m *matrix.Square[float64], seed int64) {
	r := rand.New(rand.NewSource(seed))
	n := m.Size()
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			m.Set(x, y, 2*r.Float64()-1)
		}
	}
}

// fillRandInts fills m with deterministic integer values in [-50, 50].
// Sums and differences of such cells are exact in float64.
func fillRandInts(m *matrix.Square[float64], seed int64) {
	r := rand.New(rand.NewSource(seed))
	n := m.Size()
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			m.Set(x, y, float64(r.Intn(101)-50))
		}
	}
}

// wellConditioned returns a random n×n matrix with a dominant diagonal,
// so it is comfortably invertible.
func wellConditioned(n int, seed int64) *matrix.Square[float64] {
	m := matrix.New[float64](n)
	fillRand(m, seed)
	for i := 0; i < n; i++ {
		v, _ := m.Get(i, i)
		m.Set(i, i, v+float64(n))
	}

	return m
}

// requireCells asserts m has exactly the given rows (exact comparison).
func requireCells[T matrix.Scalar](tb testing.TB, want [][]T, m *matrix.Square[T]) {
	tb.Helper()
	require.Equal(tb, len(want), m.Size())
	require.Equal(tb, want, m.Rows())
}
