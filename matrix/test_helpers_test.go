// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernel tests.
//   • Keep all data finite and well-formed unless a test targets the numeric policy.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/alec-broadhurst/linalg/matrix"
	"github.com/stretchr/testify/require"
)

// mustDense builds a rows×cols *Dense from flat values or fails the test.
func mustDense[T matrix.Numeric](tb testing.TB, rows, cols int, values ...T) *matrix.Dense[T] {
	tb.Helper()
	m, err := matrix.NewDense(rows, cols, values)
	require.NoError(tb, err)

	return m
}

// mustRows builds a *Dense from a rectangular row-of-rows literal or fails the test.
func mustRows[T matrix.Numeric](tb testing.TB, data [][]T) *matrix.Dense[T] {
	tb.Helper()
	require.NotEmpty(tb, data, "mustRows needs at least one row")
	m, err := matrix.NewDenseRows(len(data), len(data[0]), data)
	require.NoError(tb, err)

	return m
}

// mustZeros allocates a rows×cols zero matrix or fails the test.
func mustZeros[T matrix.Numeric](tb testing.TB, rows, cols int) *matrix.Dense[T] {
	tb.Helper()
	m, err := matrix.NewZeros[T](rows, cols)
	require.NoError(tb, err)

	return m
}

// mustIdentity allocates I_n or fails the test.
func mustIdentity[T matrix.Numeric](tb testing.TB, n int) *matrix.Dense[T] {
	tb.Helper()
	m, err := matrix.NewIdentity[T](n)
	require.NoError(tb, err)

	return m
}

// toRows renders m as a row-of-rows slice for readable require.Equal diffs.
func toRows[T matrix.Numeric](tb testing.TB, m *matrix.Dense[T]) [][]T {
	tb.Helper()
	out := make([][]T, m.Rows())
	for i := range out {
		row, err := m.Row(i)
		require.NoError(tb, err)
		out[i] = row
	}

	return out
}

// randDense fills a rows×cols float64 matrix from a seeded source in [-1, 1).
// Deterministic for a given seed.
func randDense(tb testing.TB, rows, cols int, seed int64) *matrix.Dense[float64] {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	vals := make([]float64, rows*cols)
	for k := range vals {
		vals[k] = rng.Float64()*2 - 1
	}

	return mustDense(tb, rows, cols, vals...)
}

// randIntDense fills a rows×cols int matrix with small values in [-9, 9].
func randIntDense(tb testing.TB, rows, cols int, seed int64) *matrix.Dense[int] {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	vals := make([]int, rows*cols)
	for k := range vals {
		vals[k] = rng.Intn(19) - 9
	}

	return mustDense(tb, rows, cols, vals...)
}
