// SPDX-License-Identifier: MIT
// Package sparse_test contains test helpers.
//
// Purpose:
//   • Small deterministic fixtures built from literal entry lists.
//   • Comparison helpers that report entry-level differences.

package sparse_test

import (
	"testing"

	"github.com/katalvlaran/sparsemat/sparse"
	"github.com/stretchr/testify/require"
)

// cell is a literal (row, col, value) triple used to build fixtures.
type cell struct{ r, c, v int }

// mustBuild ALLOCATES a rows×cols Matrix and stores cells, failing the test on error.
func mustBuild(tb testing.TB, rows, cols int, cells ...cell) *sparse.Matrix {
	tb.Helper()
	m, err := sparse.New(rows, cols)
	require.NoError(tb, err)
	for _, x := range cells {
		require.NoError(tb, m.Set(x.r, x.c, x.v))
	}
	return m
}

// asMap flattens the stored entries of m for readable require.Equal diffs.
func asMap(m *sparse.Matrix) map[sparse.Coord]int {
	out := make(map[sparse.Coord]int, m.Nnz())
	m.Range(func(r, c, v int) bool {
		out[sparse.Coord{Row: r, Col: c}] = v
		return true
	})
	return out
}

// requireEntries asserts m holds exactly the given cells.
func requireEntries(tb testing.TB, m *sparse.Matrix, cells ...cell) {
	tb.Helper()
	want := make(map[sparse.Coord]int, len(cells))
	for _, x := range cells {
		want[sparse.Coord{Row: x.r, Col: x.c}] = x.v
	}
	require.Equal(tb, want, asMap(m))
}

// mustRandom wraps sparse.RandomSparse for fixtures.
func mustRandom(tb testing.TB, rows, cols, nnz int, seed int64) *sparse.Matrix {
	tb.Helper()
	m, err := sparse.RandomSparse(rows, cols, nnz, seed)
	require.NoError(tb, err)
	return m
}
