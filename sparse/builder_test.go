// SPDX-License-Identifier: MIT
package sparse_test

import (
	"testing"

	"github.com/katalvlaran/sparsemat/sparse"
	"github.com/stretchr/testify/require"
)

func TestRandomSparse_Contract(t *testing.T) {
	m, err := sparse.RandomSparse(50, 40, 200, 42)
	require.NoError(t, err)
	require.Equal(t, sparse.Shape{Rows: 50, Cols: 40}, m.Shape())
	require.Equal(t, 200, m.Nnz())

	m.Range(func(r, c, v int) bool {
		require.True(t, r >= 0 && r < 50 && c >= 0 && c < 40, "(%d,%d) outside shape", r, c)
		require.NotZero(t, v)
		require.LessOrEqual(t, v, 9)
		require.GreaterOrEqual(t, v, -9)
		return true
	})
}

func TestRandomSparse_Deterministic(t *testing.T) {
	a := mustRandom(t, 30, 30, 60, 7)
	b := mustRandom(t, 30, 30, 60, 7)
	c := mustRandom(t, 30, 30, 60, 8)
	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
}

func TestRandomSparse_Full(t *testing.T) {
	m := mustRandom(t, 4, 5, 20, 1)
	require.Equal(t, 20, m.Nnz())
}

func TestRandomSparse_Invalid(t *testing.T) {
	_, err := sparse.RandomSparse(-1, 2, 0, 1)
	require.ErrorIs(t, err, sparse.ErrBadShape)

	_, err = sparse.RandomSparse(2, 2, 5, 1)
	require.ErrorIs(t, err, sparse.ErrBadShape)

	_, err = sparse.RandomSparse(2, 2, -1, 1)
	require.ErrorIs(t, err, sparse.ErrBadShape)

	m, err := sparse.RandomSparse(0, 0, 0, 1)
	require.NoError(t, err)
	require.Zero(t, m.Nnz())
}

func TestRandomSparse_HonorsOptions(t *testing.T) {
	m, err := sparse.RandomSparse(3, 3, 2, 1, sparse.WithStrictBounds())
	require.NoError(t, err)
	require.ErrorIs(t, m.Set(3, 0, 1), sparse.ErrOutOfRange)
}
