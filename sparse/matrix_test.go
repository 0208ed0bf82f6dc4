// SPDX-License-Identifier: MIT
// Package sparse_test contains unit tests for construction and element access.
package sparse_test

import (
	"testing"

	"github.com/katalvlaran/sparsemat/sparse"
	"github.com/stretchr/testify/require"
)

func TestNew_Shapes(t *testing.T) {
	m, err := sparse.New(3, 4)
	require.NoError(t, err)
	r, c := m.Dims()
	require.Equal(t, 3, r)
	require.Equal(t, 4, c)
	require.Equal(t, sparse.Shape{Rows: 3, Cols: 4}, m.Shape())
	require.Zero(t, m.Nnz())

	// 0×0 is legal (a matrix pending a load).
	z, err := sparse.New(0, 0)
	require.NoError(t, err)
	require.Zero(t, z.Rows())
	require.Zero(t, z.Cols())
}

func TestNew_NegativeShape(t *testing.T) {
	_, err := sparse.New(-1, 2)
	require.ErrorIs(t, err, sparse.ErrBadShape)

	_, err = sparse.New(2, -1)
	require.ErrorIs(t, err, sparse.ErrBadShape)
}

func TestWithCapacity_PanicsOnNegative(t *testing.T) {
	require.Panics(t, func() { sparse.WithCapacity(-1) })
	require.NotPanics(t, func() { sparse.WithCapacity(0) })
}

func TestGet_ImplicitZero(t *testing.T) {
	m := mustBuild(t, 2, 3, cell{0, 1, 7})

	require.Equal(t, 7, m.Get(0, 1))
	require.Equal(t, 0, m.Get(1, 2), "absent coordinate reads 0")
	require.Equal(t, 0, m.Get(-1, 0), "negative row reads 0")
	require.Equal(t, 0, m.Get(0, 3), "column past the shape reads 0")
	require.Equal(t, 0, m.Get(5, 5))
}

func TestSet_ZeroPrunes(t *testing.T) {
	m := mustBuild(t, 2, 2, cell{0, 0, 5}, cell{1, 1, -3})
	require.Equal(t, 2, m.Nnz())

	require.NoError(t, m.Set(0, 0, 0))
	require.Equal(t, 0, m.Get(0, 0))
	require.False(t, m.Has(0, 0))
	require.Equal(t, 1, m.Nnz())
	require.NotContains(t, m.String(), "(0, 0,")

	// Deleting an absent coordinate is a no-op.
	require.NoError(t, m.Set(0, 1, 0))
	require.Equal(t, 1, m.Nnz())
}

func TestSet_Overwrite(t *testing.T) {
	m := mustBuild(t, 2, 2, cell{1, 0, 4})
	require.NoError(t, m.Set(1, 0, 9))
	require.Equal(t, 9, m.Get(1, 0))
	require.Equal(t, 1, m.Nnz())
}

func TestSet_NoBoundsCheckByDefault(t *testing.T) {
	m := mustBuild(t, 2, 2)
	require.NoError(t, m.Set(5, 5, 1))
	require.True(t, m.Has(5, 5))
	require.Equal(t, 0, m.Get(5, 5), "reads outside the shape are always 0")
}

func TestSet_ZeroValueMatrix(t *testing.T) {
	var m sparse.Matrix
	require.NotPanics(t, func() {
		require.NoError(t, m.Set(0, 0, 1))
	})
	require.True(t, m.Has(0, 0))
	require.Equal(t, 1, m.Nnz())

	require.NoError(t, m.Set(0, 0, 0))
	require.Equal(t, 0, m.Nnz())
}

func TestSet_StrictBounds(t *testing.T) {
	m, err := sparse.New(2, 2, sparse.WithStrictBounds())
	require.NoError(t, err)

	require.ErrorIs(t, m.Set(2, 0, 1), sparse.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 1), sparse.ErrOutOfRange)
	require.Zero(t, m.Nnz())

	require.NoError(t, m.Set(1, 1, 1))
	require.Equal(t, 1, m.Get(1, 1))
}

func TestEntries_RowMajor(t *testing.T) {
	m := mustBuild(t, 3, 3, cell{2, 0, 1}, cell{0, 2, 2}, cell{0, 1, 3}, cell{1, 1, 4})

	got := m.Entries()
	want := []sparse.Entry{
		{Coord: sparse.Coord{Row: 0, Col: 1}, Value: 3},
		{Coord: sparse.Coord{Row: 0, Col: 2}, Value: 2},
		{Coord: sparse.Coord{Row: 1, Col: 1}, Value: 4},
		{Coord: sparse.Coord{Row: 2, Col: 0}, Value: 1},
	}
	require.Equal(t, want, got)
}

func TestRange_EarlyStop(t *testing.T) {
	m := mustRandom(t, 10, 10, 20, 1)
	visited := 0
	m.Range(func(_, _, _ int) bool {
		visited++
		return visited < 5
	})
	require.Equal(t, 5, visited)
}

func TestClone_Independent(t *testing.T) {
	m := mustBuild(t, 2, 2, cell{0, 0, 1})
	c := m.Clone()
	require.True(t, m.Equal(c))

	require.NoError(t, c.Set(1, 1, 2))
	require.False(t, m.Equal(c))
	require.Equal(t, 0, m.Get(1, 1))
}

func TestEqual(t *testing.T) {
	a := mustBuild(t, 2, 2, cell{0, 0, 1})
	require.True(t, a.Equal(mustBuild(t, 2, 2, cell{0, 0, 1})))
	require.False(t, a.Equal(mustBuild(t, 2, 3, cell{0, 0, 1})), "shape differs")
	require.False(t, a.Equal(mustBuild(t, 2, 2, cell{0, 0, 2})), "value differs")
	require.False(t, a.Equal(mustBuild(t, 2, 2, cell{0, 1, 1})), "coordinate differs")
	require.False(t, a.Equal(nil))

	var n *sparse.Matrix
	require.True(t, n.Equal(nil))
}

func TestTranspose(t *testing.T) {
	m := mustBuild(t, 2, 3, cell{0, 2, 5}, cell{1, 0, -1})
	tr := m.Transpose()
	require.Equal(t, sparse.Shape{Rows: 3, Cols: 2}, tr.Shape())
	requireEntries(t, tr, cell{2, 0, 5}, cell{0, 1, -1})
	require.True(t, m.Equal(tr.Transpose()))
}
