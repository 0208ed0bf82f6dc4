// SPDX-License-Identifier: MIT
// Package: sparse
//
// gonum.go - interop with gonum.org/v1/gonum/mat.
//
// View exposes a Matrix as a read-only mat.Matrix so gonum routines
// (mat.Equal, mat.Formatted, Dense.Mul, ...) can consume it without copying.
// FromGonum imports any integral mat.Matrix.
//
// Arithmetic in this package never goes through gonum; View is for
// interop and verification only.

package sparse

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// View is a read-only float64 view of a Matrix implementing mat.Matrix.
type View struct {
	m *Matrix
}

// compile-time interface check
var _ mat.Matrix = View{}

// AsGonum returns a mat.Matrix view backed by m. Later writes to m are
// visible through the view.
func (m *Matrix) AsGonum() View {
	return View{m: m}
}

// Dims implements mat.Matrix.
func (v View) Dims() (r, c int) {
	return v.m.rows, v.m.cols
}

// At implements mat.Matrix. Out-of-range indices panic, following gonum's
// own convention for mat.Matrix implementations.
func (v View) At(i, j int) float64 {
	if i < 0 || i >= v.m.rows {
		panic(mat.ErrRowAccess)
	}
	if j < 0 || j >= v.m.cols {
		panic(mat.ErrColAccess)
	}

	return float64(v.m.Get(i, j))
}

// T implements mat.Matrix with an implicit transpose.
func (v View) T() mat.Matrix {
	return mat.Transpose{Matrix: v}
}

// FromGonum copies the nonzero entries of a into a new Matrix.
// Every element must be a finite integral value (ErrNotInteger otherwise).
// Complexity: O(r*c) reads, since mat.Matrix exposes no sparsity structure.
func FromGonum(a mat.Matrix, opts ...Option) (*Matrix, error) {
	if a == nil {
		return nil, sparseErrorf("FromGonum", ErrNilMatrix)
	}
	r, c := a.Dims()
	out, err := New(r, c, opts...)
	if err != nil {
		return nil, sparseErrorf("FromGonum", err)
	}

	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			f := a.At(i, j)
			if f == 0 {
				continue
			}
			if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) ||
				f >= math.MaxInt64 || f < math.MinInt64 {
				return nil, fmt.Errorf("FromGonum: (%d,%d)=%g: %w", i, j, f, ErrNotInteger)
			}
			out.put(Coord{Row: i, Col: j}, int(f))
		}
	}

	return out, nil
}
