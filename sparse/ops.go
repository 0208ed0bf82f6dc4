// SPDX-License-Identifier: MIT
// Package: sparse
//
// ops.go - the three binary operators and the Op dispatcher.
//
// Contract:
//   - Operands are never mutated; every call returns a fresh Matrix.
//   - Shape violations fail before any allocation with *DimensionError.
//   - Results never store zero (all writes go through put).
//
// Complexity:
//   - Add/Sub: O(nnz(a) + nnz(b)); independent of rows×cols.
//   - Mul:     O(nnz(a) × b.Cols()); b is probed by O(1) map lookups.
//     The cost grows with b.Cols() even when b is very sparse.

package sparse

import (
	"fmt"
	"strings"
)

// Op selects a binary operator. The numeric values match the menu digits.
type Op int

const (
	// OpAdd is element-wise addition.
	OpAdd Op = 1
	// OpSub is element-wise subtraction.
	OpSub Op = 2
	// OpMul is the matrix product.
	OpMul Op = 3
)

// String returns the operator verb used in messages.
func (op Op) String() string {
	switch op {
	case OpAdd:
		return "add"
	case OpSub:
		return "subtract"
	case OpMul:
		return "multiply"
	default:
		return fmt.Sprintf("Op(%d)", int(op))
	}
}

// ParseOp accepts a menu digit ("1".."3") or a name
// ("add", "sub", "subtract", "mul", "multiply"), case-insensitively.
func ParseOp(s string) (Op, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "add", "addition":
		return OpAdd, nil
	case "2", "sub", "subtract", "subtraction":
		return OpSub, nil
	case "3", "mul", "multiply", "multiplication":
		return OpMul, nil
	}

	return 0, fmt.Errorf("ParseOp(%q): %w", s, ErrUnknownOp)
}

// Apply dispatches op over (a, b).
func Apply(op Op, a, b *Matrix) (*Matrix, error) {
	switch op {
	case OpAdd:
		return a.Add(b)
	case OpSub:
		return a.Sub(b)
	case OpMul:
		return a.Mul(b)
	}

	return nil, sparseErrorf("Apply", fmt.Errorf("%v: %w", op, ErrUnknownOp))
}

// Add returns m + b.
// Stage 1 (Validate): non-nil operands, identical shapes.
// Stage 2 (Execute): walk the union of stored coordinates.
func (m *Matrix) Add(b *Matrix) (*Matrix, error) {
	if err := validateBinary(OpAdd, m, b); err != nil {
		return nil, sparseErrorf("Add", err)
	}

	return addSub(m, b, 1), nil
}

// Sub returns m - b.
func (m *Matrix) Sub(b *Matrix) (*Matrix, error) {
	if err := validateBinary(OpSub, m, b); err != nil {
		return nil, sparseErrorf("Sub", err)
	}

	return addSub(m, b, -1), nil
}

// addSub computes out = a + sign*b over the union of stored coordinates.
// A coordinate present on one side only reads 0 on the other; sums that
// cancel to 0 are not stored. Entries outside the shape read 0 via Get and
// therefore never reach the result.
func addSub(a, b *Matrix, sign int) *Matrix {
	out := a.newLike(a.rows, a.cols, len(a.data)+len(b.data))

	// Pass 1: every coordinate of a (b may or may not hold a value there).
	for k := range a.data {
		out.put(k, a.Get(k.Row, k.Col)+sign*b.Get(k.Row, k.Col))
	}
	// Pass 2: coordinates stored only in b.
	for k := range b.data {
		if _, seen := a.data[k]; seen {
			continue
		}
		out.put(k, a.Get(k.Row, k.Col)+sign*b.Get(k.Row, k.Col))
	}

	return out
}

// Mul returns the matrix product m × b with shape (m.Rows, b.Cols).
// Stage 1 (Validate): non-nil operands, m.Cols == b.Rows.
// Stage 2 (Execute): for each stored (i,j)→v of m and each k in [0,b.Cols),
// accumulate v*b[j,k] into out[i,k], writing after every step so partial
// sums that cancel are pruned immediately.
//
// Entries of m stored outside its shape (possible without WithStrictBounds)
// are skipped; inside the shape, j < m.Cols == b.Rows, so every probe of b
// is in range.
func (m *Matrix) Mul(b *Matrix) (*Matrix, error) {
	if err := validateBinary(OpMul, m, b); err != nil {
		return nil, sparseErrorf("Mul", err)
	}

	out := m.newLike(m.rows, b.cols, 0)
	var k int
	for ij, v := range m.data {
		if !m.inBounds(ij.Row, ij.Col) {
			continue
		}
		for k = 0; k < b.cols; k++ {
			bjk := b.Get(ij.Col, k)
			if bjk == 0 {
				continue // nothing to accumulate
			}
			dst := Coord{Row: ij.Row, Col: k}
			out.put(dst, out.data[dst]+v*bjk)
		}
	}

	return out, nil
}
