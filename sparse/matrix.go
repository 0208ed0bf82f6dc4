// SPDX-License-Identifier: MIT
// Package: sparse
//
// matrix.go - construction and element access for Matrix.
//
// Contract:
//   - New rejects negative dimensions (ErrBadShape); 0×0 is legal.
//   - Get never fails: absent or out-of-range coordinates read as 0.
//   - Set(…, 0) deletes; Set never stores zero.
//
// Complexity:
//   - Get/Set/Has: O(1) amortized map operations.
//   - Entries/Clone/Equal: O(nnz) (Entries adds an O(nnz log nnz) sort).

package sparse

import (
	"fmt"
	"sort"
)

// New creates an empty rows×cols Matrix.
// Stage 1 (Validate): rows, cols ≥ 0.
// Stage 2 (Prepare): apply options, allocate the entry map.
// Complexity: O(1) plus the optional capacity hint.
func New(rows, cols int, opts ...Option) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("New(%d,%d): %w", rows, cols, ErrBadShape)
	}
	o := gatherOptions(opts...)

	return &Matrix{
		rows:   rows,
		cols:   cols,
		data:   make(map[Coord]int, o.capacity),
		strict: o.strict,
	}, nil
}

// newLike allocates an empty result of the given shape, inheriting m's policy.
// Shapes passed here come from validated operands, so no error is possible.
func (m *Matrix) newLike(rows, cols, capacity int) *Matrix {
	return &Matrix{
		rows:   rows,
		cols:   cols,
		data:   make(map[Coord]int, capacity),
		strict: m.strict,
	}
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// Dims returns (rows, cols).
func (m *Matrix) Dims() (int, int) { return m.rows, m.cols }

// Shape returns the shape as a value.
func (m *Matrix) Shape() Shape { return Shape{Rows: m.rows, Cols: m.cols} }

// Nnz returns the number of stored nonzero entries.
func (m *Matrix) Nnz() int { return len(m.data) }

// inBounds reports whether (row, col) lies inside the declared shape.
func (m *Matrix) inBounds(row, col int) bool {
	return row >= 0 && row < m.rows && col >= 0 && col < m.cols
}

// Get returns the value at (row, col), or 0 when nothing is stored there.
// Coordinates outside the shape also read as 0; this is not an error.
func (m *Matrix) Get(row, col int) int {
	if !m.inBounds(row, col) {
		return 0
	}

	// missing key ⇒ zero value of int
	return m.data[Coord{Row: row, Col: col}]
}

// Has reports whether a nonzero value is stored at (row, col).
func (m *Matrix) Has(row, col int) bool {
	_, ok := m.data[Coord{Row: row, Col: col}]

	return ok
}

// Set stores value at (row, col). A zero value removes the coordinate.
// Without WithStrictBounds no range check is made and the error is always nil.
func (m *Matrix) Set(row, col, value int) error {
	if m.strict && !m.inBounds(row, col) {
		return fmt.Errorf("Set(%d,%d) on %v: %w", row, col, m.Shape(), ErrOutOfRange)
	}
	m.put(Coord{Row: row, Col: col}, value)

	return nil
}

// put is the unchecked write shared by Set and the operators.
func (m *Matrix) put(k Coord, value int) {
	if value == 0 {
		delete(m.data, k) // no-op when absent
		return
	}
	if m.data == nil {
		m.data = make(map[Coord]int)
	}
	m.data[k] = value
}

// Range calls fn for every stored entry in unspecified order.
// Iteration stops early when fn returns false. fn must not mutate m.
func (m *Matrix) Range(fn func(row, col, value int) bool) {
	for k, v := range m.data {
		if !fn(k.Row, k.Col, v) {
			return
		}
	}
}

// Entries returns a snapshot of the stored entries in row-major order.
func (m *Matrix) Entries() []Entry {
	out := make([]Entry, 0, len(m.data))
	for k, v := range m.data {
		out = append(out, Entry{Coord: k, Value: v})
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].Row != out[b].Row {
			return out[a].Row < out[b].Row
		}

		return out[a].Col < out[b].Col
	})

	return out
}

// Clone returns an independent deep copy of m.
func (m *Matrix) Clone() *Matrix {
	c := m.newLike(m.rows, m.cols, len(m.data))
	for k, v := range m.data {
		c.data[k] = v
	}

	return c
}

// Equal reports whether m and other have the same shape and the same
// stored entries. Strictness is not compared.
func (m *Matrix) Equal(other *Matrix) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.rows != other.rows || m.cols != other.cols || len(m.data) != len(other.data) {
		return false
	}
	for k, v := range m.data {
		if w, ok := other.data[k]; !ok || w != v {
			return false
		}
	}

	return true
}

// Transpose returns a new cols×rows matrix with every entry mirrored.
// Complexity: O(nnz).
func (m *Matrix) Transpose() *Matrix {
	t := m.newLike(m.cols, m.rows, len(m.data))
	for k, v := range m.data {
		t.data[Coord{Row: k.Col, Col: k.Row}] = v
	}

	return t
}
