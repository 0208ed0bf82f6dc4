// SPDX-License-Identifier: MIT

// Package sparse: domain types (coordinates, shapes, entries, the Matrix itself).
// Errors and options live in dedicated files (errors.go, options.go).
package sparse

import "fmt"

// Coord is the composite (row, col) map key. Structural equality and the
// built-in map hashing give O(1) amortized lookup without building strings.
type Coord struct {
	Row int // row index
	Col int // column index
}

// Entry is one stored nonzero value together with its coordinate.
type Entry struct {
	Coord
	Value int
}

// Shape is a (rows, cols) pair, carried by DimensionError.
type Shape struct {
	Rows int
	Cols int
}

// String renders the shape as "RxC".
func (s Shape) String() string {
	return fmt.Sprintf("%dx%d", s.Rows, s.Cols)
}

// Matrix is a dictionary-of-keys integer matrix.
//
// Invariants:
//   - rows, cols never change after New.
//   - data never holds a zero value; Set(i,j,0) deletes the key.
//
// A Matrix is not safe for concurrent mutation. Concurrent reads of a
// Matrix that nobody mutates are safe.
type Matrix struct {
	rows, cols int           // logical shape
	data       map[Coord]int // nonzero entries only
	strict     bool          // reject out-of-range Set (WithStrictBounds)
}
