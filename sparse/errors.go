// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set and structured error types.
// All operations return these sentinels (possibly wrapped) and tests check
// them via errors.Is / errors.As. No operation panics on user input.

package sparse

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "sparse: ..." so it is easy to grep in
// terminal output. Wrap at call sites with sparseErrorf(tag, err); callers
// still match with errors.Is.

var (
	// ErrBadShape is returned when a requested shape is invalid (rows<0 or cols<0).
	ErrBadShape = errors.New("sparse: invalid shape")

	// ErrOutOfRange indicates a coordinate outside [0,rows)×[0,cols).
	// Only returned by Set under WithStrictBounds.
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("sparse: nil matrix")

	// ErrDimensionMismatch indicates incompatible operand shapes,
	// e.g. Add/Sub with different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrFormat indicates a malformed serialized matrix.
	ErrFormat = errors.New("sparse: malformed matrix text")

	// ErrIO indicates that a matrix file could not be read or written.
	ErrIO = errors.New("sparse: i/o failure")

	// ErrNotInteger indicates a non-integral value met while importing float data.
	ErrNotInteger = errors.New("sparse: value is not an integer")

	// ErrUnknownOp indicates an operator selector outside {add, sub, mul}.
	ErrUnknownOp = errors.New("sparse: unknown operation")
)

// sparseErrorf wraps err with an operation tag, keeping errors.Is intact.
func sparseErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// DimensionError reports operand shapes that are incompatible for Op.
type DimensionError struct {
	Op    Op    // operator that rejected the operands
	Left  Shape // shape of the receiver / left operand
	Right Shape // shape of the right operand
}

// Error implements error.
func (e *DimensionError) Error() string {
	var need string
	switch e.Op {
	case OpMul:
		need = "left cols must equal right rows"
	default:
		need = "shapes must match"
	}

	return fmt.Sprintf("%s: cannot %s %v and %v (%s)", ErrDimensionMismatch, e.Op, e.Left, e.Right, need)
}

// Is reports ErrDimensionMismatch as the sentinel of this error.
func (e *DimensionError) Is(target error) bool { return target == ErrDimensionMismatch }

// FormatError reports a malformed line of serialized matrix text.
// Line is 1-based; Line==0 means the input ended before a required line.
type FormatError struct {
	Line   int
	Text   string
	Reason string
}

// Error implements error.
func (e *FormatError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("%s: %s", ErrFormat, e.Reason)
	}

	return fmt.Sprintf("%s: line %d %q: %s", ErrFormat, e.Line, e.Text, e.Reason)
}

// Is reports ErrFormat as the sentinel of this error.
func (e *FormatError) Is(target error) bool { return target == ErrFormat }

// IOError reports a failed file operation on a matrix file.
type IOError struct {
	Op   string // "load", "save", "list", "mkdir"
	Path string
	Err  error
}

// Error implements error.
func (e *IOError) Error() string {
	return fmt.Sprintf("%s: %s %s: %v", ErrIO, e.Op, e.Path, e.Err)
}

// Is reports ErrIO as the sentinel of this error.
func (e *IOError) Is(target error) bool { return target == ErrIO }

// Unwrap exposes the underlying os error (e.g. fs.ErrNotExist).
func (e *IOError) Unwrap() error { return e.Err }
