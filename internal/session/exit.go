// SPDX-License-Identifier: MIT
package session

import (
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/sparsemat/sparse"
)

// Process exit codes, one per error kind.
const (
	ExitOK        = 0
	ExitFailure   = 1 // anything unclassified
	ExitUsage     = 2
	ExitDimension = 3
	ExitIO        = 4
	ExitFormat    = 5
)

// ExitCode maps err to a process exit code. nil maps to ExitOK.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, sparse.ErrDimensionMismatch):
		return ExitDimension
	case errors.Is(err, sparse.ErrFormat):
		return ExitFormat
	case errors.Is(err, sparse.ErrIO):
		return ExitIO
	case errors.Is(err, ErrUsage), errors.Is(err, ErrNoInputs), errors.Is(err, sparse.ErrUnknownOp):
		return ExitUsage
	default:
		return ExitFailure
	}
}

// Report writes a one-line, human-readable description of err to w.
func Report(w io.Writer, err error) {
	if err == nil {
		return
	}

	var (
		de *sparse.DimensionError
		fe *sparse.FormatError
		ie *sparse.IOError
	)
	switch {
	case errors.As(err, &de):
		if de.Op == sparse.OpMul {
			_, _ = fmt.Fprintf(w, "Error: cannot multiply a %v matrix by a %v matrix: columns of the first must equal rows of the second\n", de.Left, de.Right)
			return
		}
		_, _ = fmt.Fprintf(w, "Error: cannot %s a %v matrix and a %v matrix: dimensions must match\n", de.Op, de.Left, de.Right)
	case errors.As(err, &fe):
		_, _ = fmt.Fprintf(w, "Error: bad matrix file: %v\n", err)
	case errors.As(err, &ie):
		_, _ = fmt.Fprintf(w, "Error: cannot %s %s: %v\n", ie.Op, ie.Path, ie.Err)
	default:
		_, _ = fmt.Fprintf(w, "Error: %v\n", err)
	}
}
