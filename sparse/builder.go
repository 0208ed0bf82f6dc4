// SPDX-License-Identifier: MIT
// Package: sparse
//
// builder.go - seeded random sparse matrices for tests and benchmarks.
//
// Contract:
//   - rows, cols ≥ 0 and 0 ≤ nnz ≤ rows*cols (else ErrBadShape).
//   - Exactly nnz distinct coordinates are filled with values drawn from
//     [-maxAbsValue, maxAbsValue] \ {0}.
//   - Deterministic: the same (rows, cols, nnz, seed) yields the same matrix.
//
// Complexity:
//   - Expected O(nnz) draws while nnz ≤ rows*cols/2; rejection sampling
//     degrades towards O(rows*cols·log) as the matrix approaches dense.

package sparse

import (
	"fmt"
	"math/rand"
)

const (
	methodRandomSparse = "RandomSparse"
	maxAbsValue        = 9
)

// RandomSparse returns a rows×cols Matrix with nnz nonzero entries drawn
// from a PRNG seeded with seed.
func RandomSparse(rows, cols, nnz int, seed int64, opts ...Option) (*Matrix, error) {
	// 1) Validate parameters early (no side effects on invalid input).
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%s: shape %dx%d: %w", methodRandomSparse, rows, cols, ErrBadShape)
	}
	cells := int64(rows) * int64(cols)
	if nnz < 0 || int64(nnz) > cells {
		return nil, fmt.Errorf("%s: nnz=%d not in [0,%d]: %w", methodRandomSparse, nnz, cells, ErrBadShape)
	}

	// 2) Allocate with a capacity hint; user options may override it.
	m, err := New(rows, cols, append([]Option{WithCapacity(nnz)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRandomSparse, err)
	}

	// 3) Draw distinct coordinates; a repeated coordinate is simply redrawn.
	rng := rand.New(rand.NewSource(seed))
	for len(m.data) < nnz {
		k := Coord{Row: rng.Intn(rows), Col: rng.Intn(cols)}
		if _, taken := m.data[k]; taken {
			continue
		}
		v := rng.Intn(maxAbsValue) + 1 // 1..maxAbsValue
		if rng.Intn(2) == 0 {
			v = -v
		}
		m.data[k] = v
	}

	return m, nil
}
