// SPDX-License-Identifier: MIT

// Package sparse: functional configuration for Matrix construction.
// This file defines:
//   - Option / options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Notes:
//   - Default behavior mirrors the classic sparse convention: reads outside
//     the shape are 0 and writes are not range-checked.
//   - WithStrictBounds is an opt-in deviation: Set rejects coordinates outside
//     [0,rows)×[0,cols) with ErrOutOfRange. Get is never strict.
//   - Results of Add/Sub/Mul inherit the strictness of the left operand.
package sparse

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultStrictBounds controls range checks in Set.
	DefaultStrictBounds = false

	// DefaultCapacity is the initial map size hint (0 lets the runtime decide).
	DefaultCapacity = 0
)

const panicCapacityInvalid = "sparse: WithCapacity: n must be non-negative"

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*options)

type options struct {
	strict   bool
	capacity int
}

// WithStrictBounds makes Set return ErrOutOfRange for coordinates outside
// the matrix shape instead of storing them.
func WithStrictBounds() Option {
	return func(o *options) {
		o.strict = true
	}
}

// WithCapacity pre-sizes the entry map for n nonzeros. Panics on n<0.
func WithCapacity(n int) Option {
	if n < 0 {
		panic(panicCapacityInvalid)
	}
	return func(o *options) {
		o.capacity = n
	}
}

// gatherOptions applies opts over the defaults in order; nil options are skipped.
func gatherOptions(opts ...Option) options {
	o := options{
		strict:   DefaultStrictBounds,
		capacity: DefaultCapacity,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
