// Package sparse provides a dictionary-of-keys integer matrix for large,
// mostly-zero data.
//
// The sparse package provides:
//
//   - Matrix: a rows×cols shape plus a map from Coord{Row, Col} to nonzero
//     values. Absent coordinates read as 0; Set(i, j, 0) deletes.
//   - Add, Sub and Mul returning fresh matrices. Add/Sub cost
//     O(nnz(a)+nnz(b)); Mul costs O(nnz(a)·b.Cols()). None depend on
//     rows×cols, so a 10000×10000 matrix with a handful of entries is cheap.
//   - A plain-text codec (Decode, Load, Save, WriteTo) for the format
//
//     rows=2
//     cols=2
//     (0, 0, 1)
//     (1, 1, 2)
//
//   - Typed errors: *DimensionError, *FormatError and *IOError, matching the
//     sentinels ErrDimensionMismatch, ErrFormat and ErrIO via errors.Is.
//   - Interop with gonum through AsGonum and FromGonum.
//
// See the examples in this package for usage patterns.
package sparse
