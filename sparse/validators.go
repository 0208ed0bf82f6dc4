// SPDX-License-Identifier: MIT
// Package: sparse
//
// Purpose:
//   - Single source of truth for operand checks shared by Add/Sub/Mul.
//   - Keep operator bodies minimal by delegating nil/shape checks here.
//
// Note:
//   - Composite validators follow a fixed sequence: NotNil → Shape.
//   - Shape violations return *DimensionError so callers get both shapes.

package sparse

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m *Matrix) error {
	if m == nil {
		return sparseErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b have identical (rows, cols).
// Assumes both are non-nil. op names the operator for the error report.
// Complexity: O(1).
func ValidateSameShape(op Op, a, b *Matrix) error {
	if a.rows != b.rows || a.cols != b.cols {
		return &DimensionError{Op: op, Left: a.Shape(), Right: b.Shape()}
	}

	return nil
}

// ValidateMulShape ensures a.Cols == b.Rows.
// Assumes both are non-nil.
// Complexity: O(1).
func ValidateMulShape(a, b *Matrix) error {
	if a.cols != b.rows {
		return &DimensionError{Op: OpMul, Left: a.Shape(), Right: b.Shape()}
	}

	return nil
}

// validateBinary runs NotNil on both operands, then the shape rule of op.
func validateBinary(op Op, a, b *Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if op == OpMul {
		return ValidateMulShape(a, b)
	}

	return ValidateSameShape(op, a, b)
}
