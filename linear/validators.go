// SPDX-License-Identifier: MIT

// Package linear - shape, nil and readability checks shared by every facade.
//
// Each validator wraps its sentinel with its own name, so a failure reads
// like "Mul: ValidateMulCompatible: dimension mismatch" while errors.Is
// still matches the sentinel.
//
// Structural checks are O(1) or O(rank). The deep checks (ValidateVector,
// ValidateMatrix, ValidateTensor) read every element once; run them on a
// foreign implementation before a long pipeline.

package linear

import (
	"fmt"
	"reflect"
	"slices"
)

// isNil reports an untyped nil or a typed nil pointer hidden in an interface.
func isNil(x any) bool {
	if x == nil {
		return true
	}
	rv := reflect.ValueOf(x)

	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ---------- Matrix ----------

// ValidateNotNil rejects a nil matrix, typed or not, with ErrNilArgument.
func ValidateNotNil(m Matrix) error {
	if isNil(m) {
		return validatorErrorf("ValidateNotNil", ErrNilArgument)
	}

	return nil
}

// ValidateSameShape reports ErrDimensionMismatch unless a and b have the
// same rows and columns. Both must be non-nil.
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
//
// Errors: ErrNonSquare. Assumes m is not nil.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", fmt.Errorf("%dx%d: %w", m.Rows(), m.Cols(), ErrNonSquare))
	}

	return nil
}

// ValidateBinarySameShape runs NotNil(a), NotNil(b), then SameShape.
//
// Errors: ErrNilArgument, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateSquareNonNil runs NotNil, then Square.
//
// Errors: ErrNilArgument, ErrNonSquare.
func ValidateSquareNonNil(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}

	return nil
}

// ValidateMulCompatible requires non-nil operands with a.Cols == b.Rows.
//
// Errors: ErrNilArgument, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ---------- Vector ----------

// ValidateVectorNotNil rejects a nil vector with ErrNilArgument.
func ValidateVectorNotNil(v Vector) error {
	if isNil(v) {
		return validatorErrorf("ValidateVectorNotNil", ErrNilArgument)
	}

	return nil
}

// ValidateVecLen ensures the vector is non-nil and has exactly n elements.
func ValidateVecLen(v Vector, n int) error {
	if isNil(v) {
		return validatorErrorf("ValidateVecLen", ErrNilArgument)
	}
	if v.Len() != n {
		return validatorErrorf("ValidateVecLen", fmt.Errorf("length %d, want %d: %w", v.Len(), n, ErrDimensionMismatch))
	}

	return nil
}

// ValidateSameLen requires two non-nil vectors of equal length.
func ValidateSameLen(a, b Vector) error {
	if err := ValidateVectorNotNil(a); err != nil {
		return validatorErrorf("ValidateSameLen", err)
	}
	if err := ValidateVecLen(b, a.Len()); err != nil {
		return validatorErrorf("ValidateSameLen", err)
	}

	return nil
}

// ---------- Tensor ----------

// ValidateTensorNotNil rejects a nil tensor with ErrNilArgument.
func ValidateTensorNotNil(t Tensor) error {
	if isNil(t) {
		return validatorErrorf("ValidateTensorNotNil", ErrNilArgument)
	}

	return nil
}

// ValidateSameSizes requires two non-nil tensors with identical sizes.
//
// Errors: ErrNilArgument, ErrDimensionMismatch.
// Complexity: O(rank).
func ValidateSameSizes(a, b Tensor) error {
	if err := ValidateTensorNotNil(a); err != nil {
		return validatorErrorf("ValidateSameSizes", err)
	}
	if err := ValidateTensorNotNil(b); err != nil {
		return validatorErrorf("ValidateSameSizes", err)
	}
	if sa, sb := a.Sizes(), b.Sizes(); !slices.Equal(sa, sb) {
		return validatorErrorf("ValidateSameSizes", fmt.Errorf("%v vs %v: %w", sa, sb, ErrDimensionMismatch))
	}

	return nil
}

// ---------- Deep checks ----------

// ValidateVector performs a full structural check: non-nil, Len ≥ 1, and
// every index in [0, Len) readable.
//
// Errors: ErrNilArgument, ErrBadShape, ErrAccess (wrapping the element error).
// Complexity: O(n).
func ValidateVector(v Vector) error {
	if err := ValidateVectorNotNil(v); err != nil {
		return validatorErrorf("ValidateVector", err)
	}
	n := v.Len()
	if n <= 0 {
		return validatorErrorf("ValidateVector", fmt.Errorf("length %d: %w", n, ErrBadShape))
	}
	for i := 0; i < n; i++ {
		if _, err := v.At(i); err != nil {
			return validatorErrorf("ValidateVector", fmt.Errorf("element %d: %w (%w)", i, ErrAccess, err))
		}
	}

	return nil
}

// ValidateMatrix performs a full structural check on any Matrix: positive
// dimensions and every (i,j) readable.
//
// Errors: ErrNilArgument, ErrBadShape, ErrAccess.
// Complexity: O(r*c).
func ValidateMatrix(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateMatrix", err)
	}
	r, c := m.Rows(), m.Cols()
	if r <= 0 || c <= 0 {
		return validatorErrorf("ValidateMatrix", fmt.Errorf("%dx%d: %w", r, c, ErrBadShape))
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if _, err := m.At(i, j); err != nil {
				return validatorErrorf("ValidateMatrix", fmt.Errorf("element (%d,%d): %w (%w)", i, j, ErrAccess, err))
			}
		}
	}

	return nil
}

// ValidateTensor performs a full structural check on any Tensor: rank ≥ 1,
// Sizes consistent with Rank, positive sizes and every element readable.
//
// Errors: ErrNilArgument, ErrBadShape, ErrAccess.
// Complexity: O(N·rank).
func ValidateTensor(t Tensor) error {
	if err := ValidateTensorNotNil(t); err != nil {
		return validatorErrorf("ValidateTensor", err)
	}
	sizes := t.Sizes()
	if len(sizes) != t.Rank() {
		return validatorErrorf("ValidateTensor", fmt.Errorf("rank %d with %d sizes: %w", t.Rank(), len(sizes), ErrBadShape))
	}
	n, err := NumElements(sizes)
	if err != nil {
		return validatorErrorf("ValidateTensor", err)
	}
	strides := Strides(sizes)
	idx := make([]int, len(sizes))
	for k := 0; k < n; k++ {
		Unravel(strides, idx, k)
		if _, err := t.At(idx...); err != nil {
			return validatorErrorf("ValidateTensor", fmt.Errorf("element %v: %w (%w)", idx, ErrAccess, err))
		}
	}

	return nil
}
