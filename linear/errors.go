// SPDX-License-Identifier: MIT
// Package linear: sentinel error set.
// All algorithms return these sentinels (possibly wrapped with an operation
// tag) and tests check them via errors.Is. No function panics on user input;
// panics are reserved for option constructors given nonsensical values.

package linear

import "errors"

// Every message is prefixed with "linear: ...". Call sites wrap with
// fmt.Errorf("<Op>: %w", ErrX) through linearErrorf / validatorErrorf.
var (
	// ErrBadShape is returned when a container would be built from empty,
	// ragged or non-positive-size input.
	ErrBadShape = errors.New("linear: invalid shape")

	// ErrOutOfRange indicates an index outside valid bounds.
	// Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("linear: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes, e.g. Add of
	// different shapes or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("linear: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("linear: matrix is not square")

	// ErrNilArgument indicates a nil container or nil operator function.
	ErrNilArgument = errors.New("linear: nil argument")

	// ErrAccess is returned by the deep validators when a container fails to
	// yield a value at a position its own shape advertises.
	ErrAccess = errors.New("linear: element not accessible")

	// ErrSingular is returned by Inverse when a pivot column has no non-zero
	// entry on or below the diagonal.
	ErrSingular = errors.New("linear: singular matrix")

	// ErrNaNInf signals a NaN or ±Inf value rejected by a container whose
	// numeric policy requires finite values.
	ErrNaNInf = errors.New("linear: NaN or Inf encountered")
)
