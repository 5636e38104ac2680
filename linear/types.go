// SPDX-License-Identifier: MIT

// Package linear: capability contracts shared by every algorithm.
// Algorithms accept these interfaces; concrete storages add fast paths.
package linear

// Vector is a fixed-length sequence of float64 values.
// Complexity notes: all methods are expected O(1) except Clone (O(n)).
type Vector interface {
	// Len returns the number of elements (≥ 1 for every public constructor).
	Len() int

	// At returns element i or ErrOutOfRange.
	At(i int) (float64, error)

	// Set assigns element i; ErrOutOfRange or ErrNaNInf (numeric policy).
	Set(i int, v float64) error

	// Clone returns an independent deep copy.
	Clone() Vector
}

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows (height).
	Rows() int

	// Cols returns the number of columns (width).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	Clone() Matrix
}

// Tensor is a fixed-shape multi-dimensional array of float64 values
// addressed by a multi-index of length Rank().
type Tensor interface {
	// Rank returns the number of axes (≥ 1).
	Rank() int

	// Sizes returns a copy of the per-axis sizes; mutating it has no effect.
	Sizes() []int

	// At returns the element at idx. A wrong index count yields
	// ErrDimensionMismatch, a coordinate outside its axis ErrOutOfRange.
	At(idx ...int) (float64, error)

	// Set stores v at idx with the same index rules as At.
	Set(v float64, idx ...int) error

	// Clone returns an independent deep copy.
	Clone() Tensor
}
