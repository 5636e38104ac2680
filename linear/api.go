// SPDX-License-Identifier: MIT

// Package linear - convenience constructors and short aliases.
//
// Every function here forwards to the canonical implementation in
// impl_dense.go or matrix_algebra.go.

package linear

// ---------- Constructors & Utilities ----------

// NewZeros returns a rows×cols zero matrix (ErrBadShape for a non-positive
// dimension).
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing (constructor) + O(n) diagonal writes.
//
// AI-Hints: Use as the reference for Inverse round-trips: Mul(A, Inverse(A)) ≈ I.
func NewIdentity(n int) (*Dense, error) {
	id, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		id.data[i*n+i] = 1
	}

	return id, nil
}

// CloneMatrix returns m.Clone(), or nil for a nil m.
func CloneMatrix(m Matrix) Matrix {
	if m == nil {
		return nil
	}

	return m.Clone()
}

// ZerosLike returns a zero *Dense with the same shape as m.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return NewZeros(m.Rows(), m.Cols())
}

// IdentityLike returns I_n for a square m.
//
// Errors: ErrNilArgument, ErrNonSquare.
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, err
	}

	return NewIdentity(m.Rows())
}

// ---------- Aliases ----------

// Product is an alias of Mul.
func Product(a, b Matrix) (*Dense, error) { return Mul(a, b) }

// T is a short alias of Transpose.
func T(m Matrix) (*Dense, error) { return Transpose(m) }

// InverseOf is an alias of Inverse.
func InverseOf(m Matrix) (*Dense, error) { return Inverse(m) }

// Det is an alias of Determinant.
func Det(m Matrix) (float64, error) { return Determinant(m) }
