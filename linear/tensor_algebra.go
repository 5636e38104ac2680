// SPDX-License-Identifier: MIT

// Package linear - tensor index arithmetic & tensor (outer) product.
//
// Purpose:
//   - Row-major strides (suffix products) and the two conversions between a
//     flat offset and a multi-index.
//   - TensorProduct: R[ia ⊕ ib] = A[ia]·B[ib] for any two tensors.
//
// Determinism:
//   - Row-major order everywhere: the last axis varies fastest.
//
// AI-Hints:
//   - Compute Strides once per operation and reuse a single index buffer
//     with Unravel; that keeps the generic path allocation-free per element.
package linear

import (
	"fmt"
	"iter"
	"math"
	"slices"

	"github.com/samber/lo"
)

// Strides returns the row-major suffix products of sizes:
// strides[last] = 1, strides[i] = strides[i+1]·sizes[i+1].
// The flat offset of idx is Σ idx[i]·strides[i].
//
// Complexity:
//   - Time O(rank), Space O(rank).
func Strides(sizes []int) []int {
	strides := make([]int, len(sizes))
	acc := 1
	for i := len(sizes) - 1; i >= 0; i-- {
		strides[i] = acc
		acc *= sizes[i]
	}

	return strides
}

// Unravel writes into dst the multi-index of flat offset k.
// dst must have len(strides) elements; k must lie in [0, Π sizes).
// No allocation.
func Unravel(strides, dst []int, k int) {
	for i, s := range strides {
		dst[i] = k / s
		k %= s
	}
}

// Ravel returns the flat offset of idx. Inverse of Unravel for in-range idx.
func Ravel(strides, idx []int) int {
	off := 0
	for i, s := range strides {
		off += idx[i] * s
	}

	return off
}

// NumElements returns Π sizes.
//
// Errors:
//   - ErrBadShape for an empty shape, a non-positive size, or a product
//     that does not fit in int.
func NumElements(sizes []int) (int, error) {
	if len(sizes) == 0 {
		return 0, fmt.Errorf("NumElements: rank 0: %w", ErrBadShape)
	}
	if !lo.EveryBy(sizes, func(s int) bool { return s > 0 }) {
		return 0, fmt.Errorf("NumElements(%v): non-positive size: %w", sizes, ErrBadShape)
	}
	n := 1
	for _, s := range sizes {
		if n > math.MaxInt/s {
			return 0, fmt.Errorf("NumElements(%v): element count overflows int: %w", sizes, ErrBadShape)
		}
		n *= s
	}

	return n, nil
}

// TensorProduct returns the outer product of a and b.
// Implementation:
//   - Stage 1: validate both operands; sizes = a.Sizes() ⊕ b.Sizes().
//   - Stage 2: for every flat la of a and lb of b, R[la·|b| + lb] = a[la]·b[lb].
//     Flat offsets of the concatenated shape split exactly that way, so no
//     per-element index arithmetic is needed on the output side.
//
// Behavior highlights:
//   - Both *DenseTensor: two nested loops over the raw buffers.
//   - Otherwise one index buffer of rank(a)+rank(b) is split into the two
//     operand multi-indices and filled with Unravel.
//
// Errors:
//   - ErrNilArgument, ErrBadShape (result too large), or any access error
//     from a fallback operand.
//
// Complexity:
//   - Time O(|a|·|b|), Space O(|a|·|b|).
func TensorProduct(a, b Tensor) (*DenseTensor, error) {
	if err := ValidateTensorNotNil(a); err != nil {
		return nil, linearErrorf(opTensorProduct, err)
	}
	if err := ValidateTensorNotNil(b); err != nil {
		return nil, linearErrorf(opTensorProduct, err)
	}

	sa, sb := a.Sizes(), b.Sizes()
	sizes := slices.Concat(sa, sb)
	total, err := NumElements(sizes)
	if err != nil {
		return nil, linearErrorf(opTensorProduct, err)
	}
	out := make([]float64, total)

	da, okA := a.(*DenseTensor)
	db, okB := b.(*DenseTensor)
	if okA && okB {
		nb := len(db.data)
		for la, x := range da.data {
			row := out[la*nb : (la+1)*nb]
			for lb, y := range db.data {
				row[lb] = x * y
			}
		}
		return newTensorOwned(sizes, out), nil
	}

	ra := len(sa)
	stA, stB := Strides(sa), Strides(sb)
	na, nb := total/product(sb), product(sb)
	idx := make([]int, len(sizes))
	ia, ib := idx[:ra], idx[ra:]
	for la := 0; la < na; la++ {
		Unravel(stA, ia, la)
		x, err := a.At(ia...)
		if err != nil {
			return nil, linearErrorf(opTensorProduct, err)
		}
		for lb := 0; lb < nb; lb++ {
			Unravel(stB, ib, lb)
			y, err := b.At(ib...)
			if err != nil {
				return nil, linearErrorf(opTensorProduct, err)
			}
			out[la*nb+lb] = x * y
		}
	}

	return newTensorOwned(sizes, out), nil
}

// product is Π sizes for a shape already checked by NumElements.
func product(sizes []int) int { return lo.Product(sizes) }

// Elements yields (multi-index, value) pairs of t in row-major order.
// Each yielded index is a fresh slice. Iteration stops early at the first
// element t fails to return; run ValidateTensor first to detect that.
func Elements(t Tensor) iter.Seq2[[]int, float64] {
	return func(yield func([]int, float64) bool) {
		if t == nil {
			return
		}
		acc := newTensorAccess(t)
		for k := 0; k < acc.size(); k++ {
			v, err := acc.load(k)
			if err != nil {
				return
			}
			if !yield(slices.Clone(acc.idx), v) {
				return
			}
		}
	}
}
