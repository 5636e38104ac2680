// SPDX-License-Identifier: MIT

// Package linear - DenseTensor: flat row-major N-dimensional storage.
//
// Purpose:
//   - Store a rank-r tensor in one contiguous buffer with precomputed strides.
//   - Build tensors from shapes, nested literals, vectors, matrices, or an
//     aliased caller buffer (WrapTensor).
//
// Complexity quicksheet:
//   - At/Set: O(rank); Clone: O(N); NewTensorFrom: O(N) after one shape pass.
package linear

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// DenseTensor is a row-major tensor.
//   - sizes: per-axis extents, each ≥ 1; len(sizes) = rank ≥ 1.
//   - strides: Strides(sizes), fixed at construction.
//   - data: Π sizes elements.
type DenseTensor struct {
	sizes          []int
	strides        []int
	data           []float64
	validateNaNInf bool
}

var (
	_ Tensor       = (*DenseTensor)(nil)
	_ fmt.Stringer = (*DenseTensor)(nil)
)

// NewTensor allocates a tensor of the given sizes set to the fill value.
//
// Errors:
//   - ErrBadShape for rank 0, a non-positive size, or an element count
//     that overflows int.
//   - ErrNaNInf when WithFill(±Inf) meets WithValidateNaNInf.
//
// Complexity:
//   - Time O(N), Space O(N).
func NewTensor(sizes []int, opts ...Option) (*DenseTensor, error) {
	n, err := NumElements(sizes)
	if err != nil {
		return nil, fmt.Errorf("NewTensor: %w", err)
	}
	o := gatherOptions(opts...)
	if err = o.checkFill(); err != nil {
		return nil, fmt.Errorf("NewTensor(%v): %w", sizes, err)
	}

	data := make([]float64, n)
	if o.fill != 0 {
		for k := range data {
			data[k] = o.fill
		}
	}
	t := newTensorOwned(sizes, data)
	t.validateNaNInf = o.validateNaNInf

	return t, nil
}

// NewTensorFrom builds a tensor from a nested literal such as
// []any{[]float64{1, 2}, []float64{3, 4}} or [][]float64{{1, 2}, {3, 4}}.
// Implementation:
//   - Stage 1: InferShape walks the literal once and rejects ragged or
//     empty levels before anything is allocated.
//   - Stage 2: a second walk copies the leaves in row-major order.
//
// Errors:
//   - ErrBadShape (ragged, empty, unsupported leaf type), ErrNaNInf.
func NewTensorFrom(literal any, opts ...Option) (*DenseTensor, error) {
	sizes, err := InferShape(literal)
	if err != nil {
		return nil, fmt.Errorf("NewTensorFrom: %w", err)
	}
	n, err := NumElements(sizes)
	if err != nil {
		return nil, fmt.Errorf("NewTensorFrom: %w", err)
	}

	return newTensorChecked("NewTensorFrom", sizes, flattenLiteral(literal, n), opts)
}

// TensorFromVector copies v into a rank-1 tensor.
func TensorFromVector(v Vector, opts ...Option) (*DenseTensor, error) {
	if err := ValidateVectorNotNil(v); err != nil {
		return nil, fmt.Errorf("TensorFromVector: %w", err)
	}
	if v.Len() <= 0 {
		return nil, fmt.Errorf("TensorFromVector: length %d: %w", v.Len(), ErrBadShape)
	}
	data := make([]float64, v.Len())
	if err := mapFlat(data, vecAccess{v}, copyOp); err != nil {
		return nil, fmt.Errorf("TensorFromVector: %w", err)
	}

	return newTensorChecked("TensorFromVector", []int{v.Len()}, data, opts)
}

// TensorFromMatrix copies m into a rank-2 tensor of sizes [rows, cols].
func TensorFromMatrix(m Matrix, opts ...Option) (*DenseTensor, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("TensorFromMatrix: %w", err)
	}
	if m.Rows() <= 0 || m.Cols() <= 0 {
		return nil, fmt.Errorf("TensorFromMatrix: %dx%d: %w", m.Rows(), m.Cols(), ErrBadShape)
	}
	data := make([]float64, m.Rows()*m.Cols())
	if err := mapFlat(data, newMatAccess(m), copyOp); err != nil {
		return nil, fmt.Errorf("TensorFromMatrix: %w", err)
	}

	return newTensorChecked("TensorFromMatrix", []int{m.Rows(), m.Cols()}, data, opts)
}

// WrapTensor returns a tensor that ALIASES data as a row-major array of the
// given sizes. Writes are visible on both sides.
//
// Errors:
//   - ErrBadShape when len(data) differs from Π sizes or sizes are invalid.
func WrapTensor(data []float64, sizes []int, opts ...Option) (*DenseTensor, error) {
	n, err := NumElements(sizes)
	if err != nil {
		return nil, fmt.Errorf("WrapTensor: %w", err)
	}
	if len(data) != n {
		return nil, fmt.Errorf("WrapTensor: %d values for sizes %v: %w", len(data), sizes, ErrBadShape)
	}

	return newTensorChecked("WrapTensor", sizes, data, opts)
}

func newTensorChecked(tag string, sizes []int, data []float64, opts []Option) (*DenseTensor, error) {
	o := gatherOptions(opts...)
	if o.validateNaNInf {
		if k := checkFinite(data); k >= 0 {
			return nil, fmt.Errorf("%s: element %d: %w", tag, k, ErrNaNInf)
		}
	}
	t := newTensorOwned(sizes, data)
	t.validateNaNInf = o.validateNaNInf

	return t, nil
}

// newTensorOwned adopts data with a private copy of sizes and the default policy.
func newTensorOwned(sizes []int, data []float64) *DenseTensor {
	sizes = slices.Clone(sizes)

	return &DenseTensor{sizes: sizes, strides: Strides(sizes), data: data, validateNaNInf: DefaultValidateNaNInf}
}

// Rank returns the number of axes.
func (t *DenseTensor) Rank() int { return len(t.sizes) }

// Sizes returns a copy of the per-axis sizes.
func (t *DenseTensor) Sizes() []int { return slices.Clone(t.sizes) }

// Len returns the total element count.
func (t *DenseTensor) Len() int { return len(t.data) }

// RawData exposes the row-major buffer (no copy). Writes bypass the policy.
func (t *DenseTensor) RawData() []float64 { return t.data }

// offset validates idx and returns its flat position.
func (t *DenseTensor) offset(idx []int) (int, error) {
	if len(idx) != len(t.sizes) {
		return 0, fmt.Errorf("%d indices for rank %d: %w", len(idx), len(t.sizes), ErrDimensionMismatch)
	}
	off := 0
	for i, x := range idx {
		if x < 0 || x >= t.sizes[i] {
			return 0, fmt.Errorf("axis %d index %d: %w", i, x, ErrOutOfRange)
		}
		off += x * t.strides[i]
	}

	return off, nil
}

// At returns the element at idx.
//
// Errors:
//   - ErrDimensionMismatch (len(idx) ≠ rank), ErrOutOfRange.
func (t *DenseTensor) At(idx ...int) (float64, error) {
	off, err := t.offset(idx)
	if err != nil {
		return 0, fmt.Errorf("DenseTensor.At%v: %w", idx, err)
	}

	return t.data[off], nil
}

// Set stores v at idx, honoring the numeric policy.
func (t *DenseTensor) Set(v float64, idx ...int) error {
	off, err := t.offset(idx)
	if err != nil {
		return fmt.Errorf("DenseTensor.Set%v: %w", idx, err)
	}
	if t.validateNaNInf && isNonFinite(v) {
		return fmt.Errorf("DenseTensor.Set%v: %w", idx, ErrNaNInf)
	}
	t.data[off] = v

	return nil
}

// Clone returns a deep copy with the same policy.
func (t *DenseTensor) Clone() Tensor {
	return &DenseTensor{
		sizes:          slices.Clone(t.sizes),
		strides:        slices.Clone(t.strides),
		data:           slices.Clone(t.data),
		validateNaNInf: t.validateNaNInf,
	}
}

// All yields (multi-index, value) pairs in row-major order.
func (t *DenseTensor) All() iter.Seq2[[]int, float64] { return Elements(t) }

// Fill sets every element to x.
func (t *DenseTensor) Fill(x float64) error {
	if t.validateNaNInf && isNonFinite(x) {
		return fmt.Errorf("DenseTensor.Fill: %w", ErrNaNInf)
	}
	for k := range t.data {
		t.data[k] = x
	}

	return nil
}

// Clear zeroes every element.
func (t *DenseTensor) Clear() { clear(t.data) }

// String renders nested brackets, e.g. "[[1, 2], [3, 4]]" for sizes [2 2].
func (t *DenseTensor) String() string {
	var b strings.Builder
	t.writeAxis(&b, 0, 0)

	return b.String()
}

func (t *DenseTensor) writeAxis(b *strings.Builder, axis, off int) {
	b.WriteString(_fmtRowOpen)
	for i := 0; i < t.sizes[axis]; i++ {
		if i > 0 {
			b.WriteString(_fmtSep)
		}
		pos := off + i*t.strides[axis]
		if axis == len(t.sizes)-1 {
			fmt.Fprintf(b, "%g", t.data[pos])
		} else {
			t.writeAxis(b, axis+1, pos)
		}
	}
	b.WriteString("]")
}

// AddInPlace performs t += b; unchanged on error.
func (t *DenseTensor) AddInPlace(b Tensor) error { return t.combineInPlace(opAddInPlace, b, addOp) }

// SubInPlace performs t -= b.
func (t *DenseTensor) SubInPlace(b Tensor) error { return t.combineInPlace(opSubInPlace, b, subOp) }

// MulInPlace performs the elementwise t ∘= b.
func (t *DenseTensor) MulInPlace(b Tensor) error { return t.combineInPlace(opMulInPlace, b, mulOp) }

// DivInPlace performs the elementwise t /= b.
func (t *DenseTensor) DivInPlace(b Tensor) error { return t.combineInPlace(opDivInPlace, b, divOp) }

// ScaleInPlace performs t *= alpha.
func (t *DenseTensor) ScaleInPlace(alpha float64) error {
	return t.ApplyInPlace(func(x float64) float64 { return alpha * x })
}

// ApplyInPlace replaces every element with op(element).
func (t *DenseTensor) ApplyInPlace(op func(x float64) float64) error {
	tag := "DenseTensor." + opApplyInPlace
	if op == nil {
		return linearErrorf(tag, ErrNilArgument)
	}
	buf := make([]float64, len(t.data))
	if err := mapFlat(buf, newTensorAccess(t), op); err != nil {
		return linearErrorf(tag, err)
	}

	return commitFlat(tag, t.data, buf, t.validateNaNInf)
}

func (t *DenseTensor) combineInPlace(tag string, b Tensor, op func(x, y float64) float64) error {
	tag = "DenseTensor." + tag
	if err := ValidateSameSizes(t, b); err != nil {
		return linearErrorf(tag, err)
	}
	buf := make([]float64, len(t.data))
	if err := combineFlat(buf, newTensorAccess(t), newTensorAccess(b), op); err != nil {
		return linearErrorf(tag, err)
	}

	return commitFlat(tag, t.data, buf, t.validateNaNInf)
}
