// SPDX-License-Identifier: MIT

// Package linear: elementwise / broadcast engine.
//
// Purpose:
//   - One combine kernel (two same-shape operands, binary op) and one map
//     kernel (one operand, unary op) shared by vectors, matrices and tensors.
//   - Every container is seen through flatAccess: a row-major scan index
//     k ∈ [0, n) plus load, and the raw buffer when one exists.
//
// Determinism:
//   - Fixed scan order k = 0..n-1 in both the fast path and the fallback.
//
// AI-Hints:
//   - Pass *VecDense, *Dense or *DenseTensor operands to get the flat fast path.
//   - Fresh results always use the default numeric policy.
package linear

import (
	"fmt"
)

// Elementwise operators shared by the named facades.
func addOp(x, y float64) float64 { return x + y }
func subOp(x, y float64) float64 { return x - y }
func mulOp(x, y float64) float64 { return x * y }
func divOp(x, y float64) float64 { return x / y }
func copyOp(x float64) float64 { return x }

// flatAccess views any container as a flat row-major sequence (read side).
type flatAccess interface {
	size() int
	load(k int) (float64, error)
	raw() []float64 // nil when no contiguous row-major buffer is available
}

type vecAccess struct{ v Vector }

func (a vecAccess) size() int { return a.v.Len() }
func (a vecAccess) load(k int) (float64, error) { return a.v.At(k) }
func (a vecAccess) raw() []float64 {
	if d, ok := a.v.(*VecDense); ok {
		return d.data
	}
	return nil
}

type matAccess struct {
	m    Matrix
	cols int
}

func newMatAccess(m Matrix) matAccess { return matAccess{m: m, cols: m.Cols()} }

func (a matAccess) size() int { return a.m.Rows() * a.cols }
func (a matAccess) load(k int) (float64, error) { return a.m.At(k/a.cols, k%a.cols) }
func (a matAccess) raw() []float64 {
	if d, ok := a.m.(*Dense); ok {
		return d.data
	}
	return nil
}

// tensorAccess unravels k into a private scratch multi-index; one value
// serves one operation only.
type tensorAccess struct {
	t       Tensor
	strides []int
	idx     []int
	n       int
}

func newTensorAccess(t Tensor) *tensorAccess {
	if d, ok := t.(*DenseTensor); ok {
		return &tensorAccess{t: t, strides: d.strides, idx: make([]int, len(d.strides)), n: len(d.data)}
	}
	sizes := t.Sizes()
	strides := Strides(sizes)
	n := 0
	if len(sizes) > 0 {
		n = strides[0] * sizes[0]
	}

	return &tensorAccess{t: t, strides: strides, idx: make([]int, len(sizes)), n: n}
}

func (a *tensorAccess) size() int { return a.n }

func (a *tensorAccess) load(k int) (float64, error) {
	Unravel(a.strides, a.idx, k)
	return a.t.At(a.idx...)
}

func (a *tensorAccess) raw() []float64 {
	if d, ok := a.t.(*DenseTensor); ok {
		return d.data
	}
	return nil
}

// combineFlat writes dst[k] = op(a[k], b[k]) for k ∈ [0, len(dst)).
// Implementation:
//   - Stage 1: both operands flat → single loop over the raw buffers.
//   - Stage 2: otherwise load through the interfaces in the same order.
//
// Notes:
//   - Shapes are validated by the caller; len(dst) equals both sizes.
func combineFlat(dst []float64, a, b flatAccess, op func(x, y float64) float64) error {
	ra, rb := a.raw(), b.raw()
	if ra != nil && rb != nil {
		for k := range dst {
			dst[k] = op(ra[k], rb[k])
		}
		return nil
	}

	var x, y float64
	var err error
	for k := range dst {
		if x, err = a.load(k); err != nil {
			return fmt.Errorf("left operand, element %d: %w", k, err)
		}
		if y, err = b.load(k); err != nil {
			return fmt.Errorf("right operand, element %d: %w", k, err)
		}
		dst[k] = op(x, y)
	}

	return nil
}

// mapFlat writes dst[k] = op(a[k]).
func mapFlat(dst []float64, a flatAccess, op func(x float64) float64) error {
	if ra := a.raw(); ra != nil {
		for k := range dst {
			dst[k] = op(ra[k])
		}
		return nil
	}

	for k := range dst {
		x, err := a.load(k)
		if err != nil {
			return fmt.Errorf("element %d: %w", k, err)
		}
		dst[k] = op(x)
	}

	return nil
}

// commitFlat copies buf into dst after the optional finite check, so the
// receiver is either fully updated or untouched.
func commitFlat(tag string, dst, buf []float64, validate bool) error {
	if validate {
		if k := checkFinite(buf); k >= 0 {
			return linearErrorf(tag, fmt.Errorf("element %d: %w", k, ErrNaNInf))
		}
	}
	copy(dst, buf)

	return nil
}

// ---------- Vector facades ----------

// CombineVec returns r[i] = op(a[i], b[i]) as a new vector.
//
// Errors:
//   - ErrNilArgument (nil operand or op), ErrDimensionMismatch (lengths differ).
//
// Complexity:
//   - Time O(n), Space O(n).
func CombineVec(a, b Vector, op func(x, y float64) float64) (*VecDense, error) {
	return combineVec(opCombine, a, b, op)
}

// ApplyVec returns r[i] = op(a[i]) as a new vector.
func ApplyVec(a Vector, op func(x float64) float64) (*VecDense, error) {
	return mapVec(opApply, a, op)
}

// AddVec returns a + b.
func AddVec(a, b Vector) (*VecDense, error) { return combineVec(opAdd, a, b, addOp) }

// SubVec returns a - b.
func SubVec(a, b Vector) (*VecDense, error) { return combineVec(opSub, a, b, subOp) }

// MulElemVec returns the elementwise product a ∘ b.
func MulElemVec(a, b Vector) (*VecDense, error) { return combineVec(opHadamard, a, b, mulOp) }

// DivVec returns the elementwise quotient a / b (IEEE-754 for zero divisors).
func DivVec(a, b Vector) (*VecDense, error) { return combineVec(opDiv, a, b, divOp) }

// ScaleVec returns alpha·a.
func ScaleVec(a Vector, alpha float64) (*VecDense, error) {
	return mapVec(opScale, a, func(x float64) float64 { return alpha * x })
}

// CopyVec returns an owned contiguous copy of any Vector.
func CopyVec(a Vector) (*VecDense, error) { return mapVec(opCopy, a, copyOp) }

func combineVec(tag string, a, b Vector, op func(x, y float64) float64) (*VecDense, error) {
	if err := ValidateSameLen(a, b); err != nil {
		return nil, linearErrorf(tag, err)
	}
	if op == nil {
		return nil, linearErrorf(tag, ErrNilArgument)
	}
	out := make([]float64, a.Len())
	if err := combineFlat(out, vecAccess{a}, vecAccess{b}, op); err != nil {
		return nil, linearErrorf(tag, err)
	}

	return newVecOwned(out), nil
}

func mapVec(tag string, a Vector, op func(x float64) float64) (*VecDense, error) {
	if err := ValidateVectorNotNil(a); err != nil {
		return nil, linearErrorf(tag, err)
	}
	if op == nil {
		return nil, linearErrorf(tag, ErrNilArgument)
	}
	out := make([]float64, a.Len())
	if err := mapFlat(out, vecAccess{a}, op); err != nil {
		return nil, linearErrorf(tag, err)
	}

	return newVecOwned(out), nil
}

// ---------- Matrix facades ----------

// Combine returns R[i,j] = op(A[i,j], B[i,j]) as a new *Dense.
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b); reject a nil op.
//   - Stage 2: flat loop when both are *Dense, else At in fixed i→j order.
//
// Errors:
//   - ErrNilArgument, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - Add/Sub/Hadamard/DivElem are this function with a fixed op.
func Combine(a, b Matrix, op func(x, y float64) float64) (*Dense, error) {
	return combineMat(opCombine, a, b, op)
}

// Apply returns R[i,j] = op(A[i,j]) as a new *Dense.
func Apply(a Matrix, op func(x float64) float64) (*Dense, error) {
	return mapMat(opApply, a, op)
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
// Implementation:
//   - Stage 1: Validate both operands are non-nil and have identical shapes.
//   - Stage 2: If both are *Dense, run a single flat loop; otherwise fall back to i→j.
//
// Errors:
//   - ErrNilArgument (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c). The fast path is bandwidth-bound.
func Add(a, b Matrix) (*Dense, error) { return combineMat(opAdd, a, b, addOp) }

// Sub computes C = A - B.
func Sub(a, b Matrix) (*Dense, error) { return combineMat(opSub, a, b, subOp) }

// Hadamard computes the elementwise product C = A ∘ B.
func Hadamard(a, b Matrix) (*Dense, error) { return combineMat(opHadamard, a, b, mulOp) }

// DivElem computes the elementwise quotient C = A / B.
func DivElem(a, b Matrix) (*Dense, error) { return combineMat(opDiv, a, b, divOp) }

// Scale computes alpha·A.
func Scale(a Matrix, alpha float64) (*Dense, error) {
	return mapMat(opScale, a, func(x float64) float64 { return alpha * x })
}

// Copy materializes any Matrix (e.g. a view or a *RowMatrix) as a *Dense.
func Copy(a Matrix) (*Dense, error) { return mapMat(opCopy, a, copyOp) }

func combineMat(tag string, a, b Matrix, op func(x, y float64) float64) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, linearErrorf(tag, err)
	}
	if op == nil {
		return nil, linearErrorf(tag, ErrNilArgument)
	}
	out := make([]float64, a.Rows()*a.Cols())
	if err := combineFlat(out, newMatAccess(a), newMatAccess(b), op); err != nil {
		return nil, linearErrorf(tag, err)
	}

	return newDenseOwned(a.Rows(), a.Cols(), out), nil
}

func mapMat(tag string, a Matrix, op func(x float64) float64) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, linearErrorf(tag, err)
	}
	if op == nil {
		return nil, linearErrorf(tag, ErrNilArgument)
	}
	out := make([]float64, a.Rows()*a.Cols())
	if err := mapFlat(out, newMatAccess(a), op); err != nil {
		return nil, linearErrorf(tag, err)
	}

	return newDenseOwned(a.Rows(), a.Cols(), out), nil
}

// matCombineInto validates b against recv and returns op(recv, b) in a
// scratch buffer; shared by the in-place methods of every Matrix storage.
func matCombineInto(recv, b Matrix, op func(x, y float64) float64) ([]float64, error) {
	if err := ValidateBinarySameShape(recv, b); err != nil {
		return nil, err
	}
	buf := make([]float64, recv.Rows()*recv.Cols())
	if err := combineFlat(buf, newMatAccess(recv), newMatAccess(b), op); err != nil {
		return nil, err
	}

	return buf, nil
}

// matMapInto returns op(recv) in a scratch buffer.
func matMapInto(recv Matrix, op func(x float64) float64) ([]float64, error) {
	if op == nil {
		return nil, ErrNilArgument
	}
	buf := make([]float64, recv.Rows()*recv.Cols())
	if err := mapFlat(buf, newMatAccess(recv), op); err != nil {
		return nil, err
	}

	return buf, nil
}

// ---------- Tensor facades ----------

// CombineTensor returns R[idx] = op(A[idx], B[idx]); A and B must have the
// same rank and sizes.
//
// Complexity:
//   - Time O(N) for N = Π sizes; the fallback adds O(rank) per element for
//     the unravel step.
func CombineTensor(a, b Tensor, op func(x, y float64) float64) (*DenseTensor, error) {
	return combineTensor(opCombine, a, b, op)
}

// ApplyTensor returns R[idx] = op(A[idx]).
func ApplyTensor(a Tensor, op func(x float64) float64) (*DenseTensor, error) {
	return mapTensor(opApply, a, op)
}

// AddTensor returns A + B.
func AddTensor(a, b Tensor) (*DenseTensor, error) { return combineTensor(opAdd, a, b, addOp) }

// SubTensor returns A - B.
func SubTensor(a, b Tensor) (*DenseTensor, error) { return combineTensor(opSub, a, b, subOp) }

// MulElemTensor returns the elementwise product A ∘ B.
func MulElemTensor(a, b Tensor) (*DenseTensor, error) {
	return combineTensor(opHadamard, a, b, mulOp)
}

// DivTensor returns the elementwise quotient A / B.
func DivTensor(a, b Tensor) (*DenseTensor, error) { return combineTensor(opDiv, a, b, divOp) }

// ScaleTensor returns alpha·A.
func ScaleTensor(a Tensor, alpha float64) (*DenseTensor, error) {
	return mapTensor(opScale, a, func(x float64) float64 { return alpha * x })
}

// CopyTensor materializes any Tensor as a *DenseTensor.
func CopyTensor(a Tensor) (*DenseTensor, error) { return mapTensor(opCopy, a, copyOp) }

func combineTensor(tag string, a, b Tensor, op func(x, y float64) float64) (*DenseTensor, error) {
	if err := ValidateSameSizes(a, b); err != nil {
		return nil, linearErrorf(tag, err)
	}
	if op == nil {
		return nil, linearErrorf(tag, ErrNilArgument)
	}
	aa := newTensorAccess(a)
	out := make([]float64, aa.size())
	if err := combineFlat(out, aa, newTensorAccess(b), op); err != nil {
		return nil, linearErrorf(tag, err)
	}

	return newTensorOwned(a.Sizes(), out), nil
}

func mapTensor(tag string, a Tensor, op func(x float64) float64) (*DenseTensor, error) {
	if err := ValidateTensorNotNil(a); err != nil {
		return nil, linearErrorf(tag, err)
	}
	if op == nil {
		return nil, linearErrorf(tag, ErrNilArgument)
	}
	aa := newTensorAccess(a)
	out := make([]float64, aa.size())
	if err := mapFlat(out, aa, op); err != nil {
		return nil, linearErrorf(tag, err)
	}

	return newTensorOwned(a.Sizes(), out), nil
}
