// SPDX-License-Identifier: MIT

// Package linear - VecDense: contiguous vector storage & safe accessors.
//
// Purpose:
//   - Owned contiguous buffer (NewVecDense, NewVecDenseFrom) and an aliasing
//     variant over caller memory (WrapVec).
//   - At/Set return errors instead of panicking; optional NaN/Inf policy.
//   - In-place arithmetic that validates the operand and every new value
//     before the first write.
package linear

import (
	"fmt"
	"slices"
	"strings"
)

const (
	ctxVecAt  = "At"
	ctxVecSet = "Set"
)

// VecDense is a contiguous float64 vector.
//   - data holds the elements; len(data) ≥ 1.
//   - validateNaNInf enables NaN/Inf rejection on Set and in-place ops.
type VecDense struct {
	data           []float64
	validateNaNInf bool
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Vector       = (*VecDense)(nil)
	_ fmt.Stringer = (*VecDense)(nil)
)

// NewVecDense ALLOCATES a vector of n elements set to the fill value
// (WithFill, default 0).
// Implementation:
//   - Stage 1: validate n > 0; else ErrBadShape.
//   - Stage 2: resolve options, check fill against the policy, allocate.
//
// Errors:
//   - ErrBadShape for n ≤ 0.
//   - ErrNaNInf when WithFill(±Inf) is combined with WithValidateNaNInf.
//
// Complexity:
//   - Time O(n), Space O(n).
func NewVecDense(n int, opts ...Option) (*VecDense, error) {
	if n <= 0 {
		return nil, fmt.Errorf("NewVecDense(%d): %w", n, ErrBadShape)
	}
	o := gatherOptions(opts...)
	if err := o.checkFill(); err != nil {
		return nil, fmt.Errorf("NewVecDense(%d): %w", n, err)
	}

	data := make([]float64, n)
	if o.fill != 0 {
		for i := range data {
			data[i] = o.fill
		}
	}

	return &VecDense{data: data, validateNaNInf: o.validateNaNInf}, nil
}

// NewVecDenseFrom COPIES values into a new vector.
//
// Errors:
//   - ErrBadShape for an empty slice.
//   - ErrNaNInf for a non-finite value under WithValidateNaNInf.
func NewVecDenseFrom(values []float64, opts ...Option) (*VecDense, error) {
	return newVecDenseChecked("NewVecDenseFrom", slices.Clone(values), opts)
}

// WrapVec returns a vector that ALIASES values: writes through the vector are
// visible in the slice and vice versa. The slice must not be resized by the
// caller while the vector is in use.
//
// Errors:
//   - ErrBadShape for an empty slice.
//   - ErrNaNInf for a non-finite value under WithValidateNaNInf.
func WrapVec(values []float64, opts ...Option) (*VecDense, error) {
	return newVecDenseChecked("WrapVec", values, opts)
}

// newVecDenseChecked adopts data after shape and policy checks.
func newVecDenseChecked(tag string, data []float64, opts []Option) (*VecDense, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%s: empty: %w", tag, ErrBadShape)
	}
	o := gatherOptions(opts...)
	if o.validateNaNInf {
		if k := checkFinite(data); k >= 0 {
			return nil, fmt.Errorf("%s: element %d: %w", tag, k, ErrNaNInf)
		}
	}

	return &VecDense{data: data, validateNaNInf: o.validateNaNInf}, nil
}

// newVecOwned adopts a freshly computed buffer with the default policy.
func newVecOwned(data []float64) *VecDense {
	return &VecDense{data: data, validateNaNInf: DefaultValidateNaNInf}
}

// Len returns the number of elements.
func (v *VecDense) Len() int { return len(v.data) }

// At returns element i or ErrOutOfRange.
func (v *VecDense) At(i int) (float64, error) {
	if i < 0 || i >= len(v.data) {
		return 0, fmt.Errorf("VecDense.%s(%d): %w", ctxVecAt, i, ErrOutOfRange)
	}

	return v.data[i], nil
}

// Set stores x at i, honoring the numeric policy.
func (v *VecDense) Set(i int, x float64) error {
	if i < 0 || i >= len(v.data) {
		return fmt.Errorf("VecDense.%s(%d): %w", ctxVecSet, i, ErrOutOfRange)
	}
	if v.validateNaNInf && isNonFinite(x) {
		return fmt.Errorf("VecDense.%s(%d): %w", ctxVecSet, i, ErrNaNInf)
	}
	v.data[i] = x

	return nil
}

// Clone returns a deep copy with the same numeric policy.
func (v *VecDense) Clone() Vector {
	return &VecDense{data: slices.Clone(v.data), validateNaNInf: v.validateNaNInf}
}

// RawData exposes the backing slice (no copy). Mutations bypass the numeric
// policy.
func (v *VecDense) RawData() []float64 { return v.data }

// String renders the vector as "[a, b, c]".
func (v *VecDense) String() string {
	var b strings.Builder
	b.WriteString(_fmtRowOpen)
	for i, x := range v.data {
		if i > 0 {
			b.WriteString(_fmtSep)
		}
		fmt.Fprintf(&b, "%g", x)
	}
	b.WriteString("]")

	return b.String()
}

// Fill sets every element to x.
func (v *VecDense) Fill(x float64) error {
	if v.validateNaNInf && isNonFinite(x) {
		return fmt.Errorf("VecDense.Fill: %w", ErrNaNInf)
	}
	for i := range v.data {
		v.data[i] = x
	}

	return nil
}

// AddInPlace performs v[i] += b[i]. Nothing is written on error.
func (v *VecDense) AddInPlace(b Vector) error { return v.combineInPlace(opAddInPlace, b, addOp) }

// SubInPlace performs v[i] -= b[i].
func (v *VecDense) SubInPlace(b Vector) error { return v.combineInPlace(opSubInPlace, b, subOp) }

// MulInPlace performs v[i] *= b[i].
func (v *VecDense) MulInPlace(b Vector) error { return v.combineInPlace(opMulInPlace, b, mulOp) }

// DivInPlace performs v[i] /= b[i] with IEEE-754 semantics for zero divisors.
func (v *VecDense) DivInPlace(b Vector) error { return v.combineInPlace(opDivInPlace, b, divOp) }

// ScaleInPlace performs v[i] *= alpha.
func (v *VecDense) ScaleInPlace(alpha float64) error {
	return v.ApplyInPlace(func(x float64) float64 { return alpha * x })
}

// ApplyInPlace replaces every element with op(element).
//
// Errors:
//   - ErrNilArgument for a nil op.
//   - ErrNaNInf if the policy is on and op produced a non-finite value
//     (the vector is left unchanged).
func (v *VecDense) ApplyInPlace(op func(x float64) float64) error {
	if op == nil {
		return linearErrorf("VecDense."+opApplyInPlace, ErrNilArgument)
	}
	buf := make([]float64, len(v.data))
	if err := mapFlat(buf, vecAccess{v}, op); err != nil {
		return linearErrorf("VecDense."+opApplyInPlace, err)
	}

	return commitFlat("VecDense."+opApplyInPlace, v.data, buf, v.validateNaNInf)
}

// combineInPlace validates b, computes op(v, b) into scratch and commits.
func (v *VecDense) combineInPlace(tag string, b Vector, op func(x, y float64) float64) error {
	tag = "VecDense." + tag
	if err := ValidateSameLen(v, b); err != nil {
		return linearErrorf(tag, err)
	}
	buf := make([]float64, len(v.data))
	if err := combineFlat(buf, vecAccess{v}, vecAccess{b}, op); err != nil {
		return linearErrorf(tag, err)
	}

	return commitFlat(tag, v.data, buf, v.validateNaNInf)
}
