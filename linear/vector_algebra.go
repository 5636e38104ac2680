// SPDX-License-Identifier: MIT

// Package linear - vector algebra.
//
// Purpose:
//   - Inner products (Dot, MetricDot), the generalized cross product in
//     n-space, a windowed linear-independence probe and the outer product.
//   - Small structural helpers: Concat, SubVector, Shift, Reverse, SwapVec.
//
// AI-Hints:
//   - Cross and IsLinearIndependent reuse the Determinant elimination, so
//     their zero tests are exact: a result that should vanish may come out
//     as a tiny non-zero after rounding.
package linear

import (
	"fmt"
	"slices"
)

// VecToSlice returns an independent copy of v's elements.
//
// Errors:
//   - ErrNilArgument, or an access error from a fallback vector.
func VecToSlice(v Vector) ([]float64, error) {
	if err := ValidateVectorNotNil(v); err != nil {
		return nil, err
	}
	out := make([]float64, v.Len())
	if err := mapFlat(out, vecAccess{v}, copyOp); err != nil {
		return nil, err
	}

	return out, nil
}

// Dot returns Σ a[i]·b[i].
//
// Errors:
//   - ErrNilArgument, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n), Space O(1) on the *VecDense path.
func Dot(a, b Vector) (float64, error) {
	if err := ValidateSameLen(a, b); err != nil {
		return 0, linearErrorf(opDot, err)
	}
	ra, rb := vecAccess{a}.raw(), vecAccess{b}.raw()
	if ra != nil && rb != nil {
		sum := ZeroSum
		for i, x := range ra {
			sum += x * rb[i]
		}
		return sum, nil
	}

	sum := ZeroSum
	for i := 0; i < a.Len(); i++ {
		x, err := a.At(i)
		if err != nil {
			return 0, linearErrorf(opDot, err)
		}
		y, err := b.At(i)
		if err != nil {
			return 0, linearErrorf(opDot, err)
		}
		sum += x * y
	}

	return sum, nil
}

// MetricDot returns the bilinear form Σᵢⱼ a[i]·b[j]·M[i,j].
// With M = I it equals Dot(a, b).
//
// Errors:
//   - ErrNilArgument, ErrDimensionMismatch (M is not |a|×|b|).
//
// Complexity:
//   - Time O(|a|·|b|).
func MetricDot(a, b Vector, m Matrix) (float64, error) {
	if err := ValidateVectorNotNil(a); err != nil {
		return 0, linearErrorf(opMetricDot, err)
	}
	if err := ValidateNotNil(m); err != nil {
		return 0, linearErrorf(opMetricDot, err)
	}
	if err := ValidateVecLen(b, m.Cols()); err != nil {
		return 0, linearErrorf(opMetricDot, err)
	}
	if a.Len() != m.Rows() {
		return 0, linearErrorf(opMetricDot,
			fmt.Errorf("metric %dx%d for lengths %d,%d: %w", m.Rows(), m.Cols(), a.Len(), b.Len(), ErrDimensionMismatch))
	}
	mb, err := MatVec(m, b)
	if err != nil {
		return 0, linearErrorf(opMetricDot, err)
	}
	sum, err := Dot(a, mb)
	if err != nil {
		return 0, linearErrorf(opMetricDot, err)
	}

	return sum, nil
}

// Cross returns the generalized cross product of n-1 vectors of length n.
// Implementation:
//   - Stage 1: stack the inputs as the rows of an (n-1)×n matrix.
//   - Stage 2: result[i] = ±det(minor_i), where minor_i drops column i;
//     the sign is + for even i and - for odd i.
//
// Behavior highlights:
//   - In 3-D this is the familiar a×b with e₁×e₂ = e₃; the result is
//     orthogonal to every input.
//   - Each minor goes through the same elimination as Determinant.
//
// Errors:
//   - ErrNilArgument; ErrDimensionMismatch when no vector is given or any
//     vector's length differs from len(vs)+1.
//
// Complexity:
//   - Time O(n⁴) (n determinants of order n-1), Space O(n²).
func Cross(vs ...Vector) (*VecDense, error) {
	if len(vs) == 0 {
		return nil, linearErrorf(opCross, fmt.Errorf("no vectors: %w", ErrDimensionMismatch))
	}
	n := len(vs) + 1
	rows, err := stackRows(vs, n)
	if err != nil {
		return nil, linearErrorf(opCross, err)
	}

	k := n - 1
	out := make([]float64, n)
	minor := make([]float64, k*k)
	for col := 0; col < n; col++ {
		for r := 0; r < k; r++ {
			src := rows[r*n : (r+1)*n]
			dst := minor[r*k : (r+1)*k]
			copy(dst, src[:col])
			copy(dst[col:], src[col+1:])
		}
		d := determinantFlat(minor, k)
		switch {
		case d == 0:
			d = 0 // drop a negative zero
		case col%2 == 1:
			d = -d
		}
		out[col] = d
	}

	return newVecOwned(out), nil
}

// IsLinearIndependent probes whether vs are linearly independent.
// Implementation:
//   - For each window start s = 0..n-m, build the m×m matrix of coordinates
//     [s, s+m) of every vector; a non-zero determinant proves independence.
//   - If every window is singular the probe reports false.
//
// Behavior highlights:
//   - APPROXIMATE: only n-m+1 contiguous column windows are tried, not all
//     C(n,m) minors, so some independent sets report false
//     (e.g. (1,0,0) and (0,0,1)). A true result is always correct.
//   - More vectors than coordinates (m > n) is always dependent: false, nil.
//
// Errors:
//   - ErrNilArgument; ErrDimensionMismatch for no vectors or unequal lengths.
//
// Complexity:
//   - Time O((n-m+1)·m³), Space O(m·n).
func IsLinearIndependent(vs ...Vector) (bool, error) {
	if len(vs) == 0 {
		return false, linearErrorf(opIndependent, fmt.Errorf("no vectors: %w", ErrDimensionMismatch))
	}
	if err := ValidateVectorNotNil(vs[0]); err != nil {
		return false, linearErrorf(opIndependent, err)
	}
	n, m := vs[0].Len(), len(vs)
	rows, err := stackRows(vs, n)
	if err != nil {
		return false, linearErrorf(opIndependent, err)
	}
	if m > n {
		return false, nil
	}

	win := make([]float64, m*m)
	for s := 0; s+m <= n; s++ {
		for r := 0; r < m; r++ {
			copy(win[r*m:(r+1)*m], rows[r*n+s:r*n+s+m])
		}
		if determinantFlat(win, m) != 0 {
			return true, nil
		}
	}

	return false, nil
}

// stackRows copies vectors of length n into a row-major buffer.
func stackRows(vs []Vector, n int) ([]float64, error) {
	out := make([]float64, 0, len(vs)*n)
	for i, v := range vs {
		if err := ValidateVecLen(v, n); err != nil {
			return nil, fmt.Errorf("vector %d: %w", i, err)
		}
		vals, err := VecToSlice(v)
		if err != nil {
			return nil, fmt.Errorf("vector %d: %w", i, err)
		}
		out = append(out, vals...)
	}

	return out, nil
}

// Outer returns the |a|×|b| matrix a·bᵀ.
func Outer(a, b Vector) (*Dense, error) {
	x, err := VecToSlice(a)
	if err != nil {
		return nil, linearErrorf(opOuter, err)
	}
	y, err := VecToSlice(b)
	if err != nil {
		return nil, linearErrorf(opOuter, err)
	}
	out := make([]float64, len(x)*len(y))
	for i, xi := range x {
		row := out[i*len(y) : (i+1)*len(y)]
		for j, yj := range y {
			row[j] = xi * yj
		}
	}

	return newDenseOwned(len(x), len(y), out), nil
}

// Concat returns a new vector holding a's elements followed by b's.
func Concat(a, b Vector) (*VecDense, error) {
	x, err := VecToSlice(a)
	if err != nil {
		return nil, linearErrorf(opConcat, err)
	}
	y, err := VecToSlice(b)
	if err != nil {
		return nil, linearErrorf(opConcat, err)
	}

	return newVecOwned(slices.Concat(x, y)), nil
}

// SubVector copies elements [start, end) into a new vector.
//
// Errors:
//   - ErrNilArgument, ErrOutOfRange (bounds), ErrBadShape (start ≥ end).
func SubVector(v Vector, start, end int) (*VecDense, error) {
	if err := ValidateVectorNotNil(v); err != nil {
		return nil, linearErrorf(opSubVector, err)
	}
	if start < 0 || end > v.Len() {
		return nil, linearErrorf(opSubVector, fmt.Errorf("[%d:%d] of %d: %w", start, end, v.Len(), ErrOutOfRange))
	}
	if start >= end {
		return nil, linearErrorf(opSubVector, fmt.Errorf("[%d:%d]: %w", start, end, ErrBadShape))
	}
	out := make([]float64, end-start)
	for i := range out {
		x, err := v.At(start + i)
		if err != nil {
			return nil, linearErrorf(opSubVector, err)
		}
		out[i] = x
	}

	return newVecOwned(out), nil
}

// Shift rotates v in place by k positions: the element at i moves to
// (i+k) mod n. Negative k rotates toward lower indices.
func Shift(v Vector, k int) error {
	vals, err := VecToSlice(v)
	if err != nil {
		return linearErrorf(opShift, err)
	}
	n := len(vals)
	if n == 0 {
		return nil
	}
	k %= n
	if k < 0 {
		k += n
	}
	for i, x := range vals {
		if err = v.Set((i+k)%n, x); err != nil {
			return linearErrorf(opShift, err)
		}
	}

	return nil
}

// Reverse reverses the order of v's elements in place.
func Reverse(v Vector) error {
	if err := ValidateVectorNotNil(v); err != nil {
		return linearErrorf(opReverse, err)
	}
	for i, j := 0, v.Len()-1; i < j; i, j = i+1, j-1 {
		if err := SwapVec(v, i, j); err != nil {
			return linearErrorf(opReverse, err)
		}
	}

	return nil
}

// SwapVec exchanges v[i] and v[j].
func SwapVec(v Vector, i, j int) error {
	if err := ValidateVectorNotNil(v); err != nil {
		return linearErrorf(opSwapVec, err)
	}
	x, err := v.At(i)
	if err != nil {
		return linearErrorf(opSwapVec, err)
	}
	y, err := v.At(j)
	if err != nil {
		return linearErrorf(opSwapVec, err)
	}
	if err = v.Set(i, y); err != nil {
		return linearErrorf(opSwapVec, err)
	}
	if err = v.Set(j, x); err != nil {
		return linearErrorf(opSwapVec, err)
	}

	return nil
}

// FillVec sets every element of v to x through Set.
func FillVec(v Vector, x float64) error {
	if err := ValidateVectorNotNil(v); err != nil {
		return linearErrorf(opFill, err)
	}
	for i := 0; i < v.Len(); i++ {
		if err := v.Set(i, x); err != nil {
			return linearErrorf(opFill, err)
		}
	}

	return nil
}
