// SPDX-License-Identifier: MIT
// Package linear provides universal operations on any Matrix implementation:
// row/column access, submatrices, products, determinant and inverse.
// All functions perform strict fail-fast validation and return clear errors
// on dimension mismatches.
//
// Purpose:
//   - Declare canonical matrix kernels used across the package.
//   - Define operation tags and shared constants for error reporting.
//
// Notes:
//   - Every kernel validates through validators.go and wraps failures with
//     linearErrorf at the facade.

package linear

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/samber/lo"
)

// ZeroSum is the initial value of dot-product style accumulations.
const ZeroSum = 0.0

// ZeroPivot is the exact value that marks an unusable pivot during
// elimination. Only an exact zero triggers a row swap; there is no
// magnitude-based pivoting.
const ZeroPivot = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd           = "Add"
	opSub           = "Sub"
	opHadamard      = "Hadamard"
	opDiv           = "Div"
	opScale         = "Scale"
	opCopy          = "Copy"
	opCombine       = "Combine"
	opApply         = "Apply"
	opAddInPlace    = "AddInPlace"
	opSubInPlace    = "SubInPlace"
	opMulInPlace    = "MulInPlace"
	opDivInPlace    = "DivInPlace"
	opApplyInPlace  = "ApplyInPlace"
	opMul           = "Mul"
	opTranspose     = "Transpose"
	opInverse       = "Inverse"
	opDeterminant   = "Determinant"
	opMatVec        = "MatVec"
	opVecMat        = "VecMat"
	opRow           = "Row"
	opCol           = "Col"
	opSetRow        = "SetRow"
	opSetCol        = "SetCol"
	opSwapRows      = "SwapRows"
	opSwapCols      = "SwapCols"
	opSwapElements  = "SwapElements"
	opSubMatrix     = "SubMatrix"
	opSetSubMatrix  = "SetSubMatrix"
	opFill          = "Fill"
	opToSlices      = "ToSlices"
	opFlatten       = "Flatten"
	opAllClose      = "AllClose"
	opTensorProduct = "TensorProduct"
	opDot           = "Dot"
	opMetricDot     = "MetricDot"
	opCross         = "Cross"
	opIndependent   = "IsLinearIndependent"
	opOuter         = "Outer"
	opConcat        = "Concat"
	opSubVector     = "SubVector"
	opShift         = "Shift"
	opReverse       = "Reverse"
	opSwapVec       = "SwapVec"
)

// linearErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting across facades.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Always gate calls with `if err != nil { return nil, linearErrorf(tag, err) }`.
//   - Keep `tag` to the canonical constants to simplify log/search pipelines.
func linearErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ---------- Rows & columns ----------

// Row returns a copy of row i as a vector.
//
// Errors:
//   - ErrNilArgument, ErrOutOfRange.
func Row(m Matrix, i int) (*VecDense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, linearErrorf(opRow, err)
	}
	if i < 0 || i >= m.Rows() {
		return nil, linearErrorf(opRow, fmt.Errorf("row %d of %d: %w", i, m.Rows(), ErrOutOfRange))
	}
	if d, ok := m.(*Dense); ok {
		return newVecOwned(slices.Clone(d.data[i*d.c : (i+1)*d.c])), nil
	}
	out := make([]float64, m.Cols())
	for j := range out {
		v, err := m.At(i, j)
		if err != nil {
			return nil, linearErrorf(opRow, err)
		}
		out[j] = v
	}

	return newVecOwned(out), nil
}

// Col returns a copy of column j as a vector.
func Col(m Matrix, j int) (*VecDense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, linearErrorf(opCol, err)
	}
	if j < 0 || j >= m.Cols() {
		return nil, linearErrorf(opCol, fmt.Errorf("col %d of %d: %w", j, m.Cols(), ErrOutOfRange))
	}
	out := make([]float64, m.Rows())
	for i := range out {
		v, err := m.At(i, j)
		if err != nil {
			return nil, linearErrorf(opCol, err)
		}
		out[i] = v
	}

	return newVecOwned(out), nil
}

// SetRow overwrites row i with v (len(v) must equal Cols).
// Values are read in full before the first write.
//
// Errors:
//   - ErrNilArgument, ErrOutOfRange, ErrDimensionMismatch, ErrNaNInf (policy of m).
func SetRow(m Matrix, i int, v Vector) error {
	if err := ValidateNotNil(m); err != nil {
		return linearErrorf(opSetRow, err)
	}
	if i < 0 || i >= m.Rows() {
		return linearErrorf(opSetRow, fmt.Errorf("row %d of %d: %w", i, m.Rows(), ErrOutOfRange))
	}
	vals, err := VecToSlice(v)
	if err != nil {
		return linearErrorf(opSetRow, err)
	}
	if len(vals) != m.Cols() {
		return linearErrorf(opSetRow, fmt.Errorf("length %d, want %d: %w", len(vals), m.Cols(), ErrDimensionMismatch))
	}
	if err = writeBlock(m, i, 0, 1, len(vals), vals); err != nil {
		return linearErrorf(opSetRow, err)
	}

	return nil
}

// SetCol overwrites column j with v (len(v) must equal Rows).
func SetCol(m Matrix, j int, v Vector) error {
	if err := ValidateNotNil(m); err != nil {
		return linearErrorf(opSetCol, err)
	}
	if j < 0 || j >= m.Cols() {
		return linearErrorf(opSetCol, fmt.Errorf("col %d of %d: %w", j, m.Cols(), ErrOutOfRange))
	}
	vals, err := VecToSlice(v)
	if err != nil {
		return linearErrorf(opSetCol, err)
	}
	if len(vals) != m.Rows() {
		return linearErrorf(opSetCol, fmt.Errorf("length %d, want %d: %w", len(vals), m.Rows(), ErrDimensionMismatch))
	}
	if err = writeBlock(m, 0, j, len(vals), 1, vals); err != nil {
		return linearErrorf(opSetCol, err)
	}

	return nil
}

// SwapRows exchanges rows i1 and i2 in place: two extractions, two writes.
func SwapRows(m Matrix, i1, i2 int) error {
	r1, err := Row(m, i1)
	if err != nil {
		return linearErrorf(opSwapRows, err)
	}
	r2, err := Row(m, i2)
	if err != nil {
		return linearErrorf(opSwapRows, err)
	}
	if err = SetRow(m, i1, r2); err != nil {
		return linearErrorf(opSwapRows, err)
	}
	if err = SetRow(m, i2, r1); err != nil {
		return linearErrorf(opSwapRows, err)
	}

	return nil
}

// SwapCols exchanges columns j1 and j2 in place.
func SwapCols(m Matrix, j1, j2 int) error {
	c1, err := Col(m, j1)
	if err != nil {
		return linearErrorf(opSwapCols, err)
	}
	c2, err := Col(m, j2)
	if err != nil {
		return linearErrorf(opSwapCols, err)
	}
	if err = SetCol(m, j1, c2); err != nil {
		return linearErrorf(opSwapCols, err)
	}
	if err = SetCol(m, j2, c1); err != nil {
		return linearErrorf(opSwapCols, err)
	}

	return nil
}

// SwapElements exchanges m[i1,j1] and m[i2,j2].
func SwapElements(m Matrix, i1, j1, i2, j2 int) error {
	if err := ValidateNotNil(m); err != nil {
		return linearErrorf(opSwapElements, err)
	}
	a, err := m.At(i1, j1)
	if err != nil {
		return linearErrorf(opSwapElements, err)
	}
	b, err := m.At(i2, j2)
	if err != nil {
		return linearErrorf(opSwapElements, err)
	}
	if err = m.Set(i1, j1, b); err != nil {
		return linearErrorf(opSwapElements, err)
	}
	if err = m.Set(i2, j2, a); err != nil {
		return linearErrorf(opSwapElements, err)
	}

	return nil
}

// ---------- Submatrices ----------

// SubMatrix copies rows [low, up) and columns [left, right) into a new *Dense.
// Implementation:
//   - Stage 1: 0 ≤ low < up ≤ Rows and 0 ≤ left < right ≤ Cols.
//   - Stage 2: *Dense → Induced over the two index ranges; else At per element.
//
// Errors:
//   - ErrNilArgument, ErrOutOfRange (bounds), ErrBadShape (empty range).
//
// Complexity:
//   - Time O((up-low)·(right-left)).
func SubMatrix(m Matrix, low, left, up, right int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, linearErrorf(opSubMatrix, err)
	}
	if low < 0 || left < 0 || up > m.Rows() || right > m.Cols() {
		return nil, linearErrorf(opSubMatrix,
			fmt.Errorf("[%d:%d, %d:%d] of %dx%d: %w", low, up, left, right, m.Rows(), m.Cols(), ErrOutOfRange))
	}
	if up <= low || right <= left {
		return nil, linearErrorf(opSubMatrix, fmt.Errorf("[%d:%d, %d:%d]: %w", low, up, left, right, ErrBadShape))
	}

	if d, ok := m.(*Dense); ok {
		sub, err := d.Induced(lo.RangeFrom(low, up-low), lo.RangeFrom(left, right-left))
		if err != nil {
			return nil, linearErrorf(opSubMatrix, err)
		}
		sub.validateNaNInf = DefaultValidateNaNInf
		return sub, nil
	}

	h, w := up-low, right-left
	out := make([]float64, h*w)
	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			v, err := m.At(low+i, left+j)
			if err != nil {
				return nil, linearErrorf(opSubMatrix, err)
			}
			out[i*w+j] = v
		}
	}

	return newDenseOwned(h, w, out), nil
}

// SetSubMatrix writes sub into m with its top-left corner at (low, left).
// The whole block must fit; nothing is written otherwise.
//
// Errors:
//   - ErrNilArgument, ErrOutOfRange, ErrNaNInf (policy of m), or an error from m.Set.
func SetSubMatrix(m Matrix, low, left int, sub Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return linearErrorf(opSetSubMatrix, err)
	}
	if err := ValidateNotNil(sub); err != nil {
		return linearErrorf(opSetSubMatrix, err)
	}
	h, w := sub.Rows(), sub.Cols()
	if low < 0 || left < 0 || low+h > m.Rows() || left+w > m.Cols() {
		return linearErrorf(opSetSubMatrix,
			fmt.Errorf("%dx%d block at (%d,%d) in %dx%d: %w", h, w, low, left, m.Rows(), m.Cols(), ErrOutOfRange))
	}
	vals := make([]float64, h*w)
	if err := mapFlat(vals, newMatAccess(sub), copyOp); err != nil {
		return linearErrorf(opSetSubMatrix, err)
	}
	if err := writeBlock(m, low, left, h, w, vals); err != nil {
		return linearErrorf(opSetSubMatrix, err)
	}

	return nil
}

// writeBlock stores the h×w row-major vals into m with its corner at
// (low, left). Either every element lands or m is left as it was.
// Known storages are checked against their numeric policy up front; any other
// storage has the block snapshotted and restored when a Set fails.
func writeBlock(m Matrix, low, left, h, w int, vals []float64) error {
	if rejectsNonFinite(m) {
		if k := checkFinite(vals); k >= 0 {
			return fmt.Errorf("element (%d,%d): %w", low+k/w, left+k%w, ErrNaNInf)
		}
	}
	if d, ok := m.(*Dense); ok {
		for i := 0; i < h; i++ {
			copy(d.data[(low+i)*d.c+left:(low+i)*d.c+left+w], vals[i*w:(i+1)*w])
		}

		return nil
	}

	prev := make([]float64, len(vals))
	for k := range prev {
		x, err := m.At(low+k/w, left+k%w)
		if err != nil {
			return err
		}
		prev[k] = x
	}
	for k, x := range vals {
		if err := m.Set(low+k/w, left+k%w, x); err != nil {
			for r := 0; r < k; r++ {
				if rerr := m.Set(low+r/w, left+r%w, prev[r]); rerr != nil {
					err = errors.Join(err, rerr)
				}
			}

			return err
		}
	}

	return nil
}

// rejectsNonFinite reports whether m is a storage of this package with the
// NaN/Inf policy switched on.
func rejectsNonFinite(m Matrix) bool {
	switch s := m.(type) {
	case *Dense:
		return s.validateNaNInf
	case *RowMatrix:
		return s.validateNaNInf
	case *MatrixView:
		return s.base.validateNaNInf
	}

	return false
}

// ---------- Products ----------

// Mul computes the matrix product C = A × B.
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b).
//   - Stage 2: *Dense × *Dense → i-k-j loop over the flat buffers;
//     otherwise an i-j-k dot-product loop through At.
//
// Behavior highlights:
//   - No zero skipping: 0·Inf = NaN is preserved as IEEE-754 defines it.
//
// Errors:
//   - ErrNilArgument, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r·k·c), Space O(r·c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, linearErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res := make([]float64, aRows*bCols)

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for i := 0; i < aRows; i++ {
				rowR := res[i*bCols : (i+1)*bCols]
				for k := 0; k < aCols; k++ {
					av := da.data[i*aCols+k]
					rowB := db.data[k*bCols : (k+1)*bCols]
					for j, bv := range rowB {
						rowR[j] += av * bv
					}
				}
			}
			return newDenseOwned(aRows, bCols, res), nil
		}
	}

	for i := 0; i < aRows; i++ {
		for j := 0; j < bCols; j++ {
			sum := ZeroSum
			for k := 0; k < aCols; k++ {
				av, err := a.At(i, k)
				if err != nil {
					return nil, linearErrorf(opMul, err)
				}
				bv, err := b.At(k, j)
				if err != nil {
					return nil, linearErrorf(opMul, err)
				}
				sum += av * bv
			}
			res[i*bCols+j] = sum
		}
	}

	return newDenseOwned(aRows, bCols, res), nil
}

// MatVec computes y = M·v, y[i] = Σ_j M[i,j]·v[j].
//
// Errors:
//   - ErrNilArgument, ErrDimensionMismatch (len(v) ≠ Cols).
func MatVec(m Matrix, v Vector) (*VecDense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, linearErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(v, m.Cols()); err != nil {
		return nil, linearErrorf(opMatVec, err)
	}
	x, err := VecToSlice(v)
	if err != nil {
		return nil, linearErrorf(opMatVec, err)
	}

	rows, cols := m.Rows(), m.Cols()
	out := make([]float64, rows)
	if d, ok := m.(*Dense); ok {
		for i := range out {
			sum := ZeroSum
			for j, mv := range d.data[i*cols : (i+1)*cols] {
				sum += mv * x[j]
			}
			out[i] = sum
		}
		return newVecOwned(out), nil
	}
	for i := range out {
		sum := ZeroSum
		for j := 0; j < cols; j++ {
			mv, err := m.At(i, j)
			if err != nil {
				return nil, linearErrorf(opMatVec, err)
			}
			sum += mv * x[j]
		}
		out[i] = sum
	}

	return newVecOwned(out), nil
}

// VecMat computes y = vᵀ·M, y[j] = Σ_i v[i]·M[i,j].
//
// Errors:
//   - ErrNilArgument, ErrDimensionMismatch (len(v) ≠ Rows).
func VecMat(v Vector, m Matrix) (*VecDense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, linearErrorf(opVecMat, err)
	}
	if err := ValidateVecLen(v, m.Rows()); err != nil {
		return nil, linearErrorf(opVecMat, err)
	}
	x, err := VecToSlice(v)
	if err != nil {
		return nil, linearErrorf(opVecMat, err)
	}

	rows, cols := m.Rows(), m.Cols()
	out := make([]float64, cols)
	for j := range out {
		sum := ZeroSum
		for i := 0; i < rows; i++ {
			mv, err := m.At(i, j)
			if err != nil {
				return nil, linearErrorf(opVecMat, err)
			}
			sum += x[i] * mv
		}
		out[j] = sum
	}

	return newVecOwned(out), nil
}

// ---------- Determinant & inverse ----------

// Determinant computes det(M) by forward elimination on a private copy.
// Implementation:
//   - Stage 1: validate square; copy M into a flat n×n buffer.
//   - Stage 2: for each pivot column c < n-1: an exactly zero pivot is
//     replaced by swapping in the first row below with a non-zero entry
//     (flipping the sign); no such row means det = 0. Rows below with a
//     non-zero entry in c get row -= (entry/pivot)·pivotRow.
//   - Stage 3: det = sign · Π diagonal.
//
// Behavior highlights:
//   - Pivot choice looks at zero/non-zero only, not at magnitude.
//   - M is never mutated.
//
// Errors:
//   - ErrNilArgument, ErrNonSquare, or an access error from a fallback operand.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Determinant(m Matrix) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, linearErrorf(opDeterminant, err)
	}
	a, err := flatCopy(m)
	if err != nil {
		return 0, linearErrorf(opDeterminant, err)
	}

	return determinantFlat(a, m.Rows()), nil
}

// determinantFlat runs the elimination in place on a (n×n, row-major).
func determinantFlat(a []float64, n int) float64 {
	sign := 1.0
	for c := 0; c < n-1; c++ {
		if a[c*n+c] == ZeroPivot {
			r := nonZeroBelow(a, n, c)
			if r < 0 {
				return 0
			}
			swapFlatRows(a, n, c, r)
			sign = -sign
		}
		eliminateBelow(a, nil, n, c)
	}

	det := sign
	for i := 0; i < n; i++ {
		det *= a[i*n+i]
	}

	return det
}

// Inverse computes M⁻¹ by Gauss–Jordan elimination on [M | I].
// Implementation:
//   - Stage 1: validate square; copy M, build I.
//   - Stage 2 (downward sweep): per column, swap in a non-zero pivot and
//     clear every entry below it, applying each row operation to both halves.
//   - Stage 3 (upward sweep): clear every entry above each pivot.
//   - Stage 4: divide each row by its pivot; the right half is the inverse.
//
// Behavior highlights:
//   - A pivot column with no non-zero entry on or below the diagonal returns
//     ErrSingular; no partial result is produced.
//   - Pivot detection is exact (ZeroPivot); nearly singular input yields a
//     numerically poor inverse rather than an error.
//
// Errors:
//   - ErrNilArgument, ErrNonSquare, ErrSingular.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Inverse(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, linearErrorf(opInverse, err)
	}
	a, err := flatCopy(m)
	if err != nil {
		return nil, linearErrorf(opInverse, err)
	}
	n := m.Rows()
	inv := make([]float64, n*n)
	for i := 0; i < n; i++ {
		inv[i*n+i] = 1
	}

	for c := 0; c < n; c++ {
		if a[c*n+c] == ZeroPivot {
			r := nonZeroBelow(a, n, c)
			if r < 0 {
				return nil, linearErrorf(opInverse, fmt.Errorf("column %d: %w", c, ErrSingular))
			}
			swapFlatRows(a, n, c, r)
			swapFlatRows(inv, n, c, r)
		}
		eliminateBelow(a, inv, n, c)
	}

	for c := n - 1; c > 0; c-- {
		pivot := a[c*n+c]
		for r := c - 1; r >= 0; r-- {
			f := a[r*n+c]
			if f == 0 {
				continue
			}
			f /= pivot
			axpyRow(a, n, r, c, -f)
			axpyRow(inv, n, r, c, -f)
		}
	}

	for i := 0; i < n; i++ {
		p := a[i*n+i]
		row := inv[i*n : (i+1)*n]
		for j := range row {
			row[j] /= p
		}
	}

	return newDenseOwned(n, n, inv), nil
}

// flatCopy returns a row-major copy of m.
func flatCopy(m Matrix) ([]float64, error) {
	out := make([]float64, m.Rows()*m.Cols())
	if err := mapFlat(out, newMatAccess(m), copyOp); err != nil {
		return nil, err
	}

	return out, nil
}

// nonZeroBelow returns the first row r > c with a[r,c] ≠ 0, or -1.
func nonZeroBelow(a []float64, n, c int) int {
	for r := c + 1; r < n; r++ {
		if a[r*n+c] != ZeroPivot {
			return r
		}
	}

	return -1
}

func swapFlatRows(a []float64, n, r1, r2 int) {
	x, y := a[r1*n:(r1+1)*n], a[r2*n:(r2+1)*n]
	for j := range x {
		x[j], y[j] = y[j], x[j]
	}
}

// axpyRow performs row[dst] += f·row[src] on an n-column buffer.
func axpyRow(a []float64, n, dst, src int, f float64) {
	d, s := a[dst*n:(dst+1)*n], a[src*n:(src+1)*n]
	for j, x := range s {
		d[j] += f * x
	}
}

// eliminateBelow clears column c under its (non-zero) pivot in a and
// mirrors every row operation on aug when aug is non-nil.
func eliminateBelow(a, aug []float64, n, c int) {
	pivot := a[c*n+c]
	for r := c + 1; r < n; r++ {
		f := a[r*n+c]
		if f == 0 {
			continue
		}
		f /= pivot
		axpyRow(a, n, r, c, -f)
		if aug != nil {
			axpyRow(aug, n, r, c, -f)
		}
	}
}

// ---------- Shape utilities ----------

// Transpose returns a new *Dense with rows and columns swapped (mᵀ).
//
// Errors:
//   - ErrNilArgument.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, linearErrorf(opTranspose, err)
	}
	rows, cols := m.Rows(), m.Cols()
	src, err := flatCopy(m)
	if err != nil {
		return nil, linearErrorf(opTranspose, err)
	}
	out := make([]float64, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out[j*rows+i] = src[i*cols+j]
		}
	}

	return newDenseOwned(cols, rows, out), nil
}

// FillMatrix sets every element of m to x through Set.
func FillMatrix(m Matrix, x float64) error {
	if err := ValidateNotNil(m); err != nil {
		return linearErrorf(opFill, err)
	}
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			if err := m.Set(i, j, x); err != nil {
				return linearErrorf(opFill, err)
			}
		}
	}

	return nil
}

// ToSlices returns an independent [][]float64 copy of m.
func ToSlices(m Matrix) ([][]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, linearErrorf(opToSlices, err)
	}
	flat, err := flatCopy(m)
	if err != nil {
		return nil, linearErrorf(opToSlices, err)
	}
	cols := m.Cols()

	return lo.Times(m.Rows(), func(i int) []float64 {
		return flat[i*cols : (i+1)*cols : (i+1)*cols]
	}), nil
}

// Flatten returns the row-major concatenation of m's rows as a vector.
func Flatten(m Matrix) (*VecDense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, linearErrorf(opFlatten, err)
	}
	flat, err := flatCopy(m)
	if err != nil {
		return nil, linearErrorf(opFlatten, err)
	}

	return newVecOwned(flat), nil
}

// AllClose reports whether |a-b| ≤ atol + rtol·|b| holds for every element.
// NaN never compares close; equal infinities do.
//
// Errors:
//   - ErrNilArgument, ErrDimensionMismatch, ErrNaNInf (negative or
//     non-finite tolerance).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, linearErrorf(opAllClose, err)
	}
	if rtol < 0 || atol < 0 || isNonFinite(rtol) || isNonFinite(atol) {
		return false, linearErrorf(opAllClose, fmt.Errorf("rtol=%g atol=%g: %w", rtol, atol, ErrNaNInf))
	}
	allClose := true
	buf := make([]float64, a.Rows()*a.Cols())
	err := combineFlat(buf, newMatAccess(a), newMatAccess(b), func(x, y float64) float64 {
		if !isClose(x, y, rtol, atol) {
			allClose = false
		}
		return 0
	})
	if err != nil {
		return false, linearErrorf(opAllClose, err)
	}

	return allClose, nil
}

func isClose(x, y, rtol, atol float64) bool {
	if x == y {
		return true
	}
	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		return false
	}

	return math.Abs(x-y) <= atol+rtol*math.Abs(y)
}

// Equal reports AllClose with DefaultRelTol and DefaultAbsTol; shape
// mismatches and nil operands report false.
func Equal(a, b Matrix) bool {
	ok, err := AllClose(a, b, DefaultRelTol, DefaultAbsTol)

	return err == nil && ok
}
