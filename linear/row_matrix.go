// SPDX-License-Identifier: MIT

// Package linear - RowMatrix: nested row storage.
//
// Purpose:
//   - Hold a matrix as one slice per row, either owned (NewRowMatrix,
//     NewRowMatrixFrom) or aliasing caller memory (WrapRows).
//   - Serve as the non-flat Matrix implementation: algorithms reach it through
//     the interface fallback, never through a fast path.
//
// Complexity quicksheet:
//   - At/Set: O(1); Clone: O(r*c); WrapRows: O(r) shape check, no copy.
package linear

import (
	"fmt"
	"slices"
	"strings"
)

// RowMatrix is an r×c matrix stored as r rows of c values each.
// Invariant: len(rows) ≥ 1 and every row has exactly cols ≥ 1 elements.
type RowMatrix struct {
	rows           [][]float64
	cols           int
	validateNaNInf bool
}

var (
	_ Matrix       = (*RowMatrix)(nil)
	_ fmt.Stringer = (*RowMatrix)(nil)
)

// NewRowMatrix allocates r rows of c elements set to the fill value.
//
// Errors:
//   - ErrBadShape for a non-positive dimension.
//   - ErrNaNInf when WithFill(±Inf) meets WithValidateNaNInf.
func NewRowMatrix(rows, cols int, opts ...Option) (*RowMatrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewRowMatrix(%d,%d): %w", rows, cols, ErrBadShape)
	}
	o := gatherOptions(opts...)
	if err := o.checkFill(); err != nil {
		return nil, fmt.Errorf("NewRowMatrix(%d,%d): %w", rows, cols, err)
	}

	// One backing allocation, sliced per row with capped capacity.
	buf := make([]float64, rows*cols)
	if o.fill != 0 {
		for k := range buf {
			buf[k] = o.fill
		}
	}
	data := make([][]float64, rows)
	for i := range data {
		data[i] = buf[i*cols : (i+1)*cols : (i+1)*cols]
	}

	return &RowMatrix{rows: data, cols: cols, validateNaNInf: o.validateNaNInf}, nil
}

// NewRowMatrixFrom COPIES a rectangular literal into owned rows.
//
// Errors:
//   - ErrBadShape for empty or ragged input; ErrNaNInf under the policy.
func NewRowMatrixFrom(values [][]float64, opts ...Option) (*RowMatrix, error) {
	if _, _, err := rectShape(values); err != nil {
		return nil, fmt.Errorf("NewRowMatrixFrom: %w", err)
	}
	rows := make([][]float64, len(values))
	for i, row := range values {
		rows[i] = slices.Clone(row)
	}

	return newRowMatrixChecked("NewRowMatrixFrom", rows, opts)
}

// WrapRows returns a matrix that ALIASES values: each row slice is used as is,
// so writes are visible on both sides. Callers must not resize the rows.
//
// Errors:
//   - ErrBadShape for empty or ragged input; ErrNaNInf under the policy.
func WrapRows(values [][]float64, opts ...Option) (*RowMatrix, error) {
	if _, _, err := rectShape(values); err != nil {
		return nil, fmt.Errorf("WrapRows: %w", err)
	}

	return newRowMatrixChecked("WrapRows", values, opts)
}

func newRowMatrixChecked(tag string, rows [][]float64, opts []Option) (*RowMatrix, error) {
	o := gatherOptions(opts...)
	if o.validateNaNInf {
		for i, row := range rows {
			if j := checkFinite(row); j >= 0 {
				return nil, fmt.Errorf("%s: element (%d,%d): %w", tag, i, j, ErrNaNInf)
			}
		}
	}

	return &RowMatrix{rows: rows, cols: len(rows[0]), validateNaNInf: o.validateNaNInf}, nil
}

// Rows returns the row count.
func (m *RowMatrix) Rows() int { return len(m.rows) }

// Cols returns the column count.
func (m *RowMatrix) Cols() int { return m.cols }

// At returns element (i,j) or ErrOutOfRange.
func (m *RowMatrix) At(i, j int) (float64, error) {
	if i < 0 || i >= len(m.rows) || j < 0 || j >= m.cols {
		return 0, fmt.Errorf("RowMatrix.At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return m.rows[i][j], nil
}

// Set stores v at (i,j), honoring the numeric policy.
func (m *RowMatrix) Set(i, j int, v float64) error {
	if i < 0 || i >= len(m.rows) || j < 0 || j >= m.cols {
		return fmt.Errorf("RowMatrix.Set(%d,%d): %w", i, j, ErrOutOfRange)
	}
	if m.validateNaNInf && isNonFinite(v) {
		return fmt.Errorf("RowMatrix.Set(%d,%d): %w", i, j, ErrNaNInf)
	}
	m.rows[i][j] = v

	return nil
}

// Clone returns an owned deep copy; aliasing is not inherited.
func (m *RowMatrix) Clone() Matrix {
	rows := make([][]float64, len(m.rows))
	for i, row := range m.rows {
		rows[i] = slices.Clone(row)
	}

	return &RowMatrix{rows: rows, cols: m.cols, validateNaNInf: m.validateNaNInf}
}

// String renders one "[a, b]" line per row.
func (m *RowMatrix) String() string {
	var b strings.Builder
	for _, row := range m.rows {
		writeRow(&b, row)
	}

	return b.String()
}

// Fill sets every element to x.
func (m *RowMatrix) Fill(x float64) error {
	if m.validateNaNInf && isNonFinite(x) {
		return fmt.Errorf("RowMatrix.Fill: %w", ErrNaNInf)
	}
	for _, row := range m.rows {
		for j := range row {
			row[j] = x
		}
	}

	return nil
}

// AddInPlace performs m += b; the receiver is unchanged on error.
func (m *RowMatrix) AddInPlace(b Matrix) error { return m.combineInPlace(opAddInPlace, b, addOp) }

// SubInPlace performs m -= b.
func (m *RowMatrix) SubInPlace(b Matrix) error { return m.combineInPlace(opSubInPlace, b, subOp) }

// MulInPlace performs the elementwise m ∘= b.
func (m *RowMatrix) MulInPlace(b Matrix) error { return m.combineInPlace(opMulInPlace, b, mulOp) }

// DivInPlace performs the elementwise m /= b.
func (m *RowMatrix) DivInPlace(b Matrix) error { return m.combineInPlace(opDivInPlace, b, divOp) }

// ScaleInPlace performs m *= alpha.
func (m *RowMatrix) ScaleInPlace(alpha float64) error {
	return m.ApplyInPlace(func(x float64) float64 { return alpha * x })
}

// ApplyInPlace replaces every element with op(element).
func (m *RowMatrix) ApplyInPlace(op func(x float64) float64) error {
	buf, err := matMapInto(m, op)
	if err != nil {
		return linearErrorf("RowMatrix."+opApplyInPlace, err)
	}

	return m.commit("RowMatrix."+opApplyInPlace, buf)
}

func (m *RowMatrix) combineInPlace(tag string, b Matrix, op func(x, y float64) float64) error {
	tag = "RowMatrix." + tag
	buf, err := matCombineInto(m, b, op)
	if err != nil {
		return linearErrorf(tag, err)
	}

	return m.commit(tag, buf)
}

// commit scatters a row-major buffer back into the rows after the policy check.
func (m *RowMatrix) commit(tag string, buf []float64) error {
	if m.validateNaNInf {
		if k := checkFinite(buf); k >= 0 {
			return linearErrorf(tag, fmt.Errorf("element (%d,%d): %w", k/m.cols, k%m.cols, ErrNaNInf))
		}
	}
	for i, row := range m.rows {
		copy(row, buf[i*m.cols:(i+1)*m.cols])
	}

	return nil
}
