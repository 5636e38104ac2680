// SPDX-License-Identifier: MIT

// Package linear - Dense: the row-major matrix every algorithm here prefers.
//
// Purpose:
//   - One flat []float64 per matrix; element (i, j) lives at i*cols + j.
//   - Bounds and numeric-policy failures come back as errors, never panics.
//   - Windows share storage (MatrixView); index-set extracts copy (Induced).
//
// AI-Hints:
//   - Kernels detect *Dense and loop over the flat buffer; foreign Matrix
//     implementations go through At/Set.
//   - A View is O(1); writes through it land in the base matrix.
//
// Complexity quicksheet:
//   - NewDense O(r*c); At/Set O(1); Clone O(r*c); View O(1); Induced O(r'*c').
package linear

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// ---------- Error tags ----------

const (
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxApply  = "Apply"
	ctxView   = "View"
	ctxInduce = "Induced"
)

// ---------- String() literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf tags err with the Dense method and the offending (row, col).
// Keeps the sentinel reachable via %w: "Dense.<method>(row,col): <sentinel>".
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols), both ≥ 1.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables optional NaN/Inf rejection in Set and in-place ops.
type Dense struct {
	r, c           int
	data           []float64
	validateNaNInf bool
}

var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c matrix filled with the fill value (default 0).
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrBadShape.
//   - Stage 2: resolve options; allocate and fill the buffer.
//
// Behavior highlights:
//   - No panics on user errors; returns sentinel errors.
//   - Public constructor forbids empty dimensions.
//
// Errors:
//   - ErrBadShape (shape contract violation).
//   - ErrNaNInf (WithFill(±Inf) under WithValidateNaNInf).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrBadShape)
	}
	o := gatherOptions(opts...)
	if err := o.checkFill(); err != nil {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, err)
	}

	buf := make([]float64, rows*cols)
	if o.fill != 0 {
		for k := range buf {
			buf[k] = o.fill
		}
	}

	return &Dense{r: rows, c: cols, data: buf, validateNaNInf: o.validateNaNInf}, nil
}

// NewDenseFrom COPIES a rectangular nested literal into a new *Dense.
// Implementation:
//   - Stage 1: reject empty input and ragged rows (ErrBadShape).
//   - Stage 2: flatten row by row; enforce the numeric policy.
//
// Errors:
//   - ErrBadShape, ErrNaNInf.
func NewDenseFrom(values [][]float64, opts ...Option) (*Dense, error) {
	rows, cols, err := rectShape(values)
	if err != nil {
		return nil, fmt.Errorf("NewDenseFrom: %w", err)
	}

	return newDenseChecked("NewDenseFrom", rows, cols, lo.Flatten(values), opts)
}

// NewDenseFromRows stacks same-length vectors as the rows of a new matrix.
//
// Errors:
//   - ErrBadShape for no vectors or empty ones, ErrNilArgument for a nil vector,
//     ErrDimensionMismatch for unequal lengths, ErrNaNInf under the policy.
func NewDenseFromRows(rows []Vector, opts ...Option) (*Dense, error) {
	data, n, err := stackVectors(rows)
	if err != nil {
		return nil, fmt.Errorf("NewDenseFromRows: %w", err)
	}

	return newDenseChecked("NewDenseFromRows", len(rows), n, data, opts)
}

// NewDenseFromCols places same-length vectors as the columns of a new matrix.
func NewDenseFromCols(cols []Vector, opts ...Option) (*Dense, error) {
	data, n, err := stackVectors(cols)
	if err != nil {
		return nil, fmt.Errorf("NewDenseFromCols: %w", err)
	}
	// data holds the transpose; write it column-major into the result.
	k := len(cols)
	out := make([]float64, len(data))
	for j := 0; j < k; j++ {
		for i := 0; i < n; i++ {
			out[i*k+j] = data[j*n+i]
		}
	}

	return newDenseChecked("NewDenseFromCols", n, k, out, opts)
}

// rectShape validates a nested literal: non-empty and not ragged.
func rectShape(values [][]float64) (rows, cols int, err error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return 0, 0, ErrBadShape
	}
	cols = len(values[0])
	for i, row := range values {
		if len(row) != cols {
			return 0, 0, fmt.Errorf("row %d has %d elements, want %d: %w", i, len(row), cols, ErrBadShape)
		}
	}

	return len(values), cols, nil
}

// stackVectors concatenates equal-length vectors; n is the common length.
func stackVectors(vs []Vector) (data []float64, n int, err error) {
	if len(vs) == 0 {
		return nil, 0, ErrBadShape
	}
	for i, v := range vs {
		if err = ValidateVectorNotNil(v); err != nil {
			return nil, 0, fmt.Errorf("vector %d: %w", i, err)
		}
		if i == 0 {
			n = v.Len()
			if n <= 0 {
				return nil, 0, fmt.Errorf("vector 0 has length %d: %w", n, ErrBadShape)
			}
			data = make([]float64, 0, len(vs)*n)
		}
		if v.Len() != n {
			return nil, 0, fmt.Errorf("vector %d has length %d, want %d: %w", i, v.Len(), n, ErrDimensionMismatch)
		}
		for j := 0; j < n; j++ {
			x, err := v.At(j)
			if err != nil {
				return nil, 0, fmt.Errorf("vector %d: %w", i, err)
			}
			data = append(data, x)
		}
	}

	return data, n, nil
}

// newDenseChecked adopts data after the numeric-policy check.
func newDenseChecked(tag string, rows, cols int, data []float64, opts []Option) (*Dense, error) {
	o := gatherOptions(opts...)
	if o.validateNaNInf {
		if k := checkFinite(data); k >= 0 {
			return nil, fmt.Errorf("%s: element (%d,%d): %w", tag, k/cols, k%cols, ErrNaNInf)
		}
	}

	return &Dense{r: rows, c: cols, data: data, validateNaNInf: o.validateNaNInf}, nil
}

// newDenseOwned adopts a freshly computed buffer with the default policy.
func newDenseOwned(rows, cols int, data []float64) *Dense {
	return &Dense{r: rows, c: cols, data: data, validateNaNInf: DefaultValidateNaNInf}
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// Shape returns (Rows, Cols).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// RawData exposes the row-major backing slice (no copy). Writes bypass the
// numeric policy.
func (m *Dense) RawData() []float64 { return m.data }

// indexOf maps (row, col) to its flat offset.
// Public methods (At/Set) wrap the sentinel with coordinates and method name.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
// Implementation:
//   - Bounds first, then the NaN/Inf policy, then the write.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for invalid numbers.
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && isNonFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Clone copies the buffer; the numeric policy carries over.
// The returned dynamic type is *Dense.
func (m *Dense) Clone() Matrix {
	return &Dense{r: m.r, c: m.c, data: slices.Clone(m.data), validateNaNInf: m.validateNaNInf}
}

// String HUMAN-READABLE dump of rows for diagnostics, one "[a, b]" line per row.
// Not for hot paths.
func (m *Dense) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		writeRow(&b, m.data[i*m.c:(i+1)*m.c])
	}

	return b.String()
}

// writeRow appends "[a, b, c]\n".
func writeRow(b *strings.Builder, row []float64) {
	b.WriteString(_fmtRowOpen)
	for j, x := range row {
		if j > 0 {
			b.WriteString(_fmtSep)
		}
		fmt.Fprintf(b, "%g", x)
	}
	b.WriteString(_fmtRowClose)
}

// View returns the window [r0, r0+rows) × [c0, c0+cols) sharing m's buffer.
// Implementation:
//   - Stage 1: validate the window lies inside the base and is non-empty.
//   - Stage 2: return MatrixView with offsets.
//
// Behavior highlights:
//   - Writes via view reflect in base (and vice versa); policy is inherited.
//
// Errors:
//   - ErrBadShape when the window is empty or exceeds the base.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) View(r0, c0, rows, cols int) (*MatrixView, error) {
	if r0 < 0 || c0 < 0 || rows <= 0 || cols <= 0 || r0+rows > m.r || c0+cols > m.c {
		return nil, fmt.Errorf("Dense.%s(%d,%d,%d,%d): %w", ctxView, r0, c0, rows, cols, ErrBadShape)
	}

	return &MatrixView{base: m, r0: r0, c0: c0, r: rows, c: cols}, nil
}

// Induced copies the rows rowsIdx × cols colsIdx into a new Dense.
// Implementation:
//   - Stage 1: reject empty index sets (ErrBadShape).
//   - Stage 2: nested loops with direct offset math; bounds-check each index.
//
// Behavior highlights:
//   - The result keeps the base numeric policy.
//   - Repeated indices repeat the row or column.
//
// Errors:
//   - ErrBadShape (empty index set), ErrOutOfRange (index outside bounds).
//
// Complexity:
//   - Time O(rp*cp), Space O(rp*cp).
func (m *Dense) Induced(rowsIdx, colsIdx []int) (*Dense, error) {
	rp, cp := len(rowsIdx), len(colsIdx)
	if rp == 0 || cp == 0 {
		return nil, fmt.Errorf("Dense.%s: empty index set: %w", ctxInduce, ErrBadShape)
	}
	for _, cj := range colsIdx {
		if cj < 0 || cj >= m.c {
			return nil, fmt.Errorf("Dense.%s: col index %d: %w", ctxInduce, cj, ErrOutOfRange)
		}
	}

	data := make([]float64, rp*cp)
	for i, ri := range rowsIdx {
		if ri < 0 || ri >= m.r {
			return nil, fmt.Errorf("Dense.%s: row index %d: %w", ctxInduce, ri, ErrOutOfRange)
		}
		src := m.data[ri*m.c : (ri+1)*m.c]
		dst := data[i*cp : (i+1)*cp]
		for j, cj := range colsIdx {
			dst[j] = src[cj]
		}
	}

	return &Dense{r: rp, c: cp, data: data, validateNaNInf: m.validateNaNInf}, nil
}

// Do calls f(i, j, v) for every element in row-major order until f returns false.
// Read-only, no allocations.
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	for k, v := range m.data {
		if !f(k/m.c, k%m.c, v) {
			return
		}
	}
}

// Apply replaces each element with f(i,j,v).
// Implementation:
//   - Stage 1: compute every new value into scratch in row-major order.
//   - Stage 2: reject NaN/Inf if the policy is on; then commit.
//
// Behavior highlights:
//   - All-or-nothing: on error the matrix is unchanged.
//
// Errors:
//   - ErrNilArgument (nil f), ErrNaNInf (policy ON and f produced non-finite).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) scratch.
func (m *Dense) Apply(f func(i, j int, v float64) float64) error {
	if f == nil {
		return denseErrorf(ctxApply, 0, 0, ErrNilArgument)
	}
	buf := make([]float64, len(m.data))
	for k, v := range m.data {
		buf[k] = f(k/m.c, k%m.c, v)
	}
	if m.validateNaNInf {
		if k := checkFinite(buf); k >= 0 {
			return denseErrorf(ctxApply, k/m.c, k%m.c, ErrNaNInf)
		}
	}
	copy(m.data, buf)

	return nil
}

// Fill sets every element to x.
func (m *Dense) Fill(x float64) error {
	if m.validateNaNInf && isNonFinite(x) {
		return fmt.Errorf("Dense.Fill: %w", ErrNaNInf)
	}
	for k := range m.data {
		m.data[k] = x
	}

	return nil
}

// AddInPlace performs m += b. The receiver is unchanged on error.
func (m *Dense) AddInPlace(b Matrix) error { return m.combineInPlace(opAddInPlace, b, addOp) }

// SubInPlace performs m -= b.
func (m *Dense) SubInPlace(b Matrix) error { return m.combineInPlace(opSubInPlace, b, subOp) }

// MulInPlace performs the elementwise m ∘= b.
func (m *Dense) MulInPlace(b Matrix) error { return m.combineInPlace(opMulInPlace, b, mulOp) }

// DivInPlace performs the elementwise m /= b.
func (m *Dense) DivInPlace(b Matrix) error { return m.combineInPlace(opDivInPlace, b, divOp) }

// ScaleInPlace performs m *= alpha.
func (m *Dense) ScaleInPlace(alpha float64) error {
	return m.ApplyInPlace(func(x float64) float64 { return alpha * x })
}

// ApplyInPlace replaces every element with op(element); unchanged on error.
func (m *Dense) ApplyInPlace(op func(x float64) float64) error {
	buf, err := matMapInto(m, op)
	if err != nil {
		return linearErrorf("Dense."+opApplyInPlace, err)
	}

	return commitFlat("Dense."+opApplyInPlace, m.data, buf, m.validateNaNInf)
}

func (m *Dense) combineInPlace(tag string, b Matrix, op func(x, y float64) float64) error {
	tag = "Dense." + tag
	buf, err := matCombineInto(m, b, op)
	if err != nil {
		return linearErrorf(tag, err)
	}

	return commitFlat(tag, m.data, buf, m.validateNaNInf)
}

// MatrixView is a rectangular window over a Dense; it owns no storage.
// It implements Matrix, so every algorithm accepts it; Clone returns an
// independent *Dense copy of the window.
type MatrixView struct {
	base   *Dense
	r0, c0 int // top-left corner in base
	r, c   int
}

var _ Matrix = (*MatrixView)(nil)

// Rows is the window height.
func (v *MatrixView) Rows() int { return v.r }

// Cols is the window width.
func (v *MatrixView) Cols() int { return v.c }

// At reads (i, j) relative to the window corner.
// Translates to base coordinates: base.data[(r0+i)*base.c + (c0+j)].
func (v *MatrixView) At(i, j int) (float64, error) {
	if i < 0 || i >= v.r || j < 0 || j >= v.c {
		return 0, fmt.Errorf("MatrixView.At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return v.base.data[(v.r0+i)*v.base.c+(v.c0+j)], nil
}

// Set writes through to the base matrix under its numeric policy.
func (v *MatrixView) Set(i, j int, val float64) error {
	if i < 0 || i >= v.r || j < 0 || j >= v.c {
		return fmt.Errorf("MatrixView.Set(%d,%d): %w", i, j, ErrOutOfRange)
	}
	if v.base.validateNaNInf && isNonFinite(val) {
		return fmt.Errorf("MatrixView.Set(%d,%d): %w", i, j, ErrNaNInf)
	}
	v.base.data[(v.r0+i)*v.base.c+(v.c0+j)] = val

	return nil
}

// Clone copies the window into a new *Dense with the base policy.
func (v *MatrixView) Clone() Matrix {
	data := make([]float64, 0, v.r*v.c)
	for i := 0; i < v.r; i++ {
		off := (v.r0+i)*v.base.c + v.c0
		data = append(data, v.base.data[off:off+v.c]...)
	}

	return &Dense{r: v.r, c: v.c, data: data, validateNaNInf: v.base.validateNaNInf}
}

// String renders the window like Dense.String.
func (v *MatrixView) String() string {
	var b strings.Builder
	for i := 0; i < v.r; i++ {
		off := (v.r0+i)*v.base.c + v.c0
		writeRow(&b, v.base.data[off:off+v.c])
	}

	return b.String()
}
