// SPDX-License-Identifier: MIT

package linear_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmath/linear"
)

func TestNewDense_DefaultZeroAndFill(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct{ rows, cols int }{{1, 1}, {3, 3}, {2, 5}} {
		t.Run(fmt.Sprintf("%dx%d", tc.rows, tc.cols), func(t *testing.T) {
			m, err := linear.NewDense(tc.rows, tc.cols)
			require.NoError(t, err)
			rows, cols := m.Shape()
			require.Equal(t, tc.rows, rows)
			require.Equal(t, tc.cols, cols)
			for _, v := range m.RawData() {
				require.Zero(t, v)
			}

			f, err := linear.NewDense(tc.rows, tc.cols, linear.WithFill(7))
			require.NoError(t, err)
			for _, v := range f.RawData() {
				require.Equal(t, 7.0, v)
			}
		})
	}
}

func TestNewDense_BadShape(t *testing.T) {
	t.Parallel()

	for _, rc := range [][2]int{{0, 1}, {1, 0}, {-1, 3}} {
		_, err := linear.NewDense(rc[0], rc[1])
		require.ErrorIs(t, err, linear.ErrBadShape, "%v", rc)
	}
	_, err := linear.NewDenseFrom(nil)
	require.ErrorIs(t, err, linear.ErrBadShape)
	_, err = linear.NewDenseFrom([][]float64{{}})
	require.ErrorIs(t, err, linear.ErrBadShape)
	_, err = linear.NewDenseFrom([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, linear.ErrBadShape)
}

func TestNewDense_NumericPolicy(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { linear.WithFill(math.NaN()) })

	_, err := linear.NewDense(2, 2, linear.WithValidateNaNInf(), linear.WithFill(math.Inf(1)))
	require.ErrorIs(t, err, linear.ErrNaNInf)

	_, err = linear.NewDenseFrom([][]float64{{1, math.NaN()}}, linear.WithValidateNaNInf())
	require.ErrorIs(t, err, linear.ErrNaNInf)

	// Last writer wins.
	m, err := linear.NewDense(1, 1, linear.WithValidateNaNInf(), linear.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, math.Inf(-1)))

	strict, err := linear.NewDense(1, 1, linear.WithValidateNaNInf())
	require.NoError(t, err)
	require.ErrorIs(t, strict.Set(0, 0, math.NaN()), linear.ErrNaNInf)
	require.ErrorIs(t, strict.Fill(math.Inf(1)), linear.ErrNaNInf)
	assert.Zero(t, MustAt(t, strict, 0, 0))
}

func TestDense_AtSetBounds(t *testing.T) {
	t.Parallel()

	m := MustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	assert.Equal(t, 6.0, MustAt(t, m, 1, 2))
	require.NoError(t, m.Set(0, 1, 20))
	assert.Equal(t, 20.0, MustAt(t, m, 0, 1))

	for _, ij := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 3}} {
		_, err := m.At(ij[0], ij[1])
		require.ErrorIs(t, err, linear.ErrOutOfRange, "At%v", ij)
		require.ErrorIs(t, m.Set(ij[0], ij[1], 1), linear.ErrOutOfRange, "Set%v", ij)
	}
}

func TestDense_FromRowsAndCols(t *testing.T) {
	t.Parallel()

	a, b := MustVec(t, 1, 2, 3), MustVec(t, 4, 5, 6)

	rows, err := linear.NewDenseFromRows([]linear.Vector{a, hideVec{b}})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, MustSlices(t, rows))

	cols, err := linear.NewDenseFromCols([]linear.Vector{a, b})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, MustSlices(t, cols))

	_, err = linear.NewDenseFromRows([]linear.Vector{a, MustVec(t, 1)})
	require.ErrorIs(t, err, linear.ErrDimensionMismatch)
	_, err = linear.NewDenseFromCols(nil)
	require.ErrorIs(t, err, linear.ErrBadShape)
	_, err = linear.NewDenseFromRows([]linear.Vector{a, nil})
	require.ErrorIs(t, err, linear.ErrNilArgument)
}

func TestDense_FromRowsRejectsTypedNilAndEmpty(t *testing.T) {
	t.Parallel()

	var typedNil *linear.VecDense
	_, err := linear.NewDenseFromRows([]linear.Vector{typedNil})
	require.ErrorIs(t, err, linear.ErrNilArgument)
	_, err = linear.NewDenseFromCols([]linear.Vector{MustVec(t, 1), typedNil})
	require.ErrorIs(t, err, linear.ErrNilArgument)

	_, err = linear.NewDenseFromRows([]linear.Vector{emptyVec{}, emptyVec{}})
	require.ErrorIs(t, err, linear.ErrBadShape)
	_, err = linear.NewDenseFromCols([]linear.Vector{emptyVec{}})
	require.ErrorIs(t, err, linear.ErrBadShape)

	_, err = linear.TensorFromVector(emptyVec{})
	require.ErrorIs(t, err, linear.ErrBadShape)
	_, err = linear.TensorFromVector(typedNil)
	require.ErrorIs(t, err, linear.ErrNilArgument)

	_, err = linear.TensorFromMatrix(noCols{MustDense(t, [][]float64{{1}, {2}})})
	require.ErrorIs(t, err, linear.ErrBadShape)
	var nilDense *linear.Dense
	_, err = linear.TensorFromMatrix(nilDense)
	require.ErrorIs(t, err, linear.ErrNilArgument)
}

// emptyVec is a foreign vector that reports no elements.
type emptyVec struct{ linear.Vector }

func (emptyVec) Len() int { return 0 }

// noCols is a foreign matrix that reports zero columns.
type noCols struct{ linear.Matrix }

func (noCols) Cols() int { return 0 }

func TestDense_CloneIsIndependent(t *testing.T) {
	t.Parallel()

	m := MustDense(t, [][]float64{{1, 2}, {3, 4}})
	c := m.Clone()
	require.IsType(t, &linear.Dense{}, c)
	require.NoError(t, c.Set(0, 0, 100))
	assert.Equal(t, 1.0, MustAt(t, m, 0, 0))
}

func TestDense_String(t *testing.T) {
	t.Parallel()

	m := MustDense(t, [][]float64{{1, 2.5}, {-3, 0}})
	assert.Equal(t, "[1, 2.5]\n[-3, 0]\n", m.String())
}

func TestDense_ViewSharesStorage(t *testing.T) {
	t.Parallel()

	base := MustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	v, err := base.View(1, 1, 2, 2)
	require.NoError(t, err)
	require.Equal(t, 2, v.Rows())
	require.Equal(t, 2, v.Cols())
	assert.Equal(t, 5.0, MustAt(t, v, 0, 0))

	require.NoError(t, v.Set(0, 0, 50))
	assert.Equal(t, 50.0, MustAt(t, base, 1, 1))
	require.NoError(t, base.Set(2, 2, 90))
	assert.Equal(t, 90.0, MustAt(t, v, 1, 1))
	assert.Equal(t, "[50, 6]\n[8, 90]\n", v.String())

	_, err = v.At(2, 0)
	require.ErrorIs(t, err, linear.ErrOutOfRange)

	// A view is a Matrix: algorithms accept it and Clone detaches it.
	sum, err := linear.Add(v, v)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{100, 12}, {16, 180}}, MustSlices(t, sum))
	c := v.Clone()
	require.NoError(t, c.Set(0, 0, -1))
	assert.Equal(t, 50.0, MustAt(t, base, 1, 1))

	for _, w := range [][4]int{{-1, 0, 1, 1}, {0, 0, 0, 1}, {2, 2, 2, 1}, {0, 1, 1, 3}} {
		_, err = base.View(w[0], w[1], w[2], w[3])
		require.ErrorIs(t, err, linear.ErrBadShape, "View%v", w)
	}
}

func TestDense_Induced(t *testing.T) {
	t.Parallel()

	m := MustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	sub, err := m.Induced([]int{2, 0, 2}, []int{1})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{8}, {2}, {8}}, MustSlices(t, sub))

	_, err = m.Induced(nil, []int{0})
	require.ErrorIs(t, err, linear.ErrBadShape)
	_, err = m.Induced([]int{3}, []int{0})
	require.ErrorIs(t, err, linear.ErrOutOfRange)
	_, err = m.Induced([]int{0}, []int{-1})
	require.ErrorIs(t, err, linear.ErrOutOfRange)
}

func TestDense_DoAndApply(t *testing.T) {
	t.Parallel()

	m := MustDense(t, [][]float64{{1, 2}, {3, 4}})
	var seen []float64
	m.Do(func(i, j int, v float64) bool {
		seen = append(seen, v)
		return len(seen) < 3
	})
	assert.Equal(t, []float64{1, 2, 3}, seen)

	require.NoError(t, m.Apply(func(i, j int, v float64) float64 { return v + float64(10*i+j) }))
	assert.Equal(t, [][]float64{{1, 3}, {13, 15}}, MustSlices(t, m))
	require.ErrorIs(t, m.Apply(nil), linear.ErrNilArgument)
}

func TestDense_ApplyIsAllOrNothing(t *testing.T) {
	t.Parallel()

	m, err := linear.NewDenseFrom([][]float64{{1, 2}, {3, 4}}, linear.WithValidateNaNInf())
	require.NoError(t, err)
	err = m.Apply(func(i, j int, v float64) float64 {
		if i == 1 && j == 1 {
			return math.Inf(1)
		}
		return -v
	})
	require.ErrorIs(t, err, linear.ErrNaNInf)
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, MustSlices(t, m))
}

func TestDense_InPlaceOps(t *testing.T) {
	t.Parallel()

	m := MustDense(t, [][]float64{{1, 2}, {3, 4}})
	b := MustDense(t, [][]float64{{1, 1}, {2, 2}})

	require.NoError(t, m.AddInPlace(b))
	assert.Equal(t, [][]float64{{2, 3}, {5, 6}}, MustSlices(t, m))
	require.NoError(t, m.SubInPlace(hide{b}))
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, MustSlices(t, m))
	require.NoError(t, m.MulInPlace(b))
	assert.Equal(t, [][]float64{{1, 2}, {6, 8}}, MustSlices(t, m))
	require.NoError(t, m.DivInPlace(b))
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, MustSlices(t, m))
	require.NoError(t, m.ScaleInPlace(-2))
	assert.Equal(t, [][]float64{{-2, -4}, {-6, -8}}, MustSlices(t, m))
	require.NoError(t, m.ApplyInPlace(math.Abs))
	assert.Equal(t, [][]float64{{2, 4}, {6, 8}}, MustSlices(t, m))

	// Shape mismatch: nothing is written.
	err := m.AddInPlace(MustDense(t, [][]float64{{1, 2, 3}}))
	require.ErrorIs(t, err, linear.ErrDimensionMismatch)
	assert.Equal(t, [][]float64{{2, 4}, {6, 8}}, MustSlices(t, m))
	require.ErrorIs(t, m.AddInPlace(nil), linear.ErrNilArgument)
}

func TestDense_InPlaceRejectsNonFiniteBeforeWriting(t *testing.T) {
	t.Parallel()

	m, err := linear.NewDenseFrom([][]float64{{1, 2}}, linear.WithValidateNaNInf())
	require.NoError(t, err)
	err = m.DivInPlace(MustDense(t, [][]float64{{1, 0}}))
	require.ErrorIs(t, err, linear.ErrNaNInf)
	assert.Equal(t, [][]float64{{1, 2}}, MustSlices(t, m))

	// Default policy: IEEE-754 results pass through.
	loose := MustDense(t, [][]float64{{1, 2}})
	require.NoError(t, loose.DivInPlace(MustDense(t, [][]float64{{1, 0}})))
	assert.True(t, math.IsInf(MustAt(t, loose, 0, 1), 1))
}

func TestRowMatrix_Basics(t *testing.T) {
	t.Parallel()

	m, err := linear.NewRowMatrix(2, 3, linear.WithFill(1))
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
	assert.Equal(t, [][]float64{{1, 1, 1}, {1, 1, 1}}, MustSlices(t, m))
	require.NoError(t, m.Set(1, 2, 5))
	assert.Equal(t, "[1, 1, 1]\n[1, 1, 5]\n", m.String())

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, linear.ErrOutOfRange)
	_, err = linear.NewRowMatrix(0, 3)
	require.ErrorIs(t, err, linear.ErrBadShape)

	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 9))
	assert.Equal(t, 1.0, MustAt(t, m, 0, 0))

	require.NoError(t, m.Fill(3))
	require.NoError(t, m.AddInPlace(MustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}})))
	assert.Equal(t, [][]float64{{4, 5, 6}, {7, 8, 9}}, MustSlices(t, m))
	require.NoError(t, m.ScaleInPlace(0.5))
	assert.Equal(t, [][]float64{{2, 2.5, 3}, {3.5, 4, 4.5}}, MustSlices(t, m))
}

func TestRowMatrix_CopyVersusWrap(t *testing.T) {
	t.Parallel()

	src := [][]float64{{1, 2}, {3, 4}}

	owned, err := linear.NewRowMatrixFrom(src)
	require.NoError(t, err)
	src[0][0] = 10
	assert.Equal(t, 1.0, MustAt(t, owned, 0, 0))

	wrapped, err := linear.WrapRows(src)
	require.NoError(t, err)
	require.NoError(t, wrapped.Set(1, 1, 40))
	assert.Equal(t, 40.0, src[1][1])
	src[0][1] = 20
	assert.Equal(t, 20.0, MustAt(t, wrapped, 0, 1))

	_, err = linear.WrapRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, linear.ErrBadShape)
	_, err = linear.NewRowMatrixFrom(nil)
	require.ErrorIs(t, err, linear.ErrBadShape)
}

func TestRowMatrix_InPlaceValidatesFirst(t *testing.T) {
	t.Parallel()

	m, err := linear.NewRowMatrixFrom([][]float64{{1, 2}}, linear.WithValidateNaNInf())
	require.NoError(t, err)
	require.ErrorIs(t, m.ApplyInPlace(func(x float64) float64 { return math.Inf(1) }), linear.ErrNaNInf)
	assert.Equal(t, [][]float64{{1, 2}}, MustSlices(t, m))
	require.ErrorIs(t, m.SubInPlace(MustDense(t, [][]float64{{1}, {2}})), linear.ErrDimensionMismatch)
}

func TestNewIdentityAndZeros(t *testing.T) {
	t.Parallel()

	id, err := linear.NewIdentity(3)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, MustSlices(t, id))

	z, err := linear.ZerosLike(MustDense(t, [][]float64{{1, 2, 3}}))
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 0, 0}}, MustSlices(t, z))

	_, err = linear.IdentityLike(MustDense(t, [][]float64{{1, 2, 3}}))
	require.ErrorIs(t, err, linear.ErrNonSquare)
	_, err = linear.NewIdentity(0)
	require.ErrorIs(t, err, linear.ErrBadShape)

	big, err := linear.NewIdentity(50)
	require.NoError(t, err)
	for k, x := range big.RawData() {
		want := 0.0
		if k/50 == k%50 {
			want = 1
		}
		require.Equal(t, want, x, "(%d,%d)", k/50, k%50)
	}

	assert.Nil(t, linear.CloneMatrix(nil))
}
