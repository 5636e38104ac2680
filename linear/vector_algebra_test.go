// SPDX-License-Identifier: MIT

package linear_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmath/linear"
)

func TestDot(t *testing.T) {
	t.Parallel()

	a, b := MustVec(t, 1, 2, 3), MustVec(t, 4, -5, 6)
	d, err := linear.Dot(a, b)
	require.NoError(t, err)
	assert.Equal(t, 12.0, d)

	d2, err := linear.Dot(hideVec{a}, b)
	require.NoError(t, err)
	assert.Equal(t, d, d2)

	_, err = linear.Dot(a, MustVec(t, 1, 2))
	require.ErrorIs(t, err, linear.ErrDimensionMismatch)
	_, err = linear.Dot(nil, a)
	require.ErrorIs(t, err, linear.ErrNilArgument)
}

func TestMetricDot(t *testing.T) {
	t.Parallel()

	a, b := MustVec(t, 1, 2), MustVec(t, 3, 4, 5)

	// Σᵢⱼ aᵢ bⱼ Mᵢⱼ with M = [[1,0,1],[0,1,0]]: 1·(3+5) + 2·4 = 16.
	m := MustDense(t, [][]float64{{1, 0, 1}, {0, 1, 0}})
	got, err := linear.MetricDot(a, b, m)
	require.NoError(t, err)
	assert.Equal(t, 16.0, got)

	id, err := linear.NewIdentity(2)
	require.NoError(t, err)
	c := MustVec(t, 7, -1)
	md, err := linear.MetricDot(a, c, id)
	require.NoError(t, err)
	d, err := linear.Dot(a, c)
	require.NoError(t, err)
	assert.Equal(t, d, md)

	_, err = linear.MetricDot(b, a, m)
	require.ErrorIs(t, err, linear.ErrDimensionMismatch)
	_, err = linear.MetricDot(a, b, nil)
	require.ErrorIs(t, err, linear.ErrNilArgument)
}

func TestCross_ThreeD(t *testing.T) {
	t.Parallel()

	got, err := linear.Cross(MustVec(t, 1, 2, 3), MustVec(t, 4, 5, 6))
	require.NoError(t, err)
	assert.Equal(t, []float64{-3, 6, -3}, MustValues(t, got))

	e1, e2 := MustVec(t, 1, 0, 0), hideVec{MustVec(t, 0, 1, 0)}
	e3, err := linear.Cross(e1, e2)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 1}, MustValues(t, e3))
}

func TestCross_TwoD(t *testing.T) {
	t.Parallel()

	got, err := linear.Cross(MustVec(t, 3, 4))
	require.NoError(t, err)
	assert.Equal(t, []float64{4, -3}, MustValues(t, got))
}

func TestCross_OrthogonalInHigherDimensions(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(7))
	for _, n := range []int{4, 5, 6} {
		vs := make([]linear.Vector, n-1)
		for i := range vs {
			vals := make([]float64, n)
			for j := range vals {
				vals[j] = rng.Float64()*2 - 1
			}
			vs[i] = MustVec(t, vals...)
		}
		c, err := linear.Cross(vs...)
		require.NoError(t, err)
		require.Equal(t, n, c.Len())
		for i, v := range vs {
			d, err := linear.Dot(v, c)
			require.NoError(t, err)
			assert.InDelta(t, 0, d, 1e-9, "n=%d input %d", n, i)
		}
	}
}

func TestCross_Errors(t *testing.T) {
	t.Parallel()

	_, err := linear.Cross()
	require.ErrorIs(t, err, linear.ErrDimensionMismatch)
	_, err = linear.Cross(MustVec(t, 1, 2, 3))
	require.ErrorIs(t, err, linear.ErrDimensionMismatch)
	_, err = linear.Cross(MustVec(t, 1, 2, 3), MustVec(t, 1, 2))
	require.ErrorIs(t, err, linear.ErrDimensionMismatch)
	_, err = linear.Cross(MustVec(t, 1, 2, 3), nil)
	require.ErrorIs(t, err, linear.ErrNilArgument)
}

func TestIsLinearIndependent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		vs   [][]float64
		want bool
	}{
		{"identical", [][]float64{{1, 2, 3}, {1, 2, 3}}, false},
		{"identical length 2", [][]float64{{5, 1}, {5, 1}}, false},
		{"standard basis", [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, true},
		{"single non-zero", [][]float64{{0, 0, 2}}, true},
		{"single zero", [][]float64{{0, 0, 0}}, false},
		{"scaled", [][]float64{{1, 2, 3, 4}, {2, 4, 6, 8}}, false},
		{"later window", [][]float64{{0, 1, 0}, {0, 0, 1}}, true},
		{"more vectors than coordinates", [][]float64{{1, 0}, {0, 1}, {1, 1}}, false},
		// Not contiguous: the windows cannot see the (0, 2) minor.
		{"window limit", [][]float64{{1, 0, 0}, {0, 0, 1}}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			vs := make([]linear.Vector, len(tc.vs))
			for i, v := range tc.vs {
				vs[i] = MustVec(t, v...)
			}
			got, err := linear.IsLinearIndependent(vs...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := linear.IsLinearIndependent()
	require.ErrorIs(t, err, linear.ErrDimensionMismatch)
	_, err = linear.IsLinearIndependent(MustVec(t, 1, 2), MustVec(t, 1, 2, 3))
	require.ErrorIs(t, err, linear.ErrDimensionMismatch)
	_, err = linear.IsLinearIndependent(nil)
	require.ErrorIs(t, err, linear.ErrNilArgument)
}

func TestOuterAndConcat(t *testing.T) {
	t.Parallel()

	o, err := linear.Outer(MustVec(t, 1, 2), hideVec{MustVec(t, 1, 2, 1)})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2, 1}, {2, 4, 2}}, MustSlices(t, o))

	c, err := linear.Concat(MustVec(t, 1), MustVec(t, 2, 3))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, MustValues(t, c))

	_, err = linear.Outer(nil, MustVec(t, 1))
	require.ErrorIs(t, err, linear.ErrNilArgument)
}

func TestSubVector(t *testing.T) {
	t.Parallel()

	v := MustVec(t, 1, 2, 3, 4, 5)
	s, err := linear.SubVector(v, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 3}, MustValues(t, s))

	_, err = linear.SubVector(v, 0, 6)
	require.ErrorIs(t, err, linear.ErrOutOfRange)
	_, err = linear.SubVector(v, 3, 3)
	require.ErrorIs(t, err, linear.ErrBadShape)
}

func TestShiftReverseSwap(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		k    int
		want []float64
	}{
		{0, []float64{1, 2, 3, 4}},
		{1, []float64{4, 1, 2, 3}},
		{-1, []float64{2, 3, 4, 1}},
		{5, []float64{4, 1, 2, 3}},
		{-6, []float64{3, 4, 1, 2}},
	} {
		v := MustVec(t, 1, 2, 3, 4)
		require.NoError(t, linear.Shift(v, tc.k))
		assert.Equal(t, tc.want, v.RawData(), "k=%d", tc.k)
	}

	// Reverse moves values, not indices.
	v := MustVec(t, 10, 20, 30)
	require.NoError(t, linear.Reverse(hideVec{v}))
	assert.Equal(t, []float64{30, 20, 10}, v.RawData())

	require.NoError(t, linear.SwapVec(v, 0, 1))
	assert.Equal(t, []float64{20, 30, 10}, v.RawData())
	require.ErrorIs(t, linear.SwapVec(v, 0, 3), linear.ErrOutOfRange)

	require.NoError(t, linear.FillVec(v, 1))
	assert.Equal(t, []float64{1, 1, 1}, v.RawData())
	require.ErrorIs(t, linear.Shift(nil, 1), linear.ErrNilArgument)
}
