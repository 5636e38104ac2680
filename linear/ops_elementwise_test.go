// SPDX-License-Identifier: MIT

package linear_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmath/linear"
)

// TestMatrixElementwise_FastMatchesFallback runs every facade once on *Dense
// operands and once behind hide, and expects identical buffers.
func TestMatrixElementwise_FastMatchesFallback(t *testing.T) {
	t.Parallel()

	a := RandomDense(t, 3, 4, 1)
	b := RandomDense(t, 3, 4, 2)

	binary := map[string]func(x, y linear.Matrix) (*linear.Dense, error){
		"Add":      linear.Add,
		"Sub":      linear.Sub,
		"Hadamard": linear.Hadamard,
		"DivElem":  linear.DivElem,
		"Combine": func(x, y linear.Matrix) (*linear.Dense, error) {
			return linear.Combine(x, y, math.Min)
		},
	}
	for name, fn := range binary {
		t.Run(name, func(t *testing.T) {
			fast, err := fn(a, b)
			require.NoError(t, err)
			slow, err := fn(hide{a}, hide{b})
			require.NoError(t, err)
			assert.Equal(t, fast.RawData(), slow.RawData())
		})
	}

	unary := map[string]func(x linear.Matrix) (*linear.Dense, error){
		"Scale": func(x linear.Matrix) (*linear.Dense, error) { return linear.Scale(x, -3) },
		"Copy":  linear.Copy,
		"Apply": func(x linear.Matrix) (*linear.Dense, error) { return linear.Apply(x, math.Abs) },
	}
	for name, fn := range unary {
		t.Run(name, func(t *testing.T) {
			fast, err := fn(a)
			require.NoError(t, err)
			slow, err := fn(hide{a})
			require.NoError(t, err)
			assert.Equal(t, fast.RawData(), slow.RawData())
		})
	}
}

func TestMatrixElementwise_Values(t *testing.T) {
	t.Parallel()

	a := MustDense(t, [][]float64{{1, 2}, {3, 4}})
	b := MustDense(t, [][]float64{{5, 6}, {7, 8}})

	sum, err := linear.Add(a, b)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{6, 8}, {10, 12}}, MustSlices(t, sum))

	h, err := linear.Hadamard(a, b)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{5, 12}, {21, 32}}, MustSlices(t, h))

	s, err := linear.Scale(a, 0.5)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0.5, 1}, {1.5, 2}}, MustSlices(t, s))

	// The copy is independent of its source.
	c, err := linear.Copy(a)
	require.NoError(t, err)
	require.NoError(t, c.Set(0, 0, 100))
	assert.Equal(t, 1.0, MustAt(t, a, 0, 0))
}

func TestMatrixElementwise_Errors(t *testing.T) {
	t.Parallel()

	a := MustDense(t, [][]float64{{1, 2}, {3, 4}})

	_, err := linear.Add(a, MustDense(t, [][]float64{{1, 2, 3}}))
	require.ErrorIs(t, err, linear.ErrDimensionMismatch)
	_, err = linear.Sub(nil, a)
	require.ErrorIs(t, err, linear.ErrNilArgument)
	_, err = linear.Combine(a, a, nil)
	require.ErrorIs(t, err, linear.ErrNilArgument)
	_, err = linear.Apply(a, nil)
	require.ErrorIs(t, err, linear.ErrNilArgument)
}

func TestVectorElementwise(t *testing.T) {
	t.Parallel()

	a, b := MustVec(t, 1, 2, 3), MustVec(t, 4, 5, 6)

	for _, tc := range []struct {
		name string
		fn   func(x, y linear.Vector) (*linear.VecDense, error)
		want []float64
	}{
		{"AddVec", linear.AddVec, []float64{5, 7, 9}},
		{"SubVec", linear.SubVec, []float64{-3, -3, -3}},
		{"MulElemVec", linear.MulElemVec, []float64{4, 10, 18}},
		{"DivVec", linear.DivVec, []float64{0.25, 0.4, 0.5}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			fast, err := tc.fn(a, b)
			require.NoError(t, err)
			assert.Equal(t, tc.want, fast.RawData())
			slow, err := tc.fn(hideVec{a}, hideVec{b})
			require.NoError(t, err)
			assert.Equal(t, fast.RawData(), slow.RawData())
		})
	}

	sc, err := linear.ScaleVec(a, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 4, 6}, sc.RawData())

	cp, err := linear.CopyVec(hideVec{a})
	require.NoError(t, err)
	assert.Equal(t, a.RawData(), cp.RawData())

	sq, err := linear.ApplyVec(a, func(x float64) float64 { return x * x })
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 4, 9}, sq.RawData())

	mx, err := linear.CombineVec(a, MustVec(t, 3, 3, 3), math.Max)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 3, 3}, mx.RawData())
}

func TestVectorElementwise_IEEEAndErrors(t *testing.T) {
	t.Parallel()

	q, err := linear.DivVec(MustVec(t, 1, -1, 0), MustVec(t, 0, 0, 0))
	require.NoError(t, err)
	assert.True(t, math.IsInf(q.RawData()[0], 1))
	assert.True(t, math.IsInf(q.RawData()[1], -1))
	assert.True(t, math.IsNaN(q.RawData()[2]))

	_, err = linear.AddVec(MustVec(t, 1), MustVec(t, 1, 2))
	require.ErrorIs(t, err, linear.ErrDimensionMismatch)
	_, err = linear.CombineVec(MustVec(t, 1), MustVec(t, 1), nil)
	require.ErrorIs(t, err, linear.ErrNilArgument)
	_, err = linear.ApplyVec(nil, math.Abs)
	require.ErrorIs(t, err, linear.ErrNilArgument)
}
