// SPDX-License-Identifier: MIT
// Package linear_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures and utilities for kernels.
//   - Keep all data finite and well-formed to avoid numeric-policy interference.

package linear_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmath/linear"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions,
// forcing the interface fallback path in code under test.
//
// AI-Hints:
//   - Wrap ONLY the operand you want to de-opt; keep the other one *Dense
//     to isolate path differences.
type hide struct{ linear.Matrix }

// hideVec is the Vector counterpart of hide.
type hideVec struct{ linear.Vector }

// hideTensor is the Tensor counterpart of hide.
type hideTensor struct{ linear.Tensor }

// MustDense builds a *Dense from a nested literal or fails the test.
func MustDense(t testing.TB, rows [][]float64) *linear.Dense {
	t.Helper()
	m, err := linear.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

// MustVec builds a *VecDense from values or fails the test.
func MustVec(t testing.TB, values ...float64) *linear.VecDense {
	t.Helper()
	v, err := linear.NewVecDenseFrom(values)
	require.NoError(t, err)

	return v
}

// MustTensor builds a *DenseTensor from a nested literal or fails the test.
func MustTensor(t testing.TB, literal any) *linear.DenseTensor {
	t.Helper()
	x, err := linear.NewTensorFrom(literal)
	require.NoError(t, err)

	return x
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t testing.TB, m linear.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// MustSlices converts any Matrix to [][]float64 or fails the test.
func MustSlices(t testing.TB, m linear.Matrix) [][]float64 {
	t.Helper()
	out, err := linear.ToSlices(m)
	require.NoError(t, err)

	return out
}

// MustValues converts any Vector to []float64 or fails the test.
func MustValues(t testing.TB, v linear.Vector) []float64 {
	t.Helper()
	out, err := linear.VecToSlice(v)
	require.NoError(t, err)

	return out
}

// RequireClose fails unless AllClose(a, b) holds with the given absolute
// tolerance (relative tolerance DefaultRelTol).
func RequireClose(t testing.TB, want, got linear.Matrix, atol float64) {
	t.Helper()
	ok, err := linear.AllClose(got, want, linear.DefaultRelTol, atol)
	require.NoError(t, err)
	require.True(t, ok, "want:\n%v\ngot:\n%v", want, got)
}

// RandomDense fills an r×c *Dense with values in [-1, 1) from a fixed seed.
func RandomDense(t testing.TB, r, c int, seed int64) *linear.Dense {
	t.Helper()
	m, err := linear.NewDense(r, c)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(seed))
	data := m.RawData()
	for k := range data {
		data[k] = rng.Float64()*2 - 1
	}

	return m
}

// flakyMatrix advertises a shape but refuses to return one element.
type flakyMatrix struct {
	linear.Matrix
	badI, badJ int
}

func (f flakyMatrix) At(i, j int) (float64, error) {
	if i == f.badI && j == f.badJ {
		return 0, linear.ErrOutOfRange
	}

	return f.Matrix.At(i, j)
}
