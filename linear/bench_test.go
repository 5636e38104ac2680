// SPDX-License-Identifier: MIT

package linear_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvmath/linear"
)

var benchSizes = []int{32, 128}

// sinks to defeat dead-code elimination
var (
	sinkM *linear.Dense
	sinkT *linear.DenseTensor
	sinkF float64
)

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := RandomDense(b, n, n, 1337)
			y := RandomDense(b, n, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := linear.Mul(x, y)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkInverse(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := RandomDense(b, n, n, 7)
			data := x.RawData()
			for i := 0; i < n; i++ {
				data[i*n+i] += float64(n)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := linear.Inverse(x)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkDeterminant(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := RandomDense(b, n, n, 99)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				d, err := linear.Determinant(x)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = d
			}
		})
	}
}

func BenchmarkTensorProduct(b *testing.B) {
	b.ReportAllocs()
	x, err := linear.NewTensor([]int{16, 16}, linear.WithFill(1.5))
	if err != nil {
		b.Fatal(err)
	}
	y, err := linear.NewTensor([]int{8, 8, 4}, linear.WithFill(-2))
	if err != nil {
		b.Fatal(err)
	}
	for _, tc := range []struct {
		name string
		a, b linear.Tensor
	}{
		{"dense", x, y},
		{"interface", hideTensor{x}, hideTensor{y}},
	} {
		b.Run(tc.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				r, err := linear.TensorProduct(tc.a, tc.b)
				if err != nil {
					b.Fatal(err)
				}
				sinkT = r
			}
		})
	}
}
