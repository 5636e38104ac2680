// SPDX-License-Identifier: MIT

package linear_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmath/linear"
)

func ExampleDeterminant() {
	m, _ := linear.NewDenseFrom([][]float64{
		{6, 1, 1},
		{4, -2, 5},
		{2, 8, 7},
	})
	d, _ := linear.Determinant(m)
	fmt.Printf("%.6g\n", d)
	// Output: -306
}

func ExampleInverse() {
	m, _ := linear.NewDenseFrom([][]float64{{4, 7}, {2, 6}})
	inv, _ := linear.Inverse(m)
	for i := 0; i < inv.Rows(); i++ {
		a, _ := inv.At(i, 0)
		b, _ := inv.At(i, 1)
		fmt.Printf("%.2f %.2f\n", a, b)
	}

	singular, _ := linear.NewDenseFrom([][]float64{{1, 2}, {2, 4}})
	_, err := linear.Inverse(singular)
	fmt.Println(errors.Is(err, linear.ErrSingular))
	// Output:
	// 0.60 -0.70
	// -0.20 0.40
	// true
}

func ExampleTensorProduct() {
	a, _ := linear.NewTensorFrom([]float64{1, 2})
	b, _ := linear.NewTensorFrom([]float64{1, 2, 1})
	r, _ := linear.TensorProduct(a, b)
	fmt.Println(r.Sizes(), r)
	// Output: [2 3] [[1, 2, 1], [2, 4, 2]]
}

func ExampleCross() {
	a, _ := linear.NewVecDenseFrom([]float64{1, 2, 3})
	b, _ := linear.NewVecDenseFrom([]float64{4, 5, 6})
	c, _ := linear.Cross(a, b)
	fmt.Println(c)
	// Output: [-3, 6, -3]
}

func ExampleIsLinearIndependent() {
	a, _ := linear.NewVecDenseFrom([]float64{1, 0, 0})
	b, _ := linear.NewVecDenseFrom([]float64{0, 1, 0})
	ok, _ := linear.IsLinearIndependent(a, b)
	fmt.Println(ok)
	ok, _ = linear.IsLinearIndependent(a, a)
	fmt.Println(ok)
	// Output:
	// true
	// false
}
