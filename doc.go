// Package lvmath is a small, dependency-light numeric toolkit: dense linear
// algebra over float64 and exact integer combinatorics.
//
// Everything is organized under three subpackages:
//
//	linear/        Vector, Matrix and Tensor interfaces with dense row-major
//	               implementations; determinant, inverse, generalized cross
//	               product, independence probe, tensor (outer) product
//	intmath/       factorials, gcd/lcm, binomials, sieve and prime factors
//	combinatorics/ permutation parity and Lehmer rank, lazy
//	               combination/permutation enumerators
//
// Design rules shared by all packages:
//
//   - Errors are sentinels wrapped with an operation tag; test with errors.Is.
//   - Results are freshly allocated; inputs are never mutated unless the
//     method name says so (…InPlace, Set…, Swap…).
//   - Iteration order is deterministic (row-major, lexicographic).
//
// Quick example:
//
//	m, _ := linear.NewDenseFrom([][]float64{{4, 7}, {2, 6}})
//	d, _ := linear.Determinant(m) // 10
//	inv, _ := linear.Inverse(m)   // [[0.6, -0.7], [-0.2, 0.4]]
//
// Runnable scenarios live in examples/:
//
//	go run ./examples
package lvmath
