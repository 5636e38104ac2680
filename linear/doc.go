// SPDX-License-Identifier: MIT

// Package linear provides shape-checked dense vector, matrix and tensor
// algebra on IEEE-754 float64 values.
//
// Contracts:
//   - Vector, Matrix and Tensor are small capability interfaces: bounds-checked
//     At/Set, a shape query and Clone. Every algorithm accepts the interfaces.
//   - Concrete storages: *VecDense, *Dense, *RowMatrix, *MatrixView and
//     *DenseTensor. Owned storages copy their input; WrapVec, WrapRows,
//     WrapTensor and (*Dense).View alias caller memory, so writes are visible
//     on both sides.
//
// Engine:
//   - One elementwise core (combine two same-shape operands, map one operand)
//     serves vectors, matrices and tensors. Operands backed by a flat buffer
//     take a single-loop fast path; anything else goes through At/Set.
//   - Matrix algebra: extraction and replacement of rows, columns and
//     submatrices, products, Gaussian-elimination Determinant and
//     Gauss–Jordan Inverse (ErrSingular on a zero pivot column).
//   - Vector algebra: Dot, MetricDot, the n-dimensional Cross product built on
//     Determinant, and the IsLinearIndependent window probe.
//   - Tensor algebra: row-major Strides with Unravel/Ravel between a flat scan
//     index and a multi-index, so elementwise ops and TensorProduct work for
//     any rank without nested per-axis loops.
//
// Errors are package sentinels (see errors.go) wrapped with an operation tag;
// match them with errors.Is. Results are allocated only after validation, and
// in-place operations never leave a receiver half-written.
//
// Pivoting is "skip an exact zero" only: there is no magnitude search, so
// ill-conditioned inputs may lose precision. Containers are not synchronized.
package linear
