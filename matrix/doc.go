// SPDX-License-Identifier: MIT

// Package matrix implements the fixed-dimension square-matrix engine used by
// every other package of glmath.
//
// The package provides:
//
//   - Matrix[T], an n×n matrix (n ∈ {2, 3, 4}) of float32, float64, complex64
//     or complex128 elements, stored row-major in a flat slice.
//   - Strict constructors (New, FromRows, FromColumns, Build) and literal ones
//     (New2, New3, New4), plus named builders (Identity, Zero, ScalarMatrix, Diagonal)
//     and frozen float64 constants (Identity2..4, Zero2..4).
//   - Element-wise algebra, products, right division and transposition.
//   - LU decomposition with partial pivoting (LUP), Solve, and closed-form
//     Determinant, Adjugate, Cofactor and Inverse per dimension.
//   - Structural predicates (IsSymmetric, IsOrthogonal, IsPermutation, ...).
//   - Lazy traversals (Each, EachWithIndex) over iter.Seq / iter.Seq2.
//
// Errors are package-level sentinels matched with errors.Is. Every specific
// sentinel wraps ErrInvalidArgument, so callers may test either level.
//
// Tolerance and the NaN/Inf policy are configured with functional options
// (WithEpsilon, WithValidateNaNInf) and travel with each matrix.
//
// Example:
//
//	a := matrix.New2(1.0, 2.0, 3.0, 4.0)
//	fmt.Println(a.Determinant()) // -2
//	inv, _ := a.Inverse()
//	id, _ := a.Mul(inv)
package matrix
