// SPDX-License-Identifier: MIT

// Package matrix: element-wise algebra, products and transposition.
//
// Purpose:
//   - Implement Add/Sub/Neg/Scale/DivScalar, matrix and matrix-vector products,
//     right division and the transpose family on Matrix[T].
//   - Define operation tags shared by every kernel for uniform error reporting.
//
// Notes:
//   - Every kernel validates through validators.go and wraps failures via matrixErrorf.
//   - Results are freshly allocated and inherit the receiver's options; operands
//     are never mutated (InPlace methods mutate the receiver only).

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opNew         = "New"
	opFromRows    = "FromRows"
	opFromColumns = "FromColumns"
	opBuild       = "Build"
	opAt          = "At"
	opSet         = "Set"
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opMulVec      = "MulVec"
	opVecMul      = "VecMul"
	opDiv         = "Div"
	opDivScalar   = "DivScalar"
	opScalarDiv   = "ScalarDiv"
	opTranspose   = "Transpose"
	opConjugate   = "Conjugate"
	opMap         = "Map"
	opInverse     = "Inverse"
	opLUP         = "LUP"
	opSolve       = "Solve"
	opExpand      = "Expand"
	opEach        = "Each"
	opText        = "Text"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes out = a + b (sign > 0) or a - b (sign < 0).
// Internal helper for Add/Sub to share validation and allocation.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (wrapped with opTag).
// Complexity: O(n²).
func addSub[T Scalar](a, b *Matrix[T], sign int, opTag string) (*Matrix[T], error) {
	if err := ValidateBinary(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	out := a.derive()
	for i, v := range a.data {
		if sign > 0 {
			out.data[i] = v + b.data[i]
		} else {
			out.data[i] = v - b.data[i]
		}
	}

	return out, nil
}

// Add returns m + b.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func (m *Matrix[T]) Add(b *Matrix[T]) (*Matrix[T], error) {
	return addSub(m, b, +1, opAdd)
}

// Sub returns m - b.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func (m *Matrix[T]) Sub(b *Matrix[T]) (*Matrix[T], error) {
	return addSub(m, b, -1, opSub)
}

// Neg returns -m.
func (m *Matrix[T]) Neg() *Matrix[T] {
	return m.mapElems(func(v T) T { return -v })
}

// Scale returns k·m.
func (m *Matrix[T]) Scale(k T) *Matrix[T] {
	return m.mapElems(func(v T) T { return v * k })
}

// DivScalar returns m / k.
//
// Errors: ErrNilMatrix, ErrDivideByZero when k == 0.
func (m *Matrix[T]) DivScalar(k T) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opDivScalar, err)
	}
	if k == 0 {
		return nil, matrixErrorf(opDivScalar, ErrDivideByZero)
	}

	return m.mapElems(func(v T) T { return v / k }), nil
}

// Mul returns the matrix product m·b, out(i,j) = Σ_k m(i,k)·b(k,j).
// Loop order i→k→j keeps the inner walk contiguous on both b and out.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(n³).
func (m *Matrix[T]) Mul(b *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateBinary(m, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	n := m.n
	out := m.derive()
	for i := 0; i < n; i++ {
		for k := 0; k < n; k++ {
			aik := m.data[i*n+k]
			for j := 0; j < n; j++ {
				out.data[i*n+j] += aik * b.data[k*n+j]
			}
		}
	}

	return out, nil
}

// MulVec returns m·v treating v as a column vector.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch when len(v) != n.
func (m *Matrix[T]) MulVec(v []T) ([]T, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	if err := ValidateVecLen(v, m.n); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	out := make([]T, m.n)
	for i := range out {
		var sum T
		for k, x := range v {
			sum += m.at(i, k) * x
		}
		out[i] = sum
	}

	return out, nil
}

// VecMul returns v·m treating v as a row vector.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch when len(v) != n.
func (m *Matrix[T]) VecMul(v []T) ([]T, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opVecMul, err)
	}
	if err := ValidateVecLen(v, m.n); err != nil {
		return nil, matrixErrorf(opVecMul, err)
	}
	out := make([]T, m.n)
	for j := range out {
		var sum T
		for k, x := range v {
			sum += x * m.at(k, j)
		}
		out[j] = sum
	}

	return out, nil
}

// Div returns m·b⁻¹. Instead of forming the inverse it solves bᵀ·Xᵀ = mᵀ,
// so the result satisfies X·b = m.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrSingular when b is singular.
func (m *Matrix[T]) Div(b *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateBinary(m, b); err != nil {
		return nil, matrixErrorf(opDiv, err)
	}
	xt, err := b.Transpose().Solve(m.Transpose())
	if err != nil {
		return nil, matrixErrorf(opDiv, err)
	}

	return xt.Transpose(), nil
}

// ScalarDiv returns k·m⁻¹ (a scalar divided by a matrix).
//
// Errors: ErrNilMatrix, ErrSingular.
func ScalarDiv[T Scalar](k T, m *Matrix[T]) (*Matrix[T], error) {
	inv, err := m.Inverse()
	if err != nil {
		return nil, matrixErrorf(opScalarDiv, err)
	}

	return inv.Scale(k), nil
}

// Trace returns the sum of the diagonal.
func (m *Matrix[T]) Trace() T {
	var sum T
	if m == nil {
		return sum
	}
	for i := 0; i < m.n; i++ {
		sum += m.at(i, i)
	}

	return sum
}

// Transpose returns mᵀ.
func (m *Matrix[T]) Transpose() *Matrix[T] {
	if m == nil {
		return nil
	}
	out := m.derive()
	for r := 0; r < m.n; r++ {
		for c := 0; c < m.n; c++ {
			out.set(c, r, m.at(r, c))
		}
	}

	return out
}

// TransposeInPlace transposes the receiver by swapping across the diagonal.
//
// Errors: ErrNilMatrix, ErrReadOnly.
func (m *Matrix[T]) TransposeInPlace() error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opTranspose, err)
	}
	if err := ValidateWritable(m); err != nil {
		return matrixErrorf(opTranspose, err)
	}
	n := m.n
	for r := 0; r < n; r++ {
		for c := r + 1; c < n; c++ {
			m.data[r*n+c], m.data[c*n+r] = m.data[c*n+r], m.data[r*n+c]
		}
	}

	return nil
}
