// SPDX-License-Identifier: MIT

// Package matrix: named builders and canonical constants.
//
// Purpose:
//   - Provide intention-revealing constructors (Identity, Zero, ScalarMatrix, Diagonal).
//   - Expose process-wide read-only identity/zero matrices for float64.
//
// Determinism & Policy:
//   - Builders delegate to the strict constructors; no extra validation paths.
//   - Canonical constants are built once during package initialization and frozen;
//     callers needing a writable copy use Clone.

package matrix

// Canonical float64 constants. They are frozen: Set/SetIndex/InPlace mutations
// fail with ErrReadOnly.
var (
	Identity2 = mustFrozen(Identity[float64](2))
	Identity3 = mustFrozen(Identity[float64](3))
	Identity4 = mustFrozen(Identity[float64](4))
	Zero2     = mustFrozen(Zero[float64](2))
	Zero3     = mustFrozen(Zero[float64](3))
	Zero4     = mustFrozen(Zero[float64](4))
)

// mustFrozen freezes a constant built from literal, always-valid arguments.
func mustFrozen(m *Matrix[float64], err error) *Matrix[float64] {
	if err != nil {
		panic(err)
	}
	m.readOnly = true

	return m
}

// Zero returns the n×n zero matrix.
// Complexity: O(n²) zeroing.
func Zero[T Scalar](n int, opts ...Option) (*Matrix[T], error) {
	if err := ValidateDimension(n); err != nil {
		return nil, matrixErrorf(opNew, err)
	}

	return newMatrix[T](n, gatherOptions(opts...)), nil
}

// Identity returns I_n (ones on the diagonal, zeros elsewhere).
func Identity[T Scalar](n int, opts ...Option) (*Matrix[T], error) {
	return ScalarMatrix(n, T(1), opts...)
}

// Unit is an alias of Identity.
func Unit[T Scalar](n int, opts ...Option) (*Matrix[T], error) {
	return Identity[T](n, opts...)
}

// ScalarMatrix returns k·I_n.
func ScalarMatrix[T Scalar](n int, k T, opts ...Option) (*Matrix[T], error) {
	m, err := Zero[T](n, opts...)
	if err != nil {
		return nil, err
	}
	if err = validateFinite(m.opts, k); err != nil {
		return nil, matrixErrorf(opNew, err)
	}
	for i := 0; i < n; i++ {
		m.set(i, i, k)
	}

	return m, nil
}

// Diagonal returns the n×n matrix with d on its main diagonal.
//
// Errors: ErrBadDimension, ErrElementCount when len(d) != n, ErrNaNInf under
// WithValidateNaNInf.
func Diagonal[T Scalar](n int, d []T, opts ...Option) (*Matrix[T], error) {
	m, err := Zero[T](n, opts...)
	if err != nil {
		return nil, err
	}
	if len(d) != n {
		return nil, matrixErrorf(opNew, ErrElementCount)
	}
	if err = validateFinite(m.opts, d...); err != nil {
		return nil, matrixErrorf(opNew, err)
	}
	for i, v := range d {
		m.set(i, i, v)
	}

	return m, nil
}

// ZerosLike returns a zero matrix with m's dimension and options.
func ZerosLike[T Scalar](m *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opNew, err)
	}

	return m.derive(), nil
}

// IdentityLike returns I with m's dimension and options.
func IdentityLike[T Scalar](m *Matrix[T]) (*Matrix[T], error) {
	out, err := ZerosLike(m)
	if err != nil {
		return nil, err
	}
	for i := 0; i < out.n; i++ {
		out.set(i, i, 1)
	}

	return out, nil
}

// Expand embeds m into the top-left block of the next larger identity:
// 2×2 → 3×3 and 3×3 → 4×4. The new row and column are zero except for a 1
// on the diagonal.
//
// Errors: ErrNilMatrix, ErrBadDimension for a 4×4 receiver.
func (m *Matrix[T]) Expand() (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opExpand, err)
	}
	if m.n >= MaxDim {
		return nil, matrixErrorf(opExpand, ErrBadDimension)
	}
	out := newMatrix[T](m.n+1, m.opts)
	for r := 0; r < m.n; r++ {
		copy(out.data[r*out.n:r*out.n+m.n], m.data[r*m.n:(r+1)*m.n])
	}
	out.set(m.n, m.n, 1)

	return out, nil
}
