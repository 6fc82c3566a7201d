// SPDX-License-Identifier: MIT

// Package matrix: element-wise transforms.
//
// Purpose:
//   - Map an arbitrary function over the elements (Map).
//   - Provide complex-aware helpers: Conjugate, Adjoint (conjugate transpose),
//     Real and Imag parts, and decimal rounding.
//
// Contract:
//   - Pure methods allocate a fresh result with the receiver's options.
//   - ConjugateInPlace mutates the receiver only and honors the read-only flag.
//   - For real element types Conjugate is a copy and Imag is the zero matrix.

package matrix

// mapElems is the unchecked kernel behind Map and the arithmetic shortcuts.
func (m *Matrix[T]) mapElems(fn func(T) T) *Matrix[T] {
	if m == nil {
		return nil
	}
	out := m.derive()
	for i, v := range m.data {
		out.data[i] = fn(v)
	}

	return out
}

// Map returns a matrix whose elements are fn applied to m's elements
// in row-major order.
//
// Errors: ErrNilMatrix, ErrNilFunc, ErrNaNInf (strict policy, on results).
func (m *Matrix[T]) Map(fn func(T) T) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMap, err)
	}
	if fn == nil {
		return nil, matrixErrorf(opMap, ErrNilFunc)
	}
	out := m.mapElems(fn)
	if err := validateFinite(out.opts, out.data...); err != nil {
		return nil, matrixErrorf(opMap, err)
	}

	return out, nil
}

// Conjugate returns the element-wise complex conjugate.
func (m *Matrix[T]) Conjugate() *Matrix[T] {
	return m.mapElems(conj[T])
}

// ConjugateInPlace conjugates every element of the receiver.
//
// Errors: ErrNilMatrix, ErrReadOnly.
func (m *Matrix[T]) ConjugateInPlace() error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opConjugate, err)
	}
	if err := ValidateWritable(m); err != nil {
		return matrixErrorf(opConjugate, err)
	}
	for i, v := range m.data {
		m.data[i] = conj(v)
	}

	return nil
}

// Adjoint returns the conjugate transpose m*. For real matrices this equals
// Transpose. Not to be confused with Adjugate.
func (m *Matrix[T]) Adjoint() *Matrix[T] {
	return m.Conjugate().Transpose()
}

// Real returns the matrix of real parts.
func (m *Matrix[T]) Real() *Matrix[T] {
	return m.mapElems(func(v T) T {
		re, _ := parts(v)
		return FromFloat[T](re)
	})
}

// Imag returns the matrix of imaginary parts (as real-valued elements of T).
func (m *Matrix[T]) Imag() *Matrix[T] {
	return m.mapElems(func(v T) T {
		_, im := parts(v)
		return FromFloat[T](im)
	})
}

// Round rounds every element (both parts for complex) to digits decimals.
// Negative digits round to tens, hundreds, ...
func (m *Matrix[T]) Round(digits int) *Matrix[T] {
	return m.mapElems(func(v T) T { return roundTo(v, digits) })
}
