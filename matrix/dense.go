// SPDX-License-Identifier: MIT

// Package matrix: construction and element access for the row-major Matrix[T].
//
// Matrix stores its n*n elements in a flat slice for cache friendliness;
// element (r, c) lives at r*n+c. Accessors return errors instead of panicking.

package matrix

import "fmt"

// denseErrorf wraps an underlying error with accessor context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// New creates an n×n matrix from elems given in row-major order.
// Stage 1 (Validate): n ∈ {2,3,4}, len(elems) == n*n, numeric policy.
// Stage 2 (Prepare): copy elems into fresh storage (caller keeps ownership of elems).
// Complexity: O(n²) time and memory.
//
// Errors: ErrBadDimension, ErrElementCount, ErrNaNInf (strict policy only).
func New[T Scalar](n int, elems []T, opts ...Option) (*Matrix[T], error) {
	if err := ValidateDimension(n); err != nil {
		return nil, matrixErrorf(opNew, err)
	}
	if len(elems) != n*n {
		return nil, matrixErrorf(opNew, ErrElementCount)
	}
	o := gatherOptions(opts...)
	if err := validateFinite(o, elems...); err != nil {
		return nil, matrixErrorf(opNew, err)
	}

	m := newMatrix[T](n, o)
	copy(m.data, elems)

	return m, nil
}

// FromRows creates a matrix from a list of rows; n = len(rows) and every row
// must have exactly n elements.
//
// Errors: ErrBadDimension, ErrElementCount, ErrNaNInf.
func FromRows[T Scalar](rows [][]T, opts ...Option) (*Matrix[T], error) {
	n := len(rows)
	if err := ValidateDimension(n); err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}
	o := gatherOptions(opts...)
	m := newMatrix[T](n, o)
	for r, row := range rows {
		if len(row) != n {
			return nil, matrixErrorf(opFromRows, ErrElementCount)
		}
		if err := validateFinite(o, row...); err != nil {
			return nil, matrixErrorf(opFromRows, err)
		}
		copy(m.data[r*n:(r+1)*n], row)
	}

	return m, nil
}

// FromColumns creates a matrix from a list of columns; column c becomes the
// c-th column of the result.
//
// Errors: ErrBadDimension, ErrElementCount, ErrNaNInf.
func FromColumns[T Scalar](cols [][]T, opts ...Option) (*Matrix[T], error) {
	n := len(cols)
	if err := ValidateDimension(n); err != nil {
		return nil, matrixErrorf(opFromColumns, err)
	}
	o := gatherOptions(opts...)
	m := newMatrix[T](n, o)
	for c, col := range cols {
		if len(col) != n {
			return nil, matrixErrorf(opFromColumns, ErrElementCount)
		}
		if err := validateFinite(o, col...); err != nil {
			return nil, matrixErrorf(opFromColumns, err)
		}
		for r, v := range col {
			m.set(r, c, v)
		}
	}

	return m, nil
}

// Build creates an n×n matrix whose element (r, c) is fn(r, c).
// fn is invoked exactly once per element in row-major order.
//
// Errors: ErrBadDimension, ErrNilFunc, ErrNaNInf.
func Build[T Scalar](n int, fn func(r, c int) T, opts ...Option) (*Matrix[T], error) {
	if err := ValidateDimension(n); err != nil {
		return nil, matrixErrorf(opBuild, err)
	}
	if fn == nil {
		return nil, matrixErrorf(opBuild, ErrNilFunc)
	}
	o := gatherOptions(opts...)
	m := newMatrix[T](n, o)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			m.set(r, c, fn(r, c))
		}
	}
	if err := validateFinite(o, m.data...); err != nil {
		return nil, matrixErrorf(opBuild, err)
	}

	return m, nil
}

// New2 builds a 2×2 matrix from its elements in row-major order.
func New2[T Scalar](m00, m01, m10, m11 T) *Matrix[T] {
	m := newMatrix[T](2, defaultOptions())
	copy(m.data, []T{m00, m01, m10, m11})

	return m
}

// New3 builds a 3×3 matrix from its elements in row-major order.
func New3[T Scalar](m00, m01, m02, m10, m11, m12, m20, m21, m22 T) *Matrix[T] {
	m := newMatrix[T](3, defaultOptions())
	copy(m.data, []T{m00, m01, m02, m10, m11, m12, m20, m21, m22})

	return m
}

// New4 builds a 4×4 matrix from its elements in row-major order.
func New4[T Scalar](
	m00, m01, m02, m03,
	m10, m11, m12, m13,
	m20, m21, m22, m23,
	m30, m31, m32, m33 T,
) *Matrix[T] {
	m := newMatrix[T](4, defaultOptions())
	copy(m.data, []T{
		m00, m01, m02, m03,
		m10, m11, m12, m13,
		m20, m21, m22, m23,
		m30, m31, m32, m33,
	})

	return m
}

// Dim returns n for an n×n matrix (0 for a nil receiver).
func (m *Matrix[T]) Dim() int {
	if m == nil {
		return 0
	}

	return m.n
}

// Len returns the number of elements, n*n.
func (m *Matrix[T]) Len() int {
	if m == nil {
		return 0
	}

	return len(m.data)
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Matrix[T]) indexOf(method string, row, col int) (int, error) {
	if m == nil {
		return 0, denseErrorf(method, row, col, ErrNilMatrix)
	}
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.n + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Matrix[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		var zero T
		return zero, err
	}

	return m.data[idx], nil
}

// AtIndex retrieves the element at flat row-major index i.
func (m *Matrix[T]) AtIndex(i int) (T, error) {
	var zero T
	if m == nil {
		return zero, matrixErrorf(opAt, ErrNilMatrix)
	}
	if err := ValidateIndex(i, len(m.data)); err != nil {
		return zero, matrixErrorf(opAt, err)
	}

	return m.data[i], nil
}

// Set assigns v at (row, col).
// Stage 1 (Validate): bounds, read-only flag, numeric policy.
// Stage 2 (Execute): write into storage.
//
// Errors: ErrOutOfRange, ErrReadOnly, ErrNaNInf.
func (m *Matrix[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}

	return m.store(idx, v)
}

// SetIndex assigns v at flat row-major index i.
func (m *Matrix[T]) SetIndex(i int, v T) error {
	if m == nil {
		return matrixErrorf(opSet, ErrNilMatrix)
	}
	if err := ValidateIndex(i, len(m.data)); err != nil {
		return matrixErrorf(opSet, err)
	}

	return m.store(i, v)
}

func (m *Matrix[T]) store(idx int, v T) error {
	if err := ValidateWritable(m); err != nil {
		return matrixErrorf(opSet, err)
	}
	if err := validateFinite(m.opts, v); err != nil {
		return matrixErrorf(opSet, err)
	}
	m.data[idx] = v

	return nil
}

// Row returns a copy of row r.
func (m *Matrix[T]) Row(r int) ([]T, error) {
	if _, err := m.indexOf("Row", r, 0); err != nil {
		return nil, err
	}
	out := make([]T, m.n)
	copy(out, m.data[r*m.n:(r+1)*m.n])

	return out, nil
}

// Column returns a copy of column c.
func (m *Matrix[T]) Column(c int) ([]T, error) {
	if _, err := m.indexOf("Column", 0, c); err != nil {
		return nil, err
	}
	out := make([]T, m.n)
	for r := range out {
		out[r] = m.at(r, c)
	}

	return out, nil
}

// Rows returns a fresh copy of all rows.
func (m *Matrix[T]) Rows() [][]T {
	if m == nil {
		return nil
	}
	out := make([][]T, m.n)
	for r := range out {
		out[r], _ = m.Row(r)
	}

	return out
}

// Columns returns a fresh copy of all columns.
func (m *Matrix[T]) Columns() [][]T {
	if m == nil {
		return nil
	}
	out := make([][]T, m.n)
	for c := range out {
		out[c], _ = m.Column(c)
	}

	return out
}

// Diagonal returns the main diagonal.
func (m *Matrix[T]) Diagonal() []T {
	if m == nil {
		return nil
	}
	out := make([]T, m.n)
	for i := range out {
		out[i] = m.at(i, i)
	}

	return out
}

// Elements returns a copy of the row-major storage.
func (m *Matrix[T]) Elements() []T {
	if m == nil {
		return nil
	}
	out := make([]T, len(m.data))
	copy(out, m.data)

	return out
}

// Clone returns a deep, writable copy (a clone of a frozen matrix is not frozen).
// Complexity: O(n²).
func (m *Matrix[T]) Clone() *Matrix[T] {
	if m == nil {
		return nil
	}
	out := m.derive()
	copy(out.data, m.data)

	return out
}

// Options returns the configuration carried by m.
func (m *Matrix[T]) Options() Options {
	if m == nil {
		return defaultOptions()
	}

	return m.opts
}

// WithOptions returns a clone of m whose options are m's options overridden by opts.
func (m *Matrix[T]) WithOptions(opts ...Option) *Matrix[T] {
	if m == nil {
		return nil
	}
	out := m.Clone()
	for _, set := range opts {
		if set != nil {
			set(&out.opts)
		}
	}

	return out
}

// IsReadOnly reports whether m rejects mutation.
func (m *Matrix[T]) IsReadOnly() bool {
	return m != nil && m.readOnly
}

// Freeze returns a read-only copy of m. Set, SetIndex and the InPlace methods
// fail on it with ErrReadOnly.
func (m *Matrix[T]) Freeze() *Matrix[T] {
	out := m.Clone()
	if out != nil {
		out.readOnly = true
	}

	return out
}
