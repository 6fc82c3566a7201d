// SPDX-License-Identifier: MIT

// Package matrix: core types.
//
// Purpose:
//   - Define Matrix[T], the fixed-dimension square matrix used by every package
//     of this module, plus the Coord and Key helper types.
//
// Contract:
//   - Dimension n ∈ {MinDim..MaxDim} is fixed at construction.
//   - Storage is row-major: element (r, c) lives at data[r*n+c]; len(data) == n*n.
//   - Every operation that returns a matrix returns a fresh, independently owned value.

package matrix

// Dimension bounds supported by the engine.
const (
	MinDim = 2
	MaxDim = 4
)

// Matrix is an n×n matrix of Scalar elements stored in row-major order.
// The zero value is not usable; construct with New, FromRows, Build, New2..New4
// or one of the named builders.
type Matrix[T Scalar] struct {
	n        int
	data     []T
	opts     Options
	readOnly bool
}

// Coord addresses one element of a matrix.
type Coord struct {
	Row, Col int
}

// Key is a comparable snapshot of a matrix, suitable as a map key.
// Two matrices produce equal keys iff they have the same dimension and
// bitwise-equal elements (NaN never equals itself).
type Key[T Scalar] struct {
	n    int
	data [MaxDim * MaxDim]T
}

// Dim returns the key's dimension.
func (k Key[T]) Dim() int { return k.n }

// newMatrix allocates a zero n×n matrix with the given options.
// Callers must validate n.
func newMatrix[T Scalar](n int, o Options) *Matrix[T] {
	return &Matrix[T]{n: n, data: make([]T, n*n), opts: o}
}

// derive allocates a zero matrix with m's dimension and options.
func (m *Matrix[T]) derive() *Matrix[T] {
	return newMatrix[T](m.n, m.opts)
}

// at is the unchecked element read used by kernels.
func (m *Matrix[T]) at(r, c int) T { return m.data[r*m.n+c] }

// set is the unchecked element write used by kernels on fresh matrices.
func (m *Matrix[T]) set(r, c int, v T) { m.data[r*m.n+c] = v }
