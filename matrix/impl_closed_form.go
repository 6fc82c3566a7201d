// SPDX-License-Identifier: MIT

// Package matrix: closed-form determinant, adjugate and inverse.
//
// Purpose:
//   - Select a per-dimension kernel (2×2, 3×3, 4×4) from a small strategy table
//     instead of generic cofactor recursion.
//   - Derive Cofactor and Inverse from the adjugate: adj(A) = Cᵀ, A⁻¹ = adj(A)/det(A).
//
// Determinism:
//   - Fixed evaluation order per kernel; identical inputs give bitwise-identical results.
//
// Notes:
//   - The 4×4 kernel shares twelve 2×2 sub-determinants (six from the top two rows,
//     six from the bottom two) between det and adjugate.

package matrix

// kernel bundles the closed forms for one dimension.
type kernel[T Scalar] struct {
	det func(a []T) T
	adj func(a []T) []T
}

// kernelFor returns the closed-form kernel for dimension n (validated by caller).
func kernelFor[T Scalar](n int) kernel[T] {
	table := [MaxDim + 1]kernel[T]{
		2: {det: det2[T], adj: adj2[T]},
		3: {det: det3[T], adj: adj3[T]},
		4: {det: det4[T], adj: adj4[T]},
	}

	return table[n]
}

func det2[T Scalar](a []T) T {
	return a[0]*a[3] - a[1]*a[2]
}

func adj2[T Scalar](a []T) []T {
	return []T{a[3], -a[1], -a[2], a[0]}
}

func det3[T Scalar](a []T) T {
	return a[0]*(a[4]*a[8]-a[5]*a[7]) -
		a[1]*(a[3]*a[8]-a[5]*a[6]) +
		a[2]*(a[3]*a[7]-a[4]*a[6])
}

func adj3[T Scalar](a []T) []T {
	return []T{
		a[4]*a[8] - a[5]*a[7], a[2]*a[7] - a[1]*a[8], a[1]*a[5] - a[2]*a[4],
		a[5]*a[6] - a[3]*a[8], a[0]*a[8] - a[2]*a[6], a[2]*a[3] - a[0]*a[5],
		a[3]*a[7] - a[4]*a[6], a[1]*a[6] - a[0]*a[7], a[0]*a[4] - a[1]*a[3],
	}
}

// minors4 holds the 2×2 sub-determinants of rows 0-1 (s) and rows 2-3 (c).
type minors4[T Scalar] struct {
	s [6]T
	c [6]T
}

func newMinors4[T Scalar](a []T) minors4[T] {
	var m minors4[T]
	m.s[0] = a[0]*a[5] - a[1]*a[4]
	m.s[1] = a[0]*a[6] - a[2]*a[4]
	m.s[2] = a[0]*a[7] - a[3]*a[4]
	m.s[3] = a[1]*a[6] - a[2]*a[5]
	m.s[4] = a[1]*a[7] - a[3]*a[5]
	m.s[5] = a[2]*a[7] - a[3]*a[6]

	m.c[0] = a[8]*a[13] - a[9]*a[12]
	m.c[1] = a[8]*a[14] - a[10]*a[12]
	m.c[2] = a[8]*a[15] - a[11]*a[12]
	m.c[3] = a[9]*a[14] - a[10]*a[13]
	m.c[4] = a[9]*a[15] - a[11]*a[13]
	m.c[5] = a[10]*a[15] - a[11]*a[14]

	return m
}

func det4[T Scalar](a []T) T {
	m := newMinors4(a)
	s, c := m.s, m.c

	return s[0]*c[5] - s[1]*c[4] + s[2]*c[3] + s[3]*c[2] - s[4]*c[1] + s[5]*c[0]
}

func adj4[T Scalar](a []T) []T {
	m := newMinors4(a)
	s, c := m.s, m.c

	return []T{
		a[5]*c[5] - a[6]*c[4] + a[7]*c[3],
		a[2]*c[4] - a[1]*c[5] - a[3]*c[3],
		a[13]*s[5] - a[14]*s[4] + a[15]*s[3],
		a[10]*s[4] - a[9]*s[5] - a[11]*s[3],

		a[6]*c[2] - a[4]*c[5] - a[7]*c[1],
		a[0]*c[5] - a[2]*c[2] + a[3]*c[1],
		a[14]*s[2] - a[12]*s[5] - a[15]*s[1],
		a[8]*s[5] - a[10]*s[2] + a[11]*s[1],

		a[4]*c[4] - a[5]*c[2] + a[7]*c[0],
		a[1]*c[2] - a[0]*c[4] - a[3]*c[0],
		a[12]*s[4] - a[13]*s[2] + a[15]*s[0],
		a[9]*s[2] - a[8]*s[4] - a[11]*s[0],

		a[5]*c[1] - a[4]*c[3] - a[6]*c[0],
		a[0]*c[3] - a[1]*c[1] + a[2]*c[0],
		a[13]*s[1] - a[12]*s[3] - a[14]*s[0],
		a[8]*s[3] - a[9]*s[1] + a[10]*s[0],
	}
}

// Determinant returns det(m) using the closed form for m's dimension.
// A nil receiver yields 0.
// Complexity: O(1) for fixed n.
func (m *Matrix[T]) Determinant() T {
	if m == nil {
		var zero T
		return zero
	}

	return kernelFor[T](m.n).det(m.data)
}

// Adjugate returns adj(m), the transpose of the cofactor matrix, so that
// m·adj(m) = det(m)·I.
func (m *Matrix[T]) Adjugate() *Matrix[T] {
	if m == nil {
		return nil
	}
	out := m.derive()
	copy(out.data, kernelFor[T](m.n).adj(m.data))

	return out
}

// Cofactor returns the cofactor matrix C with C(i,j) = (-1)^(i+j)·M(i,j).
func (m *Matrix[T]) Cofactor() *Matrix[T] {
	return m.Adjugate().Transpose()
}

// Inverse returns m⁻¹ = adj(m)·(1/det(m)).
//
// Errors: ErrNilMatrix, ErrSingular when det(m) == 0.
func (m *Matrix[T]) Inverse() (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	det := m.Determinant()
	if det == 0 {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}

	return m.Adjugate().Scale(T(1) / det), nil
}
