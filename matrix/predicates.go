// SPDX-License-Identifier: MIT

// Package matrix: structural predicates and equality.
//
// Contract:
//   - Structural predicates (diagonal, triangular, symmetric, hermitian, zero, real)
//     compare elements exactly.
//   - IsNormal, IsOrthogonal, IsUnitary and IsPermutation compare within the
//     matrix tolerance (Options.Epsilon, DefaultEpsilon unless WithEpsilon is used).
//   - The product-based predicates scale that tolerance by max(1, max|m_ij|²),
//     the magnitude of the entries of m·m*. IsPermutation uses it unscaled.
//   - Every predicate returns false for a nil receiver.

package matrix

// all reports whether keep(r, c, v) holds for every element.
func (m *Matrix[T]) all(keep func(r, c int, v T) bool) bool {
	if m == nil {
		return false
	}
	for r := 0; r < m.n; r++ {
		for c := 0; c < m.n; c++ {
			if !keep(r, c, m.at(r, c)) {
				return false
			}
		}
	}

	return true
}

// IsDiagonal reports whether every off-diagonal element is zero.
func (m *Matrix[T]) IsDiagonal() bool {
	return m.all(func(r, c int, v T) bool { return r == c || v == 0 })
}

// IsScalar reports whether m is diagonal with all diagonal elements equal.
func (m *Matrix[T]) IsScalar() bool {
	if !m.IsDiagonal() {
		return false
	}
	d := m.at(0, 0)

	return m.all(func(r, c int, v T) bool { return r != c || v == d })
}

// IsLowerTriangular reports whether every element above the diagonal is zero.
func (m *Matrix[T]) IsLowerTriangular() bool {
	return m.all(func(r, c int, v T) bool { return c <= r || v == 0 })
}

// IsUpperTriangular reports whether every element below the diagonal is zero.
func (m *Matrix[T]) IsUpperTriangular() bool {
	return m.all(func(r, c int, v T) bool { return r <= c || v == 0 })
}

// IsSymmetric reports whether m == mᵀ.
func (m *Matrix[T]) IsSymmetric() bool {
	return m.all(func(r, c int, v T) bool { return v == m.at(c, r) })
}

// IsHermitian reports whether m equals its conjugate transpose.
// For real element types this is IsSymmetric.
func (m *Matrix[T]) IsHermitian() bool {
	return m.all(func(r, c int, v T) bool { return v == conj(m.at(c, r)) })
}

// IsZero reports whether every element is zero.
func (m *Matrix[T]) IsZero() bool {
	return m.all(func(_, _ int, v T) bool { return v == 0 })
}

// IsReal reports whether every element has a zero imaginary part.
func (m *Matrix[T]) IsReal() bool {
	return m.all(func(_, _ int, v T) bool {
		_, im := parts(v)
		return im == 0
	})
}

// IsSingular reports whether det(m) == 0 (exact).
func (m *Matrix[T]) IsSingular() bool {
	return m != nil && m.Determinant() == 0
}

// productEps returns the tolerance for comparing entries of m·m*:
// eps·max(1, max|m_ij|²).
func (m *Matrix[T]) productEps() float64 {
	peak := 1.0
	for _, v := range m.data {
		if a := abs(v); a*a > peak {
			peak = a * a
		}
	}

	return m.opts.eps * peak
}

// IsNormal reports whether m·m* ≈ m*·m within the scaled tolerance.
func (m *Matrix[T]) IsNormal() bool {
	if m == nil {
		return false
	}
	adj := m.Adjoint()
	left, _ := m.Mul(adj)
	right, _ := adj.Mul(m)

	return left.EqualApprox(right, m.productEps())
}

// IsOrthogonal reports whether m·mᵀ ≈ I within the scaled tolerance.
func (m *Matrix[T]) IsOrthogonal() bool {
	if m == nil {
		return false
	}
	prod, _ := m.Mul(m.Transpose())

	return prod.isIdentityApprox(m.productEps())
}

// IsUnitary reports whether m·m* ≈ I within the scaled tolerance.
func (m *Matrix[T]) IsUnitary() bool {
	if m == nil {
		return false
	}
	prod, _ := m.Mul(m.Adjoint())

	return prod.isIdentityApprox(m.productEps())
}

// IsPermutation reports whether every element is ≈0 or ≈1 and every row and
// every column holds exactly one ≈1.
func (m *Matrix[T]) IsPermutation() bool {
	if m == nil {
		return false
	}
	eps := m.opts.eps
	rowOnes := make([]int, m.n)
	colOnes := make([]int, m.n)
	ok := m.all(func(r, c int, v T) bool {
		switch {
		case abs(v-1) <= eps:
			rowOnes[r]++
			colOnes[c]++
			return true
		case abs(v) <= eps:
			return true
		}
		return false
	})
	if !ok {
		return false
	}
	for i := 0; i < m.n; i++ {
		if rowOnes[i] != 1 || colOnes[i] != 1 {
			return false
		}
	}

	return true
}

func (m *Matrix[T]) isIdentityApprox(eps float64) bool {
	return m.all(func(r, c int, v T) bool {
		if r == c {
			return abs(v-1) <= eps
		}
		return abs(v) <= eps
	})
}

// Equal reports exact element-wise equality of two matrices of the same
// dimension. Options are not compared.
func (m *Matrix[T]) Equal(b *Matrix[T]) bool {
	if ValidateBinary(m, b) != nil {
		return false
	}
	for i, v := range m.data {
		if v != b.data[i] {
			return false
		}
	}

	return true
}

// EqualApprox reports whether |m(i,j) - b(i,j)| <= eps for every element.
func (m *Matrix[T]) EqualApprox(b *Matrix[T], eps float64) bool {
	if ValidateBinary(m, b) != nil {
		return false
	}
	for i, v := range m.data {
		if abs(v-b.data[i]) > eps {
			return false
		}
	}

	return true
}

// Key returns a comparable snapshot of m for use as a map key.
// Equal matrices (Equal) have equal keys.
func (m *Matrix[T]) Key() Key[T] {
	var k Key[T]
	if m == nil {
		return k
	}
	k.n = m.n
	copy(k.data[:], m.data)

	return k
}
