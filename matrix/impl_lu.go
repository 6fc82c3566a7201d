// SPDX-License-Identifier: MIT

// Package matrix: LU decomposition with partial pivoting and linear solves.
//
// Purpose:
//   - LUP factors A into P·A = L·U (L unit lower triangular, U upper triangular,
//     P a permutation matrix).
//   - Solve uses the factors for A·X = B (forward then back substitution).
//
// Determinism:
//   - Pivot choice: the row j ≥ i of the partially eliminated matrix with the
//     largest |a(j,i)|; on equal magnitudes the lowest row index wins.
//   - Singularity is decided by the closed-form determinant before any pivot search.

package matrix

// LUP returns L, U and P with P·m = L·U.
//
// Implementation:
//   - Stage 1: reject nil and singular inputs (det == 0) with ErrSingular.
//   - Stage 2: Gaussian elimination column by column. Before eliminating column i,
//     swap row i with the pivot row in the working matrix and in the already
//     computed part of L (columns < i), and record the swap in perm.
//   - Stage 3: materialize P from perm: P(i, perm[i]) = 1, so row i of P·m is
//     row perm[i] of m.
//
// Errors: ErrNilMatrix, ErrSingular.
// Complexity: O(n³).
func (m *Matrix[T]) LUP() (l, u, p *Matrix[T], err error) {
	if err = ValidateNotNil(m); err != nil {
		return nil, nil, nil, matrixErrorf(opLUP, err)
	}
	if m.IsSingular() {
		return nil, nil, nil, matrixErrorf(opLUP, ErrSingular)
	}

	n := m.n
	u = m.Clone()
	l, _ = IdentityLike(m)
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	for i := 0; i < n; i++ {
		pivot, best := i, abs(u.at(i, i))
		for j := i + 1; j < n; j++ {
			if v := abs(u.at(j, i)); v > best {
				pivot, best = j, v
			}
		}
		// Unreachable for det != 0 in exact arithmetic; kept for rounding corner cases.
		if best == 0 {
			return nil, nil, nil, matrixErrorf(opLUP, ErrSingular)
		}
		if pivot != i {
			u.swapRows(i, pivot, 0, n)
			l.swapRows(i, pivot, 0, i)
			perm[i], perm[pivot] = perm[pivot], perm[i]
		}

		piv := u.at(i, i)
		for j := i + 1; j < n; j++ {
			f := u.at(j, i) / piv
			l.set(j, i, f)
			for k := i + 1; k < n; k++ {
				u.set(j, k, u.at(j, k)-f*u.at(i, k))
			}
			u.set(j, i, 0)
		}
	}

	p = m.derive()
	for i, j := range perm {
		p.set(i, j, 1)
	}

	return l, u, p, nil
}

// swapRows exchanges rows a and b over columns [from, to).
func (m *Matrix[T]) swapRows(a, b, from, to int) {
	n := m.n
	for k := from; k < to; k++ {
		m.data[a*n+k], m.data[b*n+k] = m.data[b*n+k], m.data[a*n+k]
	}
}

// Solve returns X with m·X = b.
//
// Implementation:
//   - Stage 1: (L, U, P) = m.LUP(); Y0 = P·b.
//   - Stage 2: forward substitution L·Y = Y0, dividing by L(r,r).
//   - Stage 3: back substitution U·X = Y from the last row upward, dividing by U(i,i).
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrSingular.
// Complexity: O(n³).
func (m *Matrix[T]) Solve(b *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateBinary(m, b); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	l, u, p, err := m.LUP()
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	pb, _ := p.Mul(b)

	n := m.n
	x := m.derive()
	col := make([]T, n)
	for c := 0; c < n; c++ {
		for r := 0; r < n; r++ {
			col[r] = pb.at(r, c)
		}
		for r, v := range substitute(l, u, col) {
			x.set(r, c, v)
		}
	}

	return x, nil
}

// SolveVec returns x with m·x = v.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrSingular.
func (m *Matrix[T]) SolveVec(v []T) ([]T, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateVecLen(v, m.n); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	l, u, p, err := m.LUP()
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	pv, _ := p.MulVec(v)

	return substitute(l, u, pv), nil
}

// substitute solves L·U·x = y for one right-hand side.
func substitute[T Scalar](l, u *Matrix[T], y []T) []T {
	n := l.n
	z := make([]T, n)
	for r := 0; r < n; r++ {
		sum := y[r]
		for k := 0; k < r; k++ {
			sum -= l.at(r, k) * z[k]
		}
		z[r] = sum / l.at(r, r)
	}

	x := make([]T, n)
	for i := n - 1; i >= 0; i-- {
		sum := z[i]
		for k := i + 1; k < n; k++ {
			sum -= u.at(i, k) * x[k]
		}
		x[i] = sum / u.at(i, i)
	}

	return x
}
