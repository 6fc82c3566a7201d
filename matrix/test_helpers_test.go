// SPDX-License-Identifier: MIT

// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernels.
//   • Keep all data finite and well-conditioned to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/glmath/matrix"
)

// tol is the default comparison tolerance for results that go through division.
const tol = 1e-12

// dims lists every supported dimension for table-driven loops.
var dims = []int{2, 3, 4}

// MustNew builds an n×n matrix from row-major elements or fails the test.
func MustNew[T matrix.Scalar](t *testing.T, n int, elems ...T) *matrix.Matrix[T] {
	t.Helper()
	m, err := matrix.New(n, elems)
	require.NoError(t, err)

	return m
}

// MustIdentity returns a writable float64 identity or fails the test.
func MustIdentity(t *testing.T, n int) *matrix.Matrix[float64] {
	t.Helper()
	m, err := matrix.Identity[float64](n)
	require.NoError(t, err)

	return m
}

// MustMul returns a·b or fails the test.
func MustMul[T matrix.Scalar](t *testing.T, a, b *matrix.Matrix[T]) *matrix.Matrix[T] {
	t.Helper()
	out, err := a.Mul(b)
	require.NoError(t, err)

	return out
}

// MustInverse returns m⁻¹ or fails the test.
func MustInverse[T matrix.Scalar](t *testing.T, m *matrix.Matrix[T]) *matrix.Matrix[T] {
	t.Helper()
	inv, err := m.Inverse()
	require.NoError(t, err)

	return inv
}

// RandomDominant builds a deterministic, strictly diagonally dominant n×n
// matrix (hence nonsingular) from the given seed.
func RandomDominant(t *testing.T, n int, seed int64) *matrix.Matrix[float64] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := matrix.Build(n, func(r, c int) float64 {
		v := rng.Float64()*2 - 1
		if r == c {
			v += float64(n) * 2
		}
		return v
	})
	require.NoError(t, err)

	return m
}

// RandomMatrix builds a deterministic n×n matrix with entries in [-5, 5).
func RandomMatrix(t *testing.T, n int, seed int64) *matrix.Matrix[float64] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := matrix.Build(n, func(int, int) float64 { return rng.Float64()*10 - 5 })
	require.NoError(t, err)

	return m
}

// requireApprox fails unless want and got agree element-wise within eps.
func requireApprox(t *testing.T, want, got *matrix.Matrix[float64], eps float64) {
	t.Helper()
	require.Truef(t, want.EqualApprox(got, eps), "want %v\n got %v", want, got)
}
