// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/glmath/matrix"
)

func TestAddSub(t *testing.T) {
	a := MustNew(t, 2, 1.0, 2, 3, 4)
	b := MustNew(t, 2, 5.0, 6, 7, 8)

	sum, err := a.Add(b)
	require.NoError(t, err)
	require.Equal(t, []float64{6, 8, 10, 12}, sum.Elements())

	diff, err := b.Sub(a)
	require.NoError(t, err)
	require.Equal(t, []float64{4, 4, 4, 4}, diff.Elements())

	// Operands untouched.
	require.Equal(t, []float64{1, 2, 3, 4}, a.Elements())

	_, err = a.Add(matrix.Identity3)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = a.Sub(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestNegScaleDivScalar(t *testing.T) {
	a := MustNew(t, 2, 1.0, -2, 3, 4)
	require.Equal(t, []float64{-1, 2, -3, -4}, a.Neg().Elements())
	require.Equal(t, []float64{2, -4, 6, 8}, a.Scale(2).Elements())

	half, err := a.DivScalar(2)
	require.NoError(t, err)
	require.Equal(t, []float64{0.5, -1, 1.5, 2}, half.Elements())

	_, err = a.DivScalar(0)
	require.ErrorIs(t, err, matrix.ErrDivideByZero)
	require.ErrorIs(t, err, matrix.ErrInvalidArgument)
	require.Contains(t, err.Error(), "divide by zero")
}

func TestMul(t *testing.T) {
	a := MustNew(t, 2, 1.0, 2, 3, 4)
	b := MustNew(t, 2, 2.0, 0, 1, 2)
	require.Equal(t, []float64{4, 4, 10, 8}, MustMul(t, a, b).Elements())

	_, err := a.Mul(matrix.Identity4)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestMul_IdentityLaw(t *testing.T) {
	for _, n := range dims {
		a := RandomMatrix(t, n, int64(n))
		id := MustIdentity(t, n)
		require.True(t, MustMul(t, a, id).Equal(a), "A·I, n=%d", n)
		require.True(t, MustMul(t, id, a).Equal(a), "I·A, n=%d", n)
	}
}

func TestMulVec_VecMul(t *testing.T) {
	a := MustNew(t, 2, 1.0, 2, 3, 4)

	col, err := a.MulVec([]float64{1, 1})
	require.NoError(t, err)
	require.Equal(t, []float64{3, 7}, col)

	row, err := a.VecMul([]float64{1, 1})
	require.NoError(t, err)
	require.Equal(t, []float64{4, 6}, row)

	_, err = a.MulVec([]float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = a.VecMul(nil)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// A matrix divided by itself yields the identity.
func TestDiv_SelfIsIdentity(t *testing.T) {
	a := MustNew(t, 2, 1.0, 2, 3, 4)
	q, err := a.Div(a)
	require.NoError(t, err)
	requireApprox(t, matrix.Identity2, q, tol)
}

func TestDiv_RecoversFactor(t *testing.T) {
	for _, n := range dims {
		x := RandomMatrix(t, n, 10+int64(n))
		b := RandomDominant(t, n, 20+int64(n))
		xb := MustMul(t, x, b)

		got, err := xb.Div(b)
		require.NoError(t, err)
		requireApprox(t, x, got, 1e-10)
	}

	_, err := matrix.Identity2.Div(MustNew(t, 2, 1.0, 2, 2, 4))
	require.ErrorIs(t, err, matrix.ErrSingular)
}

func TestScalarDiv(t *testing.T) {
	a := MustNew(t, 2, 4.0, 7, 2, 6)
	got, err := matrix.ScalarDiv(10.0, a)
	require.NoError(t, err)
	// a⁻¹ = [[0.6, -0.7], [-0.2, 0.4]]
	requireApprox(t, MustNew(t, 2, 6.0, -7, -2, 4), got, tol)

	_, err = matrix.ScalarDiv(1.0, matrix.Zero2)
	require.ErrorIs(t, err, matrix.ErrSingular)
}

func TestTrace(t *testing.T) {
	require.Equal(t, 15.0, MustNew(t, 3, 1.0, 2, 3, 4, 5, 6, 7, 8, 9).Trace())
	var nilM *matrix.Matrix[float64]
	require.Equal(t, 0.0, nilM.Trace())
}

func TestTranspose_Laws(t *testing.T) {
	for _, n := range dims {
		a := RandomMatrix(t, n, 30+int64(n))
		b := RandomMatrix(t, n, 40+int64(n))

		require.True(t, a.Transpose().Transpose().Equal(a))

		left := MustMul(t, a, b).Transpose()
		right := MustMul(t, b.Transpose(), a.Transpose())
		requireApprox(t, left, right, tol)

		require.InDelta(t, a.Determinant(), a.Transpose().Determinant(), 1e-9)
	}
}

func TestTransposeInPlace(t *testing.T) {
	a := MustNew(t, 3, 1.0, 2, 3, 4, 5, 6, 7, 8, 9)
	want := a.Transpose()
	require.NoError(t, a.TransposeInPlace())
	require.True(t, a.Equal(want))

	var nilM *matrix.Matrix[float64]
	require.ErrorIs(t, nilM.TransposeInPlace(), matrix.ErrNilMatrix)
}

func TestComplexHelpers(t *testing.T) {
	m := matrix.New2[complex128](1+2i, 1i, 3, 4-1i)

	require.Equal(t, []complex128{1 - 2i, -1i, 3, 4 + 1i}, m.Conjugate().Elements())
	require.Equal(t, []complex128{1 - 2i, 3, -1i, 4 + 1i}, m.Adjoint().Elements())
	require.Equal(t, []complex128{1, 0, 3, 4}, m.Real().Elements())
	require.Equal(t, []complex128{2, 1, 0, -1}, m.Imag().Elements())
	require.False(t, m.IsReal())
	require.True(t, m.Real().IsReal())

	c := m.Clone()
	require.NoError(t, c.ConjugateInPlace())
	require.True(t, c.Equal(m.Conjugate()))

	// Real element types: conjugate is a copy, imaginary part is zero.
	r := MustNew(t, 2, 1.0, 2, 3, 4)
	require.True(t, r.Conjugate().Equal(r))
	require.True(t, r.Imag().IsZero())
	require.True(t, r.Adjoint().Equal(r.Transpose()))
}

func TestRoundAndMap(t *testing.T) {
	m := MustNew(t, 2, 1.23456, -2.5, 0.004, 9.999)
	require.Equal(t, []float64{1.23, -2.5, 0, 10}, m.Round(2).Elements())

	sq, err := m.Map(func(v float64) float64 { return v * v })
	require.NoError(t, err)
	require.InDelta(t, 6.25, sq.Elements()[1], 1e-15)

	_, err = m.Map(nil)
	require.ErrorIs(t, err, matrix.ErrNilFunc)
}
