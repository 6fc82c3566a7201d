// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/glmath/matrix"
)

func TestString(t *testing.T) {
	require.Equal(t, "Matrix2[1, 2, 3, 4]", matrix.New2(1.0, 2, 3, 4).String())
	require.Equal(t, "Matrix3[1, 0, 0, 0, 1, 0, 0, 0, 1]", fmt.Sprint(matrix.Identity3))
	require.Equal(t, "Matrix2[0.5, -1.25, 0, 2]", matrix.New2(0.5, -1.25, 0, 2).String())
	require.Equal(t, "Matrix2[(1+2i), (0+0i), (0+0i), (0-1i)]", matrix.New2[complex128](1+2i, 0, 0, -1i).String())

	var nilM *matrix.Matrix[float64]
	require.Equal(t, "Matrix<nil>", nilM.String())
}

func TestText(t *testing.T) {
	m := matrix.New2(1.0, 2, 3, 4)

	s, err := m.Text(matrix.NotationDefault)
	require.NoError(t, err)
	require.Equal(t, m.String(), s)

	s, err = m.Text(matrix.NotationMatrix)
	require.NoError(t, err)
	require.Equal(t, "1\t2\n3\t4", s)

	s, err = matrix.Identity3.Text(matrix.NotationMatrix)
	require.NoError(t, err)
	require.Equal(t, "1\t0\t0\n0\t1\t0\n0\t0\t1", s)

	_, err = m.Text("latex")
	require.ErrorIs(t, err, matrix.ErrUnknownNotation)
	require.ErrorIs(t, err, matrix.ErrInvalidArgument)
}
