// SPDX-License-Identifier: MIT

package euler_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/glmath/euler"
	"github.com/katalvlaran/glmath/matrix"
	"github.com/katalvlaran/glmath/transform"
	"github.com/katalvlaran/glmath/vector"
)

func rotate(t *testing.T, m *matrix.Matrix[float64], v vector.Vec3) vector.Vec3 {
	t.Helper()
	out, err := vector.TransformPoint(m, v)
	require.NoError(t, err)
	return out
}

func requireClose(t *testing.T, want, got vector.Vec3) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestParseAxis(t *testing.T) {
	cases := map[string]euler.Axis{
		"y": euler.Yaw, "yaw": euler.Yaw, "h": euler.Yaw, "Heading": euler.Yaw,
		"p": euler.Pitch, "pitch": euler.Pitch,
		"r": euler.Roll, "roll": euler.Roll, "b": euler.Roll, " bank ": euler.Roll,
	}
	for in, want := range cases {
		got, err := euler.ParseAxis(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}

	_, err := euler.ParseAxis("x")
	require.ErrorIs(t, err, euler.ErrUnknownAxis)
	require.ErrorIs(t, err, matrix.ErrInvalidArgument)
}

func TestSingleAxes(t *testing.T) {
	quarter := math.Pi / 2

	yaw, err := euler.Angle{Yaw: quarter}.Matrix()
	require.NoError(t, err)
	requireClose(t, vector.Vec3{0, 0, -1}, rotate(t, yaw, vector.X3))

	pitch, err := euler.Angle{Pitch: quarter}.Matrix()
	require.NoError(t, err)
	requireClose(t, vector.Z3, rotate(t, pitch, vector.Y3))

	roll, err := euler.Angle{Roll: quarter}.Matrix()
	require.NoError(t, err)
	requireClose(t, vector.Y3, rotate(t, roll, vector.X3))

	zero, err := euler.Angle{}.Matrix()
	require.NoError(t, err)
	require.True(t, zero.Equal(matrix.Identity4))
}

func TestOrder(t *testing.T) {
	e := euler.Angle{Yaw: math.Pi / 2, Pitch: math.Pi / 2}

	// Yaw first sends X to -Z, then pitch sends -Z to Y.
	m, err := e.Matrix()
	require.NoError(t, err)
	requireClose(t, vector.Y3, rotate(t, m, vector.X3))

	// Pitch first leaves X alone, then yaw sends it to -Z.
	m, err = e.Matrix(euler.Pitch, "h")
	require.NoError(t, err)
	requireClose(t, vector.Vec3{0, 0, -1}, rotate(t, m, vector.X3))

	// Composition equals the explicit column-vector product.
	yaw, err := transform.Rotation4(e.Yaw, vector.Y3)
	require.NoError(t, err)
	pitch, err := transform.Rotation4(e.Pitch, vector.X3)
	require.NoError(t, err)
	want, err := pitch.Mul(yaw)
	require.NoError(t, err)
	got, err := e.Matrix("y", "p")
	require.NoError(t, err)
	require.True(t, want.EqualApprox(got, 1e-15))

	_, err = e.Matrix("yaw", "spin")
	require.ErrorIs(t, err, euler.ErrUnknownAxis)
	_, err = e.Quaternion("q")
	require.ErrorIs(t, err, euler.ErrUnknownAxis)
}

func TestDefaultOrder(t *testing.T) {
	require.Equal(t, []euler.Axis{euler.Yaw, euler.Pitch, euler.Roll}, euler.DefaultOrder())

	e := euler.Angle{Yaw: 0.3, Pitch: -0.7, Roll: 1.1}
	want, err := e.Matrix(euler.DefaultOrder()...)
	require.NoError(t, err)

	order := euler.DefaultOrder()
	order[0], order[2] = "spin", euler.Yaw
	got, err := e.Matrix()
	require.NoError(t, err)
	require.True(t, want.Equal(got))
	require.Equal(t, euler.Yaw, euler.DefaultOrder()[0])

	_, err = e.Matrix(order...)
	require.ErrorIs(t, err, euler.ErrUnknownAxis)
}

func TestQuaternionMatchesMatrix(t *testing.T) {
	e := euler.Angle{Yaw: 0.4, Pitch: -1.1, Roll: 2.3}
	v := vector.Vec3{1, -2, 0.5}

	for _, order := range [][]euler.Axis{nil, {"r", "p", "y"}, {"pitch", "roll"}} {
		q, err := e.Quaternion(order...)
		require.NoError(t, err)
		require.InDelta(t, 1, q.Norm(), 1e-12)

		m, err := e.Matrix(order...)
		require.NoError(t, err)
		require.True(t, q.Matrix().EqualApprox(m, 1e-12))
		requireClose(t, q.Rotate(v), rotate(t, m, v))
	}
}

func TestRotationMatrixDrivesStack(t *testing.T) {
	e := euler.Angle{Yaw: 0.3, Pitch: 0.2, Roll: 0.1}
	s := transform.NewStack()
	require.NoError(t, s.Rotate(e))

	m, err := e.Matrix()
	require.NoError(t, err)
	require.True(t, s.Current().EqualApprox(m, 1e-15))
	require.True(t, e.RotationMatrix().Equal(m))
}

func TestString(t *testing.T) {
	require.Equal(t, "Euler Angle (1, 0.5, -2)", euler.Angle{Yaw: 1, Pitch: 0.5, Roll: -2}.String())
}
