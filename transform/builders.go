// SPDX-License-Identifier: MIT

package transform

import (
	"math"

	"github.com/katalvlaran/glmath/matrix"
	"github.com/katalvlaran/glmath/quaternion"
	"github.com/katalvlaran/glmath/vector"
)

// Rotation is anything that can express itself as a 4×4 rotation matrix,
// e.g. quaternion.Quat or euler.Angle.
type Rotation interface {
	RotationMatrix() *matrix.Matrix[float64]
}

// Rotation2 returns the 2×2 counter-clockwise rotation by angle.
func Rotation2(angle float64) *matrix.Matrix[float64] {
	s, c := math.Sincos(angle)

	return matrix.New2(c, -s, s, c)
}

// Scale2 returns diag(x, y).
func Scale2(x, y float64) *matrix.Matrix[float64] {
	return matrix.New2(x, 0, 0, y)
}

// Translation2D returns the 3×3 homogeneous translation by (x, y).
func Translation2D(x, y float64) *matrix.Matrix[float64] {
	return matrix.New3(
		1, 0, x,
		0, 1, y,
		0, 0, 1,
	)
}

// Rotation3 returns the 3×3 rotation by angle about axis.
//
// Errors: ErrZeroAxis.
func Rotation3(angle float64, axis vector.Vec3) (*matrix.Matrix[float64], error) {
	q, err := quaternion.FromAngleAxis(angle, axis)
	if err != nil {
		return nil, transformErrorf(opRotation, err)
	}

	return q.Matrix3(), nil
}

// Scale3 returns diag(x, y, z).
func Scale3(x, y, z float64) *matrix.Matrix[float64] {
	return matrix.New3(
		x, 0, 0,
		0, y, 0,
		0, 0, z,
	)
}

// Rotation4 returns the 4×4 homogeneous rotation by angle about axis.
//
// Errors: ErrZeroAxis.
func Rotation4(angle float64, axis vector.Vec3) (*matrix.Matrix[float64], error) {
	q, err := quaternion.FromAngleAxis(angle, axis)
	if err != nil {
		return nil, transformErrorf(opRotation, err)
	}

	return q.Matrix(), nil
}

// Scale4 returns diag(x, y, z, 1).
func Scale4(x, y, z float64) *matrix.Matrix[float64] {
	return matrix.New4(
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	)
}

// Translation returns the 4×4 translation by (x, y, z).
func Translation(x, y, z float64) *matrix.Matrix[float64] {
	return matrix.New4(
		1, 0, 0, x,
		0, 1, 0, y,
		0, 0, 1, z,
		0, 0, 0, 1,
	)
}

// LookAt returns a right-handed view matrix placing the camera at eye,
// looking toward center with the given up direction (gluLookAt).
//
// Errors: ErrDegenerateView.
func LookAt(eye, center, up vector.Vec3) (*matrix.Matrix[float64], error) {
	d := center.Sub(eye)
	if d.IsZero() {
		return nil, transformErrorf(opLookAt, ErrDegenerateView)
	}
	f := d.Normalize()
	side := f.Cross(up)
	if side.IsZero() {
		return nil, transformErrorf(opLookAt, ErrDegenerateView)
	}
	s := side.Normalize()
	u := s.Cross(f)

	return matrix.New4(
		s[0], s[1], s[2], -s.Dot(eye),
		u[0], u[1], u[2], -u.Dot(eye),
		-f[0], -f[1], -f[2], f.Dot(eye),
		0, 0, 0, 1,
	), nil
}

// Frustum returns the perspective projection for the given clip planes
// (glFrustum).
//
// Errors: ErrDegenerateVolume when left == right, bottom == top or near == far.
func Frustum(left, right, bottom, top, near, far float64) (*matrix.Matrix[float64], error) {
	if left == right || bottom == top || near == far {
		return nil, transformErrorf(opFrustum, ErrDegenerateVolume)
	}
	rl, tb, fn := right-left, top-bottom, far-near

	return matrix.New4(
		2*near/rl, 0, (right+left)/rl, 0,
		0, 2*near/tb, (top+bottom)/tb, 0,
		0, 0, -(far+near)/fn, -2*far*near/fn,
		0, 0, -1, 0,
	), nil
}

// Perspective returns the symmetric perspective projection with vertical field
// of view fovy (radians) and the given aspect ratio (gluPerspective).
//
// Errors: ErrDegenerateVolume.
func Perspective(fovy, aspect, near, far float64) (*matrix.Matrix[float64], error) {
	ymax := near * math.Tan(fovy/2)
	xmax := ymax * aspect
	m, err := Frustum(-xmax, xmax, -ymax, ymax, near, far)
	if err != nil {
		return nil, transformErrorf(opPerspective, ErrDegenerateVolume)
	}

	return m, nil
}

// Ortho returns the orthographic projection for the given clip planes (glOrtho).
//
// Errors: ErrDegenerateVolume when left == right, bottom == top or near == far.
func Ortho(left, right, bottom, top, near, far float64) (*matrix.Matrix[float64], error) {
	if left == right || bottom == top || near == far {
		return nil, transformErrorf(opOrtho, ErrDegenerateVolume)
	}
	rl, tb, fn := right-left, top-bottom, far-near

	return matrix.New4(
		2/rl, 0, 0, -(right+left)/rl,
		0, 2/tb, 0, -(top+bottom)/tb,
		0, 0, -2/fn, -(far+near)/fn,
		0, 0, 0, 1,
	), nil
}

// Viewport maps normalized device coordinates [-1, 1]³ onto the window
// rectangle (x, y, w, h) with depth in [0, 1].
func Viewport(x, y, w, h float64) *matrix.Matrix[float64] {
	return matrix.New4(
		w/2, 0, 0, x+w/2,
		0, h/2, 0, y+h/2,
		0, 0, 0.5, 0.5,
		0, 0, 0, 1,
	)
}
