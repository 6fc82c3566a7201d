// SPDX-License-Identifier: MIT

package vector

import "github.com/katalvlaran/glmath/matrix"

// Vec4 is a 4-component vector, typically a homogeneous point (w = 1) or
// direction (w = 0).
type Vec4 [4]float64

// Unit axes and the zero vector.
var (
	X4    = Vec4{1, 0, 0, 0}
	Y4    = Vec4{0, 1, 0, 0}
	Z4    = Vec4{0, 0, 1, 0}
	W4    = Vec4{0, 0, 0, 1}
	Zero4 = Vec4{}
)

// X returns v[0].
func (v Vec4) X() float64 { return v[0] }

// Y returns v[1].
func (v Vec4) Y() float64 { return v[1] }

// Z returns v[2].
func (v Vec4) Z() float64 { return v[2] }

// W returns v[3].
func (v Vec4) W() float64 { return v[3] }

func (v Vec4) XY() Vec2  { return Vec2{v[0], v[1]} }
func (v Vec4) XZ() Vec2  { return Vec2{v[0], v[2]} }
func (v Vec4) XW() Vec2  { return Vec2{v[0], v[3]} }
func (v Vec4) YZ() Vec2  { return Vec2{v[1], v[2]} }
func (v Vec4) YW() Vec2  { return Vec2{v[1], v[3]} }
func (v Vec4) ZW() Vec2  { return Vec2{v[2], v[3]} }
func (v Vec4) XYZ() Vec3 { return Vec3{v[0], v[1], v[2]} }
func (v Vec4) XYW() Vec3 { return Vec3{v[0], v[1], v[3]} }
func (v Vec4) XZW() Vec3 { return Vec3{v[0], v[2], v[3]} }
func (v Vec4) YZW() Vec3 { return Vec3{v[1], v[2], v[3]} }

// Add returns v + w.
func (v Vec4) Add(w Vec4) Vec4 {
	return Vec4{v[0] + w[0], v[1] + w[1], v[2] + w[2], v[3] + w[3]}
}

// Sub returns v - w.
func (v Vec4) Sub(w Vec4) Vec4 {
	return Vec4{v[0] - w[0], v[1] - w[1], v[2] - w[2], v[3] - w[3]}
}

// Neg returns -v.
func (v Vec4) Neg() Vec4 { return Vec4{-v[0], -v[1], -v[2], -v[3]} }

// Scale returns k·v.
func (v Vec4) Scale(k float64) Vec4 { return Vec4{v[0] * k, v[1] * k, v[2] * k, v[3] * k} }

// Div returns v / k.
//
// Errors: ErrDivideByZero when k == 0.
func (v Vec4) Div(k float64) (Vec4, error) {
	if k == 0 {
		return Vec4{}, vectorErrorf(opDiv, ErrDivideByZero)
	}

	return Vec4{v[0] / k, v[1] / k, v[2] / k, v[3] / k}, nil
}

// Dot returns v·w.
func (v Vec4) Dot(w Vec4) float64 { return dot(v[:], w[:]) }

// Magnitude returns the Euclidean length of v.
func (v Vec4) Magnitude() float64 { return magnitude(v[:]) }

// Len is an alias of Magnitude.
func (v Vec4) Len() float64 { return v.Magnitude() }

// SquaredMagnitude returns v·v.
func (v Vec4) SquaredMagnitude() float64 { return v.Dot(v) }

// Normalize returns v / |v|.
func (v Vec4) Normalize() Vec4 { return v.Scale(1 / v.Magnitude()) }

// NormalizeInPlace scales the receiver to unit length.
func (v *Vec4) NormalizeInPlace() { *v = v.Normalize() }

// Angle returns the angle between v and w in radians.
func (v Vec4) Angle(w Vec4) float64 { return angle(v[:], w[:]) }

// IsZero reports whether every component is zero.
func (v Vec4) IsZero() bool { return isZero(v[:]) }

// EqualApprox reports whether every component differs by at most eps.
func (v Vec4) EqualApprox(w Vec4, eps float64) bool { return equalApprox(v[:], w[:], eps) }

// Project divides x, y and z by w (perspective divide).
//
// Errors: ErrDivideByZero when w == 0.
func (v Vec4) Project() (Vec3, error) {
	return v.XYZ().Div(v[3])
}

// MulMatrix returns the row-vector product v·m for a 4×4 m.
//
// Errors: ErrDimensionMismatch, matrix.ErrNilMatrix.
func (v Vec4) MulMatrix(m *matrix.Matrix[float64]) (Vec4, error) {
	out, err := mulMatrix(v[:], m)
	if err != nil {
		return Vec4{}, err
	}

	return Vec4(out), nil
}

// Transform4 returns m·v for a 4×4 m.
//
// Errors: ErrDimensionMismatch, matrix.ErrNilMatrix.
func Transform4(m *matrix.Matrix[float64], v Vec4) (Vec4, error) {
	out, err := transform(m, v[:])
	if err != nil {
		return Vec4{}, err
	}

	return Vec4(out), nil
}

// TransformPoint applies a 4×4 m to the point p (w = 1) and returns the
// projected result.
//
// Errors: ErrDimensionMismatch, ErrDivideByZero when the result has w == 0.
func TransformPoint(m *matrix.Matrix[float64], p Vec3) (Vec3, error) {
	h, err := Transform4(m, p.Expand(1))
	if err != nil {
		return Vec3{}, err
	}

	return h.Project()
}

// String implements fmt.Stringer.
func (v Vec4) String() string {
	s, _ := text(v[:], NotationDefault)
	return s
}

// Text renders v in the given notation.
func (v Vec4) Text(n Notation) (string, error) { return text(v[:], n) }
