// SPDX-License-Identifier: MIT

package vector

import "github.com/katalvlaran/glmath/matrix"

// Vec3 is a 3-component vector.
type Vec3 [3]float64

// Unit axes and the zero vector.
var (
	X3    = Vec3{1, 0, 0}
	Y3    = Vec3{0, 1, 0}
	Z3    = Vec3{0, 0, 1}
	Zero3 = Vec3{}
)

// X returns v[0].
func (v Vec3) X() float64 { return v[0] }

// Y returns v[1].
func (v Vec3) Y() float64 { return v[1] }

// Z returns v[2].
func (v Vec3) Z() float64 { return v[2] }

// XY returns the swizzle (x, y).
func (v Vec3) XY() Vec2 { return Vec2{v[0], v[1]} }

// XZ returns the swizzle (x, z).
func (v Vec3) XZ() Vec2 { return Vec2{v[0], v[2]} }

// YZ returns the swizzle (y, z).
func (v Vec3) YZ() Vec2 { return Vec2{v[1], v[2]} }

// Add returns v + w.
func (v Vec3) Add(w Vec3) Vec3 { return Vec3{v[0] + w[0], v[1] + w[1], v[2] + w[2]} }

// Sub returns v - w.
func (v Vec3) Sub(w Vec3) Vec3 { return Vec3{v[0] - w[0], v[1] - w[1], v[2] - w[2]} }

// Neg returns -v.
func (v Vec3) Neg() Vec3 { return Vec3{-v[0], -v[1], -v[2]} }

// Scale returns k·v.
func (v Vec3) Scale(k float64) Vec3 { return Vec3{v[0] * k, v[1] * k, v[2] * k} }

// Div returns v / k.
//
// Errors: ErrDivideByZero when k == 0.
func (v Vec3) Div(k float64) (Vec3, error) {
	if k == 0 {
		return Vec3{}, vectorErrorf(opDiv, ErrDivideByZero)
	}

	return Vec3{v[0] / k, v[1] / k, v[2] / k}, nil
}

// Dot returns v·w.
func (v Vec3) Dot(w Vec3) float64 { return dot(v[:], w[:]) }

// Cross returns v × w.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		v[1]*w[2] - v[2]*w[1],
		v[2]*w[0] - v[0]*w[2],
		v[0]*w[1] - v[1]*w[0],
	}
}

// Magnitude returns the Euclidean length of v.
func (v Vec3) Magnitude() float64 { return magnitude(v[:]) }

// Len is an alias of Magnitude.
func (v Vec3) Len() float64 { return v.Magnitude() }

// SquaredMagnitude returns v·v.
func (v Vec3) SquaredMagnitude() float64 { return v.Dot(v) }

// Normalize returns v / |v|.
func (v Vec3) Normalize() Vec3 { return v.Scale(1 / v.Magnitude()) }

// NormalizeInPlace scales the receiver to unit length.
func (v *Vec3) NormalizeInPlace() { *v = v.Normalize() }

// Angle returns the angle between v and w in radians.
func (v Vec3) Angle(w Vec3) float64 { return angle(v[:], w[:]) }

// IsZero reports whether every component is zero.
func (v Vec3) IsZero() bool { return isZero(v[:]) }

// EqualApprox reports whether every component differs by at most eps.
func (v Vec3) EqualApprox(w Vec3, eps float64) bool { return equalApprox(v[:], w[:], eps) }

// Expand returns (x, y, z, w); Expand(1) gives the homogeneous point.
func (v Vec3) Expand(w float64) Vec4 { return Vec4{v[0], v[1], v[2], w} }

// MulMatrix returns the row-vector product v·m for a 3×3 m.
//
// Errors: ErrDimensionMismatch, matrix.ErrNilMatrix.
func (v Vec3) MulMatrix(m *matrix.Matrix[float64]) (Vec3, error) {
	out, err := mulMatrix(v[:], m)
	if err != nil {
		return Vec3{}, err
	}

	return Vec3(out), nil
}

// Transform3 returns m·v for a 3×3 m.
//
// Errors: ErrDimensionMismatch, matrix.ErrNilMatrix.
func Transform3(m *matrix.Matrix[float64], v Vec3) (Vec3, error) {
	out, err := transform(m, v[:])
	if err != nil {
		return Vec3{}, err
	}

	return Vec3(out), nil
}

// String implements fmt.Stringer.
func (v Vec3) String() string {
	s, _ := text(v[:], NotationDefault)
	return s
}

// Text renders v in the given notation.
func (v Vec3) Text(n Notation) (string, error) { return text(v[:], n) }
