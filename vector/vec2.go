// SPDX-License-Identifier: MIT

package vector

import "github.com/katalvlaran/glmath/matrix"

// Vec2 is a 2-component vector.
type Vec2 [2]float64

// Unit axes and the zero vector.
var (
	X2    = Vec2{1, 0}
	Y2    = Vec2{0, 1}
	Zero2 = Vec2{}
)

// X returns v[0].
func (v Vec2) X() float64 { return v[0] }

// Y returns v[1].
func (v Vec2) Y() float64 { return v[1] }

// YX returns the swizzle (y, x).
func (v Vec2) YX() Vec2 { return Vec2{v[1], v[0]} }

// Add returns v + w.
func (v Vec2) Add(w Vec2) Vec2 { return Vec2{v[0] + w[0], v[1] + w[1]} }

// Sub returns v - w.
func (v Vec2) Sub(w Vec2) Vec2 { return Vec2{v[0] - w[0], v[1] - w[1]} }

// Neg returns -v.
func (v Vec2) Neg() Vec2 { return Vec2{-v[0], -v[1]} }

// Scale returns k·v.
func (v Vec2) Scale(k float64) Vec2 { return Vec2{v[0] * k, v[1] * k} }

// Div returns v / k.
//
// Errors: ErrDivideByZero when k == 0.
func (v Vec2) Div(k float64) (Vec2, error) {
	if k == 0 {
		return Vec2{}, vectorErrorf(opDiv, ErrDivideByZero)
	}

	return Vec2{v[0] / k, v[1] / k}, nil
}

// Dot returns v·w.
func (v Vec2) Dot(w Vec2) float64 { return dot(v[:], w[:]) }

// Magnitude returns the Euclidean length of v.
func (v Vec2) Magnitude() float64 { return magnitude(v[:]) }

// Len is an alias of Magnitude.
func (v Vec2) Len() float64 { return v.Magnitude() }

// SquaredMagnitude returns v·v.
func (v Vec2) SquaredMagnitude() float64 { return v.Dot(v) }

// Normalize returns v / |v|.
func (v Vec2) Normalize() Vec2 { return v.Scale(1 / v.Magnitude()) }

// NormalizeInPlace scales the receiver to unit length.
func (v *Vec2) NormalizeInPlace() { *v = v.Normalize() }

// Angle returns the angle between v and w in radians.
func (v Vec2) Angle(w Vec2) float64 { return angle(v[:], w[:]) }

// IsZero reports whether every component is zero.
func (v Vec2) IsZero() bool { return isZero(v[:]) }

// EqualApprox reports whether every component differs by at most eps.
func (v Vec2) EqualApprox(w Vec2, eps float64) bool { return equalApprox(v[:], w[:], eps) }

// Expand returns (x, y, z).
func (v Vec2) Expand(z float64) Vec3 { return Vec3{v[0], v[1], z} }

// Expand4 returns (x, y, z, w).
func (v Vec2) Expand4(z, w float64) Vec4 { return Vec4{v[0], v[1], z, w} }

// Concat returns (v.x, v.y, w.x, w.y).
func (v Vec2) Concat(w Vec2) Vec4 { return Vec4{v[0], v[1], w[0], w[1]} }

// MulMatrix returns the row-vector product v·m for a 2×2 m.
//
// Errors: ErrDimensionMismatch, matrix.ErrNilMatrix.
func (v Vec2) MulMatrix(m *matrix.Matrix[float64]) (Vec2, error) {
	out, err := mulMatrix(v[:], m)
	if err != nil {
		return Vec2{}, err
	}

	return Vec2(out), nil
}

// Transform2 returns m·v for a 2×2 m.
//
// Errors: ErrDimensionMismatch, matrix.ErrNilMatrix.
func Transform2(m *matrix.Matrix[float64], v Vec2) (Vec2, error) {
	out, err := transform(m, v[:])
	if err != nil {
		return Vec2{}, err
	}

	return Vec2(out), nil
}

// String implements fmt.Stringer.
func (v Vec2) String() string {
	s, _ := text(v[:], NotationDefault)
	return s
}

// Text renders v in the given notation.
//
// Errors: matrix.ErrUnknownNotation.
func (v Vec2) Text(n Notation) (string, error) { return text(v[:], n) }
