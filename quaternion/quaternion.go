// SPDX-License-Identifier: MIT

// Package quaternion implements Hamilton quaternions for 3D rotation.
//
// Quat is a value type with no unit-norm invariant; only the rotation helpers
// (Rotate, Matrix, Slerp) assume a unit quaternion. Conversions produce
// column-vector matrices that agree with transform.Rotation4.
package quaternion

import (
	"fmt"
	"math"

	"github.com/katalvlaran/glmath/matrix"
	"github.com/katalvlaran/glmath/vector"
)

// Sentinel errors. All match matrix.ErrInvalidArgument.
var (
	// ErrDivideByZero is returned when dividing by zero or inverting the zero quaternion.
	ErrDivideByZero = matrix.ErrDivideByZero

	// ErrZeroAxis is returned by FromAngleAxis for a zero-length axis.
	ErrZeroAxis = fmt.Errorf("%w: zero rotation axis", matrix.ErrInvalidArgument)
)

// Notation selects a text rendering for Text.
type Notation string

// Supported notations.
const (
	NotationDefault      Notation = ""              // "Quaternion[w, x, y, z]"
	NotationScalarVector Notation = "scalar_vector" // "(w, [x, y, z])"
	NotationVertical     Notation = "vertical"      // one component per line
)

func quatErrorf(tag string, err error) error {
	return fmt.Errorf("quaternion: %s: %w", tag, err)
}

// Quat is the quaternion W + Xi + Yj + Zk.
type Quat struct {
	W, X, Y, Z float64
}

// Identity returns the multiplicative identity (1, 0, 0, 0).
func Identity() Quat { return Quat{W: 1} }

// FromAngleAxis returns the unit quaternion rotating by angle radians
// counter-clockwise about axis (which need not be normalized).
//
// Errors: ErrZeroAxis.
func FromAngleAxis(angle float64, axis vector.Vec3) (Quat, error) {
	if axis.IsZero() {
		return Quat{}, quatErrorf("FromAngleAxis", ErrZeroAxis)
	}
	n := axis.Normalize()
	s, c := math.Sincos(angle / 2)

	return Quat{W: c, X: s * n[0], Y: s * n[1], Z: s * n[2]}, nil
}

// FromVector returns the pure quaternion (0, v).
func FromVector(v vector.Vec3) Quat { return Quat{X: v[0], Y: v[1], Z: v[2]} }

// Real returns the scalar part W.
func (q Quat) Real() float64 { return q.W }

// Imaginary returns the vector part (X, Y, Z).
func (q Quat) Imaginary() vector.Vec3 { return vector.Vec3{q.X, q.Y, q.Z} }

// Vec4 returns (W, X, Y, Z).
func (q Quat) Vec4() vector.Vec4 { return vector.Vec4{q.W, q.X, q.Y, q.Z} }

// Add returns q + r.
func (q Quat) Add(r Quat) Quat { return Quat{q.W + r.W, q.X + r.X, q.Y + r.Y, q.Z + r.Z} }

// AddScalar adds k to the real part only.
func (q Quat) AddScalar(k float64) Quat { return Quat{q.W + k, q.X, q.Y, q.Z} }

// Sub returns q - r.
func (q Quat) Sub(r Quat) Quat { return Quat{q.W - r.W, q.X - r.X, q.Y - r.Y, q.Z - r.Z} }

// SubScalar subtracts k from the real part only.
func (q Quat) SubScalar(k float64) Quat { return q.AddScalar(-k) }

// Neg returns -q.
func (q Quat) Neg() Quat { return Quat{-q.W, -q.X, -q.Y, -q.Z} }

// Scale returns k·q.
func (q Quat) Scale(k float64) Quat { return Quat{q.W * k, q.X * k, q.Y * k, q.Z * k} }

// Div returns q / k.
//
// Errors: ErrDivideByZero when k == 0.
func (q Quat) Div(k float64) (Quat, error) {
	if k == 0 {
		return Quat{}, quatErrorf("Div", ErrDivideByZero)
	}

	return Quat{q.W / k, q.X / k, q.Y / k, q.Z / k}, nil
}

// Mul returns the Hamilton product q·r.
func (q Quat) Mul(r Quat) Quat {
	return Quat{
		W: q.W*r.W - q.X*r.X - q.Y*r.Y - q.Z*r.Z,
		X: q.W*r.X + q.X*r.W + q.Y*r.Z - q.Z*r.Y,
		Y: q.W*r.Y + q.Y*r.W + q.Z*r.X - q.X*r.Z,
		Z: q.W*r.Z + q.Z*r.W + q.X*r.Y - q.Y*r.X,
	}
}

// Quo returns q·r⁻¹.
//
// Errors: ErrDivideByZero when r is zero.
func (q Quat) Quo(r Quat) (Quat, error) {
	inv, err := r.Inverse()
	if err != nil {
		return Quat{}, err
	}

	return q.Mul(inv), nil
}

// Conjugate returns (W, -X, -Y, -Z).
func (q Quat) Conjugate() Quat { return Quat{q.W, -q.X, -q.Y, -q.Z} }

// ConjugateInPlace conjugates the receiver.
func (q *Quat) ConjugateInPlace() { *q = q.Conjugate() }

// Dot returns the 4D dot product of q and r.
func (q Quat) Dot(r Quat) float64 { return q.W*r.W + q.X*r.X + q.Y*r.Y + q.Z*r.Z }

// SquaredNorm returns |q|².
func (q Quat) SquaredNorm() float64 { return q.Dot(q) }

// Norm returns |q|.
func (q Quat) Norm() float64 { return math.Sqrt(q.SquaredNorm()) }

// Inverse returns q⁻¹ = conj(q) / |q|², so that q·q⁻¹ = 1 for any nonzero q.
//
// Errors: ErrDivideByZero for the zero quaternion.
func (q Quat) Inverse() (Quat, error) {
	inv, err := q.Conjugate().Div(q.SquaredNorm())
	if err != nil {
		return Quat{}, quatErrorf("Inverse", ErrDivideByZero)
	}

	return inv, nil
}

// Normalize returns q / |q|. The zero quaternion yields NaN components.
func (q Quat) Normalize() Quat { return q.Scale(1 / q.Norm()) }

// NormalizeInPlace scales the receiver to unit norm.
func (q *Quat) NormalizeInPlace() { *q = q.Normalize() }

// Difference returns r·q⁻¹, the rotation taking q to r.
//
// Errors: ErrDivideByZero when q is zero.
func (q Quat) Difference(r Quat) (Quat, error) {
	return r.Quo(q)
}

// Exp returns e^q.
func (q Quat) Exp() Quat {
	a := q.Imaginary().Magnitude()
	ew := math.Exp(q.W)
	if a == 0 {
		return Quat{W: ew}
	}
	sa, ca := math.Sincos(a)
	s := ew * sa / a

	return Quat{ew * ca, q.X * s, q.Y * s, q.Z * s}
}

// Log returns the principal natural logarithm of q. For a negative real q the
// imaginary part is π along the X axis.
func (q Quat) Log() Quat {
	nv := q.X*q.X + q.Y*q.Y + q.Z*q.Z
	nq := math.Sqrt(q.W*q.W + nv)
	if nv == 0 {
		if q.W < 0 {
			return Quat{W: math.Log(-q.W), X: math.Pi}
		}
		return Quat{W: math.Log(q.W)}
	}
	s := math.Acos(math.Max(-1, math.Min(1, q.W/nq))) / math.Sqrt(nv)

	return Quat{math.Log(nq), q.X * s, q.Y * s, q.Z * s}
}

// Pow returns q^p = exp(p·log q).
func (q Quat) Pow(p float64) Quat { return q.Log().Scale(p).Exp() }

// Slerp interpolates between q0 (t = 0) and q1 (t = 1) as (q1·q0⁻¹)^t·q0.
//
// Errors: ErrDivideByZero when q0 is zero.
func Slerp(q0, q1 Quat, t float64) (Quat, error) {
	d, err := q1.Quo(q0)
	if err != nil {
		return Quat{}, err
	}

	return d.Pow(t).Mul(q0), nil
}

// Rotate returns v rotated by q, computed as q·(0, v)·q⁻¹.
// The zero quaternion yields NaN components.
func (q Quat) Rotate(v vector.Vec3) vector.Vec3 {
	inv := q.Conjugate().Scale(1 / q.SquaredNorm())

	return q.Mul(FromVector(v)).Mul(inv).Imaginary()
}

// rotationElems returns the row-major 3×3 rotation block of a unit q.
func (q Quat) rotationElems() [9]float64 {
	xx, yy, zz := 2*q.X*q.X, 2*q.Y*q.Y, 2*q.Z*q.Z
	xy, xz, yz := 2*q.X*q.Y, 2*q.X*q.Z, 2*q.Y*q.Z
	wx, wy, wz := 2*q.W*q.X, 2*q.W*q.Y, 2*q.W*q.Z

	return [9]float64{
		1 - yy - zz, xy - wz, xz + wy,
		xy + wz, 1 - xx - zz, yz - wx,
		xz - wy, yz + wx, 1 - xx - yy,
	}
}

// Matrix3 returns the 3×3 rotation matrix of a unit q.
func (q Quat) Matrix3() *matrix.Matrix[float64] {
	e := q.rotationElems()

	return matrix.New3(e[0], e[1], e[2], e[3], e[4], e[5], e[6], e[7], e[8])
}

// Matrix returns the 4×4 homogeneous rotation matrix of a unit q.
func (q Quat) Matrix() *matrix.Matrix[float64] {
	e := q.rotationElems()

	return matrix.New4(
		e[0], e[1], e[2], 0,
		e[3], e[4], e[5], 0,
		e[6], e[7], e[8], 0,
		0, 0, 0, 1,
	)
}

// RotationMatrix returns Matrix(); it lets a Quat drive a transform stack.
func (q Quat) RotationMatrix() *matrix.Matrix[float64] { return q.Matrix() }

// EqualApprox reports whether every component differs by at most eps.
func (q Quat) EqualApprox(r Quat, eps float64) bool {
	return q.Vec4().EqualApprox(r.Vec4(), eps)
}

// String implements fmt.Stringer.
func (q Quat) String() string {
	return fmt.Sprintf("Quaternion[%v, %v, %v, %v]", q.W, q.X, q.Y, q.Z)
}

// Text renders q in the given notation.
//
// Errors: matrix.ErrUnknownNotation.
func (q Quat) Text(n Notation) (string, error) {
	switch n {
	case NotationDefault:
		return q.String(), nil
	case NotationScalarVector:
		return fmt.Sprintf("(%v, [%v, %v, %v])", q.W, q.X, q.Y, q.Z), nil
	case NotationVertical:
		return fmt.Sprintf("%v\n%v\n%v\n%v", q.W, q.X, q.Y, q.Z), nil
	}

	return "", quatErrorf("Text", matrix.ErrUnknownNotation)
}
