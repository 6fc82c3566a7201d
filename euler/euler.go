// SPDX-License-Identifier: MIT

// Package euler converts yaw/pitch/roll angle triples into rotation matrices
// and quaternions.
//
// Axes: yaw turns about Y, pitch about X and roll about Z, all counter-clockwise
// in radians. An order lists axes in application order, so the default
// (yaw, pitch, roll) yields M = Roll·Pitch·Yaw for column vectors.
package euler

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/glmath/matrix"
	"github.com/katalvlaran/glmath/quaternion"
	"github.com/katalvlaran/glmath/transform"
	"github.com/katalvlaran/glmath/vector"
)

// ErrUnknownAxis is returned for an axis token that is none of the yaw, pitch
// or roll aliases.
var ErrUnknownAxis = fmt.Errorf("%w: unknown euler axis", matrix.ErrInvalidArgument)

// Axis names one rotation of an Angle. Aliases are accepted wherever an Axis
// is expected: y, h and heading for yaw; p for pitch; r, b and bank for roll.
type Axis string

// Canonical axes.
const (
	Yaw   Axis = "yaw"
	Pitch Axis = "pitch"
	Roll  Axis = "roll"
)

var defaultOrder = [...]Axis{Yaw, Pitch, Roll}

// DefaultOrder returns the order used when Matrix or Quaternion receive none:
// yaw, then pitch, then roll. The result is a fresh slice.
func DefaultOrder() []Axis { return append([]Axis(nil), defaultOrder[:]...) }

var aliases = map[string]Axis{
	"y": Yaw, "yaw": Yaw, "h": Yaw, "heading": Yaw,
	"p": Pitch, "pitch": Pitch,
	"r": Roll, "roll": Roll, "b": Roll, "bank": Roll,
}

// ParseAxis resolves an axis token or alias (case-insensitive).
//
// Errors: ErrUnknownAxis.
func ParseAxis(s string) (Axis, error) {
	a, ok := aliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", fmt.Errorf("euler: ParseAxis(%q): %w", s, ErrUnknownAxis)
	}

	return a, nil
}

// Angle is a yaw/pitch/roll triple in radians.
type Angle struct {
	Yaw, Pitch, Roll float64
}

// axisOf returns the rotation axis and angle for a canonical axis.
func (e Angle) axisOf(a Axis) (vector.Vec3, float64) {
	switch a {
	case Yaw:
		return vector.Y3, e.Yaw
	case Pitch:
		return vector.X3, e.Pitch
	default:
		return vector.Z3, e.Roll
	}
}

// resolve canonicalizes order, substituting the default order when it is empty.
func resolve(order []Axis) ([]Axis, error) {
	if len(order) == 0 {
		return defaultOrder[:], nil
	}
	out := make([]Axis, len(order))
	for i, a := range order {
		c, err := ParseAxis(string(a))
		if err != nil {
			return nil, err
		}
		out[i] = c
	}

	return out, nil
}

// Matrix returns the 4×4 rotation applying the per-axis rotations in order.
//
// Errors: ErrUnknownAxis.
func (e Angle) Matrix(order ...Axis) (*matrix.Matrix[float64], error) {
	axes, err := resolve(order)
	if err != nil {
		return nil, err
	}
	m := matrix.Identity4
	for _, a := range axes {
		axis, angle := e.axisOf(a)
		r, err := transform.Rotation4(angle, axis)
		if err != nil {
			return nil, err
		}
		if m, err = r.Mul(m); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Quaternion returns the unit quaternion applying the per-axis rotations in order.
//
// Errors: ErrUnknownAxis.
func (e Angle) Quaternion(order ...Axis) (quaternion.Quat, error) {
	axes, err := resolve(order)
	if err != nil {
		return quaternion.Quat{}, err
	}
	q := quaternion.Identity()
	for _, a := range axes {
		axis, angle := e.axisOf(a)
		r, err := quaternion.FromAngleAxis(angle, axis)
		if err != nil {
			return quaternion.Quat{}, err
		}
		q = r.Mul(q)
	}

	return q, nil
}

// RotationMatrix returns Matrix() in the default order; it lets an Angle
// drive a transform.Stack.
func (e Angle) RotationMatrix() *matrix.Matrix[float64] {
	m, _ := e.Matrix()
	return m
}

// String implements fmt.Stringer.
func (e Angle) String() string {
	return fmt.Sprintf("Euler Angle (%v, %v, %v)", e.Yaw, e.Pitch, e.Roll)
}
