// SPDX-License-Identifier: MIT

// Package vector implements 2, 3 and 4 component float64 vectors for
// graphics math.
//
// Vec2, Vec3 and Vec4 are arrays, so they are plain values: copying is cheap,
// == compares components, and every method except the InPlace variants
// returns a fresh value.
//
// Products with matrices use the matrix package:
//
//	p := vector.Transform4(m, vector.Vec4{1, 2, 3, 1}) // m·p, column vector
//	q := p.MulMatrix(m)                                // pᵀ·m, row vector
//
// Normalizing a zero vector follows IEEE rules and yields NaN components;
// check IsZero first when the input may be degenerate.
package vector

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/glmath/matrix"
)

// Sentinel errors. Both also match matrix.ErrInvalidArgument.
var (
	// ErrDivideByZero is returned by Div with a zero divisor.
	ErrDivideByZero = matrix.ErrDivideByZero

	// ErrDimensionMismatch is returned when a matrix or slice has the wrong size.
	ErrDimensionMismatch = matrix.ErrDimensionMismatch
)

// Notation selects a text rendering for Text.
type Notation string

// Supported notations.
const (
	NotationDefault   Notation = ""          // "Vec3[1, 2, 3]"
	NotationRow       Notation = "row"       // "[1\t2\t3]"
	NotationColumn    Notation = "column"    // "1\n2\n3"
	NotationCartesian Notation = "cartesian" // "(1, 2, 3)"
)

const (
	opDiv       = "Div"
	opDot       = "Dot"
	opTransform = "Transform"
	opMulMatrix = "MulMatrix"
	opText      = "Text"
)

func vectorErrorf(tag string, err error) error {
	return fmt.Errorf("vector: %s: %w", tag, err)
}

// Dot returns a·b for equally sized slices.
//
// Errors: ErrDimensionMismatch.
func Dot(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, vectorErrorf(opDot, ErrDimensionMismatch)
	}

	return dot(a, b), nil
}

func dot(a, b []float64) float64 {
	var sum float64
	for i, x := range a {
		sum += x * b[i]
	}

	return sum
}

func magnitude(v []float64) float64 {
	return math.Sqrt(dot(v, v))
}

func isZero(v []float64) bool {
	for _, x := range v {
		if x != 0 {
			return false
		}
	}

	return true
}

// angle returns the angle between a and b in radians, clamped against rounding.
func angle(a, b []float64) float64 {
	c := dot(a, b) / (magnitude(a) * magnitude(b))

	return math.Acos(math.Max(-1, math.Min(1, c)))
}

func equalApprox(a, b []float64, eps float64) bool {
	for i, x := range a {
		if math.Abs(x-b[i]) > eps {
			return false
		}
	}

	return true
}

func join(v []float64, sep string) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = fmt.Sprint(x)
	}

	return strings.Join(parts, sep)
}

func text(v []float64, n Notation) (string, error) {
	switch n {
	case NotationDefault:
		return fmt.Sprintf("Vec%d[%s]", len(v), join(v, ", ")), nil
	case NotationRow:
		return "[" + join(v, "\t") + "]", nil
	case NotationColumn:
		return join(v, "\n"), nil
	case NotationCartesian:
		return "(" + join(v, ", ") + ")", nil
	}

	return "", vectorErrorf(opText, matrix.ErrUnknownNotation)
}

// transform computes m·v for a column vector v.
func transform(m *matrix.Matrix[float64], v []float64) ([]float64, error) {
	out, err := m.MulVec(v)
	if err != nil {
		return nil, vectorErrorf(opTransform, err)
	}

	return out, nil
}

// mulMatrix computes v·m for a row vector v.
func mulMatrix(v []float64, m *matrix.Matrix[float64]) ([]float64, error) {
	out, err := m.VecMul(v)
	if err != nil {
		return nil, vectorErrorf(opMulMatrix, err)
	}

	return out, nil
}
