// SPDX-License-Identifier: MIT

// Package matrix: numeric element contract.
//
// Purpose:
//   - Declare the Scalar constraint accepted by Matrix[T].
//   - Provide the few type-dependent helpers the generic kernels need
//     (magnitude, conjugate, real/imaginary parts, float conversion).
//
// Notes:
//   - Arithmetic (+ - * /) and equality are available directly on T; ordering is
//     not (complex values are unordered), so every comparison of magnitudes goes
//     through abs and is performed in float64.

package matrix

import (
	"math"
	"math/cmplx"
)

// Scalar is the set of element types a Matrix may hold.
type Scalar interface {
	float32 | float64 | complex64 | complex128
}

// abs returns |v| as float64 (modulus for complex values).
func abs[T Scalar](v T) float64 {
	switch x := any(v).(type) {
	case float32:
		return math.Abs(float64(x))
	case float64:
		return math.Abs(x)
	case complex64:
		return cmplx.Abs(complex128(x))
	case complex128:
		return cmplx.Abs(x)
	}

	return 0
}

// conj returns the complex conjugate of v; real values are returned unchanged.
func conj[T Scalar](v T) T {
	switch x := any(v).(type) {
	case complex64:
		return any(complex64(cmplx.Conj(complex128(x)))).(T)
	case complex128:
		return any(cmplx.Conj(x)).(T)
	}

	return v
}

// parts splits v into its real and imaginary components.
func parts[T Scalar](v T) (re, im float64) {
	switch x := any(v).(type) {
	case float32:
		return float64(x), 0
	case float64:
		return x, 0
	case complex64:
		return float64(real(x)), float64(imag(x))
	case complex128:
		return real(x), imag(x)
	}

	return 0, 0
}

// fromParts builds a T from real and imaginary components.
// For real element types the imaginary component is dropped.
func fromParts[T Scalar](re, im float64) T {
	var z T
	switch p := any(&z).(type) {
	case *float32:
		*p = float32(re)
	case *float64:
		*p = re
	case *complex64:
		*p = complex(float32(re), float32(im))
	case *complex128:
		*p = complex(re, im)
	}

	return z
}

// FromFloat converts a float64 into the element type T.
func FromFloat[T Scalar](f float64) T {
	return fromParts[T](f, 0)
}

// isFinite reports whether neither component of v is NaN or ±Inf.
func isFinite[T Scalar](v T) bool {
	re, im := parts(v)

	return !math.IsNaN(re) && !math.IsInf(re, 0) && !math.IsNaN(im) && !math.IsInf(im, 0)
}

// roundTo rounds both components of v to the given number of decimal digits.
func roundTo[T Scalar](v T, digits int) T {
	scale := math.Pow(10, float64(digits))
	re, im := parts(v)

	return fromParts[T](math.Round(re*scale)/scale, math.Round(im*scale)/scale)
}
