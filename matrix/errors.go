// SPDX-License-Identifier: MIT

// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel should panic on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & CATEGORIES
// ---------------------------
// Two category roots exist: ErrInvalidArgument and ErrTypeMismatch. Every
// specific sentinel below wraps exactly one root, so callers may match either
// the precise condition (errors.Is(err, ErrSingular)) or the whole category
// (errors.Is(err, ErrInvalidArgument)). Other packages of this module build
// their own sentinels on top of these roots.
//
// ERROR PRIORITY (enforced in tests):
// nil -> dimension -> element count / index -> NaN policy -> numeric (singular, divide by zero).

var (
	// ErrInvalidArgument is the category root for every argument that cannot be
	// accepted: wrong counts, bad indices, singular operands, unknown tokens.
	ErrInvalidArgument = errors.New("matrix: invalid argument")

	// ErrTypeMismatch is the category root for operands of the wrong kind, e.g. a
	// scalar where a matrix is required in a dynamically typed script.
	ErrTypeMismatch = errors.New("matrix: type mismatch")
)

var (
	// ErrBadDimension is returned when a dimension is not one of 2, 3 or 4.
	ErrBadDimension = fmt.Errorf("%w: dimension must be 2, 3 or 4", ErrInvalidArgument)

	// ErrElementCount is returned when the number of elements, rows or columns
	// supplied to a constructor does not match the dimension.
	ErrElementCount = fmt.Errorf("%w: wrong number of elements", ErrInvalidArgument)

	// ErrOutOfRange indicates that a row, column or flat index is outside [0, n).
	ErrOutOfRange = fmt.Errorf("%w: index out of range", ErrInvalidArgument)

	// ErrDimensionMismatch indicates operands of different dimensions.
	ErrDimensionMismatch = fmt.Errorf("%w: dimension mismatch", ErrInvalidArgument)

	// ErrDivideByZero is returned by scalar division with a zero divisor.
	ErrDivideByZero = fmt.Errorf("%w: divide by zero", ErrInvalidArgument)

	// ErrSingular is returned by Inverse, Div, LUP and Solve on a matrix whose
	// determinant is zero.
	ErrSingular = fmt.Errorf("%w: determinant is zero", ErrInvalidArgument)

	// ErrUnknownTraversal signals an unrecognized iteration mode token.
	ErrUnknownTraversal = fmt.Errorf("%w: unknown traversal mode", ErrInvalidArgument)

	// ErrUnknownNotation signals an unrecognized string notation.
	ErrUnknownNotation = fmt.Errorf("%w: unknown notation", ErrInvalidArgument)

	// ErrNaNInf signals a NaN or ±Inf element under the strict numeric policy
	// (see WithValidateNaNInf).
	ErrNaNInf = fmt.Errorf("%w: NaN or Inf encountered", ErrInvalidArgument)

	// ErrReadOnly is returned when a frozen matrix (e.g. Identity4) is mutated.
	ErrReadOnly = fmt.Errorf("%w: matrix is read-only", ErrInvalidArgument)

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = fmt.Errorf("%w: nil matrix", ErrInvalidArgument)

	// ErrNilFunc indicates that Build or Map received a nil callback.
	ErrNilFunc = fmt.Errorf("%w: nil function", ErrInvalidArgument)
)
