// SPDX-License-Identifier: MIT

// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/dimension/index checks here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly with their op tag.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Dimension).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateDimension ensures n is one of the supported dimensions.
//
// Errors: ErrBadDimension.
// Complexity: O(1).
func ValidateDimension(n int) error {
	if n < MinDim || n > MaxDim {
		return validatorErrorf("ValidateDimension", ErrBadDimension)
	}

	return nil
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Errors: ErrNilMatrix.
// Complexity: O(1).
func ValidateNotNil[T Scalar](m *Matrix[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameDim ensures a and b have equal dimensions.
// Assumes both are non-nil (caller must ensure).
//
// Errors: ErrDimensionMismatch.
func ValidateSameDim[T Scalar](a, b *Matrix[T]) error {
	if a.n != b.n {
		return validatorErrorf("ValidateSameDim", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinary runs NotNil on both operands and then SameDim.
// Used by Add/Sub/Mul/Solve and the comparison helpers.
func ValidateBinary[T Scalar](a, b *Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}

	return ValidateSameDim(a, b)
}

// ValidateVecLen ensures a vector has exactly n components.
//
// Errors: ErrDimensionMismatch (nil counts as length 0).
func ValidateVecLen[T Scalar](v []T, n int) error {
	if len(v) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateIndex ensures 0 <= i < n.
//
// Errors: ErrOutOfRange.
func ValidateIndex(i, n int) error {
	if i < 0 || i >= n {
		return validatorErrorf("ValidateIndex", ErrOutOfRange)
	}

	return nil
}

// ValidateWritable ensures m is not one of the frozen canonical matrices.
//
// Errors: ErrReadOnly.
func ValidateWritable[T Scalar](m *Matrix[T]) error {
	if m.readOnly {
		return validatorErrorf("ValidateWritable", ErrReadOnly)
	}

	return nil
}

// validateFinite rejects NaN/±Inf elements when the strict policy is on.
func validateFinite[T Scalar](o Options, elems ...T) error {
	if !o.validateNaNInf {
		return nil
	}
	for _, v := range elems {
		if !isFinite(v) {
			return validatorErrorf("validateFinite", ErrNaNInf)
		}
	}

	return nil
}
