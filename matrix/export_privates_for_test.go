// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private helpers.
//
// Purpose:
//   - Expose unexported scalar helpers and panic messages to matrix_test ONLY.
//   - The file name ends in _test.go, so nothing here reaches production builds.

// Panic message exports to avoid "magic strings" in tests.
const PanicEpsilonInvalid_TestOnly = panicEpsilonInvalid

var (
	AbsFloat32_TestOnly    = abs[float32]
	AbsComplex128_TestOnly = abs[complex128]
	ConjComplex64_TestOnly = conj[complex64]
	ConjFloat64_TestOnly   = conj[float64]
	RoundTo_TestOnly       = roundTo[complex128]
	IsFinite_TestOnly      = isFinite[complex64]
)
