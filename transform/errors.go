// SPDX-License-Identifier: MIT

package transform

import (
	"fmt"

	"github.com/katalvlaran/glmath/matrix"
	"github.com/katalvlaran/glmath/quaternion"
)

// Sentinel errors. All match matrix.ErrInvalidArgument via errors.Is.
var (
	// ErrNotMatrix4 is returned when a Stack operand is not a 4×4 matrix.
	ErrNotMatrix4 = fmt.Errorf("%w: stack operand must be 4x4", matrix.ErrDimensionMismatch)

	// ErrStackUnderflow is returned by Pop when it would remove the bottom matrix.
	ErrStackUnderflow = fmt.Errorf("%w: matrix stack underflow", matrix.ErrInvalidArgument)

	// ErrNilRotation is returned by Stack.Rotate for a nil Rotation or a
	// Rotation that yields no matrix.
	ErrNilRotation = fmt.Errorf("%w: nil rotation", matrix.ErrInvalidArgument)

	// ErrDegenerateVolume is returned by Frustum, Ortho and Perspective when the
	// view volume has zero width, height or depth.
	ErrDegenerateVolume = fmt.Errorf("%w: degenerate view volume", matrix.ErrInvalidArgument)

	// ErrDegenerateView is returned by LookAt when eye equals center or up is
	// parallel to the view direction.
	ErrDegenerateView = fmt.Errorf("%w: degenerate camera basis", matrix.ErrInvalidArgument)

	// ErrZeroAxis is returned by axis-angle builders for a zero-length axis.
	ErrZeroAxis = quaternion.ErrZeroAxis
)

const (
	opRotation    = "Rotation"
	opLookAt      = "LookAt"
	opFrustum     = "Frustum"
	opOrtho       = "Ortho"
	opPerspective = "Perspective"
	opPush        = "Stack.PushMatrix"
	opPop         = "Stack.Pop"
	opLoad        = "Stack.Load"
	opApply       = "Stack.Apply"
	opRotate      = "Stack.Rotate"
)

func transformErrorf(tag string, err error) error {
	return fmt.Errorf("transform: %s: %w", tag, err)
}
