// SPDX-License-Identifier: MIT

// Package transform builds affine and projection matrices and provides an
// OpenGL-style matrix stack.
//
// Conventions:
//   - Column vectors: a point p is transformed as M·p, so translations live in
//     the last column and M = A·B applies B first.
//   - Builders return fresh float64 matrices from the matrix package; 2D
//     builders are 2×2 (or 3×3 homogeneous), 3D builders are 3×3 or 4×4.
//   - Angles are radians, counter-clockwise about the given axis.
//
// Stack:
//
//	s := transform.NewStack()
//	s.Push()
//	s.Translate(1, 2, 3)
//	_ = s.RotateAxis(math.Pi/2, vector.Z3)
//	m := s.Current() // copy of the top
//	_ = s.Pop(1)     // restores the previous top
//
// The bottom of a Stack always holds one matrix; popping it fails with
// ErrStackUnderflow. All Stack methods are safe for concurrent use.
package transform
