// SPDX-License-Identifier: MIT

// Package glmath is a small 3D-graphics math toolkit: fixed-size matrices,
// vectors, quaternions, Euler angles and an OpenGL-style matrix stack.
//
// Everything lives in subpackages:
//
//	matrix/     generic n×n matrices (n ∈ {2,3,4}), LUP, Solve, Inverse
//	vector/     Vec2, Vec3, Vec4 and matrix·vector products
//	quaternion/ Hamilton quaternions, Exp/Log/Pow, Slerp, rotation matrices
//	euler/      yaw/pitch/roll angles with a configurable application order
//	transform/  4×4 builders (translate, scale, rotate, ortho, perspective,
//	            look-at) and a thread-safe Stack of matrices
//	geometry/   axis-aligned Rect and 3D Segment
//	cmd/glmath  CLI: det, inverse, lup, solve and eval of transform scripts
//
// Conventions: matrices are row-major in storage and act on column vectors,
// so translation lives in the last column and a product A·B applies B first.
//
// Quick example:
//
//	st := transform.NewStack()
//	st.Translate(10, 0, 0)
//	st.Scale(2, 2, 2)
//	p, _ := vector.TransformPoint(st.Current(), vector.Vec3{1, 2, 3}) // Vec3[12, 4, 6]
//
//	go get github.com/katalvlaran/glmath
package glmath
