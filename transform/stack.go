// SPDX-License-Identifier: MIT

package transform

import (
	"sync"

	"github.com/katalvlaran/glmath/matrix"
	"github.com/katalvlaran/glmath/vector"
)

// Stack is a LIFO of 4×4 matrices whose top is the current transform.
// It is never empty. The zero value is not usable; construct with NewStack.
type Stack struct {
	mu    sync.RWMutex
	items []*matrix.Matrix[float64]
}

// NewStack returns a stack holding a single identity matrix.
func NewStack() *Stack {
	return &Stack{items: []*matrix.Matrix[float64]{matrix.Identity4.Clone()}}
}

// check4 validates a stack operand and returns a private copy.
func check4(tag string, m *matrix.Matrix[float64]) (*matrix.Matrix[float64], error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, transformErrorf(tag, err)
	}
	if m.Dim() != 4 {
		return nil, transformErrorf(tag, ErrNotMatrix4)
	}

	return m.Clone(), nil
}

// top returns the current matrix. Callers hold s.mu.
func (s *Stack) top() *matrix.Matrix[float64] { return s.items[len(s.items)-1] }

// replaceTop stores m as the current matrix. Callers hold s.mu for writing.
func (s *Stack) replaceTop(m *matrix.Matrix[float64]) { s.items[len(s.items)-1] = m }

// Depth returns the number of matrices on the stack (at least 1).
func (s *Stack) Depth() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.items)
}

// Current returns a copy of the top matrix.
func (s *Stack) Current() *matrix.Matrix[float64] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.top().Clone()
}

// Push duplicates the top matrix.
func (s *Stack) Push() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = append(s.items, s.top().Clone())
}

// PushMatrix pushes a copy of m.
//
// Errors: matrix.ErrNilMatrix, ErrNotMatrix4.
func (s *Stack) PushMatrix(m *matrix.Matrix[float64]) error {
	c, err := check4(opPush, m)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = append(s.items, c)

	return nil
}

// Pop removes the top n matrices. The stack is left unchanged on error.
//
// Errors: matrix.ErrInvalidArgument for n < 1, ErrStackUnderflow when n would
// remove the bottom matrix.
func (s *Stack) Pop(n int) error {
	if n < 1 {
		return transformErrorf(opPop, matrix.ErrInvalidArgument)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if n >= len(s.items) {
		return transformErrorf(opPop, ErrStackUnderflow)
	}
	clear(s.items[len(s.items)-n:])
	s.items = s.items[:len(s.items)-n]

	return nil
}

// Load replaces the top with a copy of m.
//
// Errors: matrix.ErrNilMatrix, ErrNotMatrix4.
func (s *Stack) Load(m *matrix.Matrix[float64]) error {
	c, err := check4(opLoad, m)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.replaceTop(c)

	return nil
}

// LoadElements replaces the top with a matrix built from row-major elements:
// 16 values give a 4×4 matrix, 9 values a 3×3 matrix expanded to 4×4.
//
// Errors: matrix.ErrElementCount.
func (s *Stack) LoadElements(elems ...float64) error {
	var (
		m   *matrix.Matrix[float64]
		err error
	)
	switch len(elems) {
	case 16:
		m, err = matrix.New(4, elems)
	case 9:
		m, err = matrix.New(3, elems)
		if err == nil {
			m, err = m.Expand()
		}
	default:
		err = matrix.ErrElementCount
	}
	if err != nil {
		return transformErrorf(opLoad, err)
	}

	return s.Load(m)
}

// LoadIdentity replaces the top with the identity.
func (s *Stack) LoadIdentity() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.replaceTop(matrix.Identity4.Clone())
}

// apply replaces the top with op(top, m) for a validated 4×4 m.
func (s *Stack) apply(m *matrix.Matrix[float64], op func(a, b *matrix.Matrix[float64]) (*matrix.Matrix[float64], error)) error {
	c, err := check4(opApply, m)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	out, err := op(s.top(), c)
	if err != nil {
		return transformErrorf(opApply, err)
	}
	s.replaceTop(out)

	return nil
}

// Mul post-multiplies the top by m (top = top·m), so m applies first.
//
// Errors: matrix.ErrNilMatrix, ErrNotMatrix4.
func (s *Stack) Mul(m *matrix.Matrix[float64]) error {
	return s.apply(m, (*matrix.Matrix[float64]).Mul)
}

// Add replaces the top with top + m.
//
// Errors: matrix.ErrNilMatrix, ErrNotMatrix4.
func (s *Stack) Add(m *matrix.Matrix[float64]) error {
	return s.apply(m, (*matrix.Matrix[float64]).Add)
}

// Sub replaces the top with top - m.
//
// Errors: matrix.ErrNilMatrix, ErrNotMatrix4.
func (s *Stack) Sub(m *matrix.Matrix[float64]) error {
	return s.apply(m, (*matrix.Matrix[float64]).Sub)
}

// Translate post-multiplies the top by Translation(x, y, z).
func (s *Stack) Translate(x, y, z float64) {
	_ = s.Mul(Translation(x, y, z))
}

// Scale post-multiplies the top by Scale4(x, y, z).
func (s *Stack) Scale(x, y, z float64) {
	_ = s.Mul(Scale4(x, y, z))
}

// RotateAxis post-multiplies the top by Rotation4(angle, axis).
//
// Errors: ErrZeroAxis.
func (s *Stack) RotateAxis(angle float64, axis vector.Vec3) error {
	m, err := Rotation4(angle, axis)
	if err != nil {
		return err
	}

	return s.Mul(m)
}

// Rotate post-multiplies the top by r.RotationMatrix().
//
// Errors: ErrNilRotation, ErrNotMatrix4.
func (s *Stack) Rotate(r Rotation) error {
	if r == nil {
		return transformErrorf(opRotate, ErrNilRotation)
	}
	m := r.RotationMatrix()
	if m == nil {
		return transformErrorf(opRotate, ErrNilRotation)
	}

	return s.Mul(m)
}

// Ortho post-multiplies the top by Ortho(...).
//
// Errors: ErrDegenerateVolume.
func (s *Stack) Ortho(left, right, bottom, top, near, far float64) error {
	m, err := Ortho(left, right, bottom, top, near, far)
	if err != nil {
		return err
	}

	return s.Mul(m)
}

// Perspective post-multiplies the top by Perspective(...).
//
// Errors: ErrDegenerateVolume.
func (s *Stack) Perspective(fovy, aspect, near, far float64) error {
	m, err := Perspective(fovy, aspect, near, far)
	if err != nil {
		return err
	}

	return s.Mul(m)
}

// LookAt post-multiplies the top by LookAt(eye, center, up).
//
// Errors: ErrDegenerateView.
func (s *Stack) LookAt(eye, center, up vector.Vec3) error {
	m, err := LookAt(eye, center, up)
	if err != nil {
		return err
	}

	return s.Mul(m)
}

// With pushes a copy of the top, runs fn and pops it again, even when fn fails.
// fn's error is returned unchanged.
func (s *Stack) With(fn func(*Stack) error) error {
	s.Push()
	depth := s.Depth()
	defer func() {
		// fn may have pushed without popping; drop back below the frame.
		if d := s.Depth(); d >= depth {
			_ = s.Pop(d - depth + 1)
		}
	}()

	return fn(s)
}

// Clone returns an independent deep copy of the stack.
func (s *Stack) Clone() *Stack {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]*matrix.Matrix[float64], len(s.items))
	for i, m := range s.items {
		items[i] = m.Clone()
	}

	return &Stack{items: items}
}
