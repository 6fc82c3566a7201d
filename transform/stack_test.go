// SPDX-License-Identifier: MIT

package transform_test

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/glmath/matrix"
	"github.com/katalvlaran/glmath/quaternion"
	"github.com/katalvlaran/glmath/transform"
	"github.com/katalvlaran/glmath/vector"
)

type nilRotation struct{}

func (nilRotation) RotationMatrix() *matrix.Matrix[float64] { return nil }

func TestStack_PushTranslatePop(t *testing.T) {
	s := transform.NewStack()
	require.Equal(t, 1, s.Depth())
	require.True(t, s.Current().Equal(matrix.Identity4))

	s.Push()
	require.Equal(t, 2, s.Depth())
	s.Translate(1, 2, 3)
	require.True(t, s.Current().Equal(transform.Translation(1, 2, 3)))

	require.NoError(t, s.Pop(1))
	require.Equal(t, 1, s.Depth())
	require.True(t, s.Current().Equal(matrix.Identity4))
}

func TestStack_Pop(t *testing.T) {
	s := transform.NewStack()
	err := s.Pop(1)
	require.ErrorIs(t, err, transform.ErrStackUnderflow)
	require.ErrorIs(t, err, matrix.ErrInvalidArgument)

	s.Push()
	s.Push()
	require.ErrorIs(t, s.Pop(3), transform.ErrStackUnderflow)
	require.Equal(t, 3, s.Depth(), "failed pop leaves the stack unchanged")
	require.ErrorIs(t, s.Pop(0), matrix.ErrInvalidArgument)

	require.NoError(t, s.Pop(2))
	require.Equal(t, 1, s.Depth())
}

func TestStack_CurrentIsCopy(t *testing.T) {
	s := transform.NewStack()
	c := s.Current()
	require.False(t, c.IsReadOnly())
	require.NoError(t, c.Set(0, 3, 42))
	require.True(t, s.Current().Equal(matrix.Identity4))
}

func TestStack_PushMatrixAndLoad(t *testing.T) {
	s := transform.NewStack()
	m := transform.Scale4(2, 2, 2)
	require.NoError(t, s.PushMatrix(m))
	require.Equal(t, 2, s.Depth())
	require.True(t, s.Current().Equal(m))

	// The stack keeps its own copy.
	require.NoError(t, m.Set(0, 0, 9))
	require.Equal(t, 2.0, s.Current().Elements()[0])

	require.NoError(t, s.Load(transform.Translation(1, 0, 0)))
	require.Equal(t, 2, s.Depth())
	require.True(t, s.Current().Equal(transform.Translation(1, 0, 0)))

	s.LoadIdentity()
	require.True(t, s.Current().Equal(matrix.Identity4))

	err := s.Load(matrix.Identity3)
	require.ErrorIs(t, err, transform.ErrNotMatrix4)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.ErrorIs(t, s.PushMatrix(nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, s.Mul(matrix.Identity2), transform.ErrNotMatrix4)
}

func TestStack_LoadElements(t *testing.T) {
	s := transform.NewStack()
	require.NoError(t, s.LoadElements(
		1, 0, 0, 5,
		0, 1, 0, 6,
		0, 0, 1, 7,
		0, 0, 0, 1,
	))
	require.True(t, s.Current().Equal(transform.Translation(5, 6, 7)))

	require.NoError(t, s.LoadElements(2, 0, 0, 0, 3, 0, 0, 0, 4))
	require.True(t, s.Current().Equal(transform.Scale4(2, 3, 4)))

	require.ErrorIs(t, s.LoadElements(1, 2, 3, 4, 5), matrix.ErrElementCount)
}

func TestStack_Composition(t *testing.T) {
	s := transform.NewStack()
	s.Translate(1, 0, 0)
	s.Scale(2, 2, 2)

	// The last operation applies first: scale, then translate.
	got, err := vector.TransformPoint(s.Current(), vector.Vec3{1, 1, 1})
	require.NoError(t, err)
	require.Equal(t, vector.Vec3{3, 2, 2}, got)

	require.NoError(t, s.Add(matrix.Identity4))
	require.NoError(t, s.Sub(matrix.Identity4))
	want, err := transform.Translation(1, 0, 0).Mul(transform.Scale4(2, 2, 2))
	require.NoError(t, err)
	require.True(t, s.Current().Equal(want))
}

func TestStack_Rotate(t *testing.T) {
	axis := vector.Vec3{0, 1, 1}
	q, err := quaternion.FromAngleAxis(0.6, axis)
	require.NoError(t, err)

	a := transform.NewStack()
	require.NoError(t, a.Rotate(q))
	b := transform.NewStack()
	require.NoError(t, b.RotateAxis(0.6, axis))
	require.True(t, a.Current().Equal(b.Current()))

	require.ErrorIs(t, a.Rotate(nil), transform.ErrNilRotation)
	require.ErrorIs(t, a.Rotate(nilRotation{}), transform.ErrNilRotation)
	require.ErrorIs(t, a.RotateAxis(1, vector.Zero3), transform.ErrZeroAxis)
	require.True(t, a.Current().Equal(b.Current()), "failed rotations leave the top unchanged")
}

func TestStack_Projections(t *testing.T) {
	s := transform.NewStack()
	require.NoError(t, s.Perspective(math.Pi/2, 1, 1, 3))
	p, err := transform.Perspective(math.Pi/2, 1, 1, 3)
	require.NoError(t, err)
	require.True(t, s.Current().Equal(p))

	s.LoadIdentity()
	require.NoError(t, s.Ortho(-1, 1, -1, 1, -1, 1))
	require.True(t, s.Current().Equal(transform.Scale4(1, 1, -1)))

	s.LoadIdentity()
	require.NoError(t, s.LookAt(vector.Vec3{0, 0, 5}, vector.Zero3, vector.Y3))
	require.True(t, s.Current().EqualApprox(transform.Translation(0, 0, -5), tol))

	require.ErrorIs(t, s.Ortho(0, 0, 0, 1, 0, 1), transform.ErrDegenerateVolume)
	require.ErrorIs(t, s.Perspective(0, 1, 1, 2), transform.ErrDegenerateVolume)
	require.ErrorIs(t, s.LookAt(vector.X3, vector.X3, vector.Y3), transform.ErrDegenerateView)
}

func TestStack_With(t *testing.T) {
	s := transform.NewStack()
	s.Translate(1, 1, 1)
	before := s.Current()

	err := s.With(func(s *transform.Stack) error {
		s.Scale(3, 3, 3)
		require.Equal(t, 2, s.Depth())
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, 1, s.Depth())
	require.True(t, s.Current().Equal(before))

	boom := errors.New("boom")
	err = s.With(func(s *transform.Stack) error {
		s.Push()
		s.Translate(5, 0, 0)
		return boom
	})
	require.ErrorIs(t, err, boom)
	require.Equal(t, 1, s.Depth())
	require.True(t, s.Current().Equal(before))
}

func TestStack_Clone(t *testing.T) {
	s := transform.NewStack()
	s.Push()
	s.Translate(1, 2, 3)

	c := s.Clone()
	c.Scale(2, 2, 2)
	require.NoError(t, c.Pop(1))

	require.Equal(t, 2, s.Depth())
	require.True(t, s.Current().Equal(transform.Translation(1, 2, 3)))
	require.Equal(t, 1, c.Depth())
}

func TestStack_ConcurrentTranslate(t *testing.T) {
	s := transform.NewStack()
	const workers = 64

	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			s.Translate(1, 0, 0)
			_ = s.Current()
			_ = s.Depth()
		}()
	}
	wg.Wait()

	require.True(t, s.Current().Equal(transform.Translation(workers, 0, 0)))
}
