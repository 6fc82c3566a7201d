// SPDX-License-Identifier: MIT

// Package geometry provides axis-aligned rectangles and 3D line segments on
// top of the vector package.
//
// Rect uses screen coordinates: +Y points down, so Top == Y and
// Bottom == Y + Height.
package geometry

import (
	"fmt"
	"math"

	"github.com/katalvlaran/glmath/matrix"
	"github.com/katalvlaran/glmath/vector"
)

// ErrUnknownFormat is returned by Rect.Vertices for an unrecognized format.
var ErrUnknownFormat = fmt.Errorf("%w: unknown vertex format", matrix.ErrInvalidArgument)

// VertexFormat selects the corner order produced by Rect.Vertices.
type VertexFormat string

const (
	// Strip orders corners for a triangle strip: TL, TR, BL, BR.
	Strip VertexFormat = "strip"
	// Cycle orders corners around the perimeter: TL, TR, BR, BL.
	Cycle VertexFormat = "cycle"
)

// Rect is an axis-aligned rectangle anchored at its top-left corner (X, Y).
type Rect struct {
	X, Y, Width, Height float64
}

// RectFromPoints returns the rectangle spanned by two opposite corners given
// in any order.
func RectFromPoints(p1, p2 vector.Vec2) Rect {
	x, y := math.Min(p1[0], p2[0]), math.Min(p1[1], p2[1])

	return Rect{
		X:      x,
		Y:      y,
		Width:  math.Max(p1[0], p2[0]) - x,
		Height: math.Max(p1[1], p2[1]) - y,
	}
}

// RectFromCenter returns the width×height rectangle centred on c.
func RectFromCenter(c vector.Vec2, width, height float64) Rect {
	return Rect{X: c[0] - width/2, Y: c[1] - height/2, Width: width, Height: height}
}

// Square returns the size×size rectangle anchored at (x, y).
func Square(x, y, size float64) Rect {
	return Rect{X: x, Y: y, Width: size, Height: size}
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// SetLeft moves the rectangle so that its left edge is at v.
func (r *Rect) SetLeft(v float64) { r.X = v }

// SetTop moves the rectangle so that its top edge is at v.
func (r *Rect) SetTop(v float64) { r.Y = v }

// SetRight resizes the rectangle so that its right edge is at v.
func (r *Rect) SetRight(v float64) { r.Width = v - r.X }

// SetBottom resizes the rectangle so that its bottom edge is at v.
func (r *Rect) SetBottom(v float64) { r.Height = v - r.Y }

// Center returns the centre point.
func (r Rect) Center() vector.Vec2 {
	return vector.Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// SetCenter moves the rectangle so that its centre is c, keeping its size.
func (r *Rect) SetCenter(c vector.Vec2) {
	r.X, r.Y = c[0]-r.Width/2, c[1]-r.Height/2
}

func (r Rect) TopLeft() vector.Vec2     { return vector.Vec2{r.Left(), r.Top()} }
func (r Rect) TopRight() vector.Vec2    { return vector.Vec2{r.Right(), r.Top()} }
func (r Rect) BottomLeft() vector.Vec2  { return vector.Vec2{r.Left(), r.Bottom()} }
func (r Rect) BottomRight() vector.Vec2 { return vector.Vec2{r.Right(), r.Bottom()} }

// Contains reports whether p lies inside r or on its border.
func (r Rect) Contains(p vector.Vec2) bool {
	return r.Left() <= p[0] && p[0] <= r.Right() && r.Top() <= p[1] && p[1] <= r.Bottom()
}

// Outside reports whether p lies strictly outside r.
func (r Rect) Outside(p vector.Vec2) bool { return !r.Contains(p) }

// Vertices returns the four corners in the requested order.
//
// Errors: ErrUnknownFormat.
func (r Rect) Vertices(f VertexFormat) ([]vector.Vec2, error) {
	switch f {
	case Strip:
		return []vector.Vec2{r.TopLeft(), r.TopRight(), r.BottomLeft(), r.BottomRight()}, nil
	case Cycle:
		return []vector.Vec2{r.TopLeft(), r.TopRight(), r.BottomRight(), r.BottomLeft()}, nil
	}

	return nil, fmt.Errorf("geometry: Vertices(%q): %w", f, ErrUnknownFormat)
}

// Area returns Width·Height.
func (r Rect) Area() float64 { return r.Width * r.Height }

// Perimeter returns 2·(Width + Height).
func (r Rect) Perimeter() float64 { return 2 * (r.Width + r.Height) }

// String implements fmt.Stringer.
func (r Rect) String() string {
	return fmt.Sprintf("<Rect x: %v, y: %v, width: %v, height: %v>", r.X, r.Y, r.Width, r.Height)
}
