// SPDX-License-Identifier: MIT

package geometry

import "github.com/katalvlaran/glmath/vector"

// Segment is the line segment from Start to End.
type Segment struct {
	Start, End vector.Vec3
}

// Vector returns End - Start.
func (s Segment) Vector() vector.Vec3 { return s.End.Sub(s.Start) }

// Length returns the Euclidean length of the segment.
func (s Segment) Length() float64 { return s.Vector().Magnitude() }

// At returns the point Start + t·(End - Start); t = 0 and t = 1 give the end points.
func (s Segment) At(t float64) vector.Vec3 { return s.Start.Add(s.Vector().Scale(t)) }

// Midpoint returns At(0.5).
func (s Segment) Midpoint() vector.Vec3 { return s.At(0.5) }
