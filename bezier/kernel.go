// seehuhn.de/go/engrave - curve layout for music engraving
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package bezier implements the geometry used to lay out slurs and ties:
// rotation about a pivot, de Casteljau evaluation, slope and angle
// computation, horizontal overlap tests and the cubic curve model.
//
// Coordinates are layout units with the y axis pointing upwards, so a curve
// "above" the notes has larger y values than its end points.
package bezier

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Rotation returns the matrix which rotates counter-clockwise by angle
// radians about center.
func Rotation(angle float64, center vec.Vec2) matrix.Matrix {
	s, c := math.Sincos(angle)
	return matrix.Matrix{
		c, s,
		-s, c,
		center.X - c*center.X + s*center.Y,
		center.Y - s*center.X - c*center.Y,
	}
}

// Apply maps p through the affine transformation m.
func Apply(m matrix.Matrix, p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// Rotate rotates p counter-clockwise by angle radians about center.
func Rotate(p, center vec.Vec2, angle float64) vec.Vec2 {
	if p == center || angle == 0 {
		return p
	}
	return Apply(Rotation(angle, center), p)
}

// Eval evaluates the cubic Bézier curve with control points pts at
// parameter t, using de Casteljau's algorithm.
func Eval(pts [4]vec.Vec2, t float64) vec.Vec2 {
	lerp := func(a, b vec.Vec2) vec.Vec2 {
		return a.Add(b.Sub(a).Mul(t))
	}
	a := lerp(pts[0], pts[1])
	b := lerp(pts[1], pts[2])
	c := lerp(pts[2], pts[3])
	d := lerp(a, b)
	e := lerp(b, c)
	return lerp(d, e)
}

// Angle returns the angle of the line from p1 to p2, in radians.
// Coincident points give 0.
func Angle(p1, p2 vec.Vec2) float64 {
	if p1 == p2 {
		return 0
	}
	return math.Atan2(p2.Y-p1.Y, p2.X-p1.X)
}

// Slope returns dy/dx for the line from p1 to p2.
// The second return value is false if the line is vertical.
func Slope(p1, p2 vec.Vec2) (float64, bool) {
	dx := p2.X - p1.X
	if dx == 0 {
		return 0, false
	}
	return (p2.Y - p1.Y) / dx, true
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b vec.Vec2) float64 {
	return b.Sub(a).Length()
}

// EdgeInside reports whether the left or the right edge of an element lies
// strictly inside the open interval (min, max).
func EdgeInside(left, right, min, max float64) bool {
	return (left > min && left < max) || (right > min && right < max)
}

// Intersects reports whether the extent [left, right] overlaps the open
// interval (min, max).
func Intersects(left, right, min, max float64) bool {
	return right > min && left < max
}
