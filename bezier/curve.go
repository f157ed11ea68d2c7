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

package bezier

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Curve is a cubic Bézier curve describing the centre line of a slur or tie.
//
// The control point parameters are computed with the end points in the
// horizontal frame, i.e. after P2 has been rotated about P1 so that both end
// points have the same y coordinate.
type Curve struct {
	P1, C1, C2, P2 vec.Vec2

	// LeftOffset and RightOffset are the horizontal distances of C1 from P1
	// and of C2 from P2.
	LeftOffset, RightOffset float64

	// LeftHeight and RightHeight are the vertical distances of C1 from P1
	// and of C2 from P2.
	LeftHeight, RightHeight float64
}

// NewCurve returns a curve with both control points on the end points.
func NewCurve(p1, p2 vec.Vec2) *Curve {
	return &Curve{P1: p1, C1: p1, C2: p2, P2: p2}
}

// Points returns the control points in drawing order.
func (c *Curve) Points() [4]vec.Vec2 {
	return [4]vec.Vec2{c.P1, c.C1, c.C2, c.P2}
}

// CalcControlParams derives the control point offsets and heights from the
// horizontal distance between the end points.  unit is the drawing unit of
// the staff and curveFactor scales the height of the curve.
func (c *Curve) CalcControlParams(unit, curveFactor float64) {
	dist := math.Abs(c.P2.X - c.P1.X)

	minHeight := 1.2 * unit
	maxHeight := 3 * unit * curveFactor
	height := curveFactor * dist / 6
	height = max(minHeight, min(height, maxHeight))

	offset := min(dist/4, 4*height)

	c.LeftOffset, c.RightOffset = offset, offset
	c.LeftHeight, c.RightHeight = height, height
}

// UpdateControlPoints places C1 and C2 on the given side of the end points.
func (c *Curve) UpdateControlPoints(above bool) {
	sign := -1.0
	if above {
		sign = 1.0
	}
	c.C1 = vec.Vec2{X: c.P1.X + c.LeftOffset, Y: c.P1.Y + sign*c.LeftHeight}
	c.C2 = vec.Vec2{X: c.P2.X - c.RightOffset, Y: c.P2.Y + sign*c.RightHeight}
}

// Rotate rotates all four points counter-clockwise by angle radians about
// center.
func (c *Curve) Rotate(angle float64, center vec.Vec2) {
	if angle == 0 {
		return
	}
	m := Rotation(angle, center)
	c.P1 = Apply(m, c.P1)
	c.C1 = Apply(m, c.C1)
	c.C2 = Apply(m, c.C2)
	c.P2 = Apply(m, c.P2)
}

// Path returns the curve as an open path.
func (c *Curve) Path() *path.Data {
	return (&path.Data{}).
		MoveTo(c.P1).
		CubeTo(c.C1, c.C2, c.P2)
}
