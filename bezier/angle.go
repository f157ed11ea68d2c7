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

	"seehuhn.de/go/geom/vec"
)

// ConstrainAngle limits the angle of the line from p1 to p2 to the range
// [minAngle, maxAngle] (radians, both strictly inside (-π/2, π/2)).
//
// If the angle is out of range, one end point is moved vertically so that
// the line has the limiting angle.  For a curve above the notes the lower
// end point is raised, for a curve below the higher end point is lowered,
// so that the curve never moves into the notes it connects.
//
// The returned angle always lies in [minAngle, maxAngle].  If p2 is not to
// the right of p1, the points are returned unchanged with angle 0.
func ConstrainAngle(p1, p2 vec.Vec2, above bool, minAngle, maxAngle float64) (float64, vec.Vec2, vec.Vec2) {
	dx := p2.X - p1.X
	if dx <= 0 {
		return 0, p1, p2
	}

	angle := Angle(p1, p2)
	var target float64
	switch {
	case angle > maxAngle:
		target = maxAngle
	case angle < minAngle:
		target = minAngle
	default:
		return angle, p1, p2
	}

	dy := dx * math.Tan(target)
	rising := p2.Y > p1.Y
	switch {
	case above && rising:
		p1.Y = p2.Y - dy
	case above:
		p2.Y = p1.Y + dy
	case rising:
		p2.Y = p1.Y + dy
	default:
		p1.Y = p2.Y - dy
	}
	return target, p1, p2
}
