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

// Thick returns the two boundary curves of a curve with the given thickness.
// The inner control points are displaced by half the thickness along the
// normal of the rotated frame; the end points are shared, so the shape
// tapers to a point at both ends.
func Thick(pts [4]vec.Vec2, thickness, angle float64) (top, bottom [4]vec.Vec2) {
	s, c := math.Sincos(angle)
	n := vec.Vec2{X: -s, Y: c}.Mul(thickness / 2)

	top = pts
	top[1] = pts[1].Add(n)
	top[2] = pts[2].Add(n)

	bottom = pts
	bottom[1] = pts[1].Sub(n)
	bottom[2] = pts[2].Sub(n)
	return top, bottom
}

// Outline returns the closed outline of a thick curve: along the top curve
// from the first to the last point, then back along the bottom curve.
func Outline(pts [4]vec.Vec2, thickness, angle float64) *path.Data {
	top, bottom := Thick(pts, thickness, angle)
	return (&path.Data{}).
		MoveTo(top[0]).
		CubeTo(top[1], top[2], top[3]).
		CubeTo(bottom[2], bottom[1], bottom[0]).
		Close()
}

// ThicknessCoefficient returns the factor by which the control point
// displacement must be scaled so that the filled outline of the curve,
// stroked with a pen of width penWidth, is thickness wide at its midpoint.
//
// The measurement is done in the frame where the curve is horizontal.  If
// no positive factor exists (for example because the pen is wider than the
// requested thickness), 1 is returned.
func ThicknessCoefficient(pts [4]vec.Vec2, thickness, angle, penWidth float64) float64 {
	var flat [4]vec.Vec2
	for i, p := range pts {
		flat[i] = Rotate(p, pts[0], -angle)
	}
	top, bottom := Thick(flat, thickness, 0)
	gap := math.Abs(Eval(top, 0.5).Y - Eval(bottom, 0.5).Y)
	if gap == 0 {
		return 1
	}
	coeff := (thickness - penWidth) / gap
	if coeff <= 0 || math.IsNaN(coeff) || math.IsInf(coeff, 0) {
		return 1
	}
	return coeff
}
