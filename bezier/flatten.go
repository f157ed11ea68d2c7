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
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// DefaultFlatness is the flattening tolerance used for bounding boxes,
// in layout units.
const DefaultFlatness = 0.25

// Flatten approximates the cubic curve p0..p3 by line segments which deviate
// from the curve by at most flatness.  The segment count is given by Wang's
// formula.
func Flatten(p0, p1, p2, p3 vec.Vec2, flatness float64, emit func(from, to vec.Vec2)) {
	d1 := p0.Sub(p1.Mul(2)).Add(p2) // P0 - 2*P1 + P2
	d2 := p1.Sub(p2.Mul(2)).Add(p3) // P1 - 2*P2 + P3

	m := max(d1.Length(), d2.Length())
	n := 1
	if m > 0 && flatness > 0 {
		// n = ceil(sqrt(3 * m / (4 * ε)))
		nFloat := math.Sqrt(3 * m / (4 * flatness))
		if nFloat > 1 {
			n = int(math.Ceil(nFloat))
		}
	}

	prev := p0
	pts := [4]vec.Vec2{p0, p1, p2, p3}
	for i := 1; i <= n; i++ {
		var pt vec.Vec2
		if i == n {
			pt = p3
		} else {
			pt = Eval(pts, float64(i)/float64(n))
		}
		emit(prev, pt)
		prev = pt
	}
}

// Bounds returns the bounding box of the path, with curves flattened to
// the given tolerance.  The second return value is false for an empty path.
func Bounds(p path.Path, flatness float64) (rect.Rect, bool) {
	var bbox rect.Rect
	first := true
	add := func(pt vec.Vec2) {
		if first {
			bbox = rect.Rect{LLx: pt.X, LLy: pt.Y, URx: pt.X, URy: pt.Y}
			first = false
			return
		}
		bbox.LLx = min(bbox.LLx, pt.X)
		bbox.LLy = min(bbox.LLy, pt.Y)
		bbox.URx = max(bbox.URx, pt.X)
		bbox.URy = max(bbox.URy, pt.Y)
	}

	var current vec.Vec2
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo, path.CmdLineTo:
			add(pts[0])
			current = pts[0]
		case path.CmdQuadTo:
			// elevate to cubic
			c1 := current.Add(pts[0].Sub(current).Mul(2.0 / 3.0))
			c2 := pts[1].Add(pts[0].Sub(pts[1]).Mul(2.0 / 3.0))
			Flatten(current, c1, c2, pts[1], flatness, func(_, to vec.Vec2) { add(to) })
			current = pts[1]
		case path.CmdCubeTo:
			Flatten(current, pts[0], pts[1], pts[2], flatness, func(_, to vec.Vec2) { add(to) })
			current = pts[2]
		}
	}
	return bbox, !first
}

// Union returns the smallest rectangle containing a and b.
func Union(a, b rect.Rect) rect.Rect {
	return rect.Rect{
		LLx: min(a.LLx, b.LLx),
		LLy: min(a.LLy, b.LLy),
		URx: max(a.URx, b.URx),
		URy: max(a.URy, b.URy),
	}
}
