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

package device

import (
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/engrave/bezier"
)

// BBox is the Context of a bounding box pass.  It accumulates the bounding
// box of everything drawn inside each graphic.
type BBox struct {
	// Flatness is the curve flattening tolerance in layout units.
	// Zero selects bezier.DefaultFlatness.
	Flatness float64

	current string
	bounds  map[string]rect.Rect
}

// NewBBox returns an empty bounding box context.
func NewBBox() *BBox {
	return &BBox{bounds: make(map[string]rect.Rect)}
}

// CurveBounds returns the bounding box of the ink of a curve.
func CurveBounds(c Curve, flatness float64) rect.Rect {
	if flatness <= 0 {
		flatness = bezier.DefaultFlatness
	}
	var bbox rect.Rect
	if c.Style == Solid {
		bbox, _ = bezier.Bounds(c.Outline().Iter(), flatness)
	} else {
		bbox, _ = bezier.Bounds(c.CentreLine().Iter(), flatness)
	}
	// the pen extends the shape on all sides
	d := c.PenWidth / 2
	bbox.LLx -= d
	bbox.LLy -= d
	bbox.URx += d
	bbox.URy += d
	return bbox
}

// BBoxPass implements [Context].
func (b *BBox) BBoxPass() bool { return true }

// StartGraphic implements [Context].
func (b *BBox) StartGraphic(id string) { b.current = id }

// ResumeGraphic implements [Context].
func (b *BBox) ResumeGraphic(id string) { b.current = id }

// EndGraphic implements [Context].
func (b *BBox) EndGraphic(string) { b.current = "" }

// DrawCurve implements [Context].
func (b *BBox) DrawCurve(c Curve) {
	bbox := CurveBounds(c, b.Flatness)
	if old, ok := b.bounds[b.current]; ok {
		bbox = bezier.Union(old, bbox)
	}
	b.bounds[b.current] = bbox
}

// Bounds returns the bounding box of the graphic with the given id.
func (b *BBox) Bounds(id string) (rect.Rect, bool) {
	bbox, ok := b.bounds[id]
	return bbox, ok
}
