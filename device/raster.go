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
	"image"
	"image/draw"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/engrave/bezier"
)

// Raster draws curves into an alpha mask, for quick previews.
//
// Coverage is accumulated with the Over operator, so that the mask ends up
// holding the union of all curves drawn.
type Raster struct {
	Dst *image.Alpha

	// CTM maps layout coordinates to pixel coordinates.
	CTM matrix.Matrix

	// Flatness is the flattening tolerance in pixels.
	Flatness float64

	z *vector.Rasterizer
}

// NewRaster returns a Context drawing into dst.
func NewRaster(dst *image.Alpha, ctm matrix.Matrix) *Raster {
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	return &Raster{
		Dst:      dst,
		CTM:      ctm,
		Flatness: bezier.DefaultFlatness,
		z:        z,
	}
}

// BBoxPass implements [Context].
func (r *Raster) BBoxPass() bool { return false }

// StartGraphic implements [Context].
func (r *Raster) StartGraphic(string) {}

// ResumeGraphic implements [Context].
func (r *Raster) ResumeGraphic(string) {}

// EndGraphic implements [Context].
func (r *Raster) EndGraphic(string) {}

// DrawCurve implements [Context].
func (r *Raster) DrawCurve(c Curve) {
	if c.Style == Solid {
		r.begin()
		r.fill(c.Outline())
		r.flush()
	}

	// The pen is applied in a separate pass, since the stroke segments may
	// wind in the opposite direction to the outline.
	r.begin()
	r.stroke(c.CentreLine(), c.PenWidth, c.Style.Dash(c.PenWidth))
	r.flush()
}

func (r *Raster) begin() {
	b := r.Dst.Bounds()
	r.z.Reset(b.Dx(), b.Dy())
	r.z.DrawOp = draw.Over
}

func (r *Raster) flush() {
	b := r.Dst.Bounds()
	r.z.Draw(r.Dst, b, image.Opaque, image.Point{})
}

func (r *Raster) moveTo(p vec.Vec2) {
	p = bezier.Apply(r.CTM, p)
	r.z.MoveTo(float32(p.X), float32(p.Y))
}

func (r *Raster) lineTo(p vec.Vec2) {
	p = bezier.Apply(r.CTM, p)
	r.z.LineTo(float32(p.X), float32(p.Y))
}

func (r *Raster) fill(d *path.Data) {
	for cmd, pts := range d.Iter() {
		switch cmd {
		case path.CmdMoveTo:
			r.moveTo(pts[0])
		case path.CmdLineTo:
			r.lineTo(pts[0])
		case path.CmdCubeTo:
			a := bezier.Apply(r.CTM, pts[0])
			b := bezier.Apply(r.CTM, pts[1])
			c := bezier.Apply(r.CTM, pts[2])
			r.z.CubeTo(float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), float32(c.X), float32(c.Y))
		case path.CmdClose:
			r.z.ClosePath()
		}
	}
}

// stroke draws the centre line with a pen of width w, applying the dash
// pattern if one is given.  All quads share one orientation.
func (r *Raster) stroke(d *path.Data, w float64, dash []float64) {
	if w <= 0 {
		return
	}

	quad := func(a, b vec.Vec2) {
		dir := b.Sub(a)
		l := dir.Length()
		if l == 0 {
			return
		}
		n := vec.Vec2{X: -dir.Y, Y: dir.X}.Mul(w / 2 / l)
		r.moveTo(a.Add(n))
		r.lineTo(b.Add(n))
		r.lineTo(b.Sub(n))
		r.lineTo(a.Sub(n))
		r.z.ClosePath()
	}

	idx := 0
	var left float64
	on := true
	if len(dash) > 0 {
		left = dash[0]
	}
	segment := func(a, b vec.Vec2) {
		if len(dash) == 0 {
			quad(a, b)
			return
		}
		l := bezier.Distance(a, b)
		if l == 0 {
			return
		}
		pos := 0.0
		for pos < l {
			if on && left == 0 {
				// a dot: a square of the pen size centred on the line
				u := b.Sub(a).Mul(w / 2 / l)
				p := a.Add(b.Sub(a).Mul(pos / l))
				quad(p.Sub(u), p.Add(u))
			}
			step := min(left, l-pos)
			if on && step > 0 {
				quad(a.Add(b.Sub(a).Mul(pos/l)), a.Add(b.Sub(a).Mul((pos+step)/l)))
			}
			pos += step
			left -= step
			if left <= 0 {
				idx = (idx + 1) % len(dash)
				left = dash[idx]
				on = !on
			}
		}
	}

	var current vec.Vec2
	flatness := r.Flatness
	if s := r.scale(); s > 0 {
		flatness /= s
	}
	for cmd, pts := range d.Iter() {
		switch cmd {
		case path.CmdMoveTo:
			current = pts[0]
		case path.CmdLineTo:
			segment(current, pts[0])
			current = pts[0]
		case path.CmdCubeTo:
			bezier.Flatten(current, pts[0], pts[1], pts[2], flatness, segment)
			current = pts[2]
		}
	}
}

// scale returns the approximate scale factor of the CTM.
func (r *Raster) scale() float64 {
	m := r.CTM
	return max(vec.Vec2{X: m[0], Y: m[1]}.Length(), vec.Vec2{X: m[2], Y: m[3]}.Length())
}
