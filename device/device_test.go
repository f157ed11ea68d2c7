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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

func arch(style Style) Curve {
	return Curve{
		Points: [4]vec.Vec2{
			{X: 10, Y: 50}, {X: 30, Y: 70}, {X: 70, Y: 70}, {X: 90, Y: 50},
		},
		Thickness: 6,
		PenWidth:  1,
		Style:     style,
	}
}

func TestRecorder(t *testing.T) {
	r := &Recorder{}
	r.StartGraphic("slur-1")
	r.DrawCurve(arch(Solid))
	r.EndGraphic("slur-1")
	r.ResumeGraphic("slur-1")
	r.DrawCurve(arch(Dashed))
	r.EndGraphic("slur-1")

	ops := make([]Op, len(r.Events))
	for i, e := range r.Events {
		ops[i] = e.Op
	}
	assert.Equal(t, []Op{OpStart, OpCurve, OpEnd, OpResume, OpCurve, OpEnd}, ops)

	curves := r.Curves()
	require.Len(t, curves, 2)
	assert.Equal(t, Dashed, curves[1].Style)
	assert.False(t, r.BBoxPass())

	r.Reset()
	assert.Empty(t, r.Events)
}

func TestBBox(t *testing.T) {
	b := NewBBox()
	assert.True(t, b.BBoxPass())

	b.StartGraphic("a")
	b.DrawCurve(arch(Solid))
	b.EndGraphic("a")

	bbox, ok := b.Bounds("a")
	require.True(t, ok)
	assert.InDelta(t, 9.5, bbox.LLx, 1e-9)
	assert.InDelta(t, 90.5, bbox.URx, 1e-9)
	assert.InDelta(t, 49.5, bbox.LLy, 1e-9)
	// the upper boundary peaks at 50 + 0.75*(20+3)
	assert.InDelta(t, 67.25+0.5, bbox.URy, 0.05)

	// a resumed graphic grows
	shifted := arch(Solid)
	for i := range shifted.Points {
		shifted.Points[i].X += 100
	}
	b.ResumeGraphic("a")
	b.DrawCurve(shifted)
	b.EndGraphic("a")
	bbox, _ = b.Bounds("a")
	assert.InDelta(t, 9.5, bbox.LLx, 1e-9)
	assert.InDelta(t, 190.5, bbox.URx, 1e-9)

	_, ok = b.Bounds("b")
	assert.False(t, ok)
}

func TestStyleDash(t *testing.T) {
	assert.Nil(t, Solid.Dash(2))
	assert.Equal(t, []float64{12, 8}, Dashed.Dash(2))
	assert.Equal(t, []float64{0, 6}, Dotted.Dash(2))
	assert.Equal(t, "dotted", Dotted.String())
}

func TestRaster(t *testing.T) {
	flip := matrix.Matrix{1, 0, 0, -1, 0, 100}
	for _, style := range []Style{Solid, Dashed} {
		img := image.NewAlpha(image.Rect(0, 0, 100, 100))
		r := NewRaster(img, flip)
		assert.False(t, r.BBoxPass())
		r.DrawCurve(arch(style))

		var ink int
		for _, a := range img.Pix {
			if a > 0 {
				ink++
			}
		}
		assert.Positive(t, ink, style.String())

		// nothing is drawn below the end points
		for y := 52; y < 100; y++ {
			for x := 0; x < 100; x++ {
				if img.AlphaAt(x, y).A != 0 {
					t.Fatalf("%s: unexpected ink at (%d, %d)", style, x, y)
				}
			}
		}
	}
}

func TestRasterSolidMidpoint(t *testing.T) {
	img := image.NewAlpha(image.Rect(0, 0, 100, 100))
	r := NewRaster(img, matrix.Matrix{1, 0, 0, -1, 0, 100})
	r.DrawCurve(arch(Solid))

	// the centre line passes through y = 65 at x = 50, which is pixel row 35
	assert.Greater(t, img.AlphaAt(50, 35).A, uint8(200))
	assert.Zero(t, img.AlphaAt(50, 20).A)
	assert.Zero(t, img.AlphaAt(50, 45).A)
	assert.Equal(t, 1.0, r.scale())
}
