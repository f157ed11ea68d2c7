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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"
)

// PDF draws curves onto a PDF page.  The caller is responsible for setting
// up the coordinate transformation from layout coordinates to PDF space.
type PDF struct {
	Page *document.Page
}

// NewPDF returns a Context which draws black curves onto the given page.
func NewPDF(page *document.Page) *PDF {
	page.SetFillColor(color.DeviceGray(0))
	page.SetStrokeColor(color.DeviceGray(0))
	return &PDF{Page: page}
}

// BBoxPass implements [Context].
func (p *PDF) BBoxPass() bool { return false }

// StartGraphic implements [Context].
func (p *PDF) StartGraphic(string) {}

// ResumeGraphic implements [Context].
func (p *PDF) ResumeGraphic(string) {}

// EndGraphic implements [Context].
func (p *PDF) EndGraphic(string) {}

// DrawCurve implements [Context].
func (p *PDF) DrawCurve(c Curve) {
	page := p.Page
	if c.Style == Solid {
		// The outline is filled and then stroked with the pen, so that
		// the curve keeps a visible thickness at the end points.
		page.SetLineWidth(c.PenWidth)
		page.SetLineCap(graphics.LineCapRound)
		page.SetLineJoin(graphics.LineJoinRound)
		page.SetLineDash(nil, 0)
		outline := c.Outline()
		p.emit(outline)
		page.Fill()
		p.emit(outline)
		page.Stroke()
		return
	}

	page.SetLineWidth(c.PenWidth)
	if c.Style == Dotted {
		page.SetLineCap(graphics.LineCapRound)
	} else {
		page.SetLineCap(graphics.LineCapButt)
	}
	page.SetLineDash(c.Style.Dash(c.PenWidth), 0)
	p.emit(c.CentreLine())
	page.Stroke()
}

func (p *PDF) emit(d *path.Data) {
	page := p.Page
	for cmd, pts := range d.Iter().ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			page.ClosePath()
		}
	}
}
