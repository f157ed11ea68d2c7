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

// Package device defines the drawing contexts which receive laid out
// curves, together with implementations for recording, bounding box
// computation, PDF output and raster previews.
package device

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/engrave/bezier"
)

// Context receives the curves of a rendering pass.
//
// Every curve is drawn inside a graphic: StartGraphic opens the graphic of
// a curve drawn for the first time, ResumeGraphic reopens the graphic of a
// curve continued from an earlier system.
type Context interface {
	// BBoxPass reports whether this is a bounding box pass, during which
	// layout state may still be computed.
	BBoxPass() bool

	StartGraphic(id string)
	ResumeGraphic(id string)
	EndGraphic(id string)

	DrawCurve(c Curve)
}

// Style is the line style of a drawn curve.
type Style uint8

// These are the supported line styles.
const (
	Solid Style = iota
	Dashed
	Dotted
)

func (s Style) String() string {
	switch s {
	case Dashed:
		return "dashed"
	case Dotted:
		return "dotted"
	default:
		return "solid"
	}
}

// Dash returns the dash pattern for a pen of width w, or nil for solid
// lines.  Dotted patterns consist of zero-length dashes and must be drawn
// with round caps.
func (s Style) Dash(w float64) []float64 {
	switch s {
	case Dashed:
		return []float64{6 * w, 4 * w}
	case Dotted:
		return []float64{0, 3 * w}
	default:
		return nil
	}
}

// Curve is a finished curve, ready to be drawn.
type Curve struct {
	// Points are the end and control points of the centre line.
	Points [4]vec.Vec2

	// Thickness is the displacement between the control points of the
	// upper and lower boundary curves.
	Thickness float64

	// PenWidth is the width of the pen outlining the curve.  It gives the
	// thickness of the curve at its end points.
	PenWidth float64

	// Angle is the angle of the line between the end points, in radians.
	Angle float64

	Style Style
}

// Outline returns the filled shape of a solid curve.
func (c Curve) Outline() *path.Data {
	return bezier.Outline(c.Points, c.Thickness, c.Angle)
}

// CentreLine returns the centre line of the curve, used for dashed and
// dotted curves.
func (c Curve) CentreLine() *path.Data {
	return (&path.Data{}).
		MoveTo(c.Points[0]).
		CubeTo(c.Points[1], c.Points[2], c.Points[3])
}
