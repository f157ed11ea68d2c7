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

package engrave

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/engrave/bezier"
	"seehuhn.de/go/engrave/options"
	"seehuhn.de/go/engrave/score"
)

// Endpoints are the end point coordinates of a fragment, before the
// vertical offset away from the staff is applied.
type Endpoints struct {
	X1, X2 float64
	Y1, Y2 float64
}

// EndpointAdjuster moves the end points of a fragment once its direction is
// known, for example to attach a slur to the note heads or stems it
// connects.  By default the end points lie on the top line of the staff.
type EndpointAdjuster func(f Fragment, dir score.CurveDir, e Endpoints) Endpoints

func (l *Layout) validEndpoint(el score.ElementID) bool {
	return el >= 0 && int(el) < l.Doc.NumElements()
}

// seed computes the direction, geometry and spanned elements of a fragment.
// Fragments without both end points are marked as skipped.
func (l *Layout) seed(p *CurvePositioner, f Fragment) {
	l.Artics.Remove(p)

	doc := l.Doc
	opt := l.Options
	curve := doc.Curve(f.Curve)
	start, end := curve.Start, curve.End
	if !l.validEndpoint(start) || !l.validEndpoint(end) {
		p.state = Skipped
		Logger().Debug("curve skipped",
			"curve", f.Curve,
			"system", p.system,
			"reason", "missing endpoint")
		return
	}

	staff := doc.Staff(p.staff)
	unit := opt.DrawingUnit(staff.Size)

	// An initial cross-staff target comes from the end points.  Scanning
	// may add one later.
	p.crossStaff = score.NoStaff
	if s, e := doc.Element(start), doc.Element(end); s.CrossStaff != e.CrossStaff {
		p.crossStaff = e.CrossStaff
	} else {
		startStaff, ok1 := doc.StaffOf(start)
		endStaff, ok2 := doc.StaffOf(end)
		if ok1 && ok2 && doc.Staff(startStaff).N != doc.Staff(endStaff).N {
			p.crossStaff = endStaff
		}
	}

	q := &directionQuery{
		curve:      f.Curve,
		start:      start,
		end:        end,
		staff:      p.staff,
		spanning:   f.Spanning,
		doubleUnit: opt.DrawingDoubleUnit(staff.Size),
	}
	recordMixedStems(doc, l.Directions, q, p.IsCrossStaff())
	dir := resolveDirection(doc, l.Directions, q)
	above := dir == score.CurveDirAbove

	ends := Endpoints{X1: f.X1, X2: f.X2, Y1: staff.Y, Y2: staff.Y}
	if l.Adjust != nil {
		ends = l.Adjust(f, dir, ends)
	}
	offset := opt.SlurEndpointOffset * unit
	if !above {
		offset = -offset
	}
	p1 := vec.Vec2{X: ends.X1, Y: ends.Y1 + offset}
	p2 := vec.Vec2{X: ends.X2, Y: ends.Y2 + offset}

	l.scanSpanned(p, start, end, p1.X, p2.X)

	// Cross-staff and grace note slurs keep their natural angle unless
	// they are steep.
	dontAdjust := p.IsCrossStaff()
	if dx := p2.X - p1.X; dx != 0 && (p.IsCrossStaff() || doc.IsGrace(start)) {
		dontAdjust = math.Abs((p2.Y-p1.Y)/dx) < options.SlurAngleThreshold
	}
	angle := bezier.Angle(p1, p2)
	if !dontAdjust {
		lo, hi := opt.SlopeLimits()
		angle, p1, p2 = bezier.ConstrainAngle(p1, p2, above, lo, hi)
	}

	c := bezier.NewCurve(p1, bezier.Rotate(p2, p1, -angle))
	c.CalcControlParams(unit, opt.SlurCurveFactor)
	c.UpdateControlPoints(above)
	c.Rotate(angle, p1)

	p.points = c.Points()
	p.angle = angle
	p.thickness = unit * opt.SlurMidpointThickness
	p.dir = dir
	p.state = Seeded

	if f.Spanning == SpanStartEnd || f.Spanning == SpanStart {
		l.attachArtics(p, start, dir, true)
	}
	if f.Spanning == SpanStartEnd || f.Spanning == SpanEnd {
		l.attachArtics(p, end, dir, false)
	}

	Logger().Debug("curve seeded",
		"curve", f.Curve,
		"system", p.system,
		"spanning", f.Spanning,
		"dir", dir,
		"angle", angle,
		"crossStaff", p.IsCrossStaff(),
		"spanned", len(p.spanned))
}
