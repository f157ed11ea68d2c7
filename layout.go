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

// Package engrave lays out slurs and ties.
//
// For every fragment of a curve, i.e. for the part of a slur or tie within
// one system, a [CurvePositioner] is kept.  The first time a fragment is
// drawn its positioner is seeded: the direction of the curve is decided,
// the elements under the curve are collected and the Bézier control points
// are computed.  Later draws reuse the seeded geometry unchanged.
//
// Layout is strictly sequential.  Ties should be drawn in a bounding box
// pass before the slurs of the same system are seeded, so that slurs can
// avoid them.
package engrave

import (
	"fmt"
	"slices"

	"seehuhn.de/go/engrave/bezier"
	"seehuhn.de/go/engrave/device"
	"seehuhn.de/go/engrave/options"
	"seehuhn.de/go/engrave/score"
)

// Spanning describes which end points of a curve are visible in a
// fragment.
type Spanning uint8

// These are the fragment types.
const (
	// SpanStartEnd is a curve drawn completely within one system.
	SpanStartEnd Spanning = iota

	// SpanStart is the first part of a curve broken by a system break.
	SpanStart

	// SpanEnd is the last part of a curve broken by a system break.
	SpanEnd

	// SpanOpen is a curve passing through a whole system.
	SpanOpen
)

func (s Spanning) String() string {
	switch s {
	case SpanStartEnd:
		return "start-end"
	case SpanStart:
		return "start"
	case SpanEnd:
		return "end"
	default:
		return "open"
	}
}

// Fragment describes one call to draw a curve within a system.
type Fragment struct {
	Curve score.CurveID

	// Staff is the staff the fragment is drawn on.  It determines the
	// system of the fragment.
	Staff score.StaffID

	// X1 and X2 are the horizontal positions of the fragment end points.
	X1, X2 float64

	Spanning Spanning

	// Graphic, if set, is the id of a graphic opened by an earlier
	// fragment of the same curve.  The fragment then resumes that graphic
	// instead of starting a new one.
	Graphic string
}

// Session holds the state shared by all curves drawn in one rendering
// session.  Use a new session, or call Reset, for every independent render.
type Session struct {
	coefficient float64
}

// NewSession returns a fresh session.
func NewSession() *Session {
	return &Session{}
}

// ThicknessCoefficient returns the factor applied to curve thickness, or 0
// if no curve has been drawn in this session yet.
func (s *Session) ThicknessCoefficient() float64 {
	return s.coefficient
}

// Reset clears the session state.
func (s *Session) Reset() {
	s.coefficient = 0
}

type fragmentKey struct {
	curve  score.CurveID
	system score.SystemID
}

// Layout lays out the curves of a score.
type Layout struct {
	Doc     *score.Doc
	Options *options.Options

	// Directions holds curve directions decided by earlier passes.
	Directions *DirectionCache

	// Artics records which curves the articulations must clear.
	Artics *ArticRegistry

	// Adjust, if set, moves the fragment end points before the curve is
	// built.
	Adjust EndpointAdjuster

	positioners map[fragmentKey]*CurvePositioner
	alignments  map[score.StaffID]*StaffAlignment
}

// New returns a layout for the given document.  If opt is nil, the default
// options are used.
func New(doc *score.Doc, opt *options.Options) *Layout {
	if opt == nil {
		opt = options.Default()
	}
	return &Layout{
		Doc:         doc,
		Options:     opt,
		Directions:  NewDirectionCache(),
		Artics:      NewArticRegistry(),
		positioners: make(map[fragmentKey]*CurvePositioner),
		alignments:  make(map[score.StaffID]*StaffAlignment),
	}
}

// Positioner returns the positioner of a curve fragment, if the fragment
// has been drawn.
func (l *Layout) Positioner(curve score.CurveID, sys score.SystemID) (*CurvePositioner, bool) {
	p, ok := l.positioners[fragmentKey{curve, sys}]
	return p, ok
}

// Alignment returns the positioners of the fragments drawn on a staff.  A
// fragment drawn on several staves of its system belongs to the alignment
// of each.  The result is nil if nothing has been drawn on the staff.
func (l *Layout) Alignment(staff score.StaffID) *StaffAlignment {
	return l.alignments[staff]
}

// ResetSystem returns all positioners of a system to the unseeded state,
// for example after the system has been laid out again.
func (l *Layout) ResetSystem(sys score.SystemID) {
	for key, p := range l.positioners {
		if key.system == sys {
			l.Artics.Remove(p)
			p.Reset()
		}
	}
}

// GraphicID returns the id of the graphic a curve is drawn into.
func (l *Layout) GraphicID(curve score.CurveID) string {
	return fmt.Sprintf("%s-%d", l.Doc.Curve(curve).Kind, curve)
}

// positioner returns the positioner of a fragment, creating it on first
// use.  The positioner joins the alignment of every staff it is drawn on.
func (l *Layout) positioner(f Fragment) *CurvePositioner {
	sys := l.Doc.Staff(f.Staff).System
	key := fragmentKey{f.Curve, sys}
	p, ok := l.positioners[key]
	if !ok {
		p = newPositioner(f.Curve, l.Doc.Curve(f.Curve).Kind, sys, f.Staff)
		l.positioners[key] = p
	}

	a := l.alignments[f.Staff]
	if a == nil {
		a = &StaffAlignment{Staff: f.Staff}
		l.alignments[f.Staff] = a
	}
	a.add(p)
	return p
}

// DrawCurve draws a curve fragment onto dc.  The fragment is seeded on its
// first draw.  The return value is false if the fragment cannot be drawn
// because an end point of the curve is missing.
//
// Drawing an already seeded fragment again emits identical geometry.  On a
// bounding box pass the extent of the drawn curve is recorded in the
// positioner.
func (l *Layout) DrawCurve(s *Session, dc device.Context, f Fragment) bool {
	p := l.positioner(f)
	if p.state == Unseeded {
		l.seed(p, f)
	}
	if p.state == Skipped {
		return false
	}

	id := f.Graphic
	if id != "" {
		dc.ResumeGraphic(id)
	} else {
		id = l.GraphicID(f.Curve)
		dc.StartGraphic(id)
	}

	unit := l.Options.DrawingUnit(l.Doc.Staff(p.staff).Size)
	penWidth := l.Options.SlurEndpointThickness * unit
	if s.coefficient <= 0 {
		s.coefficient = bezier.ThicknessCoefficient(p.points, p.thickness, p.angle, penWidth)
		Logger().Debug("thickness coefficient calibrated",
			"curve", f.Curve,
			"coefficient", s.coefficient)
	}

	c := device.Curve{
		Points:    p.points,
		Thickness: s.coefficient * p.thickness,
		PenWidth:  penWidth,
		Angle:     p.angle,
		Style:     lineStyle(l.Doc.Curve(f.Curve).Form),
	}
	dc.DrawCurve(c)
	if dc.BBoxPass() {
		p.SetContentBounds(device.CurveBounds(c, 0))
	}

	dc.EndGraphic(id)
	return true
}

// Positioners returns all positioners of a system, ordered by curve.
func (l *Layout) Positioners(sys score.SystemID) []*CurvePositioner {
	var res []*CurvePositioner
	for key, p := range l.positioners {
		if key.system == sys {
			res = append(res, p)
		}
	}
	slices.SortFunc(res, func(a, b *CurvePositioner) int {
		return int(a.curve) - int(b.curve)
	})
	return res
}

// lineStyle maps a line form to a device style.  Wavy lines are drawn
// solid.
func lineStyle(form score.LineForm) device.Style {
	switch form {
	case score.LineDashed:
		return device.Dashed
	case score.LineDotted:
		return device.Dotted
	default:
		return device.Solid
	}
}
