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

package testcases

import (
	"fmt"

	"seehuhn.de/go/engrave"
	"seehuhn.de/go/engrave/score"
)

// lineEnd is the right end of the staves in the broken cases.
const lineEnd = 4000

var brokenCases = []TestCase{
	systemBreak(),
	openFragment(),
}

// graphicID matches the id the layout uses for the graphic of a curve.
func graphicID(kind score.CurveKind, c score.CurveID) string {
	return fmt.Sprintf("%s-%d", kind, c)
}

// systemBreak is a slur broken across two systems.  Both end notes carry
// articulations outside the slur.
func systemBreak() TestCase {
	b := newBuilder()
	s1 := b.system(1)
	s2 := b.system(1)
	a := s1.note(0, 3400, -270, score.StemDown)
	s1.artic(a, score.PlaceAbove, true)
	e := s2.note(0, 700, -270, score.StemDown)
	s2.artic(e, score.PlaceAbove, true)
	s2.artic(e, score.PlaceBelow, false)
	c := b.curve(score.Slur, a, e)
	return TestCase{
		Name: "system_break",
		Doc:  b.doc,
		Draws: []engrave.Fragment{
			{
				Curve:    c,
				Staff:    s1.staves[0],
				X1:       b.doc.Element(a).Right,
				X2:       lineEnd,
				Spanning: engrave.SpanStart,
			},
			{
				Curve:    c,
				Staff:    s2.staves[0],
				X1:       200,
				X2:       b.doc.Element(e).Left,
				Spanning: engrave.SpanEnd,
				Graphic:  graphicID(score.Slur, c),
			},
		},
		Box: b.box(lineEnd + 200),
	}
}

// openFragment is a slur over three systems, passing through the middle
// one without an end point.
func openFragment() TestCase {
	b := newBuilder()
	s1 := b.system(1)
	s2 := b.system(1)
	s3 := b.system(1)
	a := s1.note(0, 3000, -180, score.StemUp)
	s2.note(0, 2000, -450, score.StemUp)
	e := s3.note(0, 1000, -180, score.StemUp)
	c := b.curve(score.Slur, a, e)
	id := graphicID(score.Slur, c)
	return TestCase{
		Name: "open_fragment",
		Doc:  b.doc,
		Draws: []engrave.Fragment{
			{
				Curve:    c,
				Staff:    s1.staves[0],
				X1:       b.doc.Element(a).Right,
				X2:       lineEnd,
				Spanning: engrave.SpanStart,
			},
			{
				Curve:    c,
				Staff:    s2.staves[0],
				X1:       200,
				X2:       lineEnd,
				Spanning: engrave.SpanOpen,
				Graphic:  id,
			},
			{
				Curve:    c,
				Staff:    s3.staves[0],
				X1:       200,
				X2:       b.doc.Element(e).Left,
				Spanning: engrave.SpanEnd,
				Graphic:  id,
			},
		},
		Box: b.box(lineEnd + 200),
	}
}
