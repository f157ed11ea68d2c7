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
	"seehuhn.de/go/engrave"
	"seehuhn.de/go/engrave/score"
)

var crossCases = []TestCase{
	crossStaff("staff_change", 1100),
	crossStaff("staff_change_steep", 500),
	crossElement(),
}

// crossStaff is a slur from a note on the upper staff to a note on the
// lower staff, with end points attached to the note heads.
func crossStaff(name string, x2 float64) TestCase {
	b := newBuilder()
	s := b.system(2)
	a := s.note(0, 300, -540, score.StemDown)
	e := s.note(1, x2, -90, score.StemUp)
	c := b.curve(score.Slur, a, e)
	return TestCase{
		Name:   name,
		Doc:    b.doc,
		Draws:  []engrave.Fragment{b.fragment(c, s.staves[0])},
		Adjust: headAdjuster(b.doc),
		Box:    b.box(x2 + 600),
	}
}

// crossElement is a slur on the upper staff over a chord which is drawn on
// the lower staff.  Scanning the chord makes the slur cross-staff.
func crossElement() TestCase {
	b := newBuilder()
	s := b.system(2)
	a := s.note(0, 300, -180, score.StemDown)
	chord, _ := s.chord(0, 700, score.StemUp, -staffDistance-270, -staffDistance-90)
	b.doc.SetCrossStaff(chord, s.staves[1], s.layers[1])
	e := s.note(0, 1100, -180, score.StemDown)
	c := b.curve(score.Slur, a, e)
	return TestCase{
		Name:  "cross_element",
		Doc:   b.doc,
		Draws: []engrave.Fragment{b.fragment(c, s.staves[0])},
		Box:   b.box(1700),
	}
}
