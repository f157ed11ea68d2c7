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

var simpleCases = []TestCase{
	twoNotes("above", -90, -90, score.StemDown, 300, 900),
	twoNotes("below", -630, -630, score.StemDown, 300, 900),
	twoNotes("stems_up", -450, -450, score.StemUp, 300, 900),
	twoNotes("no_stems", -180, -540, score.StemNone, 300, 1500),
	twoNotes("long", -180, -180, score.StemDown, 300, 4300),
	twoNotes("short", -90, -90, score.StemDown, 300, 450),
	steep("steep_down", 0, -900),
	steep("steep_up", -900, 0),
	grace("grace", -270, -450),
	grace("grace_steep", 0, -1800),
}

// twoNotes is a slur between two notes on a single staff.
func twoNotes(name string, y1, y2 float64, dir score.StemDir, x1, x2 float64) TestCase {
	b := newBuilder()
	s := b.system(1)
	a := s.note(0, x1, y1, dir)
	e := s.note(0, x2, y2, dir)
	c := b.curve(score.Slur, a, e)
	return TestCase{
		Name:  name,
		Doc:   b.doc,
		Draws: []engrave.Fragment{b.fragment(c, s.staves[0])},
		Box:   b.box(x2 + 600),
	}
}

// steep is a slur with end points attached to the note heads.  The slope
// is limited by the angle constraint.
func steep(name string, y1, y2 float64) TestCase {
	b := newBuilder()
	s := b.system(1)
	a := s.note(0, 300, y1, score.StemUp)
	e := s.note(0, 700, y2, score.StemUp)
	c := b.curve(score.Slur, a, e)
	return TestCase{
		Name:   name,
		Doc:    b.doc,
		Draws:  []engrave.Fragment{b.fragment(c, s.staves[0])},
		Adjust: headAdjuster(b.doc),
		Box:    b.box(1300),
	}
}

// grace is a slur from a grace note to a main note.  Grace note slurs are
// drawn below and keep their natural slope unless it is very steep.
func grace(name string, y1, y2 float64) TestCase {
	b := newBuilder()
	s := b.system(1)
	a := b.doc.AddElement(s.layers[0], score.Element{
		Kind:  score.KindNote,
		Left:  270,
		Right: 330,
		Y:     y1,
		Grace: true,
		Stem:  &score.StemFacet{Dir: score.StemUp},
	})
	e := s.note(0, 700, y2, score.StemDown)
	c := b.curve(score.Slur, a, e)
	return TestCase{
		Name:   name,
		Doc:    b.doc,
		Draws:  []engrave.Fragment{b.fragment(c, s.staves[0])},
		Adjust: headAdjuster(b.doc),
		Box:    b.box(1300),
	}
}
