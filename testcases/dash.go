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

var formCases = []TestCase{
	lineForm("solid", score.LineSolid),
	lineForm("dashed", score.LineDashed),
	lineForm("dotted", score.LineDotted),
	lineForm("wavy", score.LineWavy),
}

// lineForm is a slur drawn in the given line style.
func lineForm(name string, form score.LineForm) TestCase {
	b := newBuilder()
	s := b.system(1)
	a := s.note(0, 300, -90, score.StemDown)
	e := s.note(0, 1500, -90, score.StemDown)
	c := b.doc.AddCurve(score.Curve{Kind: score.Slur, Start: a, End: e, Form: form})
	return TestCase{
		Name:  name,
		Doc:   b.doc,
		Draws: []engrave.Fragment{b.fragment(c, s.staves[0])},
		Box:   b.box(2100),
	}
}
