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

var tieCases = []TestCase{
	tieAlone(),
	slurOverTie(score.StemDown),
	slurOverTie(score.StemUp),
}

func tieAlone() TestCase {
	b := newBuilder()
	s := b.system(1)
	a := s.note(0, 300, -270, score.StemDown)
	e := s.note(0, 900, -270, score.StemDown)
	c := b.curve(score.Tie, a, e)
	return TestCase{
		Name:  "tie",
		Doc:   b.doc,
		Draws: []engrave.Fragment{b.fragment(c, s.staves[0])},
		Box:   b.box(1500),
	}
}

// slurOverTie is a slur over four notes, the middle two of which are tied.
// The tie is drawn first, so that the slur sees it.
func slurOverTie(dir score.StemDir) TestCase {
	name := "slur_over_tie_stems_down"
	if dir == score.StemUp {
		name = "slur_over_tie_stems_up"
	}
	b := newBuilder()
	s := b.system(1)
	a := s.note(0, 300, -360, dir)
	t1 := s.note(0, 700, -270, dir)
	t2 := s.note(0, 1100, -270, dir)
	e := s.note(0, 1500, -360, dir)
	tie := b.curve(score.Tie, t1, t2)
	slur := b.curve(score.Slur, a, e)
	return TestCase{
		Name: name,
		Doc:  b.doc,
		Draws: []engrave.Fragment{
			b.fragment(tie, s.staves[0]),
			b.fragment(slur, s.staves[0]),
		},
		Box: b.box(2100),
	}
}
