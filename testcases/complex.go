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

var chordCases = []TestCase{
	chordTone("low_tone", 0, score.StemUp),
	chordTone("top_tone", 2, score.StemUp),
	chordTone("centre_tone_stem_up", 1, score.StemUp),
	chordTone("centre_tone_stem_down", 1, score.StemDown),
	mixedStems(),
	twoVoices(),
}

// chordTone is a slur from one tone of a three-note chord to a note.
func chordTone(name string, tone int, dir score.StemDir) TestCase {
	b := newBuilder()
	s := b.system(1)
	_, tones := s.chord(0, 300, dir, -540, -360, -180)
	e := s.note(0, 1100, -360, dir)
	c := b.curve(score.Slur, tones[tone], e)
	return TestCase{
		Name:  name,
		Doc:   b.doc,
		Draws: []engrave.Fragment{b.fragment(c, s.staves[0])},
		Box:   b.box(1700),
	}
}

// mixedStems is a slur over notes with stems in both directions.  It is
// drawn above.
func mixedStems() TestCase {
	b := newBuilder()
	s := b.system(1)
	a := s.note(0, 300, -540, score.StemUp)
	s.note(0, 700, -90, score.StemDown)
	s.note(0, 1100, -450, score.StemUp)
	e := s.note(0, 1500, -90, score.StemDown)
	c := b.curve(score.Slur, a, e)
	return TestCase{
		Name:  "mixed_stems",
		Doc:   b.doc,
		Draws: []engrave.Fragment{b.fragment(c, s.staves[0])},
		Box:   b.box(2100),
	}
}

// twoVoices has a slur in each of two voices.  The upper voice slur goes
// above, the lower voice slur below, whatever the stems say.
func twoVoices() TestCase {
	b := newBuilder()
	s := b.system(1)
	lower := b.doc.AddLayer(s.staves[0], 2)
	a1 := s.note(0, 300, -180, score.StemDown)
	e1 := s.note(0, 1100, -180, score.StemDown)
	a2 := s.noteIn(lower, 300, -540, score.StemUp)
	e2 := s.noteIn(lower, 1100, -540, score.StemUp)
	c1 := b.curve(score.Slur, a1, e1)
	c2 := b.curve(score.Slur, a2, e2)
	return TestCase{
		Name: "two_voices",
		Doc:  b.doc,
		Draws: []engrave.Fragment{
			b.fragment(c1, s.staves[0]),
			b.fragment(c2, s.staves[0]),
		},
		Box: b.box(1700),
	}
}
