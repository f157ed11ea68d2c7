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

// Package testcases holds curve layout scenarios, shared by the tests and
// by the preview and export tools.
package testcases

import (
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/engrave"
	"seehuhn.de/go/engrave/device"
	"seehuhn.de/go/engrave/options"
	"seehuhn.de/go/engrave/score"
)

// TestCase defines a single layout scenario.
type TestCase struct {
	Name string // lowercase a-z and _ only
	Doc  *score.Doc

	// Draws lists the fragments in drawing order.  Ties come before the
	// slurs which must avoid them.
	Draws []engrave.Fragment

	// Adjust is an optional end point adjustment.
	Adjust engrave.EndpointAdjuster

	// Box is the area of interest in layout coordinates.
	Box rect.Rect
}

// Run lays out the test case.  All fragments are drawn once in a bounding
// box pass, and then again onto dc if dc is not nil.
func (tc *TestCase) Run(opt *options.Options, dc device.Context) *engrave.Layout {
	l := engrave.New(tc.Doc, opt)
	l.Adjust = tc.Adjust
	s := engrave.NewSession()

	bbox := device.NewBBox()
	for _, f := range tc.Draws {
		l.DrawCurve(s, bbox, f)
	}
	if dc != nil {
		for _, f := range tc.Draws {
			l.DrawCurve(s, dc, f)
		}
	}
	return l
}

// staffDistance is the vertical distance between the top lines of two
// adjacent staves.
const staffDistance = 1200

// systemDistance is the vertical distance between two systems.
const systemDistance = 3000

// builder assembles the score of a test case.
type builder struct {
	doc *score.Doc
}

func newBuilder() *builder {
	return &builder{doc: score.NewDoc()}
}

// system is one system of a test case, with one layer per staff.
type system struct {
	doc    *score.Doc
	id     score.SystemID
	staves []score.StaffID
	layers []score.LayerID
}

// system adds a system with the given number of staves.
func (b *builder) system(staves int) *system {
	id := b.doc.AddSystem()
	top := -float64(b.doc.NumSystems()-1) * systemDistance
	s := &system{doc: b.doc, id: id}
	for i := range staves {
		staff := b.doc.AddStaff(id, i+1, top-float64(i)*staffDistance)
		s.staves = append(s.staves, staff)
		s.layers = append(s.layers, b.doc.AddLayer(staff, 1))
	}
	return s
}

// staffY returns the position of the top line of staff i.
func (s *system) staffY(i int) float64 {
	return s.doc.Staff(s.staves[i]).Y
}

// note adds a note head centred on x to staff i.  The position y is given
// relative to the top staff line.
func (s *system) note(i int, x, y float64, dir score.StemDir) score.ElementID {
	return s.noteIn(s.layers[i], x, s.staffY(i)+y, dir)
}

func (s *system) noteIn(layer score.LayerID, x, y float64, dir score.StemDir) score.ElementID {
	var stem *score.StemFacet
	if dir != score.StemNone {
		stem = &score.StemFacet{Dir: dir}
	}
	return s.doc.AddElement(layer, score.Element{
		Kind:  score.KindNote,
		Left:  x - 45,
		Right: x + 45,
		Y:     y,
		Stem:  stem,
	})
}

// chord adds a chord with tones at the given positions relative to the top
// line of staff i, and returns the chord and its tones from low to high.
func (s *system) chord(i int, x float64, dir score.StemDir, ys ...float64) (score.ElementID, []score.ElementID) {
	chord := s.doc.AddElement(s.layers[i], score.Element{
		Kind:  score.KindChord,
		Left:  x - 45,
		Right: x + 45,
		Stem:  &score.StemFacet{Dir: dir},
	})
	for _, y := range ys {
		s.doc.AddChild(chord, score.Element{
			Kind:  score.KindNote,
			Left:  x - 45,
			Right: x + 45,
			Y:     s.staffY(i) + y,
		})
	}
	return chord, s.doc.Element(chord).Chord.Tones
}

// artic adds an articulation to a note.
func (s *system) artic(note score.ElementID, place score.Place, outside bool) score.ElementID {
	e := s.doc.Element(note)
	y := e.Y + 180
	if place == score.PlaceBelow {
		y = e.Y - 180
	}
	return s.doc.AddChild(note, score.Element{
		Kind:  score.KindArtic,
		Left:  e.Left + 15,
		Right: e.Right - 15,
		Y:     y,
		Artic: &score.ArticFacet{Place: place, Outside: outside},
	})
}

func (b *builder) curve(kind score.CurveKind, start, end score.ElementID) score.CurveID {
	return b.doc.AddCurve(score.Curve{Kind: kind, Start: start, End: end})
}

// fragment returns a whole-span fragment from the right edge of the start
// element to the left edge of the end element.
func (b *builder) fragment(c score.CurveID, staff score.StaffID) engrave.Fragment {
	curve := b.doc.Curve(c)
	return engrave.Fragment{
		Curve: c,
		Staff: staff,
		X1:    b.doc.Element(curve.Start).Right,
		X2:    b.doc.Element(curve.End).Left,
	}
}

// box returns the area covering all systems up to x = width.
func (b *builder) box(width float64) rect.Rect {
	n := b.doc.NumSystems()
	low := 0.0
	for sys := range n {
		for _, staff := range b.doc.Staves(score.SystemID(sys)) {
			low = min(low, b.doc.Staff(staff).Y)
		}
	}
	return rect.Rect{LLx: 0, LLy: low - 1200, URx: width, URy: 1200}
}

// headAdjuster moves the visible end points of a curve to the vertical
// position of the notes they belong to.
func headAdjuster(doc *score.Doc) engrave.EndpointAdjuster {
	return func(f engrave.Fragment, _ score.CurveDir, e engrave.Endpoints) engrave.Endpoints {
		c := doc.Curve(f.Curve)
		if f.Spanning == engrave.SpanStartEnd || f.Spanning == engrave.SpanStart {
			e.Y1 = doc.Element(c.Start).Y
		}
		if f.Spanning == engrave.SpanStartEnd || f.Spanning == engrave.SpanEnd {
			e.Y2 = doc.Element(c.End).Y
		}
		return e
	}
}
