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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/engrave/device"
	"seehuhn.de/go/engrave/score"
)

func resolve(l *Layout, c score.CurveID, staff score.StaffID, spanning Spanning) score.CurveDir {
	curve := l.Doc.Curve(c)
	q := &directionQuery{
		curve:      c,
		start:      curve.Start,
		end:        curve.End,
		staff:      staff,
		spanning:   spanning,
		doubleUnit: l.Options.DrawingDoubleUnit(l.Doc.Staff(staff).Size),
	}
	return resolveDirection(l.Doc, l.Directions, q)
}

func TestExplicitDirection(t *testing.T) {
	f := newFixture()
	f.doc.Layer(f.layer).StemDir = score.StemDown
	chord := f.doc.AddElement(f.layer, score.Element{
		Kind: score.KindChord, Left: 90, Right: 110, Stem: &score.StemFacet{Dir: score.StemUp},
	})
	low := f.doc.AddChild(chord, score.Element{Kind: score.KindNote, Left: 90, Right: 110, Y: -450})
	f.doc.AddChild(chord, score.Element{Kind: score.KindNote, Left: 90, Right: 110, Y: -360})
	end := f.note(f.layer, 300, -450, score.StemUp)

	for _, want := range []score.CurveDir{score.CurveDirAbove, score.CurveDirBelow} {
		c := f.doc.AddCurve(score.Curve{Kind: score.Slur, Start: low, End: end, Dir: want})
		l := New(f.doc, nil)
		l.Directions.Set(c, score.CurveDirBelow)
		if want == score.CurveDirBelow {
			l.Directions.Set(c, score.CurveDirAbove)
		}
		for _, sp := range []Spanning{SpanStartEnd, SpanStart, SpanEnd, SpanOpen} {
			assert.Equal(t, want, resolve(l, c, f.staff, sp), "%s fragment", sp)
		}
	}
}

func TestGraceToNote(t *testing.T) {
	f := newFixture()
	grace := f.doc.AddElement(f.layer, score.Element{
		Kind: score.KindNote, Left: 90, Right: 100, Y: -90, Grace: true,
		Stem: &score.StemFacet{Dir: score.StemDown},
	})
	grace2 := f.doc.AddElement(f.layer, score.Element{
		Kind: score.KindNote, Left: 150, Right: 160, Y: -90, Grace: true,
		Stem: &score.StemFacet{Dir: score.StemDown},
	})
	main := f.note(f.layer, 300, -90, score.StemDown)
	c := f.slur(grace, main)

	l := New(f.doc, nil)
	assert.Equal(t, score.CurveDirBelow, resolve(l, c, f.staff, SpanStartEnd))

	// the grace rule comes before the cached direction
	l.Directions.Set(c, score.CurveDirAbove)
	assert.Equal(t, score.CurveDirBelow, resolve(l, c, f.staff, SpanStartEnd))
	l.Directions.Delete(c)

	// grace to grace falls through to the vertical position
	c2 := f.slur(grace, grace2)
	assert.Equal(t, score.CurveDirAbove, resolve(l, c2, f.staff, SpanStartEnd))

	// a layer with a stem preference disables the grace rule
	f.doc.Layer(f.layer).StemDir = score.StemUp
	assert.Equal(t, score.CurveDirAbove, resolve(l, c, f.staff, SpanStartEnd))
}

func TestCachedDirection(t *testing.T) {
	f := newFixture()
	a := f.note(f.layer, 100, -90, score.StemUp)
	b := f.note(f.layer, 300, -90, score.StemUp)
	c := f.slur(a, b)

	l := New(f.doc, nil)
	assert.Equal(t, score.CurveDirBelow, resolve(l, c, f.staff, SpanStartEnd))

	l.Directions.Set(c, score.CurveDirAbove)
	assert.Equal(t, score.CurveDirAbove, resolve(l, c, f.staff, SpanStartEnd))

	// the cached value beats the layer preference
	f.doc.Layer(f.layer).StemDir = score.StemDown
	assert.Equal(t, score.CurveDirAbove, resolve(l, c, f.staff, SpanStartEnd))
}

func TestLayerPreference(t *testing.T) {
	f := newFixture()
	layer2 := f.doc.AddLayer(f.staff, 2)

	// stems contradict the layer preference
	a1 := f.note(f.layer, 100, -450, score.StemDown)
	b1 := f.note(f.layer, 300, -450, score.StemDown)
	a2 := f.note(layer2, 100, -90, score.StemUp)
	b2 := f.note(layer2, 300, -90, score.StemUp)
	upper := f.slur(a1, b1)
	lower := f.slur(a2, b2)

	l := New(f.doc, nil)
	assert.Equal(t, score.CurveDirAbove, resolve(l, upper, f.staff, SpanStartEnd))
	assert.Equal(t, score.CurveDirBelow, resolve(l, lower, f.staff, SpanStartEnd))
}

func TestDistantVoice(t *testing.T) {
	f := newFixture()
	layer2 := f.doc.AddLayer(f.staff, 2)
	f.note(layer2, 2000, -450, score.StemDown)

	// the second voice does not reach the slur, so the stems decide
	a := f.note(f.layer, 100, -90, score.StemUp)
	b := f.note(f.layer, 300, -90, score.StemUp)
	c := f.slur(a, b)

	l := New(f.doc, nil)
	assert.Equal(t, score.CurveDirBelow, resolve(l, c, f.staff, SpanStartEnd))

	// once it does, the layer preference wins
	f.note(layer2, 100, -450, score.StemDown)
	assert.Equal(t, score.CurveDirAbove, resolve(l, c, f.staff, SpanStartEnd))
}

func TestChordPosition(t *testing.T) {
	f := newFixture()
	chord := f.doc.AddElement(f.layer, score.Element{
		Kind: score.KindChord, Left: 90, Right: 110, Stem: &score.StemFacet{Dir: score.StemUp},
	})
	low := f.doc.AddChild(chord, score.Element{Kind: score.KindNote, Left: 90, Right: 110, Y: -180})
	mid := f.doc.AddChild(chord, score.Element{Kind: score.KindNote, Left: 90, Right: 110, Y: -90})
	top := f.doc.AddChild(chord, score.Element{Kind: score.KindNote, Left: 90, Right: 110, Y: 0})
	end := f.note(f.layer, 300, -90, score.StemUp)

	l := New(f.doc, nil)
	cases := []struct {
		name string
		tone score.ElementID
		stem score.StemDir
		want score.CurveDir
	}{
		{"low tone", low, score.StemUp, score.CurveDirBelow},
		{"top tone", top, score.StemUp, score.CurveDirAbove},
		{"centre tone, stem up", mid, score.StemUp, score.CurveDirBelow},
		{"centre tone, stem down", mid, score.StemDown, score.CurveDirAbove},
		{"low tone, stem down", low, score.StemDown, score.CurveDirBelow},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f.doc.Element(chord).Stem.Dir = tc.stem
			c := f.slur(tc.tone, end)
			assert.Equal(t, tc.want, resolve(l, c, f.staff, SpanStartEnd))
		})
	}
}

func TestStemFallback(t *testing.T) {
	f := newFixture()
	upHigh := f.note(f.layer, 100, -90, score.StemUp)
	downHigh := f.note(f.layer, 200, -90, score.StemDown)
	downLow := f.note(f.layer, 300, -450, score.StemDown)
	noneHigh := f.note(f.layer, 400, -90, score.StemNone)
	noneMiddle := f.note(f.layer, 500, -360, score.StemNone)
	end := f.note(f.layer, 600, -90, score.StemUp)

	l := New(f.doc, nil)
	cases := []struct {
		name     string
		start    score.ElementID
		end      score.ElementID
		spanning Spanning
		want     score.CurveDir
	}{
		{"stem up", upHigh, downHigh, SpanStartEnd, score.CurveDirBelow},
		{"stem down, high", downHigh, end, SpanStartEnd, score.CurveDirAbove},
		{"stem down, low", downLow, end, SpanStartEnd, score.CurveDirBelow},
		{"no stem, high", noneHigh, end, SpanStart, score.CurveDirAbove},
		{"no stem, on the middle line", noneMiddle, end, SpanStartEnd, score.CurveDirBelow},
		{"end fragment uses the end stem", downHigh, end, SpanEnd, score.CurveDirBelow},
		{"open fragment uses the position", upHigh, end, SpanOpen, score.CurveDirAbove},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := f.slur(tc.start, tc.end)
			assert.Equal(t, tc.want, resolve(l, c, f.staff, tc.spanning))
		})
	}
}

func TestTimestampEndpoints(t *testing.T) {
	f := newFixture()
	high := f.doc.AddTimestamp(f.sys, 100, -90)
	low := f.doc.AddTimestamp(f.sys, 300, -450)

	l := New(f.doc, nil)
	layer, anchor := layerContext(f.doc, high, low)
	assert.Equal(t, score.NoLayer, layer)
	assert.Equal(t, score.NoElement, anchor)

	assert.Equal(t, score.CurveDirAbove, resolve(l, f.slur(high, low), f.staff, SpanStartEnd))
	assert.Equal(t, score.CurveDirBelow, resolve(l, f.slur(low, high), f.staff, SpanStartEnd))

	// with one real end point, its layer is used
	n := f.note(f.layer, 200, -450, score.StemDown)
	layer, anchor = layerContext(f.doc, high, n)
	assert.Equal(t, f.layer, layer)
	assert.Equal(t, n, anchor)
}

func TestMixedStems(t *testing.T) {
	t.Run("same staff", func(t *testing.T) {
		f := newFixture()
		a := f.note(f.layer, 100, -450, score.StemUp)
		f.note(f.layer, 200, -90, score.StemDown)
		b := f.note(f.layer, 300, -450, score.StemUp)
		c := f.slur(a, b)

		// only whole-span fragments record a direction
		l := New(f.doc, nil)
		require.True(t, l.DrawCurve(NewSession(), &device.Recorder{},
			Fragment{Curve: c, Staff: f.staff, X1: 100, X2: 300, Spanning: SpanStart}))
		_, ok := l.Directions.Get(c)
		assert.False(t, ok)
		p, _ := l.Positioner(c, f.sys)
		assert.Equal(t, score.CurveDirBelow, p.Dir())

		l = New(f.doc, nil)
		require.True(t, l.DrawCurve(NewSession(), &device.Recorder{},
			Fragment{Curve: c, Staff: f.staff, X1: 100, X2: 300}))
		dir, ok := l.Directions.Get(c)
		assert.True(t, ok)
		assert.Equal(t, score.CurveDirAbove, dir)
		p, _ = l.Positioner(c, f.sys)
		assert.Equal(t, score.CurveDirAbove, p.Dir())
		assert.Equal(t, 1, l.Directions.Len())
	})

	t.Run("cross staff", func(t *testing.T) {
		f := newFixture()
		staff2 := f.doc.AddStaff(f.sys, 2, -1000)
		layer2 := f.doc.AddLayer(staff2, 1)
		a := f.note(f.layer, 100, -90, score.StemUp)
		b := f.note(layer2, 300, -1090, score.StemDown)
		c := f.slur(a, b)

		l := New(f.doc, nil)
		require.True(t, l.DrawCurve(NewSession(), &device.Recorder{},
			Fragment{Curve: c, Staff: f.staff, X1: 100, X2: 300}))
		dir, ok := l.Directions.Get(c)
		assert.True(t, ok)
		assert.Equal(t, score.CurveDirBelow, dir)
		p, _ := l.Positioner(c, f.sys)
		assert.Equal(t, score.CurveDirBelow, p.Dir())
		assert.Equal(t, staff2, p.CrossStaff())
	})
}
