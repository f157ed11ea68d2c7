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
	"bytes"
	"log/slog"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/engrave/bezier"
	"seehuhn.de/go/engrave/device"
	"seehuhn.de/go/engrave/score"
)

var pointComparer = cmp.Comparer(func(a, b vec.Vec2) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
})

// fixture is a score with one system, one staff at y = 0 and one layer.
type fixture struct {
	doc   *score.Doc
	sys   score.SystemID
	staff score.StaffID
	layer score.LayerID
}

func newFixture() *fixture {
	doc := score.NewDoc()
	sys := doc.AddSystem()
	staff := doc.AddStaff(sys, 1, 0)
	layer := doc.AddLayer(staff, 1)
	return &fixture{doc: doc, sys: sys, staff: staff, layer: layer}
}

// note adds a note head centred on x.
func (f *fixture) note(layer score.LayerID, x, y float64, dir score.StemDir) score.ElementID {
	var stem *score.StemFacet
	if dir != score.StemNone {
		stem = &score.StemFacet{Dir: dir}
	}
	return f.doc.AddElement(layer, score.Element{
		Kind:  score.KindNote,
		Left:  x - 10,
		Right: x + 10,
		Y:     y,
		Stem:  stem,
	})
}

func (f *fixture) slur(start, end score.ElementID) score.CurveID {
	return f.doc.AddCurve(score.Curve{Kind: score.Slur, Start: start, End: end})
}

func (f *fixture) tie(start, end score.ElementID) score.CurveID {
	return f.doc.AddCurve(score.Curve{Kind: score.Tie, Start: start, End: end})
}

func TestSimpleSlur(t *testing.T) {
	cases := []struct {
		name  string
		y     float64
		dir   score.CurveDir
		endY  float64
		ctrlY float64
	}{
		{"high notes", -90, score.CurveDirAbove, 112.5, 112.5 + 108},
		{"low notes", -450, score.CurveDirBelow, -112.5, -112.5 - 108},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture()
			a := f.note(f.layer, 100, tc.y, score.StemDown)
			b := f.note(f.layer, 300, tc.y, score.StemDown)
			c := f.slur(a, b)

			l := New(f.doc, nil)
			rec := &device.Recorder{}
			ok := l.DrawCurve(NewSession(), rec, Fragment{Curve: c, Staff: f.staff, X1: 100, X2: 300})
			require.True(t, ok)

			p, ok := l.Positioner(c, f.sys)
			require.True(t, ok)
			assert.Equal(t, Seeded, p.State())
			assert.Equal(t, tc.dir, p.Dir())
			assert.False(t, p.IsCrossStaff())
			assert.Zero(t, p.Angle())
			assert.InDelta(t, 54.0, p.Thickness(), 1e-9)

			// span 200: height 1.2 units, offset a quarter of the span
			want := [4]vec.Vec2{
				{X: 100, Y: tc.endY},
				{X: 150, Y: tc.ctrlY},
				{X: 250, Y: tc.ctrlY},
				{X: 300, Y: tc.endY},
			}
			if d := cmp.Diff(want, p.Points(), pointComparer); d != "" {
				t.Errorf("points (-want +got):\n%s", d)
			}

			// both note heads reach into the span
			assert.Equal(t, []SpannedElement{{Element: a}, {Element: b}}, p.Spanned())

			curves := rec.Curves()
			require.Len(t, curves, 1)
			assert.Equal(t, p.Points(), curves[0].Points)
			assert.InDelta(t, 9.0, curves[0].PenWidth, 1e-9)
		})
	}
}

func TestDrawIdempotent(t *testing.T) {
	f := newFixture()
	a := f.note(f.layer, 100, -90, score.StemUp)
	b := f.note(f.layer, 420, -30, score.StemUp)
	c := f.slur(a, b)
	frag := Fragment{Curve: c, Staff: f.staff, X1: 100, X2: 420}

	l := New(f.doc, nil)
	s := NewSession()
	bbox := device.NewBBox()
	require.True(t, l.DrawCurve(s, bbox, frag))

	p, _ := l.Positioner(c, f.sys)
	dir := p.Dir()
	spanned := append([]SpannedElement(nil), p.Spanned()...)

	rec := &device.Recorder{}
	require.True(t, l.DrawCurve(s, rec, frag))
	require.True(t, l.DrawCurve(s, rec, frag))

	curves := rec.Curves()
	require.Len(t, curves, 2)
	if d := cmp.Diff(curves[0], curves[1]); d != "" {
		t.Errorf("second draw differs (-first +second):\n%s", d)
	}
	assert.Equal(t, dir, p.Dir())
	assert.Equal(t, spanned, p.Spanned())

	// the bounding box pass recorded the extent of the curve
	content, ok := p.ContentBounds()
	require.True(t, ok)
	graphic, ok := bbox.Bounds(l.GraphicID(c))
	require.True(t, ok)
	assert.Equal(t, graphic, content)
	assert.Less(t, content.LLx, 100.0)
	assert.Greater(t, content.URx, 420.0)
}

func TestMissingEndpoint(t *testing.T) {
	f := newFixture()
	a := f.note(f.layer, 100, -90, score.StemDown)
	cases := []score.Curve{
		{Kind: score.Slur, Start: a, End: score.NoElement},
		{Kind: score.Slur, Start: score.NoElement, End: a},
		{Kind: score.Tie, Start: a, End: 1000},
	}
	for _, curve := range cases {
		c := f.doc.AddCurve(curve)
		l := New(f.doc, nil)
		rec := &device.Recorder{}
		frag := Fragment{Curve: c, Staff: f.staff, X1: 100, X2: 300}

		assert.False(t, l.DrawCurve(NewSession(), rec, frag))
		assert.False(t, l.DrawCurve(NewSession(), rec, frag))
		assert.Empty(t, rec.Events)

		p, ok := l.Positioner(c, f.sys)
		require.True(t, ok)
		assert.Equal(t, Skipped, p.State())
	}
}

func TestSessionCalibration(t *testing.T) {
	f := newFixture()
	a := f.note(f.layer, 100, -90, score.StemDown)
	b := f.note(f.layer, 300, -90, score.StemDown)
	c := f.note(f.layer, 500, -90, score.StemDown)
	d := f.note(f.layer, 1200, -450, score.StemDown)
	s1 := f.slur(a, b)
	s2 := f.slur(c, d)

	l := New(f.doc, nil)
	s := NewSession()
	assert.Zero(t, s.ThicknessCoefficient())

	rec := &device.Recorder{}
	require.True(t, l.DrawCurve(s, rec, Fragment{Curve: s1, Staff: f.staff, X1: 100, X2: 300}))
	p1, _ := l.Positioner(s1, f.sys)
	want := bezier.ThicknessCoefficient(p1.Points(), p1.Thickness(), p1.Angle(), 9)
	assert.InDelta(t, want, s.ThicknessCoefficient(), 1e-12)
	assert.Positive(t, s.ThicknessCoefficient())

	// the second curve reuses the calibrated value
	require.True(t, l.DrawCurve(s, rec, Fragment{Curve: s2, Staff: f.staff, X1: 500, X2: 1200}))
	assert.InDelta(t, want, s.ThicknessCoefficient(), 1e-12)
	for _, curve := range rec.Curves() {
		assert.InDelta(t, want*54, curve.Thickness, 1e-9)
	}

	s.Reset()
	assert.Zero(t, s.ThicknessCoefficient())
	require.True(t, l.DrawCurve(s, rec, Fragment{Curve: s2, Staff: f.staff, X1: 500, X2: 1200}))
	p2, _ := l.Positioner(s2, f.sys)
	want = bezier.ThicknessCoefficient(p2.Points(), p2.Thickness(), p2.Angle(), 9)
	assert.InDelta(t, want, s.ThicknessCoefficient(), 1e-12)
}

func TestGraphics(t *testing.T) {
	f := newFixture()
	a := f.note(f.layer, 100, -90, score.StemDown)
	b := f.note(f.layer, 300, -90, score.StemDown)
	c := f.doc.AddCurve(score.Curve{Kind: score.Slur, Start: a, End: b, Form: score.LineDotted})

	l := New(f.doc, nil)
	rec := &device.Recorder{}
	frag := Fragment{Curve: c, Staff: f.staff, X1: 100, X2: 300}
	require.True(t, l.DrawCurve(NewSession(), rec, frag))
	frag.Graphic = "slur-0"
	require.True(t, l.DrawCurve(NewSession(), rec, frag))

	ops := make([]device.Op, len(rec.Events))
	for i, e := range rec.Events {
		ops[i] = e.Op
	}
	assert.Equal(t, []device.Op{
		device.OpStart, device.OpCurve, device.OpEnd,
		device.OpResume, device.OpCurve, device.OpEnd,
	}, ops)
	assert.Equal(t, "slur-0", rec.Events[0].ID)
	assert.Equal(t, "slur-0", rec.Events[3].ID)
	assert.Equal(t, device.Dotted, rec.Events[1].Curve.Style)
}

func TestLineStyle(t *testing.T) {
	assert.Equal(t, device.Solid, lineStyle(score.LineSolid))
	assert.Equal(t, device.Dashed, lineStyle(score.LineDashed))
	assert.Equal(t, device.Dotted, lineStyle(score.LineDotted))
	assert.Equal(t, device.Solid, lineStyle(score.LineWavy))
}

func TestCrossStaffSlur(t *testing.T) {
	cases := []struct {
		name  string
		x2    float64
		angle float64
	}{
		// slope 5: too steep, the angle is limited
		{"steep", 300, -math.Pi / 3},
		// slope 10/3: the natural angle is kept
		{"shallow", 400, math.Atan2(-1000, 300)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture()
			staff2 := f.doc.AddStaff(f.sys, 2, -1000)
			layer2 := f.doc.AddLayer(staff2, 1)
			a := f.note(f.layer, 100, -90, score.StemDown)
			b := f.note(layer2, tc.x2, -1090, score.StemDown)
			c := f.slur(a, b)

			l := New(f.doc, nil)
			l.Adjust = func(_ Fragment, _ score.CurveDir, e Endpoints) Endpoints {
				e.Y2 = f.doc.Staff(staff2).Y
				return e
			}
			require.True(t, l.DrawCurve(NewSession(), &device.Recorder{},
				Fragment{Curve: c, Staff: f.staff, X1: 100, X2: tc.x2}))

			p, _ := l.Positioner(c, f.sys)
			assert.Equal(t, staff2, p.CrossStaff())
			assert.InDelta(t, tc.angle, p.Angle(), 1e-9)

			// the curve still starts at the first end point
			assert.InDelta(t, 100, p.Points()[0].X, 1e-9)
			assert.InDelta(t, 112.5, p.Points()[0].Y, 1e-9)
		})
	}
}

func TestBrokenSlur(t *testing.T) {
	doc := score.NewDoc()
	sysA := doc.AddSystem()
	staffA := doc.AddStaff(sysA, 1, 0)
	layerA := doc.AddLayer(staffA, 1)
	sysB := doc.AddSystem()
	staffB := doc.AddStaff(sysB, 1, 0)
	layerB := doc.AddLayer(staffB, 1)

	outside := func(place score.Place) score.Element {
		return score.Element{
			Kind:  score.KindArtic,
			Left:  0,
			Right: 0,
			Artic: &score.ArticFacet{Place: place, Outside: true},
		}
	}

	start := doc.AddElement(layerA, score.Element{Kind: score.KindNote, Left: 90, Right: 110, Y: -90, Stem: &score.StemFacet{Dir: score.StemDown}})
	articStart := doc.AddChild(start, outside(score.PlaceAbove))
	end := doc.AddElement(layerB, score.Element{Kind: score.KindNote, Left: 290, Right: 310, Y: -90, Stem: &score.StemFacet{Dir: score.StemDown}})
	articEnd := doc.AddChild(end, outside(score.PlaceAbove))
	articBelow := doc.AddChild(end, outside(score.PlaceBelow))
	articInside := doc.AddChild(end, score.Element{Kind: score.KindArtic, Artic: &score.ArticFacet{Place: score.PlaceAbove}})

	// a tie in system A, overlapping both fragments horizontally
	t1 := doc.AddElement(layerA, score.Element{Kind: score.KindNote, Left: 140, Right: 160, Y: -90})
	t2 := doc.AddElement(layerA, score.Element{Kind: score.KindNote, Left: 240, Right: 260, Y: -90})
	tie := doc.AddCurve(score.Curve{Kind: score.Tie, Start: t1, End: t2})
	slur := doc.AddCurve(score.Curve{Kind: score.Slur, Start: start, End: end})

	l := New(doc, nil)
	s := NewSession()
	bbox := device.NewBBox()
	require.True(t, l.DrawCurve(s, bbox, Fragment{Curve: tie, Staff: staffA, X1: 160, X2: 240}))
	tieP, _ := l.Positioner(tie, sysA)

	require.True(t, l.DrawCurve(s, bbox, Fragment{Curve: slur, Staff: staffA, X1: 100, X2: 500, Spanning: SpanStart}))
	require.True(t, l.DrawCurve(s, bbox, Fragment{Curve: slur, Staff: staffB, X1: 50, X2: 300, Spanning: SpanEnd, Graphic: l.GraphicID(slur)}))

	pA, ok := l.Positioner(slur, sysA)
	require.True(t, ok)
	pB, ok := l.Positioner(slur, sysB)
	require.True(t, ok)
	require.NotSame(t, pA, pB)
	assert.Equal(t, score.CurveDirAbove, pA.Dir())
	assert.Equal(t, score.CurveDirAbove, pB.Dir())
	assert.False(t, pA.IsCrossStaff())

	assert.Equal(t, []ArticAttachment{{Positioner: pA, AtStart: true}}, l.Artics.Attachments(articStart))
	assert.Equal(t, []ArticAttachment{{Positioner: pB, AtStart: false}}, l.Artics.Attachments(articEnd))
	assert.Empty(t, l.Artics.Attachments(articBelow))
	assert.Empty(t, l.Artics.Attachments(articInside))

	hasTie := func(p *CurvePositioner) bool {
		for _, sp := range p.Spanned() {
			if sp.Tie == tieP {
				return true
			}
		}
		return false
	}
	assert.True(t, hasTie(pA), "tie in the same system")
	assert.False(t, hasTie(pB), "tie in another system")

	// after the system is rebuilt, seeding starts over
	l.ResetSystem(sysA)
	assert.Equal(t, Unseeded, pA.State())
	assert.Equal(t, Seeded, pB.State())
	assert.Empty(t, l.Artics.Attachments(articStart))
	require.True(t, l.DrawCurve(s, bbox, Fragment{Curve: slur, Staff: staffA, X1: 100, X2: 500, Spanning: SpanStart}))
	assert.Equal(t, []ArticAttachment{{Positioner: pA, AtStart: true}}, l.Artics.Attachments(articStart))
}

func TestReseedArtics(t *testing.T) {
	f := newFixture()
	a := f.note(f.layer, 100, -90, score.StemDown)
	above := f.doc.AddChild(a, score.Element{
		Kind: score.KindArtic, Left: 95, Right: 105, Y: 90,
		Artic: &score.ArticFacet{Place: score.PlaceAbove, Outside: true},
	})
	below := f.doc.AddChild(a, score.Element{
		Kind: score.KindArtic, Left: 95, Right: 105, Y: -270,
		Artic: &score.ArticFacet{Place: score.PlaceBelow, Outside: true},
	})
	b := f.note(f.layer, 300, -90, score.StemDown)
	c := f.slur(a, b)
	frag := Fragment{Curve: c, Staff: f.staff, X1: 110, X2: 290}

	l := New(f.doc, nil)
	require.True(t, l.DrawCurve(NewSession(), &device.Recorder{}, frag))
	p, _ := l.Positioner(c, f.sys)
	require.Equal(t, score.CurveDirAbove, p.Dir())
	assert.Equal(t, []ArticAttachment{{Positioner: p, AtStart: true}}, l.Artics.Attachments(above))
	assert.Empty(t, l.Artics.Attachments(below))

	// seeding again after a change of direction replaces the registration
	p.Reset()
	f.doc.Curve(c).Dir = score.CurveDirBelow
	require.True(t, l.DrawCurve(NewSession(), &device.Recorder{}, frag))
	require.Equal(t, score.CurveDirBelow, p.Dir())
	assert.Empty(t, l.Artics.Attachments(above))
	assert.Equal(t, []ArticAttachment{{Positioner: p, AtStart: true}}, l.Artics.Attachments(below))
}

func TestZeroWidthFragment(t *testing.T) {
	f := newFixture()
	a := f.note(f.layer, 200, -90, score.StemDown)
	b := f.note(f.layer, 200, -90, score.StemDown)
	c := f.slur(a, b)

	l := New(f.doc, nil)
	s := NewSession()
	rec := &device.Recorder{}
	require.True(t, l.DrawCurve(s, rec, Fragment{Curve: c, Staff: f.staff, X1: 200, X2: 200}))

	p, _ := l.Positioner(c, f.sys)
	assert.Equal(t, Seeded, p.State())
	assert.Zero(t, p.Angle())
	for _, pt := range p.Points() {
		assert.False(t, math.IsNaN(pt.X) || math.IsInf(pt.X, 0), "point %v", pt)
		assert.False(t, math.IsNaN(pt.Y) || math.IsInf(pt.Y, 0), "point %v", pt)
	}
	assert.Empty(t, p.Spanned())

	coef := s.ThicknessCoefficient()
	assert.Positive(t, coef)
	assert.False(t, math.IsInf(coef, 0) || math.IsNaN(coef))
	curves := rec.Curves()
	require.Len(t, curves, 1)
	assert.False(t, math.IsNaN(curves[0].Thickness))
}

func TestAlignmentStaves(t *testing.T) {
	f := newFixture()
	staff2 := f.doc.AddStaff(f.sys, 2, -1000)
	layer2 := f.doc.AddLayer(staff2, 1)

	t1 := f.note(f.layer, 150, -90, score.StemDown)
	t2 := f.note(f.layer, 250, -90, score.StemDown)
	tie := f.tie(t1, t2)
	a := f.note(layer2, 100, -1090, score.StemDown)
	b := f.note(layer2, 300, -1090, score.StemDown)
	slur := f.slur(a, b)

	l := New(f.doc, nil)
	s := NewSession()
	bbox := device.NewBBox()
	tieFrag := Fragment{Curve: tie, Staff: f.staff, X1: 160, X2: 240}
	require.True(t, l.DrawCurve(s, bbox, tieFrag))
	require.True(t, l.DrawCurve(s, bbox, tieFrag))
	tieFrag.Staff = staff2
	require.True(t, l.DrawCurve(s, bbox, tieFrag))

	tieP, _ := l.Positioner(tie, f.sys)
	assert.Equal(t, []*CurvePositioner{tieP}, l.Alignment(f.staff).Positioners(score.Tie))
	assert.Equal(t, []*CurvePositioner{tieP}, l.Alignment(staff2).Positioners(score.Tie))

	// a slur on the second staff sees the tie
	require.True(t, l.DrawCurve(s, bbox, Fragment{Curve: slur, Staff: staff2, X1: 110, X2: 290}))
	p, _ := l.Positioner(slur, f.sys)
	var ties []*CurvePositioner
	for _, sp := range p.Spanned() {
		if sp.Tie != nil {
			ties = append(ties, sp.Tie)
		}
	}
	assert.Equal(t, []*CurvePositioner{tieP}, ties)
}

func TestLogging(t *testing.T) {
	buf := &bytes.Buffer{}
	SetLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	f := newFixture()
	a := f.note(f.layer, 100, -90, score.StemDown)
	b := f.note(f.layer, 300, -90, score.StemDown)
	c := f.slur(a, b)
	missing := f.slur(a, score.NoElement)

	l := New(f.doc, nil)
	l.DrawCurve(NewSession(), &device.Recorder{}, Fragment{Curve: c, Staff: f.staff, X1: 100, X2: 300})
	l.DrawCurve(NewSession(), &device.Recorder{}, Fragment{Curve: missing, Staff: f.staff, X1: 100, X2: 300})

	out := buf.String()
	assert.Contains(t, out, "curve seeded")
	assert.Contains(t, out, "dir=above")
	assert.Contains(t, out, "thickness coefficient calibrated")
	assert.Contains(t, out, "curve skipped")

	SetLogger(nil)
	assert.False(t, Logger().Enabled(t.Context(), slog.LevelError))
}
