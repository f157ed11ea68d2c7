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
	"slices"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/engrave/score"
)

// State is the lifecycle state of a [CurvePositioner].
type State uint8

// These are the positioner states.  A positioner starts Unseeded and moves
// to either Seeded or Skipped on its first draw.
const (
	Unseeded State = iota
	Seeded
	Skipped
)

func (s State) String() string {
	switch s {
	case Seeded:
		return "seeded"
	case Skipped:
		return "skipped"
	default:
		return "unseeded"
	}
}

// SpannedElement is an object lying inside the horizontal span of a curve.
// Exactly one of the two fields is set.
type SpannedElement struct {
	Element score.ElementID
	Tie     *CurvePositioner
}

// CurvePositioner holds the layout state of one curve fragment, i.e. of a
// slur or tie within one system.
type CurvePositioner struct {
	curve  score.CurveID
	kind   score.CurveKind
	system score.SystemID
	staff  score.StaffID

	state      State
	points     [4]vec.Vec2
	thickness  float64
	angle      float64
	dir        score.CurveDir
	crossStaff score.StaffID
	spanned    []SpannedElement

	content    rect.Rect
	hasContent bool
}

func newPositioner(curve score.CurveID, kind score.CurveKind, sys score.SystemID, staff score.StaffID) *CurvePositioner {
	return &CurvePositioner{
		curve:      curve,
		kind:       kind,
		system:     sys,
		staff:      staff,
		crossStaff: score.NoStaff,
	}
}

// Curve returns the curve this positioner belongs to.
func (p *CurvePositioner) Curve() score.CurveID { return p.curve }

// Kind returns whether the positioner belongs to a slur or a tie.
func (p *CurvePositioner) Kind() score.CurveKind { return p.kind }

// System returns the system of the fragment.
func (p *CurvePositioner) System() score.SystemID { return p.system }

// Staff returns the staff the fragment is drawn on.
func (p *CurvePositioner) Staff() score.StaffID { return p.staff }

// State returns the lifecycle state.
func (p *CurvePositioner) State() State { return p.state }

// Points returns the end and control points.  The result is only
// meaningful once the positioner is seeded.
func (p *CurvePositioner) Points() [4]vec.Vec2 { return p.points }

// Thickness returns the midpoint thickness in layout units.
func (p *CurvePositioner) Thickness() float64 { return p.thickness }

// Angle returns the angle of the line between the end points, in radians.
func (p *CurvePositioner) Angle() float64 { return p.angle }

// Dir returns the resolved direction.
func (p *CurvePositioner) Dir() score.CurveDir { return p.dir }

// CrossStaff returns the staff the curve is treated as belonging to, or
// score.NoStaff if the curve is not cross-staff.
func (p *CurvePositioner) CrossStaff() score.StaffID { return p.crossStaff }

// IsCrossStaff reports whether the curve is cross-staff.
func (p *CurvePositioner) IsCrossStaff() bool { return p.crossStaff != score.NoStaff }

// Spanned returns the objects inside the span of the curve, as found when
// the positioner was seeded.  The caller must not modify the result.
func (p *CurvePositioner) Spanned() []SpannedElement { return p.spanned }

// ContentBounds returns the bounding box recorded by the last bounding box
// pass.  The second result is false if no such pass has drawn the curve.
func (p *CurvePositioner) ContentBounds() (rect.Rect, bool) {
	return p.content, p.hasContent
}

// SetContentBounds records the bounding box of the drawn curve.
func (p *CurvePositioner) SetContentBounds(bbox rect.Rect) {
	p.content = bbox
	p.hasContent = true
}

// Reset returns the positioner to the unseeded state, so that the next draw
// seeds it again.  This is used when a system is laid out afresh.  The
// articulation registrations of the positioner are replaced when it is
// seeded again.
func (p *CurvePositioner) Reset() {
	p.state = Unseeded
	p.points = [4]vec.Vec2{}
	p.thickness = 0
	p.angle = 0
	p.dir = score.CurveDirNone
	p.crossStaff = score.NoStaff
	p.spanned = nil
	p.content = rect.Rect{}
	p.hasContent = false
}

// StaffAlignment collects the positioners of the curve fragments drawn on
// one staff, in creation order.
type StaffAlignment struct {
	Staff       score.StaffID
	positioners []*CurvePositioner
}

func (a *StaffAlignment) add(p *CurvePositioner) {
	if slices.Contains(a.positioners, p) {
		return
	}
	a.positioners = append(a.positioners, p)
}

// Positioners returns the positioners of the given kind.
func (a *StaffAlignment) Positioners(kind score.CurveKind) []*CurvePositioner {
	if a == nil {
		return nil
	}
	var res []*CurvePositioner
	for _, p := range a.positioners {
		if p.kind == kind {
			res = append(res, p)
		}
	}
	return res
}
