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

	"seehuhn.de/go/engrave/bezier"
	"seehuhn.de/go/engrave/score"
)

// spannedKinds are the element kinds a curve must avoid.  Ties are found
// through the staff alignments instead.
var spannedKinds = []score.Kind{
	score.KindAccid,
	score.KindArtic,
	score.KindChord,
	score.KindClef,
	score.KindFlag,
	score.KindGliss,
	score.KindNote,
	score.KindStem,
	score.KindTupletBracket,
	score.KindTupletNum,
}

// scanSpanned collects everything inside the horizontal span (x1, x2) of
// the curve fragment p and stores it in p.spanned.  If p is not yet
// cross-staff, the first scanned element drawn on another staff makes it so.
func (l *Layout) scanSpanned(p *CurvePositioner, start, end score.ElementID, x1, x2 float64) {
	doc := l.Doc
	staff := doc.Staff(p.staff)

	// Staves are queried one by one, since the query for a staff stops at
	// the first element beyond the span.
	staffNumbers := []int{staff.N}
	alignStaves := []score.StaffID{p.staff}
	for _, el := range []score.ElementID{start, end} {
		s, ok := doc.DrawingStaff(el)
		if !ok || s == p.staff {
			continue
		}
		if n := doc.Staff(s).N; !slices.Contains(staffNumbers, n) {
			staffNumbers = append(staffNumbers, n)
		}
		if !slices.Contains(alignStaves, s) {
			alignStaves = append(alignStaves, s)
		}
	}
	slices.Sort(staffNumbers)

	q := score.SpanQuery{Min: x1, Max: x2, Kinds: spannedKinds}
	var elements []score.ElementID
	seen := make(map[score.ElementID]bool)
	for _, n := range staffNumbers {
		for _, el := range doc.FindSpanned(p.system, n, q) {
			if seen[el] {
				continue
			}
			seen[el] = true
			elements = append(elements, el)
		}
	}

	p.spanned = nil
	for _, el := range elements {
		e := doc.Element(el)
		if bezier.EdgeInside(e.Left, e.Right, x1, x2) {
			p.spanned = append(p.spanned, SpannedElement{Element: el})
		}
		if !p.IsCrossStaff() && e.CrossStaff != score.NoStaff && e.CrossStaff != p.staff {
			p.crossStaff = e.CrossStaff
		}
	}

	// Ties may be broken across systems, so only fragments of the same
	// system count.
	var ties []*CurvePositioner
	for _, s := range alignStaves {
		for _, tie := range l.alignments[s].Positioners(score.Tie) {
			if tie == p || slices.Contains(ties, tie) {
				continue
			}
			ties = append(ties, tie)
		}
	}
	for _, tie := range ties {
		if tie.system != p.system {
			continue
		}
		bbox, ok := tie.ContentBounds()
		if ok && bezier.Intersects(bbox.LLx, bbox.URx, x1, x2) {
			p.spanned = append(p.spanned, SpannedElement{Element: score.NoElement, Tie: tie})
		}
	}
}
