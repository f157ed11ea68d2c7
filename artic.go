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

	"seehuhn.de/go/engrave/score"
)

// ArticAttachment links an articulation to a curve which it must clear.
type ArticAttachment struct {
	Positioner *CurvePositioner

	// AtStart is set if the articulation belongs to the start element of
	// the curve, and unset for the end element.
	AtStart bool
}

// ArticRegistry records, for each articulation, the curves passing over or
// under it.  The articulation placement pass reads this to move the marks
// clear of the curves.
type ArticRegistry struct {
	m map[score.ElementID][]ArticAttachment
}

// NewArticRegistry returns an empty registry.
func NewArticRegistry() *ArticRegistry {
	return &ArticRegistry{m: make(map[score.ElementID][]ArticAttachment)}
}

// Add registers p against the articulation.  Registering the same
// positioner twice has no effect.
func (r *ArticRegistry) Add(artic score.ElementID, p *CurvePositioner, atStart bool) {
	list := r.m[artic]
	if slices.ContainsFunc(list, func(a ArticAttachment) bool { return a.Positioner == p }) {
		return
	}
	r.m[artic] = append(list, ArticAttachment{Positioner: p, AtStart: atStart})
}

// Attachments returns the curves registered against an articulation.
func (r *ArticRegistry) Attachments(artic score.ElementID) []ArticAttachment {
	return r.m[artic]
}

// Remove drops all registrations of p.
func (r *ArticRegistry) Remove(p *CurvePositioner) {
	for artic, list := range r.m {
		list = slices.DeleteFunc(list, func(a ArticAttachment) bool { return a.Positioner == p })
		if len(list) == 0 {
			delete(r.m, artic)
		} else {
			r.m[artic] = list
		}
	}
}

// attachArtics registers p against the outside articulations of el whose
// placement matches the curve direction.
func (l *Layout) attachArtics(p *CurvePositioner, el score.ElementID, dir score.CurveDir, atStart bool) {
	doc := l.Doc
	for _, a := range doc.Descendants(el, score.KindArtic) {
		facet := doc.Element(a).Artic
		if facet == nil || !facet.Outside {
			continue
		}
		if (facet.Place == score.PlaceAbove && dir == score.CurveDirAbove) ||
			(facet.Place == score.PlaceBelow && dir == score.CurveDirBelow) {
			l.Artics.Add(a, p, atStart)
		}
	}
}
