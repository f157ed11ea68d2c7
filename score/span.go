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

package score

import "slices"

// SpanQuery selects elements by kind and horizontal extent.
type SpanQuery struct {
	// Min and Max bound the open interval (Min, Max) which the element
	// extent must intersect.
	Min, Max float64

	Kinds []Kind
}

// FindSpanned returns the elements of the selected kinds in the staves
// numbered staffN of the system whose extent intersects (q.Min, q.Max).
//
// Elements are visited staff by staff, layer by layer, in order of their
// left edge.  Within a layer the walk ends at the first element starting at
// or after q.Max.
func (d *Doc) FindSpanned(sys SystemID, staffN int, q SpanQuery) []ElementID {
	var res []ElementID
	for _, sid := range d.systems[sys].staves {
		if d.staves[sid].N != staffN {
			continue
		}
		for _, lid := range d.staves[sid].layers {
			for _, id := range d.layers[lid].elements {
				e := &d.elements[id]
				if e.Left >= q.Max {
					break
				}
				if !slices.Contains(q.Kinds, e.Kind) {
					continue
				}
				if e.Right > q.Min && e.Left < q.Max {
					res = append(res, id)
				}
			}
		}
	}
	return res
}

// HasMixedStemDir reports whether the notes and chords from start to end,
// in the layers of start and end, have both up and down stems.
func (d *Doc) HasMixedStemDir(start, end ElementID) bool {
	var layers []LayerID
	for _, el := range []ElementID{start, end} {
		if l, ok := d.LayerOf(el); ok && !slices.Contains(layers, l) {
			layers = append(layers, l)
		}
		if l := d.elements[el].CrossLayer; l != NoLayer && !slices.Contains(layers, l) {
			layers = append(layers, l)
		}
	}

	minX := d.elements[start].Left
	maxX := d.elements[end].Right
	var up, down bool
	for _, l := range layers {
		for _, id := range d.layers[l].elements {
			e := &d.elements[id]
			if e.Left > maxX {
				break
			}
			if e.Right < minX || !d.isStemBearer(id) {
				continue
			}
			switch d.DrawingStemDir(id) {
			case StemUp:
				up = true
			case StemDown:
				down = true
			}
			if up && down {
				return true
			}
		}
	}
	return false
}

// PreferredCurveDirection advises the direction of a cross-staff curve from
// start to end.  Every note or chord in the span which is drawn on a staff
// other than the start's votes for the side of that staff; the advice is
// CurveDirNone unless all votes agree.
func (d *Doc) PreferredCurveDirection(start, end ElementID) CurveDir {
	startStaff, ok := d.DrawingStaff(start)
	if !ok {
		return CurveDirNone
	}
	sys := d.staves[startStaff].System
	minX := d.elements[start].Left
	maxX := d.elements[end].Right

	res := CurveDirNone
	for _, sid := range d.systems[sys].staves {
		for _, lid := range d.staves[sid].layers {
			for _, id := range d.layers[lid].elements {
				e := &d.elements[id]
				if e.Left > maxX {
					break
				}
				if e.Right < minX || !d.isStemBearer(id) {
					continue
				}
				staff, _ := d.DrawingStaff(id)
				if staff == startStaff {
					continue
				}
				dir := CurveDirAbove
				if d.staves[staff].Y < d.staves[startStaff].Y {
					dir = CurveDirBelow
				}
				if res == CurveDirNone {
					res = dir
				} else if res != dir {
					return CurveDirNone
				}
			}
		}
	}
	return res
}

// isStemBearer reports whether the element is a note outside a chord or a
// chord, i.e. an element which owns its stem direction.
func (d *Doc) isStemBearer(id ElementID) bool {
	e := &d.elements[id]
	switch e.Kind {
	case KindChord:
		return true
	case KindNote:
		_, inChord := d.ChordOf(id)
		return !inChord
	}
	return false
}
