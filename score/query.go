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

// LayerOf returns the layer containing the element.
// Timestamps are not contained in any layer.
func (d *Doc) LayerOf(el ElementID) (LayerID, bool) {
	l := d.elements[el].Layer
	return l, l != NoLayer
}

// StaffOf returns the staff containing the element's layer.
func (d *Doc) StaffOf(el ElementID) (StaffID, bool) {
	l, ok := d.LayerOf(el)
	if !ok {
		return NoStaff, false
	}
	return d.layers[l].Staff, true
}

// SystemOf returns the system containing the element.
func (d *Doc) SystemOf(el ElementID) SystemID {
	return d.elements[el].system
}

// DrawingStaff returns the staff the element is drawn on: the cross staff
// if one is set, the staff of its layer otherwise.
func (d *Doc) DrawingStaff(el ElementID) (StaffID, bool) {
	if cs := d.elements[el].CrossStaff; cs != NoStaff {
		return cs, true
	}
	return d.StaffOf(el)
}

// DrawingStemDir returns the stem direction of a stemmed element.  Chord
// tones report the stem direction of their chord.  Elements without a stem
// give StemNone.
func (d *Doc) DrawingStemDir(el ElementID) StemDir {
	e := &d.elements[el]
	if e.Stem != nil {
		return e.Stem.Dir
	}
	if chord, ok := d.ChordOf(el); ok {
		if c := d.elements[chord].Stem; c != nil {
			return c.Dir
		}
	}
	return StemNone
}

// IsStemmed reports whether the element carries stem information, either
// itself or through its chord.
func (d *Doc) IsStemmed(el ElementID) bool {
	if d.elements[el].Stem != nil {
		return true
	}
	chord, ok := d.ChordOf(el)
	return ok && d.elements[chord].Stem != nil
}

// IsGrace reports whether the element is a grace note or a tone of a grace
// chord.
func (d *Doc) IsGrace(el ElementID) bool {
	e := &d.elements[el]
	if e.Grace {
		return true
	}
	if chord, ok := d.ChordOf(el); ok {
		return d.elements[chord].Grace
	}
	return false
}

// ChordOf returns the chord of a chord tone.
func (d *Doc) ChordOf(note ElementID) (ElementID, bool) {
	e := &d.elements[note]
	if e.Kind != KindNote || e.Parent == NoElement {
		return NoElement, false
	}
	if d.elements[e.Parent].Kind != KindChord {
		return NoElement, false
	}
	return e.Parent, true
}

// PositionInChord ranks a tone within its chord relative to the middle of
// the chord.  The result is negative for tones below the middle, positive
// for tones above it and zero for the centre tone of a chord with an odd
// number of tones.
func (d *Doc) PositionInChord(chord, note ElementID) int {
	c := d.elements[chord].Chord
	if c == nil {
		return 0
	}
	i := slices.Index(c.Tones, note)
	if i < 0 {
		return 0
	}
	// twice the distance from the middle, so that even chords have no zero
	return 2*i - (len(c.Tones) - 1)
}

// LayerStemDir returns the stem direction preferred by a layer for the
// given element.  An explicit layer direction wins.  Otherwise, where
// another layer of the staff has a note or chord overlapping the element,
// odd layers prefer stems up and even layers stems down.  Without such a
// second voice, or without an element, there is no preference.
func (d *Doc) LayerStemDir(layer LayerID, el ElementID) StemDir {
	l := &d.layers[layer]
	if l.StemDir != StemNone {
		return l.StemDir
	}
	if el == NoElement {
		return StemNone
	}

	// voices are counted on the staff the element is drawn on
	e := &d.elements[el]
	staff := l.Staff
	if e.CrossStaff != NoStaff {
		staff = e.CrossStaff
	}
	if !d.hasOtherVoice(staff, layer, e.Left, e.Right) {
		return StemNone
	}
	if l.N%2 == 1 {
		return StemUp
	}
	return StemDown
}

// hasOtherVoice reports whether a layer of staff other than layer has a
// note or chord overlapping [left, right].
func (d *Doc) hasOtherVoice(staff StaffID, layer LayerID, left, right float64) bool {
	for _, lid := range d.staves[staff].layers {
		if lid == layer {
			continue
		}
		for _, id := range d.layers[lid].elements {
			o := &d.elements[id]
			if o.Left > right {
				break
			}
			if o.Right < left {
				continue
			}
			if o.Kind == KindNote || o.Kind == KindChord {
				return true
			}
		}
	}
	return false
}

// Descendants returns all elements of the given kind nested, directly or
// indirectly, inside el.
func (d *Doc) Descendants(el ElementID, kind Kind) []ElementID {
	layer, ok := d.LayerOf(el)
	if !ok {
		return nil
	}
	var res []ElementID
	for _, id := range d.layers[layer].elements {
		if d.elements[id].Kind == kind && d.isAncestor(el, id) {
			res = append(res, id)
		}
	}
	return res
}

// isAncestor reports whether anc is a proper ancestor of el.
func (d *Doc) isAncestor(anc, el ElementID) bool {
	for p := d.elements[el].Parent; p != NoElement; p = d.elements[p].Parent {
		if p == anc {
			return true
		}
	}
	return false
}
