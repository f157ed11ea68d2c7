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

// Package score holds the laid out score model which curve layout reads.
//
// All objects live in per-document arenas and refer to each other by index:
// systems contain staves, staves contain layers, and layers contain elements
// in order of their left edge.  Cross-staff and cross-layer links, chord
// membership and the start and end points of curves are indices as well, so
// that rebuilding a system never leaves a dangling reference.
package score

import "sort"

// Doc is a laid out score.
type Doc struct {
	systems  []System
	staves   []Staff
	layers   []Layer
	elements []Element
	curves   []Curve
}

// System is one line of music on the page.
type System struct {
	staves []StaffID
}

// Staff is one staff of a system.
type Staff struct {
	// N is the staff number.  Staves with the same number in different
	// systems belong to the same part.
	N int

	System SystemID

	// Y is the drawing position of the top staff line.
	Y float64

	// Size is the staff size in percent.
	Size int

	layers []LayerID
}

// Layer is one voice within a staff.
type Layer struct {
	N     int
	Staff StaffID

	// StemDir is an explicit stem direction for all notes of the layer,
	// or StemNone.
	StemDir StemDir

	elements []ElementID
}

// Element is a layer element: a note, chord, articulation, stem, and so on.
// Link fields are maintained by the [Doc] builder methods.
type Element struct {
	Kind Kind

	// Left and Right are the horizontal extent of the element.
	Left, Right float64

	// Y is the vertical drawing position.
	Y float64

	Grace bool

	// Parent is the enclosing layer element (the chord of a chord tone,
	// the note of an articulation), or NoElement.
	Parent ElementID

	Layer LayerID

	// CrossStaff and CrossLayer are set for elements which are drawn on a
	// staff other than the one containing their layer.
	CrossStaff StaffID
	CrossLayer LayerID

	// Optional facets.
	Stem  *StemFacet
	Chord *ChordFacet
	Artic *ArticFacet

	system SystemID
}

// StemFacet is present on stemmed elements.
type StemFacet struct {
	Dir StemDir
}

// ChordFacet is present on chords.  Tones lists the chord tones ordered
// from the lowest to the highest.
type ChordFacet struct {
	Tones []ElementID
}

// ArticFacet is present on articulations.
type ArticFacet struct {
	Place Place

	// Outside is set for articulations placed outside the staff and
	// outside slurs.
	Outside bool
}

// Curve is a slur or a tie.
type Curve struct {
	Kind       CurveKind
	Start, End ElementID

	// Dir is an explicit curve direction, or CurveDirNone.
	Dir CurveDir

	Form LineForm
}

// NewDoc returns an empty document.
func NewDoc() *Doc {
	return &Doc{}
}

// AddSystem appends a new system.
func (d *Doc) AddSystem() SystemID {
	d.systems = append(d.systems, System{})
	return SystemID(len(d.systems) - 1)
}

// AddStaff appends a staff with number n, top line at y and size 100% to
// the system.
func (d *Doc) AddStaff(sys SystemID, n int, y float64) StaffID {
	id := StaffID(len(d.staves))
	d.staves = append(d.staves, Staff{N: n, System: sys, Y: y, Size: 100})
	d.systems[sys].staves = append(d.systems[sys].staves, id)
	return id
}

// AddLayer appends a layer with number n to the staff.
func (d *Doc) AddLayer(staff StaffID, n int) LayerID {
	id := LayerID(len(d.layers))
	d.layers = append(d.layers, Layer{N: n, Staff: staff})
	d.staves[staff].layers = append(d.staves[staff].layers, id)
	return id
}

// AddElement adds a top-level element to the layer.
// The link fields of e are ignored.
func (d *Doc) AddElement(layer LayerID, e Element) ElementID {
	e.Layer = layer
	e.Parent = NoElement
	e.CrossStaff = NoStaff
	e.CrossLayer = NoLayer
	e.system = d.staves[d.layers[layer].Staff].System
	return d.insert(e)
}

// AddChild adds an element nested inside parent.  The child shares the
// layer and the cross-staff links of its parent.  Notes added to a chord
// become chord tones.
func (d *Doc) AddChild(parent ElementID, e Element) ElementID {
	p := &d.elements[parent]
	e.Parent = parent
	e.Layer = p.Layer
	e.CrossStaff = p.CrossStaff
	e.CrossLayer = p.CrossLayer
	e.system = p.system
	id := d.insert(e)

	p = &d.elements[parent]
	if p.Kind == KindChord && e.Kind == KindNote {
		if p.Chord == nil {
			p.Chord = &ChordFacet{}
		}
		tones := p.Chord.Tones
		i := sort.Search(len(tones), func(i int) bool {
			return d.elements[tones[i]].Y > e.Y
		})
		tones = append(tones, NoElement)
		copy(tones[i+1:], tones[i:])
		tones[i] = id
		p.Chord.Tones = tones
	}
	return id
}

// AddTimestamp adds a placeholder element at horizontal position x,
// attached to the system but to no layer.
func (d *Doc) AddTimestamp(sys SystemID, x, y float64) ElementID {
	id := ElementID(len(d.elements))
	d.elements = append(d.elements, Element{
		Kind:       KindTimestamp,
		Left:       x,
		Right:      x,
		Y:          y,
		Parent:     NoElement,
		Layer:      NoLayer,
		CrossStaff: NoStaff,
		CrossLayer: NoLayer,
		system:     sys,
	})
	return id
}

// SetCrossStaff marks the element and everything nested inside it as drawn
// on the given staff and layer.
func (d *Doc) SetCrossStaff(el ElementID, staff StaffID, layer LayerID) {
	for id := range d.elements {
		eid := ElementID(id)
		if eid == el || d.isAncestor(el, eid) {
			d.elements[id].CrossStaff = staff
			d.elements[id].CrossLayer = layer
		}
	}
}

// AddCurve adds a slur or tie.
func (d *Doc) AddCurve(c Curve) CurveID {
	d.curves = append(d.curves, c)
	return CurveID(len(d.curves) - 1)
}

// insert appends e to the element arena and to its layer, keeping the layer
// ordered by left edge.
func (d *Doc) insert(e Element) ElementID {
	id := ElementID(len(d.elements))
	d.elements = append(d.elements, e)

	l := &d.layers[e.Layer]
	i := sort.Search(len(l.elements), func(i int) bool {
		return d.elements[l.elements[i]].Left > e.Left
	})
	l.elements = append(l.elements, NoElement)
	copy(l.elements[i+1:], l.elements[i:])
	l.elements[i] = id
	return id
}

// Element returns the element with the given index.
func (d *Doc) Element(id ElementID) *Element { return &d.elements[id] }

// Staff returns the staff with the given index.
func (d *Doc) Staff(id StaffID) *Staff { return &d.staves[id] }

// Layer returns the layer with the given index.
func (d *Doc) Layer(id LayerID) *Layer { return &d.layers[id] }

// Curve returns the curve with the given index.
func (d *Doc) Curve(id CurveID) *Curve { return &d.curves[id] }

// NumElements returns the number of elements in the document.
func (d *Doc) NumElements() int { return len(d.elements) }

// NumCurves returns the number of curves in the document.
func (d *Doc) NumCurves() int { return len(d.curves) }

// NumSystems returns the number of systems in the document.
func (d *Doc) NumSystems() int { return len(d.systems) }

// Staves returns the staves of a system, top to bottom.
func (d *Doc) Staves(sys SystemID) []StaffID { return d.systems[sys].staves }

// Layers returns the layers of a staff.
func (d *Doc) Layers(staff StaffID) []LayerID { return d.staves[staff].layers }

// Elements returns the elements of a layer ordered by left edge.
func (d *Doc) Elements(layer LayerID) []ElementID { return d.layers[layer].elements }

// StaffByN returns the staff with number n in the given system.
func (d *Doc) StaffByN(sys SystemID, n int) (StaffID, bool) {
	for _, id := range d.systems[sys].staves {
		if d.staves[id].N == n {
			return id, true
		}
	}
	return NoStaff, false
}
