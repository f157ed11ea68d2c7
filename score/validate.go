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

import (
	"errors"
	"fmt"
)

// Errors reported by [Doc.Validate].
var (
	ErrUnknownElement = errors.New("unknown element")
	ErrUnknownStaff   = errors.New("unknown staff")
	ErrUnknownLayer   = errors.New("unknown layer")
	ErrBadExtent      = errors.New("right edge left of left edge")
	ErrBadChord       = errors.New("chord tone outside chord")
)

// Validate checks that all links in the document refer to existing objects.
// Curves may have missing end points (NoElement); such curves are skipped
// during layout rather than rejected here.
func (d *Doc) Validate() error {
	var errs []error
	for i := range d.elements {
		e := &d.elements[i]
		if err := d.checkElement(e); err != nil {
			errs = append(errs, fmt.Errorf("element %d (%s): %w", i, e.Kind, err))
		}
	}
	for i := range d.curves {
		c := &d.curves[i]
		for _, el := range []ElementID{c.Start, c.End} {
			if el != NoElement && !d.validElement(el) {
				errs = append(errs, fmt.Errorf("%s %d: end point %d: %w", c.Kind, i, el, ErrUnknownElement))
			}
		}
	}
	return errors.Join(errs...)
}

func (d *Doc) checkElement(e *Element) error {
	if e.Right < e.Left {
		return ErrBadExtent
	}
	if e.Layer != NoLayer && (e.Layer < 0 || int(e.Layer) >= len(d.layers)) {
		return ErrUnknownLayer
	}
	if e.Parent != NoElement && !d.validElement(e.Parent) {
		return fmt.Errorf("parent %d: %w", e.Parent, ErrUnknownElement)
	}
	if e.CrossStaff != NoStaff && (e.CrossStaff < 0 || int(e.CrossStaff) >= len(d.staves)) {
		return fmt.Errorf("cross staff %d: %w", e.CrossStaff, ErrUnknownStaff)
	}
	if e.CrossLayer != NoLayer && (e.CrossLayer < 0 || int(e.CrossLayer) >= len(d.layers)) {
		return fmt.Errorf("cross layer %d: %w", e.CrossLayer, ErrUnknownLayer)
	}
	if e.Chord != nil {
		for _, t := range e.Chord.Tones {
			if !d.validElement(t) {
				return fmt.Errorf("tone %d: %w", t, ErrUnknownElement)
			}
			p := d.elements[t].Parent
			if !d.validElement(p) || &d.elements[p] != e {
				return fmt.Errorf("tone %d: %w", t, ErrBadChord)
			}
		}
	}
	return nil
}

func (d *Doc) validElement(el ElementID) bool {
	return el >= 0 && int(el) < len(d.elements)
}
