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

package device

// Op identifies a recorded drawing operation.
type Op uint8

// These are the recorded operations.
const (
	OpStart Op = iota
	OpResume
	OpEnd
	OpCurve
)

// Event is one recorded drawing operation.
type Event struct {
	Op    Op
	ID    string // graphic id, for OpStart, OpResume and OpEnd
	Curve Curve  // for OpCurve
}

// Recorder is a Context which remembers everything drawn on it.
type Recorder struct {
	// BBox selects whether the recorder reports a bounding box pass.
	BBox bool

	Events []Event
}

// BBoxPass implements [Context].
func (r *Recorder) BBoxPass() bool { return r.BBox }

// StartGraphic implements [Context].
func (r *Recorder) StartGraphic(id string) {
	r.Events = append(r.Events, Event{Op: OpStart, ID: id})
}

// ResumeGraphic implements [Context].
func (r *Recorder) ResumeGraphic(id string) {
	r.Events = append(r.Events, Event{Op: OpResume, ID: id})
}

// EndGraphic implements [Context].
func (r *Recorder) EndGraphic(id string) {
	r.Events = append(r.Events, Event{Op: OpEnd, ID: id})
}

// DrawCurve implements [Context].
func (r *Recorder) DrawCurve(c Curve) {
	r.Events = append(r.Events, Event{Op: OpCurve, Curve: c})
}

// Curves returns the recorded curves in drawing order.
func (r *Recorder) Curves() []Curve {
	var res []Curve
	for _, e := range r.Events {
		if e.Op == OpCurve {
			res = append(res, e.Curve)
		}
	}
	return res
}

// Reset discards all recorded events.
func (r *Recorder) Reset() {
	r.Events = r.Events[:0]
}
