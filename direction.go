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

import "seehuhn.de/go/engrave/score"

// DirectionCache remembers curve directions decided by an earlier layout
// pass, keyed by curve.  Entries are written when a system finds mixed stem
// directions under a slur, and are read back by later passes.
type DirectionCache struct {
	m map[score.CurveID]score.CurveDir
}

// NewDirectionCache returns an empty cache.
func NewDirectionCache() *DirectionCache {
	return &DirectionCache{m: make(map[score.CurveID]score.CurveDir)}
}

// Get returns the cached direction of a curve.
func (c *DirectionCache) Get(id score.CurveID) (score.CurveDir, bool) {
	dir, ok := c.m[id]
	return dir, ok
}

// Set stores the direction of a curve.
func (c *DirectionCache) Set(id score.CurveID, dir score.CurveDir) {
	c.m[id] = dir
}

// Delete forgets the direction of a curve.
func (c *DirectionCache) Delete(id score.CurveID) {
	delete(c.m, id)
}

// Len returns the number of cached directions.
func (c *DirectionCache) Len() int {
	return len(c.m)
}

// directionQuery collects the inputs of the direction resolver for one
// curve fragment.
type directionQuery struct {
	curve      score.CurveID
	start, end score.ElementID
	staff      score.StaffID
	spanning   Spanning

	// doubleUnit is the distance between two staff lines.
	doubleUnit float64
}

// layerContext returns the layer whose stem preference applies to the
// curve, together with the element used to query it.  The start element is
// used unless it is a timestamp.  The layer is NoLayer if both ends are
// timestamps.
func layerContext(doc *score.Doc, start, end score.ElementID) (score.LayerID, score.ElementID) {
	anchor := score.NoElement
	layer := score.NoLayer
	if doc.Element(start).Kind != score.KindTimestamp {
		anchor = start
	} else if doc.Element(end).Kind != score.KindTimestamp {
		anchor = end
	}
	if anchor == score.NoElement {
		return layer, anchor
	}

	layer, _ = doc.LayerOf(anchor)
	if e := doc.Element(anchor); e.CrossStaff != score.NoStaff && e.CrossLayer != score.NoLayer {
		layer = e.CrossLayer
	}
	return layer, anchor
}

// fragmentStemDir returns the stem direction which decides the direction of
// a fragment when nothing else does.  Fragments without visible end points
// use StemDown, which makes the vertical position decide.
func fragmentStemDir(doc *score.Doc, start, end score.ElementID, spanning Spanning) score.StemDir {
	switch spanning {
	case SpanStartEnd, SpanStart:
		return doc.DrawingStemDir(start)
	case SpanEnd:
		return doc.DrawingStemDir(end)
	default:
		return score.StemDown
	}
}

func isGraceToNote(doc *score.Doc, start, end score.ElementID) bool {
	if doc.Element(start).Kind == score.KindTimestamp || doc.Element(end).Kind == score.KindTimestamp {
		return false
	}
	return doc.IsGrace(start) && !doc.IsGrace(end)
}

// recordMixedStems stores a default direction for whole-span slurs over
// notes with mixed stem directions.  Cross-staff curves follow the advice
// of the system, if it has one.
func recordMixedStems(doc *score.Doc, cache *DirectionCache, q *directionQuery, crossStaff bool) {
	if q.spanning != SpanStartEnd {
		return
	}
	if doc.Element(q.start).Kind == score.KindTimestamp || doc.Element(q.end).Kind == score.KindTimestamp {
		return
	}
	if !doc.HasMixedStemDir(q.start, q.end) {
		return
	}

	dir := score.CurveDirAbove
	if crossStaff {
		if pref := doc.PreferredCurveDirection(q.start, q.end); pref != score.CurveDirNone {
			dir = pref
		}
	}
	cache.Set(q.curve, dir)
}

// resolveDirection decides whether a curve fragment is drawn above or below
// the notes.  The first applicable rule wins:
//
//  1. an explicit direction on the curve
//  2. grace note to normal note, in a layer without stem preference: below
//  3. a direction cached by an earlier pass
//  4. the stem preference of the layer
//  5. the position of a starting chord tone within its chord
//  6. stems up: below
//  7. otherwise the vertical position of the start element relative to the
//     middle staff line
func resolveDirection(doc *score.Doc, cache *DirectionCache, q *directionQuery) score.CurveDir {
	curve := doc.Curve(q.curve)
	switch curve.Dir {
	case score.CurveDirAbove:
		return score.CurveDirAbove
	case score.CurveDirBelow:
		return score.CurveDirBelow
	}

	layer, anchor := layerContext(doc, q.start, q.end)
	hasLayer := layer != score.NoLayer

	if isGraceToNote(doc, q.start, q.end) && hasLayer && doc.LayerStemDir(layer, anchor) == score.StemNone {
		return score.CurveDirBelow
	}

	if dir, ok := cache.Get(q.curve); ok && dir != score.CurveDirNone {
		return dir
	}

	if hasLayer {
		switch doc.LayerStemDir(layer, anchor) {
		case score.StemUp:
			return score.CurveDirAbove
		case score.StemDown:
			return score.CurveDirBelow
		}
	}

	stemDir := fragmentStemDir(doc, q.start, q.end, q.spanning)

	if chord, ok := doc.ChordOf(q.start); ok {
		pos := doc.PositionInChord(chord, q.start)
		switch {
		case pos < 0:
			return score.CurveDirBelow
		case pos > 0:
			return score.CurveDirAbove
		case stemDir == score.StemUp:
			// centre tone: away from the stem
			return score.CurveDirBelow
		default:
			return score.CurveDirAbove
		}
	}

	if stemDir == score.StemUp {
		return score.CurveDirBelow
	}

	staff := doc.Staff(q.staff)
	middle := staff.Y - 2*q.doubleUnit
	if doc.Element(q.start).Y > middle {
		return score.CurveDirAbove
	}
	return score.CurveDirBelow
}
