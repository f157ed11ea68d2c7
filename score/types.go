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

// Index types into the arenas of a [Doc].  The zero value is a valid index;
// the No* constants mark absent links.
type (
	SystemID  int32
	StaffID   int32
	LayerID   int32
	ElementID int32
	CurveID   int32
)

const (
	NoSystem  SystemID  = -1
	NoStaff   StaffID   = -1
	NoLayer   LayerID   = -1
	NoElement ElementID = -1
)

// Kind identifies the variant of a layer element.
type Kind uint8

// These are the supported element kinds.
const (
	KindNote Kind = iota
	KindChord
	KindRest
	KindAccid
	KindArtic
	KindClef
	KindFlag
	KindGliss
	KindStem
	KindTupletBracket
	KindTupletNum
	KindTimestamp
)

func (k Kind) String() string {
	switch k {
	case KindNote:
		return "note"
	case KindChord:
		return "chord"
	case KindRest:
		return "rest"
	case KindAccid:
		return "accid"
	case KindArtic:
		return "artic"
	case KindClef:
		return "clef"
	case KindFlag:
		return "flag"
	case KindGliss:
		return "gliss"
	case KindStem:
		return "stem"
	case KindTupletBracket:
		return "tupletBracket"
	case KindTupletNum:
		return "tupletNum"
	case KindTimestamp:
		return "timestamp"
	default:
		return "unknown"
	}
}

// StemDir is a drawing stem direction.
type StemDir uint8

// These are the stem directions.
const (
	StemNone StemDir = iota
	StemUp
	StemDown
)

func (d StemDir) String() string {
	switch d {
	case StemUp:
		return "up"
	case StemDown:
		return "down"
	default:
		return "none"
	}
}

// CurveDir is the side of the notes on which a curve is drawn.
type CurveDir uint8

// These are the curve directions.
const (
	CurveDirNone CurveDir = iota
	CurveDirAbove
	CurveDirBelow
)

func (d CurveDir) String() string {
	switch d {
	case CurveDirAbove:
		return "above"
	case CurveDirBelow:
		return "below"
	default:
		return "none"
	}
}

// Place is the placement of an articulation relative to the staff.
type Place uint8

// These are the articulation placements.
const (
	PlaceNone Place = iota
	PlaceAbove
	PlaceBelow
)

// LineForm is the line style of a curve.
type LineForm uint8

// These are the line styles.  Wavy curves are drawn solid.
const (
	LineSolid LineForm = iota
	LineDashed
	LineDotted
	LineWavy
)

func (f LineForm) String() string {
	switch f {
	case LineDashed:
		return "dashed"
	case LineDotted:
		return "dotted"
	case LineWavy:
		return "wavy"
	default:
		return "solid"
	}
}

// CurveKind distinguishes slurs from ties.
type CurveKind uint8

// These are the curve kinds.
const (
	Slur CurveKind = iota
	Tie
)

func (k CurveKind) String() string {
	if k == Tie {
		return "tie"
	}
	return "slur"
}
