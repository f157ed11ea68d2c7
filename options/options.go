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

// Package options holds the engraving constants used by curve layout.
package options

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// SlurAngleThreshold is the slope magnitude below which cross-staff and
// grace-note slurs keep their unadjusted angle.
const SlurAngleThreshold = 4.0

// DefinitionFactor converts units into layout coordinates.
const DefinitionFactor = 10

// Options are the engraving constants.  Lengths are given in units unless
// noted otherwise; a unit is half the distance between two staff lines.
type Options struct {
	// Unit is the size of a unit in MEI units.
	Unit float64 `toml:"unit"`

	// SlurMidpointThickness is the thickness of a slur at its midpoint.
	SlurMidpointThickness float64 `toml:"slurMidpointThickness"`

	// SlurEndpointThickness is the width of the pen used to outline slurs,
	// which gives the thickness at the end points.
	SlurEndpointThickness float64 `toml:"slurEndpointThickness"`

	// SlurCurveFactor scales the height of slurs.
	SlurCurveFactor float64 `toml:"slurCurveFactor"`

	// SlurMinSlope and SlurMaxSlope bound the angle of a slur, in degrees.
	SlurMinSlope float64 `toml:"slurMinSlope"`
	SlurMaxSlope float64 `toml:"slurMaxSlope"`

	// SlurEndpointOffset is the vertical distance between a slur end point
	// and its reference position.
	SlurEndpointOffset float64 `toml:"slurEndpointOffset"`
}

// Default returns the default options.
func Default() *Options {
	return &Options{
		Unit:                  9.0,
		SlurMidpointThickness: 0.6,
		SlurEndpointThickness: 0.1,
		SlurCurveFactor:       1.0,
		SlurMinSlope:          -60,
		SlurMaxSlope:          60,
		SlurEndpointOffset:    1.25,
	}
}

// ErrInvalid is returned (wrapped) for options out of range.
var ErrInvalid = errors.New("invalid option")

// Validate checks that all options are in range.
func (o *Options) Validate() error {
	check := func(key string, v, lo, hi float64) error {
		if math.IsNaN(v) || v < lo || v > hi {
			return fmt.Errorf("%s = %g not in [%g, %g]: %w", key, v, lo, hi, ErrInvalid)
		}
		return nil
	}
	err := errors.Join(
		check("unit", o.Unit, 6, 20),
		check("slurMidpointThickness", o.SlurMidpointThickness, 0.2, 1.2),
		check("slurEndpointThickness", o.SlurEndpointThickness, 0.05, 0.25),
		check("slurCurveFactor", o.SlurCurveFactor, 0.2, 5),
		check("slurMinSlope", o.SlurMinSlope, -89, 89),
		check("slurMaxSlope", o.SlurMaxSlope, -89, 89),
		check("slurEndpointOffset", o.SlurEndpointOffset, 0, 5),
	)
	if err != nil {
		return err
	}
	if o.SlurMinSlope > o.SlurMaxSlope {
		return fmt.Errorf("slurMinSlope %g > slurMaxSlope %g: %w", o.SlurMinSlope, o.SlurMaxSlope, ErrInvalid)
	}
	return nil
}

// DrawingUnit returns the length of a unit for a staff of the given size
// (in percent), in layout coordinates.
func (o *Options) DrawingUnit(staffSize int) float64 {
	return o.Unit * DefinitionFactor * float64(staffSize) / 100
}

// DrawingDoubleUnit returns the distance between two staff lines for a
// staff of the given size, in layout coordinates.
func (o *Options) DrawingDoubleUnit(staffSize int) float64 {
	return 2 * o.DrawingUnit(staffSize)
}

// SlopeLimits returns the slur angle limits in radians.
func (o *Options) SlopeLimits() (lo, hi float64) {
	return o.SlurMinSlope * math.Pi / 180, o.SlurMaxSlope * math.Pi / 180
}

// Load reads options in TOML format.  Keys not present in the input keep
// their default values; unknown keys are an error.
func Load(r io.Reader) (*Options, error) {
	o := Default()
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(o); err != nil {
		return nil, fmt.Errorf("options: %w", err)
	}
	if err := o.Validate(); err != nil {
		return nil, fmt.Errorf("options: %w", err)
	}
	return o, nil
}

// LoadFile reads options from a TOML file.
func LoadFile(fname string) (*Options, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	o, err := Load(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return o, nil
}

// Marshal returns the options in TOML format.
func (o *Options) Marshal() ([]byte, error) {
	return toml.Marshal(o)
}
