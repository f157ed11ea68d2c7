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

// Command export writes the laid-out curves of all test cases to a JSON
// file, for comparison with other implementations.
package main

import (
	"encoding/json"
	"flag"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/engrave"
	"seehuhn.de/go/engrave/options"
	"seehuhn.de/go/engrave/score"
	"seehuhn.de/go/engrave/testcases"
)

var (
	configFile = flag.String("config", "", "TOML file with layout options")
	outFile    = flag.String("out", "testdata/testcases.json", "output file")
)

func main() {
	flag.Parse()

	opt := options.Default()
	if *configFile != "" {
		var err error
		opt, err = options.LoadFile(*configFile)
		if err != nil {
			panic(err)
		}
	}

	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc, opt))
		}
	}

	f, err := os.Create(*outFile)
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name   string      `json:"name"`
	Curves []jsonCurve `json:"curves"`
}

type jsonCurve struct {
	Curve      int         `json:"curve"`
	Kind       string      `json:"kind"`
	System     int         `json:"system"`
	State      string      `json:"state"`
	Dir        string      `json:"dir,omitempty"`
	CrossStaff bool        `json:"cross_staff,omitempty"`
	Angle      float64     `json:"angle"`
	Thickness  float64     `json:"thickness"`
	Points     [][]float64 `json:"points,omitempty"`
	Spanned    int         `json:"spanned"`
	Ties       int         `json:"ties,omitempty"`
}

func toJSON(category string, tc testcases.TestCase, opt *options.Options) jsonTestCase {
	l := tc.Run(opt, nil)

	jtc := jsonTestCase{Name: category + "_" + tc.Name}
	for sys := range tc.Doc.NumSystems() {
		for _, p := range l.Positioners(score.SystemID(sys)) {
			jtc.Curves = append(jtc.Curves, curveToJSON(p))
		}
	}
	return jtc
}

func curveToJSON(p *engrave.CurvePositioner) jsonCurve {
	jc := jsonCurve{
		Curve:      int(p.Curve()),
		Kind:       p.Kind().String(),
		System:     int(p.System()),
		State:      p.State().String(),
		CrossStaff: p.IsCrossStaff(),
		Angle:      p.Angle(),
		Thickness:  p.Thickness(),
	}
	if p.State() != engrave.Seeded {
		return jc
	}

	jc.Dir = p.Dir().String()
	for _, pt := range p.Points() {
		jc.Points = append(jc.Points, []float64{pt.X, pt.Y})
	}
	for _, sp := range p.Spanned() {
		if sp.Tie != nil {
			jc.Ties++
		} else {
			jc.Spanned++
		}
	}
	return jc
}
