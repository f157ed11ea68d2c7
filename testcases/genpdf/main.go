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

// Command genpdf draws the layout test cases for visual inspection.
// For every test case it writes a PDF file, and a PNG image rendered by
// the built-in rasteriser.  With -gs, a second PNG is rendered from the
// PDF using Ghostscript.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/engrave"
	"seehuhn.de/go/engrave/device"
	"seehuhn.de/go/engrave/options"
	"seehuhn.de/go/engrave/score"
	"seehuhn.de/go/engrave/testcases"
)

// scale converts layout units to PDF points and pixels.
const scale = 0.1

var (
	configFile = flag.String("config", "", "TOML file with layout options")
	outDir     = flag.String("out", "testdata/preview", "output directory")
	useGS      = flag.Bool("gs", false, "also render the PDF files using Ghostscript")
	verbose    = flag.Bool("v", false, "log layout decisions")
)

func main() {
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	engrave.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	opt := options.Default()
	if *configFile != "" {
		var err error
		opt, err = options.LoadFile(*configFile)
		if err != nil {
			panic(err)
		}
	}

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(*outDir, name+".pdf")
			pngPath := filepath.Join(*outDir, name+".png")

			if err := generatePDF(tc, opt, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if err := generatePNG(tc, opt, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if *useGS {
				gsPath := filepath.Join(*outDir, name+"_gs.png")
				if err := renderPNG(pdfPath, gsPath); err != nil {
					panic(fmt.Errorf("%s: %w", name, err))
				}
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, opt *options.Options, pdfPath string) error {
	box := tc.Box
	paper := &pdf.Rectangle{
		URx: (box.URx - box.LLx) * scale,
		URy: (box.URy - box.LLy) * scale,
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// Layout coordinates have y pointing up, like PDF.
	page.Transform(matrix.Matrix{scale, 0, 0, scale, -box.LLx * scale, -box.LLy * scale})

	drawScore(page, tc.Doc, opt, box)

	dev := device.NewPDF(page)
	tc.Run(opt, dev)

	return page.Close()
}

// drawScore draws the staff lines and the note heads and articulations of
// a test case in grey.
func drawScore(page *document.Page, doc *score.Doc, opt *options.Options, box rect.Rect) {
	page.SetStrokeColor(color.DeviceGray(0.6))
	page.SetFillColor(color.DeviceGray(0.8))
	page.SetLineWidth(10)

	for sys := range doc.NumSystems() {
		for _, id := range doc.Staves(score.SystemID(sys)) {
			staff := doc.Staff(id)
			du := opt.DrawingDoubleUnit(staff.Size)
			for i := range 5 {
				y := staff.Y - float64(i)*du
				page.MoveTo(box.LLx, y)
				page.LineTo(box.URx, y)
			}
		}
	}
	page.Stroke()

	for i := range doc.NumElements() {
		el := doc.Element(score.ElementID(i))
		switch el.Kind {
		case score.KindNote, score.KindArtic:
			page.Rectangle(el.Left, el.Y-45, el.Right-el.Left, 90)
		}
	}
	page.Fill()
}

func generatePNG(tc testcases.TestCase, opt *options.Options, pngPath string) error {
	box := tc.Box
	w := int((box.URx-box.LLx)*scale + 0.5)
	h := int((box.URy-box.LLy)*scale + 0.5)
	img := image.NewAlpha(image.Rect(0, 0, w, h))

	// Image coordinates have y pointing down.
	ctm := matrix.Matrix{scale, 0, 0, -scale, -box.LLx * scale, box.URy * scale}
	tc.Run(opt, device.NewRaster(img, ctm))

	f, err := os.Create(pngPath)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func renderPNG(pdfPath, pngPath string) error {
	// -sDEVICE=pnggray: 8-bit grayscale
	// -r72: 72 DPI (1 point = 1 pixel)
	// -dGraphicsAlphaBits=4: 4x supersampling for anti-aliasing
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
