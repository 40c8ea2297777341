// seehuhn.de/go/contour - offset bands around editable polygons
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

// Command genpdf draws the bands of all test cases, for visual
// inspection.  For every case it writes a PDF, with each band filled in
// its own grey level and the contour on top, and a PNG preview.
package main

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/contour"
	"seehuhn.de/go/contour/preview"
	"seehuhn.de/go/contour/testcases"
)

const refDir = "testdata/reference"

// margin around the drawing, in pixels
const margin = 4

// grey levels of the bands, 0 is black
var grey = map[string]float64{
	contour.BandRoad:  0.75,
	contour.BandSolid: 0.2,
	contour.BandInner: 0.45,
	contour.BandOuter: 0.6,
	contour.BandFill:  0.85,
}

type drawing struct {
	c      *contour.Contour
	bands  []contour.Band
	meshes map[string]*contour.Mesh
	ctm    matrix.Matrix
	width  int
	height int
}

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			d, err := prepare(tc)
			if err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			pdfPath := filepath.Join(refDir, name+".pdf")
			if err := d.writePDF(pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			pngPath := filepath.Join(refDir, name+".png")
			if err := d.writePNG(pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func prepare(tc testcases.TestCase) (*drawing, error) {
	c, err := contour.New(tc.Points, tc.Active)
	if err != nil {
		return nil, err
	}
	p := contour.EditorParams(tc.Strip, tc.SecondaryOffset, tc.SecondaryWidth)
	p.RoadWidth = tc.RoadWidth
	p.RoadPadding = tc.RoadPadding

	d := &drawing{
		c:      c,
		bands:  p.Bands(),
		meshes: p.Build(c),
		width:  tc.Width,
		height: tc.Height,
	}

	// fit the contour together with everything drawn outside of it
	bounds := d.meshes[contour.BandOuter].Bounds()
	if road, ok := d.meshes[contour.BandRoad]; ok && !road.IsEmpty() {
		bounds = preview.Union(bounds, road.Bounds())
	}
	for _, pt := range c.Points {
		bounds = preview.Union(bounds, rect.Rect{LLx: pt.X, LLy: pt.Y, URx: pt.X, URy: pt.Y})
	}
	d.ctm = preview.Fit(bounds, d.width, d.height, margin)
	return d, nil
}

func (d *drawing) writePDF(pdfPath string) error {
	// Page size in points (1 point = 1 pixel at 72 DPI)
	paper := &pdf.Rectangle{
		URx: float64(d.width),
		URy: float64(d.height),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left, preview coordinates are top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(d.height)})
	page.Transform(d.ctm)

	addPath := func(p *path.Data) {
		coordIdx := 0
		for _, cmd := range p.Cmds {
			switch cmd {
			case path.CmdMoveTo:
				pt := p.Coords[coordIdx]
				page.MoveTo(pt.X, pt.Y)
				coordIdx++
			case path.CmdLineTo:
				pt := p.Coords[coordIdx]
				page.LineTo(pt.X, pt.Y)
				coordIdx++
			case path.CmdClose:
				page.ClosePath()
			}
		}
	}

	for _, b := range d.bands {
		m := d.meshes[b.Name]
		if m.IsEmpty() {
			continue
		}
		page.SetFillColor(pdfcolor.DeviceGray(grey[b.Name]))
		addPath(m.Outline())
		page.Fill()
	}

	// the contour itself, one pixel wide
	outline := &path.Data{}
	outline.MoveTo(d.c.Points[0])
	for _, pt := range d.c.Points[1:] {
		outline.LineTo(pt)
	}
	outline.Close()
	page.SetStrokeColor(pdfcolor.DeviceGray(0))
	page.SetLineWidth(1 / d.ctm[0])
	addPath(outline)
	page.Stroke()

	return page.Close()
}

func (d *drawing) writePNG(pngPath string) error {
	img := image.NewRGBA(image.Rect(0, 0, d.width, d.height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	for _, b := range d.bands {
		v := uint8(255 * grey[b.Name])
		preview.Draw(img, d.meshes[b.Name], d.ctm, image.NewUniform(color.Gray{Y: v}))
	}

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
