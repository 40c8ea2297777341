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

// Package preview rasterizes band meshes into images.
package preview

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/contour"
)

// Fit returns a transformation which maps bounds into a w×h pixel image,
// keeping the aspect ratio and leaving margin pixels free on every side.
// The y axis of the result points up, so that the image shows the scene
// the right way round.
func Fit(bounds rect.Rect, w, h int, margin float64) matrix.Matrix {
	bw := bounds.URx - bounds.LLx
	bh := bounds.URy - bounds.LLy
	availW := float64(w) - 2*margin
	availH := float64(h) - 2*margin

	var s float64
	switch {
	case bw > 0 && bh > 0:
		s = min(availW/bw, availH/bh)
	case bw > 0:
		s = availW / bw
	case bh > 0:
		s = availH / bh
	default:
		s = 1
	}

	cx := (bounds.LLx + bounds.URx) / 2
	cy := (bounds.LLy + bounds.URy) / 2
	return matrix.Matrix{s, 0, 0, -s, float64(w)/2 - s*cx, float64(h)/2 + s*cy}
}

// Draw fills the triangles of m, transformed by ctm, with src and
// composites the result onto dst.  Pixel coordinates are relative to the
// top-left corner of dst.
func Draw(dst draw.Image, m *contour.Mesh, ctm matrix.Matrix, src image.Image) {
	if m.IsEmpty() {
		return
	}
	b := dst.Bounds()
	r := vector.NewRasterizer(b.Dx(), b.Dy())
	for i := range m.TriangleCount() {
		p0, p1, p2 := m.Triangle(i)
		x, y := apply(ctm, p0)
		r.MoveTo(x, y)
		x, y = apply(ctm, p1)
		r.LineTo(x, y)
		x, y = apply(ctm, p2)
		r.LineTo(x, y)
		r.ClosePath()
	}
	r.Draw(dst, b, src, image.Point{})
}

// Layer is a mesh with the colour it is drawn in.
type Layer struct {
	Mesh  *contour.Mesh
	Color color.Color
}

// Render draws the layers, in order, onto a new w×h image with the given
// background.  The view is fitted to the union of all layer bounds.
func Render(layers []Layer, w, h int, margin float64, bg color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	var bounds rect.Rect
	first := true
	for _, l := range layers {
		if l.Mesh.IsEmpty() {
			continue
		}
		if first {
			bounds = l.Mesh.Bounds()
			first = false
		} else {
			bounds = Union(bounds, l.Mesh.Bounds())
		}
	}
	if first {
		return img
	}

	ctm := Fit(bounds, w, h, margin)
	for _, l := range layers {
		Draw(img, l.Mesh, ctm, image.NewUniform(l.Color))
	}
	return img
}

// Union returns the smallest rectangle containing both a and b.
func Union(a, b rect.Rect) rect.Rect {
	return rect.Rect{
		LLx: min(a.LLx, b.LLx),
		LLy: min(a.LLy, b.LLy),
		URx: max(a.URx, b.URx),
		URy: max(a.URy, b.URy),
	}
}

func apply(m matrix.Matrix, p vec.Vec2) (float32, float32) {
	x := m[0]*p.X + m[2]*p.Y + m[4]
	y := m[1]*p.X + m[3]*p.Y + m[5]
	return float32(x), float32(y)
}
