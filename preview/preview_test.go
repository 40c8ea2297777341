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

package preview

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"testing"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/contour"
)

func TestFit(t *testing.T) {
	bounds := rect.Rect{LLx: -2, LLy: -2, URx: 2, URy: 2}
	m := Fit(bounds, 100, 100, 10)

	tests := []struct {
		in         vec.Vec2
		outX, outY float32
	}{
		{vec.Vec2{X: -2, Y: -2}, 10, 90},
		{vec.Vec2{X: 2, Y: 2}, 90, 10},
		{vec.Vec2{X: 0, Y: 0}, 50, 50},
	}
	for _, tt := range tests {
		x, y := apply(m, tt.in)
		if math.Abs(float64(x-tt.outX)) > 1e-4 || math.Abs(float64(y-tt.outY)) > 1e-4 {
			t.Errorf("%v -> (%g, %g), want (%g, %g)", tt.in, x, y, tt.outX, tt.outY)
		}
	}

	// wide bounds in a square image: the width decides the scale
	m = Fit(rect.Rect{LLx: 0, LLy: 0, URx: 8, URy: 2}, 100, 100, 0)
	if m[0] != 12.5 || m[3] != -12.5 {
		t.Errorf("scale %g, %g", m[0], m[3])
	}
}

func TestUnion(t *testing.T) {
	a := rect.Rect{LLx: -1, LLy: 0, URx: 2, URy: 1}
	b := rect.Rect{LLx: 0, LLy: -3, URx: 1, URy: 0.5}
	want := rect.Rect{LLx: -1, LLy: -3, URx: 2, URy: 1}
	if got := Union(a, b); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got := Union(b, a); got != want {
		t.Errorf("not symmetric: %v", got)
	}
}

func TestDrawCoverage(t *testing.T) {
	c, err := contour.New([]vec.Vec2{
		{X: -2, Y: -2}, {X: 2, Y: -2}, {X: 2, Y: 2}, {X: -2, Y: 2},
	}, []bool{true, false, false, false})
	if err != nil {
		t.Fatal(err)
	}
	solid := contour.DefaultParams().Build(c)[contour.BandSolid]

	dst := image.NewAlpha(image.Rect(0, 0, 100, 100))
	ctm := Fit(rect.Rect{LLx: -2, LLy: -2, URx: 2, URy: 2}, 100, 100, 10)
	Draw(dst, solid, ctm, image.Opaque)

	// the strip covers x in [10, 90] and y in [74, 90]
	tests := []struct {
		x, y int
		want uint8
	}{
		{70, 86, 255},
		{11, 75, 255},
		{88, 89, 255},
		{50, 50, 0},
		{50, 95, 0},
		{5, 82, 0},
	}
	for _, tt := range tests {
		if got := dst.AlphaAt(tt.x, tt.y).A; got != tt.want {
			t.Errorf("pixel (%d, %d): alpha %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestDrawEmpty(t *testing.T) {
	dst := image.NewAlpha(image.Rect(0, 0, 10, 10))
	Draw(dst, &contour.Mesh{}, Fit(rect.Rect{}, 10, 10, 0), image.Opaque)
	for _, a := range dst.Pix {
		if a != 0 {
			t.Fatal("empty mesh changed the image")
		}
	}
}

func TestRender(t *testing.T) {
	c, err := contour.New([]vec.Vec2{
		{X: -2, Y: -2}, {X: 2, Y: -2}, {X: 2, Y: 2}, {X: -2, Y: 2},
	}, nil)
	if err != nil {
		t.Fatal(err)
	}
	meshes := contour.DefaultParams().Build(c)
	red := color.RGBA{R: 255, A: 255}
	blue := color.RGBA{B: 255, A: 255}
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	img := Render([]Layer{
		{Mesh: meshes[contour.BandSolid], Color: red},
		{Mesh: meshes[contour.BandFill], Color: blue},
	}, 64, 64, 2, white)

	if got := img.RGBAAt(40, 33); got != blue {
		t.Errorf("interior is %v", got)
	}
	if got := img.RGBAAt(0, 0); got != white {
		t.Errorf("corner is %v", got)
	}
}

func BenchmarkDraw(b *testing.B) {
	sizes := []int{20, 200, 2000}

	c, err := contour.New(hexagon(), nil)
	if err != nil {
		b.Fatal(err)
	}
	p := contour.DefaultParams()
	p.RoadWidth = 0.3
	meshes := p.Build(c)

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			ctm := Fit(meshes[contour.BandRoad].Bounds(), size, size, 0)

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				for _, m := range meshes {
					Draw(dst, m, ctm, image.Opaque)
				}
			}
		})
	}
}

func hexagon() []vec.Vec2 {
	pts := make([]vec.Vec2, 6)
	for i := range pts {
		phi := math.Pi * float64(i) / 3
		pts[i] = vec.Vec2{X: 3 * math.Cos(phi), Y: 3 * math.Sin(phi)}
	}
	return pts
}
