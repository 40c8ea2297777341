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

package contour

import (
	"fmt"
	"math"
	"testing"

	"seehuhn.de/go/geom/vec"
)

func BenchmarkBuild(b *testing.B) {
	sizes := []int{4, 64, 1024}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("n=%d", size), func(b *testing.B) {
			c := makeStar(size, 10, 8)
			p := DefaultParams()
			p.RoadWidth = 0.3
			p.RoadPadding = 0.1

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				p.Build(c)
			}
		})
	}
}

// BenchmarkOffset measures a single mitered offset, the inner loop of
// every band.
func BenchmarkOffset(b *testing.B) {
	sizes := []int{4, 64, 1024}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("n=%d", size), func(b *testing.B) {
			c := makeStar(size, 10, 8)
			o := &Offsetter{Side: Inward, Distance: Const(0.5), MiterLimit: 4}

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				o.Points(c)
			}
		})
	}
}

// makeStar returns a contour with n vertices alternating between the two
// radii, so that both convex and concave corners occur.  Every third edge
// is inactive.
func makeStar(n int, outerR, innerR float64) *Contour {
	c := &Contour{
		Points: make([]vec.Vec2, n),
		Active: make([]bool, n),
	}
	for i := range n {
		r := outerR
		if i%2 == 1 {
			r = innerR
		}
		phi := 2 * math.Pi * float64(i) / float64(n)
		c.Points[i] = vec.Vec2{X: r * math.Cos(phi), Y: r * math.Sin(phi)}
		c.Active[i] = i%3 != 2
	}
	return c
}
