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
	"math"
	"testing"

	"seehuhn.de/go/geom/vec"
)

func square(active ...bool) *Contour {
	pts := []vec.Vec2{{X: -2, Y: -2}, {X: 2, Y: -2}, {X: 2, Y: 2}, {X: -2, Y: 2}}
	if len(active) == 0 {
		active = nil
	}
	c, err := New(pts, active)
	if err != nil {
		panic(err)
	}
	return c
}

func TestNormalSquare(t *testing.T) {
	inward := []vec.Vec2{{X: 0, Y: 1}, {X: -1, Y: 0}, {X: 0, Y: -1}, {X: 1, Y: 0}}

	for _, c := range []*Contour{square(), reversed(square())} {
		for i := range c.Len() {
			a, b := c.Edge(i)
			in := c.Normal(i, Inward)
			out := c.Normal(i, Outward)

			if math.Abs(in.Length()-1) > eps {
				t.Errorf("edge %v-%v: |n| = %g", a, b, in.Length())
			}
			if !near(in, out.Mul(-1), eps) {
				t.Errorf("edge %v-%v: inward %v, outward %v", a, b, in, out)
			}
			if math.Abs(in.Dot(b.Sub(a))) > eps {
				t.Errorf("edge %v-%v: normal %v not perpendicular", a, b, in)
			}

			// the four edges of the square are axis-aligned, so the
			// expected normal can be found by matching directions
			found := false
			for _, want := range inward {
				mid := a.Add(b).Mul(0.5)
				if near(in, want, eps) && mid.Dot(want) < 0 {
					found = true
				}
			}
			if !found {
				t.Errorf("edge %v-%v: normal %v does not point inside", a, b, in)
			}
		}
	}
}

func TestNormalZeroLength(t *testing.T) {
	c, err := New([]vec.Vec2{{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 1}}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if n := c.Normal(0, Inward); n != (vec.Vec2{}) {
		t.Errorf("got %v, want zero vector", n)
	}
}

func TestSideString(t *testing.T) {
	if Inward.String() != "inward" || Outward.String() != "outward" {
		t.Errorf("unexpected names %q, %q", Inward, Outward)
	}
}

// reversed returns c with the vertex order reversed, so that the same
// polygon runs the other way round.  Edge flags follow their edges.
func reversed(c *Contour) *Contour {
	n := c.Len()
	res := &Contour{
		Points: make([]vec.Vec2, n),
		Active: make([]bool, n),
	}
	for i := range n {
		res.Points[i] = c.Points[n-1-i]
		// edge i of the result runs from old vertex n-1-i to old vertex
		// n-2-i, which is old edge n-2-i
		res.Active[i] = c.Active[(2*n-2-i)%n]
	}
	return res
}
