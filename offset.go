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

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Distance gives the offset distance for an edge.  The active argument is
// the edge's on/off flag, which lets a band place active and inactive
// edges at different distances.  Negative values move the offset to the
// opposite side.
type Distance func(edge int, active bool) float64

// Const returns a Distance which is d for every edge.
func Const(d float64) Distance {
	return func(int, bool) float64 { return d }
}

// Offsetter computes a contour parallel to a Contour.
//
// At every vertex the two adjacent edges decide the corner:
//   - both edges active: the offset lines of the two edges are intersected
//     (miter).  If there is no intersection, or the miter point is further
//     than MiterLimit times the offset distance from the vertex, the vertex
//     is moved along the normal of the following edge instead (bevel).
//   - only one edge active: the vertex is moved along that edge's normal.
//   - neither edge active: the vertex is not offset.
type Offsetter struct {
	// Side selects whether positive distances point into or out of the
	// contour.
	Side Side

	// Distance is the offset distance per edge.
	Distance Distance

	// Join selects the corner treatment where both edges are active.
	// LineJoinBevel always uses the perpendicular offset along the
	// following edge; any other value uses the miter point.
	Join graphics.LineJoinStyle

	// MiterLimit, if positive, caps the distance between a vertex and its
	// miter point at MiterLimit times the offset distance of the following
	// edge.
	MiterLimit float64

	// AllEdges treats every vertex as if both adjacent edges were active.
	// Distance still receives the real flag of each edge.
	AllEdges bool
}

// Points returns one offset point per vertex of c, in vertex order.
// Vertices where neither adjacent edge is active are returned unchanged.
func (o *Offsetter) Points(c *Contour) []vec.Vec2 {
	normals := o.normals(c)
	res := make([]vec.Vec2, c.Len())
	for k := range res {
		res[k], _ = o.corner(c, normals, k)
	}
	return res
}

// Boundary returns the offset points of all vertices which have at least
// one active adjacent edge, in vertex order.  Vertices where neither edge
// is active are left out.
func (o *Offsetter) Boundary(c *Contour) []vec.Vec2 {
	normals := o.normals(c)
	res := make([]vec.Vec2, 0, c.Len())
	for k := range c.Len() {
		if p, ok := o.corner(c, normals, k); ok {
			res = append(res, p)
		}
	}
	return res
}

// normals returns the unit normal of every edge on the offsetter's side.
func (o *Offsetter) normals(c *Contour) []vec.Vec2 {
	center := c.Centroid()
	res := make([]vec.Vec2, c.Len())
	for i := range res {
		a, b := c.Edge(i)
		res[i] = edgeNormal(a, b, center, o.Side)
	}
	return res
}

// corner returns the offset point at vertex k.  The second return value is
// false if neither adjacent edge takes part in the offset.
func (o *Offsetter) corner(c *Contour, normals []vec.Vec2, k int) (vec.Vec2, bool) {
	j := c.prev(k)
	p := c.Points[k]
	prevActive := c.Active[j]
	currActive := c.Active[k]

	switch {
	case o.AllEdges || prevActive && currActive:
		offPrev := normals[j].Mul(o.Distance(j, prevActive))
		dCurr := o.Distance(k, currActive)
		offCurr := normals[k].Mul(dCurr)
		bevel := p.Add(offCurr)
		if o.Join == graphics.LineJoinBevel {
			return bevel, true
		}

		pPrev := c.Points[j]
		pNext := c.Points[(k+1)%c.Len()]
		miter, ok := Intersect(pPrev.Add(offPrev), p.Add(offPrev), p.Add(offCurr), pNext.Add(offCurr))
		if !ok {
			return bevel, true
		}
		if o.MiterLimit > 0 && miter.Sub(p).Length() > o.MiterLimit*math.Abs(dCurr) {
			return bevel, true
		}
		return miter, true

	case currActive:
		return p.Add(normals[k].Mul(o.Distance(k, true))), true

	case prevActive:
		return p.Add(normals[j].Mul(o.Distance(j, true))), true

	default:
		return p, false
	}
}
