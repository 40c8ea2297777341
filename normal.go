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
	"seehuhn.de/go/geom/vec"
)

// Side selects on which side of the contour an offset lies.
type Side int

const (
	// Inward offsets point towards the centroid of the contour.
	Inward Side = iota

	// Outward offsets point away from the centroid of the contour.
	Outward
)

func (s Side) String() string {
	switch s {
	case Inward:
		return "inward"
	case Outward:
		return "outward"
	default:
		return "unknown"
	}
}

// zeroLengthThreshold is the minimum length of an edge for its normal to
// be defined.
const zeroLengthThreshold = 1e-10

// Normal returns the unit normal of edge i.
//
// The orientation is decided by comparing the normal with the vector from
// the edge midpoint to the centroid of all vertices, so that the result
// does not depend on whether the contour runs clockwise or
// counter-clockwise.  For a zero-length edge the zero vector is returned.
func (c *Contour) Normal(i int, side Side) vec.Vec2 {
	a, b := c.Edge(i)
	return edgeNormal(a, b, c.Centroid(), side)
}

func edgeNormal(a, b, center vec.Vec2, side Side) vec.Vec2 {
	d := b.Sub(a)
	length := d.Length()
	if length < zeroLengthThreshold {
		return vec.Vec2{}
	}
	n := vec.Vec2{X: -d.Y / length, Y: d.X / length} // 90° CCW

	mid := a.Add(b).Mul(0.5)
	dot := n.Dot(center.Sub(mid))
	if side == Inward && dot < 0 || side == Outward && dot > 0 {
		n = n.Mul(-1)
	}
	return n
}
