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
)

// parallelThreshold is the smallest magnitude of the cross-product
// denominator for which two lines are considered to intersect.  Offset
// lines of adjacent short edges which are closer to parallel than this
// fall back to a perpendicular offset.
const parallelThreshold = 1e-6

// Intersect returns the intersection point of the infinite line through
// p1 and p2 with the infinite line through p3 and p4.  The second return
// value is false if the lines are parallel, collinear or nearly so.
func Intersect(p1, p2, p3, p4 vec.Vec2) (vec.Vec2, bool) {
	den := (p1.X-p2.X)*(p3.Y-p4.Y) - (p1.Y-p2.Y)*(p3.X-p4.X)
	if math.Abs(den) < parallelThreshold {
		return vec.Vec2{}, false
	}

	t := ((p1.X-p3.X)*(p3.Y-p4.Y) - (p1.Y-p3.Y)*(p3.X-p4.X)) / den
	return p1.Add(p2.Sub(p1).Mul(t)), true
}
