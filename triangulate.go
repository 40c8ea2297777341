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

// Mode selects how a band is turned into triangles.
type Mode int

const (
	// QuadStrip emits one independent quad per edge, spanning the edge
	// between two offset contours.
	QuadStrip Mode = iota

	// Fan fills the closed polygon formed by an offset boundary, using
	// triangles which share the boundary's centroid.
	Fan
)

func (m Mode) String() string {
	switch m {
	case QuadStrip:
		return "quad-strip"
	case Fan:
		return "fan"
	default:
		return "unknown"
	}
}

// quadStrip builds one quad for every edge i with use(i) true.  The quad
// has the four corners near[i], near[i+1], far[i+1], far[i] in this order
// and is split along the diagonal from near[i] to far[i+1].  Quads do not
// share vertices.  A bevelled corner can twist a quad, so each triangle is
// oriented on its own.
func quadStrip(near, far []vec.Vec2, use func(int) bool, z, uvScale float64) *Mesh {
	mb := newMeshBuilder(z, uvScale)
	n := len(near)
	for i := range n {
		if !use(i) {
			continue
		}
		j := (i + 1) % n
		v0 := mb.addVertex(near[i])
		v1 := mb.addVertex(near[j])
		v2 := mb.addVertex(far[j])
		v3 := mb.addVertex(far[i])
		mb.addTriangleCCW(v0, v1, v2)
		mb.addTriangleCCW(v0, v2, v3)
	}
	return mb.m
}

// fan triangulates the closed polygon through the given boundary points
// around their centroid.  Fewer than three points give an empty mesh.
func fan(boundary []vec.Vec2, z, uvScale float64) *Mesh {
	n := len(boundary)
	if n < 3 {
		return &Mesh{}
	}

	mb := newMeshBuilder(z, uvScale)
	for _, p := range boundary {
		mb.addVertex(p)
	}
	center := mb.addVertex(centroid(boundary))

	for i := range n {
		mb.addTriangleCCW(center, uint32(i), uint32((i+1)%n))
	}
	return mb.m
}
