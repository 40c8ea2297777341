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

// Band is one offset region around a contour, for example the solid strip
// or the interior fill.
type Band struct {
	// Name identifies the band.
	Name string

	// Mode selects the triangulation.
	Mode Mode

	// Near is the offset contour on the contour side of a QuadStrip band.
	// If Near is nil, the contour itself is used.  Fan bands ignore Near.
	Near *Offsetter

	// Far is the offset contour on the other side of a QuadStrip band, or
	// the boundary of a Fan band.  Far must not be nil.
	Far *Offsetter

	// Z is the height of the rendering plane of the band.
	Z float64

	// UVScale converts world positions into texture coordinates.
	UVScale float64
}

// Build computes the mesh of the band for the current state of c.
// The result only depends on c and the band parameters; nothing is kept
// between calls.
func (b *Band) Build(c *Contour) *Mesh {
	var m *Mesh
	switch b.Mode {
	case Fan:
		boundary := b.Far.Boundary(c)
		if len(boundary) < 3 {
			Logger().Debug("fan band skipped",
				"band", b.Name,
				"points", len(boundary))
		}
		m = fan(boundary, b.Z, b.UVScale)

	case QuadStrip:
		var near []vec.Vec2
		if b.Near != nil {
			near = b.Near.Points(c)
		} else {
			near = c.Points
		}
		far := b.Far.Points(c)
		use := func(i int) bool { return c.Active[i] }
		if b.Far.AllEdges {
			use = func(int) bool { return true }
		}
		m = quadStrip(near, far, use, b.Z, b.UVScale)

	default:
		Logger().Debug("unknown band mode",
			"band", b.Name,
			"mode", int(b.Mode))
		m = &Mesh{}
	}

	Logger().Debug("band rebuilt",
		"band", b.Name,
		"mode", b.Mode.String(),
		"vertices", m.VertexCount(),
		"triangles", m.TriangleCount())
	return m
}
