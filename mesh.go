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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Mesh is an indexed triangle list, laid out the way GPU vertex and index
// buffers expect it.
type Mesh struct {
	Positions []float32 `json:"positions"` // x0,y0,z0, x1,y1,z1, ...
	UVs       []float32 `json:"uvs"`       // u0,v0, u1,v1, ...
	Indices   []uint32  `json:"indices"`   // three per triangle
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Positions) / 3
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// IsEmpty reports whether the mesh has no triangles.
func (m *Mesh) IsEmpty() bool {
	return len(m.Indices) == 0
}

// Vertex returns the XY position of vertex i.
func (m *Mesh) Vertex(i int) vec.Vec2 {
	return vec.Vec2{X: float64(m.Positions[3*i]), Y: float64(m.Positions[3*i+1])}
}

// Triangle returns the XY positions of the corners of triangle i.
func (m *Mesh) Triangle(i int) (a, b, c vec.Vec2) {
	idx := m.Indices[3*i : 3*i+3]
	return m.Vertex(int(idx[0])), m.Vertex(int(idx[1])), m.Vertex(int(idx[2]))
}

// Bounds returns the bounding box of all vertices in the XY plane.
// The zero rectangle is returned for an empty mesh.
func (m *Mesh) Bounds() rect.Rect {
	n := m.VertexCount()
	if n == 0 {
		return rect.Rect{}
	}
	p := m.Vertex(0)
	r := rect.Rect{LLx: p.X, LLy: p.Y, URx: p.X, URy: p.Y}
	for i := 1; i < n; i++ {
		p = m.Vertex(i)
		r.LLx = min(r.LLx, p.X)
		r.LLy = min(r.LLy, p.Y)
		r.URx = max(r.URx, p.X)
		r.URy = max(r.URy, p.Y)
	}
	return r
}

// Outline returns a path with one closed subpath per triangle.
// All subpaths are counter-clockwise, so the nonzero fill of the path
// covers exactly the triangles of the mesh.
func (m *Mesh) Outline() *path.Data {
	p := &path.Data{}
	for i := range m.TriangleCount() {
		a, b, c := m.Triangle(i)
		p.MoveTo(a).LineTo(b).LineTo(c).Close()
	}
	return p
}

// meshBuilder accumulates vertices and triangles for a Mesh.
type meshBuilder struct {
	m       *Mesh
	z       float32
	uvScale float64
}

func newMeshBuilder(z, uvScale float64) *meshBuilder {
	return &meshBuilder{m: &Mesh{}, z: float32(z), uvScale: uvScale}
}

// addVertex appends a vertex and returns its index.  The texture
// coordinates are a fixed multiple of the world position, so that
// patterns do not slide when the band geometry changes.
func (mb *meshBuilder) addVertex(p vec.Vec2) uint32 {
	idx := uint32(len(mb.m.Positions) / 3)
	mb.m.Positions = append(mb.m.Positions, float32(p.X), float32(p.Y), mb.z)
	mb.m.UVs = append(mb.m.UVs, float32(p.X*mb.uvScale), float32(p.Y*mb.uvScale))
	return idx
}

func (mb *meshBuilder) addTriangle(a, b, c uint32) {
	mb.m.Indices = append(mb.m.Indices, a, b, c)
}

// addTriangleCCW adds a triangle, swapping b and c if the stored vertex
// positions run clockwise.
func (mb *meshBuilder) addTriangleCCW(a, b, c uint32) {
	pa, pb, pc := mb.m.Vertex(int(a)), mb.m.Vertex(int(b)), mb.m.Vertex(int(c))
	if signedArea([]vec.Vec2{pa, pb, pc}) < 0 {
		b, c = c, b
	}
	mb.addTriangle(a, b, c)
}
