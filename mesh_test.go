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
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
)

func TestMeshOutline(t *testing.T) {
	m := DefaultParams().Build(square(true, false, false, false))[BandSolid]

	p := m.Outline()
	var moves, closes int
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			moves++
		case path.CmdClose:
			closes++
		}
	}
	if moves != m.TriangleCount() || closes != m.TriangleCount() {
		t.Errorf("%d subpaths, %d closed, for %d triangles", moves, closes, m.TriangleCount())
	}
	if len(p.Coords) != 3*m.TriangleCount() {
		t.Errorf("got %d coordinates", len(p.Coords))
	}
}

func TestMeshBounds(t *testing.T) {
	empty := &Mesh{}
	if b := empty.Bounds(); b != (rect.Rect{}) {
		t.Errorf("empty mesh: %v", b)
	}

	m := DefaultParams().Build(square())[BandOuter]
	b := m.Bounds()
	if b.LLx >= -2 || b.URx <= 2 || b.LLy >= -2 || b.URy <= 2 {
		t.Errorf("outer strip bounds %v do not enclose the contour", b)
	}
}
