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

// Package testcases defines reference contours shared by the tests,
// benchmarks and the generator commands.
package testcases

import (
	"seehuhn.de/go/geom/vec"
)

// TestCase is a contour with edge flags and the editor slider settings
// used to build its bands.
type TestCase struct {
	Name   string     // lowercase a-z, 0-9 and _ only
	Points []vec.Vec2 // contour vertices
	Active []bool     // edge flags, one per vertex
	Width  int        // preview width in pixels
	Height int        // preview height in pixels

	Strip           float64 // solid strip width
	SecondaryOffset float64 // offset of the secondary strips
	SecondaryWidth  float64 // width of the secondary strips
	RoadWidth       float64 // road strip width, 0 for none
	RoadPadding     float64 // gap between road and strip or contour
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// square returns the editor's start contour, with corners at ±2.
func square() []vec.Vec2 {
	return []vec.Vec2{pt(-2, -2), pt(2, -2), pt(2, 2), pt(-2, 2)}
}
