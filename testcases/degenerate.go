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

package testcases

import (
	"seehuhn.de/go/geom/vec"
)

var degenerateCases = []TestCase{
	{
		// The corner at (10, 0) is so sharp that the solid strip
		// miter exceeds the limit and falls back to a bevel.
		Name:           "spike",
		Points:         []vec.Vec2{pt(0, 0), pt(10, 0), pt(0, 1)},
		Active:         []bool{true, true, true},
		Width:          256,
		Height:         64,
		Strip:          0.1,
		SecondaryWidth: 0.02,
	},
	{
		// (0, -2) splits the bottom edge, so its two edges are
		// collinear and their offset lines never meet.
		Name:           "collinear",
		Points:         []vec.Vec2{pt(-2, -2), pt(0, -2), pt(2, -2), pt(2, 2), pt(-2, 2)},
		Active:         []bool{true, true, true, true, true},
		Width:          128,
		Height:         128,
		Strip:          0.8,
		SecondaryWidth: 0.15,
	},
	{
		Name:           "duplicate_point",
		Points:         []vec.Vec2{pt(-2, -2), pt(2, -2), pt(2, -2), pt(2, 2), pt(-2, 2)},
		Active:         []bool{true, true, true, true, true},
		Width:          128,
		Height:         128,
		Strip:          0.8,
		SecondaryWidth: 0.15,
	},
	{
		Name:           "single_edge",
		Points:         []vec.Vec2{pt(-2, -2), pt(2, -2), pt(0, 2)},
		Active:         []bool{false, true, false},
		Width:          128,
		Height:         128,
		Strip:          0.5,
		SecondaryWidth: 0.15,
	},
}
