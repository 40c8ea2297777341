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
	"math"

	"seehuhn.de/go/geom/vec"
)

var polygonCases = []TestCase{
	{
		Name:           "hexagon",
		Points:         regular(6, 3),
		Active:         []bool{true, true, true, true, true, true},
		Width:          128,
		Height:         128,
		Strip:          0.5,
		SecondaryWidth: 0.15,
	},
	{
		Name:           "pentagon_mixed",
		Points:         regular(5, 3),
		Active:         []bool{true, false, true, true, false},
		Width:          128,
		Height:         128,
		Strip:          0.6,
		SecondaryWidth: 0.1,
	},
	{
		Name: "clockwise",
		Points: []vec.Vec2{
			pt(-2, -2), pt(-2, 2), pt(2, 2), pt(2, -2),
		},
		Active:         []bool{true, true, false, true},
		Width:          128,
		Height:         128,
		Strip:          0.8,
		SecondaryWidth: 0.15,
	},
	{
		Name: "l_shape",
		Points: []vec.Vec2{
			pt(-3, -3), pt(3, -3), pt(3, 0), pt(0, 0), pt(0, 3), pt(-3, 3),
		},
		Active:         []bool{true, true, true, true, true, true},
		Width:          128,
		Height:         128,
		Strip:          0.5,
		SecondaryWidth: 0.1,
	},
	{
		Name: "dragged",
		Points: []vec.Vec2{
			pt(-2, -2), pt(2.5, -1.5), pt(1.5, 2.5), pt(-2.2, 1.8),
		},
		Active:          []bool{true, true, false, true},
		Width:           128,
		Height:          128,
		Strip:           0.7,
		SecondaryOffset: 0.1,
		SecondaryWidth:  0.2,
	},
}

// regular returns the corners of a regular polygon with n sides and the
// given circumradius, centred at the origin, counter-clockwise.
func regular(n int, radius float64) []vec.Vec2 {
	pts := make([]vec.Vec2, n)
	for i := range pts {
		phi := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = pt(radius*math.Cos(phi), radius*math.Sin(phi))
	}
	return pts
}
