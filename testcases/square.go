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

var squareCases = []TestCase{
	{
		Name:           "bottom_only",
		Points:         square(),
		Active:         []bool{true, false, false, false},
		Width:          128,
		Height:         128,
		Strip:          0.8,
		SecondaryWidth: 0.15,
	},
	{
		Name:           "all_active",
		Points:         square(),
		Active:         []bool{true, true, true, true},
		Width:          128,
		Height:         128,
		Strip:          0.8,
		SecondaryWidth: 0.15,
	},
	{
		Name:           "none_active",
		Points:         square(),
		Active:         []bool{false, false, false, false},
		Width:          128,
		Height:         128,
		Strip:          0.8,
		SecondaryWidth: 0.15,
	},
	{
		Name:           "opposite",
		Points:         square(),
		Active:         []bool{true, false, true, false},
		Width:          128,
		Height:         128,
		Strip:          0.5,
		SecondaryWidth: 0.2,
	},
	{
		Name:            "three_sides",
		Points:          square(),
		Active:          []bool{true, true, true, false},
		Width:           128,
		Height:          128,
		Strip:           0.8,
		SecondaryOffset: 0.25,
		SecondaryWidth:  0.15,
	},
}
