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

// Package contour computes offset bands around a closed polygon whose
// edges can be switched on and off individually.
//
// A [Contour] holds the vertices and the per-edge flags.  An [Offsetter]
// turns it into a parallel contour, treating each corner according to
// which of its two edges are active.  A [Band] combines one or two offset
// contours into a triangle [Mesh], either as independent quads along the
// active edges or as a fan filling the region inside.  [Params.Bands]
// returns the standard set of bands: solid strip, inner and outer
// secondary strips, interior fill, and optionally a road strip.
//
// All results are recomputed from scratch on every call.
package contour

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf
