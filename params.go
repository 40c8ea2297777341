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
	"seehuhn.de/go/pdf/graphics"
)

// Names of the bands returned by Params.Bands.
const (
	BandRoad  = "road"
	BandSolid = "solid"
	BandInner = "inner"
	BandOuter = "outer"
	BandFill  = "fill"
)

// Rendering planes of the bands, bottom to top.
const (
	roadZ  = 0.005
	solidZ = 0.01
	innerZ = 0.015
	outerZ = 0.02
	fillZ  = 0.05
)

// Params holds the widths and paddings of all bands.
// All distances are measured in the units of the contour.
type Params struct {
	// StripWidth is the width of the solid strip inside active edges.
	StripWidth float64

	// InnerPadding is the gap between the inside of the solid strip and
	// the inner secondary strip, InnerWidth the width of that strip.
	// The interior fill starts where the inner secondary strip ends.
	InnerPadding float64
	InnerWidth   float64

	// OuterPadding is added to StripWidth to get the distance of the
	// outer secondary strip from the contour, OuterWidth is the width of
	// that strip.  The strip lies outside the contour.
	OuterPadding float64
	OuterWidth   float64

	// RoadWidth is the width of the road strip, RoadPadding its gap to the
	// solid strip (active edges) or to the contour (inactive edges).
	// A RoadWidth of zero disables the road strip.
	RoadWidth   float64
	RoadPadding float64

	// MiterLimit caps the miter length at the corners of the solid strip,
	// as a multiple of StripWidth.  Zero disables the limit.
	MiterLimit float64

	// UVScale converts world positions into texture coordinates.
	UVScale float64
}

// Default values for the band parameters.
const (
	defaultStripWidth      = 0.8
	defaultSecondaryOffset = 0
	defaultSecondaryWidth  = 0.15
	defaultMiterLimit      = 4
	defaultUVScale         = 2
)

// DefaultParams returns the parameters of a freshly opened editor.
func DefaultParams() Params {
	return EditorParams(defaultStripWidth, defaultSecondaryOffset, defaultSecondaryWidth)
}

// EditorParams derives the band parameters from the three editor sliders:
// the strip width, the offset of the secondary strips and their width.
//
// The inner and outer paddings follow different formulas; they are kept as
// separate fields so that each can be adjusted on its own.
func EditorParams(strip, offset, width float64) Params {
	return Params{
		StripWidth:   strip,
		InnerPadding: offset + width,
		InnerWidth:   width,
		OuterPadding: offset - strip - 0.01,
		OuterWidth:   width,
		MiterLimit:   defaultMiterLimit,
		UVScale:      defaultUVScale,
	}
}

// Bands returns the bands described by p, in drawing order.
func (p Params) Bands() []Band {
	var bands []Band

	if p.RoadWidth > 0 {
		half := p.RoadWidth / 2
		center := func(active bool) float64 {
			if active {
				return p.StripWidth + p.RoadPadding + half
			}
			return -(p.RoadPadding + half)
		}
		bands = append(bands, Band{
			Name: BandRoad,
			Mode: QuadStrip,
			Near: &Offsetter{
				Side:     Inward,
				Distance: func(_ int, active bool) float64 { return center(active) - half },
				AllEdges: true,
			},
			Far: &Offsetter{
				Side:     Inward,
				Distance: func(_ int, active bool) float64 { return center(active) + half },
				AllEdges: true,
			},
			Z:       roadZ,
			UVScale: p.UVScale,
		})
	}

	innerStart := p.StripWidth + p.InnerPadding
	innerEnd := innerStart + p.InnerWidth
	outerStart := p.StripWidth + p.OuterPadding
	outerEnd := outerStart + p.OuterWidth

	bands = append(bands,
		Band{
			Name: BandSolid,
			Mode: QuadStrip,
			Far: &Offsetter{
				Side:       Inward,
				Distance:   Const(p.StripWidth),
				Join:       graphics.LineJoinMiter,
				MiterLimit: p.MiterLimit,
			},
			Z:       solidZ,
			UVScale: p.UVScale,
		},
		Band{
			Name:    BandInner,
			Mode:    QuadStrip,
			Near:    &Offsetter{Side: Inward, Distance: Const(innerStart)},
			Far:     &Offsetter{Side: Inward, Distance: Const(innerEnd)},
			Z:       innerZ,
			UVScale: p.UVScale,
		},
		Band{
			Name:    BandOuter,
			Mode:    QuadStrip,
			Near:    &Offsetter{Side: Outward, Distance: Const(outerStart)},
			Far:     &Offsetter{Side: Outward, Distance: Const(outerEnd)},
			Z:       outerZ,
			UVScale: p.UVScale,
		},
		Band{
			Name:    BandFill,
			Mode:    Fan,
			Far:     &Offsetter{Side: Inward, Distance: Const(innerEnd)},
			Z:       fillZ,
			UVScale: p.UVScale,
		},
	)
	return bands
}

// Build computes the meshes of all bands for the current state of c,
// keyed by band name.
func (p Params) Build(c *Contour) map[string]*Mesh {
	bands := p.Bands()
	res := make(map[string]*Mesh, len(bands))
	for i := range bands {
		res[bands[i].Name] = bands[i].Build(c)
	}
	return res
}
