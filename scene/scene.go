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

// Package scene reads and writes contour scenes in TOML format.
//
// A scene file looks like this:
//
//	points = [[-2.0, -2.0], [2.0, -2.0], [2.0, 2.0], [-2.0, 2.0]]
//	active = [true, false, false, false]
//
//	[params]
//	strip_width = 0.8
//	secondary_offset = 0.0
//	secondary_width = 0.15
//	road_width = 0.3
//
// The active list is optional; if it is missing, all edges are active.
// All parameters are optional.  The inner and outer strips are derived
// from the secondary values, unless inner_padding, inner_width,
// outer_padding or outer_width are given explicitly.
package scene

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/pelletier/go-toml/v2"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/contour"
)

// ErrInvalid is returned for scene files which cannot be used.
var ErrInvalid = errors.New("scene: invalid scene")

// Scene is a contour together with its band parameters.
type Scene struct {
	Contour *contour.Contour
	Params  contour.Params
}

type file struct {
	Points [][]float64 `toml:"points"`
	Active []bool      `toml:"active,omitempty"`
	Params params      `toml:"params"`
}

type params struct {
	StripWidth      *float64 `toml:"strip_width,omitempty"`
	SecondaryOffset *float64 `toml:"secondary_offset,omitempty"`
	SecondaryWidth  *float64 `toml:"secondary_width,omitempty"`
	InnerPadding    *float64 `toml:"inner_padding,omitempty"`
	InnerWidth      *float64 `toml:"inner_width,omitempty"`
	OuterPadding    *float64 `toml:"outer_padding,omitempty"`
	OuterWidth      *float64 `toml:"outer_width,omitempty"`
	RoadWidth       *float64 `toml:"road_width,omitempty"`
	RoadPadding     *float64 `toml:"road_padding,omitempty"`
	MiterLimit      *float64 `toml:"miter_limit,omitempty"`
	UVScale         *float64 `toml:"uv_scale,omitempty"`
}

// Load reads a scene from the named file.
func Load(name string) (*Scene, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return s, nil
}

// Decode reads a scene in TOML format.  Unknown keys are an error.
func Decode(r io.Reader) (*Scene, error) {
	var f file
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	if len(f.Points) < 3 {
		return nil, fmt.Errorf("%w: need at least 3 points, got %d",
			ErrInvalid, len(f.Points))
	}
	pts := make([]vec.Vec2, len(f.Points))
	for i, xy := range f.Points {
		if len(xy) != 2 {
			return nil, fmt.Errorf("%w: point %d has %d coordinates",
				ErrInvalid, i, len(xy))
		}
		if !finite(xy[0]) || !finite(xy[1]) {
			return nil, fmt.Errorf("%w: point %d is not finite", ErrInvalid, i)
		}
		pts[i] = vec.Vec2{X: xy[0], Y: xy[1]}
	}

	c, err := contour.New(pts, f.Active)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	p, err := f.Params.resolve()
	if err != nil {
		return nil, err
	}
	return &Scene{Contour: c, Params: p}, nil
}

// Encode writes the scene in TOML format.  The inner and outer strips are
// written explicitly, so that Decode reproduces the parameters exactly.
func (s *Scene) Encode(w io.Writer) error {
	f := file{
		Points: make([][]float64, s.Contour.Len()),
		Active: s.Contour.Active,
	}
	for i, p := range s.Contour.Points {
		f.Points[i] = []float64{p.X, p.Y}
	}
	p := s.Params
	f.Params = params{
		StripWidth:   &p.StripWidth,
		InnerPadding: &p.InnerPadding,
		InnerWidth:   &p.InnerWidth,
		OuterPadding: &p.OuterPadding,
		OuterWidth:   &p.OuterWidth,
		MiterLimit:   &p.MiterLimit,
		UVScale:      &p.UVScale,
	}
	if p.RoadWidth > 0 {
		f.Params.RoadWidth = &p.RoadWidth
		f.Params.RoadPadding = &p.RoadPadding
	}
	return toml.NewEncoder(w).Encode(f)
}

func (q *params) resolve() (contour.Params, error) {
	def := contour.DefaultParams()
	strip := get(q.StripWidth, def.StripWidth)
	offset := get(q.SecondaryOffset, 0)
	width := get(q.SecondaryWidth, def.InnerWidth)

	p := contour.EditorParams(strip, offset, width)
	p.InnerPadding = get(q.InnerPadding, p.InnerPadding)
	p.InnerWidth = get(q.InnerWidth, p.InnerWidth)
	p.OuterPadding = get(q.OuterPadding, p.OuterPadding)
	p.OuterWidth = get(q.OuterWidth, p.OuterWidth)
	p.RoadWidth = get(q.RoadWidth, 0)
	p.RoadPadding = get(q.RoadPadding, 0)
	p.MiterLimit = get(q.MiterLimit, p.MiterLimit)
	p.UVScale = get(q.UVScale, p.UVScale)

	checks := []struct {
		key string
		val float64
	}{
		{"strip_width", p.StripWidth},
		{"inner_width", p.InnerWidth},
		{"outer_width", p.OuterWidth},
		{"road_width", p.RoadWidth},
		{"road_padding", p.RoadPadding},
		{"miter_limit", p.MiterLimit},
	}
	for _, c := range checks {
		if !finite(c.val) || c.val < 0 {
			return contour.Params{}, fmt.Errorf("%w: %s = %g", ErrInvalid, c.key, c.val)
		}
	}
	for key, val := range map[string]float64{
		"inner_padding": p.InnerPadding,
		"outer_padding": p.OuterPadding,
		"uv_scale":      p.UVScale,
	} {
		if !finite(val) {
			return contour.Params{}, fmt.Errorf("%w: %s = %g", ErrInvalid, key, val)
		}
	}
	return p, nil
}

func get(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
