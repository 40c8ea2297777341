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

// Command export writes the band meshes of all test cases to
// testdata/meshes.json, for checking other implementations against.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/contour"
	"seehuhn.de/go/contour/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc, err := toJSON(category, tc)
			if err != nil {
				panic(err)
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/meshes.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name   string                   `json:"name"`
	Points [][]float64              `json:"points"`
	Active []bool                   `json:"active"`
	Params jsonParams               `json:"params"`
	Bands  map[string]*contour.Mesh `json:"bands"`
}

type jsonParams struct {
	StripWidth   float64 `json:"strip_width"`
	InnerPadding float64 `json:"inner_padding"`
	InnerWidth   float64 `json:"inner_width"`
	OuterPadding float64 `json:"outer_padding"`
	OuterWidth   float64 `json:"outer_width"`
	RoadWidth    float64 `json:"road_width,omitempty"`
	RoadPadding  float64 `json:"road_padding,omitempty"`
	MiterLimit   float64 `json:"miter_limit"`
	UVScale      float64 `json:"uv_scale"`
}

func toJSON(category string, tc testcases.TestCase) (jsonTestCase, error) {
	c, err := contour.New(tc.Points, tc.Active)
	if err != nil {
		return jsonTestCase{}, err
	}
	p := contour.EditorParams(tc.Strip, tc.SecondaryOffset, tc.SecondaryWidth)
	p.RoadWidth = tc.RoadWidth
	p.RoadPadding = tc.RoadPadding

	jtc := jsonTestCase{
		Name:   category + "_" + tc.Name,
		Points: make([][]float64, c.Len()),
		Active: c.Active,
		Params: jsonParams{
			StripWidth:   p.StripWidth,
			InnerPadding: p.InnerPadding,
			InnerWidth:   p.InnerWidth,
			OuterPadding: p.OuterPadding,
			OuterWidth:   p.OuterWidth,
			RoadWidth:    p.RoadWidth,
			RoadPadding:  p.RoadPadding,
			MiterLimit:   p.MiterLimit,
			UVScale:      p.UVScale,
		},
		Bands: p.Build(c),
	}
	for i, pt := range c.Points {
		jtc.Points[i] = []float64{pt.X, pt.Y}
	}
	return jtc, nil
}
