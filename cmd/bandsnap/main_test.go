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

package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/contour"
	"seehuhn.de/go/contour/editor"
	"seehuhn.de/go/contour/scene"
)

func TestParseIndexPoint(t *testing.T) {
	i, p, err := parseIndexPoint("2:3, -1.5")
	require.NoError(t, err)
	assert.Equal(t, 2, i)
	assert.Equal(t, vec.Vec2{X: 3, Y: -1.5}, p)

	for _, bad := range []string{"", "2", "2:3", "x:1,2", "1:a,2"} {
		_, _, err := parseIndexPoint(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseEvents(t *testing.T) {
	events, err := parseEvents(config{
		inserts: []string{"0:0,-2.5"},
		toggle:  "1, 3",
		moves:   []string{"2:3,3"},
	})
	require.NoError(t, err)
	assert.Equal(t, []editor.Event{
		editor.AddPointClick{Edge: 0, Pos: vec.Vec2{X: 0, Y: -2.5}},
		editor.EdgeClick{Edge: 1},
		editor.EdgeClick{Edge: 3},
		editor.DragStart{Index: 2},
		editor.DragMove{Pos: vec.Vec2{X: 3, Y: 3}},
		editor.DragEnd{},
	}, events)

	_, err = parseEvents(config{toggle: "1,x"})
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	cfg := config{
		out:      filepath.Join(dir, "bands.png"),
		width:    64,
		height:   48,
		margin:   2,
		jsonOut:  filepath.Join(dir, "bands.json"),
		sceneOut: filepath.Join(dir, "scene.toml"),
		toggle:   "2",
	}
	require.NoError(t, run(cfg))

	f, err := os.Open(cfg.out)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 48, img.Bounds().Dy())

	s, err := scene.Load(cfg.sceneOut)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, true, false}, s.Contour.Active)
	assert.Equal(t, contour.DefaultParams(), s.Params)

	info, err := os.Stat(cfg.jsonOut)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestCanvasRelease(t *testing.T) {
	cv := newCanvas()
	r, err := cv.Upload(contour.BandSolid, &contour.Mesh{})
	require.NoError(t, err)
	assert.NotNil(t, cv.mesh(contour.BandSolid))

	require.NoError(t, r.Release())
	assert.Nil(t, cv.mesh(contour.BandSolid))
	assert.ErrorIs(t, r.Release(), errReleased)
}
