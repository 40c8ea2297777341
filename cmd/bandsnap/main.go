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

// Command bandsnap renders the bands of a contour scene to a PNG file.
//
// Usage:
//
//	bandsnap [flags] [scene.toml]
//
// Without a scene file the editor's start scene is used: a square with
// only the bottom edge active.  Edits can be applied before rendering:
//
//	bandsnap -toggle 1,2 -move 2:3,2.5 -insert 0:0,-2.5 -o out.png scene.toml
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"image/color"
	"image/png"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/contour"
	"seehuhn.de/go/contour/editor"
	"seehuhn.de/go/contour/preview"
	"seehuhn.de/go/contour/scene"
)

var bandColor = map[string]color.RGBA{
	contour.BandRoad:  {R: 0x99, G: 0x99, B: 0x99, A: 0xff},
	contour.BandSolid: {R: 0x2e, G: 0x7d, B: 0x32, A: 0xff},
	contour.BandInner: {R: 0x81, G: 0xc7, B: 0x84, A: 0xff},
	contour.BandOuter: {R: 0xff, G: 0xb3, B: 0x00, A: 0xff},
	contour.BandFill:  {R: 0xc8, G: 0xe6, B: 0xc9, A: 0xff},
}

func main() {
	out := flag.String("o", "bands.png", "output PNG file")
	width := flag.Int("w", 512, "image width in pixels")
	height := flag.Int("h", 512, "image height in pixels")
	margin := flag.Float64("margin", 8, "margin in pixels")
	jsonOut := flag.String("json", "", "also write the meshes as JSON to this file")
	sceneOut := flag.String("save", "", "write the edited scene as TOML to this file")
	toggle := flag.String("toggle", "", "comma-separated edges to switch on or off")
	var moves, inserts []string
	flag.Func("move", "drag vertex `i:x,y` (repeatable)", func(s string) error {
		moves = append(moves, s)
		return nil
	})
	flag.Func("insert", "insert a vertex on edge `i:x,y` (repeatable)", func(s string) error {
		inserts = append(inserts, s)
		return nil
	})
	verbose := flag.Bool("v", false, "log band rebuilds to stderr")
	flag.Parse()

	if *verbose {
		contour.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
			&slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	err := run(config{
		scene:    flag.Arg(0),
		out:      *out,
		width:    *width,
		height:   *height,
		margin:   *margin,
		jsonOut:  *jsonOut,
		sceneOut: *sceneOut,
		toggle:   *toggle,
		moves:    moves,
		inserts:  inserts,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "bandsnap:", err)
		os.Exit(1)
	}
}

type config struct {
	scene    string
	out      string
	width    int
	height   int
	margin   float64
	jsonOut  string
	sceneOut string
	toggle   string
	moves    []string
	inserts  []string
}

func run(cfg config) (err error) {
	s, err := loadScene(cfg.scene)
	if err != nil {
		return err
	}

	cv := newCanvas()
	e, err := editor.New(s.Contour, s.Params, cv)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, e.Close())
	}()

	events, err := parseEvents(cfg)
	if err != nil {
		return err
	}
	for _, ev := range events {
		if err := e.Handle(ev); err != nil {
			return err
		}
	}

	if cfg.sceneOut != "" {
		s := &scene.Scene{Contour: e.Contour(), Params: e.Params()}
		err := writeFile(cfg.sceneOut, func(f *os.File) error {
			return s.Encode(f)
		})
		if err != nil {
			return err
		}
	}

	var layers []preview.Layer
	meshes := make(map[string]*contour.Mesh)
	for _, b := range e.Params().Bands() {
		m := cv.mesh(b.Name)
		if m == nil {
			continue
		}
		meshes[b.Name] = m
		layers = append(layers, preview.Layer{Mesh: m, Color: bandColor[b.Name]})
	}

	img := preview.Render(layers, cfg.width, cfg.height, cfg.margin, color.White)
	err = writeFile(cfg.out, func(f *os.File) error {
		return png.Encode(f, img)
	})
	if err != nil {
		return err
	}

	if cfg.jsonOut != "" {
		err = writeFile(cfg.jsonOut, func(f *os.File) error {
			enc := json.NewEncoder(f)
			enc.SetIndent("", "  ")
			return enc.Encode(meshes)
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func loadScene(name string) (*scene.Scene, error) {
	if name != "" {
		return scene.Load(name)
	}
	c, err := contour.New([]vec.Vec2{
		{X: -2, Y: -2}, {X: 2, Y: -2}, {X: 2, Y: 2}, {X: -2, Y: 2},
	}, []bool{true, false, false, false})
	if err != nil {
		return nil, err
	}
	return &scene.Scene{Contour: c, Params: contour.DefaultParams()}, nil
}

// parseEvents turns the edit flags into editor events: first all inserts,
// then the toggles, then the drags.
func parseEvents(cfg config) ([]editor.Event, error) {
	var events []editor.Event
	for _, s := range cfg.inserts {
		i, p, err := parseIndexPoint(s)
		if err != nil {
			return nil, fmt.Errorf("-insert %q: %w", s, err)
		}
		events = append(events, editor.AddPointClick{Edge: i, Pos: p})
	}
	if cfg.toggle != "" {
		for _, f := range strings.Split(cfg.toggle, ",") {
			i, err := strconv.Atoi(strings.TrimSpace(f))
			if err != nil {
				return nil, fmt.Errorf("-toggle %q: %w", cfg.toggle, err)
			}
			events = append(events, editor.EdgeClick{Edge: i})
		}
	}
	for _, s := range cfg.moves {
		i, p, err := parseIndexPoint(s)
		if err != nil {
			return nil, fmt.Errorf("-move %q: %w", s, err)
		}
		events = append(events,
			editor.DragStart{Index: i},
			editor.DragMove{Pos: p},
			editor.DragEnd{})
	}
	return events, nil
}

// parseIndexPoint parses "i:x,y".
func parseIndexPoint(s string) (int, vec.Vec2, error) {
	idx, xy, ok := strings.Cut(s, ":")
	if !ok {
		return 0, vec.Vec2{}, errors.New("expected i:x,y")
	}
	i, err := strconv.Atoi(idx)
	if err != nil {
		return 0, vec.Vec2{}, err
	}
	xs, ys, ok := strings.Cut(xy, ",")
	if !ok {
		return 0, vec.Vec2{}, errors.New("expected i:x,y")
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return 0, vec.Vec2{}, err
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return 0, vec.Vec2{}, err
	}
	return i, vec.Vec2{X: x, Y: y}, nil
}

func writeFile(name string, write func(f *os.File) error) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
