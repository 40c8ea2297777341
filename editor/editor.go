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

// Package editor keeps the band meshes of an interactive contour up to
// date and hands them to a renderer.
//
// Every band owns exactly one live [Resource].  When a band is rebuilt the
// new mesh is uploaded first and the previous resource is released before
// the new one takes its place, so that no stale meshes accumulate.
//
// An Editor is not safe for concurrent use.
package editor

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/contour"
)

var (
	// ErrClosed is returned by all operations after Close.
	ErrClosed = errors.New("editor: closed")

	// ErrDragActive is returned by BeginDrag while another drag is in
	// progress.
	ErrDragActive = errors.New("editor: drag already in progress")

	// ErrDragEnded is returned when moving a drag which has ended.
	ErrDragEnded = errors.New("editor: drag has ended")
)

// Resource is a mesh held by the renderer, for example a set of GPU
// buffers.
type Resource interface {
	Release() error
}

// Uploader turns meshes into renderer resources.
type Uploader interface {
	Upload(band string, m *contour.Mesh) (Resource, error)
}

type slot struct {
	mesh *contour.Mesh
	res  Resource
}

// Editor owns a contour, the band parameters and one renderer resource per
// band.  All mutations recompute the bands synchronously.
type Editor struct {
	c  *contour.Contour
	p  contour.Params
	up Uploader

	slots  map[string]*slot
	drag   *Drag
	closed bool
}

// New creates an editor for a copy of c and builds all bands.
// If any upload fails, the resources created so far are released and the
// error is returned.
func New(c *contour.Contour, p contour.Params, up Uploader) (*Editor, error) {
	e := &Editor{
		c:     c.Clone(),
		p:     p,
		up:    up,
		slots: make(map[string]*slot),
	}
	if err := e.rebuild(); err != nil {
		return nil, errors.Join(err, e.releaseAll())
	}
	return e, nil
}

// Contour returns a copy of the current contour.
func (e *Editor) Contour() *contour.Contour {
	return e.c.Clone()
}

// Params returns the current band parameters.
func (e *Editor) Params() contour.Params {
	return e.p
}

// Mesh returns the current mesh of the named band, or nil if the band is
// not present.
func (e *Editor) Mesh(band string) *contour.Mesh {
	if s, ok := e.slots[band]; ok {
		return s.mesh
	}
	return nil
}

// Bands returns the names of the bands which currently hold a resource,
// in sorted order.
func (e *Editor) Bands() []string {
	return slices.Sorted(maps.Keys(e.slots))
}

// MovePoint moves vertex i to p.
func (e *Editor) MovePoint(i int, p vec.Vec2) error {
	if e.closed {
		return ErrClosed
	}
	if err := e.c.MovePoint(i, p); err != nil {
		return err
	}
	return e.rebuild()
}

// InsertPoint splits the given edge at p.  The new vertex inherits the
// edge's flag.
func (e *Editor) InsertPoint(edge int, p vec.Vec2) error {
	if e.closed {
		return ErrClosed
	}
	if err := e.c.InsertPoint(edge, p); err != nil {
		return err
	}
	if e.drag != nil && e.drag.index > edge {
		e.drag.index++
	}
	return e.rebuild()
}

// ToggleEdge switches the given edge on or off.
func (e *Editor) ToggleEdge(edge int) error {
	if e.closed {
		return ErrClosed
	}
	if err := e.c.ToggleEdge(edge); err != nil {
		return err
	}
	return e.rebuild()
}

// SetParams replaces the band parameters.  Bands which are no longer
// produced, for example the road after its width was set to zero, have
// their resources released.
func (e *Editor) SetParams(p contour.Params) error {
	if e.closed {
		return ErrClosed
	}
	e.p = p
	return e.rebuild()
}

// TogglePositions returns the midpoint of every edge, where the controls
// for switching edges are placed.
func (e *Editor) TogglePositions() []vec.Vec2 {
	res := make([]vec.Vec2, e.c.Len())
	for i := range res {
		a, b := e.c.Edge(i)
		res[i] = a.Add(b).Mul(0.5)
	}
	return res
}

// AddPointPositions returns one position per edge for the controls which
// insert a new vertex.  They sit outside the contour, clear of the strip.
func (e *Editor) AddPointPositions() []vec.Vec2 {
	dist := e.p.StripWidth/2 + 0.2
	res := e.TogglePositions()
	for i := range res {
		res[i] = res[i].Add(e.c.Normal(i, contour.Outward).Mul(dist))
	}
	return res
}

// Close ends any active drag and releases all resources.
// Calling Close more than once has no further effect.
func (e *Editor) Close() error {
	if e.closed {
		return nil
	}
	if e.drag != nil {
		e.drag.End()
	}
	e.closed = true
	return e.releaseAll()
}

// rebuild recomputes every band and swaps in the new resources.
func (e *Editor) rebuild() error {
	bands := e.p.Bands()
	present := make(map[string]bool, len(bands))

	var errs []error
	for i := range bands {
		b := &bands[i]
		present[b.Name] = true

		m := b.Build(e.c)
		res, err := e.up.Upload(b.Name, m)
		if err != nil {
			errs = append(errs, fmt.Errorf("upload band %q: %w", b.Name, err))
			continue
		}
		if old, ok := e.slots[b.Name]; ok {
			errs = append(errs, release(b.Name, old.res))
		}
		e.slots[b.Name] = &slot{mesh: m, res: res}
	}

	for _, name := range e.Bands() {
		if !present[name] {
			errs = append(errs, release(name, e.slots[name].res))
			delete(e.slots, name)
		}
	}
	return errors.Join(errs...)
}

func (e *Editor) releaseAll() error {
	var errs []error
	for _, name := range e.Bands() {
		errs = append(errs, release(name, e.slots[name].res))
		delete(e.slots, name)
	}
	return errors.Join(errs...)
}

func release(band string, r Resource) error {
	err := r.Release()
	if err != nil {
		contour.Logger().Warn("releasing band resource failed",
			"band", band,
			"error", err)
		return fmt.Errorf("release band %q: %w", band, err)
	}
	return nil
}
