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

package editor

import (
	"fmt"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/contour"
)

// Drag is an active drag of one vertex.  It only exists between
// BeginDrag and End.
type Drag struct {
	e     *Editor
	index int
	done  bool
}

// BeginDrag starts dragging vertex i.  Only one drag can be active at a
// time.
func (e *Editor) BeginDrag(i int) (*Drag, error) {
	if e.closed {
		return nil, ErrClosed
	}
	if e.drag != nil {
		return nil, ErrDragActive
	}
	if i < 0 || i >= e.c.Len() {
		return nil, fmt.Errorf("drag point %d: %w", i, contour.ErrIndex)
	}
	e.drag = &Drag{e: e, index: i}
	contour.Logger().Debug("drag started", "point", i)
	return e.drag, nil
}

// Dragging reports whether a drag is in progress.
func (e *Editor) Dragging() bool {
	return e.drag != nil
}

// Index returns the index of the dragged vertex.  The index changes if a
// vertex is inserted before it during the drag.
func (d *Drag) Index() int {
	return d.index
}

// Move moves the dragged vertex to p.
func (d *Drag) Move(p vec.Vec2) error {
	if d.done {
		return ErrDragEnded
	}
	return d.e.MovePoint(d.index, p)
}

// End finishes the drag.  Further moves fail with ErrDragEnded.
func (d *Drag) End() {
	if d.done {
		return
	}
	d.done = true
	if d.e.drag == d {
		d.e.drag = nil
	}
	contour.Logger().Debug("drag ended", "point", d.index)
}

// Event is an input event from the user interface.
type Event interface {
	isEvent()
}

// DragStart is sent when the pointer is pressed on a vertex.
type DragStart struct {
	Index int
}

// DragMove is sent while the pointer moves.  It is ignored unless a drag
// is in progress.
type DragMove struct {
	Pos vec.Vec2
}

// DragEnd is sent when the pointer is released.
type DragEnd struct{}

// EdgeClick is sent when the toggle control of an edge is clicked.
type EdgeClick struct {
	Edge int
}

// AddPointClick is sent when the add-point control of an edge is clicked.
// Pos is the location of the new vertex.
type AddPointClick struct {
	Edge int
	Pos  vec.Vec2
}

func (DragStart) isEvent()     {}
func (DragMove) isEvent()      {}
func (DragEnd) isEvent()       {}
func (EdgeClick) isEvent()     {}
func (AddPointClick) isEvent() {}

// Handle applies a user interface event.
func (e *Editor) Handle(ev Event) error {
	if e.closed {
		return ErrClosed
	}
	switch ev := ev.(type) {
	case DragStart:
		_, err := e.BeginDrag(ev.Index)
		return err
	case DragMove:
		if e.drag == nil {
			return nil
		}
		return e.drag.Move(ev.Pos)
	case DragEnd:
		if e.drag != nil {
			e.drag.End()
		}
		return nil
	case EdgeClick:
		return e.ToggleEdge(ev.Edge)
	case AddPointClick:
		return e.InsertPoint(ev.Edge, ev.Pos)
	default:
		return fmt.Errorf("editor: unsupported event %T", ev)
	}
}
