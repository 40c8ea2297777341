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
	"errors"
	"fmt"
	"slices"

	"seehuhn.de/go/geom/vec"
)

var (
	// ErrIndex is returned when a vertex or edge index is out of range.
	ErrIndex = errors.New("contour: index out of range")

	// ErrLength is returned when the vertex and edge flag slices
	// passed to New have different lengths.
	ErrLength = errors.New("contour: points and active flags differ in length")
)

// Contour is a closed polygon together with one on/off flag per edge.
//
// Edge i runs from Points[i] to Points[(i+1) % len(Points)], and Active[i]
// always refers to edge i.  The methods keep len(Active) == len(Points).
// Offset bands are only defined for contours with at least three vertices;
// it is up to the caller to maintain this.
type Contour struct {
	Points []vec.Vec2
	Active []bool
}

// New returns a contour with copies of the given points and flags.
// If active is nil, all edges are active.
func New(points []vec.Vec2, active []bool) (*Contour, error) {
	if active == nil {
		active = make([]bool, len(points))
		for i := range active {
			active[i] = true
		}
	} else {
		if len(active) != len(points) {
			return nil, fmt.Errorf("%w: %d points, %d flags",
				ErrLength, len(points), len(active))
		}
		active = slices.Clone(active)
	}
	return &Contour{
		Points: slices.Clone(points),
		Active: active,
	}, nil
}

// Len returns the number of vertices, which equals the number of edges.
func (c *Contour) Len() int {
	return len(c.Points)
}

// Clone returns a deep copy of the contour.
func (c *Contour) Clone() *Contour {
	return &Contour{
		Points: slices.Clone(c.Points),
		Active: slices.Clone(c.Active),
	}
}

// Edge returns the endpoints of edge i.
func (c *Contour) Edge(i int) (a, b vec.Vec2) {
	n := len(c.Points)
	return c.Points[i], c.Points[(i+1)%n]
}

// prev returns the index of the edge ending at vertex k.
func (c *Contour) prev(k int) int {
	n := len(c.Points)
	return (k - 1 + n) % n
}

// MovePoint replaces vertex i by p.  The resulting polygon is not checked
// for self-intersections.
func (c *Contour) MovePoint(i int, p vec.Vec2) error {
	if i < 0 || i >= len(c.Points) {
		return fmt.Errorf("move point %d: %w", i, ErrIndex)
	}
	c.Points[i] = p
	return nil
}

// InsertPoint splits edge i by inserting p after Points[i].
// Both halves of the split edge keep the active state of edge i.
func (c *Contour) InsertPoint(edge int, p vec.Vec2) error {
	if edge < 0 || edge >= len(c.Points) {
		return fmt.Errorf("insert point on edge %d: %w", edge, ErrIndex)
	}
	c.Points = slices.Insert(c.Points, edge+1, p)
	c.Active = slices.Insert(c.Active, edge+1, c.Active[edge])
	return nil
}

// ToggleEdge flips the active flag of edge i.
func (c *Contour) ToggleEdge(edge int) error {
	if edge < 0 || edge >= len(c.Active) {
		return fmt.Errorf("toggle edge %d: %w", edge, ErrIndex)
	}
	c.Active[edge] = !c.Active[edge]
	return nil
}

// Centroid returns the mean of all vertices.
func (c *Contour) Centroid() vec.Vec2 {
	return centroid(c.Points)
}

func centroid(pts []vec.Vec2) vec.Vec2 {
	var sum vec.Vec2
	for _, p := range pts {
		sum = sum.Add(p)
	}
	return sum.Mul(1 / float64(len(pts)))
}

// signedArea returns twice the signed area of the polygon.  The result is
// positive for counter-clockwise vertex order.
func signedArea(pts []vec.Vec2) float64 {
	var a float64
	n := len(pts)
	for i, p := range pts {
		q := pts[(i+1)%n]
		a += p.X*q.Y - q.X*p.Y
	}
	return a
}
