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
	"errors"

	"seehuhn.de/go/contour"
	"seehuhn.de/go/contour/editor"
)

var errReleased = errors.New("mesh already released")

// canvas keeps the current mesh of every band in memory, in place of GPU
// buffers.
type canvas struct {
	live map[string]*canvasMesh
}

type canvasMesh struct {
	cv   *canvas
	band string
	m    *contour.Mesh
	gone bool
}

func newCanvas() *canvas {
	return &canvas{live: make(map[string]*canvasMesh)}
}

func (cv *canvas) Upload(band string, m *contour.Mesh) (editor.Resource, error) {
	r := &canvasMesh{cv: cv, band: band, m: m}
	cv.live[band] = r
	return r, nil
}

func (r *canvasMesh) Release() error {
	if r.gone {
		return errReleased
	}
	r.gone = true
	if r.cv.live[r.band] == r {
		delete(r.cv.live, r.band)
	}
	return nil
}

// mesh returns the live mesh of a band, or nil.
func (cv *canvas) mesh(band string) *contour.Mesh {
	if r, ok := cv.live[band]; ok {
		return r.m
	}
	return nil
}
