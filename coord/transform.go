// seehuhn.de/go/inspect - annotation, punch and handover tracking for drawing inspection
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

// Package coord maps between page space and view space.
//
// Page space is the document-native coordinate system of a drawing page.
// All persisted annotation geometry is stored in page space and is invariant
// under zoom, scrolling and page rotation.  View space is what the pointer
// and the render pass see: page space rotated by the page rotation, scaled
// by the display scale, and shifted by the scroll offset.
package coord

import (
	"fmt"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// renderScale is the fixed rasterization scale of the page image.  The
// display scale of a view is renderScale times the user zoom factor.
const renderScale = 2.0

// Transform converts between page space and view space for one page.
//
// Transform is a pure value: methods do not mutate it, and the same
// Transform can be asked for both directions of the mapping.  ToPage is the
// exact inverse of ToView up to floating point rounding.
type Transform struct {
	toView matrix.Matrix
	toPage matrix.Matrix
}

// New creates a Transform for a page of the given size.
//
// zoom must be positive, and rotation must be one of 0, 90, 180 or 270
// degrees.  scroll is the view-space offset of the visible window.
func New(zoom float64, scroll vec.Vec2, rotation int, pageWidth, pageHeight float64) (*Transform, error) {
	if !(zoom > 0) {
		return nil, fmt.Errorf("invalid zoom factor %g", zoom)
	}

	// rot maps page space to the rotated page, so that the rotated page
	// again has its origin in the top left corner.  At 90 and 270 degrees
	// the roles of width and height swap.
	var rot matrix.Matrix
	w, h := pageWidth, pageHeight
	switch rotation {
	case 0:
		rot = matrix.Identity
	case 90:
		// (x, y) -> (y, w-x)
		rot = matrix.Matrix{0, -1, 1, 0, 0, w}
	case 180:
		// (x, y) -> (w-x, h-y)
		rot = matrix.Matrix{-1, 0, 0, -1, w, h}
	case 270:
		// (x, y) -> (h-y, x)
		rot = matrix.Matrix{0, 1, -1, 0, h, 0}
	default:
		return nil, fmt.Errorf("invalid page rotation %d", rotation)
	}

	s := renderScale * zoom
	scale := matrix.Matrix{s, 0, 0, s, 0, 0}
	shift := matrix.Matrix{1, 0, 0, 1, -scroll.X, -scroll.Y}

	toView := rot.Mul(scale).Mul(shift)
	return &Transform{
		toView: toView,
		toPage: toView.Inv(),
	}, nil
}

// ToView converts a page-space point to view space.
func (t *Transform) ToView(p vec.Vec2) vec.Vec2 {
	x, y := t.toView.Apply(p.X, p.Y)
	return vec.Vec2{X: x, Y: y}
}

// ToPage converts a view-space point to page space.
func (t *Transform) ToPage(p vec.Vec2) vec.Vec2 {
	x, y := t.toPage.Apply(p.X, p.Y)
	return vec.Vec2{X: x, Y: y}
}

// PathToPage converts a view-space stroke path to page space.
func (t *Transform) PathToPage(pts []vec.Vec2) []vec.Vec2 {
	res := make([]vec.Vec2, len(pts))
	for i, p := range pts {
		res[i] = t.ToPage(p)
	}
	return res
}

// PathToView converts a page-space stroke path to view space.
func (t *Transform) PathToView(pts []vec.Vec2) []vec.Vec2 {
	res := make([]vec.Vec2, len(pts))
	for i, p := range pts {
		res[i] = t.ToView(p)
	}
	return res
}

// RectToView converts a page-space rectangle to view space.  The result is
// again axis-aligned; under 90 and 270 degree rotation the corners swap
// roles accordingly.
func (t *Transform) RectToView(r rect.Rect) rect.Rect {
	return mapRect(t.toView, r)
}

// RectToPage converts a view-space rectangle to page space.
func (t *Transform) RectToPage(r rect.Rect) rect.Rect {
	return mapRect(t.toPage, r)
}

func mapRect(m matrix.Matrix, r rect.Rect) rect.Rect {
	x1, y1 := m.Apply(r.LLx, r.LLy)
	x2, y2 := m.Apply(r.URx, r.URy)
	return rect.Rect{
		LLx: min(x1, x2),
		LLy: min(y1, y2),
		URx: max(x1, x2),
		URy: max(y1, y2),
	}
}
