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

package annotation

import (
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/inspect"
)

// Color describes the highlighter pen used for a [Highlight].
//
// The color of an orange highlight is a projection of the linked punch's
// state: it stays orange while the punch is open and turns green when the
// punch is closed.  Yellow highlights are informational and never carry a
// punch link.
type Color int

const (
	// Orange marks a defect with an open punch.
	Orange Color = iota + 1

	// Green marks a defect whose punch has been closed.
	Green

	// Yellow marks something worth seeing without logging a punch.
	Yellow
)

func (c Color) String() string {
	switch c {
	case Orange:
		return "orange"
	case Green:
		return "green"
	case Yellow:
		return "yellow"
	default:
		return "unknown"
	}
}

// ParseColor is the inverse of [Color.String].
func ParseColor(s string) (Color, bool) {
	switch s {
	case "orange":
		return Orange, true
	case "green":
		return Green, true
	case "yellow":
		return Yellow, true
	}
	return 0, false
}

// Padding applied to a highlight's bounding box before it is handed to the
// text-extraction adapter, in page units.  Vertical padding is larger
// because label text height matters more than width for legibility.
const (
	padX = 10.0
	padY = 20.0
)

// Highlight represents one straightened highlighter stroke.
type Highlight struct {
	Common

	// Points is the straightened stroke path in page space.  After commit
	// this is always the first and last point of the original gesture.
	Points []vec.Vec2

	// Color is the highlighter pen color.  Mutated only through [Repaint].
	Color Color

	// BBox is the axis-aligned bounding box of Points in page space.  It
	// is derived and recomputed whenever Points change, never stored stale.
	BBox rect.Rect

	// Serial is the serial number of the linked punch, or 0 while no punch
	// has been logged against this highlight.  Set exactly once.
	Serial int

	// Text is the label text extracted from the highlighted area, already
	// normalized.  Empty if extraction failed or was rejected.
	Text string
}

// AnnotationType returns [TypeHighlight].
// This implements part of the [Annotation] interface.
func (h *Highlight) AnnotationType() Type {
	return TypeHighlight
}

// RecomputeBBox rederives the bounding box from the stroke points.  Loaded
// sessions call this rather than trusting the persisted box.
func (h *Highlight) RecomputeBBox() {
	if len(h.Points) == 0 {
		h.BBox = rect.Rect{}
		return
	}
	b := rect.Rect{
		LLx: h.Points[0].X, LLy: h.Points[0].Y,
		URx: h.Points[0].X, URy: h.Points[0].Y,
	}
	for _, p := range h.Points[1:] {
		b.LLx = min(b.LLx, p.X)
		b.LLy = min(b.LLy, p.Y)
		b.URx = max(b.URx, p.X)
		b.URy = max(b.URy, p.Y)
	}
	h.BBox = b
}

// PaddedBBox returns the bounding box grown by the fixed extraction margin.
func (h *Highlight) PaddedBBox() rect.Rect {
	return rect.Rect{
		LLx: h.BBox.LLx - padX,
		LLy: h.BBox.LLy - padY,
		URx: h.BBox.URx + padX,
		URy: h.BBox.URy + padY,
	}
}

// LinkPunch records the serial number of the punch logged against this
// highlight.  The link can be set exactly once, and only on an orange
// highlight.
func (h *Highlight) LinkPunch(serial int) error {
	if h.Color != Orange {
		return &inspect.ValidationError{Op: "annotation", Reason: "only orange highlights carry punches"}
	}
	if h.Serial != 0 {
		return &inspect.ValidationError{Op: "annotation", Reason: "highlight already linked to a punch"}
	}
	if serial <= 0 {
		return &inspect.ValidationError{Op: "annotation", Reason: "invalid punch serial number"}
	}
	h.Serial = serial
	return nil
}

// Repaint turns a linked orange highlight green.  This is called by the
// punch lifecycle when the linked punch reaches the closed state, and from
// nowhere else.
func (h *Highlight) Repaint() error {
	if h.Serial == 0 || h.Color != Orange {
		return &inspect.ValidationError{Op: "annotation", Reason: "highlight has no open punch"}
	}
	h.Color = Green
	return nil
}
