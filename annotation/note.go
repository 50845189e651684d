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

import "seehuhn.de/go/geom/vec"

// Note represents a short text note anchored at a single point.
type Note struct {
	Common

	// Pos is the anchor point in page space.
	Pos vec.Vec2

	// Text is the note text.
	Text string
}

// AnnotationType returns [TypeNote].
// This implements part of the [Annotation] interface.
func (n *Note) AnnotationType() Type {
	return TypeNote
}
