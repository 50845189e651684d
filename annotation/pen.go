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

// Pen represents a freehand pen stroke.  Unlike highlights, pen strokes
// keep their full point path.
type Pen struct {
	Common

	// Points is the stroke path in page space.
	Points []vec.Vec2
}

// AnnotationType returns [TypePen].
// This implements part of the [Annotation] interface.
func (p *Pen) AnnotationType() Type {
	return TypePen
}
