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

// Package annotation holds the in-memory model of page annotations.
//
// Three annotation variants exist: [Highlight] (a straightened highlighter
// stroke), [Pen] (a freehand mark) and [Note] (a positioned text note).
// All variants implement the [Annotation] interface and share the fields in
// [Common].  Geometry is stored in page space; view-space conversion happens
// only at the gesture and render boundaries, via a [coord.Transform].
//
// A [Store] collects the committed annotations of one document and owns the
// gesture lifecycle that creates new ones.
package annotation

import (
	"time"
)

// Type identifies the concrete variant of an [Annotation].
type Type int

const (
	// TypeHighlight is a straightened highlighter stroke.
	TypeHighlight Type = iota + 1

	// TypePen is a freehand pen stroke.
	TypePen

	// TypeNote is a text note anchored at a single point.
	TypeNote
)

func (t Type) String() string {
	switch t {
	case TypeHighlight:
		return "highlight"
	case TypePen:
		return "pen"
	case TypeNote:
		return "note"
	default:
		return "unknown"
	}
}

// Annotation is a mark on a drawing page.
type Annotation interface {
	// AnnotationType returns the variant of the annotation.
	AnnotationType() Type

	// GetCommon returns the fields shared by all annotation variants.
	GetCommon() *Common
}

var (
	_ Annotation = (*Highlight)(nil)
	_ Annotation = (*Pen)(nil)
	_ Annotation = (*Note)(nil)
)

// Common holds the attributes shared by all annotation variants.
type Common struct {
	// ID is a unique identifier, assigned at commit time.
	ID string

	// Page is the zero-based page index the annotation belongs to.
	Page int

	// Author is the user who committed the annotation.
	Author string

	// CreatedAt is the commit time.
	CreatedAt time.Time
}

// GetCommon returns the common annotation fields.
// This implements part of the [Annotation] interface.
func (c *Common) GetCommon() *Common {
	return c
}
