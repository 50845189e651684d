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

// Package ocr defines the contract of the text-extraction collaborator and
// the normalization policy applied to its output.
//
// The engine treats extraction as a pure, idempotent, possibly slow
// function.  Extraction is best-effort pre-fill: a failed or rejected
// extraction degrades to "no text" and is never an engine fault.
package ocr

import (
	"context"

	"golang.org/x/text/language"
	"seehuhn.de/go/geom/rect"
)

// Region describes the area of a drawing page to read.
type Region struct {
	// BBox is the padded bounding box of the highlight, in page space.
	BBox rect.Rect

	// Page is the zero-based page index.
	Page int

	// Rotation is the page rotation in degrees, as an orientation hint.
	// Adapters may additionally try other orientations on their own.
	Rotation int

	// Lang is the expected language of the label text.
	Lang language.Tag
}

// Result holds the outcome of one extraction call.
type Result struct {
	// Text is the raw extracted text.  Callers apply [Normalize] before
	// using it.
	Text string

	// Confidence is the adapter's confidence in Text, from 0 to 100.
	Confidence float64
}

// Extractor converts a region of a rendered drawing page into text.
//
// Implementations own retries and orientation search; the caller owns the
// timeout via ctx.  Extract must be safe to call repeatedly with the same
// region.
type Extractor interface {
	Extract(ctx context.Context, region Region) (Result, error)
}
