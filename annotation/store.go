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
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/inspect"
	"seehuhn.de/go/inspect/coord"
	"seehuhn.de/go/inspect/ocr"
)

// Tool selects which annotation variant a gesture produces.
type Tool int

const (
	// ToolHighlighter draws straightened highlighter strokes.
	ToolHighlighter Tool = iota + 1

	// ToolPen draws freehand strokes.
	ToolPen

	// ToolNote places a text note.
	ToolNote
)

// defaultTimeout bounds the synchronous text-extraction call at commit.
const defaultTimeout = 3 * time.Second

// StoreOptions configures a [Store].
type StoreOptions struct {
	// Author is recorded on every committed annotation.
	Author string

	// Transform is the current page's view transform.
	Transform *coord.Transform

	// Page is the zero-based index of the current page.
	Page int

	// Rotation is the current page rotation in degrees.  It is passed to
	// the extraction adapter as an orientation hint; stored geometry is
	// rotation-invariant.
	Rotation int

	// Extractor, if non-nil, is called when an orange highlight is
	// committed.  Extraction failures never fail the commit.
	Extractor ocr.Extractor

	// Timeout bounds a single extraction call.  Zero means a default of
	// three seconds.
	Timeout time.Duration

	// Lang is the expected language of drawing labels.
	Lang language.Tag

	// Logger receives debug events.  Nil disables logging.
	Logger *zerolog.Logger
}

// Store is the ordered, per-page collection of committed annotations for
// one document, and the owner of the gesture that creates new ones.
//
// A Store must only be used from the single interaction goroutine; it is
// not safe for concurrent use.
type Store struct {
	author    string
	transform *coord.Transform
	page      int
	rotation  int
	extractor ocr.Extractor
	timeout   time.Duration
	lang      language.Tag
	log       zerolog.Logger

	now   func() time.Time
	newID func() string

	color Color // active highlighter pen
	anns  map[int][]Annotation
	g     *gesture
}

// gesture is an uncommitted stroke.  It lives in view space until commit.
type gesture struct {
	tool   Tool
	page   int
	color  Color
	points []vec.Vec2
	text   string
}

// NewStore creates an empty annotation store.
func NewStore(opt *StoreOptions) *Store {
	if opt == nil {
		opt = &StoreOptions{}
	}
	timeout := opt.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	log := zerolog.Nop()
	if opt.Logger != nil {
		log = *opt.Logger
	}
	return &Store{
		author:    opt.Author,
		transform: opt.Transform,
		page:      opt.Page,
		rotation:  opt.Rotation,
		extractor: opt.Extractor,
		timeout:   timeout,
		lang:      opt.Lang,
		log:       log,
		now:       time.Now,
		newID:     uuid.NewString,
		color:     Orange,
		anns:      make(map[int][]Annotation),
	}
}

// SetView updates the store after a zoom, scroll, rotation or page change.
// The view cannot change while a gesture is in progress.
func (s *Store) SetView(t *coord.Transform, page, rotation int) error {
	if s.g != nil {
		return &inspect.ValidationError{Op: "annotation", Reason: "gesture in progress"}
	}
	s.transform = t
	s.page = page
	s.rotation = rotation
	return nil
}

// SetColor selects the active highlighter pen.
func (s *Store) SetColor(c Color) error {
	if s.g != nil {
		return &inspect.ValidationError{Op: "annotation", Reason: "gesture in progress"}
	}
	s.color = c
	return nil
}

// Begin starts a new gesture at the given view-space point.
func (s *Store) Begin(tool Tool, viewPt vec.Vec2) error {
	if s.g != nil {
		return &inspect.ValidationError{Op: "annotation", Reason: "gesture already in progress"}
	}
	if s.transform == nil {
		return &inspect.ValidationError{Op: "annotation", Reason: "no page loaded"}
	}
	switch tool {
	case ToolHighlighter, ToolPen, ToolNote:
		// ok
	default:
		return &inspect.ValidationError{Op: "annotation", Reason: "unknown tool"}
	}
	s.g = &gesture{
		tool:   tool,
		page:   s.page,
		color:  s.color,
		points: []vec.Vec2{viewPt},
	}
	return nil
}

// Extend adds a view-space point to the gesture in progress.
func (s *Store) Extend(viewPt vec.Vec2) error {
	if s.g == nil {
		return &inspect.ValidationError{Op: "annotation", Reason: "no gesture in progress"}
	}
	s.g.points = append(s.g.points, viewPt)
	return nil
}

// SetText supplies the text for a note gesture before commit.
func (s *Store) SetText(text string) error {
	if s.g == nil {
		return &inspect.ValidationError{Op: "annotation", Reason: "no gesture in progress"}
	}
	if s.g.tool != ToolNote {
		return &inspect.ValidationError{Op: "annotation", Reason: "gesture is not a note"}
	}
	s.g.text = text
	return nil
}

// Cancel discards the gesture in progress, with no change to the store.
// Cancelling with no gesture in progress is a no-op.
func (s *Store) Cancel() {
	s.g = nil
}

// Commit converts the gesture in progress into a committed annotation.
//
// Highlighter strokes are straightened to their endpoints and converted to
// page space; an orange highlight is additionally sent to the extraction
// adapter, bounded by the store's timeout.  Extraction failure leaves the
// highlight committed with no text.
//
// The gesture is consumed even when Commit returns an error: a stroke that
// cannot form a valid annotation is discarded like a cancelled one.
func (s *Store) Commit(ctx context.Context) (Annotation, error) {
	g := s.g
	if g == nil {
		return nil, &inspect.ValidationError{Op: "annotation", Reason: "no gesture in progress"}
	}
	s.g = nil

	switch g.tool {
	case ToolHighlighter:
		if len(g.points) < 2 {
			return nil, &inspect.ValidationError{Op: "annotation", Reason: "stroke too short"}
		}
		h := &Highlight{
			Common: s.common(g),
			Points: s.transform.PathToPage(straighten(g.points)),
			Color:  g.color,
		}
		h.RecomputeBBox()
		if h.Color == Orange {
			s.extractText(ctx, h)
		}
		s.append(h)
		return h, nil

	case ToolPen:
		if len(g.points) < 2 {
			return nil, &inspect.ValidationError{Op: "annotation", Reason: "stroke too short"}
		}
		p := &Pen{
			Common: s.common(g),
			Points: s.transform.PathToPage(g.points),
		}
		s.append(p)
		return p, nil

	case ToolNote:
		if g.text == "" {
			return nil, &inspect.ValidationError{Op: "annotation", Reason: "empty note text"}
		}
		n := &Note{
			Common: s.common(g),
			Pos:    s.transform.ToPage(g.points[0]),
			Text:   g.text,
		}
		s.append(n)
		return n, nil
	}
	panic("unreachable")
}

// straighten reduces a freehand gesture path to a straight line between its
// endpoints.  This is deterministic, and the bounding box of the result is
// contained in the bounding box of the original path.
func straighten(pts []vec.Vec2) []vec.Vec2 {
	return []vec.Vec2{pts[0], pts[len(pts)-1]}
}

func (s *Store) common(g *gesture) Common {
	return Common{
		ID:        s.newID(),
		Page:      g.page,
		Author:    s.author,
		CreatedAt: s.now(),
	}
}

func (s *Store) append(a Annotation) {
	page := a.GetCommon().Page
	s.anns[page] = append(s.anns[page], a)
}

// extractText asks the adapter for the label text under the highlight.
// All failure modes degrade to "no text".
func (s *Store) extractText(ctx context.Context, h *Highlight) {
	if s.extractor == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	res, err := s.extractor.Extract(ctx, ocr.Region{
		BBox:     h.PaddedBBox(),
		Page:     h.Page,
		Rotation: s.rotation,
		Lang:     s.lang,
	})
	if err != nil {
		s.log.Debug().Err(err).Int("page", h.Page).Msg("text extraction failed")
		return
	}
	h.Text = ocr.Normalize(res.Text)
	if h.Text == "" && res.Text != "" {
		s.log.Debug().Str("raw", res.Text).Msg("extracted text rejected")
	}
}

// Page returns the committed annotations of one page, in commit order.
// The returned slice is owned by the store.
func (s *Store) Page(page int) []Annotation {
	return s.anns[page]
}

// All returns every committed annotation, ordered by page and then by
// commit order within the page.
func (s *Store) All() []Annotation {
	pages := make([]int, 0, len(s.anns))
	for page := range s.anns {
		pages = append(pages, page)
	}
	sort.Ints(pages)

	var res []Annotation
	for _, page := range pages {
		res = append(res, s.anns[page]...)
	}
	return res
}

// FindBySerial returns the highlight linked to the given punch serial
// number, or nil.
func (s *Store) FindBySerial(serial int) *Highlight {
	if serial == 0 {
		return nil
	}
	for _, anns := range s.anns {
		for _, a := range anns {
			if h, ok := a.(*Highlight); ok && h.Serial == serial {
				return h
			}
		}
	}
	return nil
}

// Restore inserts annotations loaded from a session document.  Highlight
// bounding boxes are rederived rather than trusted.
func (s *Store) Restore(anns ...Annotation) {
	for _, a := range anns {
		if h, ok := a.(*Highlight); ok {
			h.RecomputeBBox()
		}
		s.append(a)
	}
}
