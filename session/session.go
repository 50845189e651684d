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

// Package session reads and writes session documents.
//
// A session document is the portable snapshot of one cabinet's inspection
// state: all committed annotations, the embedded punch rows, and enough
// metadata to resume work without re-reading the external ledger.  Each
// save writes a complete snapshot which supersedes the previous one; the
// document is never a delta log.
//
// The format is versioned JSON.  Loading rejects documents written by a
// newer schema revision and defaults fields that older revisions did not
// have.
package session

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/inspect"
	"seehuhn.de/go/inspect/annotation"
	"seehuhn.de/go/inspect/punch"
)

// Version is the current session document schema version.
//
// Version 1 documents had no punch rows embedded; version 2 added them
// together with the checklist refs touched during the session.
const Version = 2

// Session is the in-memory form of a session document.
type Session struct {
	// ProjectName and SalesOrderNo identify the project.
	ProjectName  string
	SalesOrderNo string

	// CabinetID identifies the work unit.
	CabinetID string

	// Page and Zoom restore the view the user last worked in.
	Page int
	Zoom float64

	// HighestSerial is the highest punch serial allocated so far.
	HighestSerial int

	// Refs lists the checklist reference numbers touched during the
	// session.
	Refs []string

	// Annotations holds all committed annotations, in commit order.
	Annotations []annotation.Annotation

	// Punches holds the ledger rows for all linked highlights, so that
	// the document alone reconstructs the ledger linkage.
	Punches []*punch.Punch

	// SavedAt is the time of the last save.  Set by [Save].
	SavedAt time.Time
}

// HighlightFor returns the highlight linked to the given punch serial, or
// nil if there is none.
func (s *Session) HighlightFor(serial int) *annotation.Highlight {
	for _, a := range s.Annotations {
		h, ok := a.(*annotation.Highlight)
		if ok && h.Serial == serial {
			return h
		}
	}
	return nil
}

type wireDoc struct {
	Version       int        `json:"version"`
	ProjectName   string     `json:"projectName,omitempty"`
	SalesOrderNo  string     `json:"salesOrderNo,omitempty"`
	CabinetID     string     `json:"cabinetId,omitempty"`
	Page          int        `json:"page"`
	Zoom          float64    `json:"zoom,omitempty"`
	HighestSerial int        `json:"highestSerial"`
	Refs          []string   `json:"refs,omitempty"`
	Annotations   []*wireAnn `json:"annotations"`

	Punches []*punch.Punch `json:"punches,omitempty"`
	SavedAt time.Time      `json:"savedAt,omitzero"`
}

// wireAnn is the on-disk form of one annotation.  Type discriminates the
// variant; the remaining fields are a union over all variants.
type wireAnn struct {
	Type      string    `json:"type"`
	ID        string    `json:"id"`
	Page      int       `json:"page"`
	Author    string    `json:"author,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitzero"`

	Points [][2]float64 `json:"points,omitempty"`

	// highlight only
	Color string `json:"color,omitempty"`
	SrNo  int    `json:"srNo,omitempty"`

	// highlight and note
	Text string `json:"text,omitempty"`
}

func toWire(a annotation.Annotation) (*wireAnn, error) {
	c := a.GetCommon()
	w := &wireAnn{
		Type:      a.AnnotationType().String(),
		ID:        c.ID,
		Page:      c.Page,
		Author:    c.Author,
		CreatedAt: c.CreatedAt,
	}
	switch a := a.(type) {
	case *annotation.Highlight:
		w.Points = toWirePoints(a.Points)
		w.Color = a.Color.String()
		w.SrNo = a.Serial
		w.Text = a.Text
	case *annotation.Pen:
		w.Points = toWirePoints(a.Points)
	case *annotation.Note:
		w.Points = [][2]float64{{a.Pos.X, a.Pos.Y}}
		w.Text = a.Text
	default:
		return nil, fmt.Errorf("unknown annotation type %T", a)
	}
	return w, nil
}

func fromWire(w *wireAnn) (annotation.Annotation, error) {
	c := annotation.Common{
		ID:        w.ID,
		Page:      w.Page,
		Author:    w.Author,
		CreatedAt: w.CreatedAt,
	}
	switch w.Type {
	case "highlight":
		col, ok := annotation.ParseColor(w.Color)
		if !ok {
			return nil, fmt.Errorf("unknown highlight color %q", w.Color)
		}
		h := &annotation.Highlight{
			Common: c,
			Points: fromWirePoints(w.Points),
			Color:  col,
			Serial: w.SrNo,
			Text:   w.Text,
		}
		// bounding boxes are derived data and not trusted from disk
		h.RecomputeBBox()
		return h, nil
	case "pen":
		return &annotation.Pen{
			Common: c,
			Points: fromWirePoints(w.Points),
		}, nil
	case "note":
		n := &annotation.Note{
			Common: c,
			Text:   w.Text,
		}
		if len(w.Points) > 0 {
			n.Pos = vec.Vec2{X: w.Points[0][0], Y: w.Points[0][1]}
		}
		return n, nil
	default:
		return nil, fmt.Errorf("unknown annotation type %q", w.Type)
	}
}

func toWirePoints(pts []vec.Vec2) [][2]float64 {
	res := make([][2]float64, len(pts))
	for i, p := range pts {
		res[i] = [2]float64{p.X, p.Y}
	}
	return res
}

func fromWirePoints(pts [][2]float64) []vec.Vec2 {
	res := make([]vec.Vec2, len(pts))
	for i, p := range pts {
		res[i] = vec.Vec2{X: p[0], Y: p[1]}
	}
	return res
}

// Save writes the session as a complete snapshot.  The session's SavedAt
// field is updated on success.
func Save(w io.Writer, s *Session) error {
	savedAt := time.Now()
	doc := &wireDoc{
		Version:       Version,
		ProjectName:   s.ProjectName,
		SalesOrderNo:  s.SalesOrderNo,
		CabinetID:     s.CabinetID,
		Page:          s.Page,
		Zoom:          s.Zoom,
		HighestSerial: s.HighestSerial,
		Refs:          s.Refs,
		Punches:       s.Punches,
		SavedAt:       savedAt,
	}
	doc.Annotations = make([]*wireAnn, 0, len(s.Annotations))
	for _, a := range s.Annotations {
		wa, err := toWire(a)
		if err != nil {
			return &inspect.PersistenceError{Op: "save session", Err: err}
		}
		doc.Annotations = append(doc.Annotations, wa)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	err := enc.Encode(doc)
	if err != nil {
		return &inspect.PersistenceError{Op: "save session", Err: err}
	}
	s.SavedAt = savedAt
	return nil
}

// Load reads a session document.
//
// Documents written by newer schema revisions are rejected with a
// [inspect.VersionError].  Fields which older revisions did not have are
// defaulted: the zoom defaults to 1, and the highest serial defaults to
// the largest serial found among the embedded punch rows.
func Load(r io.Reader) (*Session, error) {
	var doc wireDoc
	dec := json.NewDecoder(r)
	err := dec.Decode(&doc)
	if err != nil {
		return nil, &inspect.PersistenceError{Op: "load session", Err: err}
	}
	if doc.Version > Version {
		return nil, &inspect.VersionError{Version: doc.Version, Supported: Version}
	}

	s := &Session{
		ProjectName:   doc.ProjectName,
		SalesOrderNo:  doc.SalesOrderNo,
		CabinetID:     doc.CabinetID,
		Page:          doc.Page,
		Zoom:          doc.Zoom,
		HighestSerial: doc.HighestSerial,
		Refs:          doc.Refs,
		Punches:       doc.Punches,
		SavedAt:       doc.SavedAt,
	}
	if s.Zoom == 0 {
		s.Zoom = 1
	}
	s.Annotations = make([]annotation.Annotation, 0, len(doc.Annotations))
	for _, wa := range doc.Annotations {
		a, err := fromWire(wa)
		if err != nil {
			return nil, &inspect.PersistenceError{Op: "load session", Err: err}
		}
		s.Annotations = append(s.Annotations, a)
	}
	for _, p := range s.Punches {
		if p.Serial > s.HighestSerial {
			s.HighestSerial = p.Serial
		}
	}
	return s, nil
}
