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

package session

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/inspect"
	"seehuhn.de/go/inspect/annotation"
	"seehuhn.de/go/inspect/punch"
)

func testSession() *Session {
	t0 := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)

	hl := &annotation.Highlight{
		Common: annotation.Common{
			ID:        "a-1",
			Page:      3,
			Author:    "amrita",
			CreatedAt: t0,
		},
		Points: []vec.Vec2{{X: 10, Y: 20}, {X: 70, Y: 20.5}},
		Color:  annotation.Orange,
		Serial: 18,
		Text:   "L1",
	}
	hl.RecomputeBBox()

	pen := &annotation.Pen{
		Common: annotation.Common{
			ID:        "a-2",
			Page:      3,
			Author:    "amrita",
			CreatedAt: t0.Add(time.Minute),
		},
		Points: []vec.Vec2{{X: 1, Y: 2}, {X: 3, Y: 4}, {X: 5, Y: 2}},
	}

	note := &annotation.Note{
		Common: annotation.Common{
			ID:        "a-3",
			Page:      5,
			Author:    "amrita",
			CreatedAt: t0.Add(2 * time.Minute),
		},
		Pos:  vec.Vec2{X: 100, Y: 200},
		Text: "check torque",
	}

	return &Session{
		ProjectName:   "P-9",
		SalesOrderNo:  "SO-4711",
		CabinetID:     "CAB-017",
		Page:          3,
		Zoom:          1.5,
		HighestSerial: 18,
		Refs:          []string{"12"},
		Annotations:   []annotation.Annotation{hl, pen, note},
		Punches: []*punch.Punch{
			{
				Serial:      18,
				Ref:         "12",
				Category:    "Wire Connection",
				Description: "Wire L1 not properly connected",
				Logged:      inspect.Stamp{By: "amrita", At: t0},
			},
		},
	}
}

func TestRoundTrip(t *testing.T) {
	s := testSession()

	buf := &bytes.Buffer{}
	err := Save(buf, s)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Load(buf)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(s, got); d != "" {
		t.Errorf("round trip changed the session (-want +got):\n%s", d)
	}

	hl := got.HighlightFor(18)
	if hl == nil {
		t.Fatal("linked highlight lost")
	}
	if got.Punches[0].State() != punch.Logged {
		t.Errorf("got punch state %v, want %v", got.Punches[0].State(), punch.Logged)
	}
}

func TestRejectNewerVersion(t *testing.T) {
	doc := `{"version": 3, "annotations": []}`
	_, err := Load(strings.NewReader(doc))
	var vErr *inspect.VersionError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected VersionError, got %v", err)
	}
	if vErr.Version != 3 || vErr.Supported != Version {
		t.Errorf("got %d/%d, want 3/%d", vErr.Version, vErr.Supported, Version)
	}
}

// TestLoadOldDocument checks that fields added in later schema revisions
// are defaulted when loading an older document.
func TestLoadOldDocument(t *testing.T) {
	doc := `{
		"version": 1,
		"annotations": [
			{
				"type": "highlight",
				"id": "a-1",
				"page": 0,
				"points": [[10, 20], [70, 20]],
				"color": "orange",
				"srNo": 4
			}
		],
		"punches": [
			{"srNo": 4, "refNo": "12", "category": "Wiring",
			 "description": "x", "logged": {"by": "amrita"}}
		]
	}`
	s, err := Load(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	if s.Zoom != 1 {
		t.Errorf("got zoom %g, want 1", s.Zoom)
	}
	if s.HighestSerial != 4 {
		t.Errorf("got highest serial %d, want 4", s.HighestSerial)
	}

	hl, ok := s.Annotations[0].(*annotation.Highlight)
	if !ok {
		t.Fatalf("got %T, want *annotation.Highlight", s.Annotations[0])
	}
	if hl.BBox.LLx != 10 || hl.BBox.URx != 70 {
		t.Errorf("bounding box not recomputed: %v", hl.BBox)
	}
}

func TestBBoxNotTrusted(t *testing.T) {
	s := testSession()
	buf := &bytes.Buffer{}
	err := Save(buf, s)
	if err != nil {
		t.Fatal(err)
	}

	got, err := Load(buf)
	if err != nil {
		t.Fatal(err)
	}
	hl := got.HighlightFor(18)
	want := s.HighlightFor(18).BBox
	if hl.BBox != want {
		t.Errorf("got bbox %v, want %v", hl.BBox, want)
	}
}

func TestRejectMalformed(t *testing.T) {
	cases := []string{
		`{"version": 2, "annotations": [{"type": "circle"}]}`,
		`{"version": 2, "annotations": [{"type": "highlight", "color": "red"}]}`,
		`not json`,
	}
	for i, doc := range cases {
		_, err := Load(strings.NewReader(doc))
		var pErr *inspect.PersistenceError
		if !errors.As(err, &pErr) {
			t.Errorf("case %d: expected PersistenceError, got %v", i, err)
		}
	}
}

func TestSaveFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "CAB-017.session")

	s := testSession()
	err := SaveFile(path, s)
	if err != nil {
		t.Fatal(err)
	}
	got, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(s, got); d != "" {
		t.Errorf("file round trip changed the session (-want +got):\n%s", d)
	}

	// each save is a full snapshot which replaces the previous one
	s.Page = 7
	err = SaveFile(path, s)
	if err != nil {
		t.Fatal(err)
	}
	got, err = LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.Page != 7 {
		t.Errorf("got page %d, want 7", got.Page)
	}

	// no temporary files left behind
	matches, err := filepath.Glob(filepath.Join(dir, ".session-*"))
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 0 {
		t.Errorf("leftover temporary files: %v", matches)
	}
}
