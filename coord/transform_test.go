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

package coord

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

var testPoints = []vec.Vec2{
	{X: 0, Y: 0},
	{X: 100, Y: 50},
	{X: 12.5, Y: 843.2},
	{X: 595, Y: 842},
	{X: -3, Y: 7},
}

// TestRoundTrip checks that ToPage inverts ToView over the full grid of
// zoom factors, rotations and scroll offsets.
func TestRoundTrip(t *testing.T) {
	zooms := []float64{0.5, 1.0, 2.0, 4.0}
	rotations := []int{0, 90, 180, 270}
	scrolls := []vec.Vec2{
		{X: 0, Y: 0},
		{X: 120, Y: -40},
		{X: -999.5, Y: 1234.25},
	}

	approx := cmpopts.EquateApprox(0, 1e-6)
	for _, zoom := range zooms {
		for _, rotation := range rotations {
			for _, scroll := range scrolls {
				name := fmt.Sprintf("z%g-r%d-s%g,%g", zoom, rotation, scroll.X, scroll.Y)
				t.Run(name, func(t *testing.T) {
					tr, err := New(zoom, scroll, rotation, 595, 842)
					if err != nil {
						t.Fatal(err)
					}
					for _, p := range testPoints {
						q := tr.ToPage(tr.ToView(p))
						if d := cmp.Diff(p, q, approx); d != "" {
							t.Errorf("point %v: %s", p, d)
						}
					}
				})
			}
		}
	}
}

// TestRotationAxisSwap checks that the 90 degree rotation maps the page
// origin onto the rotated page the way the render pass expects.
func TestRotationAxisSwap(t *testing.T) {
	tr, err := New(0.5, vec.Vec2{}, 90, 595, 842)
	if err != nil {
		t.Fatal(err)
	}

	// with zoom 0.5 the display scale is exactly 1
	got := tr.ToView(vec.Vec2{X: 0, Y: 0})
	want := vec.Vec2{X: 0, Y: 595}
	if d := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); d != "" {
		t.Error(d)
	}

	got = tr.ToView(vec.Vec2{X: 595, Y: 842})
	want = vec.Vec2{X: 842, Y: 0}
	if d := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); d != "" {
		t.Error(d)
	}
}

func TestRectRoundTrip(t *testing.T) {
	r := rect.Rect{LLx: 10, LLy: 20, URx: 110, URy: 45}
	for _, rotation := range []int{0, 90, 180, 270} {
		t.Run(fmt.Sprintf("r%d", rotation), func(t *testing.T) {
			tr, err := New(2, vec.Vec2{X: 15, Y: -80}, rotation, 595, 842)
			if err != nil {
				t.Fatal(err)
			}
			got := tr.RectToPage(tr.RectToView(r))
			if d := cmp.Diff(r, got, cmpopts.EquateApprox(0, 1e-6)); d != "" {
				t.Error(d)
			}
		})
	}
}

func TestInvalidArgs(t *testing.T) {
	if _, err := New(0, vec.Vec2{}, 0, 595, 842); err == nil {
		t.Error("zoom 0 accepted")
	}
	if _, err := New(-1, vec.Vec2{}, 0, 595, 842); err == nil {
		t.Error("negative zoom accepted")
	}
	if _, err := New(1, vec.Vec2{}, 45, 595, 842); err == nil {
		t.Error("rotation 45 accepted")
	}
}
