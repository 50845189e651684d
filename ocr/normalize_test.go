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

package ocr

import "testing"

func TestClean(t *testing.T) {
	cases := []struct {
		in, out string
	}{
		{"  L1   ", "L1"},
		{"X|1", "XI1"},
		{"K1`A", "K1'A"},
		{"A~B", "A-B"},
		{"  A \t B\nC ", "A B C"},
		{"Q", ""},  // too short
		{"  ", ""}, // empty after cleaning
	}
	for _, c := range cases {
		if got := Clean(c.in); got != c.out {
			t.Errorf("Clean(%q) = %q, want %q", c.in, got, c.out)
		}
	}
}

func TestNormalize(t *testing.T) {
	cases := []struct {
		in, out string
	}{
		{"L1", "L1"},
		{" -X12 ", "-X12"},
		{"WIRE CONNECTION", "WIRE CONNECTION"},
		{"Relay K1", ""}, // lowercase means a misread
		{"l1", ""},
		{"1234", ""}, // no letters at all
		{"", ""},
	}
	for _, c := range cases {
		if got := Normalize(c.in); got != c.out {
			t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.out)
		}
	}
}
