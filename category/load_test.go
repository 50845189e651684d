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

package category

import (
	"strings"
	"testing"
)

const testTree = `
categories:
  - name: Wire Connection
    ref_number: "12"
    template: "Wire {tag} not properly connected"
    inputs:
      - name: tag
        label: "Wire tag"
  - name: Wiring
    wiring_types:
      - type: Multi-strand
        ref_number: "14"
        subcategories:
          - name: Lug missing
            ref_number: "14"
            template: "Lug missing on {tag}"
            inputs:
              - name: tag
                label: "Conductor tag"
      - type: Single-strand
        ref_number: "15"
        subcategories:
          - name: Insulation damaged
            ref_number: "15"
            template: "Insulation damaged on {tag} near {location}"
            inputs:
              - name: tag
                label: "Conductor tag"
              - name: location
                label: "Location"
    special_subcategories:
      - name: Routing
        ref_number: "16"
        template: "Wrong routing of {tag}"
        inputs:
          - name: tag
            label: "Conductor tag"
  - name: Labeling
    subcategories:
      - name: Label missing
        ref_number: "21"
        template: "Device label {tag} missing"
        inputs:
          - name: tag
            label: "Device tag"
`

func TestLoad(t *testing.T) {
	tree, err := Load(strings.NewReader(testTree))
	if err != nil {
		t.Fatal(err)
	}
	if len(tree.Categories) != 3 {
		t.Fatalf("got %d categories", len(tree.Categories))
	}
	if tree.Category("Wiring") == nil {
		t.Error("category Wiring not found")
	}
}

func TestResolveAndRender(t *testing.T) {
	tree, err := Load(strings.NewReader(testTree))
	if err != nil {
		t.Fatal(err)
	}

	// direct template, first slot pre-filled from extracted text
	tmpl, err := tree.Category("Wire Connection").Resolve("", "")
	if err != nil {
		t.Fatal(err)
	}
	if tmpl.Ref != "12" {
		t.Errorf("ref = %q", tmpl.Ref)
	}
	desc, err := tmpl.Render(tmpl.Prefill("L1"))
	if err != nil {
		t.Fatal(err)
	}
	if desc != "Wire L1 not properly connected" {
		t.Errorf("desc = %q", desc)
	}

	// nested wiring subcategory
	tmpl, err = tree.Category("Wiring").Resolve("Single-strand", "Insulation damaged")
	if err != nil {
		t.Fatal(err)
	}
	if tmpl.Name != "Single-strand - Insulation damaged" {
		t.Errorf("name = %q", tmpl.Name)
	}
	values := tmpl.Prefill("-X12:4")
	values["location"] = "terminal block"
	desc, err = tmpl.Render(values)
	if err != nil {
		t.Fatal(err)
	}
	if desc != "Insulation damaged on -X12:4 near terminal block" {
		t.Errorf("desc = %q", desc)
	}

	// special subcategory
	tmpl, err = tree.Category("Wiring").Resolve("", "Routing")
	if err != nil {
		t.Fatal(err)
	}
	if tmpl.Ref != "16" {
		t.Errorf("ref = %q", tmpl.Ref)
	}

	// missing slot value
	if _, err := tmpl.Render(nil); err == nil {
		t.Error("missing slot value accepted")
	}

	// unknown selection
	if _, err := tree.Category("Wiring").Resolve("Fibre", "Lug missing"); err == nil {
		t.Error("unknown wiring type accepted")
	}
}

// TestLoadRejectsMalformed checks that configuration errors surface at load
// time rather than at substitution time.
func TestLoadRejectsMalformed(t *testing.T) {
	cases := []struct {
		name string
		yml  string
	}{
		{"undeclared slot", `
categories:
  - name: A
    template: "bad {slot}"
`},
		{"leaf without template", `
categories:
  - name: A
    subcategories:
      - name: B
        ref_number: "1"
`},
		{"duplicate slots", `
categories:
  - name: A
    template: "{x} {x}"
    inputs:
      - name: x
        label: first
      - name: x
        label: second
`},
		{"two forms at once", `
categories:
  - name: A
    template: "direct"
    subcategories:
      - name: B
        template: "nested"
`},
		{"duplicate category", `
categories:
  - name: A
    template: "one"
  - name: A
    template: "two"
`},
		{"empty tree", `categories: []`},
		{"not yaml", `{{`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := Load(strings.NewReader(c.yml)); err == nil {
				t.Error("malformed tree accepted")
			}
		})
	}
}
