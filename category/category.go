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

// Package category loads the defect category tree.
//
// Categories classify punches and supply the description templates their
// ledger rows are written from.  The tree is a closed structure read from a
// YAML configuration file: a category either carries a template directly,
// or fans out into subcategories, or selects among wiring types which in
// turn carry subcategories.  Every selectable leaf resolves to a [Template]
// with typed input slots.
//
// Malformed configuration (a leaf without a template, a template
// referencing an undeclared slot, duplicate slot names) is rejected when
// the tree is loaded, not when a template is first used.
package category

import (
	"fmt"
	"regexp"
	"strings"

	"seehuhn.de/go/inspect"
)

// Input describes one typed slot of a template.
type Input struct {
	// Name is the slot name referenced as {name} in the template text.
	Name string `yaml:"name"`

	// Label is the prompt shown when the slot is filled in manually.
	Label string `yaml:"label"`
}

// Template is a validated punch description template.
//
// The first input slot is the one pre-filled with extracted label text.
type Template struct {
	// Category is the name of the top-level category the template
	// belongs to.
	Category string

	// Name identifies the leaf within its category, e.g.
	// "Multi-strand - Lug missing".  Empty for a direct category template.
	Name string

	// Ref is the checklist reference number of the leaf.
	Ref string

	// Text is the template text with {name} placeholders.
	Text string

	// Inputs are the slots, in prompt order.
	Inputs []Input
}

var slotPat = regexp.MustCompile(`\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// Render substitutes slot values into the template text.  Every slot must
// have a non-empty value.
func (t *Template) Render(values map[string]string) (string, error) {
	for _, in := range t.Inputs {
		if strings.TrimSpace(values[in.Name]) == "" {
			return "", &inspect.ValidationError{
				Op:     "category",
				Reason: fmt.Sprintf("missing value for slot %q", in.Name),
			}
		}
	}
	return slotPat.ReplaceAllStringFunc(t.Text, func(m string) string {
		name := m[1 : len(m)-1]
		return strings.TrimSpace(values[name])
	}), nil
}

// Prefill returns a value map with the first slot filled from extracted
// text.  An empty text gives an empty map.
func (t *Template) Prefill(text string) map[string]string {
	values := make(map[string]string)
	if text != "" && len(t.Inputs) > 0 {
		values[t.Inputs[0].Name] = text
	}
	return values
}

// validate checks the template at load time.
func (t *Template) validate() error {
	if strings.TrimSpace(t.Text) == "" {
		return fmt.Errorf("empty template")
	}
	seen := make(map[string]bool)
	for _, in := range t.Inputs {
		if in.Name == "" {
			return fmt.Errorf("input slot without a name")
		}
		if seen[in.Name] {
			return fmt.Errorf("duplicate input slot %q", in.Name)
		}
		seen[in.Name] = true
	}
	for _, m := range slotPat.FindAllStringSubmatch(t.Text, -1) {
		if !seen[m[1]] {
			return fmt.Errorf("template references undeclared slot %q", m[1])
		}
	}
	return nil
}
