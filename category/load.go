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
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Subcategory is a selectable leaf below a category or wiring type.
type Subcategory struct {
	Name     string  `yaml:"name"`
	Ref      string  `yaml:"ref_number"`
	Template string  `yaml:"template"`
	Inputs   []Input `yaml:"inputs"`
}

// WiringType groups subcategories by conductor type within a wiring
// category.
type WiringType struct {
	Type          string         `yaml:"type"`
	Ref           string         `yaml:"ref_number"`
	Subcategories []*Subcategory `yaml:"subcategories"`
}

// Category is one top-level entry of the tree.
//
// Exactly one of Template, Subcategories or WiringTypes must be present.
// Special subcategories may accompany wiring types; they apply to all
// conductor types of the category.
type Category struct {
	Name                 string         `yaml:"name"`
	Ref                  string         `yaml:"ref_number"`
	Template             string         `yaml:"template"`
	Inputs               []Input        `yaml:"inputs"`
	Subcategories        []*Subcategory `yaml:"subcategories"`
	WiringTypes          []*WiringType  `yaml:"wiring_types"`
	SpecialSubcategories []*Subcategory `yaml:"special_subcategories"`
}

// Tree is the loaded category tree.
type Tree struct {
	Categories []*Category `yaml:"categories"`

	byName map[string]*Category
}

// Load reads and validates a category tree.
func Load(r io.Reader) (*Tree, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	tree := &Tree{}
	if err := yaml.Unmarshal(data, tree); err != nil {
		return nil, fmt.Errorf("malformed category file: %w", err)
	}
	if err := tree.validate(); err != nil {
		return nil, err
	}
	tree.byName = make(map[string]*Category, len(tree.Categories))
	for _, c := range tree.Categories {
		tree.byName[c.Name] = c
	}
	return tree, nil
}

// LoadFile reads and validates a category tree from a file.
func LoadFile(path string) (*Tree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

func (t *Tree) validate() error {
	if len(t.Categories) == 0 {
		return fmt.Errorf("category tree is empty")
	}
	names := make(map[string]bool)
	for _, c := range t.Categories {
		if c.Name == "" {
			return fmt.Errorf("category without a name")
		}
		if names[c.Name] {
			return fmt.Errorf("duplicate category %q", c.Name)
		}
		names[c.Name] = true

		nForms := 0
		if c.Template != "" {
			nForms++
		}
		if len(c.Subcategories) > 0 {
			nForms++
		}
		if len(c.WiringTypes) > 0 {
			nForms++
		}
		if nForms != 1 {
			return fmt.Errorf("category %q must have exactly one of template, subcategories or wiring_types", c.Name)
		}
		if len(c.SpecialSubcategories) > 0 && len(c.WiringTypes) == 0 {
			return fmt.Errorf("category %q has special subcategories but no wiring types", c.Name)
		}

		if c.Template != "" {
			tmpl := c.template()
			if err := tmpl.validate(); err != nil {
				return fmt.Errorf("category %q: %w", c.Name, err)
			}
		}
		for _, sub := range c.Subcategories {
			if err := sub.template(c.Name, "").validate(); err != nil {
				return fmt.Errorf("category %q, subcategory %q: %w", c.Name, sub.Name, err)
			}
		}
		for _, w := range c.WiringTypes {
			if len(w.Subcategories) == 0 {
				return fmt.Errorf("category %q, wiring type %q has no subcategories", c.Name, w.Type)
			}
			for _, sub := range w.Subcategories {
				if err := sub.template(c.Name, w.Type).validate(); err != nil {
					return fmt.Errorf("category %q, wiring type %q, subcategory %q: %w",
						c.Name, w.Type, sub.Name, err)
				}
			}
		}
		for _, sub := range c.SpecialSubcategories {
			if err := sub.template(c.Name, "").validate(); err != nil {
				return fmt.Errorf("category %q, special subcategory %q: %w", c.Name, sub.Name, err)
			}
		}
	}
	return nil
}

// Category returns the named top-level category, or nil.
func (t *Tree) Category(name string) *Category {
	return t.byName[name]
}

func (c *Category) template() *Template {
	return &Template{
		Category: c.Name,
		Ref:      c.Ref,
		Text:     c.Template,
		Inputs:   c.Inputs,
	}
}

func (s *Subcategory) template(category, wiringType string) *Template {
	name := s.Name
	if wiringType != "" {
		name = wiringType + " - " + s.Name
	}
	return &Template{
		Category: category,
		Name:     name,
		Ref:      s.Ref,
		Text:     s.Template,
		Inputs:   s.Inputs,
	}
}

// Resolve finds the template for a selection path within the category.
//
// For a category with a direct template both names are empty.  For plain
// subcategories, sub names the subcategory.  For wiring categories,
// wiringType selects the conductor type and sub the subcategory below it;
// a special subcategory is selected by its name with an empty wiringType.
func (c *Category) Resolve(wiringType, sub string) (*Template, error) {
	notFound := func() (*Template, error) {
		return nil, fmt.Errorf("category %q has no entry %q/%q", c.Name, wiringType, sub)
	}

	if c.Template != "" {
		if wiringType != "" || sub != "" {
			return notFound()
		}
		return c.template(), nil
	}

	if wiringType == "" {
		for _, s := range c.Subcategories {
			if s.Name == sub {
				return s.template(c.Name, ""), nil
			}
		}
		for _, s := range c.SpecialSubcategories {
			if s.Name == sub {
				return s.template(c.Name, ""), nil
			}
		}
		return notFound()
	}

	for _, w := range c.WiringTypes {
		if w.Type != wiringType {
			continue
		}
		for _, s := range w.Subcategories {
			if s.Name == sub {
				return s.template(c.Name, w.Type), nil
			}
		}
	}
	return notFound()
}
