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

import (
	"strings"
	"unicode"
)

// replacements undoes the most common misreads on technical drawings.
var replacements = strings.NewReplacer(
	"|", "I",
	"`", "'",
	"~", "-",
)

// Clean normalizes raw extractor output: whitespace is collapsed, common
// misread characters are replaced, and non-printable characters are dropped.
// Results shorter than two characters are discarded.
func Clean(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	s = replacements.Replace(s)
	s = strings.Map(func(r rune) rune {
		if !unicode.IsPrint(r) {
			return -1
		}
		return r
	}, s)
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return ""
	}
	return s
}

// Normalize applies [Clean] and the all-capitals acceptance policy.
//
// Component labels on the source drawings are printed in capital letters
// only.  If the cleaned text contains a lowercase letter, or contains no
// letters at all, the extraction is considered a misread and the empty
// string is returned.
func Normalize(s string) string {
	s = Clean(s)
	if s == "" {
		return ""
	}

	hasLetter := false
	for _, r := range s {
		if !unicode.IsLetter(r) {
			continue
		}
		hasLetter = true
		if unicode.IsLower(r) {
			return ""
		}
	}
	if !hasLetter {
		return ""
	}
	return s
}
