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

// Package punch drives the punch lifecycle.
//
// A punch is one row of a cabinet's external defect ledger.  Its life is
// strictly forward:
//
//	Unlogged -> Logged -> Implemented -> Closed
//
// No transition skips a state and none can be reversed.  A punch that must
// be voided stays Logged forever with a remark; there is no Voided state.
// The state of a punch is not stored: it is derived from which signature
// stamps have been populated.
//
// The [Binder] performs the transitions.  Logging allocates the next serial
// number and writes the ledger row; implementing requires production
// custody of the cabinet; closing repaints the linked highlight from orange
// to green.
package punch

import (
	"seehuhn.de/go/inspect"
)

// State is the lifecycle state of a punch, derived from its stamps.
type State int

const (
	// Unlogged is the state before a ledger row exists.
	Unlogged State = iota

	// Logged means the defect has a ledger row and a serial number.
	Logged

	// Implemented means production has carried out the repair.
	Implemented

	// Closed means quality has verified the repair.
	Closed
)

func (s State) String() string {
	switch s {
	case Unlogged:
		return "unlogged"
	case Logged:
		return "logged"
	case Implemented:
		return "implemented"
	case Closed:
		return "closed"
	default:
		return "invalid"
	}
}

// Punch is one row of the defect ledger.
type Punch struct {
	// Serial is the dense, auto-incrementing serial number, assigned once
	// at logging time and never reused.
	Serial int `json:"srNo"`

	// Ref is the checklist reference number of the defect's category.
	Ref string `json:"refNo"`

	// Category is the top-level category name.
	Category string `json:"category"`

	// Subcategory identifies the leaf within the category, if any.
	Subcategory string `json:"subcategory,omitempty"`

	// Description is the rendered punch text written to the ledger.
	Description string `json:"description"`

	// Logged, Implemented and Closed are the lifecycle signatures.  They
	// are populated in sequence, each exactly once.
	Logged      inspect.Stamp `json:"logged"`
	Implemented inspect.Stamp `json:"implemented,omitzero"`
	Closed      inspect.Stamp `json:"closed,omitzero"`

	// Remark holds free-text remarks, e.g. the reason a punch was voided
	// or notes made during implementation.
	Remark string `json:"remark,omitempty"`
}

// State derives the lifecycle state from the signature stamps.
func (p *Punch) State() State {
	switch {
	case !p.Closed.IsZero():
		return Closed
	case !p.Implemented.IsZero():
		return Implemented
	case !p.Logged.IsZero():
		return Logged
	default:
		return Unlogged
	}
}

// FullyClosed reports whether every punch in the list is closed.  Because
// no reverse transition exists, the predicate is monotonic: once true for a
// cabinet's punches, it stays true.
func FullyClosed(punches []*Punch) bool {
	for _, p := range punches {
		if p.State() != Closed {
			return false
		}
	}
	return true
}

// OpenCount returns how many punches are logged but not yet implemented.
func OpenCount(punches []*Punch) int {
	n := 0
	for _, p := range punches {
		if p.State() == Logged {
			n++
		}
	}
	return n
}
