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

package inspect

import "time"

// Role identifies which side of the inspection process performs an action.
type Role int

const (
	// Quality logs punches, verifies rework and closes punches.
	Quality Role = iota + 1

	// Production implements punches and hands cabinets back.
	Production
)

func (r Role) String() string {
	switch r {
	case Quality:
		return "quality"
	case Production:
		return "production"
	default:
		return "unknown"
	}
}

// Stamp is a (name, timestamp) signature pair.  Each lifecycle step of a
// punch carries one stamp, populated exactly once when the step is taken.
type Stamp struct {
	By string    `json:"by,omitempty"`
	At time.Time `json:"at,omitzero"`
}

// IsZero reports whether the stamp has not been populated yet.
func (s Stamp) IsZero() bool {
	return s.By == "" && s.At.IsZero()
}
