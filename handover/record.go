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

// Package handover transfers custody of a cabinet between the Quality and
// Production roles.
//
// Each transfer is one [Record], pending until the receiving role resolves
// it.  The two directions interlock: production resolves a
// quality-to-production handover by creating the complementary
// production-to-quality handback, and quality resolves the handback with a
// verification that either closes the cabinet or returns it to the
// inspection cycle.  Records are never deleted; together they form the
// audit trail of the cabinet.
//
// The [Workflow] enforces the transfer rules; a [Store] persists the
// records.  The durable store is [DB], backed by SQLite through gorm.
package handover

import (
	"time"
)

// Direction tells which role gives up custody.
type Direction int

const (
	// QualityToProduction hands a cabinet with logged punches to
	// production for rework.
	QualityToProduction Direction = iota + 1

	// ProductionToQuality hands a reworked cabinet back for verification.
	ProductionToQuality
)

func (d Direction) String() string {
	switch d {
	case QualityToProduction:
		return "quality_to_production"
	case ProductionToQuality:
		return "production_to_quality"
	default:
		return "unknown"
	}
}

// Record statuses.  Pending is the only non-terminal status; the three
// terminal statuses record how the transfer was resolved.
const (
	// StatusPending means the receiving role has not acted yet.
	StatusPending = "pending"

	// StatusCompleted resolves a QualityToProduction record: production
	// finished rework and handed the cabinet back.
	StatusCompleted = "completed"

	// StatusVerified resolves a ProductionToQuality record: quality
	// accepted the rework but kept the cabinet in the inspection cycle.
	StatusVerified = "verified"

	// StatusClosed resolves a ProductionToQuality record: quality
	// accepted the rework and closed the cabinet.
	StatusClosed = "closed"
)

// Record represents one directional transfer of custody of a cabinet.
type Record struct {
	ID uint `gorm:"primaryKey"`

	// CabinetID identifies the work unit.
	CabinetID string `gorm:"index"`

	Direction Direction `gorm:"index"`

	// Status is one of the Status constants above.
	Status string `gorm:"index"`

	// Cabinet metadata, denormalized so that queue listings need no other
	// lookup.
	ProjectName  string
	SalesOrderNo string
	SessionPath  string

	// Punch counts at the time the record was created.
	TotalPunches  int
	OpenPunches   int
	ClosedPunches int

	// InitiatedBy and InitiatedAt identify the transferring user.
	InitiatedBy string
	InitiatedAt time.Time

	// ResolvedBy and ResolvedAt identify the user who resolved the
	// record.  Zero while the record is pending.
	ResolvedBy string
	ResolvedAt time.Time

	// Notes holds remarks made at either end of the transfer.
	Notes string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Resolved reports whether the record has reached a terminal status.
func (r *Record) Resolved() bool {
	return r.Status != StatusPending
}
