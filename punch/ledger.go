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

package punch

import "sort"

// ChecklistStatus is the review state of one checklist reference.
type ChecklistStatus int

const (
	// ChecklistUnset means the reference has not been reviewed yet.
	ChecklistUnset ChecklistStatus = iota

	// ChecklistOK means reviewed with no findings.
	ChecklistOK

	// ChecklistNOK means reviewed with at least one punch logged.
	ChecklistNOK

	// ChecklistNA means the reference does not apply to this cabinet.
	ChecklistNA
)

func (s ChecklistStatus) String() string {
	switch s {
	case ChecklistOK:
		return "OK"
	case ChecklistNOK:
		return "NOK"
	case ChecklistNA:
		return "NA"
	default:
		return "unset"
	}
}

// Ledger is the spreadsheet-of-record collaborator for one cabinet.
//
// The engine never assumes exclusive access to the ledger, but it does
// assume a single writer: concurrent writers can produce serial-number
// collisions, which is an unsupported scenario rather than a recoverable
// error.  Row and cell mechanics (merged cells, row positions) are entirely
// the implementation's concern; every write carries the full row.
type Ledger interface {
	// NextSerial returns one more than the highest serial number present
	// in the ledger.  An external edit removing the highest row between
	// allocation and write is unsupported.
	NextSerial() (int, error)

	// WriteRow persists the full punch row, creating or replacing it.
	WriteRow(p *Punch) error

	// ReadOpen returns all punches that are not closed, ordered by serial
	// number.
	ReadOpen() ([]*Punch, error)

	// ChecklistStatus returns the review state of a checklist reference.
	ChecklistStatus(ref string) (ChecklistStatus, error)

	// MarkChecklist records the review state of a checklist reference.
	MarkChecklist(ref string, status ChecklistStatus) error
}

// MemLedger is an in-memory [Ledger] for tests and single-process use.
//
// Serial numbers are never reused: the high-water mark survives even if
// rows are replaced.
type MemLedger struct {
	rows      map[int]*Punch
	checklist map[string]ChecklistStatus
	highest   int
}

var _ Ledger = (*MemLedger)(nil)

// NewMemLedger creates an empty in-memory ledger.
func NewMemLedger() *MemLedger {
	return &MemLedger{
		rows:      make(map[int]*Punch),
		checklist: make(map[string]ChecklistStatus),
	}
}

// NextSerial implements the [Ledger] interface.
func (l *MemLedger) NextSerial() (int, error) {
	return l.highest + 1, nil
}

// WriteRow implements the [Ledger] interface.
func (l *MemLedger) WriteRow(p *Punch) error {
	cp := *p
	l.rows[p.Serial] = &cp
	if p.Serial > l.highest {
		l.highest = p.Serial
	}
	return nil
}

// ReadOpen implements the [Ledger] interface.
func (l *MemLedger) ReadOpen() ([]*Punch, error) {
	var res []*Punch
	for _, p := range l.rows {
		if p.State() != Closed {
			cp := *p
			res = append(res, &cp)
		}
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].Serial < res[j].Serial
	})
	return res, nil
}

// ChecklistStatus implements the [Ledger] interface.
func (l *MemLedger) ChecklistStatus(ref string) (ChecklistStatus, error) {
	return l.checklist[ref], nil
}

// MarkChecklist implements the [Ledger] interface.
func (l *MemLedger) MarkChecklist(ref string, status ChecklistStatus) error {
	l.checklist[ref] = status
	return nil
}

// All returns every row, ordered by serial number.
func (l *MemLedger) All() []*Punch {
	res := make([]*Punch, 0, len(l.rows))
	for _, p := range l.rows {
		cp := *p
		res = append(res, &cp)
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].Serial < res[j].Serial
	})
	return res
}
