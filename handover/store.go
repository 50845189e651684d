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

package handover

import (
	"errors"
	"sort"
)

var errNotFound = errors.New("handover record not found")

// Store persists handover records.
//
// The store is append-only: records are created and later resolved in
// place, but never deleted.
type Store interface {
	// Create appends a new record and assigns its ID.
	Create(rec *Record) error

	// Update persists a changed record.
	Update(rec *Record) error

	// Pending returns the pending record of the given direction for a
	// cabinet, or nil if there is none.
	Pending(cabinetID string, dir Direction) (*Record, error)

	// PendingAll lists all pending records of one direction, newest
	// first.  This is the work queue of the receiving role.
	PendingAll(dir Direction) ([]*Record, error)

	// ByCabinet returns the full audit trail of a cabinet, oldest first.
	ByCabinet(cabinetID string) ([]*Record, error)
}

// MemStore is an in-memory [Store] for tests.
type MemStore struct {
	recs   []*Record
	nextID uint
}

var _ Store = (*MemStore)(nil)

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{nextID: 1}
}

// Create implements the [Store] interface.
func (s *MemStore) Create(rec *Record) error {
	rec.ID = s.nextID
	s.nextID++
	cp := *rec
	s.recs = append(s.recs, &cp)
	return nil
}

// Update implements the [Store] interface.
func (s *MemStore) Update(rec *Record) error {
	for i, r := range s.recs {
		if r.ID == rec.ID {
			cp := *rec
			s.recs[i] = &cp
			return nil
		}
	}
	return errNotFound
}

// Pending implements the [Store] interface.
func (s *MemStore) Pending(cabinetID string, dir Direction) (*Record, error) {
	for _, r := range s.recs {
		if r.CabinetID == cabinetID && r.Direction == dir && r.Status == StatusPending {
			cp := *r
			return &cp, nil
		}
	}
	return nil, nil
}

// PendingAll implements the [Store] interface.
func (s *MemStore) PendingAll(dir Direction) ([]*Record, error) {
	var res []*Record
	for _, r := range s.recs {
		if r.Direction == dir && r.Status == StatusPending {
			cp := *r
			res = append(res, &cp)
		}
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].InitiatedAt.After(res[j].InitiatedAt)
	})
	return res, nil
}

// ByCabinet implements the [Store] interface.
func (s *MemStore) ByCabinet(cabinetID string) ([]*Record, error) {
	var res []*Record
	for _, r := range s.recs {
		if r.CabinetID == cabinetID {
			cp := *r
			res = append(res, &cp)
		}
	}
	return res, nil
}
