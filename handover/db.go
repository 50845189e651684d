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

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB is the durable [Store], backed by an SQLite database.
type DB struct {
	db *gorm.DB
}

var _ Store = (*DB)(nil)

// Open opens (and if needed creates) the handover database at the given
// path.
func Open(path string) (*DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Discard,
	})
	if err != nil {
		return nil, err
	}
	return New(db)
}

// New wraps an existing gorm connection.  The records table is migrated on
// first use.
func New(db *gorm.DB) (*DB, error) {
	err := db.AutoMigrate(&Record{})
	if err != nil {
		return nil, err
	}
	return &DB{db: db}, nil
}

// Create implements the [Store] interface.
func (s *DB) Create(rec *Record) error {
	return s.db.Create(rec).Error
}

// Update implements the [Store] interface.
func (s *DB) Update(rec *Record) error {
	if rec.ID == 0 {
		return errNotFound
	}
	return s.db.Save(rec).Error
}

// Pending implements the [Store] interface.
func (s *DB) Pending(cabinetID string, dir Direction) (*Record, error) {
	var rec Record
	err := s.db.
		Where("cabinet_id = ? AND direction = ? AND status = ?",
			cabinetID, dir, StatusPending).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return &rec, nil
}

// PendingAll implements the [Store] interface.
func (s *DB) PendingAll(dir Direction) ([]*Record, error) {
	var recs []*Record
	err := s.db.
		Where("direction = ? AND status = ?", dir, StatusPending).
		Order("initiated_at DESC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return recs, nil
}

// ByCabinet implements the [Store] interface.
func (s *DB) ByCabinet(cabinetID string) ([]*Record, error) {
	var recs []*Record
	err := s.db.
		Where("cabinet_id = ?", cabinetID).
		Order("id ASC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return recs, nil
}
