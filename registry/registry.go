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

// Package registry maintains the fleet-wide read model of all cabinets.
//
// The registry is a dashboard: the annotation and handover workflows push
// per-cabinet statistics and status changes into it, and management tools
// read it.  It is never the source of truth for punch state; the session
// document and the defect ledger are.
package registry

import (
	"errors"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Cabinet status values, in lifecycle order.
const (
	// StatusQualityInspection is the initial status: quality is marking
	// up the drawings.
	StatusQualityInspection = "quality_inspection"

	// StatusHandedToProduction means production holds the cabinet for
	// rework.
	StatusHandedToProduction = "handed_to_production"

	// StatusBeingClosedByQuality means production handed back and quality
	// is verifying the rework.
	StatusBeingClosedByQuality = "being_closed_by_quality"

	// StatusVerified means quality accepted the rework but kept the
	// cabinet in the inspection cycle.
	StatusVerified = "verified"

	// StatusClosed is terminal.
	StatusClosed = "closed"
)

// Cabinet is one row of the read model.
type Cabinet struct {
	CabinetID    string `gorm:"primaryKey"`
	ProjectName  string
	SalesOrderNo string

	TotalPages     int
	AnnotatedPages int

	TotalPunches       int
	OpenPunches        int
	ImplementedPunches int
	ClosedPunches      int

	// Status is one of the Status constants above.
	Status string `gorm:"index"`

	SessionPath string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CategoryCount tallies how often a defect category occurred on a cabinet.
// Management reads these to find systematic problems across projects.
type CategoryCount struct {
	ID          uint   `gorm:"primaryKey"`
	CabinetID   string `gorm:"index"`
	ProjectName string
	Category    string
	Subcategory string
	Count       int
	UpdatedAt   time.Time
}

// Registry is the durable read model, backed by an SQLite database.
type Registry struct {
	db *gorm.DB
}

// Open opens (and if needed creates) the registry database at the given
// path.
func Open(path string) (*Registry, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Discard,
	})
	if err != nil {
		return nil, err
	}
	return New(db)
}

// New wraps an existing gorm connection.  The tables are migrated on first
// use.
func New(db *gorm.DB) (*Registry, error) {
	err := db.AutoMigrate(&Cabinet{}, &CategoryCount{})
	if err != nil {
		return nil, err
	}
	return &Registry{db: db}, nil
}

// Upsert creates or replaces the row for a cabinet.  A new cabinet with an
// empty Status starts in [StatusQualityInspection]; the status of an
// existing row is preserved unless c.Status is set.
func (r *Registry) Upsert(c *Cabinet) error {
	old, err := r.Get(c.CabinetID)
	if err != nil {
		return err
	}
	if c.Status == "" {
		if old != nil {
			c.Status = old.Status
		} else {
			c.Status = StatusQualityInspection
		}
	}
	if old != nil {
		c.CreatedAt = old.CreatedAt
	}
	return r.db.Save(c).Error
}

// SetStatus moves a cabinet to a new lifecycle status.  Unknown cabinets
// are created on the fly, so that the workflows need no registration step.
func (r *Registry) SetStatus(cabinetID, status string) error {
	res := r.db.Model(&Cabinet{}).
		Where("cabinet_id = ?", cabinetID).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return r.db.Create(&Cabinet{CabinetID: cabinetID, Status: status}).Error
	}
	return nil
}

// SetCounts updates the punch statistics of a cabinet.
func (r *Registry) SetCounts(cabinetID string, total, open, implemented, closed int) error {
	return r.db.Model(&Cabinet{}).
		Where("cabinet_id = ?", cabinetID).
		Updates(map[string]any{
			"total_punches":       total,
			"open_punches":        open,
			"implemented_punches": implemented,
			"closed_punches":      closed,
		}).Error
}

// Get returns the row for a cabinet, or nil if the cabinet is unknown.
func (r *Registry) Get(cabinetID string) (*Cabinet, error) {
	var c Cabinet
	err := r.db.First(&c, "cabinet_id = ?", cabinetID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return &c, nil
}

// ByStatus lists all cabinets in one lifecycle status, most recently
// updated first.
func (r *Registry) ByStatus(status string) ([]*Cabinet, error) {
	var cs []*Cabinet
	err := r.db.
		Where("status = ?", status).
		Order("updated_at DESC").
		Find(&cs).Error
	if err != nil {
		return nil, err
	}
	return cs, nil
}

// LogOccurrence increments the tally for one defect category on a cabinet.
func (r *Registry) LogOccurrence(cabinetID, projectName, category, subcategory string) error {
	var cc CategoryCount
	err := r.db.
		Where("cabinet_id = ? AND category = ? AND subcategory = ?",
			cabinetID, category, subcategory).
		First(&cc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cc = CategoryCount{
			CabinetID:   cabinetID,
			ProjectName: projectName,
			Category:    category,
			Subcategory: subcategory,
			Count:       1,
		}
		return r.db.Create(&cc).Error
	} else if err != nil {
		return err
	}
	cc.Count++
	return r.db.Save(&cc).Error
}

// Occurrences returns the per-category tallies of a cabinet, largest first.
func (r *Registry) Occurrences(cabinetID string) ([]*CategoryCount, error) {
	var ccs []*CategoryCount
	err := r.db.
		Where("cabinet_id = ?", cabinetID).
		Order("count DESC").
		Find(&ccs).Error
	if err != nil {
		return nil, err
	}
	return ccs, nil
}
