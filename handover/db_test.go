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
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "handover.db"))
	require.NoError(t, err)
	return db
}

func TestDBCreateAndPending(t *testing.T) {
	db := openTestDB(t)

	rec := &Record{
		CabinetID:    "CAB-017",
		Direction:    QualityToProduction,
		Status:       StatusPending,
		ProjectName:  "P-9",
		OpenPunches:  3,
		TotalPunches: 3,
		InitiatedBy:  "amrita",
		InitiatedAt:  time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC),
	}
	require.NoError(t, db.Create(rec))
	assert.NotZero(t, rec.ID)

	got, err := db.Pending("CAB-017", QualityToProduction)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, rec.ID, got.ID)
	assert.Equal(t, "P-9", got.ProjectName)
	assert.Equal(t, 3, got.OpenPunches)

	// no pending record in the other direction
	got, err = db.Pending("CAB-017", ProductionToQuality)
	require.NoError(t, err)
	assert.Nil(t, got)

	// unknown cabinet
	got, err = db.Pending("CAB-099", QualityToProduction)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDBUpdate(t *testing.T) {
	db := openTestDB(t)

	rec := &Record{
		CabinetID:   "CAB-017",
		Direction:   QualityToProduction,
		Status:      StatusPending,
		InitiatedBy: "amrita",
		InitiatedAt: time.Now(),
	}
	require.NoError(t, db.Create(rec))

	rec.Status = StatusCompleted
	rec.ResolvedBy = "ravi"
	rec.ResolvedAt = time.Now()
	require.NoError(t, db.Update(rec))

	got, err := db.Pending("CAB-017", QualityToProduction)
	require.NoError(t, err)
	assert.Nil(t, got, "resolved record must leave the pending queue")

	trail, err := db.ByCabinet("CAB-017")
	require.NoError(t, err)
	require.Len(t, trail, 1)
	assert.Equal(t, StatusCompleted, trail[0].Status)
	assert.Equal(t, "ravi", trail[0].ResolvedBy)

	err = db.Update(&Record{CabinetID: "CAB-018"})
	assert.Error(t, err)
}

func TestDBQueues(t *testing.T) {
	db := openTestDB(t)

	t0 := time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)
	for i, cab := range []string{"CAB-001", "CAB-002", "CAB-003"} {
		rec := &Record{
			CabinetID:   cab,
			Direction:   QualityToProduction,
			Status:      StatusPending,
			InitiatedBy: "amrita",
			InitiatedAt: t0.Add(time.Duration(i) * time.Hour),
		}
		require.NoError(t, db.Create(rec))
	}

	queue, err := db.PendingAll(QualityToProduction)
	require.NoError(t, err)
	require.Len(t, queue, 3)
	assert.Equal(t, "CAB-003", queue[0].CabinetID, "newest first")
	assert.Equal(t, "CAB-001", queue[2].CabinetID)

	queue, err = db.PendingAll(ProductionToQuality)
	require.NoError(t, err)
	assert.Empty(t, queue)
}

func TestDBSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "handover.db")

	db, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, db.Create(&Record{
		CabinetID:   "CAB-017",
		Direction:   QualityToProduction,
		Status:      StatusPending,
		InitiatedBy: "amrita",
		InitiatedAt: time.Now(),
	}))

	db2, err := Open(path)
	require.NoError(t, err)
	got, err := db2.Pending("CAB-017", QualityToProduction)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "amrita", got.InitiatedBy)
}
