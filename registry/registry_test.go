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

package registry

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestRegistry(t *testing.T) *Registry {
	t.Helper()
	r, err := Open(filepath.Join(t.TempDir(), "manager.db"))
	require.NoError(t, err)
	return r
}

func TestUpsert(t *testing.T) {
	r := openTestRegistry(t)

	err := r.Upsert(&Cabinet{
		CabinetID:   "CAB-017",
		ProjectName: "P-9",
		TotalPages:  12,
	})
	require.NoError(t, err)

	got, err := r.Get("CAB-017")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, StatusQualityInspection, got.Status, "new cabinets start in inspection")
	assert.Equal(t, 12, got.TotalPages)

	// update keeps the status
	err = r.Upsert(&Cabinet{
		CabinetID:   "CAB-017",
		ProjectName: "P-9",
		TotalPages:  13,
	})
	require.NoError(t, err)
	got, err = r.Get("CAB-017")
	require.NoError(t, err)
	assert.Equal(t, StatusQualityInspection, got.Status)
	assert.Equal(t, 13, got.TotalPages)

	got, err = r.Get("CAB-099")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSetStatus(t *testing.T) {
	r := openTestRegistry(t)

	require.NoError(t, r.Upsert(&Cabinet{CabinetID: "CAB-017"}))
	require.NoError(t, r.SetStatus("CAB-017", StatusHandedToProduction))

	got, err := r.Get("CAB-017")
	require.NoError(t, err)
	assert.Equal(t, StatusHandedToProduction, got.Status)

	// unknown cabinets are created on the fly
	require.NoError(t, r.SetStatus("CAB-018", StatusClosed))
	got, err = r.Get("CAB-018")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, StatusClosed, got.Status)

	byStatus, err := r.ByStatus(StatusHandedToProduction)
	require.NoError(t, err)
	require.Len(t, byStatus, 1)
	assert.Equal(t, "CAB-017", byStatus[0].CabinetID)
}

func TestSetCounts(t *testing.T) {
	r := openTestRegistry(t)

	require.NoError(t, r.Upsert(&Cabinet{CabinetID: "CAB-017"}))
	require.NoError(t, r.SetCounts("CAB-017", 5, 2, 1, 2))

	got, err := r.Get("CAB-017")
	require.NoError(t, err)
	assert.Equal(t, 5, got.TotalPunches)
	assert.Equal(t, 2, got.OpenPunches)
	assert.Equal(t, 1, got.ImplementedPunches)
	assert.Equal(t, 2, got.ClosedPunches)
}

func TestLogOccurrence(t *testing.T) {
	r := openTestRegistry(t)

	for range 3 {
		err := r.LogOccurrence("CAB-017", "P-9", "Wiring", "Loose strands")
		require.NoError(t, err)
	}
	err := r.LogOccurrence("CAB-017", "P-9", "Labeling", "Missing label")
	require.NoError(t, err)

	ccs, err := r.Occurrences("CAB-017")
	require.NoError(t, err)
	require.Len(t, ccs, 2)
	assert.Equal(t, "Wiring", ccs[0].Category, "largest tally first")
	assert.Equal(t, 3, ccs[0].Count)
	assert.Equal(t, 1, ccs[1].Count)
}
