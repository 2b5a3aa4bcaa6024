package sheetstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordRoundTrip(t *testing.T) {
	original := fullRecord()
	cols := ResolveColumns(nil)

	row := original.ToRow()
	require.Len(t, row, 34)

	parsed := RecordFromRow(row, cols, "unused-fallback")

	// Non-derived fields survive the trip untouched.
	assert.Equal(t, original.ID, parsed.ID)
	assert.Equal(t, original.Department, parsed.Department)
	assert.Equal(t, original.HospitalName, parsed.HospitalName)
	assert.Equal(t, original.ClientCompany, parsed.ClientCompany)
	assert.Equal(t, original.Address, parsed.Address)
	assert.Equal(t, original.Phone, parsed.Phone)
	assert.Equal(t, original.Fax, parsed.Fax)
	assert.Equal(t, original.DirectorName, parsed.DirectorName)
	assert.Equal(t, original.ContactPerson, parsed.ContactPerson)
	assert.Equal(t, original.ContactPhone, parsed.ContactPhone)
	assert.Equal(t, original.SalesStage, parsed.SalesStage)
	assert.Equal(t, original.Tendency, parsed.Tendency)
	assert.Equal(t, original.NextStep, parsed.NextStep)
	assert.Equal(t, original.Needs, parsed.Needs)
	assert.Equal(t, original.Progress, parsed.Progress)
	assert.Equal(t, original.SalesPerson, parsed.SalesPerson)
	assert.Equal(t, original.VisitDates(), parsed.VisitDates())
	assert.Equal(t, original.VisitContents(), parsed.VisitContents())
	assert.Equal(t, original.LastUpdate, parsed.LastUpdate)

	require.NotNil(t, parsed.Lat)
	require.NotNil(t, parsed.Lng)
	assert.InDelta(t, *original.Lat, *parsed.Lat, 1e-9)
	assert.InDelta(t, *original.Lng, *parsed.Lng, 1e-9)

	// Derived fields equal an independent calculation over the same slots.
	want := CalculateVisitInfo(parsed.VisitDates())
	assert.Equal(t, want.Count, parsed.VisitCount)
	assert.Equal(t, want.FirstDate, parsed.FirstVisitDate)
	assert.Equal(t, want.LastDate, parsed.LastVisitDate)
}

func TestRecordFromRowRecomputesStaleDerivedCells(t *testing.T) {
	cols := ResolveColumns(nil)
	rec := fullRecord()
	row := rec.ToRow()

	// Hand-edited summary cells must not leak into the parsed record.
	row[cols.VisitCount] = "99"
	row[cols.FirstVisitDate] = "1999-01-01"
	row[cols.LastVisitDate] = "1999-12-31"

	parsed := RecordFromRow(row, cols, "unused")

	assert.Equal(t, 3, parsed.VisitCount)
	assert.Equal(t, "2024-01-10", parsed.FirstVisitDate)
	assert.Equal(t, "2024-03-20", parsed.LastVisitDate)
}

func TestRecordFromRowFallbackID(t *testing.T) {
	cols := ResolveColumns(nil)

	parsed := RecordFromRow([]string{"", "내과", "의원"}, cols, "hospital-12")
	assert.Equal(t, "hospital-12", parsed.ID)
}

func TestRecordFromRowInvalidCoordinates(t *testing.T) {
	cols := ResolveColumns(nil)
	rec := fullRecord()
	row := rec.ToRow()
	row[cols.Lat] = "not-a-number"
	row[cols.Lng] = ""

	parsed := RecordFromRow(row, cols, "unused")

	assert.Nil(t, parsed.Lat)
	assert.Nil(t, parsed.Lng)
}

func TestVisitContentChanges(t *testing.T) {
	cols := ResolveColumns(nil)
	existing := fullRecord()
	existingRow := existing.ToRow()

	merged := existing
	merged.Visit3Content = "new note"
	merged.Visit5Content = "추가 방문 메모"

	changes := visitContentChanges(existingRow, &merged, cols)

	require.Len(t, changes, 2)
	assert.Equal(t, 3, changes[0].VisitNumber)
	assert.Equal(t, "visit3Content", changes[0].FieldName)
	assert.Equal(t, "old note", changes[0].OldContent)
	assert.Equal(t, "new note", changes[0].NewContent)
	assert.Equal(t, 5, changes[1].VisitNumber)
	assert.Equal(t, "", changes[1].OldContent)
	assert.Equal(t, "추가 방문 메모", changes[1].NewContent)
}
