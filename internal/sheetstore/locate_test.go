package sheetstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func locateFixture() ([][]string, ColumnMap) {
	cols := ColumnMap{ID: 0, HospitalName: 1, Phone: 2}
	rows := [][]string{
		{"hospital-1", "중앙의원", "02-111-1111"},
		{"hospital-2", "중앙의원", "02-222-2222"},
		{"hospital-3", "동네의원", "02-333-3333"},
	}
	return rows, cols
}

func TestLocateRowByID(t *testing.T) {
	rows, cols := locateFixture()
	idx := LocateRow(rows, RecordKey{ID: "hospital-3"}, cols)
	assert.Equal(t, 2, idx)
}

func TestLocateRowNamePhoneBeforeNameOnly(t *testing.T) {
	rows, cols := locateFixture()

	// Two rows share the hospital name; a stale id plus the correct
	// name+phone pair must find the second row, not the name-only first.
	idx := LocateRow(rows, RecordKey{
		ID:           "hospital-gone",
		HospitalName: "중앙의원",
		Phone:        "02-222-2222",
	}, cols)
	assert.Equal(t, 1, idx)
}

func TestLocateRowNameOnlyFallback(t *testing.T) {
	rows, cols := locateFixture()

	// No id, no phone match: the name-only attempt picks the first match.
	idx := LocateRow(rows, RecordKey{
		HospitalName: "중앙의원",
		Phone:        "02-999-9999",
	}, cols)
	assert.Equal(t, 0, idx)
}

func TestLocateRowNotFound(t *testing.T) {
	rows, cols := locateFixture()

	idx := LocateRow(rows, RecordKey{
		ID:           "hospital-404",
		HospitalName: "없는의원",
		Phone:        "02-000-0000",
	}, cols)
	assert.Equal(t, -1, idx)
}

func TestLocateRowEmptyKey(t *testing.T) {
	rows, cols := locateFixture()

	// A fully blank key must not match rows with blank cells.
	idx := LocateRow(rows, RecordKey{}, cols)
	assert.Equal(t, -1, idx)
}
