package sheetstore

// RecordKey identifies a persisted row. ID is the surrogate key; hospital
// name plus phone is the natural key used when the id column has been lost
// or renumbered by hand edits.
type RecordKey struct {
	ID           string
	HospitalName string
	Phone        string
}

// LocateRow finds the row matching the key, trying three attempts in order:
// exact id match, then exact hospital name plus phone, then hospital name
// alone. The first hit wins and later attempts are skipped. Returns -1 when
// every attempt fails; callers must treat that as not found and must never
// fall back to creating a new row.
//
// The name-only attempt can pick the wrong row when two hospitals share a
// name. Accepted tradeoff: the sheet is hand-edited and a lost id column
// would otherwise make the record unreachable.
func LocateRow(rows [][]string, key RecordKey, cols ColumnMap) int {
	if key.ID != "" {
		for i, row := range rows {
			if cell(row, cols.ID) == key.ID {
				return i
			}
		}
	}

	if key.HospitalName != "" && key.Phone != "" {
		for i, row := range rows {
			if cell(row, cols.HospitalName) == key.HospitalName && cell(row, cols.Phone) == key.Phone {
				return i
			}
		}
	}

	if key.HospitalName != "" {
		for i, row := range rows {
			if cell(row, cols.HospitalName) == key.HospitalName {
				return i
			}
		}
	}

	return -1
}
