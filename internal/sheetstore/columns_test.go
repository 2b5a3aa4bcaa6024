package sheetstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindColumnIndex(t *testing.T) {
	t.Run("no candidate matches", func(t *testing.T) {
		headers := []string{"진료과", "의원명"}
		assert.Equal(t, -1, FindColumnIndex(headers, []string{"전화번호", "phone"}))
	})

	t.Run("candidate order wins over header order", func(t *testing.T) {
		// Both headers could match, but the first candidate is tried
		// against every header before the second candidate is considered.
		headers := []string{"phone", "전화번호"}
		assert.Equal(t, 1, FindColumnIndex(headers, []string{"전화번호", "phone"}))
	})

	t.Run("match is case-insensitive substring", func(t *testing.T) {
		headers := []string{"순번", "Hospital Name", "주소"}
		assert.Equal(t, 1, FindColumnIndex(headers, []string{"hospital"}))
	})

	t.Run("first matching header wins within a candidate", func(t *testing.T) {
		headers := []string{"1차 방문", "1차 방문 내용"}
		assert.Equal(t, 0, FindColumnIndex(headers, []string{"1차 방문"}))
		assert.Equal(t, 1, FindColumnIndex(headers, []string{"1차 방문 내용"}))
	})
}

func TestResolveColumnsLegacyFallback(t *testing.T) {
	// With no recognizable headers every field degrades to its fixed
	// position in the legacy layout.
	cols := ResolveColumns(nil)

	assert.Equal(t, 0, cols.ID)
	assert.Equal(t, 1, cols.Department)
	assert.Equal(t, 2, cols.HospitalName)
	assert.Equal(t, 4, cols.Address)
	assert.Equal(t, 5, cols.Phone)
	assert.Equal(t, 14, cols.VisitCount)
	assert.Equal(t, 18, cols.SalesPerson)
	for i := 0; i < 6; i++ {
		assert.Equal(t, 19+i*2, cols.Visits[i])
		assert.Equal(t, 20+i*2, cols.VisitContents[i])
	}
	assert.Equal(t, 31, cols.LastUpdate)
	assert.Equal(t, 32, cols.Lat)
	assert.Equal(t, 33, cols.Lng)
}

func TestResolveColumnsDynamicRemapping(t *testing.T) {
	// A partially renamed header row remaps the recognized fields and
	// leaves the rest at their legacy positions.
	headers := []string{"의원명", "전화번호", "주소"}
	cols := ResolveColumns(headers)

	assert.Equal(t, 0, cols.HospitalName)
	assert.Equal(t, 1, cols.Phone)
	assert.Equal(t, 2, cols.Address)
	// Unrecognized fields keep the legacy layout.
	assert.Equal(t, 6, cols.Fax)
	assert.Equal(t, 15, cols.Progress)
}
