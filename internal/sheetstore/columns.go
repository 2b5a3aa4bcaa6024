package sheetstore

import (
	"strconv"
	"strings"
)

// ColumnMap holds the resolved column index for every field of a hospital
// sales record. Indexes are computed once per read/write from the header row
// and fall back to the legacy fixed layout when a header is not recognized.
type ColumnMap struct {
	ID             int
	Department     int
	HospitalName   int
	ClientCompany  int
	Address        int
	Phone          int
	Fax            int
	DirectorName   int
	ContactPerson  int
	ContactPhone   int
	SalesStage     int
	Tendency       int
	NextStep       int
	Needs          int
	VisitCount     int
	Progress       int
	FirstVisitDate int
	LastVisitDate  int
	SalesPerson    int
	Visits         [6]int
	VisitContents  [6]int
	LastUpdate     int
	Lat            int
	Lng            int
}

// FindColumnIndex returns the index of the first header matching any of the
// given candidate keywords. Candidates are tried in order, so the candidate
// list decides which synonym wins when several headers could match. Matching
// is a case-insensitive substring test. Returns -1 when nothing matches.
func FindColumnIndex(headers []string, candidates []string) int {
	for _, candidate := range candidates {
		lowered := strings.ToLower(candidate)
		for i, header := range headers {
			if strings.Contains(strings.ToLower(header), lowered) {
				return i
			}
		}
	}
	return -1
}

// columnOrDefault wraps FindColumnIndex with the legacy positional fallback.
// A sheet with no recognizable headers still works: every field degrades to
// its fixed position in the original column layout.
func columnOrDefault(headers []string, fallback int, candidates ...string) int {
	if idx := FindColumnIndex(headers, candidates); idx != -1 {
		return idx
	}
	return fallback
}

// ResolveColumns computes the full field-to-column map for a header row.
func ResolveColumns(headers []string) ColumnMap {
	cols := ColumnMap{
		ID:             columnOrDefault(headers, 0, "id", "번호", "순번"),
		Department:     columnOrDefault(headers, 1, "진료과", "과목", "department"),
		HospitalName:   columnOrDefault(headers, 2, "의원명", "병원명", "hospital", "name"),
		ClientCompany:  columnOrDefault(headers, 3, "수탁사", "고객사", "client", "company"),
		Address:        columnOrDefault(headers, 4, "주소", "address"),
		Phone:          columnOrDefault(headers, 5, "전화번호", "연락처", "phone", "tel"),
		Fax:            columnOrDefault(headers, 6, "팩스", "fax"),
		DirectorName:   columnOrDefault(headers, 7, "원장이름", "원장", "director", "name"),
		ContactPerson:  columnOrDefault(headers, 8, "담당자명", "담당자", "contact", "person"),
		ContactPhone:   columnOrDefault(headers, 9, "담당자 연락처", "담당자 전화번호", "contact", "phone"),
		SalesStage:     columnOrDefault(headers, 10, "세일즈 단계", "단계", "stage"),
		Tendency:       columnOrDefault(headers, 11, "성향", "tendency"),
		NextStep:       columnOrDefault(headers, 12, "next step", "다음단계", "next"),
		Needs:          columnOrDefault(headers, 13, "과제(니즈)", "needs"),
		VisitCount:     columnOrDefault(headers, 14, "방문횟수", "방문", "visit", "count"),
		Progress:       columnOrDefault(headers, 15, "진행상황", "progress"),
		FirstVisitDate: columnOrDefault(headers, 16, "최초방문일자", "첫방문", "first", "visit"),
		LastVisitDate:  columnOrDefault(headers, 17, "최종방문일자", "마지막방문", "last", "visit"),
		SalesPerson:    columnOrDefault(headers, 18, "영업담당자", "담당자", "sales", "person"),
		LastUpdate:     columnOrDefault(headers, 31, "최종 업데이트", "업데이트", "update"),
		Lat:            columnOrDefault(headers, 32, "lat", "위도", "latitude"),
		Lng:            columnOrDefault(headers, 33, "lng", "경도", "longitude"),
	}

	for i := 0; i < visitSlots; i++ {
		n := strconv.Itoa(i + 1)
		cols.Visits[i] = columnOrDefault(headers, 19+i*2, n+"차 방문", n+"차")
		cols.VisitContents[i] = columnOrDefault(headers, 20+i*2, n+"차 방문 내용", n+"차 내용")
	}

	return cols
}
