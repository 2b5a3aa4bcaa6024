package sheetstore

import (
	"strconv"
	"time"
)

// Record is one hospital sales record, the typed form of one sheet row.
// VisitCount, FirstVisitDate and LastVisitDate are derived: they are always
// recomputed from the visit slots and never taken verbatim from a caller.
type Record struct {
	ID             string   `json:"id"`
	Department     string   `json:"department"`
	HospitalName   string   `json:"hospitalName"`
	ClientCompany  string   `json:"clientCompany"`
	Address        string   `json:"address"`
	Lat            *float64 `json:"lat,omitempty"`
	Lng            *float64 `json:"lng,omitempty"`
	Phone          string   `json:"phone"`
	Fax            string   `json:"fax"`
	DirectorName   string   `json:"directorName"`
	ContactPerson  string   `json:"contactPerson"`
	ContactPhone   string   `json:"contactPhone"`
	SalesStage     string   `json:"salesStage"`
	Tendency       string   `json:"tendency"`
	NextStep       string   `json:"nextStep"`
	Needs          string   `json:"needs"`
	VisitCount     int      `json:"visitCount"`
	Progress       string   `json:"progress"`
	FirstVisitDate string   `json:"firstVisitDate"`
	LastVisitDate  string   `json:"lastVisitDate"`
	SalesPerson    string   `json:"salesPerson"`
	Visit1         string   `json:"visit1"`
	Visit1Content  string   `json:"visit1Content"`
	Visit2         string   `json:"visit2"`
	Visit2Content  string   `json:"visit2Content"`
	Visit3         string   `json:"visit3"`
	Visit3Content  string   `json:"visit3Content"`
	Visit4         string   `json:"visit4"`
	Visit4Content  string   `json:"visit4Content"`
	Visit5         string   `json:"visit5"`
	Visit5Content  string   `json:"visit5Content"`
	Visit6         string   `json:"visit6"`
	Visit6Content  string   `json:"visit6Content"`
	LastUpdate     string   `json:"lastUpdate"`
}

// VisitDates returns the six visit date slots in slot order.
func (r *Record) VisitDates() [visitSlots]string {
	return [visitSlots]string{r.Visit1, r.Visit2, r.Visit3, r.Visit4, r.Visit5, r.Visit6}
}

// VisitContents returns the six visit content slots in slot order.
func (r *Record) VisitContents() [visitSlots]string {
	return [visitSlots]string{r.Visit1Content, r.Visit2Content, r.Visit3Content, r.Visit4Content, r.Visit5Content, r.Visit6Content}
}

func (r *Record) setVisitDate(slot int, value string) {
	switch slot {
	case 0:
		r.Visit1 = value
	case 1:
		r.Visit2 = value
	case 2:
		r.Visit3 = value
	case 3:
		r.Visit4 = value
	case 4:
		r.Visit5 = value
	case 5:
		r.Visit6 = value
	}
}

func (r *Record) setVisitContent(slot int, value string) {
	switch slot {
	case 0:
		r.Visit1Content = value
	case 1:
		r.Visit2Content = value
	case 2:
		r.Visit3Content = value
	case 3:
		r.Visit4Content = value
	case 4:
		r.Visit5Content = value
	case 5:
		r.Visit6Content = value
	}
}

// applyVisitInfo overwrites the derived fields with freshly computed values.
func (r *Record) applyVisitInfo() {
	info := CalculateVisitInfo(r.VisitDates())
	r.VisitCount = info.Count
	r.FirstVisitDate = info.FirstDate
	r.LastVisitDate = info.LastDate
}

// cell returns the value at idx, or "" when the row is too short. Sheet rows
// are ragged: trailing empty cells are not returned by the API.
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func parseCoordinate(raw string) *float64 {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

func formatCoordinate(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

// today returns the current date as YYYY-MM-DD, the format lastUpdate and
// the visit slots use throughout the sheet.
func today() string {
	return time.Now().Format("2006-01-02")
}

// RecordFromRow builds a typed record from a raw sheet row using the
// resolved column map. The derived visit fields are recomputed rather than
// read, so stale hand-edited summary cells never leak into responses.
// fallbackID is used when the id cell is blank (legacy rows predate ids).
func RecordFromRow(row []string, cols ColumnMap, fallbackID string) Record {
	rec := Record{
		ID:            cell(row, cols.ID),
		Department:    cell(row, cols.Department),
		HospitalName:  cell(row, cols.HospitalName),
		ClientCompany: cell(row, cols.ClientCompany),
		Address:       cell(row, cols.Address),
		Lat:           parseCoordinate(cell(row, cols.Lat)),
		Lng:           parseCoordinate(cell(row, cols.Lng)),
		Phone:         cell(row, cols.Phone),
		Fax:           cell(row, cols.Fax),
		DirectorName:  cell(row, cols.DirectorName),
		ContactPerson: cell(row, cols.ContactPerson),
		ContactPhone:  cell(row, cols.ContactPhone),
		SalesStage:    cell(row, cols.SalesStage),
		Tendency:      cell(row, cols.Tendency),
		NextStep:      cell(row, cols.NextStep),
		Needs:         cell(row, cols.Needs),
		Progress:      cell(row, cols.Progress),
		SalesPerson:   cell(row, cols.SalesPerson),
		LastUpdate:    cell(row, cols.LastUpdate),
	}

	for i := 0; i < visitSlots; i++ {
		rec.setVisitDate(i, cell(row, cols.Visits[i]))
		rec.setVisitContent(i, cell(row, cols.VisitContents[i]))
	}

	rec.applyVisitInfo()

	if rec.ID == "" {
		rec.ID = fallbackID
	}
	if rec.LastUpdate == "" {
		rec.LastUpdate = today()
	}
	return rec
}

// ToRow flattens the record into the legacy 34-column layout. Writes always
// use the fixed layout; only reads remap through the header row.
func (r *Record) ToRow() []string {
	return []string{
		r.ID,
		r.Department,
		r.HospitalName,
		r.ClientCompany,
		r.Address,
		r.Phone,
		r.Fax,
		r.DirectorName,
		r.ContactPerson,
		r.ContactPhone,
		r.SalesStage,
		r.Tendency,
		r.NextStep,
		r.Needs,
		strconv.Itoa(r.VisitCount),
		r.Progress,
		r.FirstVisitDate,
		r.LastVisitDate,
		r.SalesPerson,
		r.Visit1,
		r.Visit1Content,
		r.Visit2,
		r.Visit2Content,
		r.Visit3,
		r.Visit3Content,
		r.Visit4,
		r.Visit4Content,
		r.Visit5,
		r.Visit5Content,
		r.Visit6,
		r.Visit6Content,
		r.LastUpdate,
		formatCoordinate(r.Lat),
		formatCoordinate(r.Lng),
	}
}
