package sheetstore

import "strings"

// visitSlots is the fixed number of visit slots per record.
const visitSlots = 6

// VisitInfo holds the derived visit summary fields of a record.
type VisitInfo struct {
	Count     int
	FirstDate string
	LastDate  string
}

// CalculateVisitInfo derives the visit summary from the six visit date
// slots. First and last are taken in slot order 1-6, not by comparing date
// values: a later slot holding an earlier date still counts as the last
// visit. Callers rely on this slot-order behavior; do not sort by date.
func CalculateVisitInfo(slots [visitSlots]string) VisitInfo {
	filled := make([]string, 0, visitSlots)
	for _, slot := range slots {
		if strings.TrimSpace(slot) != "" {
			filled = append(filled, slot)
		}
	}

	info := VisitInfo{Count: len(filled)}
	if len(filled) > 0 {
		info.FirstDate = filled[0]
		info.LastDate = filled[len(filled)-1]
	}
	return info
}
