package sheetstore

// MergeForUpdate combines a partial update payload with the persisted row it
// is about to overwrite. For every field the incoming non-empty value wins,
// otherwise the existing cell is kept, otherwise the field is blank. This
// lets a caller submit only the fields it changed without clobbering the
// rest of the row.
//
// Three fields ignore the caller entirely: visitCount, firstVisitDate and
// lastVisitDate are recomputed from the merged visit slots, and lastUpdate
// is stamped with today's date. The id is never regenerated here; a blank
// incoming id falls back to the persisted one.
func MergeForUpdate(incoming Record, existingRow []string, cols ColumnMap) Record {
	pick := func(newValue string, idx int) string {
		if newValue != "" {
			return newValue
		}
		return cell(existingRow, idx)
	}

	merged := Record{
		ID:            pick(incoming.ID, cols.ID),
		Department:    pick(incoming.Department, cols.Department),
		HospitalName:  pick(incoming.HospitalName, cols.HospitalName),
		ClientCompany: pick(incoming.ClientCompany, cols.ClientCompany),
		Address:       pick(incoming.Address, cols.Address),
		Phone:         pick(incoming.Phone, cols.Phone),
		Fax:           pick(incoming.Fax, cols.Fax),
		DirectorName:  pick(incoming.DirectorName, cols.DirectorName),
		ContactPerson: pick(incoming.ContactPerson, cols.ContactPerson),
		ContactPhone:  pick(incoming.ContactPhone, cols.ContactPhone),
		SalesStage:    pick(incoming.SalesStage, cols.SalesStage),
		Tendency:      pick(incoming.Tendency, cols.Tendency),
		NextStep:      pick(incoming.NextStep, cols.NextStep),
		Needs:         pick(incoming.Needs, cols.Needs),
		Progress:      pick(incoming.Progress, cols.Progress),
		SalesPerson:   pick(incoming.SalesPerson, cols.SalesPerson),
	}

	incomingDates := incoming.VisitDates()
	incomingContents := incoming.VisitContents()
	for i := 0; i < visitSlots; i++ {
		merged.setVisitDate(i, pick(incomingDates[i], cols.Visits[i]))
		merged.setVisitContent(i, pick(incomingContents[i], cols.VisitContents[i]))
	}

	if incoming.Lat != nil {
		merged.Lat = incoming.Lat
	} else {
		merged.Lat = parseCoordinate(cell(existingRow, cols.Lat))
	}
	if incoming.Lng != nil {
		merged.Lng = incoming.Lng
	} else {
		merged.Lng = parseCoordinate(cell(existingRow, cols.Lng))
	}

	merged.applyVisitInfo()
	merged.LastUpdate = today()
	return merged
}
