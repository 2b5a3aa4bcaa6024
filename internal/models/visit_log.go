package models

import (
	"time"
)

// VisitLogEntry records a single edit to a visit content field. The table
// is append-only: entries are never updated or deleted, and writing one is
// fire-and-forget relative to the record save it belongs to.
type VisitLogEntry struct {
	BaseModel
	HospitalID   string    `gorm:"size:64;index" json:"hospitalId"`
	HospitalName string    `gorm:"size:255" json:"hospitalName"`
	VisitNumber  int       `json:"visitNumber"`
	FieldName    string    `gorm:"size:32" json:"fieldName"`
	OldContent   string    `gorm:"type:text" json:"oldContent"`
	NewContent   string    `gorm:"type:text" json:"newContent"`
	ModifiedBy   string    `gorm:"size:255" json:"modifiedBy"`
	ModifiedAt   time.Time `gorm:"index" json:"modifiedAt"`
}
