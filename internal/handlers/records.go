package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"hospital-sales-server/internal/middleware"
	"hospital-sales-server/internal/models"
	"hospital-sales-server/internal/sheetstore"
	"hospital-sales-server/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RecordHandler handles hospital sales record requests.
type RecordHandler struct {
	Store *sheetstore.Store
	DB    *gorm.DB
}

// NewRecordHandler creates a new RecordHandler.
func NewRecordHandler(store *sheetstore.Store, db *gorm.DB) *RecordHandler {
	return &RecordHandler{Store: store, DB: db}
}

// GetRecords handles listing records and recommendation queries. With
// field+value query parameters it returns input suggestions instead of the
// record list; with refresh=true it bypasses the read cache.
func (h *RecordHandler) GetRecords(c *gin.Context) {
	field := c.Query("field")
	value := c.Query("value")

	if field != "" && value != "" && sheetstore.RecommendableField(field) {
		corpus := h.Store.List(c.Request.Context(), false)
		recommendations := sheetstore.Recommend(field, value, corpus)
		c.JSON(http.StatusOK, gin.H{"success": true, "recommendations": recommendations})
		return
	}

	forceRefresh := c.Query("refresh") == "true"
	records := h.Store.List(c.Request.Context(), forceRefresh)
	utils.Success(c, "Hospital sales records fetched successfully", records)
}

// CreateRecord handles adding a new hospital sales record.
func (h *RecordHandler) CreateRecord(c *gin.Context) {
	var rec sheetstore.Record
	if err := c.ShouldBindJSON(&rec); err != nil {
		utils.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	created, err := h.Store.Create(c.Request.Context(), rec)
	if err != nil {
		log.Printf("record create failed: %v", err)
		utils.InternalServerError(c, "Failed to add hospital sales record. Please try again.")
		return
	}

	utils.Created(c, "Hospital sales record added successfully", created)
}

// UpdateRecord handles updating an existing record. The persisted row is
// located via the id / name+phone / name fallback chain and merged with the
// incoming payload; a record that cannot be located is a hard 404, never an
// implicit create.
func (h *RecordHandler) UpdateRecord(c *gin.Context) {
	var rec sheetstore.Record
	if err := c.ShouldBindJSON(&rec); err != nil {
		utils.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	merged, changes, err := h.Store.Update(c.Request.Context(), rec)
	if err != nil {
		if errors.Is(err, sheetstore.ErrRecordNotFound) {
			utils.NotFound(c, "Hospital sales record not found")
			return
		}
		log.Printf("record update failed: %v", err)
		utils.InternalServerError(c, "Failed to update hospital sales record. Please try again.")
		return
	}

	editor, _ := middleware.GetUserEmailFromContext(c)
	h.dispatchVisitLogs(merged, changes, editor)

	utils.Success(c, "Hospital sales record updated successfully", merged)
}

// DeleteRecord handles deleting a record by id (with the name/phone
// fallback for rows whose id column was hand-edited away).
func (h *RecordHandler) DeleteRecord(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		utils.BadRequest(c, "Record id is required")
		return
	}

	key := sheetstore.RecordKey{
		ID:           id,
		HospitalName: c.Query("hospitalName"),
		Phone:        c.Query("phone"),
	}

	if err := h.Store.Delete(c.Request.Context(), key); err != nil {
		if errors.Is(err, sheetstore.ErrRecordNotFound) {
			utils.NotFound(c, "Hospital sales record not found")
			return
		}
		log.Printf("record delete failed: %v", err)
		utils.InternalServerError(c, "Failed to delete hospital sales record. Please try again.")
		return
	}

	utils.Success(c, "Hospital sales record deleted successfully", nil)
}

// dispatchVisitLogs writes audit entries for visit content edits in the
// background. The save already committed; a failed log write is logged and
// dropped, it must never fail the parent update or delay the response.
func (h *RecordHandler) dispatchVisitLogs(rec sheetstore.Record, changes []sheetstore.VisitContentChange, editor string) {
	if len(changes) == 0 {
		return
	}

	entries := make([]models.VisitLogEntry, len(changes))
	now := time.Now()
	for i, change := range changes {
		entries[i] = models.VisitLogEntry{
			HospitalID:   rec.ID,
			HospitalName: rec.HospitalName,
			VisitNumber:  change.VisitNumber,
			FieldName:    change.FieldName,
			OldContent:   change.OldContent,
			NewContent:   change.NewContent,
			ModifiedBy:   editor,
			ModifiedAt:   now,
		}
	}

	go func() {
		if err := h.DB.Create(&entries).Error; err != nil {
			log.Printf("visit log write failed for hospital %s: %v", rec.ID, err)
		}
	}()
}
