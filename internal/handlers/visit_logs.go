package handlers

import (
	"hospital-sales-server/internal/models"
	"hospital-sales-server/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// VisitLogHandler handles visit audit log requests.
type VisitLogHandler struct {
	DB *gorm.DB
}

// NewVisitLogHandler creates a new VisitLogHandler.
func NewVisitLogHandler(db *gorm.DB) *VisitLogHandler {
	return &VisitLogHandler{DB: db}
}

// GetVisitLogsForHospital handles fetching the edit history of a hospital's
// visit content fields, newest first.
func (h *VisitLogHandler) GetVisitLogsForHospital(c *gin.Context) {
	hospitalID := c.Param("id")
	if hospitalID == "" {
		utils.BadRequest(c, "Hospital id is required")
		return
	}

	var logs []models.VisitLogEntry
	if err := h.DB.Where("hospital_id = ?", hospitalID).Order("modified_at desc").Find(&logs).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch visit logs: "+err.Error())
		return
	}

	utils.Success(c, "Visit logs fetched successfully", logs)
}
