package handlers

import (
	"log"

	"hospital-sales-server/internal/sheetstore"
	"hospital-sales-server/internal/utils"

	"github.com/gin-gonic/gin"
)

// DiagnosticsHandler handles backing store connectivity checks.
type DiagnosticsHandler struct {
	Client *sheetstore.Client
}

// NewDiagnosticsHandler creates a new DiagnosticsHandler.
func NewDiagnosticsHandler(client *sheetstore.Client) *DiagnosticsHandler {
	return &DiagnosticsHandler{Client: client}
}

type sheetInfo struct {
	Title   string `json:"title"`
	SheetID int64  `json:"sheetId"`
}

// TestSheetsConnection handles verifying that the spreadsheet is reachable
// with the configured service account. Used from the settings screen when
// sharing of the sheet goes wrong.
func (h *DiagnosticsHandler) TestSheetsConnection(c *gin.Context) {
	meta, err := h.Client.Metadata(c.Request.Context())
	if err != nil {
		log.Printf("sheets connection test failed: %v", err)
		utils.InternalServerError(c, "Google Sheets connection failed. Make sure the service account has editor access to the spreadsheet.")
		return
	}

	var title string
	if meta.Properties != nil {
		title = meta.Properties.Title
	}

	sheetList := make([]sheetInfo, 0, len(meta.Sheets))
	for _, sheet := range meta.Sheets {
		if sheet.Properties == nil {
			continue
		}
		sheetList = append(sheetList, sheetInfo{
			Title:   sheet.Properties.Title,
			SheetID: sheet.Properties.SheetId,
		})
	}

	utils.Success(c, "Google Sheets connection successful", gin.H{
		"spreadsheetTitle": title,
		"sheets":           sheetList,
	})
}
