package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHistory writes the session transcript as an xlsx workbook, one row
// per message.
func (ch *ChatHandler) ExportHistory(c *gin.Context) {
	sessionID := c.Param("sessionId")
	transcript, ok := ch.chatService.History(sessionID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown session: " + sessionID})
		return
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("failed to close workbook: %v", err)
		}
	}()

	sheet := "Transcript"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build workbook: " + err.Error()})
		return
	}

	headers := []string{"Timestamp (UTC)", "Author", "Category", "Language", "Message"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	for row, message := range transcript {
		values := []interface{}{
			message.Timestamp.Format(time.RFC3339),
			message.Author,
			message.Category,
			message.Language,
			message.Text,
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=chat-%s.xlsx", sessionID))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		log.Printf("failed to stream workbook: %v", err)
	}
}
