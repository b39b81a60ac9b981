package handlers

import (
	"net/http"

	"vita-path-api/pkg/services"

	"github.com/gin-gonic/gin"
)

// MonitoringHandler serves the aggregated request logs.
type MonitoringHandler struct {
	service *services.MonitoringService
}

// NewMonitoringHandler creates a new monitoring handler.
func NewMonitoringHandler(service *services.MonitoringService) *MonitoringHandler {
	return &MonitoringHandler{service: service}
}

// GetLogs returns dashboard data for the requested period (1h, 24h, 7d).
func (h *MonitoringHandler) GetLogs(c *gin.Context) {
	var hours int
	switch c.DefaultQuery("period", "24h") {
	case "1h":
		hours = 1
	case "7d":
		hours = 24 * 7
	default:
		hours = 24
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    h.service.Dashboard(hours),
	})
}
